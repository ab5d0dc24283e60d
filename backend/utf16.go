package backend

import (
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// utf16Decoder decodes the UTF-16LE strings Windows targets keep their
// version metadata in. Stateless, safe to share.
var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// DecodeUTF16 converts UTF-16LE bytes to a Go string, stopping at the
// first NUL terminator.
func DecodeUTF16(raw []byte) (string, error) {
	// cut at the UTF-16 NUL (two zero bytes, even offset)
	for i := 0; i+1 < len(raw); i += 2 {
		if raw[i] == 0 && raw[i+1] == 0 {
			raw = raw[:i]
			break
		}
	}
	out, _, err := transform.Bytes(utf16Decoder.NewDecoder(), raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// ReadVersionString reads a NUL-terminated UTF-16LE string of at most
// maxChars characters out of target memory, for targets that publish
// their build tag as an embedded string rather than file metadata.
func ReadVersionString(b Backend, addr types.Address, maxChars int) (types.VersionTag, error) {
	raw := make([]byte, maxChars*2)
	if _, err := b.ReadMemory(raw, addr); err != nil {
		return "", err
	}
	s, err := DecodeUTF16(raw)
	if err != nil {
		return "", err
	}
	return types.VersionTag(s), nil
}
