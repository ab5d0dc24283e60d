package offsets

import "os"

// writeFile is a test helper for dropping definition files into temp dirs.
func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
