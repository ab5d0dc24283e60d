package backend

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/joshuapare/offsetkit/pkg/types"
)

// FindPID locates the target process by executable name, matched
// case-insensitively with or without an ".exe" suffix. When several
// processes match, the lowest PID wins (the launcher, in practice).
func FindPID(name string) (int32, error) {
	want := normalizeProcName(name)

	procs, err := process.Processes()
	if err != nil {
		return 0, &types.Error{Kind: types.ErrKindBackend, Msg: "list processes", Err: err}
	}

	best := int32(-1)
	for _, p := range procs {
		pname, err := p.Name()
		if err != nil {
			continue // gone between listing and query
		}
		if normalizeProcName(pname) != want {
			continue
		}
		if best == -1 || p.Pid < best {
			best = p.Pid
		}
	}
	if best == -1 {
		return 0, &types.Error{
			Kind: types.ErrKindBackend,
			Msg:  fmt.Sprintf("no process named %q", name),
			Err:  types.ErrTargetExited,
		}
	}
	return best, nil
}

func normalizeProcName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".exe")
}
