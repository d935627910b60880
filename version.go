package quat

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/quat-go/quat"

// Version returns the module version and checksum this binary was built
// with, following gonum.org/v1/gonum's own Version() (top-level
// version.go): only valid in binaries built with module support.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, m := range b.Deps {
		if m.Path == root {
			if m.Replace != nil {
				switch {
				case m.Replace.Version != "" && m.Replace.Path != "":
					return fmt.Sprintf("%s %s", m.Replace.Path, m.Replace.Version), m.Replace.Sum
				case m.Replace.Version != "":
					return m.Replace.Version, m.Replace.Sum
				case m.Replace.Path != "":
					return m.Replace.Path, m.Replace.Sum
				default:
					return m.Version + "*", ""
				}
			}
			return m.Version, m.Sum
		}
	}
	return "", ""
}
