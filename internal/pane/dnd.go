package pane

import (
	"os"
	"strings"
)

// DnDConfig holds a tab's per-tab drag-and-drop insertion policy.
type DnDConfig struct {
	AutoCDOnFolderDrop  bool
	AutoRunOnFolderDrop bool
}

// quotePath converts a path to a POSIX single-quoted shell literal:
// wrap in '…', replacing every embedded ' with '\''. This handles
// spaces and embedded quotes alike, unlike a bare
// contains-space-then-double-quote shortcut.
func quotePath(path string) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range path {
		if r == '\'' {
			b.WriteString(`'\''`)
		} else {
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// BuildInsertion computes the exact bytes to write to the focused PTY
// for a drop of the given paths. isDir reports whether a single
// dropped path is a directory; it is only consulted when
// len(paths) == 1.
func BuildInsertion(paths []string, cfg DnDConfig, isDir func(string) bool) []byte {
	if len(paths) == 0 {
		return nil
	}
	if len(paths) == 1 && isDir(paths[0]) {
		quoted := quotePath(paths[0])
		switch {
		case cfg.AutoCDOnFolderDrop:
			return []byte("cd " + quoted + "\r")
		case cfg.AutoRunOnFolderDrop:
			return []byte(quoted + "\r")
		default:
			return []byte(quoted + " ")
		}
	}

	quoted := make([]string, len(paths))
	for i, p := range paths {
		quoted[i] = quotePath(p)
	}
	return []byte(strings.Join(quoted, " ") + " ")
}

// IsDir is the default isDir predicate, backed by os.Stat.
func IsDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
