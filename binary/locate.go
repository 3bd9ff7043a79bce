package binary

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// Locate picks the hugo executable out of the extracted archive members.
// Upstream names the executable after the release, e.g. hugo_0.55.0_linux,
// in older archives, and plainly hugo or hugo.exe in the newer ones; the
// versioned name is preferred when both are present.
func Locate(members []string, version Version, platform Platform) (string, error) {
	versioned := regexp.MustCompile("^hugo_" + regexp.QuoteMeta(version.String()) + ".+")

	for _, member := range members {
		if versioned.MatchString(filepath.Base(member)) && isRegular(member) {
			return member, nil
		}
	}

	command := platform.Command()
	for _, member := range members {
		if filepath.Base(member) == command && isRegular(member) {
			return member, nil
		}
	}

	return "", fmt.Errorf("%w: no hugo executable for %s among %d extracted files", ErrNotFound, version, len(members))
}

// Canonicalize renames the executable found by [Locate] to the command name
// of the platform and makes it executable.
func Canonicalize(path string, platform Platform) (string, error) {
	canonical := filepath.Join(filepath.Dir(path), platform.Command())

	if canonical != path {
		if err := os.Rename(path, canonical); err != nil {
			return "", fmt.Errorf("failed to rename %s: %w", filepath.Base(path), err)
		}
	}

	if platform.OS != Windows {
		if err := os.Chmod(canonical, 0o755); err != nil {
			return "", fmt.Errorf("failed to set permissions on %s: %w", canonical, err)
		}
	}

	return canonical, nil
}

func isRegular(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
