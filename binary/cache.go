package binary

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Discovery tells where an installed executable was found.
type Discovery int

const (
	CandidateDir Discovery = iota
	SystemPath
)

func (d Discovery) String() string {
	if d == SystemPath {
		return "system path"
	}
	return "candidate dir"
}

// InstalledExecutable is how hugo should be invoked on this host.
// Path is the bare command name when found through the system search path.
type InstalledExecutable struct {
	Path string
	Via  Discovery
}

// Finder looks up an installed hugo executable.
type Finder struct {
	Dirs     []string
	Platform Platform
	// LookPath searches the system path; defaults to [exec.LookPath].
	LookPath func(file string) (string, error)
	Logger   *log.Logger
}

// Scan looks for hugo in the candidate directories and in the system
// search path. When both hold a different executable the candidate one wins,
// since that is the one this program manages.
func (f *Finder) Scan() (InstalledExecutable, error) {
	command := f.Platform.Command()

	var candidate string
	for _, dir := range f.Dirs {
		path := filepath.Join(dir, command)
		if isExecutable(path, f.Platform) {
			candidate = path
			break
		}
	}

	lookpath := f.LookPath
	if lookpath == nil {
		lookpath = exec.LookPath
	}
	system, err := lookpath(strings.TrimSuffix(command, ".exe"))
	if err != nil {
		system = ""
	}

	switch {
	case candidate == "" && system == "":
		return InstalledExecutable{}, fmt.Errorf(
			"%w: hugo isn't installed in %s nor available in the system path, run `hugoup install` to install it",
			ErrNotFound, strings.Join(f.Dirs, ", "),
		)
	case candidate == "":
		return InstalledExecutable{Path: "hugo", Via: SystemPath}, nil
	case system == "":
		return InstalledExecutable{Path: candidate, Via: CandidateDir}, nil
	case sameFile(candidate, system):
		return InstalledExecutable{Path: "hugo", Via: SystemPath}, nil
	default:
		if f.Logger != nil {
			f.Logger.Warn("found two hugo executables, using the managed one", "managed", candidate, "system", system)
		}
		return InstalledExecutable{Path: candidate, Via: CandidateDir}, nil
	}
}

// PathCache memoizes the installed executable lookup for the lifetime of
// the process. Only successful lookups are kept.
type PathCache struct {
	mu     sync.Mutex
	scan   func() (InstalledExecutable, error)
	cached *InstalledExecutable
}

// NewPathCache creates a cache filled by scan.
func NewPathCache(scan func() (InstalledExecutable, error)) *PathCache {
	return &PathCache{scan: scan}
}

// Find returns the cached executable, scanning on first use or after a
// failed scan.
func (c *PathCache) Find() (InstalledExecutable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != nil {
		return *c.cached, nil
	}

	found, err := c.scan()
	if err != nil {
		return InstalledExecutable{}, err
	}

	c.cached = &found
	return found, nil
}

// Reset drops the cached executable, e.g. after installing a new one.
func (c *PathCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cached = nil
}

func isExecutable(path string, platform Platform) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if platform.OS == Windows {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

func sameFile(a, b string) bool {
	ia, err := os.Stat(a)
	if err != nil {
		return false
	}
	ib, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ia, ib)
}
