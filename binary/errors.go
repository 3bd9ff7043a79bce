package binary

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by this package wraps one of these,
// so callers can branch on them with [errors.Is].
var (
	// ErrResolution indicates the requested version can't be determined.
	ErrResolution = errors.New("cannot resolve version")
	// ErrConfig indicates an invalid combination of extended, arch and version.
	ErrConfig = errors.New("invalid configuration")
	// ErrFetch indicates a download failure.
	ErrFetch = errors.New("download failed")
	// ErrExtract indicates an unreadable archive.
	ErrExtract = errors.New("cannot extract archive")
	// ErrNotFound indicates no executable was located.
	ErrNotFound = errors.New("executable not found")
	// ErrInstall indicates no candidate directory accepted the executable.
	ErrInstall = errors.New("installation failed")
)

// InstallError is returned when the executable couldn't be copied into
// any of the candidate directories.
type InstallError struct {
	Dirs   []string
	Causes []error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("unable to install hugo to any of these dirs: %s", strings.Join(e.Dirs, ", "))
}

// Is reports whether target is [ErrInstall].
func (e *InstallError) Is(target error) bool {
	return target == ErrInstall
}

// Unwrap returns the failure of each attempted directory.
func (e *InstallError) Unwrap() []error {
	return e.Causes
}
