package binary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Copier copies the file at src to dst, replacing dst if it exists.
type Copier func(src, dst string) error

// Installer puts an executable into the first directory that accepts it.
type Installer struct {
	Dirs []string
	Copy Copier
}

// NewInstaller creates an installer trying dirs in order.
func NewInstaller(dirs []string) *Installer {
	return &Installer{Dirs: dirs, Copy: CopyFile}
}

// Install copies executable into the first candidate directory where the
// copy succeeds and returns that directory. Directories after it are left
// untouched.
func (i *Installer) Install(executable string) (string, error) {
	cp := i.Copy
	if cp == nil {
		cp = CopyFile
	}

	failure := &InstallError{}
	for _, dir := range i.Dirs {
		// may fail on read only locations, the copy tells for sure
		_ = os.MkdirAll(dir, 0o755)

		if err := cp(executable, filepath.Join(dir, filepath.Base(executable))); err != nil {
			failure.Dirs = append(failure.Dirs, dir)
			failure.Causes = append(failure.Causes, err)
			continue
		}

		return dir, nil
	}

	return "", failure
}

// CopyFile copies src to dst keeping the permissions of src.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	// a running executable can't be truncated on some systems, replace it instead
	_ = os.Remove(dst)

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data to file %s: %w", dst, err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	return os.Chmod(dst, info.Mode().Perm())
}
