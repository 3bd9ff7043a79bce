package binary

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Extractor unpacks a release archive into a directory.
// It returns the paths of the regular files it wrote, in archive order.
type Extractor interface {
	Extract(archive string, kind ArchiveType, destination string) ([]string, error)
}

// ArchiveExtractor is the [Extractor] for zip and tar.gz archives.
type ArchiveExtractor struct{}

func (ArchiveExtractor) Extract(archive string, kind ArchiveType, destination string) ([]string, error) {
	file, err := os.Open(archive)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open archive: %w", ErrExtract, err)
	}
	defer file.Close()

	if err := os.MkdirAll(destination, 0o755); err != nil {
		return nil, fmt.Errorf("%w: failed to create directory %s: %w", ErrExtract, destination, err)
	}

	var members []string
	switch kind {
	case TarGz:
		members, err = untar(file, destination)
	case Zip:
		info, serr := file.Stat()
		if serr != nil {
			return nil, fmt.Errorf("%w: %w", ErrExtract, serr)
		}
		members, err = unzip(file, info.Size(), destination)
	default:
		return nil, fmt.Errorf("%w: unsupported format: %s", ErrExtract, kind)
	}

	if err != nil {
		return members, fmt.Errorf("%w: %s: %w", ErrExtract, filepath.Base(archive), err)
	}

	return members, nil
}

// target joins an archive member name to destination, refusing names that
// would land outside of it.
func target(destination, name string) (string, error) {
	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return "", fmt.Errorf("illegal member path %s", name)
	}

	joined := filepath.Join(destination, name)
	rel, err := filepath.Rel(destination, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("illegal member path %s", name)
	}

	return joined, nil
}

func write(path string, mode os.FileMode, contents io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}

	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode.Perm()|0o600)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}

	if _, err := io.Copy(out, contents); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy data to file %s: %w", path, err)
	}

	return out.Close()
}

// handles .tar.gz files
func untar(file io.Reader, destination string) ([]string, error) {
	decompressor, err := gzip.NewReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer decompressor.Close()

	reader := tar.NewReader(decompressor)

	var members []string
	for {
		header, err := reader.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return members, err
		}

		path, err := target(destination, header.Name)
		if err != nil {
			return members, err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(path, 0o755); err != nil {
				return members, fmt.Errorf("failed to create directory %s: %w", path, err)
			}
		case tar.TypeReg:
			if err := write(path, header.FileInfo().Mode(), reader); err != nil {
				return members, err
			}
			members = append(members, path)
		}
	}

	return members, nil
}

// handles .zip files
func unzip(file io.ReaderAt, size int64, destination string) ([]string, error) {
	reader, err := zip.NewReader(file, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create zip reader: %w", err)
	}

	var members []string
	for _, entry := range reader.File {
		path, err := target(destination, entry.Name)
		if err != nil {
			return members, err
		}

		info := entry.FileInfo()
		if info.IsDir() {
			if err := os.MkdirAll(path, 0o755); err != nil {
				return members, fmt.Errorf("failed to create directory %s: %w", path, err)
			}
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		contents, err := entry.Open()
		if err != nil {
			return members, fmt.Errorf("failed to open file %s: %w", entry.Name, err)
		}

		err = write(path, info.Mode(), contents)
		contents.Close()
		if err != nil {
			return members, err
		}

		members = append(members, path)
	}

	return members, nil
}
