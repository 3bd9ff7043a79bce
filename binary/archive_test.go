package binary

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// member is a file inside a test archive; directories end with a slash.
type member struct {
	name    string
	content string
}

func writeTarGz(t *testing.T, path string, members ...member) {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	compressor := gzip.NewWriter(file)
	writer := tar.NewWriter(compressor)

	for _, m := range members {
		header := &tar.Header{Name: m.name, Mode: 0o644, Size: int64(len(m.content)), Typeflag: tar.TypeReg}
		if m.name[len(m.name)-1] == '/' {
			header = &tar.Header{Name: m.name, Mode: 0o755, Typeflag: tar.TypeDir}
		}
		require.NoError(t, writer.WriteHeader(header))
		if header.Typeflag == tar.TypeReg {
			_, err := writer.Write([]byte(m.content))
			require.NoError(t, err)
		}
	}

	require.NoError(t, writer.Close())
	require.NoError(t, compressor.Close())
}

func writeZip(t *testing.T, path string, members ...member) {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := zip.NewWriter(file)
	for _, m := range members {
		out, err := writer.Create(m.name)
		require.NoError(t, err)
		if m.name[len(m.name)-1] != '/' {
			_, err = out.Write([]byte(m.content))
			require.NoError(t, err)
		}
	}

	require.NoError(t, writer.Close())
}
