package binary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameAsset(t *testing.T) {
	macos64 := Platform{OS: MacOS, Arch: Bit64}
	linux64 := Platform{OS: Linux, Arch: Bit64}
	linux32 := Platform{OS: Linux, Arch: Bit32}
	windows64 := Platform{OS: Windows, Arch: Bit64}
	windows32 := Platform{OS: Windows, Arch: Bit32}
	other64 := Platform{OS: Other, Arch: Bit64}

	tests := []struct {
		name     string
		version  string
		platform Platform
		extended Extended
		filename string
		archive  ArchiveType
		wantExt  bool
	}{
		{
			name:     "old macos label and zip",
			version:  "0.17",
			platform: macos64,
			filename: "hugo_0.17_MacOS-64bit.zip",
			archive:  Zip,
		},
		{
			name:     "new macos label before tarballs",
			version:  "0.20",
			platform: macos64,
			filename: "hugo_0.20_macOS-64bit.zip",
			archive:  Zip,
		},
		{
			name:     "macos tarball from 0.20.3",
			version:  "0.20.3",
			platform: macos64,
			filename: "hugo_0.20.3_macOS-64bit.tar.gz",
			archive:  TarGz,
		},
		{
			name:     "macos label and tarball",
			version:  "0.25",
			platform: macos64,
			filename: "hugo_0.25_macOS-64bit.tar.gz",
			archive:  TarGz,
		},
		{
			name:     "first extended release",
			version:  "0.43",
			platform: linux64,
			extended: ExtendedOn,
			filename: "hugo_extended_0.43_Linux-64bit.tar.gz",
			archive:  TarGz,
			wantExt:  true,
		},
		{
			name:     "extended by default when available",
			version:  "0.55.0",
			platform: windows64,
			filename: "hugo_extended_0.55.0_Windows-64bit.zip",
			archive:  Zip,
			wantExt:  true,
		},
		{
			name:     "extended turned off",
			version:  "0.55.0",
			platform: windows64,
			extended: ExtendedOff,
			filename: "hugo_0.55.0_Windows-64bit.zip",
			archive:  Zip,
		},
		{
			name:     "32 bit windows",
			version:  "0.55.0",
			platform: windows32,
			extended: ExtendedOff,
			filename: "hugo_0.55.0_Windows-32bit.zip",
			archive:  Zip,
		},
		{
			name:     "32 bit linux",
			version:  "0.30.2",
			platform: linux32,
			extended: ExtendedOff,
			filename: "hugo_0.30.2_Linux-32bit.tar.gz",
			archive:  TarGz,
		},
		{
			name:     "other systems use linux builds",
			version:  "0.40",
			platform: other64,
			filename: "hugo_0.40_Linux-64bit.tar.gz",
			archive:  TarGz,
		},
		{
			name:     "go style names on linux",
			version:  "0.103.0",
			platform: linux64,
			filename: "hugo_extended_0.103.0_linux-amd64.tar.gz",
			archive:  TarGz,
			wantExt:  true,
		},
		{
			name:     "go style names on 32 bit windows",
			version:  "0.110.0",
			platform: windows32,
			extended: ExtendedOff,
			filename: "hugo_0.110.0_windows-386.zip",
			archive:  Zip,
		},
		{
			name:     "universal macos build",
			version:  "0.120.4",
			platform: macos64,
			extended: ExtendedOff,
			filename: "hugo_0.120.4_darwin-universal.tar.gz",
			archive:  TarGz,
		},
		{
			name:     "last release before go style names",
			version:  "0.102.3",
			platform: macos64,
			filename: "hugo_extended_0.102.3_macOS-64bit.tar.gz",
			archive:  TarGz,
			wantExt:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name,
			func(t *testing.T) {
				version := MustParseVersion(test.version)

				asset, err := NameAsset("https://example.com/releases/", version, test.platform, test.extended)
				require.NoError(t, err)

				assert.Equal(t, test.filename, asset.Filename)
				assert.Equal(t, test.archive, asset.Archive)
				assert.Equal(t, test.wantExt, asset.Extended)
				assert.Equal(t, "https://example.com/releases/download/v"+test.version+"/"+test.filename, asset.URL)
			},
		)
	}
}

func TestNameAsset_Arm64Hosts(t *testing.T) {
	for _, system := range []OS{Linux, Windows, MacOS} {
		t.Run(system.String(),
			func(t *testing.T) {
				platform := Platform{OS: system, Arch: ParseArch("aarch64")}

				asset, err := NameAsset("", MustParseVersion("0.120.0"), platform, ExtendedOff)
				require.NoError(t, err)

				if system == MacOS {
					assert.Contains(t, asset.Filename, "darwin-universal")
				} else {
					assert.Contains(t, asset.Filename, "-amd64.")
				}
			},
		)
	}
}

func TestNameAsset_DefaultBase(t *testing.T) {
	asset, err := NameAsset("", MustParseVersion("0.55.0"), Platform{OS: Linux}, ExtendedOff)
	require.NoError(t, err)
	assert.Equal(t, DefaultReleaseBase+"download/v0.55.0/hugo_0.55.0_Linux-64bit.tar.gz", asset.URL)
}

func TestNameAsset_ExtendedOn32Bit(t *testing.T) {
	for _, version := range []string{"0.17", "0.40", "0.43", "0.55.0", "0.103.0", "0.140.2"} {
		for _, os := range []OS{Windows, MacOS, Linux, Other} {
			t.Run(version+"/"+os.String(),
				func(t *testing.T) {
					_, err := NameAsset("", MustParseVersion(version), Platform{OS: os, Arch: Bit32}, ExtendedOn)
					assert.True(t, errors.Is(err, ErrConfig))
				},
			)
		}
	}
}

func TestNameAsset_ExtendedBeforeFirstRelease(t *testing.T) {
	version := MustParseVersion("0.40")
	platform := Platform{OS: Linux, Arch: Bit64}

	t.Run("explicit request fails",
		func(t *testing.T) {
			_, err := NameAsset("", version, platform, ExtendedOn)
			assert.ErrorIs(t, err, ErrConfig)
		},
	)

	t.Run("default is downgraded",
		func(t *testing.T) {
			asset, err := NameAsset("", version, platform, ExtendedDefault)
			require.NoError(t, err)
			assert.False(t, asset.Extended)
			assert.Equal(t, "hugo_0.40_Linux-64bit.tar.gz", asset.Filename)
		},
	)
}

func TestNameAsset_DefaultOn32Bit(t *testing.T) {
	for _, version := range []string{"0.40", "0.55.0", "0.120.0"} {
		t.Run(version,
			func(t *testing.T) {
				_, err := NameAsset("", MustParseVersion(version), Platform{OS: Linux, Arch: Bit32}, ExtendedDefault)
				assert.ErrorIs(t, err, ErrConfig)
			},
		)
	}
}

func TestArchiveTypeOf(t *testing.T) {
	tests := []struct {
		name string
		kind ArchiveType
		ok   bool
	}{
		{name: "hugo_0.55.0_Linux-64bit.tar.gz", kind: TarGz, ok: true},
		{name: "/tmp/HUGO_0.55.0_WINDOWS-64BIT.ZIP", kind: Zip, ok: true},
		{name: "hugo_0.55.0_Linux-64bit.tgz"},
		{name: "0.55.0"},
	}

	for _, test := range tests {
		t.Run(test.name,
			func(t *testing.T) {
				kind, ok := ArchiveTypeOf(test.name)
				assert.Equal(t, test.ok, ok)
				if ok {
					assert.Equal(t, test.kind, kind)
				}
			},
		)
	}
}

func TestExtendedFrom(t *testing.T) {
	assert.Equal(t, ExtendedOn, ExtendedFrom(true))
	assert.Equal(t, ExtendedOff, ExtendedFrom(false))
}
