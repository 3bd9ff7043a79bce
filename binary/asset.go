package binary

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ArchiveType is the container format of a release asset.
type ArchiveType int

const (
	Zip ArchiveType = iota
	TarGz
)

// Ext returns the file extension of the archive type, without dot.
func (a ArchiveType) Ext() string {
	if a == TarGz {
		return "tar.gz"
	}
	return "zip"
}

func (a ArchiveType) String() string {
	return a.Ext()
}

// ArchiveTypeOf detects the archive type from a file name.
func ArchiveTypeOf(name string) (ArchiveType, bool) {
	lower := strings.ToLower(filepath.Base(name))
	switch {
	case strings.HasSuffix(lower, ".tar.gz"):
		return TarGz, true
	case strings.HasSuffix(lower, ".zip"):
		return Zip, true
	default:
		return 0, false
	}
}

// Extended tells whether the extended build was asked for.
// ExtendedDefault means the caller didn't choose and asks for the extended
// build; it is dropped silently for versions predating it, but 32-bit
// platforms still need an explicit [ExtendedOff].
type Extended int

const (
	ExtendedDefault Extended = iota
	ExtendedOn
	ExtendedOff
)

// ExtendedFrom maps an explicit choice to [ExtendedOn] or [ExtendedOff].
func ExtendedFrom(enabled bool) Extended {
	if enabled {
		return ExtendedOn
	}
	return ExtendedOff
}

// naming scheme boundaries of upstream releases
var (
	firstExtended   = MustParseVersion("0.43")
	camelCaseMacOS  = MustParseVersion("0.18")
	tarballMacOS    = MustParseVersion("0.20.3")
	goStyleAssetIDs = MustParseVersion("0.103.0")
)

// AssetRequest fully describes a release asset.
type AssetRequest struct {
	Version  Version
	Platform Platform
	Extended bool
	Archive  ArchiveType
	Filename string
	URL      string
}

// NameAsset computes the asset upstream publishes for version on platform.
// base is the release host base path; the default host is used when empty.
func NameAsset(base string, version Version, platform Platform, extended Extended) (AssetRequest, error) {
	if base == "" {
		base = DefaultReleaseBase
	}

	useExtended, err := resolveExtended(version, platform, extended)
	if err != nil {
		return AssetRequest{}, err
	}

	tmpl := Template{
		Base:     base,
		Version:  version.String(),
		Extended: useExtended,
	}

	archive := assetLabels(&tmpl, version, platform)
	tmpl.Ext = archive.Ext()

	filename, err := tmpl.Resolve(FilenameFormat)
	if err != nil {
		return AssetRequest{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	tmpl.Filename = filename

	url, err := tmpl.Resolve(URLFormat)
	if err != nil {
		return AssetRequest{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	return AssetRequest{
		Version:  version,
		Platform: platform,
		Extended: useExtended,
		Archive:  archive,
		Filename: filename,
		URL:      url,
	}, nil
}

func resolveExtended(version Version, platform Platform, extended Extended) (bool, error) {
	if extended == ExtendedOff {
		return false, nil
	}

	if platform.Arch != Bit64 {
		return false, fmt.Errorf("%w: the extended version of hugo is only available on 64-bit platforms, turn it off explicitly", ErrConfig)
	}

	if version.Less(firstExtended) {
		if extended == ExtendedDefault {
			return false, nil
		}
		return false, fmt.Errorf("%w: the extended version of hugo is only available for %s and later, not %s", ErrConfig, firstExtended, version)
	}

	return true, nil
}

// assetLabels fills the OS and Arch labels upstream used for version and
// returns the archive type of the asset.
func assetLabels(tmpl *Template, version Version, platform Platform) ArchiveType {
	if !version.Less(goStyleAssetIDs) {
		// platforms only carry the word size, so arm64 hosts get the amd64
		// build on linux and windows; macos is covered by the universal build
		tmpl.Arch = "amd64"
		if platform.Arch == Bit32 {
			tmpl.Arch = "386"
		}

		switch platform.OS {
		case Windows:
			tmpl.OS = "windows"
			return Zip
		case MacOS:
			tmpl.OS, tmpl.Arch = "darwin", "universal"
			return TarGz
		default:
			tmpl.OS = "linux"
			return TarGz
		}
	}

	tmpl.Arch = platform.Arch.String()

	switch platform.OS {
	case Windows:
		tmpl.OS = "Windows"
		return Zip
	case MacOS:
		tmpl.OS = "macOS"
		if version.Less(camelCaseMacOS) {
			tmpl.OS = "MacOS"
		}
		if version.Less(tarballMacOS) {
			return Zip
		}
		return TarGz
	default:
		tmpl.OS = "Linux"
		return TarGz
	}
}
