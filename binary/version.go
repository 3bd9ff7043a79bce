package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// Latest is the version token that resolves to the newest upstream release.
const Latest = "latest"

// Version is a dotted numeric release version.
// The original text is kept because upstream asset names embed it verbatim,
// e.g. 0.17 is published as hugo_0.17_... and not hugo_0.17.0_...
type Version struct {
	raw       string
	canonical string
}

var numericVersion = regexp.MustCompile(`^[0-9]+(\.[0-9]+){0,2}$`)

// ParseVersion parses a dotted numeric version with an optional v/V prefix.
func ParseVersion(text string) (Version, error) {
	raw := strings.TrimSpace(text)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "v"), "V")

	if !numericVersion.MatchString(raw) {
		return Version{}, fmt.Errorf("%w: %q is not a version", ErrResolution, text)
	}

	canonical := semver.Canonical("v" + raw)
	if canonical == "" {
		return Version{}, fmt.Errorf("%w: %q is not a version", ErrResolution, text)
	}

	return Version{raw: raw, canonical: canonical}, nil
}

// MustParseVersion is like [ParseVersion] but panics on invalid input.
// Meant for constants.
func MustParseVersion(text string) Version {
	v, err := ParseVersion(text)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as published upstream, without prefix.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v holds no version.
func (v Version) IsZero() bool {
	return v.canonical == ""
}

// Compare returns -1, 0 or +1 depending on whether v is lower, equal or
// greater than other. Missing components count as zero.
func (v Version) Compare(other Version) int {
	return semver.Compare(v.canonical, other.canonical)
}

// Less reports whether v < other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// SpecKind tells how a version token was interpreted.
type SpecKind int

const (
	SpecExplicit SpecKind = iota
	SpecLatest
	SpecLocalArchive
)

func (k SpecKind) String() string {
	switch k {
	case SpecLatest:
		return "latest"
	case SpecLocalArchive:
		return "archive"
	default:
		return "explicit"
	}
}

// Resolved is the outcome of resolving a version token.
// Archive is only set for [SpecLocalArchive].
type Resolved struct {
	Kind    SpecKind
	Version Version
	Archive string
	Type    ArchiveType
}

// LatestSource determines the newest published version.
type LatestSource interface {
	Latest(ctx context.Context) (Version, error)
}

// Resolver turns user supplied version tokens into concrete versions.
type Resolver struct {
	latest LatestSource
}

// NewResolver builds a resolver that queries source for "latest".
func NewResolver(source LatestSource) *Resolver {
	return &Resolver{latest: source}
}

// Resolve interprets input as, in order of precedence, a path to a
// downloaded release archive, the "latest" keyword or an explicit version.
func (r *Resolver) Resolve(ctx context.Context, input string) (Resolved, error) {
	if archive, kind, ok := LocalArchive(input); ok {
		version, err := VersionFromArchive(archive)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Kind: SpecLocalArchive, Version: version, Archive: archive, Type: kind}, nil
	}

	if strings.EqualFold(strings.TrimSpace(input), Latest) {
		if r.latest == nil {
			return Resolved{}, fmt.Errorf("%w: no source for the latest release", ErrResolution)
		}
		version, err := r.latest.Latest(ctx)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Kind: SpecLatest, Version: version}, nil
	}

	version, err := ParseVersion(input)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Kind: SpecExplicit, Version: version}, nil
}

// LocalArchive reports whether input points at an existing release archive,
// returning its absolute path and archive type.
func LocalArchive(input string) (string, ArchiveType, bool) {
	kind, ok := ArchiveTypeOf(input)
	if !ok {
		return "", 0, false
	}

	info, err := os.Stat(input)
	if err != nil || info.IsDir() {
		return "", 0, false
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return "", 0, false
	}

	return filepath.Clean(abs), kind, true
}

// archive names follow <prefix>[_<variant>...]_<version>_<platform>.<ext>,
// e.g. hugo_extended_withdeploy_0.140.0_linux-amd64.tar.gz
var archiveVersion = regexp.MustCompile(`^[A-Za-z]+(?:_[A-Za-z]+)*_[vV]?([0-9]+(?:\.[0-9]+)*)_.+`)

// VersionFromArchive extracts the release version out of an archive filename.
func VersionFromArchive(path string) (Version, error) {
	match := archiveVersion.FindStringSubmatch(filepath.Base(path))
	if match == nil {
		return Version{}, fmt.Errorf("%w: no version in archive name %s", ErrResolution, filepath.Base(path))
	}
	return ParseVersion(match[1])
}
