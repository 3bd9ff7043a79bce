package binary

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
)

// DefaultReleaseBase is where upstream publishes hugo releases.
const DefaultReleaseBase = "https://github.com/gohugoio/hugo/releases/"

var releaseTag = regexp.MustCompile(`releases/tag/v([0-9.]+)"`)

// ParseLatestTag returns the first release version referenced by a release
// listing page.
func ParseLatestTag(page []byte) (Version, error) {
	match := releaseTag.FindSubmatch(page)
	if match == nil {
		return Version{}, fmt.Errorf("%w: no release tag found in the latest release page", ErrResolution)
	}
	return ParseVersion(string(match[1]))
}

// ReleasePage is a [LatestSource] that scrapes the "latest release" page
// of the release host.
type ReleasePage struct {
	fetcher Fetcher
	url     string
}

// NewReleasePage creates a source reading <base>latest through fetcher.
func NewReleasePage(fetcher Fetcher, base string) *ReleasePage {
	if base == "" {
		base = DefaultReleaseBase
	}
	return &ReleasePage{fetcher: fetcher, url: base + Latest}
}

func (p *ReleasePage) Latest(ctx context.Context) (Version, error) {
	var page bytes.Buffer
	if err := p.fetcher.Fetch(ctx, p.url, &page); err != nil {
		return Version{}, fmt.Errorf("%w: %w", ErrResolution, err)
	}
	return ParseLatestTag(page.Bytes())
}
