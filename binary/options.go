package binary

import (
	"github.com/charmbracelet/log"
)

type Option func(m *Manager)

// WithPlatform overrides the detected host platform.
// This is useful for example to fetch the windows build from a linux host.
func WithPlatform(platform Platform) Option {
	return func(m *Manager) {
		m.platform = platform
	}
}

// WithReleaseBase points downloads and the latest release lookup at a
// different host, e.g. a mirror. The base must end with a slash, like
// [DefaultReleaseBase].
func WithReleaseBase(base string) Option {
	return func(m *Manager) {
		if base != "" {
			m.base = base
		}
	}
}

// WithFetcher replaces the http downloader.
func WithFetcher(fetcher Fetcher) Option {
	return func(m *Manager) {
		m.fetcher = fetcher
	}
}

// WithExtractor replaces the archive extractor.
func WithExtractor(extractor Extractor) Option {
	return func(m *Manager) {
		m.extractor = extractor
	}
}

// WithLatestSource replaces the lookup of the newest release, which by
// default scrapes the latest release page of the release host.
func WithLatestSource(source LatestSource) Option {
	return func(m *Manager) {
		m.latest = source
	}
}

// WithEnvironment sets the host facts the candidate directories are
// computed from. Ignored when [WithCandidates] is used as well.
func WithEnvironment(env Environment) Option {
	return func(m *Manager) {
		m.env = &env
	}
}

// WithCandidates replaces the candidate directories altogether.
func WithCandidates(dirs ...string) Option {
	return func(m *Manager) {
		m.dirs = dirs
	}
}

// WithCopier replaces how the executable is copied into a candidate directory.
func WithCopier(copier Copier) Option {
	return func(m *Manager) {
		m.copier = copier
	}
}

// WithAlternate sets the installer used when brew is requested.
func WithAlternate(alternate Alternate) Option {
	return func(m *Manager) {
		m.alternate = alternate
	}
}

// WithLookPath replaces the system path lookup used to find hugo.
func WithLookPath(lookpath func(file string) (string, error)) Option {
	return func(m *Manager) {
		m.lookpath = lookpath
	}
}

// WithLogger sets the logger warnings are reported to.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}
