package binary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/aexvir/hugoup"
)

// Request describes what to install.
type Request struct {
	// Version is "latest", an explicit version or the path to a downloaded
	// release archive. Empty means latest.
	Version  string
	Extended Extended
	// UseBrew installs through the [Alternate] installer first, falling back
	// to the release downloads if it fails.
	UseBrew bool
	// Force installs even if hugo is already available.
	Force bool
}

// Result describes the outcome of [Manager.Install].
type Result struct {
	// AlreadyInstalled is set when nothing was done because hugo was found.
	AlreadyInstalled bool
	// ViaAlternate is set when the alternate installer did the job.
	ViaAlternate bool
	Executable   InstalledExecutable
	// Dir is the candidate directory the executable was copied to.
	Dir     string
	Version Version
	// Asset is only set for downloaded releases.
	Asset *AssetRequest
}

// Manager installs and finds hugo on the host.
type Manager struct {
	platform  Platform
	base      string
	fetcher   Fetcher
	extractor Extractor
	latest    LatestSource
	env       *Environment
	dirs      []string
	copier    Copier
	alternate Alternate
	lookpath  func(file string) (string, error)
	logger    *log.Logger

	resolver *Resolver
	cache    *PathCache
}

// NewManager creates a manager for the host, downloading from the upstream
// release host unless configured otherwise.
func NewManager(options ...Option) *Manager {
	m := Manager{
		base:      DefaultReleaseBase,
		extractor: ArchiveExtractor{},
		alternate: Brew{},
	}
	m.platform = HostPlatform()

	for _, opt := range options {
		opt(&m)
	}

	if m.fetcher == nil {
		m.fetcher = NewHTTPFetcher(true)
	}
	if m.latest == nil {
		m.latest = NewReleasePage(m.fetcher, m.base)
	}
	if m.logger == nil {
		m.logger = hugoup.NewLogger(nil)
	}
	if m.dirs == nil {
		env := DefaultEnvironment("", "")
		if m.env != nil {
			env = *m.env
		}
		m.dirs = CandidateDirs(m.platform, env)
	}

	m.resolver = NewResolver(m.latest)

	finder := &Finder{
		Dirs:     m.dirs,
		Platform: m.platform,
		LookPath: m.lookpath,
		Logger:   m.logger,
	}
	m.cache = NewPathCache(finder.Scan)

	return &m
}

// Platform returns the platform releases are picked for.
func (m *Manager) Platform() Platform {
	return m.platform
}

// Dirs returns the candidate directories, by priority.
func (m *Manager) Dirs() []string {
	return m.dirs
}

// Find returns how hugo is invoked on this host.
// The lookup is cached until the next installation.
func (m *Manager) Find() (InstalledExecutable, error) {
	return m.cache.Find()
}

// Resolve interprets a version token; see [Resolver.Resolve].
func (m *Manager) Resolve(ctx context.Context, input string) (Resolved, error) {
	if input == "" {
		input = Latest
	}
	return m.resolver.Resolve(ctx, input)
}

// Asset names the release asset of version for the manager platform.
func (m *Manager) Asset(version Version, extended Extended) (AssetRequest, error) {
	return NameAsset(m.base, version, m.platform, extended)
}

// Install makes hugo available on the host.
func (m *Manager) Install(ctx context.Context, req Request) (Result, error) {
	if !req.Force {
		if found, err := m.cache.Find(); err == nil {
			hugoup.LogStep(fmt.Sprintf("hugo is already available as %s", found.Path))
			return Result{AlreadyInstalled: true, Executable: found}, nil
		}
	}

	if req.UseBrew {
		if _, _, local := LocalArchive(req.Version); local {
			m.logger.Warn("installing from a local archive, homebrew won't be used", "archive", req.Version)
		} else if result, err := m.viaAlternate(ctx); err == nil {
			return result, nil
		} else {
			m.logger.Warn("homebrew installation failed, downloading the release instead", "err", err)
		}
	}

	resolved, err := m.Resolve(ctx, req.Version)
	if err != nil {
		return Result{}, err
	}

	hugoup.LogStep(fmt.Sprintf("installing hugo %s", resolved.Version))

	workdir, err := os.MkdirTemp("", "hugoup-*")
	if err != nil {
		return Result{}, fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workdir)

	result := Result{Version: resolved.Version}

	archive, kind := resolved.Archive, resolved.Type
	if resolved.Kind != SpecLocalArchive {
		asset, err := m.Asset(resolved.Version, req.Extended)
		if err != nil {
			return Result{}, err
		}
		result.Asset = &asset

		archive, kind = filepath.Join(workdir, asset.Filename), asset.Archive
		if err := m.download(ctx, asset.URL, archive); err != nil {
			return Result{}, err
		}
	}

	executable, err := m.unpack(archive, kind, filepath.Join(workdir, "extracted"), resolved.Version)
	if err != nil {
		return Result{}, err
	}

	installer := NewInstaller(m.dirs)
	if m.copier != nil {
		installer.Copy = m.copier
	}

	dir, err := installer.Install(executable)
	if err != nil {
		return Result{}, err
	}
	m.cache.Reset()

	hugoup.LogDetail(fmt.Sprintf("installed to %s", dir))

	result.Dir = dir
	result.Executable = InstalledExecutable{
		Path: filepath.Join(dir, m.platform.Command()),
		Via:  CandidateDir,
	}

	return result, nil
}

func (m *Manager) viaAlternate(ctx context.Context) (Result, error) {
	if m.alternate == nil {
		return Result{}, fmt.Errorf("no alternate installer configured")
	}

	if err := m.alternate.Install(ctx); err != nil {
		return Result{}, err
	}
	m.cache.Reset()

	result := Result{ViaAlternate: true}
	if found, err := m.cache.Find(); err == nil {
		result.Executable = found
	}

	return result, nil
}

func (m *Manager) download(ctx context.Context, url, destination string) (err error) {
	hugoup.LogDetail(fmt.Sprintf("downloading %s", url))

	start := time.Now()
	defer func() { hugoup.LogElapsed(start, err) }()

	out, err := os.Create(destination)
	if err != nil {
		return fmt.Errorf("%w: failed to create file %s: %w", ErrFetch, destination, err)
	}

	if err := m.fetcher.Fetch(ctx, url, out); err != nil {
		out.Close()
		return err
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: failed to write file %s: %w", ErrFetch, destination, err)
	}

	return nil
}

// unpack extracts archive and returns the path of the canonically named
// executable inside it.
func (m *Manager) unpack(archive string, kind ArchiveType, destination string, version Version) (path string, err error) {
	hugoup.LogDetail(fmt.Sprintf("extracting %s", filepath.Base(archive)))

	start := time.Now()
	defer func() { hugoup.LogElapsed(start, err) }()

	members, err := m.extractor.Extract(archive, kind, destination)
	if err != nil {
		return "", err
	}

	located, err := Locate(members, version, m.platform)
	if err != nil {
		return "", err
	}

	return Canonicalize(located, m.platform)
}
