// Package binary provisions the hugo static site generator executable.
//
// At the core, a [Manager] takes a version token, which can be "latest",
// an explicit version like 0.55.0 or the path to an already downloaded
// release archive, and turns it into an installed executable:
//
//   - the token is resolved to a concrete [Version] by a [Resolver]
//   - [NameAsset] computes which release asset matches the host [Platform],
//     following the naming changes upstream made over time
//   - the asset is downloaded by a [Fetcher] and unpacked by an [Extractor]
//   - [Locate] picks the executable out of the archive members
//   - an [Installer] copies it to the first candidate directory accepting it
//
// Installed executables are looked up in the candidate directories and in
// the system path, see [Finder] and [PathCache].
//
// example usage
//
//	manager := binary.NewManager(
//		binary.WithEnvironment(binary.DefaultEnvironment("/opt/hugo", "")),
//	)
//
//	// installs the newest extended release unless hugo is already there
//	result, err := manager.Install(ctx, binary.Request{Version: binary.Latest})
//	if err != nil {
//		return fmt.Errorf("failed to provision hugo: %w", err)
//	}
//
//	// use via harness
//	hugoup.Run(ctx, result.Executable.Path, hugoup.WithArgs("version"))
package binary
