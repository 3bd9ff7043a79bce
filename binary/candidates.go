package binary

import (
	"os"
	"path/filepath"
)

// Environment holds the host facts candidate directories are derived from.
type Environment struct {
	// Override is a directory picked by the user, tried before anything else.
	Override string
	// AppData is the value of %APPDATA% on windows.
	AppData string
	// Home is the user home directory.
	Home string
	// Bundled is the last resort directory, shipped next to this program.
	Bundled string
	// Exists reports whether a directory exists; defaults to a stat call.
	Exists func(path string) bool
}

// DefaultEnvironment reads the environment of the running process.
// override and bundled are optional; the bundled dir defaults to a Hugo
// directory next to the running executable.
func DefaultEnvironment(override, bundled string) Environment {
	home, _ := os.UserHomeDir()

	if bundled == "" {
		if exe, err := os.Executable(); err == nil {
			bundled = filepath.Join(filepath.Dir(exe), "Hugo")
		}
	}

	return Environment{
		Override: override,
		AppData:  os.Getenv("APPDATA"),
		Home:     home,
		Bundled:  bundled,
		Exists:   dirExists,
	}
}

// CandidateDirs lists, by priority, the directories hugo gets installed to
// and looked up in.
func CandidateDirs(platform Platform, env Environment) []string {
	exists := env.Exists
	if exists == nil {
		exists = dirExists
	}

	var dirs []string
	add := func(dir string) {
		if dir != "" {
			dirs = append(dirs, dir)
		}
	}

	add(env.Override)

	switch platform.OS {
	case Windows:
		if env.AppData != "" && exists(env.AppData) {
			add(filepath.Join(env.AppData, "Hugo"))
		}
	case MacOS:
		add("/usr/local/bin")
		if env.Home != "" {
			support := filepath.Join(env.Home, "Library", "Application Support")
			if exists(support) {
				add(filepath.Join(support, "Hugo"))
			}
		}
	default:
		if env.Home != "" {
			add(filepath.Join(env.Home, "bin"))
		}
		add("/snap/bin")
		add("/var/lib/snapd/snap/bin")
	}

	add(env.Bundled)

	return dirs
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
