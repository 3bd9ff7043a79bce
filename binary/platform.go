package binary

import (
	"context"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/shirou/gopsutil/v4/host"
)

// OS identifies the operating system family a release is built for.
type OS int

const (
	Other OS = iota
	Windows
	MacOS
	Linux
)

func (o OS) String() string {
	switch o {
	case Windows:
		return "windows"
	case MacOS:
		return "macos"
	case Linux:
		return "linux"
	default:
		return "other"
	}
}

// Arch is the word size of the host; upstream releases are split by it.
type Arch int

const (
	Bit64 Arch = iota
	Bit32
)

func (a Arch) String() string {
	if a == Bit32 {
		return "32bit"
	}
	return "64bit"
}

// Platform identifies which release build runs on a host.
type Platform struct {
	OS   OS
	Arch Arch
}

func (p Platform) String() string {
	return p.OS.String() + "-" + p.Arch.String()
}

// Command returns the name of the hugo executable on the platform.
func (p Platform) Command() string {
	if p.OS == Windows {
		return "hugo.exe"
	}
	return "hugo"
}

// HostPlatform returns the platform of the running host.
// Detection happens once, the result is reused for the lifetime of the process.
var HostPlatform = sync.OnceValue(func() Platform {
	return DetectPlatform(context.Background(), runtime.GOOS)
})

// DetectPlatform inspects the environment to build the [Platform] for goos.
// The architecture is taken from the kernel, falling back to the word size
// of this build if the kernel can't be queried.
func DetectPlatform(ctx context.Context, goos string) Platform {
	platform := Platform{OS: ParseOS(goos), Arch: Bit64}

	info, err := host.InfoWithContext(ctx)
	if err != nil || info == nil || info.KernelArch == "" {
		if strconv.IntSize == 32 {
			platform.Arch = Bit32
		}
		return platform
	}

	platform.Arch = ParseArch(info.KernelArch)
	return platform
}

// ParseOS maps GOOS-like names to an [OS].
func ParseOS(name string) OS {
	switch strings.ToLower(name) {
	case "windows":
		return Windows
	case "darwin", "macos", "osx":
		return MacOS
	case "linux":
		return Linux
	default:
		return Other
	}
}

// ParseArch maps kernel or GOARCH architecture names to an [Arch].
func ParseArch(name string) Arch {
	name = strings.ToLower(name)
	switch {
	case name == "32", name == "32bit", name == "x86", name == "386", name == "arm":
		return Bit32
	case strings.HasPrefix(name, "i") && strings.HasSuffix(name, "86"):
		return Bit32
	case strings.HasPrefix(name, "armv") && !strings.Contains(name, "64"):
		return Bit32
	default:
		return Bit64
	}
}
