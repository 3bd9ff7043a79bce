package binary

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aexvir/hugoup"
)

// Alternate installs hugo through some other channel than the release
// downloads, e.g. a system package manager.
type Alternate interface {
	Install(ctx context.Context) error
}

// Brew installs or upgrades hugo with homebrew.
type Brew struct {
	// Command is the brew executable, looked up in the system path by default.
	Command string
}

func (b Brew) Install(ctx context.Context) error {
	brew := b.Command
	if brew == "" {
		brew = "brew"
	}

	hugoup.LogStep("installing hugo with homebrew")

	err := hugoup.Run(ctx, brew,
		hugoup.WithArgs("update"),
		hugoup.WithErrMsg("   └ homebrew couldn't update, falling back to the release downloads"),
	)
	if err != nil {
		return fmt.Errorf("failed to update homebrew: %w", err)
	}

	action := "install"

	var listed bytes.Buffer
	err = hugoup.Run(ctx, brew,
		hugoup.WithArgs("list", "--versions", "hugo"),
		hugoup.WithoutNoise(),
		hugoup.WithStdOut(&listed),
	)
	if err == nil {
		action = "upgrade"
		if current := strings.TrimSpace(listed.String()); current != "" {
			hugoup.LogDetail(fmt.Sprintf("homebrew has %s", current))
		}
	}

	err = hugoup.Run(ctx, brew,
		hugoup.WithArgs(action, "hugo"),
		// the update above already ran
		hugoup.WithEnv("HOMEBREW_NO_AUTO_UPDATE=1"),
		hugoup.WithOKMsg(fmt.Sprintf("   └ hugo %sd with homebrew", action)),
		hugoup.WithErrMsg(fmt.Sprintf("   └ homebrew couldn't %s hugo, falling back to the release downloads", action)),
	)
	if err != nil {
		return fmt.Errorf("failed to %s hugo with homebrew: %w", action, err)
	}

	return nil
}
