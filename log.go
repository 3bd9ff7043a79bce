package hugoup

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// LogStep prints a top level step of an operation.
func LogStep(text string) {
	fmt.Println(
		color.BlueString(" •"),
		color.New(color.FgHiBlack).Sprint(text),
	)
}

// LogDetail prints additional information about the step currently running.
func LogDetail(text string) {
	fmt.Println(
		color.New(color.FgHiBlack).Sprint("   └"),
		color.New(color.FgHiBlack).Sprint(text),
	)
}

// LogElapsed prints the time elapsed since start, colored by outcome.
// Meant to be deferred right after start is taken.
func LogElapsed(start time.Time, err error) {
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		color.Red("     ✘ %s", elapsed)
		return
	}
	color.Green("     ✔ %s", elapsed)
}

// NewLogger builds the logger used for warnings and diagnostics.
// A nil writer defaults to stderr.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "hugoup",
		Level:  log.InfoLevel,
	})
}
