package binary

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Fetcher downloads the contents behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string, w io.Writer) error
}

// DefaultTimeout bounds a whole download, including reading the body.
const DefaultTimeout = 5 * time.Minute

// UserAgent is sent along every request made by [HTTPFetcher].
var UserAgent = "hugoup"

// HTTPFetcher is a [Fetcher] using plain http.
// A progress bar is rendered on stderr while downloading, only when stderr
// is a terminal and Progress is set.
type HTTPFetcher struct {
	Client   *http.Client
	Progress bool
}

// NewHTTPFetcher creates a fetcher with the default timeout.
func NewHTTPFetcher(progress bool) *HTTPFetcher {
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: DefaultTimeout},
		Progress: progress,
	}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string, w io.Writer) error {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: invalid request for %s: %w", ErrFetch, url, err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to download %s: %w", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: received unexpected response when downloading %s: http%d", ErrFetch, url, resp.StatusCode)
	}

	var body io.Reader = resp.Body
	if f.Progress {
		var finish func()
		body, finish = progress(resp.Body, resp.ContentLength)
		defer finish()
	}

	if _, err := io.Copy(w, body); err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrFetch, url, err)
	}

	return nil
}

// progress wraps an io.Reader to display a progress bar when running in a terminal.
// Returns the wrapped reader and a function to finalize the progress display.
func progress(reader io.Reader, size int64) (io.Reader, func()) {
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return reader, func() {}
	}

	bar := pb.
		New64(size).
		SetWriter(os.Stderr).
		SetTemplate(
			pb.ProgressBarTemplate(
				color.New(color.FgHiBlack).Sprint(
					`   └ {{counters . }}` +
						` {{bar . "[" "=" ">" " " "]" }} {{percent . }}` +
						` {{speed . }}`,
				),
			),
		).
		SetRefreshRate(time.Second / 60).
		SetMaxWidth(100).
		Start()

	return bar.NewProxyReader(reader), func() { bar.Finish() }
}
