package pdfgen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Runner abstracts external command execution for easier testing/mocking.
type Runner interface {
	Run(timeout time.Duration, name string, args ...string) (stdout string, stderr string, err error)
}

type realRunner struct{}

func (realRunner) Run(timeout time.Duration, name string, args ...string) (string, string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return out.String(), errb.String(), fmt.Errorf("%s timed out after %s", name, timeout)
	}
	return out.String(), errb.String(), err
}

// measureScript reports the laid-out content height through the document
// title, where a DOM dump can read it back.
const measureScript = `<script>addEventListener("load",function(){document.title=String(document.documentElement.scrollHeight)})</script>`

var domTitleRe = regexp.MustCompile(`<title>(\d+)</title>`)

// ChromiumRasterizer captures the surface with a headless browser. The
// surface is written to a temp file that plays the role of the off-screen
// container and is removed on every exit path.
//
// Capture runs in two passes: a DOM dump measures the full content height,
// then the screenshot window is sized to that height so nothing below the
// first viewport is lost.
type ChromiumRasterizer struct {
	bin    string
	runner Runner
}

func NewChromiumRasterizer(bin string) *ChromiumRasterizer {
	if bin == "" {
		bin = os.Getenv("RASTERIZER_BIN")
	}
	if bin == "" {
		bin = "chromium"
	}
	return &ChromiumRasterizer{bin: bin, runner: realRunner{}}
}

func (c *ChromiumRasterizer) Rasterize(ctx context.Context, s Surface, opts RasterOptions) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	htmlFile, err := os.CreateTemp("", "itinerary-*.html")
	if err != nil {
		return nil, fmt.Errorf("create surface file: %w", err)
	}
	defer os.Remove(htmlFile.Name())

	extra := fmt.Sprintf("<style>body{padding:%.0fmm;background:#fff}</style>%s", opts.PaddingMM, measureScript)
	if _, err := htmlFile.WriteString(injectHead(s.HTML, extra)); err != nil {
		htmlFile.Close()
		return nil, fmt.Errorf("write surface file: %w", err)
	}
	if err := htmlFile.Close(); err != nil {
		return nil, fmt.Errorf("close surface file: %w", err)
	}

	// Window size is in CSS pixels; the device scale factor alone produces
	// the capture scale.
	widthPx := int(math.Round(opts.WidthMM / 25.4 * 96))

	heightPx, err := c.measure(htmlFile.Name(), widthPx, opts)
	if err != nil {
		return nil, err
	}

	outFile := filepath.Join(os.TempDir(), fmt.Sprintf("itinerary-%d.png", time.Now().UnixNano()))
	defer os.Remove(outFile)

	args := []string{
		"--headless",
		"--disable-gpu",
		"--hide-scrollbars",
		"--default-background-color=FFFFFFFF",
		fmt.Sprintf("--force-device-scale-factor=%g", opts.Scale),
		fmt.Sprintf("--window-size=%d,%d", widthPx, heightPx),
		fmt.Sprintf("--virtual-time-budget=%d", opts.ImageTimeout.Milliseconds()),
		"--screenshot=" + outFile,
		"file://" + htmlFile.Name(),
	}

	_, stderr, err := c.runner.Run(opts.ImageTimeout+30*time.Second, c.bin, args...)
	if err != nil {
		return nil, fmt.Errorf("rasterize surface: %w: %s", err, strings.TrimSpace(stderr))
	}

	img, err := imaging.Open(outFile)
	if err != nil {
		return nil, fmt.Errorf("read captured bitmap: %w", err)
	}
	return img, nil
}

// measure lays the surface out at the target width and reads the content
// height the measure script stored in the title.
func (c *ChromiumRasterizer) measure(file string, widthPx int, opts RasterOptions) (int, error) {
	args := []string{
		"--headless",
		"--disable-gpu",
		"--hide-scrollbars",
		fmt.Sprintf("--window-size=%d,%d", widthPx, 100),
		fmt.Sprintf("--virtual-time-budget=%d", opts.ImageTimeout.Milliseconds()),
		"--dump-dom",
		"file://" + file,
	}

	stdout, stderr, err := c.runner.Run(opts.ImageTimeout+30*time.Second, c.bin, args...)
	if err != nil {
		return 0, fmt.Errorf("measure surface: %w: %s", err, strings.TrimSpace(stderr))
	}

	m := domTitleRe.FindStringSubmatch(stdout)
	if m == nil {
		return 0, fmt.Errorf("measure surface: content height not reported")
	}
	h, err := strconv.Atoi(m[1])
	if err != nil || h <= 0 {
		return 0, fmt.Errorf("measure surface: bad content height %q", m[1])
	}
	return h, nil
}

// injectHead places adapter markup inside the document head instead of
// relying on parser error recovery for content appended after the document.
func injectHead(markup, extra string) string {
	if i := strings.Index(markup, "</head>"); i >= 0 {
		return markup[:i] + extra + markup[i:]
	}
	return extra + markup
}
