package inliner

import (
	"bytes"
	"context"
	"encoding/base64"
	"html"
	"log"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/time/rate"
)

// The rasterization stage runs off-screen and must not depend on live
// network fetches or cross-origin rules, so every remote image reference is
// resolved to an embedded data URI before the markup reaches it.

const fetchTimeout = 10 * time.Second

// PlaceholderDataURI is the fixed substitute used when an image cannot be
// loaded in time: a small neutral rectangle labeled "Image".
const PlaceholderDataURI = "data:image/svg+xml;base64,PHN2ZyB3aWR0aD0iMjAwIiBoZWlnaHQ9IjIwMCIgeG1sbnM9Imh0dHA6Ly93d3cudzMub3JnLzIwMDAvc3ZnIj48cmVjdCB3aWR0aD0iMTAwJSIgaGVpZ2h0PSIxMDAlIiBmaWxsPSIjZjNmNGY2Ii8+PHRleHQgeD0iNTAlIiB5PSI1MCUiIGZvbnQtZmFtaWx5PSJBcmlhbCIgZm9udC1zaXplPSIxNCIgZmlsbD0iIzk5YTNhZiIgdGV4dC1hbmNob3I9Im1pZGRsZSIgZHk9Ii4zZW0iPkltYWdlPC90ZXh0Pjwvc3ZnPg=="

var imgSrcRe = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

type Inliner struct {
	client  *http.Client
	limiter *rate.Limiter
}

func New() *Inliner {
	return &Inliner{
		// Per-fetch deadlines come from the request context.
		client:  &http.Client{},
		limiter: rate.NewLimiter(10, 5),
	}
}

// Inline returns a copy of the markup with every remote image reference
// replaced by an embedded representation. It never fails as a whole: a URL
// that errors or exceeds the timeout is substituted with the placeholder.
func (il *Inliner) Inline(ctx context.Context, markup string) string {
	urls := remoteImageURLs(markup)
	if len(urls) == 0 {
		return markup
	}

	// Each distinct URL is fetched exactly once; all fetches run
	// concurrently and replacement waits for every one to settle.
	resolved := make(map[string]string, len(urls))
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, u := range urls {
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			data := il.fetchDataURI(ctx, u)
			mu.Lock()
			resolved[u] = data
			mu.Unlock()
		}(u)
	}
	wg.Wait()

	for _, u := range urls {
		markup = strings.ReplaceAll(markup, u, resolved[u])
	}
	return markup
}

func (il *Inliner) fetchDataURI(ctx context.Context, rawURL string) string {
	if err := il.limiter.Wait(ctx); err != nil {
		return PlaceholderDataURI
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	// The scanned token may carry template attribute escaping.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, html.UnescapeString(rawURL), nil)
	if err != nil {
		return PlaceholderDataURI
	}

	resp, err := il.client.Do(req)
	if err != nil {
		log.Printf("inline image %s: %v", rawURL, err)
		return PlaceholderDataURI
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("inline image %s: status %d", rawURL, resp.StatusCode)
		return PlaceholderDataURI
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		log.Printf("inline image %s: decode: %v", rawURL, err)
		return PlaceholderDataURI
	}

	// Re-encode as PNG so identical inputs always produce identical bytes.
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		log.Printf("inline image %s: encode: %v", rawURL, err)
		return PlaceholderDataURI
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// remoteImageURLs collects the distinct fully-qualified image sources in
// first-appearance order.
func remoteImageURLs(markup string) []string {
	var urls []string
	seen := make(map[string]bool)
	for _, m := range imgSrcRe.FindAllStringSubmatch(markup, -1) {
		src := m[1]
		if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
			continue
		}
		if !seen[src] {
			seen[src] = true
			urls = append(urls, src)
		}
	}
	return urls
}
