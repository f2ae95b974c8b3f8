package chart

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/flanksource/commons/logger"

	"github.com/quillpdf/quill/api"
)

// ImageCache maps section keys to pre-rendered PNG images. It is built once
// by Prerender, read-only afterwards, and scoped to a single Generate call.
type ImageCache struct {
	images map[string][]byte
	errs   map[string]error
}

// Image returns the cached image for a key.
func (c *ImageCache) Image(key string) ([]byte, bool) {
	img, ok := c.images[key]
	return img, ok
}

// Err returns the failure recorded for a key during the batch, if any.
func (c *ImageCache) Err(key string) error {
	return c.errs[key]
}

// Len returns the number of successfully cached images.
func (c *ImageCache) Len() int {
	return len(c.images)
}

// Key derives the stable cache key for a chart section: a hash of its title
// and config. Identical sections share one key and one rendered image.
func Key(title string, config api.ChartConfig) string {
	h := sha256.New()
	h.Write([]byte(title))
	if encoded, err := json.Marshal(config); err == nil {
		h.Write(encoded)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// batch worker cap
const maxRenderWorkers = 4

// Prerender rasterizes every chart section up front, concurrently, and
// returns the resulting cache. Individual failures are recorded per key and
// logged; they never fail the batch. The call returns only once every
// render has completed or been marked failed.
func Prerender(r Renderer, sections []api.ChartSection, contentWidth float64, quality api.Quality) *ImageCache {
	cache := &ImageCache{
		images: make(map[string][]byte, len(sections)),
		errs:   make(map[string]error),
	}
	if len(sections) == 0 {
		return cache
	}

	type job struct {
		key     string
		section api.ChartSection
	}

	// Deduplicate by key so an identical section is never rendered twice.
	jobs := make([]job, 0, len(sections))
	seen := make(map[string]struct{}, len(sections))
	for _, s := range sections {
		key := Key(s.Title, s.Config)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		jobs = append(jobs, job{key: key, section: s})
	}

	workers := maxRenderWorkers
	if len(jobs) < workers {
		workers = len(jobs)
	}

	queue := make(chan job)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range queue {
				w, h := PixelSize(j.section.Size, contentWidth, quality)
				img, err := r.Render(j.section.Config, j.section.Theme, w, h)

				mu.Lock()
				if err != nil {
					logger.Warnf("pre-render failed for chart %q: %v", j.section.Title, err)
					cache.errs[j.key] = err
				} else {
					cache.images[j.key] = img
				}
				mu.Unlock()
			}
		}()
	}

	for _, j := range jobs {
		queue <- j
	}
	close(queue)
	wg.Wait()

	logger.Debugf("pre-rendered %d/%d charts", cache.Len(), len(jobs))
	return cache
}
