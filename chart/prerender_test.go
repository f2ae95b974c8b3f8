package chart

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillpdf/quill/api"
)

// countingRenderer records every render call and fails on demand.
type countingRenderer struct {
	calls   atomic.Int64
	failFor string // series name that triggers a failure
}

func (r *countingRenderer) Render(config api.ChartConfig, theme string, widthPx, heightPx int) ([]byte, error) {
	r.calls.Add(1)
	if len(config.Series) > 0 && config.Series[0].Name == r.failFor {
		return nil, errors.New("boom")
	}
	return []byte(fmt.Sprintf("img-%s-%dx%d", config.Series[0].Name, widthPx, heightPx)), nil
}

func section(name string, values ...float64) api.ChartSection {
	return api.ChartSection{
		Title:  "Chart " + name,
		Config: api.ChartConfig{Type: api.ChartBar, Series: []api.Series{{Name: name, Values: values}}},
		Size:   api.SizeMedium,
	}
}

func TestKeyStable(t *testing.T) {
	a := section("a", 1, 2)
	assert.Equal(t, Key(a.Title, a.Config), Key(a.Title, a.Config))
	assert.NotEqual(t, Key(a.Title, a.Config), Key("other", a.Config))

	b := section("a", 1, 3)
	assert.NotEqual(t, Key(a.Title, a.Config), Key(b.Title, b.Config), "config changes change the key")
}

func TestPrerenderBuildsCache(t *testing.T) {
	r := &countingRenderer{}
	sections := []api.ChartSection{
		section("a", 1, 2),
		section("b", 3, 4),
		section("c", 5, 6),
	}

	cache := Prerender(r, sections, 170, api.QualityStandard)

	assert.Equal(t, 3, cache.Len())
	assert.EqualValues(t, 3, r.calls.Load())
	for _, s := range sections {
		img, ok := cache.Image(Key(s.Title, s.Config))
		require.True(t, ok)
		assert.NotEmpty(t, img)
		assert.NoError(t, cache.Err(Key(s.Title, s.Config)))
	}
}

func TestPrerenderRecordsFailuresPerKey(t *testing.T) {
	r := &countingRenderer{failFor: "b"}
	sections := []api.ChartSection{
		section("a", 1),
		section("b", 2),
		section("c", 3),
	}

	cache := Prerender(r, sections, 170, api.QualityStandard)

	assert.Equal(t, 2, cache.Len(), "failures do not fail the batch")

	bad := Key(sections[1].Title, sections[1].Config)
	_, ok := cache.Image(bad)
	assert.False(t, ok)
	assert.Error(t, cache.Err(bad))
}

func TestPrerenderDeduplicatesIdenticalSections(t *testing.T) {
	r := &countingRenderer{}
	same := section("a", 1, 2)

	cache := Prerender(r, []api.ChartSection{same, same, same}, 170, api.QualityStandard)

	assert.Equal(t, 1, cache.Len())
	assert.EqualValues(t, 1, r.calls.Load(), "identical sections render once")
}

func TestPrerenderEmpty(t *testing.T) {
	r := &countingRenderer{}
	cache := Prerender(r, nil, 170, api.QualityStandard)
	assert.Equal(t, 0, cache.Len())
	assert.EqualValues(t, 0, r.calls.Load())
}

func TestPrerenderManySections(t *testing.T) {
	r := &countingRenderer{}
	sections := make([]api.ChartSection, 0, 32)
	for i := 0; i < 32; i++ {
		sections = append(sections, section(fmt.Sprintf("s%02d", i), float64(i)))
	}

	cache := Prerender(r, sections, 170, api.QualityHigh)

	assert.Equal(t, 32, cache.Len())
	assert.EqualValues(t, 32, r.calls.Load())
}
