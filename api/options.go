package api

// PageSize is the physical page format.
type PageSize string

const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "Letter"
	PageLegal  PageSize = "Legal"
)

// Orientation is the page orientation.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// Quality is the chart pixel-density tier.
type Quality string

const (
	QualityDraft    Quality = "draft"
	QualityStandard Quality = "standard"
	QualityHigh     Quality = "high"
)

// Multiplier returns the pixel-density factor for the tier. Unknown values
// fall back to standard.
func (q Quality) Multiplier() int {
	switch q {
	case QualityDraft:
		return 1
	case QualityHigh:
		return 3
	default:
		return 2
	}
}

// Margins are page margins in mm.
type Margins struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Options configures a single Generate call.
type Options struct {
	PageSize               PageSize    `json:"pageSize" yaml:"pageSize"`
	Orientation            Orientation `json:"orientation" yaml:"orientation"`
	Margins                Margins     `json:"margins" yaml:"margins"`
	IncludePageNumbers     bool        `json:"includePageNumbers" yaml:"includePageNumbers"`
	IncludeTableOfContents bool        `json:"includeTableOfContents" yaml:"includeTableOfContents"`
	Quality                Quality     `json:"quality" yaml:"quality"`
}

// DefaultOptions returns the options used when callers pass the zero value:
// portrait A4, 20mm margins, page numbers on, no TOC, standard quality.
func DefaultOptions() Options {
	return Options{
		PageSize:           PageA4,
		Orientation:        Portrait,
		Margins:            Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		IncludePageNumbers: true,
		Quality:            QualityStandard,
	}
}

// Normalized fills unset fields with their defaults.
func (o Options) Normalized() Options {
	def := DefaultOptions()
	if o.PageSize == "" {
		o.PageSize = def.PageSize
	}
	if o.Orientation == "" {
		o.Orientation = def.Orientation
	}
	if o.Margins == (Margins{}) {
		o.Margins = def.Margins
	}
	if o.Quality == "" {
		o.Quality = def.Quality
	}
	return o
}
