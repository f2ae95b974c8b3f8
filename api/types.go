package api

// ReportMetadata describes the document-level fields consumed by the cover
// page composer. All fields except Title are optional; blank values render as
// absent rather than failing validation.
type ReportMetadata struct {
	Title   string `json:"title" yaml:"title"`
	Author  string `json:"author,omitempty" yaml:"author,omitempty"`
	Date    string `json:"date,omitempty" yaml:"date,omitempty"`
	Company string `json:"company,omitempty" yaml:"company,omitempty"`
	// Subtype is a document subtype label shown under the title,
	// e.g. "Feasibility Study" or "Quarterly Review".
	Subtype string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	// Logo is an optional image placed on the cover page.
	Logo *Logo `json:"-" yaml:"-"`
}

// Logo is an opaque image handle: raw bytes plus their format.
type Logo struct {
	Data   []byte
	Format ImageFormat
}

// ImageFormat identifies the encoding of an image handle.
type ImageFormat string

const (
	ImagePNG  ImageFormat = "PNG"
	ImageJPEG ImageFormat = "JPG"
)

// Section is one unit of report content. It is a closed union: exactly
// TextSection, ChartSection and TableSection implement it, so the renderer
// dispatch can match exhaustively.
type Section interface {
	// SectionTitle returns the section heading.
	SectionTitle() string

	sectionNode()
}

// TextSection is a titled block of prose. Content is wrapped to the page
// width by the renderer.
type TextSection struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

func (s TextSection) SectionTitle() string { return s.Title }
func (TextSection) sectionNode()           {}

// ChartSection is a titled chart. Config is opaque to the layout engine; it
// is passed through to the chart rasterizer and hashed for the image cache.
type ChartSection struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Config      ChartConfig `json:"config" yaml:"config"`
	Theme       string      `json:"theme,omitempty" yaml:"theme,omitempty"`
	Size        SizeClass   `json:"size,omitempty" yaml:"size,omitempty"`
}

func (s ChartSection) SectionTitle() string { return s.Title }
func (ChartSection) sectionNode()           {}

// TableSection is a titled table. Layout is delegated to the grid layouter,
// which paginates rows internally.
type TableSection struct {
	Title   string     `json:"title" yaml:"title"`
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

func (s TableSection) SectionTitle() string { return s.Title }
func (TableSection) sectionNode()           {}

// ReportData is the read-only input to a single Generate call.
type ReportData struct {
	Metadata ReportMetadata `json:"metadata" yaml:"metadata"`
	// Sections are rendered in exactly this order.
	Sections []Section `json:"sections" yaml:"sections"`
}

// ChartType selects the shape a chart config is drawn as.
type ChartType string

const (
	ChartBar  ChartType = "bar"
	ChartLine ChartType = "line"
	ChartPie  ChartType = "pie"
)

// ChartConfig is the renderable description of a chart. The layout engine
// never inspects it; only the rasterizer interprets it.
type ChartConfig struct {
	Type   ChartType `json:"type" yaml:"type"`
	Labels []string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Series []Series  `json:"series" yaml:"series"`
}

// Series is one named sequence of values within a chart.
type Series struct {
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Values []float64 `json:"values" yaml:"values"`
}

// SizeClass controls how much of the content width a chart occupies.
type SizeClass string

const (
	SizeSmall     SizeClass = "small"
	SizeMedium    SizeClass = "medium"
	SizeLarge     SizeClass = "large"
	SizeFullWidth SizeClass = "full-width"
)

// chart aspect ratio (height / width)
const chartAspect = 0.625

// Dimensions returns the chart box in mm for the given content width.
// Classes narrower than the content width are clamped to it so small pages
// never overflow.
func (s SizeClass) Dimensions(contentWidth float64) (w, h float64) {
	switch s {
	case SizeSmall:
		w = 80
	case SizeMedium:
		w = 120
	case SizeLarge:
		w = 160
	default:
		w = contentWidth
	}
	if w > contentWidth {
		w = contentWidth
	}
	return w, w * chartAspect
}
