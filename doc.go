// Package quill assembles structured report descriptions — metadata plus an
// ordered list of text, chart, and table sections — into paginated PDF
// documents.
//
// The root package is a thin facade; the layout engine lives in pdf, the
// data model in api, and chart rasterization in chart.
//
//	report := api.ReportData{
//		Metadata: api.ReportMetadata{Title: "Q3 Review"},
//		Sections: []api.Section{
//			api.TextSection{Title: "Summary", Content: "..."},
//		},
//	}
//	data, err := quill.Generate(report, api.DefaultOptions())
package quill
