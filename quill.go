package quill

import (
	"fmt"
	"os"

	"github.com/quillpdf/quill/api"
	"github.com/quillpdf/quill/pdf"
)

// Generate assembles the report into a PDF and returns its bytes.
func Generate(report api.ReportData, opts api.Options) ([]byte, error) {
	return pdf.New(opts).Generate(report)
}

// GenerateFile assembles the report and writes the PDF to path.
func GenerateFile(report api.ReportData, opts api.Options, path string) error {
	data, err := Generate(report, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
