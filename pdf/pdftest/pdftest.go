// Package pdftest provides helpers for asserting on generated PDF bytes:
// structural validation and page counts via pdfcpu, text extraction via
// ledongthuc/pdf for content and ordering checks.
package pdftest

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// AssertValid fails the test unless the bytes are a structurally sound PDF.
func AssertValid(t *testing.T, data []byte) {
	t.Helper()

	if len(data) < 4 || string(data[:4]) != "%PDF" {
		t.Fatalf("output does not start with a PDF header")
	}
	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		t.Fatalf("PDF structure validation failed: %v", err)
	}
}

// PageCount returns the physical page count as reported by pdfcpu. The
// context must be validated first: ReadContext alone leaves PageCount at
// zero.
func PageCount(t *testing.T, data []byte) int {
	t.Helper()

	ctx, err := api.ReadContext(bytes.NewReader(data), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("failed to read PDF: %v", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		t.Fatalf("PDF validation failed: %v", err)
	}
	return ctx.PageCount
}

// PageText extracts the plain text of one page (1-based).
func PageText(t *testing.T, data []byte, page int) string {
	t.Helper()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open PDF for text extraction: %v", err)
	}
	if page < 1 || page > r.NumPage() {
		t.Fatalf("page %d out of range 1..%d", page, r.NumPage())
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return ""
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		t.Fatalf("failed to extract text from page %d: %v", page, err)
	}
	return text
}

// AllText concatenates the plain text of every page in page order.
func AllText(t *testing.T, data []byte) string {
	t.Helper()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open PDF for text extraction: %v", err)
	}
	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			t.Fatalf("failed to extract text from page %d: %v", i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

// PageOf returns the first page (1-based) whose text contains needle, or an
// error if no page does.
func PageOf(t *testing.T, data []byte, needle string) (int, error) {
	t.Helper()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open PDF for text extraction: %v", err)
	}
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			t.Fatalf("failed to extract text from page %d: %v", i, err)
		}
		if strings.Contains(text, needle) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("text %q not found on any page", needle)
}

// AssertTextOrder fails unless every needle occurs in the document text in
// the given order.
func AssertTextOrder(t *testing.T, data []byte, ordered []string) {
	t.Helper()

	text := AllText(t, data)
	pos := 0
	for _, needle := range ordered {
		idx := strings.Index(text[pos:], needle)
		if idx < 0 {
			t.Fatalf("text %q missing or out of order", needle)
		}
		pos += idx + len(needle)
	}
}
