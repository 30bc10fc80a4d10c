// Package document renders purchase orders as PDF files.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"po-addon/internal/core"
)

const (
	ContentType = "application/pdf"

	margin     = 50.0
	fontFamily = "Helvetica"
	bodySize   = 12.0
	lineHeight = 14.0
)

// Renderer turns a purchase order into PDF bytes. It holds no per-document
// state and is safe for concurrent use.
type Renderer struct {
	compress bool
	creator  string
}

type Option func(*Renderer)

// WithCompression toggles stream compression. Uncompressed output keeps the
// text operators readable.
func WithCompression(on bool) Option {
	return func(r *Renderer) { r.compress = on }
}

func WithCreator(name string) Option {
	return func(r *Renderer) { r.creator = name }
}

func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{compress: true, creator: "po-addon"}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render lays out po and returns the finished document. It only returns once
// every byte has been written to the in-memory buffer.
func (r *Renderer) Render(po *core.PurchaseOrder) ([]byte, error) {
	if po == nil {
		return nil, fmt.Errorf("render purchase order: nil document")
	}

	pdf := r.layout(po)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("layout purchase order: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write purchase order: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) layout(po *core.PurchaseOrder) *fpdf.Fpdf {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetCompression(r.compress)
	pdf.SetCreator(r.creator, false)
	pdf.SetTitle(latin1("Purchase Order "+po.JobNumber), false)
	pdf.SetCreationDate(po.Date)
	pdf.AddPage()

	text := func(s string) {
		pdf.MultiCell(0, lineHeight, latin1(s), "", "L", false)
	}

	pdf.SetFont(fontFamily, "", 20)
	pdf.CellFormat(0, 24, "PURCHASE ORDER", "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)

	pdf.SetFont(fontFamily, "", bodySize)
	text(fmt.Sprintf("Job: %s – %s", po.JobNumber, po.JobName))
	text("Date: " + po.FormattedDate())
	text("Supplier: " + po.Supplier.DisplayName())
	text("Email: " + po.Supplier.Email)
	pdf.Ln(lineHeight)

	pdf.SetFont(fontFamily, "U", bodySize)
	text("Items")
	pdf.SetFont(fontFamily, "", bodySize)
	for _, line := range po.Lines {
		text(line.Describe())
	}
	pdf.Ln(lineHeight)

	pdf.SetFont(fontFamily, "", 14)
	pdf.CellFormat(0, 18, latin1("TOTAL: $"+core.FormatMoney(po.Total)), "", 1, "R", false, 0, "")

	return pdf
}

// latin1 converts s to Windows-1252 for the PDF core fonts. Runes outside the
// code page become '?'.
func latin1(s string) string {
	s = strings.Map(func(r rune) rune {
		if _, ok := charmap.Windows1252.EncodeRune(r); ok {
			return r
		}
		return '?'
	}, s)
	out, _, err := transform.String(charmap.Windows1252.NewEncoder(), s)
	if err != nil {
		return s
	}
	return out
}
