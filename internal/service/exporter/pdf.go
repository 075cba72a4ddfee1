package exporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"
	"k8s.io/klog/v2"

	"github.com/pathiram/backend/internal/service/composer"
)

const (
	pdfMargin     = 15.0 // mm on every side
	pdfIndent     = 10.0
	pdfCoreFamily = "Times"
	pdfTamil      = "tamil"
	pdfLatin      = "latin"
)

// PDFWriter prints Legal portrait pages and starts a new page at every
// section change: title, parties, property, witnesses.
//
// fpdf places glyphs without complex-script shaping, so Tamil vowel signs
// render in logical order. A TTF with precomposed glyph coverage reads fine.
type PDFWriter struct {
	tamilTTF []byte
	latinTTF []byte
}

func NewPDFWriter(opts Options) *PDFWriter {
	return &PDFWriter{
		tamilTTF: loadFont(opts.TamilFontPath),
		latinTTF: loadFont(opts.LatinFontPath),
	}
}

func loadFont(path string) []byte {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		klog.Warningf("pdf font %s not found, using core fonts: %v", path, err)
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		klog.Warningf("read pdf font %s: %v", path, err)
		return nil
	}
	return data
}

func (w *PDFWriter) Format() Format      { return FormatPDF }
func (w *PDFWriter) ContentType() string { return contentTypePDF }

// Paginate groups consecutive blocks of the same section; each group is
// printed on a fresh page. The first group never leaves a blank page ahead.
func Paginate(doc *composer.Document) [][]composer.Block {
	if doc == nil {
		return nil
	}
	var (
		pages   [][]composer.Block
		current composer.Section
	)
	for i, b := range doc.Blocks {
		if i == 0 || b.Section != current {
			pages = append(pages, nil)
			current = b.Section
		}
		pages[len(pages)-1] = append(pages[len(pages)-1], b)
	}
	return pages
}

func (w *PDFWriter) Write(ctx context.Context, doc *composer.Document, out io.Writer) error {
	pdf := fpdf.New("P", "mm", "Legal", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AliasNbPages("")
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("pathiram", true)

	text := w.register(pdf)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont(text.fonts.Latin, "", 9)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	for _, page := range Paginate(doc) {
		if err := ctx.Err(); err != nil {
			return err
		}
		pdf.AddPage()
		for _, b := range page {
			text.block(pdf, b)
		}
	}
	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(out)
}

// pdfText writes segmented runs with the families registered on one Fpdf.
type pdfText struct {
	fonts     FontSet
	utf8      map[string]bool
	translate func(string) string
}

func (w *PDFWriter) register(pdf *fpdf.Fpdf) *pdfText {
	t := &pdfText{
		fonts:     FontSet{Latin: pdfCoreFamily, Tamil: pdfCoreFamily},
		utf8:      map[string]bool{},
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	if w.tamilTTF != nil {
		pdf.AddUTF8FontFromBytes(pdfTamil, "", w.tamilTTF)
		t.fonts.Tamil = pdfTamil
		t.utf8[pdfTamil] = true
	}
	if w.latinTTF != nil {
		pdf.AddUTF8FontFromBytes(pdfLatin, "", w.latinTTF)
		t.fonts.Latin = pdfLatin
		t.utf8[pdfLatin] = true
	}
	return t
}

func (t *pdfText) encode(run Run) string {
	if t.utf8[run.Font] {
		return run.Text
	}
	return t.translate(run.Text)
}

func (t *pdfText) write(pdf *fpdf.Fpdf, text string, size, lineHeight float64) {
	for _, run := range Segment(text, t.fonts) {
		pdf.SetFont(run.Font, "", size)
		pdf.Write(lineHeight, t.encode(run))
	}
}

func (t *pdfText) width(pdf *fpdf.Fpdf, text string, size float64) float64 {
	var total float64
	for _, run := range Segment(text, t.fonts) {
		pdf.SetFont(run.Font, "", size)
		total += pdf.GetStringWidth(t.encode(run))
	}
	return total
}

func (t *pdfText) centered(pdf *fpdf.Fpdf, text string, size, lineHeight float64) {
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	available := pageWidth - left - right
	if w := t.width(pdf, text, size); w < available {
		pdf.SetX(left + (available-w)/2)
	}
	t.write(pdf, text, size, lineHeight)
}

func (t *pdfText) block(pdf *fpdf.Fpdf, b composer.Block) {
	left, _, _, _ := pdf.GetMargins()
	switch b.Kind {
	case composer.KindTitle:
		t.centered(pdf, b.Text, 16, 8)
		pdf.Ln(12)
	case composer.KindHeading:
		pdf.Ln(4)
		t.centered(pdf, b.Text, 14, 7)
		pdf.Ln(9)
	case composer.KindParagraph:
		pdf.SetX(left + pdfIndent)
		t.write(pdf, b.Text, 12, 7)
		pdf.Ln(9)
	case composer.KindBoundaries:
		for _, line := range b.Lines() {
			pdf.SetX(left + pdfIndent)
			t.write(pdf, line, 12, 7)
			pdf.Ln(7)
		}
	case composer.KindWitnesses:
		for _, line := range b.Lines() {
			t.write(pdf, line, 12, 7)
			pdf.Ln(14)
		}
	case composer.KindTypist:
		pdf.Ln(6)
		t.write(pdf, b.Text, 10, 6)
		pdf.Ln(6)
	}
}
