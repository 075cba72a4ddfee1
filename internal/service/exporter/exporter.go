// Package exporter turns a composed document into a downloadable DOCX or PDF.
package exporter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"k8s.io/klog/v2"

	"github.com/pathiram/backend/internal/service/composer"
)

var (
	// ErrEmptySource is returned when there is no composed document to export.
	ErrEmptySource = errors.New("nothing to export")
	// ErrUnknownFormat is returned for a format without a registered writer.
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrCorruptOutput is returned when a writer produced bytes that do not
	// look like the requested format.
	ErrCorruptOutput = errors.New("export produced a corrupt file")
)

type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// ParseFormat resolves a format name; "" means DOCX.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatDOCX:
		return FormatDOCX, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

const (
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"
)

// Writer renders a document in one format.
type Writer interface {
	Format() Format
	ContentType() string
	Write(ctx context.Context, doc *composer.Document, w io.Writer) error
}

// Result is a complete export, held in memory until it has been checked.
type Result struct {
	Format      Format
	ContentType string
	Data        []byte
}

// Filename returns base with the format's extension.
func (r *Result) Filename(base string) string {
	return base + "." + string(r.Format)
}

// Options configures the default writers.
type Options struct {
	Fonts FontSet
	// TTF files embedded into PDFs. Missing files fall back to core fonts.
	TamilFontPath string
	LatinFontPath string
}

type Exporter struct {
	writers map[Format]Writer
}

// New returns an exporter dispatching to the given writers.
func New(writers ...Writer) *Exporter {
	e := &Exporter{writers: make(map[Format]Writer, len(writers))}
	for _, w := range writers {
		e.writers[w.Format()] = w
	}
	return e
}

// NewDefault returns an exporter with the DOCX and PDF writers.
func NewDefault(opts Options) *Exporter {
	if opts.Fonts.Latin == "" || opts.Fonts.Tamil == "" {
		opts.Fonts = DefaultFonts
	}
	return New(NewDOCXWriter(opts.Fonts), NewPDFWriter(opts))
}

// Export renders doc. An empty document is rejected before any writer runs,
// and output that fails the content sniff is discarded.
func (e *Exporter) Export(ctx context.Context, doc *composer.Document, format Format) (*Result, error) {
	if doc.Empty() {
		return nil, ErrEmptySource
	}
	w, ok := e.writers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := w.Write(ctx, doc, &buf); err != nil {
		return nil, fmt.Errorf("write %s: %w", format, err)
	}
	if err := verify(buf.Bytes(), w.ContentType()); err != nil {
		klog.Errorf("export %s of %s failed verification: %v", format, doc.Type, err)
		return nil, err
	}
	klog.V(6).Infof("exported %s as %s (%d bytes)", doc.Type, format, buf.Len())
	return &Result{Format: format, ContentType: w.ContentType(), Data: buf.Bytes()}, nil
}

// verify sniffs data and accepts it when the detected type, or one of its
// parents, is want. DOCX is a zip, so a plain zip detection also passes.
func verify(data []byte, want string) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: empty output", ErrCorruptOutput)
	}
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(want) || (want == contentTypeDOCX && m.Is("application/zip")) {
			return nil
		}
	}
	return fmt.Errorf("%w: got %s, want %s", ErrCorruptOutput, detected.String(), want)
}
