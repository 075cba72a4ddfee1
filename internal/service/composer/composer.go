// Package composer turns a typed field record into Tamil legal prose.
//
// Every template is a fixed sequence of blocks. Prose is assembled from
// conditional clauses: a clause contributes only when its backing fields are
// non-empty, so an empty record yields the static titles and headings alone.
// Compose is pure and may be called on every keystroke.
package composer

import (
	"strconv"
	"strings"

	"github.com/pathiram/backend/internal/model"
)

type BlockKind string

const (
	KindTitle      BlockKind = "title"
	KindHeading    BlockKind = "heading"
	KindParagraph  BlockKind = "paragraph"
	KindBoundaries BlockKind = "boundaries"
	KindWitnesses  BlockKind = "witnesses"
	KindTypist     BlockKind = "typist"
)

// Section groups blocks for pagination. Printed output starts a new page
// whenever the section changes.
type Section string

const (
	SectionTitle     Section = "title"
	SectionParties   Section = "parties"
	SectionProperty  Section = "property"
	SectionWitnesses Section = "witnesses"
)

type Block struct {
	Kind    BlockKind `json:"kind"`
	Section Section   `json:"section"`
	Text    string    `json:"text,omitempty"`
	Items   []string  `json:"items,omitempty"`
}

// Document is the composed output shared by the preview and the exporters.
type Document struct {
	Type      model.DocumentType `json:"type"`
	Title     string             `json:"title"`
	Executant string             `json:"executant,omitempty"`
	Recipient string             `json:"recipient,omitempty"`
	Blocks    []Block            `json:"blocks"`
}

// Labels for the running header.
const (
	ExecutantLabel = "எழுதிக் கொடுப்பவர்"
	RecipientLabel = "எழுதி வாங்குபவர்"
)

// Compose derives computed fields and renders the template of f's type.
// A nil record yields nil.
func Compose(f model.Fields) *Document {
	if f == nil {
		return nil
	}
	switch v := f.Derive().(type) {
	case model.ReceiptFields:
		return composeReceipt(v)
	case model.AgreementFields:
		return composeAgreement(v)
	case model.ReleaseFields:
		return composeRelease(v)
	case model.SaleFields:
		return composeSale(v)
	}
	return nil
}

func newDocument(f model.Fields) *Document {
	executant, recipient := f.PartyLabels()
	d := &Document{
		Type:      f.DocumentType(),
		Title:     f.DocumentType().Title(),
		Executant: executant,
		Recipient: recipient,
	}
	d.Blocks = append(d.Blocks, Block{Kind: KindTitle, Section: SectionTitle, Text: d.Title})
	return d
}

// Empty reports whether there is nothing to export.
func (d *Document) Empty() bool {
	return d == nil || len(d.Blocks) == 0
}

// Lines flattens the document into printable lines, numbering witnesses.
func (d *Document) Lines() []string {
	if d == nil {
		return nil
	}
	var lines []string
	for _, b := range d.Blocks {
		lines = append(lines, b.Lines()...)
	}
	return lines
}

// Text is the plain-text rendering used by the CLI and tests.
func (d *Document) Text() string {
	return strings.Join(d.Lines(), "\n")
}

// Lines returns the printable lines of one block.
func (b Block) Lines() []string {
	switch b.Kind {
	case KindWitnesses:
		lines := make([]string, 0, len(b.Items))
		for i, item := range b.Items {
			lines = append(lines, strconv.Itoa(i+1)+". "+item)
		}
		return lines
	case KindBoundaries:
		return append([]string(nil), b.Items...)
	}
	if b.Text == "" {
		return nil
	}
	return []string{b.Text}
}

func (d *Document) heading(section Section, text string) {
	d.Blocks = append(d.Blocks, Block{Kind: KindHeading, Section: section, Text: text})
}

// paragraph appends text unless every clause in it was empty.
func (d *Document) paragraph(section Section, text string) {
	if text == "" {
		return
	}
	d.Blocks = append(d.Blocks, Block{Kind: KindParagraph, Section: section, Text: text})
}

func (d *Document) list(kind BlockKind, section Section, items ...string) {
	var kept []string
	for _, item := range items {
		if item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return
	}
	d.Blocks = append(d.Blocks, Block{Kind: kind, Section: section, Items: kept})
}
