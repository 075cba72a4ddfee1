package service

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/pkg/numwords"
	"github.com/pathiram/backend/internal/service/composer"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PreviewService composes a field record and renders it as HTML. Every call
// starts from the record it is given; nothing is cached between calls.
type PreviewService struct {
	tpl *pongo2.Template
}

func NewPreviewService() (*PreviewService, error) {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	set := pongo2.NewSet("preview", pongo2.NewFSLoader(sub))
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true
	tpl, err := set.FromFile("preview.html")
	if err != nil {
		return nil, fmt.Errorf("load preview template: %w", err)
	}
	return &PreviewService{tpl: tpl}, nil
}

// PreviewResult carries the normalised record with derived fields filled in,
// the composed document and its HTML rendering.
type PreviewResult struct {
	Type     model.DocumentType `json:"type"`
	Fields   model.FieldRecord  `json:"fields"`
	Document *composer.Document `json:"document"`
	HTML     string             `json:"html"`
}

// Preview does not validate: a half-filled record previews the clauses it
// can.
func (s *PreviewService) Preview(docType model.DocumentType, record model.FieldRecord) (*PreviewResult, error) {
	fields, doc, err := composeRecord(docType, record)
	if err != nil {
		return nil, err
	}
	html, err := s.Render(doc)
	if err != nil {
		return nil, err
	}
	return &PreviewResult{
		Type:     docType,
		Fields:   model.ToRecord(fields),
		Document: doc,
		HTML:     html,
	}, nil
}

// Render writes doc through the preview template. Values are autoescaped.
func (s *PreviewService) Render(doc *composer.Document) (string, error) {
	if doc.Empty() {
		return "", nil
	}
	blocks := make([]map[string]any, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		blocks = append(blocks, map[string]any{
			"kind":    string(b.Kind),
			"section": string(b.Section),
			"text":    b.Text,
			"items":   b.Items,
		})
	}
	out, err := s.tpl.Execute(pongo2.Context{
		"type":            string(doc.Type),
		"executant":       doc.Executant,
		"recipient":       doc.Recipient,
		"executant_label": composer.ExecutantLabel,
		"recipient_label": composer.RecipientLabel,
		"blocks":          blocks,
	})
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}

type AmountWords struct {
	Amount string `json:"amount"`
	Words  string `json:"words"`
}

// AmountWords spells an entered amount; anything unparseable gives "".
func (s *PreviewService) AmountWords(amount string) AmountWords {
	return AmountWords{Amount: amount, Words: numwords.FromString(amount)}
}

// composeRecord decodes record as docType, derives computed fields and
// composes the document.
func composeRecord(docType model.DocumentType, record model.FieldRecord) (model.Fields, *composer.Document, error) {
	fields, err := model.DecodeFields(docType, record)
	if err != nil {
		return nil, nil, err
	}
	fields = fields.Derive()
	return fields, composer.Compose(fields), nil
}
