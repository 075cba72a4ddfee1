package exporter

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pathiram/backend/internal/service/composer"
)

// Page geometry in twentieths of a point.
const (
	legalWidthTwips  = 12240 // 8.5in
	legalHeightTwips = 20160 // 14in
	marginTwips      = 1440  // 1in
	textWidthTwips   = legalWidthTwips - 2*marginTwips
)

// Font sizes in half-points.
const (
	sizeTitle   = 32
	sizeHeading = 26
	sizeBody    = 24
	sizeSmall   = 20
)

const (
	nsWordML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRel    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
)

// DOCXWriter writes a WordprocessingML package on Legal paper with a page
// border, a header naming both parties and a "Page N / M" footer.
type DOCXWriter struct {
	fonts FontSet
	now   func() time.Time
}

func NewDOCXWriter(fonts FontSet) *DOCXWriter {
	return &DOCXWriter{fonts: fonts, now: time.Now}
}

func (w *DOCXWriter) Format() Format      { return FormatDOCX }
func (w *DOCXWriter) ContentType() string { return contentTypeDOCX }

type docxPart struct {
	name string
	body string
}

func (w *DOCXWriter) Write(ctx context.Context, doc *composer.Document, out io.Writer) error {
	body, err := w.documentXML(ctx, doc)
	if err != nil {
		return err
	}

	// [Content_Types].xml leads so that content sniffers recognise the package.
	parts := []docxPart{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", packageRelsXML},
		{"word/document.xml", body},
		{"word/_rels/document.xml.rels", documentRelsXML},
		{"word/styles.xml", w.stylesXML()},
		{"word/numbering.xml", numberingXML},
		{"word/header1.xml", w.headerXML(doc)},
		{"word/footer1.xml", w.footerXML()},
		{"docProps/core.xml", w.coreXML(doc)},
		{"docProps/app.xml", appXML},
	}

	zw := zip.NewWriter(out)
	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("create %s: %w", p.name, err)
		}
		if _, err := io.WriteString(f, p.body); err != nil {
			return fmt.Errorf("write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}

func (w *DOCXWriter) documentXML(ctx context.Context, doc *composer.Document) (string, error) {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:document xmlns:w="%s" xmlns:r="%s"><w:body>`, nsWordML, nsRel)

	for _, block := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		switch block.Kind {
		case composer.KindTitle:
			w.paragraph(&b, `<w:jc w:val="center"/><w:spacing w:after="240"/>`, block.Text, sizeTitle, true)
		case composer.KindHeading:
			w.paragraph(&b, `<w:jc w:val="center"/><w:spacing w:before="240" w:after="120"/>`, block.Text, sizeHeading, true)
		case composer.KindParagraph:
			w.paragraph(&b, `<w:jc w:val="both"/><w:ind w:firstLine="720"/><w:spacing w:after="120" w:line="360" w:lineRule="auto"/>`, block.Text, sizeBody, false)
		case composer.KindBoundaries:
			for _, item := range block.Items {
				w.paragraph(&b, `<w:ind w:left="720"/>`, item, sizeBody, false)
			}
		case composer.KindWitnesses:
			for _, item := range block.Items {
				w.paragraph(&b, `<w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr><w:spacing w:after="240"/>`, item, sizeBody, false)
			}
		case composer.KindTypist:
			w.paragraph(&b, `<w:spacing w:before="480"/>`, block.Text, sizeSmall, false)
		}
	}

	fmt.Fprintf(&b, `<w:sectPr>`+
		`<w:headerReference w:type="default" r:id="rIdHeader1"/>`+
		`<w:footerReference w:type="default" r:id="rIdFooter1"/>`+
		`<w:pgSz w:w="%d" w:h="%d"/>`+
		`<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="720" w:footer="720" w:gutter="0"/>`+
		`<w:pgBorders w:offsetFrom="page">%s%s%s%s</w:pgBorders>`+
		`</w:sectPr></w:body></w:document>`,
		legalWidthTwips, legalHeightTwips,
		marginTwips, marginTwips, marginTwips, marginTwips,
		border("top"), border("left"), border("bottom"), border("right"))
	return b.String(), nil
}

func border(side string) string {
	return fmt.Sprintf(`<w:%s w:val="single" w:sz="4" w:space="24" w:color="auto"/>`, side)
}

// paragraph writes one w:p whose text is split into per-script runs.
func (w *DOCXWriter) paragraph(b *strings.Builder, pPr, text string, size int, bold bool) {
	b.WriteString(`<w:p><w:pPr>`)
	b.WriteString(pPr)
	b.WriteString(`</w:pPr>`)
	w.runs(b, text, size, bold)
	b.WriteString(`</w:p>`)
}

func (w *DOCXWriter) runs(b *strings.Builder, text string, size int, bold bool) {
	for _, run := range Segment(text, w.fonts) {
		b.WriteString(`<w:r><w:rPr>`)
		fmt.Fprintf(b, `<w:rFonts w:ascii="%[1]s" w:hAnsi="%[1]s" w:cs="%[1]s" w:eastAsia="%[1]s"/>`, escape(run.Font))
		if bold {
			b.WriteString(`<w:b/><w:bCs/>`)
		}
		fmt.Fprintf(b, `<w:sz w:val="%[1]d"/><w:szCs w:val="%[1]d"/>`, size)
		b.WriteString(`</w:rPr><w:t xml:space="preserve">`)
		b.WriteString(escape(run.Text))
		b.WriteString(`</w:t></w:r>`)
	}
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// headerXML puts the executant label at the left margin and the recipient
// label at a right tab stop.
func (w *DOCXWriter) headerXML(doc *composer.Document) string {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:hdr xmlns:w="%s" xmlns:r="%s"><w:p><w:pPr>`, nsWordML, nsRel)
	fmt.Fprintf(&b, `<w:tabs><w:tab w:val="right" w:pos="%d"/></w:tabs>`, textWidthTwips)
	b.WriteString(`</w:pPr>`)
	if doc.Executant != "" {
		w.runs(&b, composer.ExecutantLabel+": "+doc.Executant, sizeSmall, false)
	}
	if doc.Recipient != "" {
		b.WriteString(`<w:r><w:tab/></w:r>`)
		w.runs(&b, composer.RecipientLabel+": "+doc.Recipient, sizeSmall, false)
	}
	b.WriteString(`</w:p></w:hdr>`)
	return b.String()
}

// footerXML renders "Page N / M" from the PAGE and NUMPAGES fields.
func (w *DOCXWriter) footerXML() string {
	var b strings.Builder
	b.WriteString(xml.Header)
	fmt.Fprintf(&b, `<w:ftr xmlns:w="%s" xmlns:r="%s"><w:p><w:pPr><w:jc w:val="center"/></w:pPr>`, nsWordML, nsRel)
	w.runs(&b, "Page ", sizeSmall, false)
	b.WriteString(`<w:fldSimple w:instr=" PAGE "><w:r><w:t>1</w:t></w:r></w:fldSimple>`)
	w.runs(&b, " / ", sizeSmall, false)
	b.WriteString(`<w:fldSimple w:instr=" NUMPAGES "><w:r><w:t>1</w:t></w:r></w:fldSimple>`)
	b.WriteString(`</w:p></w:ftr>`)
	return b.String()
}

func (w *DOCXWriter) stylesXML() string {
	return xml.Header + fmt.Sprintf(`<w:styles xmlns:w="%[1]s">`+
		`<w:docDefaults><w:rPrDefault><w:rPr>`+
		`<w:rFonts w:ascii="%[2]s" w:hAnsi="%[2]s" w:cs="%[3]s" w:eastAsia="%[3]s"/>`+
		`<w:sz w:val="%[4]d"/><w:szCs w:val="%[4]d"/><w:lang w:val="ta-IN" w:bidi="ta-IN"/>`+
		`</w:rPr></w:rPrDefault></w:docDefaults>`+
		`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/></w:style>`+
		`</w:styles>`, nsWordML, escape(w.fonts.Latin), escape(w.fonts.Tamil), sizeBody)
}

func (w *DOCXWriter) coreXML(doc *composer.Document) string {
	created := w.now().UTC().Format(time.RFC3339)
	return xml.Header + fmt.Sprintf(`<cp:coreProperties`+
		` xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"`+
		` xmlns:dc="http://purl.org/dc/elements/1.1/"`+
		` xmlns:dcterms="http://purl.org/dc/terms/"`+
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
		`<dc:title>%s</dc:title><dc:subject>%s</dc:subject><dc:creator>pathiram</dc:creator>`+
		`<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`+
		`<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`+
		`</cp:coreProperties>`, escape(doc.Title), escape(string(doc.Type)), created, created)
}

const contentTypesXML = xml.Header + `<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`<Override PartName="/word/numbering.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.numbering+xml"/>` +
	`<Override PartName="/word/header1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"/>` +
	`<Override PartName="/word/footer1.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.footer+xml"/>` +
	`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>` +
	`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>` +
	`</Relationships>`

const documentRelsXML = xml.Header + `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>` +
	`<Relationship Id="rIdNumbering" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering" Target="numbering.xml"/>` +
	`<Relationship Id="rIdHeader1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/header" Target="header1.xml"/>` +
	`<Relationship Id="rIdFooter1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/footer" Target="footer1.xml"/>` +
	`</Relationships>`

// numberingXML defines numId 1: decimal "1." starting at 1, used by witnesses.
const numberingXML = xml.Header + `<w:numbering xmlns:w="` + nsWordML + `">` +
	`<w:abstractNum w:abstractNumId="0"><w:multiLevelType w:val="singleLevel"/>` +
	`<w:lvl w:ilvl="0"><w:start w:val="1"/><w:numFmt w:val="decimal"/><w:lvlText w:val="%1."/>` +
	`<w:lvlJc w:val="left"/><w:pPr><w:ind w:left="720" w:hanging="360"/></w:pPr></w:lvl>` +
	`</w:abstractNum>` +
	`<w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>` +
	`</w:numbering>`

const appXML = xml.Header + `<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">` +
	`<Application>pathiram</Application></Properties>`
