package exporter

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pathiram/backend/internal/service/composer"
)

func TestPaginate(t *testing.T) {
	pages := Paginate(sampleDocument())

	var sections []composer.Section
	for _, page := range pages {
		require.NotEmpty(t, page)
		for _, b := range page[1:] {
			assert.Equal(t, page[0].Section, b.Section)
		}
		sections = append(sections, page[0].Section)
	}
	assert.Equal(t, []composer.Section{
		composer.SectionTitle,
		composer.SectionParties,
		composer.SectionProperty,
		composer.SectionWitnesses,
	}, sections)
	assert.Equal(t, composer.KindTitle, pages[0][0].Kind)

	assert.Nil(t, Paginate(nil))
}

func TestPDFWriterFallsBackToCoreFonts(t *testing.T) {
	w := NewPDFWriter(Options{TamilFontPath: "/nonexistent/latha.ttf"})
	assert.Nil(t, w.tamilTTF)

	var buf bytes.Buffer
	require.NoError(t, w.Write(context.Background(), sampleDocument(), &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	// one page per section
	assert.Equal(t, 4, bytes.Count(buf.Bytes(), []byte("/Type /Page\n")))
}
