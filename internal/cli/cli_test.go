package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	renderFormat = formatText
	renderOutput = ""

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFields(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fields.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

const receiptYAML = `
receiptDate: 01/01/2025
buyerName: ராமன்
sellerName: முருகன்
loanAmount: 50000
priorDocNumber: ABC123
`

func TestWordsCmd(t *testing.T) {
	out, err := execute(t, "words", "400000")
	require.NoError(t, err)
	assert.Contains(t, out, "நான்கு இலட்சம்")

	_, err = execute(t, "words", "abc")
	assert.Error(t, err)
}

func TestRenderText(t *testing.T) {
	fields := writeFields(t, receiptYAML)
	out, err := execute(t, "render", "--type", "receipt", "--fields", fields)
	require.NoError(t, err)
	assert.Contains(t, out, "ராமன்")
	assert.Contains(t, out, "ஐம்பது ஆயிரம்")
}

func TestRenderDOCX(t *testing.T) {
	fields := writeFields(t, receiptYAML)
	target := filepath.Join(t.TempDir(), "out.docx")

	out, err := execute(t, "render", "-t", "receipt", "-f", fields, "--format", "docx", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("PK")))
}

func TestRenderErrors(t *testing.T) {
	fields := writeFields(t, receiptYAML)

	_, err := execute(t, "render", "--type", "will", "--fields", fields)
	assert.Error(t, err)

	_, err = execute(t, "render", "--type", "receipt", "--fields", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = execute(t, "render", "--type", "receipt", "--fields", fields, "--format", "odt", "-o", filepath.Join(t.TempDir(), "x"))
	assert.Error(t, err)

	bad := writeFields(t, "buyerName: [a, b]\n")
	_, err = execute(t, "render", "--type", "receipt", "--fields", bad)
	assert.Error(t, err)
}
