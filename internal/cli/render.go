package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pathiram/backend/config"
	"github.com/pathiram/backend/internal/model"
	"github.com/pathiram/backend/internal/service/composer"
	"github.com/pathiram/backend/internal/service/exporter"
)

const formatText = "text"

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a field record",
	Long: `Reads a YAML or JSON field record and writes the composed document.
Text goes to stdout unless --output is set; docx and pdf default to <type>.<format>.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var (
	renderType   string
	renderFields string
	renderFormat string
	renderOutput string
)

func init() {
	renderCmd.Flags().StringVarP(&renderType, "type", "t", "", "Document type: receipt, agreement, release, sale")
	renderCmd.Flags().StringVarP(&renderFields, "fields", "f", "", "Field record file (YAML or JSON)")
	renderCmd.Flags().StringVar(&renderFormat, "format", formatText, "Output format: text, docx, pdf")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file")
	_ = renderCmd.MarkFlagRequired("type")
	_ = renderCmd.MarkFlagRequired("fields")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	docType, err := model.ParseDocumentType(renderType)
	if err != nil {
		return err
	}
	record, err := readRecord(renderFields)
	if err != nil {
		return err
	}
	fields, err := model.DecodeFields(docType, record)
	if err != nil {
		return err
	}
	doc := composer.Compose(fields)

	if renderFormat == formatText {
		if renderOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), doc.Text())
			return nil
		}
		return os.WriteFile(renderOutput, []byte(doc.Text()+"\n"), 0644)
	}

	format, err := exporter.ParseFormat(renderFormat)
	if err != nil {
		return err
	}
	res, err := newExporter().Export(context.Background(), doc, format)
	if err != nil {
		return err
	}
	out := renderOutput
	if out == "" {
		out = res.Filename(string(docType))
	}
	if err := os.WriteFile(out, res.Data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(res.Data))
	return nil
}

// readRecord loads a flat map of field values. YAML is a superset of JSON,
// so one decoder reads both.
func readRecord(path string) (model.FieldRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fields: %w", err)
	}
	record := model.FieldRecord{}
	if err := yaml.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidFields, err)
	}
	return record, nil
}

func newExporter() *exporter.Exporter {
	cfg := config.GetConfig()
	return exporter.NewDefault(exporter.Options{
		Fonts:         exporter.FontSet{Latin: cfg.Export.LatinFont, Tamil: cfg.Export.TamilFont},
		TamilFontPath: cfg.Export.TamilFontPath,
		LatinFontPath: cfg.Export.LatinFontPath,
	})
}
