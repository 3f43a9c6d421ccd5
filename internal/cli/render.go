package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resume-builder/internal/logger"
	"resume-builder/internal/model"
	"resume-builder/internal/theme"
	"resume-builder/internal/usecase"
	infra "resume-builder/pkg/infrastructure"
)

type documentFlags struct {
	in       string
	template string
	theme    string
}

func (f *documentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.in, "in", "i", "-", "resume record JSON file, - for stdin")
	cmd.Flags().StringVarP(&f.template, "template", "t", string(model.DefaultTemplate), "layout: futuristic, modern or minimal")
	cmd.Flags().StringVar(&f.theme, "theme", theme.Default().ID, "theme id, see the themes command")
}

// document reads and validates the record and lays it out.
func (f *documentFlags) document(stdin io.Reader) (*model.Resume, *usecase.Document, error) {
	var (
		raw []byte
		err error
	)
	if f.in == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(f.in)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading record: %w", err)
	}
	r, err := model.DecodeResume(raw)
	if err != nil {
		return nil, nil, err
	}
	kind, err := model.ParseTemplateKind(f.template)
	if err != nil {
		return nil, nil, err
	}
	th, ok := theme.Lookup(f.theme)
	if !ok {
		return nil, nil, fmt.Errorf("unknown theme %q", f.theme)
	}
	return r, usecase.Render(r, kind, th), nil
}

func newRenderCmd(_ *env) *cobra.Command {
	var (
		flags  documentFlags
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a resume record to HTML or to its JSON document view",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "html" && format != "json" {
				return fmt.Errorf("unknown format %q", format)
			}
			_, doc, err := flags.document(cmd.InOrStdin())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			if format == "json" {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(doc)
			}
			return doc.WriteHTML(w)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "html or json")
	return cmd
}

func newExportCmd(e *env) *cobra.Command {
	var (
		flags  documentFlags
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a resume record to a letter-size PDF with headless Chrome",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := e.load()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			r, doc, err := flags.document(cmd.InOrStdin())
			if err != nil {
				return err
			}
			renderer := infra.NewChromedpRenderer(cfg.Export.ChromePath, cfg.Export.Timeout, log)
			out, err := usecase.ExportDocument(cmd.Context(), renderer, doc, r.FullName)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, out.Filename)
			if err := os.WriteFile(path, out.PDF, 0o644); err != nil {
				return err
			}
			log.Info("exported",
				zap.String("path", path),
				zap.String(logger.FieldTemplate, string(doc.Kind)),
				zap.String(logger.FieldTheme, doc.Theme.ID),
			)
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "directory for the PDF")
	return cmd
}
