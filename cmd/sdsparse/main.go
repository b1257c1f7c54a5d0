package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chemfetch/sds-parser/internal/catalog"
	"github.com/chemfetch/sds-parser/internal/common"
	"github.com/chemfetch/sds-parser/internal/export"
	"github.com/chemfetch/sds-parser/internal/extract"
	"github.com/chemfetch/sds-parser/internal/ingest"
	"github.com/chemfetch/sds-parser/internal/register"
)

var version = "0.2.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "sdsparse",
		Short:   "Parse SDS documents into the chemical register",
		Long:    "sdsparse extracts chemical-register fields from Safety Data Sheets\n(PDF text layer with OCR fallback) and appends them to a register CSV.",
		Version: version,
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(exportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	var (
		csvPath  string
		jsonOut  string
		barcode  string
		patterns string
	)
	cmd := &cobra.Command{
		Use:   "parse <pdf> [pdf...]",
		Short: "Parse one or more SDS PDFs into the chemical register CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}))
			slog.SetDefault(logger)

			cfg := common.LoadConfig()
			if csvPath == "" {
				csvPath = cfg.Register.CSVPath
			}
			if patterns == "" {
				patterns = cfg.Register.PatternsPath
			}

			cat := catalog.Default()
			if patterns != "" {
				var err error
				if cat, err = catalog.Load(patterns); err != nil {
					return err
				}
			}

			asm := extract.NewAssembler(logger, cat)
			store := register.NewStore(csvPath, logger)
			extractor := ingest.NewExtractor(logger, cfg.OCR)
			ctx := context.Background()

			var parsed []map[string]string
			for _, path := range args {
				logger.Info("parse.start", "path", path)
				text, err := extractor.ExtractText(ctx, path)
				if err != nil {
					return common.WrapError(err, "extract "+path)
				}
				rec, err := asm.Assemble(text)
				if err != nil {
					return common.WrapError(err, "assemble "+path)
				}
				if !extract.Usable(rec) {
					return fmt.Errorf("%s: %w; tune patterns", path, common.ErrNoUsableField)
				}
				rec.Barcode = barcode
				outcome, err := store.Append(rec)
				if err != nil {
					return common.WrapError(err, "append "+path)
				}
				logger.Info("parse.done", "path", path, "outcome", string(outcome))
				parsed = append(parsed, rec.RowMap())
			}

			if jsonOut != "" {
				data, err := json.MarshalIndent(parsed, "", "  ")
				if err != nil {
					return err
				}
				if err := os.WriteFile(jsonOut, data, 0o644); err != nil {
					return err
				}
				logger.Info("json.written", "path", jsonOut)
			}
			abs, _ := filepath.Abs(csvPath)
			logger.Info("done", "csv", abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "output CSV path (default from CHEMFETCH_REGISTER_CSV)")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "optional JSON dump of parsed records")
	cmd.Flags().StringVar(&barcode, "barcode", "", "barcode value to attach to all parsed records")
	cmd.Flags().StringVar(&patterns, "patterns", "", "pattern catalog YAML (default built-in)")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		csvPath string
		out     string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the register CSV as an XLSX workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.Default()
			cfg := common.LoadConfig()
			if csvPath == "" {
				csvPath = cfg.Register.CSVPath
			}
			if out == "" {
				out = filepath.Join(filepath.Dir(csvPath), "chemical_register.xlsx")
			}
			svc := export.NewService(logger)
			data, err := svc.RegisterXLSX(csvPath)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Printf("exported %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "register CSV path (default from CHEMFETCH_REGISTER_CSV)")
	cmd.Flags().StringVar(&out, "out", "", "output XLSX path")
	return cmd
}
