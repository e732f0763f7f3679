// =============================================================================
// Data Formatter - Format Command
// =============================================================================
//
// The format command runs the whole pipeline for one file:
//
//   parse --file  →  seed mapping store  →  apply --profile  →  format
//        →  preview (optional)  →  write CSV and/or copy to clipboard
//
// Formatting warnings (duplicate targets, unresolved template placeholders)
// are printed but never abort the run. Exporting with zero formatted records
// prints a warning and exits cleanly without touching the filesystem or the
// clipboard.
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/data-formatter/internal/config"
	"github.com/ginjaninja78/data-formatter/internal/exporter"
	"github.com/ginjaninja78/data-formatter/internal/record"
	"github.com/ginjaninja78/data-formatter/internal/session"
	"github.com/ginjaninja78/data-formatter/pkg/utils"
)

var (
	formatFile    string
	formatProfile string
	formatOut     string
	formatCopy    bool
	formatPreview int
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format a CSV/XLSX file using a mapping profile and export CSV",
	Long: `Parse the input file, apply the column mappings and merge rules from the
mapping profile, and export the formatted records as fully quoted CSV.

Source columns without a profile entry are discarded. The export file name
comes from --out when given, otherwise from the configured naming pattern
(default: ` + exporter.DefaultFileName + `).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormat(cmd)
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().StringVar(&formatFile, "file", "", "Input file (.csv or .xlsx)")
	formatCmd.Flags().StringVar(&formatProfile, "profile", "", "Mapping profile YAML")
	formatCmd.Flags().StringVar(&formatOut, "out", "", "Output CSV path (overrides the configured pattern)")
	formatCmd.Flags().BoolVar(&formatCopy, "copy", false, "Also copy the CSV to the system clipboard")
	formatCmd.Flags().IntVar(&formatPreview, "preview", 0, "Print the first N formatted records")
	formatCmd.MarkFlagRequired("file")
	formatCmd.MarkFlagRequired("profile")
}

func runFormat(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	profile, err := config.LoadProfile(formatProfile)
	if err != nil {
		return err
	}
	kind, err := profile.SchemaKind()
	if err != nil {
		return err
	}

	sess, err := session.New(kind)
	if err != nil {
		return err
	}

	if err := sess.LoadFile(formatFile); err != nil {
		return err
	}
	logVerbose("parsed %d records, %d columns from %s",
		sess.Dataset().RowCount, sess.Dataset().ColumnCount, formatFile)

	profile.Apply(sess.Store())

	warnings, err := sess.Format()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}

	if formatPreview > 0 {
		printPreview(sess.Formatted(), formatPreview)
	}

	outPath := formatOut
	if outPath == "" {
		if err := utils.EnsureDir(cfg.OutputDir); err != nil {
			return err
		}
		name := exporter.FileName(cfg.OutputNamePattern, formatFile, time.Now())
		outPath = filepath.Join(cfg.OutputDir, name)
	}

	if err := sess.Download(outPath); err != nil {
		if errors.Is(err, exporter.ErrNoData) {
			fmt.Fprintln(os.Stderr, "Warning: no data to export; nothing was written.")
			return nil
		}
		return err
	}
	fmt.Printf("Wrote %d records to %s\n", len(sess.Formatted()), outPath)

	if formatCopy {
		if err := sess.Copy(); err != nil {
			return err
		}
		fmt.Println("Copied formatted CSV to the clipboard.")
	}
	return nil
}

// printPreview renders the first n formatted records as an aligned table.
func printPreview(records []*record.FormattedRecord, n int) {
	if len(records) == 0 {
		fmt.Println("No data to display.")
		return
	}
	if n > len(records) {
		n = len(records)
	}

	headers := records[0].Keys()
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, rec := range records[:n] {
		for i, h := range headers {
			if v, _ := rec.Value(h); len(v) > widths[i] {
				widths[i] = len(v)
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = c + strings.Repeat(" ", widths[i]-len(c))
		}
		fmt.Println(strings.Join(parts, "  "))
	}

	printRow(headers)
	for _, rec := range records[:n] {
		cells := make([]string, len(headers))
		for i, h := range headers {
			cells[i], _ = rec.Value(h)
		}
		printRow(cells)
	}
}
