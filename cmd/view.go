package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/pitwall-cli/internal/sheet"
)

var (
	viewMaxRows int
	viewSheet   string
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Preview a CSV, TSV or XLSX table with its schema and a line chart",
	Long: `Preview a table. Without a file argument the configured viewer_file is
shown. The line chart plots the first two columns against the row index.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.Path(cfg.ViewerFile)
		if len(args) == 1 {
			path = args[0]
		}
		t, err := sheet.Load(path, sheet.Options{Sheet: viewSheet})
		if err != nil {
			return warnData(cmd, err)
		}
		maxRows := cfg.ViewerMaxRows
		if cmd.Flags().Changed("max-rows") {
			maxRows = viewMaxRows
		}
		v := t.View(maxRows)
		return render(cmd, v, v.Markdown())
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().IntVar(&viewMaxRows, "max-rows", 0, "rows to display (0 = all; default from config)")
	viewCmd.Flags().StringVar(&viewSheet, "sheet", "", "XLSX sheet name (default: first sheet)")
}
