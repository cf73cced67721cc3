package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/pitwall-cli/internal/logger"
	"github.com/KaramelBytes/pitwall-cli/internal/metrics"
	"github.com/KaramelBytes/pitwall-cli/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP dashboard",
	Long: `Run the HTTP dashboard. The server starts even when the F1 data is missing
and answers 503 until POST /api/f1/reload succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, images, err := f1Sources()
		if err != nil {
			return err
		}
		addr := cfg.Addr
		if cmd.Flags().Changed("addr") && serveAddr != "" {
			addr = serveAddr
		}
		log := logger.Named("server")
		srv := server.New(server.Options{
			Sources:        src,
			ImagesDir:      images,
			ViewerFile:     cfg.Path(cfg.ViewerFile),
			ViewerMaxRows:  cfg.ViewerMaxRows,
			HistogramBins:  cfg.HistogramBins,
			MaxSessions:    cfg.MaxSessions,
			MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		}, log, metrics.New(nil))

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := srv.Reload(ctx); err != nil {
			_ = warnData(cmd, err)
		}
		return srv.Serve(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addBundleFlag(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8501)")
}
