package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tejass17x/fake-news-detector/internal/pipeline"
	"github.com/Tejass17x/fake-news-detector/internal/server"
)

var (
	serveAddr   string
	serveDBPath string
	serveNoDB   bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve starts a web API backed by the same analysis pipeline:
- POST /api/analyze  {"url": ...} or {"title": ..., "text": ...}
- GET  /api/analyses recent stored results
- GET  /api/stats    aggregate statistics
- GET  /healthz      liveness check

Results are persisted to a local SQLite database unless --no-db is set.

Example:
  fakenews serve
  fakenews serve --addr :9000 --db ./analyses.db`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: config)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database path (default: config)")
	serveCmd.Flags().BoolVar(&serveNoDB, "no-db", false, "disable result persistence")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Output.Verbose = verbose
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDBPath != "" {
		cfg.Server.DBPath = serveDBPath
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	var store *server.Store
	if !serveNoDB {
		store, err = server.NewStore(cfg.Server.DBPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Persisting results to %s\n", cfg.Server.DBPath)
	}

	s := server.New(p, store)
	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)
	return s.Run(cfg.Server.Addr)
}
