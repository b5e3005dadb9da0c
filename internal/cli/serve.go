package cli

import (
	"context"
	"time"

	"findstrings/internal/platform/config"
	"findstrings/internal/platform/logger"
	phttp "findstrings/internal/platform/net/http"
	"findstrings/internal/services/api"

	"github.com/spf13/cobra"
)

// runServer is a seam for tests
var runServer = func(ctx context.Context, srv *phttp.Server, grace time.Duration) error {
	return srv.Run(ctx, grace)
}

func newServeCmd() *cobra.Command {
	var (
		profiler bool
		grace    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP scan API",
		Long: `Run the HTTP scan API.

The listen port is read from FINDSTRINGS_API_PORT (default 4000). Scan
defaults and limits come from the same FINDSTRINGS_* variables as the scan
command, plus FINDSTRINGS_API_MAX_BODY and FINDSTRINGS_API_TIMEOUT.

Examples:
  findstrings serve
  curl --data-binary @firmware.bin 'localhost:4000/api/v1/scan?format=jsonl'`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := envDefaults(); err != nil {
				return err
			}
			cfg := config.New().Prefix("FINDSTRINGS_")
			l := logger.Named("api")

			srv := phttp.NewServer(cfg)
			if err := api.Mount(srv.Router(), api.Options{
				Config:         cfg,
				Logger:         l,
				EnableProfiler: profiler,
			}); err != nil {
				return err
			}
			return runServer(cmd.Context(), srv, grace)
		},
	}

	cfg := config.New().Prefix("FINDSTRINGS_")
	cmd.Flags().BoolVar(&profiler, "profiler", cfg.MayBool("API_PROFILER", false), "mount pprof under /debug")
	cmd.Flags().DurationVar(&grace, "grace", cfg.MayDuration("API_GRACE", 10*time.Second), "shutdown grace period")
	return cmd
}
