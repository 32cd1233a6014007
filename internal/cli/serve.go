package cli

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tagsheet/pkg/api"
	"github.com/matzehuels/tagsheet/pkg/observability"
)

// serveCommand starts the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout and render API over HTTP",
		Long: `Serve exposes tag sizes, layout planning and rendering as a JSON HTTP API.
Request fields left empty fall back to the configured defaults.`,
		Example: `  tagsheet serve --addr :8080
  TAGSHEET_CACHE_BACKEND=redis TAGSHEET_CACHE_REDIS_ADDR=localhost:6379 tagsheet serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.Config.Server
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Addr
			}
			if !cmd.Flags().Changed("metrics") {
				metrics = cfg.Metrics
			}

			defaults, err := c.Config.Options()
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			var opts []api.Option
			opts = append(opts, api.WithDefaults(defaults))
			if metrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				m := observability.NewMetrics(reg)
				observability.SetPipelineHooks(m)
				observability.SetCacheHooks(m)
				observability.SetHTTPHooks(m)
				defer observability.Reset()
				opts = append(opts, api.WithMetrics(reg))
			}

			c.Logger.Info("starting server",
				"addr", addr,
				"cache", c.Config.Cache.Backend,
				"metrics", metrics)
			return api.NewServer(runner, c.Logger, opts...).ListenAndServe(ctx, addr, cfg.ReadTimeout, cfg.WriteTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "serve Prometheus metrics on /metrics")

	return cmd
}
