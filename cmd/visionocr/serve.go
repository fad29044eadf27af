package main

import (
	"context"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/visionocr/internal/config"
	"github.com/jackzampolin/visionocr/internal/home"
	"github.com/jackzampolin/visionocr/internal/mcp"
	"github.com/jackzampolin/visionocr/internal/ocr"
	"github.com/jackzampolin/visionocr/internal/tools"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server.

The server speaks JSON-RPC 2.0 over stdio: requests on stdin, responses on
stdout, logs on stderr. Point an MCP client at the binary:

  {"mcpServers": {"vision-ocr": {"command": "visionocr", "args": ["serve"]}}}

Configuration is hot-reloaded: edits to the config file swap the helper
paths and recognition defaults without restarting the server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}

		mgr, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}

		cfg := mgr.Get()
		logger := newLogger(cfg.LogLevel)

		svc := &reloadableService{}
		svc.store(serviceFromConfig(cfg, h, logger))

		mgr.OnChange(func(c *config.Config) {
			svc.store(serviceFromConfig(c, h, logger))
			logger.Info("recognition service reloaded from config")
		})
		mgr.WatchConfig()

		registry, err := tools.NewRegistryFor(svc)
		if err != nil {
			return err
		}

		srv := mcp.New(mcp.Config{
			Registry: registry,
			Logger:   logger,
		})
		return srv.Run(ctx)
	},
}

// reloadableService lets config hot-reload swap the underlying service while
// tool handlers keep a stable reference.
type reloadableService struct {
	v atomic.Pointer[ocr.Service]
}

func (r *reloadableService) store(svc *ocr.Service) {
	r.v.Store(svc)
}

func (r *reloadableService) OCRImage(ctx context.Context, path string, opts ocr.Options) (map[string]any, error) {
	return r.v.Load().OCRImage(ctx, path, opts)
}

func (r *reloadableService) OCRBatch(ctx context.Context, paths []string, opts ocr.Options) *ocr.BatchResult {
	return r.v.Load().OCRBatch(ctx, paths, opts)
}

func (r *reloadableService) OCRText(ctx context.Context, path string, opts ocr.Options) (string, error) {
	return r.v.Load().OCRText(ctx, path, opts)
}

func (r *reloadableService) CompileHelper(ctx context.Context) (*ocr.CompileResult, error) {
	return r.v.Load().CompileHelper(ctx)
}
