package main

import (
	"log/slog"

	"github.com/jackzampolin/visionocr/internal/config"
	"github.com/jackzampolin/visionocr/internal/home"
	"github.com/jackzampolin/visionocr/internal/ocr"
)

// serviceFromConfig assembles the recognition service. Helper paths left
// empty in the config fall back to the home-directory layout.
func serviceFromConfig(cfg *config.Config, h *home.Dir, logger *slog.Logger) *ocr.Service {
	script := cfg.Helper.Script
	if script == "" {
		script = h.HelperScriptPath()
	}
	bin := cfg.Helper.Bin
	if bin == "" {
		bin = h.HelperBinPath()
	}

	return ocr.NewService(ocr.Config{
		Locator: ocr.Locator{
			ScriptPath: script,
			BinPath:    bin,
			Runner:     cfg.Helper.Runner,
		},
		Compiler: cfg.Helper.Compiler,
		Defaults: &ocr.Defaults{
			Languages:          cfg.Defaults.Languages,
			RecognitionLevel:   cfg.Defaults.RecognitionLevel,
			LanguageCorrection: cfg.Defaults.LanguageCorrection,
			SortReadingOrder:   cfg.Defaults.SortReadingOrder,
			MinConfidence:      cfg.Defaults.MinConfidence,
		},
		Logger: logger,
	})
}

// newService loads config and builds the service for one-shot CLI commands.
func newService() (*ocr.Service, *slog.Logger, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, nil, err
	}

	mgr, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	cfg := mgr.Get()
	logger := newLogger(cfg.LogLevel)
	return serviceFromConfig(cfg, h, logger), logger, nil
}
