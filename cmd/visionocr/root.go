package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/jackzampolin/visionocr/internal/cliout"
	"github.com/jackzampolin/visionocr/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "visionocr",
	Short: "Apple Vision OCR exposed as MCP tools",
	Long: `Visionocr wraps the macOS Vision framework (via a Swift helper process)
and exposes OCR as callable tools over an MCP stdio transport.

Tools:
  - ocr_image      structured OCR for one image
  - ocr_batch      OCR many images with per-file error isolation
  - ocr_text       plain-text OCR output
  - compile_helper compile the Swift helper for faster calls

The same operations are available directly as CLI commands.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.visionocr/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "visionocr home directory (default: ~/.visionocr)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "output format: yaml or json",
	)

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// .env is optional
		_ = godotenv.Load()
		cliout.SetFormat(outputFormat)
	}

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ocrCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the structured logger. Logs go to stderr so stdout stays
// reserved for the MCP transport and CLI output.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: lvl}))
}
