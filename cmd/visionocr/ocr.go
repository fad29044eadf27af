package main

import (
	"github.com/spf13/cobra"

	"github.com/jackzampolin/visionocr/internal/cliout"
	"github.com/jackzampolin/visionocr/internal/ocr"
)

var (
	flagLanguages          []string
	flagRecognitionLevel   string
	flagLanguageCorrection bool
	flagSortReadingOrder   bool
	flagMinConfidence      float64
)

// addRecognitionFlags registers the shared recognition flags on a command.
func addRecognitionFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&flagLanguages, "languages", nil, "recognition languages in priority order (default: ja-JP,en-US)")
	cmd.Flags().StringVar(&flagRecognitionLevel, "recognition-level", "", "recognition level: accurate or fast (default: accurate)")
	cmd.Flags().BoolVar(&flagLanguageCorrection, "language-correction", true, "apply language-model correction")
	cmd.Flags().BoolVar(&flagSortReadingOrder, "sort-reading-order", true, "sort lines into natural reading order")
	cmd.Flags().Float64Var(&flagMinConfidence, "min-confidence", 0.0, "drop lines below this confidence [0.0, 1.0]")
}

// recognitionOptions converts the flags into service options. Flags with a
// built-in default only override the configured defaults when the caller set
// them explicitly.
func recognitionOptions(cmd *cobra.Command) ocr.Options {
	opts := ocr.Options{
		Languages:        flagLanguages,
		RecognitionLevel: flagRecognitionLevel,
	}
	if cmd.Flags().Changed("language-correction") {
		v := flagLanguageCorrection
		opts.LanguageCorrection = &v
	}
	if cmd.Flags().Changed("sort-reading-order") {
		v := flagSortReadingOrder
		opts.SortReadingOrder = &v
	}
	if cmd.Flags().Changed("min-confidence") {
		v := flagMinConfidence
		opts.MinConfidence = &v
	}
	return opts
}

var ocrCmd = &cobra.Command{
	Use:   "ocr <image>",
	Short: "OCR one image and print the structured result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.OCRImage(cmd.Context(), args[0], recognitionOptions(cmd))
		if err != nil {
			return err
		}
		return cliout.Output(result)
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <image> [image...]",
	Short: "OCR many images with per-file error isolation",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		outcome := svc.OCRBatch(cmd.Context(), args, recognitionOptions(cmd))
		return cliout.Output(outcome)
	},
}

var textCmd = &cobra.Command{
	Use:   "text <image>",
	Short: "OCR one image and print plain text only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		text, err := svc.OCRText(cmd.Context(), args[0], recognitionOptions(cmd))
		if err != nil {
			return err
		}
		cmd.Println(text)
		return nil
	},
}

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile the Swift helper to a native binary",
	Long: `Compile the Swift helper script to a native binary.

The server prefers the compiled binary automatically, trading a one-time
compilation for lower per-call latency.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService()
		if err != nil {
			return err
		}

		result, err := svc.CompileHelper(cmd.Context())
		if err != nil {
			return err
		}
		return cliout.Output(result)
	},
}

func init() {
	addRecognitionFlags(ocrCmd)
	addRecognitionFlags(batchCmd)
	addRecognitionFlags(textCmd)
}
