package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"

	"github.com/CTAG07/texforge/pkg/mathdown"
)

var (
	buildOutput     string
	buildContext    string
	buildStandalone bool
	buildFontSize   int
	buildFontFamily string
)

var buildCmd = &cobra.Command{
	Use:   "build [input]",
	Short: "Compile a block markup document to LaTeX",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		src, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		resolver, err := newResolver(logger)
		if err != nil {
			return err
		}
		compiler := mathdown.NewCompiler(logger, mathdown.NewCatalog(), resolver)

		out, err := compiler.Compile(string(src), buildContext)
		if err != nil {
			return err
		}
		if buildStandalone {
			out = mathdown.WrapDocument(out, mathdown.DocumentOptions{
				FontSize:   buildFontSize,
				FontFamily: buildFontFamily,
			})
		}

		if buildOutput == "" {
			fmt.Println(out)
			return nil
		}
		if err = atomic.WriteFile(buildOutput, strings.NewReader(out)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("Document compiled",
			"input", args[0],
			"output", buildOutput,
			"context", buildContext,
		)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output file (stdout when omitted)")
	buildCmd.Flags().StringVar(&buildContext, "context", mathdown.ContextExport, "Rendering context (export, preview)")
	buildCmd.Flags().BoolVar(&buildStandalone, "standalone", false, "Wrap output in a complete LaTeX document")
	buildCmd.Flags().IntVar(&buildFontSize, "font-size", 14, "Document font size in points (standalone only)")
	buildCmd.Flags().StringVar(&buildFontFamily, "font-family", "", "Document font family (standalone only)")
	rootCmd.AddCommand(buildCmd)
}
