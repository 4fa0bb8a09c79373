package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/viant/fieldwalk/codegen"
	"go.uber.org/zap"
)

var (
	genOpts = struct {
		output string
	}{}

	genCmd = &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate field accessor registrations",
		Long:  "Generate a source file per package registering typed field accessors for every analyzed struct type.",
		RunE: func(cmd *cobra.Command, args []string) error {
			packages, err := analyze(args)
			if err != nil {
				return err
			}
			if filepath.IsAbs(genOpts.output) && len(packages) > 1 {
				return fmt.Errorf("absolute output %v requires a single package, got %d", genOpts.output, len(packages))
			}
			for _, item := range packages {
				if len(item.structs) == 0 {
					logger.Info("no struct types", zap.String("package", item.pkg.Path))
					continue
				}
				source, err := item.pkg.Generate(item.structs)
				if err != nil {
					return err
				}
				output := genOpts.output
				if !filepath.IsAbs(output) {
					output = filepath.Join(item.pkg.Dir, output)
				}
				if err = os.WriteFile(output, source, 0o644); err != nil {
					return fmt.Errorf("failed to write %v: %w", output, err)
				}
				logger.Info("generated", zap.String("package", item.pkg.Path), zap.String("file", output), zap.Int("structs", len(item.structs)))
			}
			return nil
		},
	}
)

func init() {
	genCmd.Flags().StringVarP(&genOpts.output, "output", "o", codegen.DefaultOutput, "output file name, relative to each package directory")
}
