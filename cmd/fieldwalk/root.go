package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/fieldwalk"
	"github.com/viant/fieldwalk/codegen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	rootOpts = struct {
		verbose bool
		types   string
		dir     string
	}{}

	logger = zap.NewNop()

	rootCmd = &cobra.Command{
		Use:          "fieldwalk",
		Short:        "Discover struct layouts at build time",
		Long:         "Load Go packages, verify that every struct layout can be reconstructed from field sizes and alignments, and generate field accessors.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if logger, err = newLogger(rootOpts.verbose); err != nil {
				return err
			}
			fieldwalk.SetLogger(logger)
			return nil
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&rootOpts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&rootOpts.types, "types", "t", "", "comma separated type names, every struct type when empty")
	flags.StringVarP(&rootOpts.dir, "dir", "d", ".", "working directory used to resolve package patterns")
	rootCmd.AddCommand(genCmd, layoutCmd)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func typeNames() []string {
	if rootOpts.types == "" {
		return nil
	}
	var result []string
	for _, name := range strings.Split(rootOpts.types, ",") {
		if name = strings.TrimSpace(name); name != "" {
			result = append(result, name)
		}
	}
	return result
}

type analyzed struct {
	pkg     *codegen.Package
	structs []*codegen.Struct
}

// analyze loads packages and resolves requested struct layouts, any diagnostic aborts
func analyze(patterns []string) ([]*analyzed, error) {
	pkgs, err := codegen.Load(rootOpts.dir, patterns...)
	if err != nil {
		return nil, err
	}
	names := typeNames()
	var result []*analyzed
	for _, pkg := range pkgs {
		structs, err := pkg.Analyze(names...)
		if err != nil {
			logger.Error("analysis failed", zap.String("package", pkg.Path), zap.Error(err))
			return nil, err
		}
		logger.Debug("analyzed package", zap.String("package", pkg.Path), zap.Int("structs", len(structs)))
		result = append(result, &analyzed{pkg: pkg, structs: structs})
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no packages matched %v", patterns)
	}
	return result, nil
}
