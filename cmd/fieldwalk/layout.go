package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/fieldwalk/layout"
	"github.com/viant/tagly/format/text"
)

var (
	layoutOpts = struct {
		caseFormat string
	}{}

	layoutCmd = &cobra.Command{
		Use:   "layout [packages]",
		Short: "Print resolved struct layouts as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			caseFormat := text.CaseFormat(layoutOpts.caseFormat)
			if layoutOpts.caseFormat != "" && !caseFormat.IsDefined() {
				return fmt.Errorf("unsupported case format: %v", layoutOpts.caseFormat)
			}
			packages, err := analyze(args)
			if err != nil {
				return err
			}
			var records layout.Records
			for _, item := range packages {
				for _, aStruct := range item.structs {
					record := aStruct.Record()
					record.Name = item.pkg.Path + "." + record.Name
					records = append(records, record)
				}
			}
			if caseFormat != "" {
				records.WithCaseFormat(caseFormat)
			}
			data, err := records.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
)

func init() {
	layoutCmd.Flags().StringVar(&layoutOpts.caseFormat, "case", "", "field name case format, e.g. lowerUnderscore")
}
