package main

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/dkusuma/manning/modules/manning/infrastructure/tabular"
	"github.com/dkusuma/manning/modules/manning/presentation/excel"
	"github.com/dkusuma/manning/modules/manning/services"
	"github.com/dkusuma/manning/pkg/configuration"
	"github.com/dkusuma/manning/pkg/logging"
)

func newCleanCmd() *cobra.Command {
	var (
		masterPath     string
		structuralPath string
		outputPath     string
	)

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Filter the master roster to valid employees and resolve organizational attributes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return withCode(exitUsage, errors.New("--output is required"))
			}
			logger := logging.Setup(configuration.Use())

			masterTable, err := tabular.ReadFile(masterPath, "MasterData")
			if err != nil {
				return withCode(exitIO, err)
			}
			structuralTable, err := tabular.ReadFile(structuralPath, "StructuralMapping")
			if err != nil {
				return withCode(exitIO, err)
			}
			roster, err := tabular.Roster(masterTable)
			if err != nil {
				return withCode(exitValidation, err)
			}
			catalog, err := tabular.Catalog(structuralTable)
			if err != nil {
				return withCode(exitValidation, err)
			}

			start := time.Now()
			records, err := services.NewCleanerService(logger).Clean(cmd.Context(), roster, catalog)
			if err != nil {
				return err
			}
			f, err := excel.WriteCleanedData(records)
			if err != nil {
				return withCode(exitIO, err)
			}
			defer func() { _ = f.Close() }()
			if err := f.SaveAs(outputPath); err != nil {
				return withCode(exitIO, errors.Wrapf(err, "save %s", outputPath))
			}

			return writeJSON(runOutput{
				Command:    "clean",
				DurationMS: time.Since(start).Milliseconds(),
				Result: map[string]any{
					"employees": len(records),
					"output":    outputPath,
				},
			})
		},
	}

	cmd.Flags().StringVar(&masterPath, "master", "", "path to the MasterData workbook (xlsx or csv)")
	cmd.Flags().StringVar(&structuralPath, "structural", "", "path to the StructuralMapping workbook (xlsx or csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path of the cleaned-data workbook to write")
	_ = cmd.MarkFlagRequired("master")
	_ = cmd.MarkFlagRequired("structural")
	return cmd
}
