package main

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	"github.com/dkusuma/manning/modules/manning/domain/employee"
	"github.com/dkusuma/manning/modules/manning/infrastructure/tabular"
	"github.com/dkusuma/manning/modules/manning/presentation/excel"
	"github.com/dkusuma/manning/modules/manning/services"
	"github.com/dkusuma/manning/pkg/configuration"
	"github.com/dkusuma/manning/pkg/logging"
)

func newBuildCmd() *cobra.Command {
	var (
		masterPath     string
		cleanedPath    string
		structuralPath string
		outputPath     string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the hierarchical manning table workbook",
		Long: "Builds the manning table from the structural mapping plus either a raw " +
			"MasterData workbook (cleaned on the fly) or a previously exported cleaned-data workbook.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				return withCode(exitUsage, errors.New("--output is required"))
			}
			if (masterPath == "") == (cleanedPath == "") {
				return withCode(exitUsage, errors.New("exactly one of --master or --cleaned is required"))
			}
			logger := logging.Setup(configuration.Use())

			structuralTable, err := tabular.ReadFile(structuralPath, "StructuralMapping")
			if err != nil {
				return withCode(exitIO, err)
			}
			catalog, err := tabular.Catalog(structuralTable)
			if err != nil {
				return withCode(exitValidation, err)
			}

			var records []employee.Record
			if cleanedPath != "" {
				cleanedTable, err := tabular.ReadFile(cleanedPath, "CleanedData")
				if err != nil {
					return withCode(exitIO, err)
				}
				records, err = tabular.CleanedRecords(cleanedTable)
				if err != nil {
					return withCode(exitValidation, err)
				}
			} else {
				masterTable, err := tabular.ReadFile(masterPath, "MasterData")
				if err != nil {
					return withCode(exitIO, err)
				}
				roster, err := tabular.Roster(masterTable)
				if err != nil {
					return withCode(exitValidation, err)
				}
				records, err = services.NewCleanerService(logger).Clean(cmd.Context(), roster, catalog)
				if err != nil {
					return err
				}
			}

			start := time.Now()
			rows, err := services.NewManningTableService(logger).Generate(cmd.Context(), records, catalog)
			if err != nil {
				return err
			}
			f, err := excel.WriteManningTable(rows)
			if err != nil {
				return withCode(exitIO, err)
			}
			defer func() { _ = f.Close() }()
			if err := f.SaveAs(outputPath); err != nil {
				return withCode(exitIO, errors.Wrapf(err, "save %s", outputPath))
			}

			return writeJSON(runOutput{
				Command:    "build",
				DurationMS: time.Since(start).Milliseconds(),
				Result: map[string]any{
					"employees": len(records),
					"positions": len(catalog),
					"rows":      len(rows),
					"output":    outputPath,
				},
			})
		},
	}

	cmd.Flags().StringVar(&masterPath, "master", "", "path to the MasterData workbook (xlsx or csv)")
	cmd.Flags().StringVar(&cleanedPath, "cleaned", "", "path to a previously exported cleaned-data workbook")
	cmd.Flags().StringVar(&structuralPath, "structural", "", "path to the StructuralMapping workbook (xlsx or csv)")
	cmd.Flags().StringVar(&outputPath, "output", "", "path of the manning-table workbook to write")
	_ = cmd.MarkFlagRequired("structural")
	return cmd
}
