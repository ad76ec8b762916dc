package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/OFFIS-RIT/cimgraph/internal/pipeline"
	"github.com/OFFIS-RIT/cimgraph/internal/util"
	"github.com/OFFIS-RIT/cimgraph/pkg/codec"
	"github.com/OFFIS-RIT/cimgraph/pkg/common"
	"github.com/OFFIS-RIT/cimgraph/pkg/graph"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader/csv"
	loaderio "github.com/OFFIS-RIT/cimgraph/pkg/loader/io"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"

	"github.com/spf13/cobra"
)

type netbewustOptions struct {
	assets    string
	region    string
	out       string
	delimiter string
	onlyCoord bool
	count     int
	format    string
}

func netbewustCmd() *cobra.Command {
	var opts netbewustOptions

	cmd := &cobra.Command{
		Use:   "netbewust-laden CHARGE_POINTS",
		Short: "Process NBL forecast",
		Long: `Build the NBL forecast dataset from a charge point export and an asset
export and write it as JSON or YAML.

Rows that cannot be linked or parsed are logged and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("region") {
				opts.region = util.GetEnvString("NBL_REGION", opts.region)
			}
			if !cmd.Flags().Changed("delimiter") {
				opts.delimiter = util.GetEnvString("NBL_DELIMITER", opts.delimiter)
			}
			if opts.region == "" {
				return errors.New("a region is required (--region or NBL_REGION)")
			}
			return runNetbewust(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.assets, "assets", "", "Asset CSV file")
	cmd.Flags().StringVarP(&opts.region, "region", "r", "", "Region of DSO")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file. Omit to print to stdout")
	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", ",", "Delimiter used in CSV files")
	cmd.Flags().BoolVar(&opts.onlyCoord, "only-coord", false, "Reduce location information to coordinates")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 0, "Number of rows to process per file (0 for all)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, yaml)")
	_ = cmd.MarkFlagRequired("assets")

	return cmd
}

func runNetbewust(cmd *cobra.Command, chargePoints string, opts netbewustOptions) error {
	delimiter, err := csv.ParseDelimiter(opts.delimiter)
	if err != nil {
		return err
	}
	exporter, err := codec.ForFormat(opts.format)
	if err != nil {
		return err
	}
	ids, err := graph.NewAllocator(util.GetEnvString("ID_FORMAT", graph.IDFormatUUID))
	if err != nil {
		return err
	}

	builder := graph.NewBuilder(graph.NewBuilderParams{
		Region:          opts.region,
		OnlyCoordinates: opts.onlyCoord,
		Allocator:       ids,
		Metadata: common.DataSetMetadata{
			ConformsTo:   util.GetEnv("NBL_CONFORMS_TO"),
			ContactPoint: util.GetEnv("NBL_CONTACT_POINT"),
			Version:      util.GetEnv("NBL_VERSION"),
		},
	})

	csvLoader := csv.NewCSVLoader(loaderio.NewIOFileLoader())
	report, err := pipeline.RunNetbewust(cmd.Context(), pipeline.NetbewustParams{
		ChargePoints: loader.NewCSVFile(loader.NewSourceFileParams{
			ID:       "charge_points",
			FilePath: chargePoints,
			Loader:   csvLoader,
		}),
		Assets: loader.NewCSVFile(loader.NewSourceFileParams{
			ID:       "assets",
			FilePath: opts.assets,
			Loader:   csvLoader,
		}),
		Builder:   builder,
		Delimiter: delimiter,
		Count:     opts.count,
	})
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.OutOrStdout(), opts.out, func(w io.Writer) error {
		return exporter.Export(builder.View().Dataset(), w)
	}); err != nil {
		return err
	}

	logger.Info("[NBL] Dataset written",
		"charge_points", report.ChargePoints.Processed,
		"charge_points_skipped", report.ChargePoints.Skipped,
		"assets", report.Assets.Processed,
		"assets_skipped", report.Assets.Skipped,
		"format", exporter.Format(),
	)
	return nil
}

// writeOutput calls write with stdout, or with the named file when path is
// set.
func writeOutput(stdout io.Writer, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
