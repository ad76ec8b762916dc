package main

import (
	"github.com/OFFIS-RIT/cimgraph/internal/pipeline"
	"github.com/OFFIS-RIT/cimgraph/internal/util"
	"github.com/OFFIS-RIT/cimgraph/pkg/codec"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	loaderio "github.com/OFFIS-RIT/cimgraph/pkg/loader/io"

	"github.com/spf13/cobra"
)

func edgesCmd() *cobra.Command {
	var partitions int

	cmd := &cobra.Command{
		Use:   "edges GRAPH_FILE",
		Short: "Print the type-level edges of a JSON-LD or YAML graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("partitions") {
				partitions = util.GetEnvInt("EDGE_PARTITIONS", partitions)
			}
			_, err := pipeline.RunEdges(cmd.Context(), pipeline.EdgesParams{
				Graph: loader.NewGraphFile(loader.NewSourceFileParams{
					ID:       "graph",
					FilePath: args[0],
					Loader:   loaderio.NewIOFileLoader(),
				}),
				Partitions: partitions,
				Out:        cmd.OutOrStdout(),
			})
			return err
		},
	}

	cmd.Flags().IntVarP(&partitions, "partitions", "p", 1, "Number of partitions resolved in parallel")
	return cmd
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the forecast dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return codec.WriteSchema(cmd.OutOrStdout())
		},
	}
}
