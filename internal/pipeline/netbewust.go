package pipeline

import (
	"context"
	"fmt"

	"github.com/OFFIS-RIT/cimgraph/internal/util"
	"github.com/OFFIS-RIT/cimgraph/pkg/graph"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader"
	"github.com/OFFIS-RIT/cimgraph/pkg/loader/csv"
	"github.com/OFFIS-RIT/cimgraph/pkg/logger"
)

var nbl = logger.Named("NBL")

// NetbewustParams configures one forecast run.
type NetbewustParams struct {
	ChargePoints loader.SourceFile
	Assets       loader.SourceFile
	Builder      *graph.Builder
	// Delimiter of both CSV files. Defaults to ','.
	Delimiter rune
	// Count limits the rows read from each file. Zero reads everything.
	Count int
	// ProgressInterval defaults to util.DefaultProgressInterval.
	ProgressInterval int
}

// RowCounts summarises one input file.
type RowCounts struct {
	Processed int
	Skipped   int
}

// NetbewustReport is the outcome of RunNetbewust.
type NetbewustReport struct {
	ChargePoints RowCounts
	Assets       RowCounts
}

// RunNetbewust feeds the charge point file and then the asset file into the
// builder. Rows the builder rejects are logged and skipped; unreadable files
// abort the run.
func RunNetbewust(ctx context.Context, params NetbewustParams) (NetbewustReport, error) {
	var report NetbewustReport
	opts := csv.Options{Delimiter: params.Delimiter, Limit: params.Count}

	counts, err := processRows(ctx, params.ChargePoints, opts, params.ProgressInterval, "charge point", func(row csv.Row) error {
		return params.Builder.AddChargePoint(ChargePointFromRow(row))
	})
	if err != nil {
		return report, err
	}
	report.ChargePoints = counts

	counts, err = processRows(ctx, params.Assets, opts, params.ProgressInterval, "asset", func(row csv.Row) error {
		return params.Builder.AddAsset(AssetFromRow(row))
	})
	if err != nil {
		return report, err
	}
	report.Assets = counts

	for _, d := range params.Builder.View().CheckReferences() {
		nbl.Error("Dangling reference", "ref", d.String())
	}
	return report, nil
}

func processRows(
	ctx context.Context,
	file loader.SourceFile,
	opts csv.Options,
	interval int,
	kind string,
	add func(csv.Row) error,
) (RowCounts, error) {
	content, err := file.GetContent(ctx)
	if err != nil {
		return RowCounts{}, fmt.Errorf("failed to read %s file: %w", kind, err)
	}

	nbl.Info("Processing "+kind+"s", "file", file.FilePath)
	progress := util.NewRowProgress(nbl, interval)

	err = csv.EachRow(content, opts, func(row csv.Row) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := add(row); err != nil {
			nbl.Warn("Skipping "+kind, "row", row.Number, "err", err)
			progress.Skip()
			return nil
		}
		progress.Done()
		return nil
	})
	progress.Finish()
	if err != nil {
		return RowCounts{}, fmt.Errorf("failed to process %s file: %w", kind, err)
	}

	return RowCounts{Processed: progress.Processed(), Skipped: progress.Skipped()}, nil
}
