package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"github.com/urfave/cli/v3"
)

func listDataAction(ctx context.Context, cmd *cli.Command) error {
	store, err := storage.OpenReadOnly(cmd.String("datadir"), logger.NewNopLogger())
	if err != nil {
		return err
	}
	defer store.Close()

	datasets, err := store.ListDatasets(ctx)
	if err != nil {
		return err
	}

	return printDatasets(cmd.Root().Writer, datasets)
}

// printDatasets writes one aligned row per dataset.
func printDatasets(w io.Writer, datasets []storage.Dataset) error {
	if len(datasets) == 0 {
		_, err := fmt.Fprintln(w, "No data found.")

		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DATASET\tROWS\tFROM\tTO")

	for _, d := range datasets {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", d.Name(), d.Rows, formatBound(d.Start.TakeOr(time.Time{})), formatBound(d.End.TakeOr(time.Time{})))
	}

	return tw.Flush()
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return "-"
	}

	return t.UTC().Format("2006-01-02 15:04:05")
}
