package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"shortlist/internal/acquisition"
	"shortlist/internal/photo"
	"shortlist/internal/status"
	"shortlist/internal/tags"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan <folder>",
		Short: "List a folder's candidate photos and their stored labels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			store := tags.NewXattrStore(cfg.Tags.Attribute)
			pipeline := acquisition.New(cfg, nil, store, logger)
			entries, err := pipeline.Scan(args[0])
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no candidate photos found")
				return nil
			}

			lib := pipeline.BuildLibrary(entries)
			rows := make([][]string, 0, lib.Len())
			for _, rec := range lib.All() {
				rows = append(rows, []string{
					rec.DisplayName,
					humanize.IBytes(uint64(rec.SizeBytes)),
					rec.Status.String(),
					rec.Status.Tag(),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Photo", "Size", "Status", "Label"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft, alignLeft},
			))
			fmt.Fprintf(cmd.OutOrStdout(), "%d photos (%d labeled)\n", lib.Len(), countLabeled(lib.All()))
			return nil
		},
	}
}

func countLabeled(recs []*photo.Record) int {
	n := 0
	for _, rec := range recs {
		if rec.Status != status.Unset {
			n++
		}
	}
	return n
}
