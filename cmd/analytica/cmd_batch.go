// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/analytica/internal/batch"
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Run a file of jobs concurrently",
		Long: `Run roots, determinant, inverse and complex jobs from a YAML file.
Jobs run concurrently, bounded by batch.workers (or --workers). A failing
job is reported on its own line and does not stop the others; results are
printed in file order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs, err := batch.LoadJobs(args[0])
			if err != nil {
				return err
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			results, err := batch.NewRunner(workers, a.style(), a.logger).Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "[%s] %s: error: %v\n", res.Kind, res.Name, res.Err)
					continue
				}
				fmt.Fprintf(out, "[%s] %s:\n%s\n", res.Kind, res.Name, res.Output)
			}
			a.logger.Info("batch finished", "jobs", len(results), "failed", failed)

			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (default: batch.workers from config)")

	return cmd
}
