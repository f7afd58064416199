package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"boxdstats/internal/ledger"
)

const historyStampLayout = "2006-01-02 15:04:05"

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded fetch runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedger(ctx, func(store *ledger.Store) error {
				runs, err := store.ListRuns(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No fetch runs recorded")
					return nil
				}
				rows := make([][]string, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, []string{
						run.ID,
						formatStamp(run.StartedAt),
						string(run.Status),
						strconv.Itoa(run.ReferenceCount),
						strconv.Itoa(run.ResolvedCount),
						strconv.Itoa(run.Dropped()),
					})
				}
				fmt.Fprintln(out, renderTable("Fetch runs", []column{
					{Header: "Run"},
					{Header: "Started"},
					{Header: "Status"},
					{Header: "References", Right: true},
					{Header: "Resolved", Right: true},
					{Header: "Dropped", Right: true},
				}, rows))
				return nil
			})
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to list (0 for all)")

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var droppedOnly bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the lookups of one fetch run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedger(ctx, func(store *ledger.Store) error {
				run, err := store.GetRun(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				lookups, err := store.Lookups(cmd.Context(), run.ID, droppedOnly)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				status := newStatusPrinter(out)
				kind := statusOK
				switch {
				case run.Status == ledger.RunFailed:
					kind = statusError
				case run.Status == ledger.RunRunning:
					kind = statusInfo
				case run.Dropped() > 0:
					kind = statusWarn
				}
				status.line("Run "+run.ID, kind,
					fmt.Sprintf("%s, %d/%d resolved", run.Status, run.ResolvedCount, run.ReferenceCount))
				if run.ErrorMessage != "" {
					status.line("Error", statusError, run.ErrorMessage)
				}

				if len(lookups) == 0 {
					fmt.Fprintln(out, "No lookups to show")
					return nil
				}
				rows := make([][]string, 0, len(lookups))
				for _, l := range lookups {
					year, id := "", ""
					if l.Year > 0 {
						year = strconv.Itoa(l.Year)
					}
					if l.TMDBID > 0 {
						id = strconv.FormatInt(l.TMDBID, 10)
					}
					rows = append(rows, []string{strconv.Itoa(l.Position + 1), l.Title, year, l.Status, id, l.ErrorMessage})
				}
				fmt.Fprintln(out, renderTable("", []column{
					{Header: "#", Right: true},
					{Header: "Title", MaxWidth: 40},
					{Header: "Year", Right: true},
					{Header: "Status"},
					{Header: "TMDB ID", Right: true},
					{Header: "Error", MaxWidth: 50},
				}, rows))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&droppedOnly, "dropped", false, "Only show references that did not resolve")
	return cmd
}

func withLedger(ctx *commandContext, fn func(*ledger.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.Ledger.Enabled {
		return errors.New("fetch history is disabled (ledger.enabled = false)")
	}
	store, err := ledger.Open(cfg.LedgerPath())
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer store.Close()
	return fn(store)
}

func formatStamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Local().Format(historyStampLayout)
}
