package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"boxdstats/internal/metacache"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the metadata cache",
	}

	cacheCmd.AddCommand(newCacheListCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))

	return cacheCmd
}

func cacheStore(ctx *commandContext) (*metacache.Store, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := ctx.ensureLogger()
	if err != nil {
		return nil, err
	}
	return metacache.New(cfg.Paths.CacheFile, logger), nil
}

func newCacheListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached films",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cacheStore(ctx)
			if err != nil {
				return err
			}
			records, err := store.Read()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "Cache is empty")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, r := range records {
				year, runtime := "", ""
				if r.Year > 0 {
					year = strconv.Itoa(r.Year)
				}
				if r.Runtime != nil {
					runtime = strconv.Itoa(*r.Runtime) + " min"
				}
				rows = append(rows, []string{
					strconv.FormatInt(r.TMDBID, 10),
					r.Title,
					year,
					runtime,
					r.Director,
					strings.Join(r.Genres, ", "),
				})
			}
			fmt.Fprintln(out, renderTable(
				fmt.Sprintf("%d cached films", len(records)),
				[]column{
					{Header: "TMDB ID", Right: true},
					{Header: "Title", MaxWidth: 40},
					{Header: "Year", Right: true},
					{Header: "Runtime", Right: true},
					{Header: "Director", MaxWidth: 30},
					{Header: "Genres", MaxWidth: 40},
				},
				rows,
			))
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the metadata cache so the next fetch starts over",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := cacheStore(ctx)
			if err != nil {
				return err
			}
			removed, err := store.Remove()
			if err != nil {
				return err
			}
			if !removed {
				fmt.Fprintf(cmd.OutOrStdout(), "No cache at %s\n", store.Path())
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", store.Path())
			return nil
		},
	}
}
