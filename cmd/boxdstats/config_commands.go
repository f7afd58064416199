package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"boxdstats/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Set tmdb.api_key (or export TMDB_API_KEY) before running `boxdstats fetch`.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and show the paths in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			status := newStatusPrinter(out)

			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configSeen {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}

			if err := cfg.RequireTMDB(); err != nil {
				status.line("TMDB API key", statusWarn, "missing (fetch will fail)")
			} else {
				status.line("TMDB API key", statusOK, "set")
			}
			status.line("Export", pathKind(cfg.Paths.ExportArchive, cfg.Paths.ExportDir), cfg.Paths.ExportArchive)
			status.line("Cache", existsKind(cfg.Paths.CacheFile), cfg.Paths.CacheFile)
			status.line("Report", statusInfo, cfg.Paths.ReportFile)
			ledgerState := "disabled"
			if cfg.Ledger.Enabled {
				ledgerState = cfg.LedgerPath()
			}
			status.line("Ledger", statusInfo, ledgerState)
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

func existsKind(path string) statusKind {
	if _, err := os.Stat(path); err == nil {
		return statusOK
	}
	return statusWarn
}

func pathKind(archive, dir string) statusKind {
	if existsKind(archive) == statusOK {
		return statusOK
	}
	return existsKind(dir)
}
