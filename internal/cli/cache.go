package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphops/pkg/cache"
	"github.com/matzehuels/graphops/pkg/cliconfig"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the result cache (SCC runs, renders)",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// resolveCacheDir loads the configured cache backend and returns its
// directory, only meaningful when the backend is file-based (the
// default). Other backends (redis, none) have no single directory to
// clear or report.
func resolveCacheDir(configPath string) (string, error) {
	cfg, err := cliconfig.Load(configPath)
	if err != nil {
		return "", err
	}
	backend, err := newCache(cfg.Cache)
	if err != nil {
		return "", fmt.Errorf("resolve cache backend: %w", err)
	}
	defer backend.Close()

	fc, ok := backend.(*cache.FileCache)
	if !ok {
		return "", nil
	}
	return fc.Dir(), nil
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached entries (file backend only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(configPath)
			if err != nil {
				return err
			}
			if dir == "" {
				printInfo("configured cache backend is not file-based; nothing to clear here")
				return nil
			}

			if _, err := os.Stat(dir); os.IsNotExist(err) {
				printInfo("Cache is empty")
				return nil
			}

			count := 0
			err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return nil // Skip errors, continue walking
				}
				if path == dir {
					return nil
				}
				if !info.IsDir() {
					if err := os.Remove(path); err == nil {
						count++
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			// Clean up empty subdirectories
			_ = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
				if err != nil || path == dir {
					return nil
				}
				if info.IsDir() {
					os.Remove(path)
				}
				return nil
			})

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")
	return cmd
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path (file backend only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := resolveCacheDir(configPath)
			if err != nil {
				return err
			}
			if dir == "" {
				printInfo("configured cache backend is not file-based")
				return nil
			}
			fmt.Println(dir)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.graphops.toml)")
	return cmd
}
