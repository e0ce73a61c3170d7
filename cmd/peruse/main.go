package main

import (
	"fmt"
	"os"

	"peruse/internal/browse"
	"peruse/internal/config"
	"peruse/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	debug   bool
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "peruse [directory]",
		Short:   "An interactive terminal file browser",
		Long:    `Peruse lists directories page by page, classifies every entry by content, and lets you view, edit or delete files while walking the tree.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runBrowse,
		// Config errors are already user-readable; keep cobra quiet
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/peruse/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(initCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBrowse(cmd *cobra.Command, args []string) error {
	log.SetDebug(debug)

	// A missing configuration source is fatal: the browser never starts
	// on invented defaults.
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	startDir := "."
	if len(args) > 0 {
		startDir = args[0]
	} else if wd, err := os.Getwd(); err == nil {
		startDir = wd
	}

	session, err := browse.New(cfg, startDir)
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Run()
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadConfigFile(cfgFile)
	}
	return config.LoadConfig()
}

// initCmd writes a default config file so a fresh install can start.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists at %s", path)
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
}
