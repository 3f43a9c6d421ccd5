// Package cli wires the resume-builder commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"resume-builder/internal/config"
	"resume-builder/internal/logger"
)

// Actual version can be specified in build command.
var version = "dev"

type env struct {
	v       *viper.Viper
	cfgFile string
}

func (e *env) load() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(e.v, e.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger.New(logger.Options{JSON: cfg.JSON, Debug: cfg.Debug}), nil
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	e := &env{v: viper.New()}

	root := &cobra.Command{
		Use:           config.App,
		Short:         "Build, preview and export resumes with an AI writing assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&e.cfgFile, "config", "", "a config file (default is resume-builder.yaml in current directory)")
	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	_ = e.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = e.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))

	root.AddCommand(
		newServeCmd(e),
		newRenderCmd(e),
		newExportCmd(e),
		newThemesCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s\n", config.App, version)
		},
	}
}
