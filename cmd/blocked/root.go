package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/haukened/blocked/internal/blocked/common/log"
	"github.com/haukened/blocked/internal/blocked/config"
)

var (
	colorMode string

	// cfg is set by the root pre-run hook.
	cfg *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "blocked",
	Short: "Match addresses against hashed blocklists",
	Long: `blocked checks hostnames and IPv4 addresses against lists of SHA-1 digests.

An address is blocked when its digest, or the digest of one of its
wildcard generalizations ("*.example.com", "192.0.*"), is on a list.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output: auto, always, never")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(hashCmd)
	rootCmd.AddCommand(candidatesCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// setup loads configuration, configures logging and applies the color mode.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}
	if err := log.Configure(c.Env, c.LogLevel); err != nil {
		return fmt.Errorf("logging configuration: %w", err)
	}
	cfg = c
	return applyColorMode(colorMode)
}

// appConfig returns the loaded configuration, or the defaults when the
// pre-run hook did not run.
func appConfig() *config.AppConfig {
	if cfg != nil {
		return cfg
	}
	def := config.DEFAULT_APP_CONFIG
	return &def
}

func applyColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto", "":
		// color detects NO_COLOR and non-terminal output on its own
	default:
		return fmt.Errorf("unknown color mode: %s", mode)
	}
	return nil
}

// styles holds the output color formatters.
type styles struct {
	address *color.Color
	blocked *color.Color
	allowed *color.Color
	pattern *color.Color
	kind    *color.Color
	digest  *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		address: color.New(color.Bold),
		blocked: color.New(color.Bold, color.FgHiRed),
		allowed: color.New(color.FgGreen),
		pattern: color.New(color.FgYellow),
		kind:    color.New(color.FgHiBlue),
		digest:  color.New(color.FgHiBlack),
	}

	if !enabled {
		s.address.DisableColor()
		s.blocked.DisableColor()
		s.allowed.DisableColor()
		s.pattern.DisableColor()
		s.kind.DisableColor()
		s.digest.DisableColor()
	}
	return s
}
