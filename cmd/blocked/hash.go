package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/haukened/blocked/internal/blocked/domain"
)

var hashCmd = &cobra.Command{
	Use:   "hash PATTERN...",
	Short: "Print the SHA-1 digest of each pattern",
	Long: `Print the list digest of each pattern, for building or auditing hash lists.
Patterns are hashed verbatim, so "*.Example.com" and "*.example.com" differ.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHash,
}

func runHash(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := newStyles(!color.NoColor)
	for _, p := range args {
		fmt.Fprintf(out, "%s  %s\n", s.digest.Sprint(domain.Digest(p)), p)
	}
	return nil
}
