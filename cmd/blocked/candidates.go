package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/haukened/blocked/internal/blocked/common/utils"
	"github.com/haukened/blocked/internal/blocked/domain"
)

var showDigests bool

var candidatesCmd = &cobra.Command{
	Use:   "candidates ADDRESS",
	Short: "Print the patterns tested for an address",
	Long:  "Print the candidate patterns of an address in the order they are looked up, most specific first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCandidates,
}

func init() {
	candidatesCmd.Flags().BoolVar(&showDigests, "digests", false, "Also print the digest of each candidate")
}

func runCandidates(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s := newStyles(!color.NoColor)

	address := args[0]
	if appConfig().Canonicalize {
		address = utils.CanonicalAddress(address)
	}
	for c := range domain.Candidates(address) {
		if showDigests {
			fmt.Fprintf(out, "%s  %s %s\n", s.digest.Sprint(domain.Digest(c.Pattern)), s.pattern.Sprint(c.Pattern), s.kind.Sprintf("(%s)", c.Kind))
			continue
		}
		fmt.Fprintf(out, "%s %s\n", s.pattern.Sprint(c.Pattern), s.kind.Sprintf("(%s)", c.Kind))
	}
	return nil
}
