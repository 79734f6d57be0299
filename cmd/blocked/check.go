package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/haukened/blocked/internal/blocked/common/log"
	"github.com/haukened/blocked/internal/blocked/common/utils"
	"github.com/haukened/blocked/internal/blocked/config"
	"github.com/haukened/blocked/internal/blocked/domain"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist/bloom"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist/lru"
	"github.com/haukened/blocked/internal/blocked/repos/blocklist/parsers"
)

// errBlocked is returned by check with --fail-on-block when any address is
// blocked. main exits with status 1 without printing it.
var errBlocked = errors.New("blocked address found")

var (
	hashFiles   []string
	failOnBlock bool
	showStats   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [ADDRESS...]",
	Short: "Check addresses against hash lists",
	Long: `Check each address against the configured hash lists and print the
matching pattern, if any. Without arguments addresses are read one per
line from stdin.

Lists come from --hashes, or from BLOCKED_HASH_FILES when no flag is given.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringArrayVar(&hashFiles, "hashes", nil, `Hash list file, "-" for stdin (repeatable)`)
	checkCmd.Flags().BoolVar(&failOnBlock, "fail-on-block", false, "Exit with status 1 when any address is blocked")
	checkCmd.Flags().BoolVar(&showStats, "stats", false, "Log cache statistics when done")
}

func runCheck(cmd *cobra.Command, args []string) error {
	c := appConfig()
	logger := log.GetLogger()

	paths := c.HashFiles
	if len(hashFiles) > 0 {
		paths = hashFiles
	}
	if len(args) == 0 && slices.Contains(paths, parsers.StdinPath) {
		return errors.New("addresses must be given as arguments when a hash list is read from stdin")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	repo, err := buildRepository(ctx, c, paths, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	s := newStyles(!color.NoColor)
	anyBlocked := false
	check := func(address string) {
		m := repo.Decide(address)
		if m.Blocked {
			anyBlocked = true
		}
		printDecision(out, s, address, m)
	}

	if len(args) > 0 {
		for _, a := range args {
			check(a)
		}
	} else if err := eachLine(ctx, cmd.InOrStdin(), check); err != nil {
		return fmt.Errorf("reading addresses: %w", err)
	}

	if showStats {
		st := repo.RepoStats()
		logger.Info(map[string]any{
			"digests":   st.Set.Digests,
			"bloom":     st.Set.Bloom,
			"hits":      st.Cache.Hits,
			"misses":    st.Cache.Misses,
			"evictions": st.Cache.Evictions,
		}, "check finished")
	}

	if anyBlocked && failOnBlock {
		return errBlocked
	}
	return nil
}

// buildRepository loads paths and returns a repository serving them. With no
// paths every address is allowed.
func buildRepository(ctx context.Context, c *config.AppConfig, paths []string, logger log.Logger) (blocklist.Repository, error) {
	if len(paths) == 0 {
		logger.Warn(nil, "no hash lists configured, nothing will be blocked")
		return &blocklist.NoopBlocklist{}, nil
	}

	digests, err := parsers.LoadFiles(ctx, paths, logger)
	if err != nil {
		return nil, err
	}

	var cache blocklist.DecisionCache
	if !c.DisableCache {
		// CacheSize is bounded by config validation
		cache, err = lru.New(int(c.CacheSize))
		if err != nil {
			return nil, fmt.Errorf("failed to create decision cache: %w", err)
		}
	}

	opts := blocklist.Options{
		Cache:   cache,
		Factory: bloom.NewFactory(),
		FPRate:  c.BloomFPRate,
		Logger:  logger,
	}
	if c.Canonicalize {
		opts.Canonicalize = utils.CanonicalAddress
	}

	repo := blocklist.NewRepository(opts)
	if err := repo.UpdateAll(digests, 1); err != nil {
		return nil, fmt.Errorf("failed to load blocklist: %w", err)
	}
	return repo, nil
}

func printDecision(out io.Writer, s *styles, address string, m domain.Match) {
	if !m.Blocked {
		fmt.Fprintf(out, "%s %s\n", s.address.Sprint(address), s.allowed.Sprint("allowed"))
		return
	}
	fmt.Fprintf(out, "%s %s %s %s\n",
		s.address.Sprint(address),
		s.blocked.Sprint("blocked"),
		s.pattern.Sprint(m.Pattern),
		s.kind.Sprintf("(%s)", m.Kind))
}

// eachLine calls fn for every non-blank trimmed line of r until ctx is done.
func eachLine(ctx context.Context, r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(parsers.ContextReader(ctx, r))
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fn(line)
	}
	return sc.Err()
}
