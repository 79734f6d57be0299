package parsers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	logpkg "github.com/haukened/blocked/internal/blocked/common/log"
)

// StdinPath selects standard input in LoadFiles.
const StdinPath = "-"

// stdin is read for StdinPath; replaced in tests.
var stdin io.Reader = os.Stdin

// LoadFiles parses every path concurrently and merges the digests in path
// order, dropping duplicates across files. The first error cancels the
// remaining reads and is returned.
func LoadFiles(ctx context.Context, paths []string, logger logpkg.Logger) ([]string, error) {
	if len(paths) == 0 {
		return nil, errors.New("no hash list files given")
	}
	stdinUses := 0
	for _, p := range paths {
		if p == StdinPath {
			stdinUses++
		}
	}
	if stdinUses > 1 {
		return nil, fmt.Errorf("%q may be given at most once", StdinPath)
	}

	results := make([][]string, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range paths {
		g.Go(func() error {
			digests, err := loadOne(gctx, p, logger)
			if err != nil {
				return fmt.Errorf("load %s: %w", p, err)
			}
			results[i] = digests
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		for _, d := range r {
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	logger.Info(map[string]any{"files": len(paths), "digests": len(out)}, "hash lists loaded")
	return out, nil
}

func loadOne(ctx context.Context, path string, logger logpkg.Logger) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == StdinPath {
		return ParseHashList(ContextReader(ctx, stdin), path, logger)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseHashList(&ctxReader{ctx: ctx, r: f}, path, logger)
}

// ctxReader stops reading once ctx is done. It suits readers that never block
// indefinitely, such as regular files.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// asyncReader returns as soon as ctx is done, even while the underlying Read
// is blocked, as on a terminal or pipe. The abandoned Read finishes into a
// private buffer and is discarded.
type asyncReader struct {
	ctx context.Context
	r   io.Reader
}

// ContextReader wraps r so that Read returns ctx.Err() once ctx is done,
// without waiting for a blocked Read on r.
func ContextReader(ctx context.Context, r io.Reader) io.Reader {
	return &asyncReader{ctx: ctx, r: r}
}

type readResult struct {
	buf []byte
	err error
}

func (a *asyncReader) Read(p []byte) (int, error) {
	if err := a.ctx.Err(); err != nil {
		return 0, err
	}
	ch := make(chan readResult, 1)
	go func() {
		buf := make([]byte, len(p))
		n, err := a.r.Read(buf)
		ch <- readResult{buf: buf[:n], err: err}
	}()
	select {
	case <-a.ctx.Done():
		return 0, a.ctx.Err()
	case res := <-ch:
		return copy(p, res.buf), res.err
	}
}
