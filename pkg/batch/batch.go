// Package batch applies the core engine to every row of a tabular input
// concurrently, mirroring the worker-pool shape the file processor this
// module descends from used for concurrent file scanning — rows instead
// of files, the detection engine instead of a detector list.
package batch

import (
	"context"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gov-df/safedoc/pkg/engine"
	"github.com/gov-df/safedoc/pkg/obs"
	"github.com/gov-df/safedoc/pkg/policy"
)

// previewLen bounds how much of a row's text is echoed back in RowResult,
// so a batch response over large free-text fields stays a reasonable size.
const previewLen = 80

// cacheSize bounds the memoization cache: runs over tabular data routinely
// repeat the same boilerplate sentence across many rows (form letters,
// templated complaints), so caching Analyze by exact text is cheap and
// effective without needing an eviction policy tuned to any one dataset.
const cacheSize = 4096

// cacheKey memoizes Analyze by (text, policy) rather than text alone:
// policy.Policy holds only comparable fields, so it works as a map/LRU key
// directly, and two rows analyzed under different policies never collide.
type cacheKey struct {
	text string
	p    policy.Policy
}

// TextColumnCandidates lists the lowercase header names a tabular caller
// searches for its free-text column, per SPEC_FULL.md §6.
var TextColumnCandidates = []string{"descricao", "texto", "detalhe", "mensagem", "conteudo"}

// FindTextColumn returns the index of the first header entry matching a
// TextColumnCandidates name (case/whitespace-insensitive), or -1 if none
// of header's columns match any candidate.
func FindTextColumn(header []string) int {
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(h))
		for _, candidate := range TextColumnCandidates {
			if name == candidate {
				return i
			}
		}
	}
	return -1
}

// Row is one unit of tabular input: an index (for result ordering/joins)
// and the text extracted from the caller's chosen column.
type Row struct {
	Index int
	Text  string
}

// RowResult pairs a Row's index and a truncated preview of its text with
// the engine.Result the core produced for it.
type RowResult struct {
	Index   int            `json:"index"`
	Preview string         `json:"preview"`
	Result  engine.Result  `json:"resultado"`
}

// Options configures a batch run.
type Options struct {
	Policy policy.Policy
	// Concurrency bounds how many rows are analyzed at once. Zero means
	// runtime.GOMAXPROCS(0).
	Concurrency int
	// Memoize enables the exact-text LRU cache across rows in this run.
	Memoize bool
	Logger  obs.Logger
}

// AnalyzeTable runs engine.Analyze over every row, in row order in the
// returned slice (each goroutine writes to its own index; row processing
// itself may interleave). A canceled ctx stops launching new work and
// returns the partial results gathered so far alongside the context error.
func AnalyzeTable(ctx context.Context, rows []Row, opts Options) ([]RowResult, error) {
	runID := uuid.NewString()
	logger := obs.WithRun(opts.Logger, runID)

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	var cache *lru.Cache[cacheKey, engine.Result]
	if opts.Memoize {
		cache, _ = lru.New[cacheKey, engine.Result](cacheSize)
	}

	results := make([]RowResult, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = RowResult{
				Index:   row.Index,
				Preview: truncate(row.Text, previewLen),
				Result:  analyzeCached(row.Text, opts.Policy, cache),
			}
			logger.Debug().
				Int("row", row.Index).
				Str("status", results[i].Result.Status).
				Int("score", results[i].Result.Score).
				Msg("row analyzed")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	logger.Info().Int("rows", len(rows)).Str("run_id", runID).Msg("batch complete")
	return results, nil
}

func analyzeCached(text string, p policy.Policy, cache *lru.Cache[cacheKey, engine.Result]) engine.Result {
	if cache == nil {
		return engine.Analyze(text, p)
	}
	key := cacheKey{text: text, p: p}
	if cached, ok := cache.Get(key); ok {
		return cached
	}
	result := engine.Analyze(text, p)
	cache.Add(key, result)
	return result
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
