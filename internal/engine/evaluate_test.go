package engine

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Sena-ops/reducerguard/internal/rules"
	"github.com/Sena-ops/reducerguard/internal/selector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, root, rel, content string) selector.SourceFile {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return selector.SourceFile{Path: path, Rel: rel}
}

const closures = `struct SearchFeature {
  var search: (String) -> Effect<Action>
  var load: () async -> Effect<Action>
  var save: (Item) -> Effect<Action>
}
`

func TestEvaluateKeepsOrder(t *testing.T) {
	root := t.TempDir()
	var files []selector.SourceFile
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		files = append(files, writeTempFile(t, root, name+"Feature.swift", closures))
	}

	results, err := Evaluate(context.Background(), files, rules.Defaults(), Options{Workers: 3})
	require.NoError(t, err)
	require.Len(t, results, len(files))
	for i, r := range results {
		assert.Equal(t, files[i].Rel, r.Path)
		assert.NoError(t, r.Err)
		require.Len(t, r.Findings, 1)
		assert.Equal(t, rules.ClosureInjection, r.Findings[0].RuleName)
		assert.Equal(t, 3, r.Findings[0].Count)
	}
}

func TestEvaluateSkipsUnreadable(t *testing.T) {
	root := t.TempDir()
	ok := writeTempFile(t, root, "OkFeature.swift", "struct OkFeature {}\n")
	missing := selector.SourceFile{Path: filepath.Join(root, "GoneFeature.swift"), Rel: "GoneFeature.swift"}

	results, err := Evaluate(context.Background(), []selector.SourceFile{missing, ok}, rules.Defaults(), Options{Workers: 2})
	require.NoError(t, err)
	assert.Error(t, results[0].Err)
	assert.True(t, results[0].Batch().Skipped)
	assert.NoError(t, results[1].Err)
	assert.Empty(t, results[1].Findings)
}

func TestEvaluateComplexity(t *testing.T) {
	root := t.TempDir()
	body := strings.Repeat("  func f() -> Effect<Action> { .run { _ in } }\n", 5) +
		"  private func a() {}\n  private func b() {}\n"
	f := writeTempFile(t, root, "BusyFeature.swift", "struct BusyFeature {\n"+body+"}\n")

	results, err := Evaluate(context.Background(), []selector.SourceFile{f}, rules.Defaults(), Options{})
	require.NoError(t, err)
	c := results[0].Complexity
	assert.Equal(t, 5, c.Blocks)
	assert.Equal(t, 2, c.Helpers)
	assert.Equal(t, 12, c.Score)
	assert.Equal(t, "monitor", string(c.Tier))
}

func TestEvaluateCancelled(t *testing.T) {
	root := t.TempDir()
	f := writeTempFile(t, root, "AFeature.swift", closures)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, []selector.SourceFile{f}, rules.Defaults(), Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluateDetailedLines(t *testing.T) {
	root := t.TempDir()
	f := writeTempFile(t, root, "SearchFeature.swift", closures)
	set, err := rules.Defaults().Subset([]string{rules.ClosureInjection})
	require.NoError(t, err)

	results, err := Evaluate(context.Background(), []selector.SourceFile{f}, set, Options{Detailed: true})
	require.NoError(t, err)
	require.Len(t, results[0].Findings, 1)
	assert.Equal(t, []int{2, 3, 4}, results[0].Findings[0].Lines)
}
