package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/Sena-ops/reducerguard/internal/logging"
	"github.com/Sena-ops/reducerguard/internal/model"
	"github.com/Sena-ops/reducerguard/internal/rules"
	"github.com/Sena-ops/reducerguard/internal/scoring"
	"github.com/Sena-ops/reducerguard/internal/selector"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	Workers  int
	Detailed bool
}

// FileResult é o lote produzido por um arquivo. Err diferente de nil indica
// que o arquivo não pôde ser lido e foi pulado.
type FileResult struct {
	Path       string
	Findings   []model.Finding
	Complexity model.FileComplexity
	Err        error
}

// Batch converte o resultado para a forma consumida pelo agregador.
func (r FileResult) Batch() scoring.Batch {
	if r.Err != nil {
		return scoring.Batch{Skipped: true}
	}
	c := r.Complexity
	return scoring.Batch{Findings: r.Findings, Complexity: &c}
}

// Evaluate aplica o conjunto de regras a cada arquivo em paralelo. Cada
// goroutine escreve apenas no próprio índice, então a saída segue a ordem
// de files. Falhas de leitura não abortam o scan; só o cancelamento de ctx.
func Evaluate(ctx context.Context, files []selector.SourceFile, set rules.Set, opts Options) ([]FileResult, error) {
	results := make([]FileResult, len(files))
	workers := opts.Workers
	if workers <= 0 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, f := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = evaluateFile(f, set, opts.Detailed)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluateFile(f selector.SourceFile, set rules.Set, detailed bool) FileResult {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		logging.Logger.Warnw("Arquivo ignorado", "arquivo", f.Rel, "erro", err)
		return FileResult{Path: f.Rel, Err: fmt.Errorf("ler %s: %w", f.Rel, err)}
	}

	src := rules.NewSource(string(data))
	blocks, helpers := rules.CountComplexity(src)
	logging.Logger.Debugw("Arquivo avaliado", "arquivo", f.Rel, "linhas", len(src.Lines))

	return FileResult{
		Path:       f.Rel,
		Findings:   set.Evaluate(f.Rel, src, detailed),
		Complexity: scoring.Complexity(f.Rel, blocks, helpers),
	}
}
