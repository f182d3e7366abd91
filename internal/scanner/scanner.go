package scanner

import (
	"context"
	"fmt"

	"github.com/Sena-ops/reducerguard/internal/config"
	"github.com/Sena-ops/reducerguard/internal/engine"
	"github.com/Sena-ops/reducerguard/internal/logging"
	"github.com/Sena-ops/reducerguard/internal/model"
	"github.com/Sena-ops/reducerguard/internal/recommend"
	"github.com/Sena-ops/reducerguard/internal/rules"
	"github.com/Sena-ops/reducerguard/internal/scoring"
	"github.com/Sena-ops/reducerguard/internal/selector"
)

type Options struct {
	Root     string
	Tool     Tool
	Config   *config.Config
	Detailed bool
}

// Outcome é o resultado de uma execução. Plan só existe para ferramentas
// com recomendação.
type Outcome struct {
	Result model.ScanResult
	Plan   *recommend.Plan
}

// Run executa seletor, avaliador e agregador para uma ferramenta. Erros
// devolvidos aqui são sempre de configuração ou cancelamento; arquivos
// ilegíveis só viram FilesSkipped.
func Run(ctx context.Context, opts Options) (Outcome, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	set, err := rules.Defaults().Apply(cfg.Rules)
	if err != nil {
		return Outcome{}, err
	}
	set, err = opts.Tool.RuleSet(set)
	if err != nil {
		return Outcome{}, err
	}

	files, err := selector.Select(opts.Root, cfg.Include, cfg.Exclude)
	if err != nil {
		return Outcome{}, err
	}
	logging.Logger.Infow("Arquivos selecionados", "ferramenta", opts.Tool.Name, "total", len(files))

	results, err := engine.Evaluate(ctx, files, set, engine.Options{
		Workers:  cfg.Workers,
		Detailed: opts.Detailed,
	})
	if err != nil {
		return Outcome{}, fmt.Errorf("avaliar arquivos: %w", err)
	}

	batches := make([]scoring.Batch, len(results))
	for i, r := range results {
		batches[i] = r.Batch()
		if !opts.Tool.Complexity {
			batches[i].Complexity = nil
		}
	}

	out := Outcome{
		Result: scoring.Aggregate(opts.Tool.Name, batches, scoring.Thresholds{
			Pass:     cfg.PassThreshold,
			Critical: cfg.CriticalThreshold,
		}),
	}
	if opts.Tool.Recommend {
		plan := recommend.Build(out.Result)
		out.Plan = &plan
	}

	logging.Logger.Debugw("Scan concluído",
		"ferramenta", out.Result.Tool,
		"analisados", out.Result.FilesAnalyzed,
		"ignorados", out.Result.FilesSkipped,
		"pontuacao", out.Result.Score,
	)
	return out, nil
}
