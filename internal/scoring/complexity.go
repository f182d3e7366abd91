package scoring

import "github.com/Sena-ops/reducerguard/internal/model"

// Limites das faixas de complexidade: abaixo de HealthyBelow é saudável,
// acima de MonitorUpTo pede refatoração.
const (
	HealthyBelow = 8
	MonitorUpTo  = 15
)

// Complexity monta a entrada de complexidade de um arquivo.
func Complexity(file string, blocks, helpers int) model.FileComplexity {
	score := 2*blocks + helpers
	return model.FileComplexity{
		FilePath: file,
		Blocks:   blocks,
		Helpers:  helpers,
		Score:    score,
		Tier:     TierOf(score),
	}
}

func TierOf(score int) model.Tier {
	switch {
	case score < HealthyBelow:
		return model.TierHealthy
	case score <= MonitorUpTo:
		return model.TierMonitor
	default:
		return model.TierRefactor
	}
}

// CountTiers conta quantos arquivos caem em cada faixa.
func CountTiers(entries []model.FileComplexity) model.TierCounts {
	var c model.TierCounts
	for _, e := range entries {
		switch e.Tier {
		case model.TierHealthy:
			c.Healthy++
		case model.TierMonitor:
			c.Monitor++
		case model.TierRefactor:
			c.Refactor++
		}
	}
	return c
}
