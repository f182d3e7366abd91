package scoring

import "github.com/Sena-ops/reducerguard/internal/model"

const (
	// Base é a pontuação de uma execução sem findings.
	Base = 100
	Min  = 0
	Max  = 100
)

// Score soma os impactos e limita o total a [0,100] uma única vez, no final.
// Como o limite não é aplicado a cada passo, a ordem dos findings não importa.
func Score(findings []model.Finding) int {
	total := Base
	for _, f := range findings {
		total += f.Impact
	}
	return clamp(total)
}

// Status compara a pontuação final com os limites configurados.
func Status(score, pass, critical int) model.Status {
	switch {
	case score >= pass:
		return model.StatusPass
	case score < critical:
		return model.StatusCritical
	default:
		return model.StatusNeedsWork
	}
}

func clamp(v int) int {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}
