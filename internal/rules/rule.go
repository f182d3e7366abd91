package rules

import (
	"strconv"
	"strings"

	"github.com/Sena-ops/reducerguard/internal/model"
)

// Rule é configuração estática: carregada uma vez e nunca alterada durante o scan.
type Rule struct {
	ID          string
	Name        string
	Description string
	Severity    model.Severity
	Threshold   int  // o finding só é emitido quando a contagem passa deste valor
	Weight      int  // penalidade (negativa) ou bônus (positivo)
	PerMatch    bool // multiplica o peso pela contagem
	Enabled     bool
	Message     string // aceita {count} e {threshold}
	Detector    Detector
}

// Healthy indica a categoria de bônus (padrão saudável).
func (r Rule) Healthy() bool {
	return r.Weight > 0
}

// Impact é a contribuição assinada de um finding com a contagem dada.
func (r Rule) Impact(count int) int {
	if r.PerMatch {
		return r.Weight * count
	}
	return r.Weight
}

// Evaluate aplica a regra a um arquivo. Devolve false quando a contagem não
// passa do limite. Com detailed, o finding carrega todas as linhas.
func (r Rule) Evaluate(file string, src *Source, detailed bool) (model.Finding, bool) {
	m := r.Detector.Detect(src)
	if m.Count <= r.Threshold {
		return model.Finding{}, false
	}

	f := model.Finding{
		FilePath:  file,
		RuleID:    r.ID,
		RuleName:  r.Name,
		Severity:  r.Severity,
		Message:   r.render(m.Count),
		Count:     m.Count,
		Threshold: r.Threshold,
		Impact:    r.Impact(m.Count),
		Healthy:   r.Healthy(),
	}
	if len(m.Lines) > 0 {
		f.Line = m.Lines[0]
		if detailed {
			f.Lines = append([]int(nil), m.Lines...)
		}
	}
	return f, true
}

func (r Rule) render(count int) string {
	msg := strings.NewReplacer(
		"{count}", strconv.Itoa(count),
		"{threshold}", strconv.Itoa(r.Threshold),
	).Replace(r.Message)
	return "Rule " + r.ID + ": " + msg
}
