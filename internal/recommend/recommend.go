package recommend

import (
	"fmt"
	"sort"

	"github.com/Sena-ops/reducerguard/internal/model"
)

type Priority string

const (
	P1 Priority = "P1"
	P2 Priority = "P2"
	P3 Priority = "P3"
)

// IDs das regras que alimentam cada prioridade.
const (
	closureRule = "2.1"
	stateRule   = "1.1"
	actionRule  = "1.2"
	helperRule  = "5.1"
)

// Horas fixas por prioridade usadas na soma de esforço. É aritmética de
// faixas, não uma estimativa de cronograma.
const (
	HoursPerClosure = 2
	HoursPerSplit   = 8
	HoursPerHelpers = 1
)

// Recommendation é derivada do ScanResult e não tem identidade própria.
type Recommendation struct {
	Priority    Priority `json:"priority"`
	File        string   `json:"file"`
	Effort      string   `json:"effort"`
	EffortHours int      `json:"effort_hours,omitempty"` // ausente em P2, cujo esforço é uma faixa
	Impact      string   `json:"impact"`
}

// Plan é a lista ordenada de recomendações com o esforço total.
type Plan struct {
	Recommendations []Recommendation
	TotalHours      int
}

// Build classifica cada arquivo com findings relevantes em P1, P2 ou P3.
// Um arquivo pode aparecer em mais de uma prioridade.
func Build(res model.ScanResult) Plan {
	byFile := map[string][]model.Finding{}
	var files []string
	for _, f := range res.Findings {
		if _, ok := byFile[f.FilePath]; !ok {
			files = append(files, f.FilePath)
		}
		byFile[f.FilePath] = append(byFile[f.FilePath], f)
	}

	var plan Plan
	for _, file := range files {
		for _, r := range forFile(file, byFile[file]) {
			plan.Recommendations = append(plan.Recommendations, r)
			plan.TotalHours += bucketHours(r)
		}
	}

	sort.SliceStable(plan.Recommendations, func(i, j int) bool {
		a, b := plan.Recommendations[i], plan.Recommendations[j]
		if a.Priority == b.Priority {
			return a.File < b.File
		}
		return a.Priority < b.Priority
	})
	return plan
}

func forFile(file string, findings []model.Finding) []Recommendation {
	var out []Recommendation
	overage, oversized := 0, false

	for _, f := range findings {
		switch f.RuleID {
		case closureRule:
			out = append(out, Recommendation{
				Priority:    P1,
				File:        file,
				Effort:      hours(HoursPerClosure * f.Count),
				EffortHours: HoursPerClosure * f.Count,
				Impact:      fmt.Sprintf("migrar %d closure(s) para clientes @Dependency torna a feature testável com TestStore", f.Count),
			})
		case stateRule, actionRule:
			oversized = true
			if o := f.Count - f.Threshold; o > overage {
				overage = o
			}
		case helperRule:
			out = append(out, Recommendation{
				Priority:    P3,
				File:        file,
				Effort:      hours(HoursPerHelpers),
				EffortHours: HoursPerHelpers,
				Impact:      fmt.Sprintf("extrair %d helpers genéricos para um cliente ou reducer filho", f.Count),
			})
		}
	}

	if oversized {
		out = append(out, Recommendation{
			Priority: P2,
			File:     file,
			Effort:   SplitEffort(overage),
			Impact:   fmt.Sprintf("dividir a feature em reducers filhos (%d acima do limite)", overage),
		})
	}
	return out
}

// bucketHours é a contribuição de uma recomendação para o total. P2 soma
// sempre HoursPerSplit, qualquer que seja a faixa.
func bucketHours(r Recommendation) int {
	if r.Priority == P2 {
		return HoursPerSplit
	}
	return r.EffortHours
}

// SplitEffort converte o excesso sobre o limite em uma faixa de esforço.
func SplitEffort(overage int) string {
	switch {
	case overage <= 5:
		return "4 horas"
	case overage <= 15:
		return "1 dia"
	default:
		return "2-3 dias"
	}
}

func hours(n int) string {
	if n == 1 {
		return "1 hora"
	}
	return fmt.Sprintf("%d horas", n)
}
