package model

import "sort"

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
)

// Severities lista os níveis do mais grave para o menos grave.
var Severities = []Severity{SevCritical, SevHigh, SevMedium, SevLow}

// Rank devolve 3 para CRITICAL até 0 para LOW; -1 para valores desconhecidos.
func (s Severity) Rank() int {
	switch s {
	case SevCritical:
		return 3
	case SevHigh:
		return 2
	case SevMedium:
		return 1
	case SevLow:
		return 0
	default:
		return -1
	}
}

// Blocking indica se a severidade reprova o modo strict.
func (s Severity) Blocking() bool {
	return s.Rank() >= SevHigh.Rank()
}

// Finding é imutável depois de criado pelo avaliador.
type Finding struct {
	FilePath  string   `json:"file"`              // caminho relativo à raiz, com "/"
	RuleID    string   `json:"rule"`              // ex: "1.1"
	Line      int      `json:"line,omitempty"`    // 1-based, 0 = sem linha
	Message   string   `json:"message"`           // template já interpolado
	RuleName  string   `json:"rule_name"`         // ex: "state-size"
	Severity  Severity `json:"severity"`          // estático por regra
	Count     int      `json:"count"`             // contagem bruta do detector
	Threshold int      `json:"threshold"`         // limite acima do qual a regra dispara
	Impact    int      `json:"impact"`            // contribuição assinada para a pontuação
	Lines     []int    `json:"lines,omitempty"`   // todas as ocorrências (modo detalhado)
	Healthy   bool     `json:"healthy,omitempty"` // padrão saudável (bônus)
}

// SortFindings ordena por arquivo, linha e regra para saídas reproduzíveis.
func SortFindings(fs []Finding) {
	sort.SliceStable(fs, func(i, j int) bool {
		if fs[i].FilePath == fs[j].FilePath {
			if fs[i].Line == fs[j].Line {
				return fs[i].RuleID < fs[j].RuleID
			}
			return fs[i].Line < fs[j].Line
		}
		return fs[i].FilePath < fs[j].FilePath
	})
}
