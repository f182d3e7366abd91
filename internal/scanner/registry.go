package scanner

import (
	"fmt"

	"github.com/Sena-ops/reducerguard/internal/rules"
)

// Tool é uma visão do mesmo pipeline: um subconjunto de regras mais os
// extras que o relatório deve incluir.
type Tool struct {
	Name       string
	Short      string
	RuleNames  []string // vazio = todas as regras
	Complexity bool
	Recommend  bool
}

var tools = []Tool{
	{
		Name:  "validate",
		Short: "Valida regras de composição (tamanho de State/Action, escopos, tipo do State)",
		RuleNames: []string{
			rules.StateSize, rules.ActionSize, rules.ChildScopes,
			rules.StateReferenceType, rules.ClosureInjection, rules.DuplicateActionCase,
		},
	},
	{
		Name:      "score",
		Short:     "Calcula a pontuação de testabilidade (closures, efeitos, @Dependency)",
		RuleNames: []string{rules.ClosureInjection, rules.ComplexEffect, rules.DependencyClient},
	},
	{
		Name:       "deps",
		Short:      "Analisa acoplamento e dependências por arquivo",
		RuleNames:  []string{rules.CouplingComplexityR, rules.DependencyCount},
		Complexity: true,
	},
	{
		Name:      "extract",
		Short:     "Recomenda extrações priorizadas com estimativa de esforço",
		RuleNames: []string{rules.StateSize, rules.ActionSize, rules.ClosureInjection, rules.LooseHelpers},
		Recommend: true,
	},
	{
		Name:       "check",
		Short:      "Executa todas as regras",
		Complexity: true,
		Recommend:  true,
	},
}

// Tools devolve o registro na ordem de exibição.
func Tools() []Tool {
	return append([]Tool(nil), tools...)
}

func Lookup(name string) (Tool, error) {
	for _, t := range tools {
		if t.Name == name {
			return t, nil
		}
	}
	return Tool{}, fmt.Errorf("ferramenta '%s' não suportada", name)
}

// RuleSet aplica o subconjunto da ferramenta a um conjunto já configurado.
func (t Tool) RuleSet(base rules.Set) (rules.Set, error) {
	if len(t.RuleNames) == 0 {
		return base, nil
	}
	return base.Subset(t.RuleNames)
}
