package rules

import "github.com/Sena-ops/reducerguard/internal/model"

// Nomes das regras, usados nas sobrescritas de configuração e no registro de ferramentas.
const (
	StateSize           = "state-size"
	ActionSize          = "action-size"
	ChildScopes         = "child-scopes"
	StateReferenceType  = "state-reference-type"
	ClosureInjection    = "closure-injection"
	ComplexEffect       = "complex-effect"
	DependencyClient    = "dependency-client"
	DuplicateActionCase = "duplicate-action-case"
	CouplingComplexityR = "coupling-complexity"
	DependencyCount     = "dependency-count"
	LooseHelpers        = "loose-helpers"
)

// Limites padrão. Não são invariantes: todos podem ser sobrescritos por regra.
const (
	DefaultStatePropertyLimit = 15
	DefaultActionCaseLimit    = 40
	DefaultChildScopeLimit    = 5
	DefaultCouplingRefactor   = 15
	DefaultDependencyLimit    = 8
	DefaultLooseHelperLimit   = 5
)

// Defaults devolve a tabela de regras embutida, na ordem de ID.
func Defaults() Set {
	return NewSet([]Rule{
		{
			ID:          "1.1",
			Name:        StateSize,
			Description: "State com propriedades demais indica feature que deveria ser dividida",
			Severity:    model.SevHigh,
			Threshold:   DefaultStatePropertyLimit,
			Weight:      -15,
			Message:     "State declara {count} propriedades (limite {threshold})",
			Detector:    StateProperties,
		},
		{
			ID:          "1.2",
			Name:        ActionSize,
			Description: "Action com cases demais indica responsabilidades misturadas",
			Severity:    model.SevHigh,
			Threshold:   DefaultActionCaseLimit,
			Weight:      -15,
			Message:     "Action declara {count} cases (limite {threshold})",
			Detector:    ActionCases,
		},
		{
			ID:          "1.3",
			Name:        ChildScopes,
			Description: "Muitas features filhas compostas no mesmo reducer",
			Severity:    model.SevMedium,
			Threshold:   DefaultChildScopeLimit,
			Weight:      -10,
			Message:     "reducer compõe {count} features filhas (limite {threshold})",
			Detector:    Pattern(childScopeExpr),
		},
		{
			ID:          "1.4",
			Name:        StateReferenceType,
			Description: "State deve ser tipo valor (struct), nunca class",
			Severity:    model.SevCritical,
			Weight:      -25,
			Message:     "State declarado como class ({count} ocorrência(s))",
			Detector:    Pattern(stateClassExpr),
		},
		{
			ID:          "2.1",
			Name:        ClosureInjection,
			Description: "Dependência injetada como propriedade closure que devolve Effect",
			Severity:    model.SevHigh,
			Weight:      -10,
			PerMatch:    true,
			Message:     "{count} dependência(s) injetada(s) por closure que devolve Effect; use um cliente @Dependency",
			Detector:    Pattern(closureInjectionExpr),
		},
		{
			ID:          "2.2",
			Name:        ComplexEffect,
			Description: "Efeitos compostos (merge, concatenate, for await, Task) dificultam o TestStore",
			Severity:    model.SevMedium,
			Weight:      -5,
			PerMatch:    true,
			Message:     "{count} efeito(s) complexo(s)",
			Detector:    Pattern(complexEffectExpr),
		},
		{
			ID:          "2.3",
			Name:        DependencyClient,
			Description: "Uso de @Dependency, padrão saudável para testes",
			Severity:    model.SevLow,
			Weight:      5,
			PerMatch:    true,
			Message:     "{count} dependência(s) via @Dependency",
			Detector:    Pattern(dependencyExpr),
		},
		{
			ID:          "3.1",
			Name:        DuplicateActionCase,
			Description: "O mesmo case de action tratado mais de uma vez no mesmo switch",
			Severity:    model.SevMedium,
			Weight:      -5,
			PerMatch:    true,
			Message:     "{count} case(s) de action duplicado(s) no switch",
			Detector:    DuplicateCases,
		},
		{
			ID:          "4.1",
			Name:        CouplingComplexityR,
			Description: "Pontuação de acoplamento (2 × blocos + helpers) na faixa de refatoração",
			Severity:    model.SevHigh,
			Threshold:   DefaultCouplingRefactor,
			Weight:      -10,
			Message:     "complexidade de acoplamento {count} (limite {threshold})",
			Detector:    CouplingComplexity,
		},
		{
			ID:          "4.2",
			Name:        DependencyCount,
			Description: "Feature depende de clientes demais",
			Severity:    model.SevMedium,
			Threshold:   DefaultDependencyLimit,
			Weight:      -5,
			Message:     "{count} dependências declaradas (limite {threshold})",
			Detector:    Pattern(dependencyExpr),
		},
		{
			ID:          "5.1",
			Name:        LooseHelpers,
			Description: "Helpers privados com nomes genéricos sugerem lógica a extrair",
			Severity:    model.SevLow,
			Threshold:   DefaultLooseHelperLimit,
			Weight:      -2,
			Message:     "{count} helpers privados com nomes genéricos (limite {threshold})",
			Detector:    Pattern(looseHelperExpr),
		},
	})
}
