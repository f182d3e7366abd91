package rules

import (
	"strings"

	regexp "github.com/wasilibs/go-re2"
)

var (
	stateHeaderRE  = regexp.MustCompile(`\bstruct\s+State\b`)
	actionHeaderRE = regexp.MustCompile(`\benum\s+Action\b`)

	storedPropertyRE = regexp.MustCompile(`^\s*(?:@[\w.]+(?:\(.*\))?\s+)*(?:(?:public|private|fileprivate|internal|package|open)(?:\(set\))?\s+)*(?:(?:weak|unowned|lazy|nonisolated)\s+)*(?:var|let)\s+\w+`)
	staticRE         = regexp.MustCompile(`\b(?:static|class)\s+(?:var|let)\b`)
	actionCaseRE     = regexp.MustCompile(`^\s*(?:indirect\s+)?case\s+(.*)$`)

	blockRE  = regexp.MustCompile(`\.run\s*[{(]|\bEffect\s*\{|\bwithDependencies\s*\{|\.task\s*\{`)
	helperRE = regexp.MustCompile(`^\s*(?:@\w+\s+)*(?:private|fileprivate)\s+(?:static\s+)?func\s+\w+`)
)

const (
	closureInjectionExpr = `^\s*(?:@[\w.]+(?:\(.*\))?\s+)*(?:(?:public|private|fileprivate|internal|package)\s+)*(?:var|let)\s+\w+\s*:\s*(?:@(?:Sendable|escaping|MainActor)\s+)*\(.*\)\s*(?:async\s+)?(?:throws(?:\(\w+\))?\s+)?->\s*(?:Effect|EffectTask|EffectOf|EffectPublisher)\b`
	complexEffectExpr    = `\.(?:merge|concatenate)\s*\(|\bfor\s+await\b|\bTask\s*\{`
	dependencyExpr       = `@Dependency\s*\(`
	childScopeExpr       = `\bScope\s*\(\s*state\s*:|\.ifLet\s*\(\s*\\|\.forEach\s*\(\s*\\`
	stateClassExpr       = `\bclass\s+State\b`
	looseHelperExpr      = `^\s*(?:@\w+\s+)*(?:private|fileprivate)\s+(?:static\s+)?func\s+(?:handle|process|helper|do|perform|update|make|setup|compute|run)(?:[A-Z_]\w*)?\s*[(<]`
)

// StateProperties conta propriedades armazenadas no primeiro nível de "struct State".
var StateProperties = BlockMembers{
	Header: stateHeaderRE,
	Member: func(line string) int {
		if !storedPropertyRE.MatchString(line) || staticRE.MatchString(line) {
			return 0
		}
		// propriedade computada: corpo entre chaves sem valor inicial
		if strings.Contains(line, "{") && !strings.Contains(line, "=") {
			return 0
		}
		return 1
	},
}

// ActionCases conta os cases de "enum Action"; "case a, b" vale dois.
var ActionCases = BlockMembers{
	Header: actionHeaderRE,
	Member: func(line string) int {
		sub := actionCaseRE.FindStringSubmatch(line)
		if sub == nil {
			return 0
		}
		return 1 + topLevelCommas(sub[1])
	},
}

// CountComplexity devolve os blocos de efeito/dependência e os helpers privados.
func CountComplexity(src *Source) (blocks, helpers int) {
	for _, line := range src.Lines {
		blocks += len(blockRE.FindAllStringIndex(line, -1))
		if helperRE.MatchString(line) {
			helpers++
		}
	}
	return blocks, helpers
}

// ComplexityScore é 2 × blocos + helpers.
func ComplexityScore(blocks, helpers int) int {
	return 2*blocks + helpers
}

// CouplingComplexity expõe a pontuação de complexidade como contagem de detector.
var CouplingComplexity = DetectorFunc(func(src *Source) Match {
	blocks, helpers := CountComplexity(src)
	return Match{Count: ComplexityScore(blocks, helpers)}
})
