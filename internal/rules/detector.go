package rules

import (
	"strings"

	regexp "github.com/wasilibs/go-re2"
)

// Match é o resultado bruto de um detector: a contagem e as linhas (1-based)
// onde as ocorrências foram vistas.
type Match struct {
	Count int
	Lines []int
}

// Detector é um predicado puro e total sobre o texto de um arquivo.
type Detector interface {
	Detect(src *Source) Match
}

type DetectorFunc func(src *Source) Match

func (f DetectorFunc) Detect(src *Source) Match {
	return f(src)
}

// LinePattern conta todas as ocorrências de uma expressão em cada linha.
type LinePattern struct {
	re *regexp.Regexp
}

func Pattern(expr string) LinePattern {
	return LinePattern{re: regexp.MustCompile(expr)}
}

func (p LinePattern) Detect(src *Source) Match {
	var m Match
	for i, line := range src.Lines {
		if n := len(p.re.FindAllStringIndex(line, -1)); n > 0 {
			m.Count += n
			m.Lines = append(m.Lines, i+1)
		}
	}
	return m
}

// BlockMembers conta membros declarados no primeiro nível de blocos cujo
// cabeçalho casa com Header (ex: "struct State"). Quando o arquivo tem mais
// de um bloco, vale o maior.
type BlockMembers struct {
	Header *regexp.Regexp
	Member func(line string) int
}

// maxHeaderLines limita a busca pela "{" depois de um cabeçalho quebrado em linhas.
const maxHeaderLines = 4

func (b BlockMembers) Detect(src *Source) Match {
	var best Match
	for i, line := range src.Lines {
		if !b.Header.MatchString(line) {
			continue
		}
		if m := b.members(src, i); m.Count > best.Count {
			best = m
		}
	}
	return best
}

func (b BlockMembers) members(src *Source, start int) Match {
	var m Match
	d := src.Depth[start]
	opened := false
	for j := start; j < len(src.Lines); j++ {
		if opened && j > start && src.Depth[j] == d+1 {
			if n := b.Member(src.Lines[j]); n > 0 {
				m.Count += n
				m.Lines = append(m.Lines, j+1)
			}
		}
		after := src.DepthAfter(j)
		if after > d {
			opened = true
		} else if opened || strings.Contains(src.Lines[j], "{") {
			break
		}
		if !opened && j-start >= maxHeaderLines {
			break
		}
	}
	return m
}

// caseLabelRE captura o padrão de um "case .x:" dentro de switch.
var (
	caseLabelRE = regexp.MustCompile(`^\s*case\s+((?:let\s+|var\s+)?\..*?)\s*:(?:\s|$)`)
	switchRE    = regexp.MustCompile(`\bswitch\b`)
)

type switchScope struct {
	depth int
	seen  map[string]bool
}

// DuplicateCases conta rótulos repetidos dentro do mesmo switch. Cada repetição
// além da primeira ocorrência conta uma vez.
var DuplicateCases = DetectorFunc(func(src *Source) Match {
	var m Match
	var stack []switchScope
	for i, line := range src.Lines {
		d := src.Depth[i]
		for len(stack) > 0 && d < stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}

		if len(stack) > 0 && d == stack[len(stack)-1].depth {
			if sub := caseLabelRE.FindStringSubmatch(line); sub != nil {
				label := strings.Join(strings.Fields(sub[1]), " ")
				top := stack[len(stack)-1]
				if top.seen[label] {
					m.Count++
					m.Lines = append(m.Lines, i+1)
				} else {
					top.seen[label] = true
				}
			}
		}

		if switchRE.MatchString(line) {
			if after := src.DepthAfter(i); after > d {
				stack = append(stack, switchScope{depth: after, seen: map[string]bool{}})
			}
		}
	}
	return m
})

// topLevelCommas conta vírgulas fora de (), <> e [].
func topLevelCommas(s string) int {
	n, depth := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '<', '[':
			depth++
		case ')', '>', ']':
			if c == '>' && i > 0 && s[i-1] == '-' {
				continue
			}
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				n++
			}
		}
	}
	return n
}
