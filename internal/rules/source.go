package rules

import "strings"

// Source é a visão de um arquivo Swift que os detectores enxergam: linhas sem
// comentários, conteúdo de strings trocado por espaços e a profundidade de
// chaves no início de cada linha. É uma tokenização aproximada, não um parser;
// texto malformado só afeta as contagens, nunca gera erro.
type Source struct {
	Lines []string
	Depth []int
}

func NewSource(text string) *Source {
	lines := strings.Split(strip(text), "\n")
	depth := make([]int, len(lines))
	d := 0
	for i, line := range lines {
		depth[i] = d
		d += strings.Count(line, "{") - strings.Count(line, "}")
		if d < 0 {
			d = 0
		}
	}
	return &Source{Lines: lines, Depth: depth}
}

// DepthAfter devolve a profundidade de chaves ao final da linha i.
func (s *Source) DepthAfter(i int) int {
	if i+1 < len(s.Depth) {
		return s.Depth[i+1]
	}
	d := s.Depth[i] + strings.Count(s.Lines[i], "{") - strings.Count(s.Lines[i], "}")
	if d < 0 {
		return 0
	}
	return d
}

const (
	stNormal = iota
	stLineComment
	stBlockComment
	stString
	stMultiString
)

// strip remove comentários (inclusive aninhados) e apaga o conteúdo de
// literais de string, preservando quebras de linha.
func strip(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	state := stNormal
	nesting := 0
	n := len(text)
	for i := 0; i < n; i++ {
		c := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		switch state {
		case stNormal:
			switch {
			case c == '/' && next == '/':
				state = stLineComment
				i++
			case c == '/' && next == '*':
				state = stBlockComment
				nesting = 1
				i++
			case c == '"' && strings.HasPrefix(text[i:], `"""`):
				state = stMultiString
				b.WriteString(`"""`)
				i += 2
			case c == '"':
				state = stString
				b.WriteByte(c)
			default:
				b.WriteByte(c)
			}

		case stLineComment:
			if c == '\n' {
				state = stNormal
				b.WriteByte('\n')
			}

		case stBlockComment:
			switch {
			case c == '/' && next == '*':
				nesting++
				i++
			case c == '*' && next == '/':
				nesting--
				i++
				if nesting == 0 {
					state = stNormal
				}
			case c == '\n':
				b.WriteByte('\n')
			}

		case stString:
			switch c {
			case '\\':
				b.WriteByte(' ')
				if next != 0 && next != '\n' {
					b.WriteByte(' ')
					i++
				}
			case '"':
				state = stNormal
				b.WriteByte('"')
			case '\n':
				// string sem fechamento: volta ao normal na próxima linha
				state = stNormal
				b.WriteByte('\n')
			default:
				b.WriteByte(' ')
			}

		case stMultiString:
			switch {
			case c == '"' && strings.HasPrefix(text[i:], `"""`):
				state = stNormal
				b.WriteString(`"""`)
				i += 2
			case c == '\n':
				b.WriteByte('\n')
			case c == '\\' && next != 0 && next != '\n':
				b.WriteString("  ")
				i++
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}
