package selector

// SourceFile é um arquivo candidato ao scan.
type SourceFile struct {
	Path string // caminho usado para leitura
	Rel  string // relativo à raiz, com "/", usado nos relatórios
}
