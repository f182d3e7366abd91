package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Sena-ops/reducerguard/internal/sarif"
)

type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatSARIF    Format = "sarif"
)

// ErrUnknownFormat é devolvido por ParseFormat; a CLI trata como erro de uso.
var ErrUnknownFormat = errors.New("formato de saída desconhecido")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatMarkdown, FormatSARIF:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (use text, json, markdown ou sarif)", ErrUnknownFormat, s)
	}
}

// Write despacha para o renderizador do formato.
func Write(w io.Writer, format Format, v View, version string) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, v)
	case FormatMarkdown:
		return WriteMarkdown(w, v)
	case FormatSARIF:
		return sarif.Write(w, v.Result.Findings, "reducerguard", version)
	default:
		return WriteText(w, v)
	}
}
