package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Sena-ops/reducerguard/internal/model"
)

// WriteMarkdown gera um resumo para comentários de PR, agrupado por severidade.
func WriteMarkdown(w io.Writer, v View) error {
	res := v.Result
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("## 📋 Resultado do reducerguard (%s)\n\n", res.Tool))
	builder.WriteString(fmt.Sprintf("**Pontuação:** %d/100 (%s) · **Violações:** %d · **Arquivos:** %d\n\n",
		res.Score, res.Status, res.Violations, res.FilesAnalyzed))

	if res.FilesAnalyzed == 0 && res.FilesSkipped == 0 {
		builder.WriteString("_" + NoFilesNotice + "_\n\n")
	}

	for _, sev := range model.Severities {
		group := bySeverity(res.Findings, sev)
		if len(group) == 0 {
			continue
		}
		builder.WriteString(fmt.Sprintf("### %s (%d)\n", sev, len(group)))
		for _, f := range group {
			builder.WriteString(fmt.Sprintf("- `%s`%s %s\n", f.FilePath, mdLine(f), f.Message))
		}
		builder.WriteString("\n")
	}

	if healthy := healthyFindings(res.Findings); len(healthy) > 0 {
		builder.WriteString(fmt.Sprintf("### ✅ Padrões saudáveis (%d)\n", len(healthy)))
		for _, f := range healthy {
			builder.WriteString(fmt.Sprintf("- `%s` %s\n", f.FilePath, f.Message))
		}
		builder.WriteString("\n")
	}

	if v.Complexity && len(res.Complexity) > 0 {
		builder.WriteString("### Complexidade\n\n| Arquivo | Blocos | Helpers | Pontuação | Faixa |\n|---|---|---|---|---|\n")
		for _, c := range res.Complexity {
			builder.WriteString(fmt.Sprintf("| %s | %d | %d | %d | %s |\n", c.FilePath, c.Blocks, c.Helpers, c.Score, c.Tier))
		}
		builder.WriteString("\n")
	}

	if v.Plan != nil && len(v.Plan.Recommendations) > 0 {
		builder.WriteString("### Recomendações de extração\n")
		for _, r := range v.Plan.Recommendations {
			builder.WriteString(fmt.Sprintf("- **%s** `%s` (%s): %s\n", r.Priority, r.File, r.Effort, r.Impact))
		}
		builder.WriteString(fmt.Sprintf("\nEsforço total estimado: %d horas\n\n", v.Plan.TotalHours))
	}

	if v.Passed() {
		builder.WriteString("✅ Gate aprovado\n")
	} else {
		builder.WriteString("❌ Gate reprovado\n")
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

func mdLine(f model.Finding) string {
	if f.Line == 0 {
		return ""
	}
	return fmt.Sprintf(":%d", f.Line)
}
