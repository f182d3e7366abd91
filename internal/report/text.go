package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Sena-ops/reducerguard/internal/model"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	cyan   = color.New(color.FgCyan, color.Bold).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed, color.Bold).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

// NoFilesNotice é impresso quando o seletor não encontrou nenhum arquivo.
const NoFilesNotice = "Nenhum arquivo encontrado"

// WriteText gera o relatório para terminal. O resumo é sempre impresso,
// mesmo quando o gate reprova.
func WriteText(w io.Writer, v View) error {
	res := v.Result

	if v.EffortOnly && v.Plan != nil {
		_, err := fmt.Fprintf(w, "Esforço total estimado: %d horas\n", v.Plan.TotalHours)
		return err
	}

	fmt.Fprintf(w, "%s %s\n\n", cyan("🔍 reducerguard"), cyan(res.Tool))

	if res.FilesAnalyzed == 0 && res.FilesSkipped == 0 {
		fmt.Fprintf(w, "%s\n\n", yellow(NoFilesNotice))
	} else {
		for _, sev := range model.Severities {
			group := bySeverity(res.Findings, sev)
			if len(group) == 0 {
				continue
			}
			fmt.Fprintf(w, "%s (%d)\n", severityColor(sev)(string(sev)), len(group))
			if err := findingsTable(w, group, v.Detailed); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		if healthy := healthyFindings(res.Findings); len(healthy) > 0 {
			fmt.Fprintf(w, "%s (%d)\n", green("✅ Padrões saudáveis"), len(healthy))
			if err := findingsTable(w, healthy, v.Detailed); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
	}

	if v.Complexity {
		if v.Detailed && len(res.Complexity) > 0 {
			if err := complexityTable(w, res.Complexity); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Faixas: %s saudável · %s monitorar · %s refatorar\n\n",
			green(res.Tiers.Healthy), yellow(res.Tiers.Monitor), red(res.Tiers.Refactor))
	}

	if v.Plan != nil && len(v.Plan.Recommendations) > 0 {
		if err := planTable(w, v); err != nil {
			return err
		}
		fmt.Fprintf(w, "Esforço total estimado: %d horas\n\n", v.Plan.TotalHours)
	}

	return summary(w, v)
}

func summary(w io.Writer, v View) error {
	res := v.Result
	fmt.Fprintf(w, "Arquivos analisados: %d", res.FilesAnalyzed)
	if res.FilesSkipped > 0 {
		fmt.Fprintf(w, " %s", gray(fmt.Sprintf("(%d ignorados)", res.FilesSkipped)))
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Violações: %d (critical %d, high %d, medium %d, low %d)\n",
		res.Violations, res.Counts.Critical, res.Counts.High, res.Counts.Medium, res.Counts.Low)
	fmt.Fprintf(w, "Pontuação: %s/100 (%s)\n", statusColor(res.Status)(strconv.Itoa(res.Score)), statusColor(res.Status)(string(res.Status)))

	var err error
	if v.Passed() {
		_, err = fmt.Fprintln(w, green("✅ Gate aprovado"))
	} else {
		_, err = fmt.Fprintln(w, red("❌ Gate reprovado"))
	}
	return err
}

func findingsTable(w io.Writer, fs []model.Finding, detailed bool) error {
	table := tablewriter.NewWriter(w)
	table.Header("Arquivo", "Linha", "Regra", "Mensagem", "Impacto")
	rows := make([][]string, 0, len(fs))
	for _, f := range fs {
		rows = append(rows, []string{
			f.FilePath,
			lineCell(f, detailed),
			f.RuleID,
			f.Message,
			fmt.Sprintf("%+d", f.Impact),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("montar tabela: %w", err)
	}
	return table.Render()
}

func complexityTable(w io.Writer, entries []model.FileComplexity) error {
	table := tablewriter.NewWriter(w)
	table.Header("Arquivo", "Blocos", "Helpers", "Pontuação", "Faixa")
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.FilePath,
			strconv.Itoa(e.Blocks),
			strconv.Itoa(e.Helpers),
			strconv.Itoa(e.Score),
			string(e.Tier),
		})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("montar tabela: %w", err)
	}
	return table.Render()
}

func planTable(w io.Writer, v View) error {
	table := tablewriter.NewWriter(w)
	table.Header("Prioridade", "Arquivo", "Esforço", "Impacto")
	rows := make([][]string, 0, len(v.Plan.Recommendations))
	for _, r := range v.Plan.Recommendations {
		rows = append(rows, []string{string(r.Priority), r.File, r.Effort, r.Impact})
	}
	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("montar tabela: %w", err)
	}
	return table.Render()
}

func lineCell(f model.Finding, detailed bool) string {
	if detailed && len(f.Lines) > 0 {
		parts := make([]string, len(f.Lines))
		for i, l := range f.Lines {
			parts[i] = strconv.Itoa(l)
		}
		return strings.Join(parts, ",")
	}
	if f.Line == 0 {
		return "-"
	}
	return strconv.Itoa(f.Line)
}

func bySeverity(fs []model.Finding, sev model.Severity) []model.Finding {
	var out []model.Finding
	for _, f := range fs {
		if f.Severity == sev && !f.Healthy {
			out = append(out, f)
		}
	}
	return out
}

func healthyFindings(fs []model.Finding) []model.Finding {
	var out []model.Finding
	for _, f := range fs {
		if f.Healthy {
			out = append(out, f)
		}
	}
	return out
}

func severityColor(s model.Severity) func(a ...interface{}) string {
	switch {
	case s.Blocking():
		return red
	case s == model.SevMedium:
		return yellow
	default:
		return gray
	}
}

func statusColor(s model.Status) func(a ...interface{}) string {
	switch s {
	case model.StatusPass:
		return green
	case model.StatusNeedsWork:
		return yellow
	default:
		return red
	}
}
