package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Sena-ops/reducerguard/internal/model"
	"github.com/Sena-ops/reducerguard/internal/recommend"
)

// SchemaVersion muda sempre que um campo do documento JSON mudar de sentido.
const SchemaVersion = "1"

// Document é o contrato JSON. A ordem dos campos da struct é a ordem de saída.
type Document struct {
	Success       bool                       `json:"success"`
	Violations    int                        `json:"violations"`
	Score         int                        `json:"score"`
	Status        model.Status               `json:"status"`
	Tool          string                     `json:"tool"`
	SchemaVersion string                     `json:"schema_version"`
	Critical      int                        `json:"critical"`
	High          int                        `json:"high"`
	Medium        int                        `json:"medium"`
	Low           int                        `json:"low"`
	Findings      []model.Finding            `json:"findings"`
	FilesAnalyzed int                        `json:"files_analyzed"`
	FilesSkipped  int                        `json:"files_skipped,omitempty"`
	Complexity    []model.FileComplexity     `json:"complexity,omitempty"`
	Tiers         *model.TierCounts          `json:"tiers,omitempty"`
	Recommended   []recommend.Recommendation `json:"recommendations,omitempty"`
	TotalEffort   *int                       `json:"total_effort_hours,omitempty"`
}

// View reúne o que os renderizadores precisam além do ScanResult.
type View struct {
	Result     model.ScanResult
	Gate       Gate
	Plan       *recommend.Plan
	Complexity bool // inclui a tabela de complexidade e as faixas
	Detailed   bool
	EffortOnly bool
}

func (v View) Passed() bool {
	return v.Gate.Passed(v.Result)
}

// NewDocument monta o documento sem carimbo de tempo: duas execuções sobre a
// mesma árvore geram bytes idênticos.
func NewDocument(v View) Document {
	res := v.Result
	doc := Document{
		Success:       v.Passed(),
		Violations:    res.Violations,
		Score:         res.Score,
		Status:        res.Status,
		Tool:          res.Tool,
		SchemaVersion: SchemaVersion,
		Critical:      res.Counts.Critical,
		High:          res.Counts.High,
		Medium:        res.Counts.Medium,
		Low:           res.Counts.Low,
		Findings:      res.Findings,
		FilesAnalyzed: res.FilesAnalyzed,
		FilesSkipped:  res.FilesSkipped,
	}
	if doc.Findings == nil {
		doc.Findings = []model.Finding{}
	}
	if v.Complexity {
		doc.Complexity = res.Complexity
		tiers := res.Tiers
		doc.Tiers = &tiers
	}
	if v.Plan != nil {
		doc.Recommended = v.Plan.Recommendations
		total := v.Plan.TotalHours
		doc.TotalEffort = &total
	}
	return doc
}

func WriteJSON(w io.Writer, v View) error {
	encoded, err := json.MarshalIndent(NewDocument(v), "", "  ")
	if err != nil {
		return fmt.Errorf("gerar JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(encoded)); err != nil {
		return fmt.Errorf("escrever JSON: %w", err)
	}
	return nil
}
