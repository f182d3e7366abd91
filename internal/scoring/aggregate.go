package scoring

import (
	"sort"

	"github.com/Sena-ops/reducerguard/internal/model"
)

// Thresholds são os limites de status vindos da configuração.
type Thresholds struct {
	Pass     int
	Critical int
}

// Batch é a contribuição de um arquivo: seus findings e, quando calculada,
// a complexidade.
type Batch struct {
	Findings   []model.Finding
	Complexity *model.FileComplexity
	Skipped    bool
}

// Aggregate reduz os lotes por arquivo em um único ScanResult. Os lotes não
// são alterados; o resultado tem cópias próprias, já ordenadas.
func Aggregate(tool string, batches []Batch, th Thresholds) model.ScanResult {
	res := model.ScanResult{
		Tool:     tool,
		Findings: []model.Finding{},
	}

	for _, b := range batches {
		if b.Skipped {
			res.FilesSkipped++
			continue
		}
		res.FilesAnalyzed++
		res.Findings = append(res.Findings, b.Findings...)
		if b.Complexity != nil {
			res.Complexity = append(res.Complexity, *b.Complexity)
		}
	}

	model.SortFindings(res.Findings)
	sort.SliceStable(res.Complexity, func(i, j int) bool {
		return res.Complexity[i].FilePath < res.Complexity[j].FilePath
	})

	// bônus de padrão saudável não entram nas contagens de violação
	for _, f := range res.Findings {
		if f.Healthy {
			continue
		}
		res.Counts.Add(f.Severity)
		res.Violations++
	}
	res.Score = Score(res.Findings)
	res.Status = Status(res.Score, th.Pass, th.Critical)
	res.Tiers = CountTiers(res.Complexity)
	return res
}
