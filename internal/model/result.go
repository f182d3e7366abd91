package model

type Status string

const (
	StatusPass      Status = "pass"
	StatusNeedsWork Status = "needs-work"
	StatusCritical  Status = "critical"
)

type Tier string

const (
	TierHealthy  Tier = "healthy"
	TierMonitor  Tier = "monitor"
	TierRefactor Tier = "refactor"
)

// SeverityCounts agrega findings por severidade.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (c *SeverityCounts) Add(s Severity) {
	switch s {
	case SevCritical:
		c.Critical++
	case SevHigh:
		c.High++
	case SevMedium:
		c.Medium++
	case SevLow:
		c.Low++
	}
}

// Blocking soma CRITICAL e HIGH.
func (c SeverityCounts) Blocking() int {
	return c.Critical + c.High
}

// FileComplexity é a pontuação de acoplamento de um único arquivo.
type FileComplexity struct {
	FilePath string `json:"file"`
	Blocks   int    `json:"blocks"`
	Helpers  int    `json:"helpers"`
	Score    int    `json:"score"`
	Tier     Tier   `json:"tier"`
}

type TierCounts struct {
	Healthy  int `json:"healthy"`
	Monitor  int `json:"monitor"`
	Refactor int `json:"refactor"`
}

// ScanResult representa uma execução completa. Não é alterado depois de montado.
type ScanResult struct {
	Tool          string
	FilesAnalyzed int
	FilesSkipped  int
	Findings      []Finding
	Counts        SeverityCounts
	Violations    int
	Score         int
	Status        Status
	Complexity    []FileComplexity
	Tiers         TierCounts
}
