package report

import "github.com/Sena-ops/reducerguard/internal/model"

// Códigos de saída do processo.
const (
	ExitPass        = 0
	ExitGateFailed  = 1
	ExitConfigError = 2
)

// Gate decide se a execução passa. Sem Strict nem EnforceThreshold os
// findings são apenas informativos.
type Gate struct {
	Strict           bool
	EnforceThreshold bool
	Threshold        int
}

func (g Gate) Passed(res model.ScanResult) bool {
	if g.Strict && res.Counts.Blocking() > 0 {
		return false
	}
	if g.EnforceThreshold && res.Score < g.Threshold {
		return false
	}
	return true
}

func (g Gate) ExitCode(res model.ScanResult) int {
	if g.Passed(res) {
		return ExitPass
	}
	return ExitGateFailed
}
