package recommend

import (
	"encoding/json"
	"testing"

	"github.com/Sena-ops/reducerguard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(file, rule string, count, threshold int) model.Finding {
	return model.Finding{FilePath: file, RuleID: rule, Count: count, Threshold: threshold}
}

func TestBuildEmpty(t *testing.T) {
	plan := Build(model.ScanResult{})
	assert.Empty(t, plan.Recommendations)
	assert.Equal(t, 0, plan.TotalHours)
}

func TestBuildPriorities(t *testing.T) {
	res := model.ScanResult{Findings: []model.Finding{
		f("AFeature.swift", "5.1", 7, 5),
		f("BFeature.swift", "1.1", 20, 15),
		f("BFeature.swift", "1.2", 60, 40),
		f("CFeature.swift", "2.1", 3, 0),
		f("AFeature.swift", "2.1", 1, 0),
		f("CFeature.swift", "2.2", 4, 0),
	}}

	plan := Build(res)
	require.Len(t, plan.Recommendations, 4)

	got := make([]string, 0, len(plan.Recommendations))
	for _, r := range plan.Recommendations {
		got = append(got, string(r.Priority)+" "+r.File+" "+r.Effort)
	}
	assert.Equal(t, []string{
		"P1 AFeature.swift 2 horas",
		"P1 CFeature.swift 6 horas",
		"P2 BFeature.swift 2-3 dias",
		"P3 AFeature.swift 1 hora",
	}, got)

	// 2×(1+3) + 8×1 + 1×1
	assert.Equal(t, 17, plan.TotalHours)
}

func TestSplitRecommendationHasNoHours(t *testing.T) {
	for _, count := range []int{17, 30, 80} {
		plan := Build(model.ScanResult{Findings: []model.Finding{f("BFeature.swift", "1.1", count, 15)}})
		require.Len(t, plan.Recommendations, 1)
		r := plan.Recommendations[0]
		assert.Equal(t, P2, r.Priority)
		assert.Zero(t, r.EffortHours, "count %d", count)
		assert.Equal(t, HoursPerSplit, plan.TotalHours)

		encoded, err := json.Marshal(r)
		require.NoError(t, err)
		assert.NotContains(t, string(encoded), "effort_hours")
		assert.Contains(t, string(encoded), `"effort":"`+SplitEffort(count-15)+`"`)
	}
}

func TestSplitEffortBands(t *testing.T) {
	assert.Equal(t, "4 horas", SplitEffort(1))
	assert.Equal(t, "4 horas", SplitEffort(5))
	assert.Equal(t, "1 dia", SplitEffort(6))
	assert.Equal(t, "1 dia", SplitEffort(15))
	assert.Equal(t, "2-3 dias", SplitEffort(16))
}
