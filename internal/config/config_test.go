package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func noEnv() []string { return nil }

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"*Feature.swift", "*Reducer.swift"}, cfg.Include)
	assert.Contains(t, cfg.Exclude, "DerivedData")
	assert.Contains(t, cfg.Exclude, ".build")
	assert.Equal(t, 75, cfg.PassThreshold)
	assert.Equal(t, 50, cfg.CriticalThreshold)
	assert.Equal(t, 8, cfg.Workers)
	assert.Empty(t, cfg.Rules)
}

func TestLoadYAMLFromRoot(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, ".reducerguard.yaml", `
include: ["*Store.swift"]
pass_threshold: 80
rules:
  state-size:
    threshold: 25
  dependency-client:
    enabled: false
`)

	cfg, err := load(root, "", noEnv)
	require.NoError(t, err)
	assert.Equal(t, []string{"*Store.swift"}, cfg.Include)
	assert.Equal(t, 80, cfg.PassThreshold)
	assert.Equal(t, 50, cfg.CriticalThreshold, "chaves ausentes mantêm o padrão")
	require.Contains(t, cfg.Rules, "state-size")
	require.NotNil(t, cfg.Rules["state-size"].Threshold)
	assert.Equal(t, 25, *cfg.Rules["state-size"].Threshold)
	require.NotNil(t, cfg.Rules["dependency-client"].Enabled)
	assert.False(t, *cfg.Rules["dependency-client"].Enabled)
}

func TestLoadExplicitJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "guard.json", `{"workers": 2, "exclude": ["Generated"]}`)

	cfg, err := load(t.TempDir(), path, noEnv)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, []string{"Generated"}, cfg.Exclude)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, ".reducerguard.yml", "pass_threshold: 80\n")

	environ := func() []string {
		return []string{
			"REDUCERGUARD_PASS_THRESHOLD=90",
			"REDUCERGUARD_INCLUDE=*View.swift, *Feature.swift",
			"OTHER_PASS_THRESHOLD=10",
		}
	}
	cfg, err := load(root, "", environ)
	require.NoError(t, err)
	assert.Equal(t, 90, cfg.PassThreshold)
	assert.Equal(t, []string{"*View.swift", "*Feature.swift"}, cfg.Include)
}

func TestLoadEnvRuleOverrides(t *testing.T) {
	environ := func() []string {
		return []string{
			"REDUCERGUARD_RULES_STATE_SIZE_THRESHOLD=20",
			"REDUCERGUARD_RULES_DEPENDENCY-CLIENT_ENABLED=false",
			"REDUCERGUARD_RULES_LOOSE_HELPERS_WEIGHT=-4",
		}
	}
	cfg, err := load(t.TempDir(), "", environ)
	require.NoError(t, err)

	require.NotNil(t, cfg.Rules["state-size"].Threshold)
	assert.Equal(t, 20, *cfg.Rules["state-size"].Threshold)
	require.NotNil(t, cfg.Rules["dependency-client"].Enabled)
	assert.False(t, *cfg.Rules["dependency-client"].Enabled)
	require.NotNil(t, cfg.Rules["loose-helpers"].Weight)
	assert.Equal(t, -4, *cfg.Rules["loose-helpers"].Weight)
}

func TestEnvRuleKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"rules_state_size_threshold", "rules.state-size.threshold", true},
		{"rules_child-scopes_weight", "rules.child-scopes.weight", true},
		{"rules_state_size_color", "", false},
		{"rules_threshold", "", false},
		{"pass_threshold", "", false},
	}
	for _, tt := range tests {
		got, ok := envRuleKey(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		explicit string
	}{
		{"arquivo inexistente", filepath.Join(dir, "nao-existe.yaml")},
		{"extensão desconhecida", writeTempFile(t, dir, "guard.toml", "workers = 2")},
		{"yaml inválido", writeTempFile(t, dir, "broken.yaml", "include: [\n")},
		{"pass fora do intervalo", writeTempFile(t, dir, "pass.yaml", "pass_threshold: 120\n")},
		{"critical acima do pass", writeTempFile(t, dir, "crit.yaml", "pass_threshold: 40\ncritical_threshold: 60\n")},
		{"include vazio", writeTempFile(t, dir, "inc.json", `{"include": []}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load("", tt.explicit, noEnv)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	cfg := Default()
	cfg.Workers = 0
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.Workers)
}
