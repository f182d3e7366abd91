package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func writeTempFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	code := run(rootCmd)
	return code, stdout.String(), stderr.String()
}

func bigState(props int) string {
	var b strings.Builder
	b.WriteString("struct ProfileFeature {\n  struct State {\n")
	for i := 0; i < props; i++ {
		fmt.Fprintf(&b, "    var field%d = 0\n", i)
	}
	b.WriteString("  }\n}\n")
	return b.String()
}

const threeClosures = `struct SearchFeature {
  var search: (String) -> Effect<Action>
  var load: () -> Effect<Action>
  var save: (Item) -> Effect<Action>
}
`

func TestEmptyDirectoryJSON(t *testing.T) {
	root := t.TempDir()
	code, out, _ := execute(t, "validate", root, "--json")
	assert.Equal(t, 0, code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, true, doc["success"])
	assert.EqualValues(t, 0, doc["violations"])
	assert.EqualValues(t, 0, doc["files_analyzed"])
}

func TestEmptyDirectoryText(t *testing.T) {
	code, out, _ := execute(t, "check", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Nenhum arquivo encontrado")
	assert.Contains(t, out, "Arquivos analisados: 0")
}

func TestStrictMode(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "ProfileFeature.swift", bigState(16))

	code, _, _ := execute(t, "validate", root)
	assert.Equal(t, 0, code, "sem --strict findings são informativos")

	code, out, _ := execute(t, "validate", root, "--strict")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Arquivos analisados: 1", "o resumo sai mesmo reprovado")

	medium := t.TempDir()
	writeTempFile(t, medium, "ListFeature.swift", "func f() { Task { } }\n")
	code, _, _ = execute(t, "score", medium, "--strict")
	assert.Equal(t, 0, code, "MEDIUM não reprova o strict")
}

func TestThresholdFlag(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "SearchFeature.swift", threeClosures)

	code, out, _ := execute(t, "score", root, "--json")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"score": 70`)
	assert.Contains(t, out, `"status": "needs-work"`)

	code, out, _ = execute(t, "score", root, "--json", "--threshold", "75")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `"success": false`)

	code, _, _ = execute(t, "score", root, "--threshold", "60")
	assert.Equal(t, 0, code)
}

func TestJSONIdempotent(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "SearchFeature.swift", threeClosures)
	writeTempFile(t, root, "Sub/ProfileFeature.swift", bigState(20))

	_, first, _ := execute(t, "check", root, "--json", "--detailed")
	_, second, _ := execute(t, "check", root, "--json", "--detailed")
	assert.Equal(t, first, second)
}

func TestConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nao-existe")
	code, _, stderr := execute(t, "validate", missing)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Erro:")

	code, _, _ = execute(t, "validate", t.TempDir(), "-o", "xml")
	assert.Equal(t, 2, code)

	root := t.TempDir()
	writeTempFile(t, root, ".reducerguard.yaml", "rules:\n  nao-existe:\n    enabled: false\n")
	code, _, _ = execute(t, "validate", root)
	assert.Equal(t, 2, code)

	code, _, _ = execute(t, "validate", t.TempDir(), "--threshold", "150")
	assert.Equal(t, 2, code)
}

func TestConfigFileOverridesRule(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "ProfileFeature.swift", bigState(16))
	writeTempFile(t, root, ".reducerguard.yaml", "rules:\n  state-size:\n    threshold: 30\n")

	code, out, _ := execute(t, "validate", root, "--strict", "--json")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"violations": 0`)
}

func TestExtractEffortOnly(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "SearchFeature.swift", threeClosures)

	code, out, _ := execute(t, "extract", root, "--effort-only")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Esforço total estimado: 6 horas\n", out)
}

func TestDepsDetailed(t *testing.T) {
	root := t.TempDir()
	writeTempFile(t, root, "SyncReducer.swift", "struct SyncReducer {\n  func f() { .run { _ in } }\n}\n")

	code, out, _ := execute(t, "deps", root, "--detailed")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "SyncReducer.swift")
	assert.Contains(t, out, "healthy")
}

func TestRulesCommand(t *testing.T) {
	code, out, _ := execute(t, "rules", "--json")
	assert.Equal(t, 0, code)

	var rows []ruleRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 11)
	assert.Equal(t, "1.1", rows[0].ID)
	assert.Equal(t, "state-size", rows[0].Name)
}

func TestUnknownCommand(t *testing.T) {
	code, _, _ := execute(t, "scan", ".")
	assert.Equal(t, 2, code)
}
