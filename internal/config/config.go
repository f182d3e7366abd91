package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix é o prefixo das variáveis de ambiente lidas pelo Load.
const EnvPrefix = "REDUCERGUARD_"

// ErrInvalid marca qualquer erro de configuração (exit code 2).
var ErrInvalid = errors.New("configuração inválida")

// DefaultFileNames são procurados na raiz do scan quando --config não é passado.
var DefaultFileNames = []string{".reducerguard.yaml", ".reducerguard.yml", ".reducerguard.json"}

// RuleConfig sobrescreve os valores padrão de uma regra. Campos nil mantêm o padrão.
type RuleConfig struct {
	Enabled   *bool `koanf:"enabled"`
	Threshold *int  `koanf:"threshold"`
	Weight    *int  `koanf:"weight"`
}

// Config é a configuração efetiva de uma execução. Rules usa o nome da regra
// como chave: o ID ("1.1") contém o delimitador de chaves do koanf.
type Config struct {
	Include           []string              `koanf:"include"`
	Exclude           []string              `koanf:"exclude"`
	PassThreshold     int                   `koanf:"pass_threshold"`
	CriticalThreshold int                   `koanf:"critical_threshold"`
	Workers           int                   `koanf:"workers"`
	Rules             map[string]RuleConfig `koanf:"rules"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"include":            []string{"*Feature.swift", "*Reducer.swift"},
		"exclude":            []string{".build", "build", "DerivedData", "Pods", "Carthage", ".git", ".swiftpm", "vendor", "node_modules"},
		"pass_threshold":     75,
		"critical_threshold": 50,
		"workers":            8,
	}
}

// Default devolve a configuração embutida, sem arquivo nem ambiente.
func Default() *Config {
	cfg, err := load("", "", nil)
	if err != nil {
		panic("configuração padrão inválida: " + err.Error())
	}
	return cfg
}

// Load monta a configuração em camadas: padrões, arquivo, ambiente.
// explicit tem prioridade sobre os arquivos padrão em root.
func Load(root, explicit string) (*Config, error) {
	return load(root, explicit, os.Environ)
}

func load(root, explicit string, environ func() []string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%w: padrões: %v", ErrInvalid, err)
	}

	path, err := resolveFile(root, explicit)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("%w: ler %s: %v", ErrInvalid, path, err)
		}
	}

	if environ != nil {
		provider := env.Provider(".", env.Opt{
			Prefix:        EnvPrefix,
			TransformFunc: envKey,
			EnvironFunc:   environ,
		})
		if err := k.Load(provider, nil); err != nil {
			return nil, fmt.Errorf("%w: ambiente: %v", ErrInvalid, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey converte REDUCERGUARD_PASS_THRESHOLD em pass_threshold.
// Listas aceitam valores separados por vírgula.
func envKey(key, value string) (string, any) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	switch key {
	case "include", "exclude":
		return key, splitAndTrim(value)
	}
	if rule, ok := envRuleKey(key); ok {
		return rule, value
	}
	return key, value
}

// envRuleKey converte rules_state_size_threshold em rules.state-size.threshold.
// O último segmento é o campo; o meio é o nome da regra, com "_" ou "-".
func envRuleKey(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, "rules_")
	if !ok {
		return "", false
	}
	i := strings.LastIndex(rest, "_")
	if i <= 0 {
		return "", false
	}
	name, field := rest[:i], rest[i+1:]
	switch field {
	case "enabled", "threshold", "weight":
	default:
		return "", false
	}
	return "rules." + strings.ReplaceAll(name, "_", "-") + "." + field, true
}

func resolveFile(root, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("%w: arquivo de configuração: %v", ErrInvalid, err)
		}
		return explicit, nil
	}
	if root == "" {
		return "", nil
	}
	for _, name := range DefaultFileNames {
		candidate := filepath.Join(root, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Parser(), nil
	case ".yaml", ".yml":
		return YAML(), nil
	default:
		return nil, fmt.Errorf("%w: formato de configuração não suportado: %s", ErrInvalid, path)
	}
}

func (c *Config) Validate() error {
	if len(c.Include) == 0 {
		return fmt.Errorf("%w: include não pode ser vazio", ErrInvalid)
	}
	if c.PassThreshold < 0 || c.PassThreshold > 100 {
		return fmt.Errorf("%w: pass_threshold fora de [0,100]: %d", ErrInvalid, c.PassThreshold)
	}
	if c.CriticalThreshold < 0 || c.CriticalThreshold > c.PassThreshold {
		return fmt.Errorf("%w: critical_threshold deve estar em [0,pass_threshold]: %d", ErrInvalid, c.CriticalThreshold)
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return nil
}

func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
