package config

import (
	"gopkg.in/yaml.v3"
)

// yamlParser implementa koanf.Parser sobre gopkg.in/yaml.v3.
type yamlParser struct{}

func YAML() *yamlParser {
	return &yamlParser{}
}

func (p *yamlParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *yamlParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}
