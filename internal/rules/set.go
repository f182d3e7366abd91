package rules

import (
	"fmt"
	"sort"

	"github.com/Sena-ops/reducerguard/internal/config"
	"github.com/Sena-ops/reducerguard/internal/model"
)

// Set é uma tabela ordenada de regras. As operações devolvem cópias.
type Set struct {
	rules []Rule
}

// NewSet habilita todas as regras recebidas.
func NewSet(rules []Rule) Set {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Enabled = true
		out[i] = r
	}
	return Set{rules: out}
}

func (s Set) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

func (s Set) Len() int {
	return len(s.rules)
}

// Lookup aceita o nome ("state-size") ou o ID ("1.1").
func (s Set) Lookup(key string) (Rule, bool) {
	for _, r := range s.rules {
		if r.Name == key || r.ID == key {
			return r, true
		}
	}
	return Rule{}, false
}

// Apply devolve um novo Set com as sobrescritas da configuração.
func (s Set) Apply(overrides map[string]config.RuleConfig) (Set, error) {
	out := s.Rules()
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		o := overrides[key]
		idx := -1
		for i, r := range out {
			if r.Name == key || r.ID == key {
				idx = i
				break
			}
		}
		if idx < 0 {
			return Set{}, fmt.Errorf("%w: regra desconhecida %q", config.ErrInvalid, key)
		}
		if o.Enabled != nil {
			out[idx].Enabled = *o.Enabled
		}
		if o.Threshold != nil {
			if *o.Threshold < 0 {
				return Set{}, fmt.Errorf("%w: threshold negativo para %q", config.ErrInvalid, key)
			}
			out[idx].Threshold = *o.Threshold
		}
		if o.Weight != nil {
			out[idx].Weight = *o.Weight
		}
	}
	return Set{rules: out}, nil
}

// Subset mantém apenas as regras nomeadas, preservando a ordem da tabela.
func (s Set) Subset(names []string) (Set, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := s.Lookup(n); !ok {
			return Set{}, fmt.Errorf("%w: regra desconhecida %q", config.ErrInvalid, n)
		}
		want[n] = true
	}
	var out []Rule
	for _, r := range s.rules {
		if want[r.Name] || want[r.ID] {
			out = append(out, r)
		}
	}
	return Set{rules: out}, nil
}

// Evaluate aplica todas as regras habilitadas a um arquivo. Nenhuma regra vê
// o resultado de outra.
func (s Set) Evaluate(file string, src *Source, detailed bool) []model.Finding {
	var out []model.Finding
	for _, r := range s.rules {
		if !r.Enabled {
			continue
		}
		if f, ok := r.Evaluate(file, src, detailed); ok {
			out = append(out, f)
		}
	}
	return out
}
