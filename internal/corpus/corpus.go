// Package corpus holds the sample texts offered per theme.
package corpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/verte-zerg/typetheme/internal/model"
)

var builtinOrder = []model.Theme{
	model.ThemeCoding,
	model.ThemeLiterature,
	model.ThemeQuotes,
	model.ThemeScience,
}

var builtinSamples = map[model.Theme][]string{
	model.ThemeCoding: {
		"const hello = 'world';",
		"function greet(name) { return `Hello, ${name}`; }",
		"for (let i = 0; i < 10; i++) { console.log(i); }",
	},
	model.ThemeLiterature: {
		"It was the best of times, it was the worst of times.",
		"To be or not to be, that is the question.",
		"All that glitters is not gold.",
	},
	model.ThemeQuotes: {
		"The only limit to our realization of tomorrow is our doubts of today.",
		"In the middle of every difficulty lies opportunity.",
		"Success is not final, failure is not fatal: It is the courage to continue that counts.",
	},
	model.ThemeScience: {
		"The Earth revolves around the Sun in an elliptical orbit.",
		"Every action has an equal and opposite reaction.",
		"Water is composed of two hydrogen atoms and one oxygen atom.",
	},
}

// Pool maps themes to their candidate sample texts.
type Pool struct {
	order   []model.Theme
	samples map[model.Theme][]string
}

// Builtin returns the default pool.
func Builtin() Pool {
	p := Pool{samples: map[model.Theme][]string{}}
	for _, theme := range builtinOrder {
		p.add(theme, builtinSamples[theme]...)
	}
	return p
}

// FromMap builds a pool from a theme -> samples mapping. Invalid samples are dropped.
func FromMap(m map[model.Theme][]string) Pool {
	p := Pool{samples: map[model.Theme][]string{}}
	themes := make([]model.Theme, 0, len(m))
	for theme := range m {
		themes = append(themes, theme)
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i] < themes[j] })
	for _, theme := range themes {
		p.add(theme, m[theme]...)
	}
	return p
}

// Merge combines pools in order. Duplicate samples within a theme are kept once.
func Merge(pools ...Pool) Pool {
	out := Pool{samples: map[model.Theme][]string{}}
	for _, p := range pools {
		for _, theme := range p.order {
			out.add(theme, p.samples[theme]...)
		}
	}
	out.sortOrder()
	return out
}

func (p *Pool) add(theme model.Theme, texts ...string) {
	theme = model.Theme(strings.ToLower(strings.TrimSpace(string(theme))))
	if theme == "" {
		return
	}
	existing, ok := p.samples[theme]
	for _, text := range texts {
		if !ValidSample(text) || contains(existing, text) {
			continue
		}
		existing = append(existing, text)
	}
	if len(existing) == 0 {
		return
	}
	if !ok {
		p.order = append(p.order, theme)
	}
	p.samples[theme] = existing
}

// sortOrder keeps built-in themes first, followed by the rest alphabetically.
func (p *Pool) sortOrder() {
	rank := func(t model.Theme) int {
		for i, b := range builtinOrder {
			if b == t {
				return i
			}
		}
		return len(builtinOrder)
	}
	sort.SliceStable(p.order, func(i, j int) bool {
		ri, rj := rank(p.order[i]), rank(p.order[j])
		if ri != rj {
			return ri < rj
		}
		return p.order[i] < p.order[j]
	})
}

// Themes returns the themes in display order.
func (p Pool) Themes() []model.Theme {
	return append([]model.Theme(nil), p.order...)
}

// Samples returns the samples for a theme.
func (p Pool) Samples(theme model.Theme) []string {
	return p.samples[theme]
}

// Has reports whether the theme has samples.
func (p Pool) Has(theme model.Theme) bool {
	return len(p.samples[theme]) > 0
}

// Validate checks that the pool can serve a session.
func (p Pool) Validate() error {
	if len(p.order) == 0 {
		return fmt.Errorf("sample pool is empty")
	}
	for _, theme := range p.order {
		if len(p.samples[theme]) == 0 {
			return fmt.Errorf("theme %q has no samples", theme)
		}
	}
	return nil
}

// Resolve maps user input to a known theme, tolerating case and typos.
func (p Pool) Resolve(name string) (model.Theme, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "", false
	}
	if p.Has(model.Theme(name)) {
		return model.Theme(name), true
	}
	names := make([]string, len(p.order))
	for i, theme := range p.order {
		names[i] = string(theme)
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return "", false
	}
	return p.order[matches[0].Index], true
}

// Next returns the theme after the given one, wrapping around. A negative step moves backwards.
func (p Pool) Next(theme model.Theme, step int) model.Theme {
	if len(p.order) == 0 {
		return theme
	}
	idx := 0
	for i, t := range p.order {
		if t == theme {
			idx = i
			break
		}
	}
	n := len(p.order)
	return p.order[((idx+step)%n+n)%n]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
