package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	order    []string
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]CommandDef),
	}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if _, exists := r.commands[c.Canonical]; !exists {
		r.order = append(r.order, c.Canonical)
	}
	r.commands[c.Canonical] = c

	r.phrases = append(r.phrases, commandPhrase{
		canonical: c.Canonical,
		alias:     c.Canonical,
		tokens:    tokenise(c.Canonical),
	})
	for _, a := range c.Aliases {
		n := normaliseInput(a)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{
			canonical: c.Canonical,
			alias:     n,
			tokens:    tokenise(n),
		})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

// Commands returns the registered commands in registration order.
func (r *Registry) Commands() []CommandDef {
	out := make([]CommandDef, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}

type commandCandidate struct {
	Canonical string
	Consumed  int
	Score     float64
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 || len(tokens) < len(phrase.tokens) {
			continue
		}
		consumed := len(phrase.tokens)
		prefix := strings.Join(tokens[:consumed], " ")

		if prefix == phrase.alias {
			score := 1.0
			if phrase.alias != phrase.canonical {
				score = 0.97
			}
			cands = append(cands, commandCandidate{Canonical: phrase.canonical, Consumed: consumed, Score: score})
			continue
		}

		if consumed == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]) {
			cands = append(cands, commandCandidate{Canonical: phrase.canonical, Consumed: 1, Score: 0.9})
			continue
		}

		if len(prefix) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(prefix, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != phrase.canonical {
			score += 0.03
		}
		cands = append(cands, commandCandidate{Canonical: phrase.canonical, Consumed: consumed, Score: score})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return commandCandidate{}, nil
	}
	best := cands[0]
	alts := make([]commandCandidate, 0, 3)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 3 {
			break
		}
	}
	return best, alts
}

// matchChoice corrects token against a fixed vocabulary. Ties return
// every equally close choice.
func matchChoice(token string, choices []string) ([]string, float64) {
	for _, c := range choices {
		if token == c {
			return []string{c}, 1
		}
	}
	var prefixed []string
	for _, c := range choices {
		if len(token) >= 2 && strings.HasPrefix(c, token) {
			prefixed = append(prefixed, c)
		}
	}
	if len(prefixed) > 0 {
		return prefixed, 0.9
	}

	bestDist := -1
	var best []string
	for _, c := range choices {
		dist := levenshtein.ComputeDistance(token, c)
		if dist > levenshteinLimit(len(c)) {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			bestDist = dist
			best = []string{c}
		case dist == bestDist:
			best = append(best, c)
		}
	}
	if bestDist < 0 {
		return nil, 0
	}
	return best, 0.72 - 0.08*float64(bestDist)
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "build", Aliases: []string{"form", "formed", "assemble", "gather", "tree"}, Summary: "assemble the tree"},
		{Canonical: "scatter", Aliases: []string{"chaos", "explode", "disperse", "burst"}, Summary: "scatter everything"},
		{Canonical: "toggle", Aliases: []string{"flip", "switch"}, Summary: "flip between tree and chaos"},
		{Canonical: "topper", Aliases: []string{"star"}, MinArgs: 1, MaxArgs: 1, Choices: []string{"discrete", "progress"}, Summary: "star visibility: discrete or progress"},
		{Canonical: "seed", Aliases: []string{"reseed", "regenerate"}, NeedsNumber: true, Summary: "regenerate the scene from a seed"},
		{Canonical: "status", Aliases: []string{"state", "info"}, Kind: Query, Summary: "show progress and target"},
		{Canonical: "help", Aliases: []string{"h", "?", "commands"}, Kind: Help, Summary: "list commands"},
		{Canonical: "quit", Aliases: []string{"exit", "q", "bye"}, Summary: "close the window"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
