package parser

import (
	"fmt"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

// Commands lists what the parser understands, for help screens.
func (p *Parser) Commands() []CommandDef {
	return p.registry.Commands()
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command. Try help."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try " + p.verbList() + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		options := []Intent{
			p.option(raw, cmdMatch),
			p.option(raw, alternates[0]),
		}
		intent.Clarify = &ClarifyQuestion{Prompt: "Did you mean:", Options: options}
		return intent
	}

	def, _ := p.registry.command(cmdMatch.Canonical)
	intent.Verb = def.Canonical
	intent.Kind = def.Kind
	intent.Confidence = clampScore(cmdMatch.Score)

	argTokens := tokens[cmdMatch.Consumed:]
	argTokens, intent.Quantity = splitQuantity(argTokens)

	if def.NeedsNumber && intent.Quantity == nil {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs a number, e.g. %s 42.", def.Canonical, def.Canonical)}
		intent.Confidence = 0.42
		return intent
	}

	args, clarify, argScore := resolveArgs(def, argTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = args
	if len(args) > 0 {
		intent.Confidence = clampScore(intent.Confidence*0.75 + argScore*0.25)
	}

	if len(intent.Args) < def.MinArgs {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  fmt.Sprintf("%s needs one of: %s.", def.Canonical, strings.Join(def.Choices, ", ")),
			Options: choiceOptions(raw, def, def.Choices),
		}
		intent.Confidence = 0.42
		return intent
	}
	if def.MaxArgs >= 0 && len(intent.Args) > def.MaxArgs {
		intent.Args = append([]string(nil), intent.Args[:def.MaxArgs]...)
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that. Please rephrase."}
	}
	return intent
}

func (p *Parser) option(raw string, c commandCandidate) Intent {
	def, _ := p.registry.command(c.Canonical)
	return Intent{
		Raw:        raw,
		Normalised: c.Canonical,
		Kind:       def.Kind,
		Verb:       c.Canonical,
		Confidence: c.Score,
	}
}

func (p *Parser) verbList() string {
	cmds := p.registry.Commands()
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Canonical)
	}
	return strings.Join(names, ", ")
}

// resolveArgs corrects arguments against the command's vocabulary.
// Commands without a vocabulary take their arguments verbatim.
func resolveArgs(def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 {
		return nil, nil, 0.9
	}
	if len(def.Choices) == 0 {
		return args, nil, 0.9
	}

	resolved := make([]string, 0, len(args))
	score := 1.0
	for _, token := range args {
		matches, s := matchChoice(token, def.Choices)
		switch len(matches) {
		case 0:
			return nil, &ClarifyQuestion{
				Prompt:  fmt.Sprintf("%q is not a %s option. Choose %s.", token, def.Canonical, strings.Join(def.Choices, " or ")),
				Options: choiceOptions(token, def, def.Choices),
			}, 0.4
		case 1:
			resolved = append(resolved, matches[0])
			score = minScore(score, s)
		default:
			return nil, &ClarifyQuestion{
				Prompt:  "Which one?",
				Options: choiceOptions(token, def, matches),
			}, 0.5
		}
	}
	return resolved, nil, score
}

func choiceOptions(raw string, def CommandDef, choices []string) []Intent {
	out := make([]Intent, 0, len(choices))
	for _, c := range choices {
		out = append(out, Intent{
			Raw:        raw,
			Normalised: def.Canonical + " " + c,
			Kind:       def.Kind,
			Verb:       def.Canonical,
			Args:       []string{c},
			Confidence: 0.6,
		})
	}
	return out
}

func minScore(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent back into canonical command text.
func IntentToCommandString(intent Intent) string {
	parts := []string{intent.Verb}
	parts = append(parts, intent.Args...)
	if intent.Quantity != nil {
		parts = append(parts, intent.Quantity.Raw)
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
