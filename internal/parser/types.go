package parser

type IntentKind int

const (
	Command IntentKind = iota
	Query
	Help
	Unknown
)

type Quantity struct {
	Raw string
	N   int
}

type Intent struct {
	Raw        string
	Normalised string
	Kind       IntentKind
	Verb       string
	Args       []string
	Quantity   *Quantity
	Confidence float64
	Clarify    *ClarifyQuestion
}

// OK reports whether the intent can be acted on without asking the user.
func (i Intent) OK() bool {
	return i.Verb != "" && i.Clarify == nil
}

type ClarifyQuestion struct {
	Prompt  string
	Options []Intent
}

type CommandDef struct {
	Canonical string
	Aliases   []string
	MinArgs   int
	MaxArgs   int
	// Choices restricts arguments to a fixed vocabulary; typos are
	// corrected against it.
	Choices []string
	// NeedsNumber requires a numeric quantity, e.g. "seed 42".
	NeedsNumber bool
	Kind        IntentKind
	Summary     string
}
