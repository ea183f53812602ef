package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownPolicy is returned by PolicyByName for names it does not recognize.
var ErrUnknownPolicy = errors.New("unknown extraction policy")

// Policy names accepted in configuration.
const (
	PolicyTail    = "tail"
	PolicyPattern = "pattern"
)

// DefaultStatements is how many trailing statements Tail inspects when not configured.
const DefaultStatements = 7

// Policy recovers a tier from free-text model output.
type Policy interface {
	Name() string
	Extract(text string) Level
}

// PolicyByName builds the policy registered under name.
// statements only applies to the tail policy; values below 1 select DefaultStatements.
func PolicyByName(name string, statements int) (Policy, error) {
	switch name {
	case PolicyTail:
		return Tail{Statements: statements}, nil
	case PolicyPattern, "":
		return Pattern{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}

// Tail looks only at the closing statements of the output, where verbose
// reasoning models state their final answer.
type Tail struct {
	Statements int
}

func (Tail) Name() string { return PolicyTail }

// Extract checks tiers in fixed L1, L2, L3 order; the first tier found anywhere
// in the tail wins even if a later tier appears earlier in the text.
func (t Tail) Extract(text string) Level {
	n := t.Statements
	if n < 1 {
		n = DefaultStatements
	}

	statements := strings.Split(text, ".")
	if len(statements) > n {
		statements = statements[len(statements)-n:]
	}
	tail := strings.ToLower(strings.Join(statements, ". "))

	switch {
	case strings.Contains(tail, "level 1") || strings.Contains(tail, "l1"):
		return L1
	case strings.Contains(tail, "level 2") || strings.Contains(tail, "l2"):
		return L2
	case strings.Contains(tail, "level 3") || strings.Contains(tail, "l3"):
		return L3
	default:
		return Unknown
	}
}

var tierPattern = regexp.MustCompile(`(?i)(L[1-3]|Level\s*[1-3]|L\s*-\s*[1-3])`)

// Pattern takes the first tier token anywhere in the output.
type Pattern struct{}

func (Pattern) Name() string { return PolicyPattern }

func (Pattern) Extract(text string) Level {
	m := tierPattern.FindString(text)
	if m == "" {
		return Unknown
	}
	token := strings.ToUpper(strings.NewReplacer(" ", "", "-", "").Replace(m))
	// "LEVEL3" and "L3" name the same tier; the digit is always the last byte.
	return ParseLevel("L" + token[len(token)-1:])
}
