package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/evolvekit/evolve-go/pkg/errors"
)

// DuplicationKind enumerates the duplicate-handling policies.
type DuplicationKind int

const (
	// DuplicationIgnore leaves duplicate gene sequences alone.
	DuplicationIgnore DuplicationKind = iota
	// DuplicationKill removes duplicates, keeping one representative each;
	// the population may shrink for the rest of the generation.
	DuplicationKill
	// DuplicationReplace removes duplicates and breeds replacements, retrying
	// up to a bounded number of attempts before accepting the result.
	DuplicationReplace
)

// DefaultReplaceAttempts bounds the replace policy's repair loop when no
// explicit attempt count is given.
const DefaultReplaceAttempts = 3

// DuplicationPolicy is the validated, tagged form of the policy. Use the
// constructors or ParsePolicy rather than filling in the struct directly.
type DuplicationPolicy struct {
	Kind     DuplicationKind `json:"kind"`
	Attempts int             `json:"attempts,omitempty"` // Replace only
}

// IgnoreDuplicates returns the no-op policy.
func IgnoreDuplicates() DuplicationPolicy {
	return DuplicationPolicy{Kind: DuplicationIgnore}
}

// KillDuplicates returns the policy that drops duplicates outright.
func KillDuplicates() DuplicationPolicy {
	return DuplicationPolicy{Kind: DuplicationKill}
}

// ReplaceDuplicates returns the policy that breeds replacements for dropped
// duplicates, giving up after the given number of attempts.
func ReplaceDuplicates(attempts int) DuplicationPolicy {
	return DuplicationPolicy{Kind: DuplicationReplace, Attempts: attempts}
}

// ParsePolicy converts the textual policy form ("ignore", "kill", "replace",
// "replace:5") into its tagged equivalent.
func ParsePolicy(s string) (DuplicationPolicy, error) {
	name, arg, hasArg := strings.Cut(s, ":")
	switch name {
	case "ignore":
		if hasArg {
			return DuplicationPolicy{}, errors.Newf(errors.InvalidConfig, "policy %q takes no argument", name)
		}
		return IgnoreDuplicates(), nil
	case "kill":
		if hasArg {
			return DuplicationPolicy{}, errors.Newf(errors.InvalidConfig, "policy %q takes no argument", name)
		}
		return KillDuplicates(), nil
	case "replace":
		if !hasArg {
			return ReplaceDuplicates(DefaultReplaceAttempts), nil
		}
		attempts, err := strconv.Atoi(arg)
		if err != nil || attempts < 1 {
			return DuplicationPolicy{}, errors.Newf(errors.InvalidConfig, "replace attempts must be a positive integer, got %q", arg)
		}
		return ReplaceDuplicates(attempts), nil
	default:
		return DuplicationPolicy{}, errors.Newf(errors.InvalidConfig, "unknown duplication policy %q", s)
	}
}

// Validate checks the tagged form.
func (p DuplicationPolicy) Validate() error {
	switch p.Kind {
	case DuplicationIgnore, DuplicationKill:
		return nil
	case DuplicationReplace:
		if p.Attempts < 1 {
			return errors.WithFields(
				errors.New(errors.InvalidConfig, "replace attempts must be a positive integer"),
				errors.Fields{"attempts": p.Attempts},
			)
		}
		return nil
	default:
		return errors.Newf(errors.InvalidConfig, "unknown duplication kind %d", p.Kind)
	}
}

// String renders the policy in its textual form.
func (p DuplicationPolicy) String() string {
	switch p.Kind {
	case DuplicationIgnore:
		return "ignore"
	case DuplicationKill:
		return "kill"
	case DuplicationReplace:
		return fmt.Sprintf("replace:%d", p.Attempts)
	default:
		return fmt.Sprintf("unknown(%d)", p.Kind)
	}
}
