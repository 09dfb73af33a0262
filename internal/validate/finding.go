package validate

import "fmt"

// Status classifies one validation finding.
type Status string

const (
	StatusValid      Status = "valid"
	StatusDeprecated Status = "deprecated"
	StatusInvalid    Status = "invalid"
	// StatusUnverified marks identifiers the external cross-check
	// could not confirm either way: network exhaustion, never a
	// verdict about the identifier itself.
	StatusUnverified Status = "unverified"
	// StatusUnresolved marks an observed (kit, code) pair the
	// resolver could only classify as unclassified.
	StatusUnresolved Status = "unresolved"
)

// Finding is one validation verdict about a single identifier or an
// observed pair. Findings are data; nothing in the validator raises
// for a bad identifier.
type Finding struct {
	Namespace   string
	ID          string
	Status      Status
	Name        string
	Replacement string
	Detail      string
}

// Message renders the finding the way the report lists it.
func (f Finding) Message() string {
	switch f.Status {
	case StatusInvalid:
		return fmt.Sprintf("%s not found: %s", f.Namespace, f.ID)
	case StatusDeprecated:
		msg := fmt.Sprintf("%s deprecated: %s", f.Namespace, f.ID)
		if f.Name != "" {
			msg += fmt.Sprintf(" (%s)", f.Name)
		}
		if f.Replacement != "" {
			msg += fmt.Sprintf(", replaced by %s", f.Replacement)
		}
		return msg
	case StatusUnverified:
		msg := fmt.Sprintf("could not verify %s %s", f.Namespace, f.ID)
		if f.Detail != "" {
			msg += ": " + f.Detail
		}
		return msg
	case StatusUnresolved:
		return fmt.Sprintf("unmapped well code %q in kit %q", f.ID, f.Detail)
	default:
		return fmt.Sprintf("%s valid: %s", f.Namespace, f.ID)
	}
}
