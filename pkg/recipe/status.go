package recipe

import (
	"fmt"
	"strings"

	"github.com/pastrylab/equilibra/pkg/errors"
)

// Status tracks a recipe through its development lifecycle.
type Status string

const (
	// StatusDraft marks a recipe under active formulation.
	StatusDraft Status = "draft"

	// StatusTest marks a recipe scheduled for or undergoing kitchen trials.
	StatusTest Status = "test"

	// StatusConfirmed marks a recipe validated in production.
	StatusConfirmed Status = "confirmed"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// IsValid checks if the Status is one of the recognized lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusTest, StatusConfirmed:
		return true
	default:
		return false
	}
}

// ParseStatus converts a string to a Status, accepting the Spanish
// labels used in older recipe files. Empty input defaults to draft.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "draft", "borrador":
		return StatusDraft, nil
	case "test", "testing", "prueba":
		return StatusTest, nil
	case "confirmed", "final", "confirmada":
		return StatusConfirmed, nil
	default:
		return "", errors.NewWithContext(errors.ErrCodeInvalidRecipe,
			fmt.Sprintf("unknown recipe status: %s", v),
			map[string]any{"status": v})
	}
}

// GetStatusTypes returns all valid statuses in lifecycle order.
func GetStatusTypes() []Status {
	return []Status{StatusDraft, StatusTest, StatusConfirmed}
}
