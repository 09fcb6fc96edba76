package battle

import (
	"fmt"

	"github.com/hoopgrid/hoopgrid-server/internal/oracle"
)

// Validation is the outcome of checking a resolved player against a cell's
// row and column criteria. Reason is empty when Valid.
type Validation struct {
	Valid  bool
	Reason string
}

// ValidateMove checks a resolved, authoritative player against both criteria
// of the target cell. The reason distinguishes matching neither criteria from
// missing only the row or only the column, so clients can explain the miss.
// Pure function of the player and the two criteria.
func ValidateMove(matches func(*oracle.Player, oracle.Criteria) bool, p *oracle.Player, rowC, colC oracle.Criteria) Validation {
	matchesRow := matches(p, rowC)
	matchesCol := matches(p, colC)

	switch {
	case matchesRow && matchesCol:
		return Validation{Valid: true}
	case !matchesRow && !matchesCol:
		return Validation{Reason: fmt.Sprintf("%s matches neither criteria", p.Name)}
	case !matchesRow:
		return Validation{Reason: fmt.Sprintf("%s does not match: %s", p.Name, rowC.Label)}
	default:
		return Validation{Reason: fmt.Sprintf("%s does not match: %s", p.Name, colC.Label)}
	}
}
