package streak

import (
	"fmt"
	"strings"

	"github.com/osse101/SideQuest_Go/internal/domain"
)

// Policy decides how an unfinished "today" affects the current streak.
type Policy int

const (
	// PolicyStrict counts the current streak only once today has a completion.
	PolicyStrict Policy = iota
	// PolicyGrace anchors the current streak at yesterday while today is still open.
	PolicyGrace
)

// Policy names as accepted in configuration
const (
	PolicyNameStrict = "strict"
	PolicyNameGrace  = "grace"
)

// ParsePolicy maps a configuration value to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PolicyNameStrict, "":
		return PolicyStrict, nil
	case PolicyNameGrace:
		return PolicyGrace, nil
	default:
		return PolicyStrict, fmt.Errorf("%w: unknown streak policy %q", domain.ErrInvalidInput, name)
	}
}

func (p Policy) String() string {
	if p == PolicyGrace {
		return PolicyNameGrace
	}
	return PolicyNameStrict
}
