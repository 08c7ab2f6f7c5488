package jobscout

import (
	"strings"
	"time"
)

// Configuration defaults and floors.
const (
	// MinPause is the safety floor for the inter-page throttle. It is
	// enforced at configuration time and cannot be bypassed per call.
	MinPause = 2 * time.Second

	// DefaultMaxPostedDays is the default configured max listing age.
	DefaultMaxPostedDays = 7

	// DefaultLocation is the search location used when none is configured.
	DefaultLocation = "United States"
)

// Config carries the immutable run parameters. It is passed by value into
// constructors; there is no shared session state anywhere in the pipeline.
type Config struct {
	// Roles are the search keywords, scraped strictly in order.
	Roles []string

	// Location filters listings by place.
	Location string

	// Pages is the number of result pages fetched per role.
	Pages int

	// Pause is the delay enforced between page requests.
	Pause time.Duration

	// Proxy is an optional proxy URL handed through to the fetch backend.
	Proxy string

	// MaxPostedDays is the configured max listing age. Note that
	// aggregation filters against MaxPostedDaysCeiling, not this value.
	MaxPostedDays int
}

// Normalize returns a copy with whitespace-trimmed roles, blank roles
// removed, and out-of-range values raised to their floors or defaults.
func (c Config) Normalize() Config {
	roles := make([]string, 0, len(c.Roles))
	for _, role := range c.Roles {
		if role = strings.TrimSpace(role); role != "" {
			roles = append(roles, role)
		}
	}
	c.Roles = roles

	if c.Location == "" {
		c.Location = DefaultLocation
	}
	if c.Pages < 1 {
		c.Pages = 1
	}
	if c.Pause < MinPause {
		c.Pause = MinPause
	}
	if c.MaxPostedDays <= 0 {
		c.MaxPostedDays = DefaultMaxPostedDays
	}

	return c
}

// Validate returns an error if the configuration cannot drive a run.
func (c Config) Validate() error {
	if len(c.Roles) == 0 {
		return Errorf(EINVALID, "at least one role keyword is required")
	}
	for _, role := range c.Roles {
		if strings.TrimSpace(role) == "" {
			return Errorf(EINVALID, "role keywords must be non-empty")
		}
	}
	return nil
}
