// Package security screens commands before they reach the shell.
package security

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrBlocked is wrapped by every refusal from CheckAllowed.
var ErrBlocked = errors.New("command appears destructive")

type rule struct {
	name string
	re   *regexp.Regexp
}

var rules = []rule{
	{"recursive delete of /", regexp.MustCompile(`(?i)\brm\s+-(?:rf|fr)\s+/(?:\s|$|\*)`)},
	{"filesystem format", regexp.MustCompile(`(?i)\bmkfs(?:\.\w+)?\b`)},
	{"raw disk write", regexp.MustCompile(`(?i)\bdd\s+.*\bof=/dev/`)},
	// :(){ :|:& };:
	{"fork bomb", regexp.MustCompile(`:\(\)\s*\{`)},
	{"signature wipe", regexp.MustCompile(`(?i)\bwipefs\b`)},
}

// CheckAllowed returns nil if command may run. A refusal wraps ErrBlocked
// and names the rule that matched. The check is a tripwire for typos, not
// a sandbox.
func CheckAllowed(command string) error {
	cmd := strings.TrimSpace(command)
	for _, r := range rules {
		if r.re.MatchString(cmd) {
			return fmt.Errorf("%w: %s", ErrBlocked, r.name)
		}
	}
	return nil
}
