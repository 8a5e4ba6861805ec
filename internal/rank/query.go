package rank

import (
	"fmt"
	"strings"
)

// BuildQuery synthesizes the comparison anchor from the persona role, the
// job task, and the configured domain hints. Fixed template, built once per
// run, embedded once.
func BuildQuery(personaRole, jobTask string, domainHints []string) string {
	if len(domainHints) == 0 {
		return fmt.Sprintf("Role: %s. Task: %s.", personaRole, jobTask)
	}
	return fmt.Sprintf("Role: %s. Task: %s. Focus on %s.",
		personaRole, jobTask, strings.Join(domainHints, ", "))
}
