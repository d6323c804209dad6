// Package naming holds the naming-style contracts enforced on wire tags and
// configuration keys.
package naming

import (
	"regexp"
)

var (
	// TagPattern is the contract for json and protobuf tags: lower-camel-case,
	// starting with a lower-case letter.
	TagPattern = regexp.MustCompile(`^[a-z][a-zA-Z0-9_]*$`)

	// KeyPattern is the looser contract for configuration keys. A leading digit
	// and hyphens are allowed, underscores are not.
	KeyPattern = regexp.MustCompile(`^[a-z0-9][a-zA-Z0-9-]*$`)
)

// Contract couples a pattern with the noun used in diagnostics.
type Contract struct {
	Kind    string
	Pattern *regexp.Regexp
}

// TagContract returns the contract for tags of the given kind (e.g. "json").
func TagContract(kind string) Contract {
	return Contract{Kind: kind + " tag", Pattern: TagPattern}
}

// KeyContract returns the contract for configuration keys.
func KeyContract() Contract {
	return Contract{Kind: "key", Pattern: KeyPattern}
}

// Valid reports whether name satisfies the contract.
func (c Contract) Valid(name string) bool {
	return c.Pattern.MatchString(name)
}
