package tags

import (
	"github.com/ariel-frischer/tagcheck/internal/naming"
	"github.com/ariel-frischer/tagcheck/internal/report"
)

// Validator checks every collected tag against a naming contract.
type Validator struct {
	contract naming.Contract
	rep      *report.Reporter
}

// NewValidator creates a validator for the given contract.
func NewValidator(contract naming.Contract, rep *report.Reporter) *Validator {
	return &Validator{contract: contract, rep: rep}
}

// Validate reports every invalid tag in c and returns true only if all tags
// are valid. It never stops at the first failure. An empty collection is valid.
func (v *Validator) Validate(c *Collection) bool {
	valid := true
	for _, file := range c.Files() {
		for _, tag := range c.Tags(file) {
			if v.contract.Valid(tag.Name) {
				v.rep.Pass(v.contract.Kind, tag.Name)
				continue
			}
			valid = false
			v.rep.Fail(v.contract.Kind, tag.Name)
			v.rep.Errorf("invalid %s %q in %s:%d", v.contract.Kind, tag.Name, file, tag.Line)
		}
	}
	return valid
}
