package style

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform rewrites the case of rendered text.
type Transform string

const (
	TransformNone       Transform = "none"
	TransformUppercase  Transform = "uppercase"
	TransformLowercase  Transform = "lowercase"
	TransformCapitalize Transform = "capitalize"
)

// Apply returns s with the transform applied. Casing is locale independent.
func (t Transform) Apply(s string) string {
	switch t {
	case TransformUppercase:
		return cases.Upper(language.Und).String(s)
	case TransformLowercase:
		return cases.Lower(language.Und).String(s)
	case TransformCapitalize:
		return cases.Title(language.Und, cases.NoLower).String(s)
	default:
		return s
	}
}
