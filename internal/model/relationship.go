package model

// RelKind is the closed set of relationship kinds that survive as
// first-class objects rather than nested references (spec.md §3).
type RelKind uint8

const (
	RelUnknown RelKind = iota
	RelSpecialization
	RelConjugation
	RelSubclassification
	RelFeatureTyping
	RelSubsetting
	RelRedefinition
	RelConnection
	RelFlow
	RelAllocation
	RelSatisfy
	RelVerify
	RelTransition
	RelSuccession
	RelBind
	RelImport
)

func (k RelKind) String() string {
	switch k {
	case RelSpecialization:
		return "Specialization"
	case RelConjugation:
		return "Conjugation"
	case RelSubclassification:
		return "Subclassification"
	case RelFeatureTyping:
		return "FeatureTyping"
	case RelSubsetting:
		return "Subsetting"
	case RelRedefinition:
		return "Redefinition"
	case RelConnection:
		return "Connection"
	case RelFlow:
		return "Flow"
	case RelAllocation:
		return "Allocation"
	case RelSatisfy:
		return "Satisfy"
	case RelVerify:
		return "Verify"
	case RelTransition:
		return "Transition"
	case RelSuccession:
		return "Succession"
	case RelBind:
		return "Bind"
	case RelImport:
		return "Import"
	default:
		return "Unknown"
	}
}

// ImportVariant distinguishes the three import shapes named in spec.md
// §3; it is meaningful only when Kind == RelImport.
type ImportVariant uint8

const (
	ImportNone ImportVariant = iota
	ImportSingle
	ImportAll
	ImportRecursive
)

// Relationship is a separate owned record modelling a cross-reference
// that survives as a first-class object (spec.md §3). Source is the
// owner/subject, Target the referent.
type Relationship struct {
	ID     string
	Kind   RelKind
	Source string
	Target string

	// Import is meaningful only when Kind == RelImport.
	Import ImportVariant
}

// Clone returns a copy of r; Relationship has no slice fields, so this
// is a plain value copy, provided for symmetry with Element.Clone.
func (r *Relationship) Clone() *Relationship {
	c := *r
	return &c
}
