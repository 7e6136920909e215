package model

import (
	"encoding/json"
	"fmt"
)

var relKindByName = map[string]RelKind{
	"Unknown":           RelUnknown,
	"Specialization":    RelSpecialization,
	"Conjugation":       RelConjugation,
	"Subclassification": RelSubclassification,
	"FeatureTyping":     RelFeatureTyping,
	"Subsetting":        RelSubsetting,
	"Redefinition":      RelRedefinition,
	"Connection":        RelConnection,
	"Flow":              RelFlow,
	"Allocation":        RelAllocation,
	"Satisfy":           RelSatisfy,
	"Verify":            RelVerify,
	"Transition":        RelTransition,
	"Succession":        RelSuccession,
	"Bind":              RelBind,
	"Import":            RelImport,
}

// MarshalJSON renders a RelKind as its notation name.
func (k RelKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a RelKind from its notation name.
func (k *RelKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := relKindByName[name]
	if !ok {
		return fmt.Errorf("model: unknown relationship kind %q", name)
	}
	*k = v
	return nil
}
