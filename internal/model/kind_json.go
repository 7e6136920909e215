package model

import (
	"encoding/json"
	"fmt"
)

var kindByName map[string]Kind

func init() {
	kindByName = make(map[string]Kind, kindCount)
	for k, name := range kindNames {
		kindByName[name] = Kind(k)
	}
}

// MarshalJSON renders a Kind as its SysML v2/KerML notation name rather
// than its numeric tag, so JSON-encoded models stay readable and stable
// across reordering of the Kind enum.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON parses a Kind from its notation name.
func (k *Kind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := kindByName[name]
	if !ok {
		return fmt.Errorf("model: unknown kind %q", name)
	}
	*k = v
	return nil
}
