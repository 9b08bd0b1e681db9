package zenodo

import (
	"encoding/json"
	"testing"
)

func TestDepositionCarriesMetadataAndLinks(t *testing.T) {
	data, err := json.Marshal(Deposition{ID: 7})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}

	// Struct-typed sections are always present; only scalar and slice
	// fields are elided when empty.
	for _, key := range []string{"metadata", "links"} {
		if _, ok := m[key]; !ok {
			t.Errorf("marshaled deposition missing %q section", key)
		}
	}
	if _, ok := m["files"]; ok {
		t.Error("empty files list should be elided")
	}
}
