package models

import (
	"errors"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Test number coercion when decoding request bodies
func TestDecodeEnterprise(t *testing.T) {
	body := `{"siret": 12345678, "nic": "00012", "trancheEffectifsEtablissement": 1.5,
		"etablissementSiege": true, "enseigne1Etablissement": null}`

	e, err := DecodeEnterprise(strings.NewReader(body))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if v, ok := e["siret"].(int64); !ok || v != 12345678 {
		t.Errorf("Expected siret int64 12345678, got %T %v", e["siret"], e["siret"])
	}
	if v, ok := e["trancheEffectifsEtablissement"].(float64); !ok || v != 1.5 {
		t.Errorf("Expected float64 1.5, got %T %v", e["trancheEffectifsEtablissement"], e["trancheEffectifsEtablissement"])
	}
	if e["nic"] != "00012" {
		t.Errorf("Expected nic to stay a string, got %v", e["nic"])
	}
	if e["etablissementSiege"] != true {
		t.Errorf("Expected boolean true, got %v", e["etablissementSiege"])
	}
	if v, ok := e["enseigne1Etablissement"]; !ok || v != nil {
		t.Errorf("Expected explicit null to be kept, got %v (present=%v)", v, ok)
	}
}

func TestDecodeEnterpriseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":     "",
		"malformed": `{"siret": `,
		"array":     `[1, 2]`,
		"scalar":    `42`,
	}

	for name, body := range cases {
		if _, err := DecodeEnterprise(strings.NewReader(body)); err == nil {
			t.Errorf("%s: expected an error for body %q", name, body)
		}
	}
}

func TestDecodeEnterpriseNumberOutOfRange(t *testing.T) {
	for _, body := range []string{`{"y": 1e400}`, `{"extra": {"codes": [1, -1e999]}}`} {
		_, err := DecodeEnterprise(strings.NewReader(body))
		if !errors.Is(err, ErrNumberOutOfRange) {
			t.Errorf("Expected ErrNumberOutOfRange for %s, got: %v", body, err)
		}
	}
}

func TestUnknownFields(t *testing.T) {
	e := Enterprise{"id": "abc", "siret": int64(1), "nic": "00012", "zeta": 1, "alpha": true}

	unknown := e.UnknownFields()

	if len(unknown) != 2 || unknown[0] != "alpha" || unknown[1] != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", unknown)
	}
	if len(Enterprise{"siret": int64(1)}.UnknownFields()) != 0 {
		t.Error("Expected no unknown fields for a schema-only record")
	}
}

func TestEnterpriseFieldsAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(EnterpriseFields))
	for _, f := range EnterpriseFields {
		if seen[f] {
			t.Errorf("Duplicate field %q", f)
		}
		seen[f] = true
	}
	if len(EnterpriseFields) != 48 {
		t.Errorf("Expected 48 registry fields, got %d", len(EnterpriseFields))
	}
}

func TestNormalizeNested(t *testing.T) {
	e, err := DecodeEnterprise(strings.NewReader(`{"extra": {"codes": [1, 2.5, "x"]}}`))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	nested, ok := e["extra"].(map[string]any)
	if !ok {
		t.Fatalf("Expected nested object, got %T", e["extra"])
	}
	codes, ok := nested["codes"].([]any)
	if !ok || len(codes) != 3 {
		t.Fatalf("Expected 3 codes, got %v", nested["codes"])
	}
	if codes[0] != int64(1) || codes[1] != 2.5 || codes[2] != "x" {
		t.Errorf("Unexpected normalized codes: %#v", codes)
	}
}

func TestWithoutIDs(t *testing.T) {
	e := Enterprise{"id": "abc", "_id": "def", "siret": int64(1)}

	clean := e.WithoutIDs()

	if _, ok := clean["id"]; ok {
		t.Error("Expected id to be removed")
	}
	if _, ok := clean["_id"]; ok {
		t.Error("Expected _id to be removed")
	}
	if clean.Siret() != int64(1) {
		t.Errorf("Expected siret to be kept, got %v", clean.Siret())
	}
	if e.ID() != "abc" {
		t.Error("Expected original record to be left untouched")
	}
}

func TestFromStoreDocument(t *testing.T) {
	oid := primitive.NewObjectID()

	e := FromStoreDocument(map[string]any{"_id": oid, "siret": int64(42)})

	if e.ID() != oid.Hex() {
		t.Errorf("Expected id %s, got %s", oid.Hex(), e.ID())
	}
	if _, ok := e["_id"]; ok {
		t.Error("Expected _id to be renamed")
	}

	if FromStoreDocument(nil) != nil {
		t.Error("Expected nil document to stay nil")
	}

	if got := FromStoreDocument(map[string]any{"_id": "plain"}).ID(); got != "plain" {
		t.Errorf("Expected string id to pass through, got %s", got)
	}
}

func TestNewStoreID(t *testing.T) {
	a, b := NewStoreID(), NewStoreID()
	if len(a) != 24 {
		t.Errorf("Expected 24 character id, got %q", a)
	}
	if a == b {
		t.Error("Expected distinct ids")
	}
}
