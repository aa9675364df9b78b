package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// FieldID is the external name of the store-assigned identifier
	FieldID = "id"
	// FieldStoreID is the identifier key used inside the document store
	FieldStoreID = "_id"
	// FieldSiret is the business identifier used as lookup key
	FieldSiret = "siret"
)

var (
	// ErrNotAnObject is returned when a request body is valid JSON but not an object
	ErrNotAnObject = errors.New("body must be a JSON object")
	// ErrNumberOutOfRange is returned for numbers that fit neither int64 nor float64
	ErrNumberOutOfRange = errors.New("number out of range")
)

// Enterprise represents one business establishment. The schema is dictated by
// the upstream registry, so values are kept as loosely typed scalars.
type Enterprise map[string]any

// EnterpriseFields lists the descriptive fields known from the registry export.
// Other keys are accepted and stored as-is, see UnknownFields.
var EnterpriseFields = []string{
	"siren",
	"nic",
	"siret",
	"statutDiffusionEtablissement",
	"dateCreationEtablissement",
	"trancheEffectifsEtablissement",
	"anneeEffectifsEtablissement",
	"activitePrincipaleRegistreMetiersEtablissement",
	"dateDernierTraitementEtablissement",
	"etablissementSiege",
	"nombrePeriodesEtablissement",
	"complementAdresseEtablissement",
	"numeroVoieEtablissement",
	"indiceRepetitionEtablissement",
	"typeVoieEtablissement",
	"libelleVoieEtablissement",
	"codePostalEtablissement",
	"libelleCommuneEtablissement",
	"libelleCommuneEtrangerEtablissement",
	"distributionSpecialeEtablissement",
	"codeCommuneEtablissement",
	"codeCedexEtablissement",
	"libelleCedexEtablissement",
	"codePaysEtrangerEtablissement",
	"libellePaysEtrangerEtablissement",
	"complementAdresse2Etablissement",
	"numeroVoie2Etablissement",
	"indiceRepetition2Etablissement",
	"typeVoie2Etablissement",
	"libelleVoie2Etablissement",
	"codePostal2Etablissement",
	"libelleCommune2Etablissement",
	"libelleCommuneEtranger2Etablissement",
	"distributionSpeciale2Etablissement",
	"codeCommune2Etablissement",
	"codeCedex2Etablissement",
	"libelleCedex2Etablissement",
	"codePaysEtranger2Etablissement",
	"libellePaysEtranger2Etablissement",
	"dateDebut",
	"etatAdministratifEtablissement",
	"enseigne1Etablissement",
	"enseigne2Etablissement",
	"enseigne3Etablissement",
	"denominationUsuelleEtablissement",
	"activitePrincipaleEtablissement",
	"nomenclatureActivitePrincipaleEtablissement",
	"caractereEmployeurEtablissement",
}

// ID returns the external identifier, or an empty string if the record has none
func (e Enterprise) ID() string {
	id, _ := e[FieldID].(string)
	return id
}

// Siret returns the raw business identifier value
func (e Enterprise) Siret() any {
	return e[FieldSiret]
}

var knownFields = func() map[string]struct{} {
	m := make(map[string]struct{}, len(EnterpriseFields)+2)
	for _, f := range EnterpriseFields {
		m[f] = struct{}{}
	}
	m[FieldID] = struct{}{}
	m[FieldStoreID] = struct{}{}
	return m
}()

// UnknownFields returns the sorted keys that are not part of the registry schema
func (e Enterprise) UnknownFields() []string {
	var unknown []string
	for k := range e {
		if _, ok := knownFields[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// WithoutIDs returns a copy of the record with every identifier key removed.
// Identifiers are always assigned by the store, never by the client.
func (e Enterprise) WithoutIDs() Enterprise {
	out := make(Enterprise, len(e))
	for k, v := range e {
		if k == FieldID || k == FieldStoreID {
			continue
		}
		out[k] = v
	}
	return out
}

// DecodeEnterprise reads a JSON object from r, coercing numbers to int64 when
// they are integral and float64 otherwise.
func DecodeEnterprise(r io.Reader) (Enterprise, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty request body")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}

	normalized, err := Normalize(obj)
	if err != nil {
		return nil, err
	}

	return Enterprise(normalized.(map[string]any)), nil
}

// Normalize converts decoded JSON values into the scalar types stored in
// records. Nested objects and arrays are normalized recursively.
func Normalize(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i, nil
		}
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrNumberOutOfRange, val.String())
		}
		return f, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			n, err := Normalize(item)
			if err != nil {
				return nil, err
			}
			out[i] = n
		}
		return out, nil
	default:
		return v, nil
	}
}

// FromStoreDocument converts a stored document to its external shape: the
// internal _id becomes a plain string under the id key.
func FromStoreDocument(doc map[string]any) Enterprise {
	if doc == nil {
		return nil
	}

	out := make(Enterprise, len(doc))
	for k, v := range doc {
		if k == FieldStoreID {
			continue
		}
		out[k] = v
	}

	if raw, ok := doc[FieldStoreID]; ok {
		out[FieldID] = storeIDString(raw)
	}

	return out
}

func storeIDString(raw any) string {
	switch id := raw.(type) {
	case primitive.ObjectID:
		return id.Hex()
	case string:
		return id
	case fmt.Stringer:
		return id.String()
	default:
		return fmt.Sprint(id)
	}
}

// NewStoreID generates a surrogate identifier in the same format Mongo uses
func NewStoreID() string {
	return primitive.NewObjectID().Hex()
}
