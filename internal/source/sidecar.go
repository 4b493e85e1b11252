package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"parcelnorm/internal"
	"parcelnorm/internal/owners"
	"parcelnorm/internal/util"
)

// Flex decodes a JSON string or number as text. Parcel ids show up as both.
type Flex string

func (f *Flex) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = Flex(util.CleanText(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = Flex(n.String())
	return nil
}

func (f Flex) String() string { return string(f) }

// Float parses the text as a number, nil when empty or invalid.
func (f Flex) Float() *float64 {
	if f == "" {
		return nil
	}
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return nil
	}
	return &v
}

type PropertySeed struct {
	ParcelID          Flex                        `json:"parcel_id"`
	RequestIdentifier *string                     `json:"request_identifier"`
	SourceHTTPRequest *internal.SourceHTTPRequest `json:"source_http_request"`
}

func (s *PropertySeed) Provenance() internal.Provenance {
	if s == nil {
		return internal.Provenance{}
	}
	return internal.Provenance{SourceHTTPRequest: s.SourceHTTPRequest, RequestIdentifier: s.RequestIdentifier}
}

type UnnormalizedAddress struct {
	FullAddress        string                      `json:"full_address"`
	Latitude           Flex                        `json:"latitude"`
	Longitude          Flex                        `json:"longitude"`
	CountyJurisdiction string                      `json:"county_jurisdiction"`
	RequestIdentifier  *string                     `json:"request_identifier"`
	SourceHTTPRequest  *internal.SourceHTTPRequest `json:"source_http_request"`
}

// Overrides are the per-parcel sidecar datasets. Each takes precedence over
// what the assemblers derive from the page.
type Overrides struct {
	OwnersByDate map[string][]owners.Structured
	Utilities    []internal.Utility
	Structures   []internal.Structure
	Layouts      []internal.Layout
}

func (o Overrides) Empty() bool {
	return len(o.OwnersByDate) == 0 && len(o.Utilities) == 0 && len(o.Structures) == 0 && len(o.Layouts) == 0
}

// Reader loads sidecar files. Missing files are absent; malformed ones are
// logged and treated as absent.
type Reader struct {
	Dir string
	Log zerolog.Logger
}

func (r Reader) path(name string) string {
	return filepath.Join(r.Dir, name)
}

func readJSON[T any](r Reader, name string) (*T, bool) {
	b, err := os.ReadFile(r.path(name))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.Log.Warn().Err(err).Str("file", name).Msg("sidecar unreadable")
		}
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		r.Log.Warn().Err(err).Str("file", name).Msg("sidecar malformed")
		return nil, false
	}
	return &v, true
}

func (r Reader) Seed() *PropertySeed {
	s, _ := readJSON[PropertySeed](r, "property_seed.json")
	return s
}

func (r Reader) Address() *UnnormalizedAddress {
	a, _ := readJSON[UnnormalizedAddress](r, "unnormalized_address.json")
	return a
}

// Overrides reads the owners/*.json datasets for one parcel, keyed
// "property_<id>".
func (r Reader) Overrides(parcelID string) Overrides {
	var out Overrides
	key := "property_" + parcelID

	if m, ok := readJSON[map[string]json.RawMessage](r, filepath.Join("owners", "owner_data.json")); ok {
		var entry struct {
			OwnersByDate map[string][]owners.Structured `json:"owners_by_date"`
		}
		if r.decodeEntry(*m, key, "owner_data.json", &entry) {
			out.OwnersByDate = entry.OwnersByDate
		}
	}
	if m, ok := readJSON[map[string]json.RawMessage](r, filepath.Join("owners", "utilities_data.json")); ok {
		out.Utilities = decodeList[internal.Utility](r, *m, key, "utilities_data.json", "utilities")
	}
	if m, ok := readJSON[map[string]json.RawMessage](r, filepath.Join("owners", "structure_data.json")); ok {
		out.Structures = decodeList[internal.Structure](r, *m, key, "structure_data.json", "structures")
	}
	if m, ok := readJSON[map[string]json.RawMessage](r, filepath.Join("owners", "layout_data.json")); ok {
		out.Layouts = decodeList[internal.Layout](r, *m, key, "layout_data.json", "layouts")
	}
	return out
}

func (r Reader) decodeEntry(m map[string]json.RawMessage, key, file string, v any) bool {
	raw, ok := m[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		r.Log.Warn().Err(err).Str("file", file).Str("key", key).Msg("sidecar entry malformed")
		return false
	}
	return true
}

// decodeList accepts an entry that is a single object, a list, or an object
// wrapping the list under field.
func decodeList[T any](r Reader, m map[string]json.RawMessage, key, file, field string) []T {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var list []T
		if err := json.Unmarshal(raw, &list); err != nil {
			r.Log.Warn().Err(err).Str("file", file).Msg("sidecar entry malformed")
			return nil
		}
		return list
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		r.Log.Warn().Err(err).Str("file", file).Msg("sidecar entry malformed")
		return nil
	}
	if inner, ok := wrapped[field]; ok {
		var list []T
		if err := json.Unmarshal(inner, &list); err != nil {
			r.Log.Warn().Err(err).Str("file", file).Msgf("sidecar %s malformed", field)
			return nil
		}
		return list
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		r.Log.Warn().Err(err).Str("file", file).Msg("sidecar entry malformed")
		return nil
	}
	return []T{one}
}
