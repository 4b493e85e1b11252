package assemble

import (
	"regexp"
	"strings"

	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/util"
)

var (
	reCityStateZip = regexp.MustCompile(`^(.*?)[\s,]*\b([A-Z]{2})\s+(\d{5})(?:-?(\d{4}))?$`)
	reStateZip     = regexp.MustCompile(`^([A-Z]{2})?\s*(\d{5})(?:-?(\d{4}))?$`)
	reStreetNumber = regexp.MustCompile(`^\d+[A-Z]?(?:-\d+)?$|^\d+/\d+$`)
)

var unitMarkers = map[string]struct{}{
	"APT": {}, "UNIT": {}, "STE": {}, "SUITE": {}, "#": {},
}

// Street is the parsed first line of an address.
type Street struct {
	Number  *string
	PreDir  *internal.Directional
	Name    *string
	Suffix  *internal.StreetSuffix
	PostDir *internal.Directional
	Unit    *string
}

// ParseStreet splits "1234 N MAIN ST APT 4" into its parts. Suffix and
// directional tokens only count when a street name is left over.
func ParseStreet(line string) Street {
	var st Street
	toks := strings.Fields(strings.ToUpper(util.CleanText(line)))
	if len(toks) == 0 {
		return st
	}

	for i, t := range toks {
		if strings.HasPrefix(t, "#") && len(t) > 1 {
			st.Unit = util.StringPtr(strings.TrimPrefix(t, "#"))
			toks = toks[:i]
			break
		}
		if _, ok := unitMarkers[strings.TrimSuffix(t, ".")]; ok && i > 0 && i+1 < len(toks) {
			st.Unit = util.StringPtr(strings.Join(toks[i+1:], " "))
			toks = toks[:i]
			break
		}
	}

	if len(toks) > 1 && reStreetNumber.MatchString(toks[0]) {
		st.Number = util.StringPtr(toks[0])
		toks = toks[1:]
	}
	if len(toks) > 1 {
		if d, ok := mapping.Directionals.Lookup(toks[0]); ok {
			st.PreDir = &d
			toks = toks[1:]
		}
	}
	if len(toks) > 1 {
		if d, ok := mapping.Directionals.Lookup(toks[len(toks)-1]); ok {
			st.PostDir = &d
			toks = toks[:len(toks)-1]
		}
	}
	if len(toks) > 1 {
		if s, ok := mapping.StreetSuffixes.Lookup(toks[len(toks)-1]); ok {
			st.Suffix = &s
			toks = toks[:len(toks)-1]
		}
	}
	st.Name = util.CleanPtr(strings.Join(toks, " "))
	return st
}

type cityLine struct {
	city, state, zip, plus4 string
}

func parseCityLine(parts []string) cityLine {
	var out cityLine
	tail := strings.ToUpper(util.CleanText(strings.Join(parts, " ")))
	if tail == "" {
		return out
	}
	if m := reCityStateZip.FindStringSubmatch(tail); m != nil {
		out.city = strings.Trim(m[1], " ,")
		out.state, out.zip, out.plus4 = m[2], m[3], m[4]
		return out
	}
	if m := reStateZip.FindStringSubmatch(tail); m != nil {
		out.state, out.zip, out.plus4 = m[1], m[2], m[3]
		return out
	}
	out.city = strings.Trim(tail, " ,")
	return out
}

// Address assembles address.json. The sidecar address wins over the page.
func Address(in *Input) *internal.Address {
	raw := ""
	if in.Address != nil {
		raw = util.CleanText(in.Address.FullAddress)
	}
	if raw == "" {
		raw = in.value(in.Profile.Labels.SiteAddress)
	}

	a := &internal.Address{
		Provenance:          in.provenance(),
		UnnormalizedAddress: util.CleanPtr(raw),
		CountryCode:         util.CleanPtr(in.Profile.CountryCode),
	}

	parts := strings.Split(raw, ",")
	street := ParseStreet(parts[0])
	a.StreetNumber = street.Number
	a.StreetPreDirectionalText = street.PreDir
	a.StreetName = street.Name
	a.StreetSuffixType = street.Suffix
	a.StreetPostDirectionalText = street.PostDir
	a.UnitIdentifier = street.Unit

	if len(parts) > 1 {
		cl := parseCityLine(parts[1:])
		a.CityName = util.CleanPtr(cl.city)
		a.StateCode = util.CleanPtr(cl.state)
		a.PostalCode = util.CleanPtr(cl.zip)
		a.PlusFourPostalCode = util.CleanPtr(cl.plus4)
	}
	if a.StateCode == nil {
		a.StateCode = util.CleanPtr(in.Profile.StateCode)
	}

	countyName := in.Profile.CountyName
	if in.Address != nil && util.CleanText(in.Address.CountyJurisdiction) != "" {
		countyName = in.Address.CountyJurisdiction
	}
	a.CountyName = util.CleanPtr(countyName)

	if in.Profile.AddressLatLong {
		a.Latitude, a.Longitude = in.coordinates()
	}
	return a
}

// coordinates come from the address sidecar, then the geometry CSV.
func (in *Input) coordinates() (*float64, *float64) {
	if in.Address != nil {
		lat, lon := in.Address.Latitude.Float(), in.Address.Longitude.Float()
		if lat != nil && lon != nil {
			return lat, lon
		}
	}
	for _, row := range in.Geometry {
		if row.Latitude != nil && row.Longitude != nil {
			return row.Latitude, row.Longitude
		}
	}
	return nil, nil
}
