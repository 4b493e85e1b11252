package assemble

import (
	"parcelnorm/internal"
	"parcelnorm/internal/mapping"
	"parcelnorm/internal/util"
)

// CheckIdentity compares the page's parcel id with the seed's. Either side
// missing passes.
func CheckIdentity(in *Input) error {
	if in.Seed == nil || in.Seed.ParcelID == "" {
		return nil
	}
	onPage := in.value(in.Profile.Labels.ParcelID)
	if onPage == "" {
		return nil
	}
	want := in.Seed.ParcelID.String()
	if util.NormalizeKey(onPage) != util.NormalizeKey(want) {
		return internal.NewValidationError("property.parcel_identifier",
			"parcel identifier %q on the page does not match expected %q", onPage, want)
	}
	return nil
}

// Property assembles property.json. The returned Classification tells the
// other assemblers whether the parcel looked vacant.
func Property(in *Input) (*internal.Property, mapping.Classification, error) {
	if err := CheckIdentity(in); err != nil {
		return nil, mapping.Classification{}, err
	}
	labels := in.Profile.Labels

	classifier, err := in.Profile.Classifier(in.Misses)
	if err != nil {
		return nil, mapping.Classification{}, err
	}
	units := util.ParseInt(in.value(labels.Units))
	cls := classifier.Classify(mapping.Signals{
		Description: in.value(labels.UseDescription),
		UseCode:     in.value(labels.UseCode),
		Units:       units,
		Headings:    in.headings(),
	})
	if cls.Stage == "" {
		in.Log.Debug().
			Str("description", in.value(labels.UseDescription)).
			Str("use_code", in.value(labels.UseCode)).
			Msg("property classification unmapped")
	} else {
		in.Log.Debug().Str("stage", string(cls.Stage)).Msg("property classified")
	}

	p := &internal.Property{
		Provenance:           in.provenance(),
		ParcelIdentifier:     in.ParcelID(),
		LegalDescriptionText: util.CleanPtr(in.value(labels.LegalDescription)),
		StructureBuiltYear:   util.ParseYear(in.value(labels.YearBuilt)),
		EffectiveBuiltYear:   util.ParseYear(in.value(labels.EffectiveYear)),
		Subdivision:          util.CleanPtr(in.value(labels.Subdivision)),
		Zoning:               util.CleanPtr(in.value(labels.Zoning)),
		PropertyType:         propertyType(cls),
		NumberOfUnits:        units,
		LivableFloorArea:     util.ParseNumber(in.value(labels.LivingArea)),
		TotalArea:            util.ParseNumber(in.value(labels.TotalArea)),
	}
	if cls.Estate != "" {
		p.OwnershipEstateType = &cls.Estate
	}
	if cls.Build != "" {
		p.BuildStatus = &cls.Build
	} else if cls.Vacant {
		vacant := internal.BuildVacantLand
		p.BuildStatus = &vacant
	}
	if cls.Form != "" {
		p.StructureForm = &cls.Form
	}
	if cls.Usage != "" {
		p.PropertyUsageType = &cls.Usage
	}
	return p, cls, nil
}

// propertyType never returns an empty value.
func propertyType(cls mapping.Classification) internal.PropertyType {
	switch {
	case cls.PropertyType != "":
		return cls.PropertyType
	case cls.Vacant:
		return internal.PropertyLandParcel
	default:
		return internal.PropertyBuilding
	}
}
