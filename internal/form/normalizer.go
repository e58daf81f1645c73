package form

import (
	"strconv"
	"strings"
	"time"

	"facility-inspect/internal/domain"
	"facility-inspect/internal/schema"
)

// dateInputLayouts are the timestamp shapes the API has been observed to
// return for date-valued fields.
var dateInputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// formatDateForInput truncates an ISO-8601 timestamp to a plain YYYY-MM-DD
// string suitable for a date control. The time-of-day and zone are dropped
// and not recoverable; write-back always sends the bare date.
func formatDateForInput(s string) string {
	if s == "" {
		return ""
	}
	for _, layout := range dateInputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return ""
}

// ToFormState converts an API record into form-ready state. Enum and rated
// values outside their declared domain are coerced to the schema default
// (null for fields without one), dates are
// truncated for date controls, and a non-vocabulary hvac_type member is
// lifted into the free-text "Other" slot with the marker checked.
func ToFormState(rec domain.InspectionRecord) FormState {
	s := FormState{
		ID:                  rec.ID,
		FunctionLocationID:  rec.FunctionLocationID,
		SAPFunctionLocation: rec.SAPFunctionLocation,
		BuildingName:        rec.BuildingName,
		BuildingNumber:      rec.BuildingNumber,
		FacilityType:        rec.FacilityType,
		Function:            rec.Function,
		MacroArea:           rec.MacroArea,
		MicroArea:           rec.MicroArea,
		Proponent:           rec.Proponent,
		Zone:                rec.Zone,
		CreatedAt:           rec.CreatedAt,

		Sprinkler:             schema.CoerceEnum("sprinkler", rec.Sprinkler),
		FireAlarm:             schema.CoerceEnum("fire_alarm", rec.FireAlarm),
		SmartPowerMeterStatus: schema.CoerceEnum("smart_power_meter_status", rec.SmartPowerMeterStatus),
		EIFS:                  schema.CoerceEnum("eifs", rec.EIFS),
		WaterProofingWarranty: schema.CoerceEnum("water_proofing_warranty", rec.WaterProofingWarranty),
		VCPStatus:             schema.CoerceEnum("vcp_status", rec.VCPStatus),

		ExteriorCladdingCondition:      schema.CoerceEnum("exterior_cladding_condition", rec.ExteriorCladdingCondition),
		InteriorArchitecturalCondition: schema.CoerceEnum("interior_architectural_condition", rec.InteriorArchitecturalCondition),
		RoofingCondition:               schema.CoerceEnum("roofing_condition", rec.RoofingCondition),
		FireProtectionSystemObsolete:   schema.CoerceEnum("fire_protection_system_obsolete", rec.FireProtectionSystemObsolete),
		FullInspectionCompleted:        schema.CoerceEnum("full_inspection_completed", rec.FullInspectionCompleted),

		VCPPlannedDate:            formatDateForInput(strOrEmpty(rec.VCPPlannedDate)),
		WaterProofingWarrantyDate: formatDateForInput(strOrEmpty(rec.WaterProofingWarrantyDate)),
	}

	s.EIFSInstalledYear = schema.CoerceIntRange("eifs_installed_year", intToForm(rec.EIFSInstalledYear))
	s.HVACCondition = schema.CoerceIntRange("hvac_condition", intToForm(rec.HVACCondition))
	s.ElectricalCondition = schema.CoerceIntRange("electrical_condition", intToForm(rec.ElectricalCondition))
	s.Latitude = floatToForm(rec.Latitude)
	s.Longitude = floatToForm(rec.Longitude)

	s.HVACSelected, s.HVACOther = splitHVAC(rec.HVACType)
	s.PowerSource = copyMembers(rec.PowerSource, domain.PowerSourceVocabulary)
	if len(s.PowerSource) == 0 {
		s.PowerSource = []string{schema.DefaultFor("power_source")}
	}
	return s
}

// splitHVAC separates the flattened API set into vocabulary members plus the
// "Other" marker and the single free-text value. The first non-vocabulary
// member becomes the free text; when one exists, the marker is selected so
// the Other control renders checked.
func splitHVAC(set []string) (selected []string, other string) {
	otherChecked := false
	for _, v := range set {
		switch {
		case v == "" || v == domain.NoneMember:
			// the empty-set sentinel is a storage artifact, not a selection
		case v == domain.OtherHVAC:
			otherChecked = true
		case domain.IsHVACVocabulary(v):
			selected = appendUnique(selected, v)
		default:
			if other == "" {
				other = v
			}
			otherChecked = true
		}
	}
	if otherChecked {
		selected = appendUnique(selected, domain.OtherHVAC)
	}
	return selected, other
}

// ToAPIPayload converts form state back into an API record. Malformed
// numeric input degrades to null rather than failing; the required-field
// contract surfaces such gaps before submission. Conditional fields whose
// governing flag does not hold are forced null regardless of stale form
// values, and empty sets are replaced with the {"None"} sentinel.
func ToAPIPayload(s FormState) domain.InspectionRecord {
	rec := domain.InspectionRecord{
		ID:                  s.ID,
		FunctionLocationID:  s.FunctionLocationID,
		SAPFunctionLocation: s.SAPFunctionLocation,
		BuildingName:        s.BuildingName,
		BuildingNumber:      s.BuildingNumber,
		FacilityType:        s.FacilityType,
		Function:            s.Function,
		MacroArea:           s.MacroArea,
		MicroArea:           s.MicroArea,
		Proponent:           s.Proponent,
		Zone:                s.Zone,

		Sprinkler:             s.Sprinkler,
		FireAlarm:             s.FireAlarm,
		SmartPowerMeterStatus: s.SmartPowerMeterStatus,
		EIFS:                  s.EIFS,
		WaterProofingWarranty: s.WaterProofingWarranty,
		VCPStatus:             s.VCPStatus,

		ExteriorCladdingCondition:      s.ExteriorCladdingCondition,
		InteriorArchitecturalCondition: s.InteriorArchitecturalCondition,
		RoofingCondition:               s.RoofingCondition,
		FireProtectionSystemObsolete:   s.FireProtectionSystemObsolete,
		FullInspectionCompleted:        s.FullInspectionCompleted,

		HVACCondition:       parseIntForm(s.HVACCondition),
		ElectricalCondition: parseIntForm(s.ElectricalCondition),
		Latitude:            parseFloatForm(s.Latitude),
		Longitude:           parseFloatForm(s.Longitude),
	}

	get := s.Value
	if schema.IsEnabled("vcp_planned_date", get) {
		rec.VCPPlannedDate = strPtrNonEmpty(s.VCPPlannedDate)
	}
	if schema.IsEnabled("water_proofing_warranty_date", get) {
		rec.WaterProofingWarrantyDate = strPtrNonEmpty(s.WaterProofingWarrantyDate)
	}
	if schema.IsEnabled("eifs_installed_year", get) {
		rec.EIFSInstalledYear = parseIntForm(s.EIFSInstalledYear)
	}

	rec.HVACType = flattenHVAC(s)
	rec.PowerSource = nonEmpty(s.PowerSource)
	if len(rec.HVACType) == 0 {
		rec.HVACType = []string{domain.NoneMember}
	}
	if len(rec.PowerSource) == 0 {
		rec.PowerSource = []string{domain.NoneMember}
	}
	return rec
}

// flattenHVAC produces the API set shape: vocabulary selections in order,
// with the "Other" marker replaced by the free text when any was typed. The
// marker itself is never sent.
func flattenHVAC(s FormState) []string {
	var out []string
	for _, v := range s.HVACSelected {
		if v == domain.OtherHVAC || v == "" {
			continue
		}
		out = appendUnique(out, v)
	}
	if s.OtherChecked() && strings.TrimSpace(s.HVACOther) != "" {
		out = appendUnique(out, s.HVACOther)
	}
	return out
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtrNonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func intToForm(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

// floatToForm renders a coordinate without precision loss; shortest exact
// representation keeps all decimal digits the API sent.
func floatToForm(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func parseIntForm(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func parseFloatForm(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

func nonEmpty(set []string) []string {
	var out []string
	for _, v := range set {
		if v != "" {
			out = appendUnique(out, v)
		}
	}
	return out
}

func copyMembers(set []string, vocab []string) []string {
	var out []string
	for _, v := range set {
		for _, m := range vocab {
			if v == m {
				out = appendUnique(out, v)
				break
			}
		}
	}
	return out
}

func appendUnique(set []string, v string) []string {
	for _, m := range set {
		if m == v {
			return set
		}
	}
	return append(set, v)
}
