// Package form owns the bidirectional conversion between API inspection
// records and editable form state, plus the set-membership editing of the
// multi-select fields.
package form

import "facility-inspect/internal/domain"

// FormState is an inspection record shaped for editing: every scalar is a
// string (the form controls are text controls), dates are plain YYYY-MM-DD,
// and the hvac_type "Other" extension is kept tagged: HVACSelected holds
// vocabulary members plus the "Other" marker, HVACOther holds the free text.
// The flattened set shape only exists at the API boundary.
type FormState struct {
	ID int

	FunctionLocationID  string
	SAPFunctionLocation string
	BuildingName        string
	BuildingNumber      string
	FacilityType        string
	Function            string
	MacroArea           string
	MicroArea           string
	Proponent           string
	Zone                string

	HVACSelected []string
	HVACOther    string
	PowerSource  []string

	Sprinkler             string
	FireAlarm             string
	SmartPowerMeterStatus string

	VCPStatus      string
	VCPPlannedDate string

	EIFS              string
	EIFSInstalledYear string

	ExteriorCladdingCondition      string
	InteriorArchitecturalCondition string
	RoofingCondition               string
	HVACCondition                  string
	ElectricalCondition            string

	FireProtectionSystemObsolete string

	WaterProofingWarranty     string
	WaterProofingWarrantyDate string

	Latitude  string
	Longitude string

	FullInspectionCompleted string

	// CreatedAt is display-only; it is never written back.
	CreatedAt string
}

// Value returns the current value of a governing field by API name. It
// satisfies schema.Getter for the enablement predicates.
func (s *FormState) Value(name string) string {
	switch name {
	case "vcp_status":
		return s.VCPStatus
	case "eifs":
		return s.EIFS
	case "water_proofing_warranty":
		return s.WaterProofingWarranty
	case "sprinkler":
		return s.Sprinkler
	case "fire_alarm":
		return s.FireAlarm
	case "smart_power_meter_status":
		return s.SmartPowerMeterStatus
	case "full_inspection_completed":
		return s.FullInspectionCompleted
	}
	return ""
}

// OtherChecked reports whether the "Other" extension slot is selected.
func (s *FormState) OtherChecked() bool {
	for _, v := range s.HVACSelected {
		if v == domain.OtherHVAC {
			return true
		}
	}
	return false
}
