// Package domain contains the core inspection record types shared by the
// client, form and list layers.
package domain

// YesNo is the two-state flag used by several inspection fields.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// IsValid returns true if the value is a recognized Yes/No flag.
func (v YesNo) IsValid() bool {
	return v == Yes || v == No
}

// Completion is the tri-state full_inspection_completed value.
type Completion string

const (
	CompletionYes     Completion = "Yes"
	CompletionNo      Completion = "No"
	CompletionPartial Completion = "Partial"
)

func (c Completion) IsValid() bool {
	switch c {
	case CompletionYes, CompletionNo, CompletionPartial:
		return true
	}
	return false
}

// VCPStatus is the visual condition program status.
type VCPStatus string

const (
	VCPCompleted     VCPStatus = "Completed"
	VCPInProgress    VCPStatus = "InProgress"
	VCPNotApplicable VCPStatus = "Not Applicable"
	VCPPlanned       VCPStatus = "Planned"
)

func (s VCPStatus) IsValid() bool {
	switch s {
	case VCPCompleted, VCPInProgress, VCPNotApplicable, VCPPlanned:
		return true
	}
	return false
}

// Condition is the ordinal rating used for exterior cladding, interior
// architectural and roofing conditions. Poor < Average < Good < Excellent.
type Condition string

const (
	ConditionPoor      Condition = "Poor"
	ConditionAverage   Condition = "Average"
	ConditionGood      Condition = "Good"
	ConditionExcellent Condition = "Excellent"
)

func (c Condition) IsValid() bool {
	switch c {
	case ConditionPoor, ConditionAverage, ConditionGood, ConditionExcellent:
		return true
	}
	return false
}

// Rank returns the ordinal position of the condition (0 for Poor up to 3 for
// Excellent), -1 for an out-of-domain value.
func (c Condition) Rank() int {
	switch c {
	case ConditionPoor:
		return 0
	case ConditionAverage:
		return 1
	case ConditionGood:
		return 2
	case ConditionExcellent:
		return 3
	}
	return -1
}

// ObsoleteStatus is the fire protection system state.
type ObsoleteStatus string

const (
	Obsolete    ObsoleteStatus = "Obsolete"
	NotObsolete ObsoleteStatus = "Not Obsolete"
)

func (s ObsoleteStatus) IsValid() bool {
	return s == Obsolete || s == NotObsolete
}

// Sentinel members of the set-valued fields.
const (
	// OtherHVAC marks the free-text extension slot of hvac_type. It is a UI
	// marker only and never appears in an API payload.
	OtherHVAC = "Other"
	// NoneMember replaces an empty hvac_type or power_source set on save.
	NoneMember = "None"
)

// HVACVocabulary is the fixed hvac_type vocabulary. Anything else stored in
// the set is a free-text "Other" entry.
var HVACVocabulary = []string{"Window", "Split", "Cassette", "Duct Concealed", "Free Standing"}

// PowerSourceVocabulary is the fixed power_source vocabulary.
var PowerSourceVocabulary = []string{"110V", "220V", "380V", "480V"}

// ConditionVocabulary lists the ordinal condition ratings in order.
var ConditionVocabulary = []string{"Poor", "Average", "Good", "Excellent"}

// VCPStatusVocabulary lists the allowed vcp_status values.
var VCPStatusVocabulary = []string{"Completed", "InProgress", "Not Applicable", "Planned"}

// IsHVACVocabulary reports whether v is a member of the fixed hvac_type
// vocabulary (the "Other" marker is not part of the vocabulary).
func IsHVACVocabulary(v string) bool {
	for _, m := range HVACVocabulary {
		if m == v {
			return true
		}
	}
	return false
}

// InspectionRecord is one facility's inspection snapshot as exchanged with
// the remote API. Optional numerics and conditional dates are pointers so a
// null on the wire stays distinguishable from a zero value.
type InspectionRecord struct {
	ID                             int      `json:"id,omitempty"`
	FunctionLocationID             string   `json:"function_location_id"`
	SAPFunctionLocation            string   `json:"sap_function_location"`
	BuildingName                   string   `json:"building_name"`
	BuildingNumber                 string   `json:"building_number"`
	FacilityType                   string   `json:"facility_type"`
	Function                       string   `json:"function"`
	MacroArea                      string   `json:"macro_area"`
	MicroArea                      string   `json:"micro_area"`
	Proponent                      string   `json:"proponent"`
	Zone                           string   `json:"zone"`
	HVACType                       []string `json:"hvac_type"`
	Sprinkler                      string   `json:"sprinkler"`
	FireAlarm                      string   `json:"fire_alarm"`
	PowerSource                    []string `json:"power_source"`
	VCPStatus                      string   `json:"vcp_status"`
	VCPPlannedDate                 *string  `json:"vcp_planned_date"`
	SmartPowerMeterStatus          string   `json:"smart_power_meter_status"`
	EIFS                           string   `json:"eifs"`
	EIFSInstalledYear              *int     `json:"eifs_installed_year"`
	ExteriorCladdingCondition      string   `json:"exterior_cladding_condition"`
	InteriorArchitecturalCondition string   `json:"interior_architectural_condition"`
	FireProtectionSystemObsolete   string   `json:"fire_protection_system_obsolete"`
	HVACCondition                  *int     `json:"hvac_condition"`
	ElectricalCondition            *int     `json:"electrical_condition"`
	RoofingCondition               string   `json:"roofing_condition"`
	WaterProofingWarranty          string   `json:"water_proofing_warranty"`
	WaterProofingWarrantyDate      *string  `json:"water_proofing_warranty_date"`
	Latitude                       *float64 `json:"latitude"`
	Longitude                      *float64 `json:"longitude"`
	FullInspectionCompleted        string   `json:"full_inspection_completed"`
	CreatedAt                      string   `json:"created_at,omitempty"`
}

// Located reports whether the record carries both coordinates.
func (r *InspectionRecord) Located() bool {
	return r.Latitude != nil && r.Longitude != nil
}
