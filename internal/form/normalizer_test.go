package form

import (
	"testing"

	"facility-inspect/internal/domain"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func baseRecord() domain.InspectionRecord {
	return domain.InspectionRecord{
		ID:                             7,
		FunctionLocationID:             "FL-001",
		SAPFunctionLocation:            "SAP-001",
		BuildingName:                   "Admin Block",
		BuildingNumber:                 "B-12",
		FacilityType:                   "Office",
		Function:                       "Administration",
		MacroArea:                      "North",
		MicroArea:                      "N-3",
		Proponent:                      "Ops",
		Zone:                           "Z1",
		HVACType:                       []string{"Split"},
		Sprinkler:                      "Yes",
		FireAlarm:                      "No",
		PowerSource:                    []string{"220V"},
		VCPStatus:                      "Not Applicable",
		SmartPowerMeterStatus:          "No",
		EIFS:                           "No",
		ExteriorCladdingCondition:      "Good",
		InteriorArchitecturalCondition: "Average",
		FireProtectionSystemObsolete:   "Not Obsolete",
		HVACCondition:                  intPtr(5),
		ElectricalCondition:            intPtr(6),
		RoofingCondition:               "Average",
		WaterProofingWarranty:          "No",
		FullInspectionCompleted:        "No",
		CreatedAt:                      "2025-03-14T09:30:00Z",
	}
}

func TestToFormStateTruncatesDates(t *testing.T) {
	rec := baseRecord()
	rec.VCPStatus = "Planned"
	rec.VCPPlannedDate = strPtr("2026-06-15T14:22:03Z")
	rec.WaterProofingWarranty = "Yes"
	rec.WaterProofingWarrantyDate = strPtr("2027-01-01T00:00:00")

	s := ToFormState(rec)
	require.Equal(t, "2026-06-15", s.VCPPlannedDate)
	require.Equal(t, "2027-01-01", s.WaterProofingWarrantyDate)
}

func TestDisabledConditionalDatesForcedNull(t *testing.T) {
	rec := baseRecord()
	// stale date left behind while the governing flag is off
	rec.VCPStatus = "Completed"
	rec.VCPPlannedDate = strPtr("2026-06-15T00:00:00Z")
	rec.WaterProofingWarranty = "No"
	rec.WaterProofingWarrantyDate = strPtr("2027-01-01T00:00:00Z")
	rec.EIFS = "No"
	rec.EIFSInstalledYear = intPtr(1998)

	payload := ToAPIPayload(ToFormState(rec))
	require.Nil(t, payload.VCPPlannedDate)
	require.Nil(t, payload.WaterProofingWarrantyDate)
	require.Nil(t, payload.EIFSInstalledYear)
}

func TestEnabledConditionalDatesSurvive(t *testing.T) {
	rec := baseRecord()
	rec.VCPStatus = "Planned"
	rec.VCPPlannedDate = strPtr("2026-06-15T00:00:00Z")

	payload := ToAPIPayload(ToFormState(rec))
	require.NotNil(t, payload.VCPPlannedDate)
	require.Equal(t, "2026-06-15", *payload.VCPPlannedDate)
}

func TestOtherHVACRoundTrip(t *testing.T) {
	rec := baseRecord()
	rec.HVACType = []string{"Split", "Rooftop Unit"}

	s := ToFormState(rec)
	require.Contains(t, s.HVACSelected, "Split")
	require.Contains(t, s.HVACSelected, domain.OtherHVAC)
	require.Equal(t, "Rooftop Unit", s.HVACOther)

	payload := ToAPIPayload(s)
	require.Equal(t, []string{"Split", "Rooftop Unit"}, payload.HVACType)
	require.NotContains(t, payload.HVACType, domain.OtherHVAC)
}

func TestOtherMarkerWithEmptyTextNotSent(t *testing.T) {
	s := ToFormState(baseRecord())
	s.ToggleHVAC(domain.OtherHVAC, true)
	s.HVACOther = ""

	payload := ToAPIPayload(s)
	require.Equal(t, []string{"Split"}, payload.HVACType)
}

func TestEmptySetsSubstituteNone(t *testing.T) {
	s := ToFormState(baseRecord())
	s.HVACSelected = nil
	s.HVACOther = ""
	s.PowerSource = nil

	payload := ToAPIPayload(s)
	require.Equal(t, []string{domain.NoneMember}, payload.HVACType)
	require.Equal(t, []string{domain.NoneMember}, payload.PowerSource)
}

func TestNumericCoercion(t *testing.T) {
	s := ToFormState(baseRecord())
	s.EIFS = "Yes"
	s.EIFSInstalledYear = ""
	payload := ToAPIPayload(s)
	require.Nil(t, payload.EIFSInstalledYear)

	s.EIFSInstalledYear = "1995"
	payload = ToAPIPayload(s)
	require.NotNil(t, payload.EIFSInstalledYear)
	require.Equal(t, 1995, *payload.EIFSInstalledYear)

	s.EIFSInstalledYear = "not-a-year"
	payload = ToAPIPayload(s)
	require.Nil(t, payload.EIFSInstalledYear)
}

func TestCoordinatePrecision(t *testing.T) {
	rec := baseRecord()
	rec.Latitude = floatPtr(25.276987)
	rec.Longitude = floatPtr(55.296249)

	s := ToFormState(rec)
	require.Equal(t, "25.276987", s.Latitude)
	require.Equal(t, "55.296249", s.Longitude)

	payload := ToAPIPayload(s)
	require.Equal(t, 25.276987, *payload.Latitude)
	require.Equal(t, 55.296249, *payload.Longitude)
}

func TestMissingCoordinatesStayNull(t *testing.T) {
	s := ToFormState(baseRecord())
	require.Equal(t, "", s.Latitude)

	payload := ToAPIPayload(s)
	require.Nil(t, payload.Latitude)
	require.Nil(t, payload.Longitude)
}

func TestOutOfDomainEnumsCoerced(t *testing.T) {
	rec := baseRecord()
	rec.Sprinkler = "Maybe"
	rec.RoofingCondition = "Terrible"
	rec.VCPStatus = "Unknown"

	s := ToFormState(rec)
	require.Equal(t, "No", s.Sprinkler)
	require.Equal(t, "Average", s.RoofingCondition)
	require.Equal(t, "Not Applicable", s.VCPStatus)
}

func TestOutOfRangeRatedValuesCoerced(t *testing.T) {
	rec := baseRecord()
	rec.HVACCondition = intPtr(99)
	rec.ElectricalCondition = intPtr(-3)
	rec.EIFS = "Yes"
	rec.EIFSInstalledYear = intPtr(1850)

	s := ToFormState(rec)
	require.Equal(t, "5", s.HVACCondition)
	require.Equal(t, "5", s.ElectricalCondition)
	// the year has no default, so an out-of-range value is dropped
	require.Equal(t, "", s.EIFSInstalledYear)

	payload := ToAPIPayload(s)
	require.Equal(t, 5, *payload.HVACCondition)
	require.Equal(t, 5, *payload.ElectricalCondition)
	require.Nil(t, payload.EIFSInstalledYear)
}

func TestInRangeRatedValuesSurvive(t *testing.T) {
	rec := baseRecord()
	rec.HVACCondition = intPtr(1)
	rec.ElectricalCondition = intPtr(10)
	rec.EIFS = "Yes"
	rec.EIFSInstalledYear = intPtr(1995)

	payload := ToAPIPayload(ToFormState(rec))
	require.Equal(t, 1, *payload.HVACCondition)
	require.Equal(t, 10, *payload.ElectricalCondition)
	require.Equal(t, 1995, *payload.EIFSInstalledYear)
}

func TestMissingConditionScoresGetDefaults(t *testing.T) {
	rec := baseRecord()
	rec.HVACCondition = nil
	rec.ElectricalCondition = nil

	s := ToFormState(rec)
	require.Equal(t, "5", s.HVACCondition)
	require.Equal(t, "5", s.ElectricalCondition)
}

func TestNoneSentinelNotASelection(t *testing.T) {
	rec := baseRecord()
	rec.HVACType = []string{domain.NoneMember}

	s := ToFormState(rec)
	require.Empty(t, s.HVACSelected)
	require.Equal(t, "", s.HVACOther)
}

func TestEmptyPowerSourceGetsDefault(t *testing.T) {
	rec := baseRecord()
	rec.PowerSource = nil

	s := ToFormState(rec)
	require.Equal(t, []string{"110V"}, s.PowerSource)
}
