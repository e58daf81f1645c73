package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"facility-inspect/internal/domain"
	"facility-inspect/internal/form"
	"facility-inspect/internal/schema"
)

// multiFlag collects a repeatable flag value.
type multiFlag []string

func (m *multiFlag) String() string { return strings.Join(*m, ",") }

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// cmdEdit fetches a record, applies field mutations through the schema and
// normalizer, and saves the full payload back.
func (a *app) cmdEdit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	id := fs.Int("id", 0, "inspection id")
	var sets multiFlag
	fs.Var(&sets, "set", "field mutation, field=value (repeatable)")
	hvac := fs.String("hvac", "", "hvac_type toggles, e.g. +Split,-Window,+Other")
	power := fs.String("power", "", "power_source toggles, e.g. +220V,-110V")
	other := fs.String("other", "", "free-text value for the Other HVAC type")
	fs.Parse(args)
	if *id <= 0 {
		return fmt.Errorf("edit: -id is required")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	rec, err := a.client.GetInspection(ctx, *id)
	if err != nil {
		return err
	}
	state := form.ToFormState(*rec)

	for _, kv := range sets {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("edit: -set wants field=value, got %q", kv)
		}
		if err := applySet(&state, name, value); err != nil {
			return err
		}
	}
	if err := applyToggles(&state, *hvac, toggleHVAC); err != nil {
		return err
	}
	if err := applyToggles(&state, *power, togglePower); err != nil {
		return err
	}
	if *other != "" {
		state.SetOtherText(*other)
	}

	if err := validateRequired(&state); err != nil {
		return err
	}
	if _, err := a.client.UpdateInspection(ctx, *id, form.ToAPIPayload(state)); err != nil {
		return err
	}
	fmt.Printf("Updated inspection %d\n", *id)
	return nil
}

func toggleHVAC(s *form.FormState, value string, checked bool) error {
	if value != domain.OtherHVAC && !domain.IsHVACVocabulary(value) {
		return fmt.Errorf("edit: %q is not an HVAC type; use -other for a free-text value", value)
	}
	s.ToggleHVAC(value, checked)
	return nil
}

func togglePower(s *form.FormState, value string, checked bool) error {
	f, _ := schema.Lookup("power_source")
	if err := f.Validate(value); err != nil {
		return err
	}
	s.TogglePowerSource(value, checked)
	return nil
}

// applyToggles parses a "+A,-B" toggle list and applies each entry.
func applyToggles(s *form.FormState, expr string, apply func(*form.FormState, string, bool) error) error {
	if expr == "" {
		return nil
	}
	for _, tok := range strings.Split(expr, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		checked := true
		switch tok[0] {
		case '+':
			tok = tok[1:]
		case '-':
			checked = false
			tok = tok[1:]
		}
		if err := apply(s, tok, checked); err != nil {
			return err
		}
	}
	return nil
}

// applySet writes one scalar field by API name after schema validation.
// Set-valued fields go through -hvac/-power/-other instead.
func applySet(s *form.FormState, name, value string) error {
	f, ok := schema.Lookup(name)
	if !ok {
		return fmt.Errorf("edit: unknown field %q", name)
	}
	if f.Kind == schema.KindEnumSet {
		return fmt.Errorf("edit: %s is set-valued; use -hvac or -power", name)
	}
	if err := f.Validate(value); err != nil {
		return err
	}

	switch name {
	case "function_location_id":
		s.FunctionLocationID = value
	case "sap_function_location":
		s.SAPFunctionLocation = value
	case "building_name":
		s.BuildingName = value
	case "building_number":
		s.BuildingNumber = value
	case "facility_type":
		s.FacilityType = value
	case "function":
		s.Function = value
	case "macro_area":
		s.MacroArea = value
	case "micro_area":
		s.MicroArea = value
	case "proponent":
		s.Proponent = value
	case "zone":
		s.Zone = value
	case "sprinkler":
		s.Sprinkler = value
	case "fire_alarm":
		s.FireAlarm = value
	case "smart_power_meter_status":
		s.SmartPowerMeterStatus = value
	case "vcp_status":
		s.VCPStatus = value
	case "vcp_planned_date":
		s.VCPPlannedDate = value
	case "eifs":
		s.EIFS = value
	case "eifs_installed_year":
		s.EIFSInstalledYear = value
	case "exterior_cladding_condition":
		s.ExteriorCladdingCondition = value
	case "interior_architectural_condition":
		s.InteriorArchitecturalCondition = value
	case "roofing_condition":
		s.RoofingCondition = value
	case "hvac_condition":
		s.HVACCondition = value
	case "electrical_condition":
		s.ElectricalCondition = value
	case "fire_protection_system_obsolete":
		s.FireProtectionSystemObsolete = value
	case "water_proofing_warranty":
		s.WaterProofingWarranty = value
	case "water_proofing_warranty_date":
		s.WaterProofingWarrantyDate = value
	case "latitude":
		s.Latitude = value
	case "longitude":
		s.Longitude = value
	case "full_inspection_completed":
		s.FullInspectionCompleted = value
	default:
		return fmt.Errorf("edit: field %q is not editable", name)
	}
	return nil
}

// validateRequired enforces the required-field contract before submission.
// Disabled conditional fields are exempt; the normalizer nulls them anyway.
func validateRequired(s *form.FormState) error {
	var missing []string
	check := func(name, value string) {
		f, ok := schema.Lookup(name)
		if !ok || !f.Required {
			return
		}
		if !f.IsEnabled(s.Value) {
			return
		}
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("function_location_id", s.FunctionLocationID)
	check("sap_function_location", s.SAPFunctionLocation)
	check("building_name", s.BuildingName)
	check("building_number", s.BuildingNumber)
	check("facility_type", s.FacilityType)
	check("function", s.Function)
	check("macro_area", s.MacroArea)
	check("micro_area", s.MicroArea)
	check("proponent", s.Proponent)
	check("zone", s.Zone)
	check("sprinkler", s.Sprinkler)
	check("fire_alarm", s.FireAlarm)
	check("smart_power_meter_status", s.SmartPowerMeterStatus)
	check("vcp_status", s.VCPStatus)
	check("eifs", s.EIFS)
	check("exterior_cladding_condition", s.ExteriorCladdingCondition)
	check("interior_architectural_condition", s.InteriorArchitecturalCondition)
	check("roofing_condition", s.RoofingCondition)
	check("hvac_condition", s.HVACCondition)
	check("electrical_condition", s.ElectricalCondition)
	check("fire_protection_system_obsolete", s.FireProtectionSystemObsolete)
	check("water_proofing_warranty", s.WaterProofingWarranty)
	check("full_inspection_completed", s.FullInspectionCompleted)
	if len(missing) > 0 {
		return fmt.Errorf("missing required field(s): %s", strings.Join(missing, ", "))
	}
	return nil
}
