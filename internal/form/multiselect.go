package form

import "facility-inspect/internal/domain"

// SetMember toggles membership of value in a set-valued field. Adding an
// existing member or removing an absent one is a no-op, so applying the same
// toggle twice is idempotent. Source order is preserved.
func SetMember(set []string, value string, present bool) []string {
	if present {
		for _, m := range set {
			if m == value {
				return set
			}
		}
		out := make([]string, 0, len(set)+1)
		out = append(out, set...)
		return append(out, value)
	}
	out := make([]string, 0, len(set))
	for _, m := range set {
		if m != value {
			out = append(out, m)
		}
	}
	return out
}

// ToggleHVAC toggles one hvac_type selection (vocabulary member or the
// "Other" marker) on the form.
func (s *FormState) ToggleHVAC(value string, checked bool) {
	s.HVACSelected = SetMember(s.HVACSelected, value, checked)
}

// TogglePowerSource toggles one power_source selection on the form.
func (s *FormState) TogglePowerSource(value string, checked bool) {
	s.PowerSource = SetMember(s.PowerSource, value, checked)
}

// SetOtherText replaces the free-text "Other" value. The slot holds at most
// one non-vocabulary string, so editing replaces rather than accumulates.
// Typing a value implies the Other slot is selected.
func (s *FormState) SetOtherText(text string) {
	s.HVACOther = text
	if text != "" {
		s.HVACSelected = SetMember(s.HVACSelected, domain.OtherHVAC, true)
	}
}
