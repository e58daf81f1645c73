// Package schema is the single source of truth for every inspection form
// field: its value domain, default, and whether it is enabled given the rest
// of the current form state.
package schema

import (
	"fmt"
	"strconv"
	"time"

	"facility-inspect/internal/domain"
)

// Kind classifies a field's value domain.
type Kind int

const (
	KindText Kind = iota
	KindEnum
	KindEnumSet
	KindIntRange
	KindFloat
	KindDate
)

// Getter reads the current form value of a field by name. Predicates only
// consult governing fields, so any state shape that can answer by name works.
type Getter func(name string) string

// Field describes one inspection form field.
type Field struct {
	Name     string
	Kind     Kind
	Domain   []string // enum / enum-set members; nil for text, numeric and date kinds
	Min, Max int      // int-range bounds, inclusive
	Default  string
	Required bool

	enabledWhen func(get Getter) bool
}

// IsEnabled reports whether the field is editable/meaningful given the
// current form state. Fields without a governing flag are always enabled.
func (f Field) IsEnabled(get Getter) bool {
	if f.enabledWhen == nil {
		return true
	}
	return f.enabledWhen(get)
}

// Validate checks a single form value against the field's domain. Empty
// values are accepted here; required-field enforcement happens at submit.
func (f Field) Validate(value string) error {
	if value == "" {
		return nil
	}
	switch f.Kind {
	case KindEnum, KindEnumSet:
		for _, m := range f.Domain {
			if m == value {
				return nil
			}
		}
		return fmt.Errorf("%s: %q is not one of %v", f.Name, value, f.Domain)
	case KindIntRange:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %q is not an integer", f.Name, value)
		}
		if n < f.Min || n > f.Max {
			return fmt.Errorf("%s: %d is outside [%d,%d]", f.Name, n, f.Min, f.Max)
		}
	case KindFloat:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Errorf("%s: %q is not a number", f.Name, value)
		}
	case KindDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return fmt.Errorf("%s: %q is not a YYYY-MM-DD date", f.Name, value)
		}
	}
	return nil
}

func enumContains(f Field, value string) bool {
	for _, m := range f.Domain {
		if m == value {
			return true
		}
	}
	return false
}

// governing flag predicates; kept as named funcs so the rule set stays
// enumerable and testable away from any rendering code.
func vcpDateEnabled(get Getter) bool {
	return get("vcp_status") == string(domain.VCPPlanned)
}

func eifsYearEnabled(get Getter) bool {
	return get("eifs") == string(domain.Yes)
}

func warrantyDateEnabled(get Getter) bool {
	return get("water_proofing_warranty") == string(domain.Yes)
}

var yesNo = []string{"Yes", "No"}

var fields = []Field{
	{Name: "function_location_id", Kind: KindText, Required: true},
	{Name: "sap_function_location", Kind: KindText, Required: true},
	{Name: "building_name", Kind: KindText, Required: true},
	{Name: "building_number", Kind: KindText, Required: true},
	{Name: "facility_type", Kind: KindText, Required: true},
	{Name: "function", Kind: KindText, Required: true},
	{Name: "macro_area", Kind: KindText, Required: true},
	{Name: "micro_area", Kind: KindText, Required: true},
	{Name: "proponent", Kind: KindText, Required: true},
	{Name: "zone", Kind: KindText, Required: true},
	{Name: "hvac_type", Kind: KindEnumSet, Domain: domain.HVACVocabulary, Required: true},
	{Name: "sprinkler", Kind: KindEnum, Domain: yesNo, Default: "No", Required: true},
	{Name: "fire_alarm", Kind: KindEnum, Domain: yesNo, Default: "No", Required: true},
	{Name: "power_source", Kind: KindEnumSet, Domain: domain.PowerSourceVocabulary, Default: "110V", Required: true},
	{Name: "vcp_status", Kind: KindEnum, Domain: domain.VCPStatusVocabulary, Default: "Not Applicable", Required: true},
	{Name: "vcp_planned_date", Kind: KindDate, enabledWhen: vcpDateEnabled},
	{Name: "smart_power_meter_status", Kind: KindEnum, Domain: yesNo, Default: "No", Required: true},
	{Name: "eifs", Kind: KindEnum, Domain: yesNo, Default: "No", Required: true},
	{Name: "eifs_installed_year", Kind: KindIntRange, Min: 1900, Max: currentYear(), enabledWhen: eifsYearEnabled},
	{Name: "exterior_cladding_condition", Kind: KindEnum, Domain: domain.ConditionVocabulary, Default: "Average", Required: true},
	{Name: "interior_architectural_condition", Kind: KindEnum, Domain: domain.ConditionVocabulary, Default: "Average", Required: true},
	{Name: "fire_protection_system_obsolete", Kind: KindEnum, Domain: []string{"Obsolete", "Not Obsolete"}, Default: "Not Obsolete", Required: true},
	{Name: "hvac_condition", Kind: KindIntRange, Min: 1, Max: 10, Default: "5", Required: true},
	{Name: "electrical_condition", Kind: KindIntRange, Min: 1, Max: 10, Default: "5", Required: true},
	{Name: "roofing_condition", Kind: KindEnum, Domain: domain.ConditionVocabulary, Default: "Average", Required: true},
	{Name: "water_proofing_warranty", Kind: KindEnum, Domain: yesNo, Default: "No", Required: true},
	{Name: "water_proofing_warranty_date", Kind: KindDate, enabledWhen: warrantyDateEnabled},
	{Name: "latitude", Kind: KindFloat},
	{Name: "longitude", Kind: KindFloat},
	{Name: "full_inspection_completed", Kind: KindEnum, Domain: []string{"Yes", "No", "Partial"}, Default: "No", Required: true},
}

var byName = func() map[string]Field {
	m := make(map[string]Field, len(fields))
	for _, f := range fields {
		m[f.Name] = f
	}
	return m
}()

func currentYear() int {
	return time.Now().Year()
}

// Fields returns every form field in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup returns the field definition by API name.
func Lookup(name string) (Field, bool) {
	f, ok := byName[name]
	return f, ok
}

// DefaultFor returns the schema default for a field, "" for fields without one.
func DefaultFor(name string) string {
	return byName[name].Default
}

// CoerceEnum returns value if it belongs to the field's enum domain,
// otherwise the field's default. Out-of-domain stored values must never be
// accepted silently into form state.
func CoerceEnum(name, value string) string {
	f, ok := byName[name]
	if !ok || f.Kind != KindEnum {
		return value
	}
	if enumContains(f, value) {
		return value
	}
	return f.Default
}

// CoerceIntRange returns value if it parses as an integer inside the field's
// declared bounds, otherwise the field's default. Pairs with CoerceEnum so
// the rated numeric fields get the same reject-or-coerce treatment on load.
func CoerceIntRange(name, value string) string {
	f, ok := byName[name]
	if !ok || f.Kind != KindIntRange {
		return value
	}
	if value == "" {
		return f.Default
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < f.Min || n > f.Max {
		return f.Default
	}
	return value
}

// IsEnabled reports whether the named field is enabled under the given state.
// Unknown names are enabled; only governed fields can be switched off.
func IsEnabled(name string, get Getter) bool {
	f, ok := byName[name]
	if !ok {
		return true
	}
	return f.IsEnabled(get)
}
