// Package export renders an inspection collection as an Excel workbook.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"facility-inspect/internal/domain"

	"github.com/xuri/excelize/v2"
)

// InspectionExportHeader is the export column order.
var InspectionExportHeader = []string{
	"ID",
	"Function Location ID",
	"SAP Function Location",
	"Building Name",
	"Building Number",
	"Facility Type",
	"Function",
	"Macro Area",
	"Micro Area",
	"Proponent",
	"Zone",
	"HVAC Type",
	"Sprinkler",
	"Fire Alarm",
	"Power Source",
	"VCP Status",
	"VCP Planned Date",
	"Smart Power Meter",
	"EIFS",
	"EIFS Installed Year",
	"Exterior Cladding Condition",
	"Interior Architectural Condition",
	"Fire Protection System",
	"HVAC Condition",
	"Electrical Condition",
	"Roofing Condition",
	"Water Proofing Warranty",
	"Water Proofing Warranty Date",
	"Latitude",
	"Longitude",
	"Full Inspection Completed",
	"Created At",
}

const sheetName = "Inspections"

// GenerateInspectionExport renders the records (one row each) into an xlsx
// workbook and returns its bytes.
func GenerateInspectionExport(records []domain.InspectionRecord) ([]byte, error) {
	f := excelize.NewFile()
	// Note: Don't defer Close() here, because WriteTo needs the file to be open

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range InspectionExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx := range records {
		row := rowIdx + 2 // row 1 is the header
		for col, value := range recordRow(&records[rowIdx]) {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// recordRow flattens one record into cell values following the header order.
func recordRow(r *domain.InspectionRecord) []any {
	return []any{
		r.ID,
		r.FunctionLocationID,
		r.SAPFunctionLocation,
		r.BuildingName,
		r.BuildingNumber,
		r.FacilityType,
		r.Function,
		r.MacroArea,
		r.MicroArea,
		r.Proponent,
		r.Zone,
		strings.Join(r.HVACType, ", "),
		r.Sprinkler,
		r.FireAlarm,
		strings.Join(r.PowerSource, ", "),
		r.VCPStatus,
		deref(r.VCPPlannedDate),
		r.SmartPowerMeterStatus,
		r.EIFS,
		derefInt(r.EIFSInstalledYear),
		r.ExteriorCladdingCondition,
		r.InteriorArchitecturalCondition,
		r.FireProtectionSystemObsolete,
		derefInt(r.HVACCondition),
		derefInt(r.ElectricalCondition),
		r.RoofingCondition,
		r.WaterProofingWarranty,
		deref(r.WaterProofingWarrantyDate),
		derefFloat(r.Latitude),
		derefFloat(r.Longitude),
		r.FullInspectionCompleted,
		r.CreatedAt,
	}
}

func deref(p *string) any {
	if p == nil {
		return ""
	}
	return *p
}

func derefInt(p *int) any {
	if p == nil {
		return ""
	}
	return *p
}

func derefFloat(p *float64) any {
	if p == nil {
		return ""
	}
	return *p
}
