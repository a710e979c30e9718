package employee

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Employees"

var exportHeaders = []any{
	"ID", "Name", "Email", "Address", "Date of birth", "Phone number", "Created", "Active",
}

func exportRow(row ListRow) []any {
	active := "No"
	if row.IsActive {
		active = "Yes"
	}
	return []any{
		row.Id, row.Name, row.Email, row.Address, row.Dob, row.PhoneNumber, row.CreatedDate, active,
	}
}

func writeEmployeesXlsx(rows []ListRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err = f.SetCellStyle(exportSheet, "A1", "H1", style); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := exportRow(row)
		if err = f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing export row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(exportSheet, "B", "C", 30)
	_ = f.SetColWidth(exportSheet, "D", "D", 50)
	_ = f.SetColWidth(exportSheet, "E", "G", 18)

	return f.WriteToBuffer()
}
