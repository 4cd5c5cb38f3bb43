package service

import (
	"bytes"
	"fmt"

	"crm/backend/internal/repository/postgres/attendance"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/xuri/excelize/v2"
)

var reportHeaders = []string{"Employee", "Date", "Check In", "Check Out", "Status", "Total Hours"}

const reportTimeFormat = "15:04"

// AttendanceReportExcel renders the date-range report as an xlsx
// workbook.
func AttendanceReportExcel(rows []attendance.ReportRow) ([]byte, error) {
	f := excelize.NewFile()
	sheet := "Attendance"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range reportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range rows {
		rowNum := i + 2
		checkOut := ""
		if row.CheckOut != nil {
			checkOut = row.CheckOut.Format(reportTimeFormat)
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.EmployeeName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Date)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.CheckIn.Format(reportTimeFormat))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), checkOut)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Status)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.TotalHours)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing excel report: %w", err)
	}
	return buf.Bytes(), nil
}

// AttendanceReportPDF renders the same report as a landscape PDF table.
func AttendanceReportPDF(rows []attendance.ReportRow) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(12)

	colWidths := []float64{70, 35, 35, 35, 40, 35}

	pdf.SetFont("Arial", "B", 10)
	for i, header := range reportHeaders {
		pdf.CellFormat(colWidths[i], 8, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		checkOut := ""
		if row.CheckOut != nil {
			checkOut = row.CheckOut.Format(reportTimeFormat)
		}

		cells := []string{
			row.EmployeeName,
			row.Date,
			row.CheckIn.Format(reportTimeFormat),
			checkOut,
			row.Status,
			row.TotalHours,
		}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 8, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf report: %w", err)
	}
	return buf.Bytes(), nil
}
