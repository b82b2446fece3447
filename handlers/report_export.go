package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/xuri/excelize/v2"

	"p9e.in/marinereport/config"
	"p9e.in/marinereport/models"
)

// exportAvailable reports whether document export is enabled on this
// server. Export is a best-effort collaborator: when it is off the
// client gets a capability-missing notice, not a failure of the
// editing session.
func exportAvailable() bool {
	return os.Getenv("EXPORT_ENABLED") != "false"
}

// ExportReportToExcel exports a saved report to Excel format
func ExportReportToExcel(w http.ResponseWriter, r *http.Request) {
	if !exportAvailable() {
		http.Error(w, "document export is not available on this server", http.StatusNotImplemented)
		return
	}

	key := mux.Vars(r)["key"]
	snap, ok, err := config.Store.Load(key)
	if err != nil {
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no saved data for this key", http.StatusNotFound)
		return
	}

	excelFile, err := createExcelFile(snap)
	if err != nil {
		http.Error(w, "Failed to generate Excel file", http.StatusInternalServerError)
		return
	}

	buffer, err := excelFile.WriteToBuffer()
	if err != nil {
		http.Error(w, "Failed to write Excel file", http.StatusInternalServerError)
		return
	}

	// Set headers for download
	filename := fmt.Sprintf("%s_%s.xlsx", sanitizeFilename(key), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))

	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportReportToCSV exports a saved report to CSV format
func ExportReportToCSV(w http.ResponseWriter, r *http.Request) {
	if !exportAvailable() {
		http.Error(w, "document export is not available on this server", http.StatusNotImplemented)
		return
	}

	key := mux.Vars(r)["key"]
	snap, ok, err := config.Store.Load(key)
	if err != nil {
		http.Error(w, "failed to load report", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "no saved data for this key", http.StatusNotFound)
		return
	}

	csvData, err := createCSVFile(snap)
	if err != nil {
		http.Error(w, "Failed to generate CSV file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", sanitizeFilename(key), time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(csvData)))

	w.WriteHeader(http.StatusOK)
	w.Write(csvData)
}

// reportRows is the field order both export formats share.
func reportRows(snap models.Snapshot) [][2]string {
	company, _ := models.CompanyByCode(snap.Form.Company)
	return [][2]string{
		{"Issuing Company", company.Name},
		{"Report Type", string(snap.Form.ReportType)},
		{"Customer", snap.Form.CustomerName},
		{"Vessel", snap.Form.VesselName},
		{"Reference No.", snap.Form.ReferenceNumber},
		{"Job No.", snap.Form.JobNumber},
		{"Job Start Date", snap.Form.JobStartDate},
		{"Job End Date", snap.Form.JobEndDate},
		{"Location", snap.Form.Location},
		{"Service Types", strings.Join(snap.Form.ServiceTypes.Display(), ", ")},
		{"Equipment", snap.Form.Equipment},
		{"Findings", snap.Form.Findings},
		{"Summary", snap.Form.Summary},
		{"Recommendations", snap.Form.Recommendations},
		{"Prepared By", snap.Form.PreparedBy},
		{"Photos Attached", fmt.Sprintf("%d", len(snap.Photos))},
	}
}

// createExcelFile generates an Excel file from a report snapshot
func createExcelFile(snap models.Snapshot) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Report"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Add title
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
			Size: 16,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
	})
	company, _ := models.CompanyByCode(snap.Form.Company)
	f.SetCellValue(sheetName, "A1", company.Name)
	f.SetCellStyle(sheetName, "A1", "A1", titleStyle)
	f.SetRowHeight(sheetName, 1, 30)

	f.SetCellValue(sheetName, "A2", string(snap.Form.ReportType))
	f.SetCellValue(sheetName, "A3", fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04:05")))

	labelStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#4472C4"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	valueStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			WrapText: true,
			Vertical: "top",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "CCCCCC", Style: 1},
			{Type: "right", Color: "CCCCCC", Style: 1},
			{Type: "top", Color: "CCCCCC", Style: 1},
			{Type: "bottom", Color: "CCCCCC", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 24)
	f.SetColWidth(sheetName, "B", "B", 70)

	for i, row := range reportRows(snap) {
		labelCell, _ := excelize.CoordinatesToCellName(1, i+5)
		valueCell, _ := excelize.CoordinatesToCellName(2, i+5)
		f.SetCellValue(sheetName, labelCell, row[0])
		f.SetCellStyle(sheetName, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheetName, valueCell, row[1])
		f.SetCellStyle(sheetName, valueCell, valueCell, valueStyle)
	}

	return f, nil
}

// createCSVFile generates CSV data from a report snapshot
func createCSVFile(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, row := range reportRows(snap) {
		if err := writer.Write([]string{row[0], row[1]}); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// sanitizeFilename makes a string safe to use in a download filename
func sanitizeFilename(filename string) string {
	replacements := map[rune]rune{
		'/':  '_',
		'\\': '_',
		':':  '_',
		'*':  '_',
		'?':  '_',
		'"':  '_',
		'<':  '_',
		'>':  '_',
		'|':  '_',
		' ':  '_',
	}

	out := []rune(filename)
	for i, r := range out {
		if repl, ok := replacements[r]; ok {
			out[i] = repl
		}
	}
	return string(out)
}
