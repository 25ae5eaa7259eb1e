package schedule

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestExportFilename(t *testing.T) {
	current := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	filename := ExportFilename("Server", current)
	if filename != "Server-15-January-2024-Schedule.xlsx" {
		t.Errorf("unexpected filename %s", filename)
	}
}

func TestExportFormatsRows(t *testing.T) {
	fullDay := fullDayBlock(3, 0)

	vacation := fullDayBlock(10, 9)
	vacation.Type = BlockTypeVacation
	vacation.StartTime = ""
	vacation.EndTime = ""

	file, err := ExportBlocks([]Block{fullDay, vacation})
	if err != nil {
		t.Fatal(err)
	}

	rows, err := file.GetRows(exportSheet)
	if err != nil {
		t.Fatal(err)
	}

	if len(rows) != 3 {
		t.Fatalf("expected a header and two rows, got %d", len(rows))
	}

	if rows[0][0] != "DisplayRow" || rows[0][9] != "GridRow" {
		t.Errorf("unexpected header %v", rows[0])
	}

	first := rows[1]
	if first[0] != "1" || first[9] != "1" {
		t.Error("row numbers are one-based in the sheet")
	}
	if first[1] != "None" {
		t.Errorf("a missing photo exports as None, got %s", first[1])
	}
	if first[5] != "9:00 AM" || first[6] != "5:00 PM" {
		t.Errorf("times export in 12h form, got %s and %s", first[5], first[6])
	}
	if first[7] != "January 3, 2024" {
		t.Errorf("dates export in long form, got %s", first[7])
	}

	second := rows[2]
	if second[5] != "Not Applicable" || second[6] != "Not Applicable" {
		t.Error("vacation blocks export without times")
	}
	if second[0] != "10" {
		t.Errorf("expected display row 10, got %s", second[0])
	}
}

func TestImportRoundTrip(t *testing.T) {
	original := fullDayBlock(3, 0)
	original.Employee.PhotoURL = "https://example.com/jane.png"

	file, err := ExportBlocks([]Block{original})
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	err = file.Write(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	imported, err := ImportBlocks(&buffer, "Server")
	if err != nil {
		t.Fatal(err)
	}

	if len(imported) != 1 {
		t.Fatalf("expected one block, got %d", len(imported))
	}

	block := imported[0]
	if block.ID == original.ID || block.ID == "" {
		t.Error("imported blocks get fresh ids")
	}
	if block.Type != BlockTypeFullDay || block.Row != 0 {
		t.Errorf("type or row did not survive the round trip: %+v", block)
	}
	if block.StartTime != "09:00" || block.EndTime != "17:00" {
		t.Errorf("times come back in 24h form, got %s and %s", block.StartTime, block.EndTime)
	}
	if !block.StartDate.Equal(original.StartDate) {
		t.Errorf("expected start date %v, got %v", original.StartDate, block.StartDate)
	}
	if block.Employee != original.Employee {
		t.Errorf("expected employee %+v, got %+v", original.Employee, block.Employee)
	}
	if block.JobTitle != "Server" {
		t.Errorf("imports take the active job title, got %s", block.JobTitle)
	}
}

func TestImportVacationWithoutTimes(t *testing.T) {
	vacation := fullDayBlock(10, 9)
	vacation.Type = BlockTypeVacation
	vacation.StartTime = ""
	vacation.EndTime = ""

	file, err := ExportBlocks([]Block{vacation})
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	err = file.Write(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	imported, err := ImportBlocks(&buffer, "Server")
	if err != nil {
		t.Fatal(err)
	}

	block := imported[0]
	if block.StartTime != "" || block.EndTime != "" {
		t.Error("Not Applicable reads back as no time at all")
	}
	if block.Employee.PhotoURL != "" {
		t.Error("None reads back as no photo at all")
	}
	if err := block.Validate(DefaultRules); err != nil {
		t.Errorf("a round-tripped vacation block stays valid, got %v", err)
	}
}

func TestImportRejectsMissingColumn(t *testing.T) {
	file := excelize.NewFile()
	sheet := file.GetSheetName(0)

	header := []interface{}{"DisplayRow", "ProfilePicture", "FirstName", "LastName", "BlockType", "StartTime", "EndTime", "StartDate", "GridRow"}
	err := file.SetSheetRow(sheet, "A1", &header)
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	err = file.Write(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ImportBlocks(&buffer, "Server")

	var format *ImportFormatError
	if !errors.As(err, &format) {
		t.Fatalf("expected ImportFormatError, got %v", err)
	}
	if format.Column != "EndDate" {
		t.Errorf("the missing column should be named, got %s", format.Column)
	}
}

func TestImportRejectsIncompleteRows(t *testing.T) {
	file, err := ExportBlocks([]Block{fullDayBlock(3, 0)})
	if err != nil {
		t.Fatal(err)
	}

	// blank out one required cell in the data row
	err = file.SetCellValue(exportSheet, "C2", "")
	if err != nil {
		t.Fatal(err)
	}

	var buffer bytes.Buffer
	err = file.Write(&buffer)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ImportBlocks(&buffer, "Server")

	var format *ImportFormatError
	if !errors.As(err, &format) {
		t.Fatalf("expected ImportFormatError, got %v", err)
	}
	if format.Column != "FirstName" || format.Row != 2 {
		t.Errorf("the offending cell should be named, got column %s row %d", format.Column, format.Row)
	}
}
