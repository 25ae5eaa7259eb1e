package schedule

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet interchange format. One row per block, human-formatted dates
// and times, the literal "Not Applicable" where vacation blocks carry no
// time of day.
const (
	exportSheet      = "Schedule"
	exportDateLayout = "January 2, 2006"
	notApplicable    = "Not Applicable"
	noPhoto          = "None"
)

var exportColumns = []string{
	"DisplayRow",
	"ProfilePicture",
	"FirstName",
	"LastName",
	"BlockType",
	"StartTime",
	"EndTime",
	"StartDate",
	"EndDate",
	"GridRow",
}

// ExportFilename names an export for one job title and month
func ExportFilename(jobTitle string, current time.Time) string {
	return fmt.Sprintf("%s-%s-Schedule.xlsx", jobTitle, current.Format("02-January-2006"))
}

// ExportBlocks flattens blocks into a single-sheet workbook
func ExportBlocks(blocks []Block) (*excelize.File, error) {
	file := excelize.NewFile()
	file.SetSheetName(file.GetSheetName(0), exportSheet)

	header := make([]interface{}, len(exportColumns))
	for i, column := range exportColumns {
		header[i] = column
	}

	err := file.SetSheetRow(exportSheet, "A1", &header)
	if err != nil {
		return nil, err
	}

	for i, block := range blocks {
		row, err := exportRow(block)
		if err != nil {
			return nil, err
		}

		cell := fmt.Sprintf("A%d", i+2)
		err = file.SetSheetRow(exportSheet, cell, &row)
		if err != nil {
			return nil, err
		}
	}

	return file, nil
}

func exportRow(block Block) ([]interface{}, error) {
	startTime := notApplicable
	endTime := notApplicable

	if block.Type.RequiresTimes() {
		var err error

		startTime, err = date.ClockTo12(block.StartTime)
		if err != nil {
			return nil, err
		}

		endTime, err = date.ClockTo12(block.EndTime)
		if err != nil {
			return nil, err
		}
	}

	photo := block.Employee.PhotoURL
	if photo == "" {
		photo = noPhoto
	}

	return []interface{}{
		block.Row + 1,
		photo,
		block.Employee.FirstName,
		block.Employee.LastName,
		string(block.Type),
		startTime,
		endTime,
		block.StartDate.Format(exportDateLayout),
		block.EndDate.Format(exportDateLayout),
		block.Row + 1,
	}, nil
}

// ImportBlocks parses an uploaded workbook back into blocks. Every required
// column must be present in every row or the whole batch is rejected.
// Imported ids are never trusted, each block gets a fresh one.
func ImportBlocks(reader io.Reader, jobTitle string) ([]Block, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	sheetName := file.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	rows, err := file.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("worksheet is empty")
	}

	columns, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, 0, len(rows)-1)
	for i, row := range rows[1:] {
		block, err := importRow(row, columns, i+2, jobTitle)
		if err != nil {
			return nil, err
		}

		blocks = append(blocks, block)
	}

	return blocks, nil
}

func headerIndex(header []string) (map[string]int, error) {
	columns := map[string]int{}
	for i, name := range header {
		columns[name] = i
	}

	for _, required := range exportColumns {
		if _, ok := columns[required]; !ok {
			return nil, &ImportFormatError{Column: required}
		}
	}

	return columns, nil
}

func importRow(row []string, columns map[string]int, rowNumber int, jobTitle string) (Block, error) {
	values := map[string]string{}
	for _, column := range exportColumns {
		index := columns[column]
		if index >= len(row) || row[index] == "" {
			return Block{}, &ImportFormatError{Column: column, Row: rowNumber}
		}

		values[column] = row[index]
	}

	startDate, err := time.Parse(exportDateLayout, values["StartDate"])
	if err != nil {
		return Block{}, &ImportFormatError{Column: "StartDate", Row: rowNumber}
	}

	endDate, err := time.Parse(exportDateLayout, values["EndDate"])
	if err != nil {
		return Block{}, &ImportFormatError{Column: "EndDate", Row: rowNumber}
	}

	gridRow, err := strconv.Atoi(values["GridRow"])
	if err != nil {
		return Block{}, &ImportFormatError{Column: "GridRow", Row: rowNumber}
	}

	startTime, err := importClock(values["StartTime"])
	if err != nil {
		return Block{}, &ImportFormatError{Column: "StartTime", Row: rowNumber}
	}

	endTime, err := importClock(values["EndTime"])
	if err != nil {
		return Block{}, &ImportFormatError{Column: "EndTime", Row: rowNumber}
	}

	photo := values["ProfilePicture"]
	if photo == noPhoto {
		photo = ""
	}

	return Block{
		ID:   uuid.New().String(),
		Type: BlockType(values["BlockType"]),
		Employee: Employee{
			FirstName: values["FirstName"],
			LastName:  values["LastName"],
			PhotoURL:  photo,
		},
		StartDate: startDate,
		EndDate:   endDate,
		StartTime: startTime,
		EndTime:   endTime,
		Row:       gridRow - 1,
		JobTitle:  jobTitle,
	}, nil
}

func importClock(value string) (string, error) {
	if value == notApplicable {
		return "", nil
	}

	return date.ClockTo24(value)
}
