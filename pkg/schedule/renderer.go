package schedule

import (
	"time"

	"github.com/shiftgrid-app/shiftgrid-backend/pkg/date"
)

// HeaderCell is one day column in the header pane
type HeaderCell struct {
	Date      time.Time `json:"date"`
	DayOfWeek string    `json:"dayOfWeek"`
	Day       int       `json:"day"`
	Selected  bool      `json:"selected"`
	Inert     bool      `json:"inert"`
}

// Band is one of the two stacked 7-row week bands
type Band struct {
	Index int `json:"index"`
	Top   int `json:"top"`
	Rows  int `json:"rows"`
}

// BlockView is a block positioned over the grid in pixels
type BlockView struct {
	ID        string    `json:"id"`
	Type      BlockType `json:"type"`
	Row       int       `json:"row"`
	Column    int       `json:"column"`
	Left      int       `json:"left"`
	Top       int       `json:"top"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Continues bool      `json:"continues"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	Employee  Employee  `json:"employee"`
}

// Marker is the vertical selected-date indicator
type Marker struct {
	Left int `json:"left"`
}

// GridView is the renderer output: the header row, the two bands and the
// absolutely positioned blocks
type GridView struct {
	CellSize int          `json:"cellSize"`
	Mode     Mode         `json:"mode"`
	Header   []HeaderCell `json:"header"`
	Bands    [2]Band      `json:"bands"`
	Blocks   []BlockView  `json:"blocks"`
	Marker   *Marker      `json:"marker,omitempty"`
}

// Renderer lays the month grid out from block data
type Renderer struct {
	Geometry Geometry
}

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Render produces the view tree for one month. Blocks whose start date
// falls outside the anchor month are skipped, shorter months render their
// trailing columns inert.
func (r Renderer) Render(blocks []Block, monthAnchor time.Time, selectedDate *time.Time, mode Mode) GridView {
	view := GridView{
		CellSize: r.Geometry.CellSize,
		Mode:     mode,
		Header:   r.renderHeader(monthAnchor, selectedDate),
		Bands:    r.renderBands(),
		Blocks:   r.renderBlocks(blocks, monthAnchor),
	}

	if selectedDate != nil && date.SameMonth(*selectedDate, monthAnchor) {
		column := selectedDate.Day() - 1
		view.Marker = &Marker{Left: r.Geometry.PixelLeft(column) + r.Geometry.CellSize/2}
	}

	return view
}

func (r Renderer) renderHeader(monthAnchor time.Time, selectedDate *time.Time) []HeaderCell {
	first := date.StartOfMonth(monthAnchor)
	days := date.DaysInMonth(monthAnchor)

	cells := make([]HeaderCell, Columns)
	for column := 0; column < Columns; column++ {
		day := first.AddDate(0, 0, column)

		cells[column] = HeaderCell{
			Date:      day,
			DayOfWeek: dayNames[int(day.Weekday())],
			Day:       day.Day(),
			Selected:  selectedDate != nil && date.SameDay(day, *selectedDate),
			Inert:     column >= days,
		}
	}

	return cells
}

// renderBands stacks two 7-row bands with a one-cell spacer between them
func (r Renderer) renderBands() [2]Band {
	bandHeight := BandRows * r.Geometry.CellSize

	return [2]Band{
		{Index: 0, Top: 0, Rows: BandRows},
		{Index: 1, Top: bandHeight + r.Geometry.CellSize, Rows: BandRows},
	}
}

func (r Renderer) renderBlocks(blocks []Block, monthAnchor time.Time) []BlockView {
	views := make([]BlockView, 0, len(blocks))

	for _, block := range blocks {
		column, err := r.Geometry.ColumnForDate(block.StartDate, monthAnchor)
		if err != nil {
			continue
		}

		views = append(views, BlockView{
			ID:        block.ID,
			Type:      block.Type,
			Row:       block.Row,
			Column:    column,
			Left:      r.Geometry.PixelLeft(column),
			Top:       r.rowTop(block.Row),
			Width:     r.Geometry.BlockWidth(block.StartDate, block.EndDate),
			Height:    r.Geometry.CellSize,
			Continues: r.Geometry.ClampsAtMonthEnd(block.StartDate, block.EndDate),
			StartTime: block.StartTime,
			EndTime:   block.EndTime,
			Employee:  block.Employee,
		})
	}

	return views
}

// rowTop accounts for the spacer between the two bands
func (r Renderer) rowTop(row int) int {
	top := row * r.Geometry.CellSize
	if row >= BandRows {
		top += r.Geometry.CellSize
	}

	return top
}
