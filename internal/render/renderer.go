package render

import (
	"querydesk/internal/model"
)

const (
	NoResultsMessage = "No results returned."
	ErrorPrefix      = "Error: "
	PNGDataURIPrefix = "data:image/png;base64,"
)

// Render clears d and shows resp in the region(s) its kind selects.
func Render(d *Display, resp model.QueryResponse) {
	d.Clear()

	switch resp.Kind {
	case model.KindError:
		d.Text = TextRegion{Visible: true, Content: ErrorPrefix + resp.Message, IsError: true}
	case model.KindText:
		d.Text = TextRegion{Visible: true, Content: resp.Message}
	case model.KindTable:
		showTable(d, resp.Table)
	case model.KindPlot:
		d.Plot = PlotRegion{Visible: true, Images: []Image{{Src: PNGDataURIPrefix + resp.Plot}}}
		if !resp.Table.IsEmpty() {
			showTable(d, resp.Table)
		}
	default:
		d.Text = TextRegion{Visible: true, Content: NoResultsMessage}
	}
}

// RenderError shows err as the only content of d.
func RenderError(d *Display, err error) {
	Render(d, model.ErrorResponse(err.Error()))
}

func showTable(d *Display, t *model.Table) {
	if t.IsEmpty() {
		d.Text = TextRegion{Visible: true, Content: NoResultsMessage}
		return
	}

	headers := append([]string{}, t.Headers...)
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		// every row is cut or padded to the header width
		row := make([]string, len(headers))
		copy(row, r)
		rows = append(rows, row)
	}
	d.Table = TableRegion{Visible: true, Headers: headers, Rows: rows}
}
