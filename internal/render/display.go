package render

// Display holds the three display regions and the loading indicator.
// A region that is not Visible is also empty.
type Display struct {
	Loading bool        `json:"loading"`
	Text    TextRegion  `json:"text"`
	Table   TableRegion `json:"table"`
	Plot    PlotRegion  `json:"plot"`
}

type TextRegion struct {
	Visible bool   `json:"visible"`
	Content string `json:"content"`
	IsError bool   `json:"is_error"`
}

type TableRegion struct {
	Visible bool       `json:"visible"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type PlotRegion struct {
	Visible bool    `json:"visible"`
	Images  []Image `json:"images"`
}

type Image struct {
	Src string `json:"src"`
}

func NewDisplay() *Display {
	d := &Display{}
	d.Clear()
	return d
}

// Clear hides and empties every region. The loading indicator is left alone.
func (d *Display) Clear() {
	d.Text = TextRegion{}
	d.Table = TableRegion{Headers: []string{}, Rows: [][]string{}}
	d.Plot = PlotRegion{Images: []Image{}}
}
