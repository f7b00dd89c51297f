package model

// Kind selects the presentation of a QueryResponse.
type Kind int

const (
	KindEmpty Kind = iota
	KindText
	KindTable
	KindPlot
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTable:
		return "table"
	case KindPlot:
		return "plot"
	case KindError:
		return "error"
	default:
		return "empty"
	}
}

// QueryResponse is a backend answer after normalization. A plot response
// may also carry the table it was drawn from.
type QueryResponse struct {
	Kind    Kind
	Message string
	Table   *Table
	Plot    string
}

func TextResponse(message string) QueryResponse {
	return QueryResponse{Kind: KindText, Message: message}
}

func TableResponse(t *Table) QueryResponse {
	return QueryResponse{Kind: KindTable, Table: t}
}

func PlotResponse(plot string, t *Table) QueryResponse {
	return QueryResponse{Kind: KindPlot, Plot: plot, Table: t}
}

func EmptyResponse() QueryResponse {
	return QueryResponse{Kind: KindEmpty}
}

func ErrorResponse(message string) QueryResponse {
	return QueryResponse{Kind: KindError, Message: message}
}
