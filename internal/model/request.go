package model

type QueryRequest struct {
	Query string `json:"query"`
}
