package model

import "encoding/json"

const (
	PayloadTypeText  = "text"
	PayloadTypeTable = "table"
)

// Payload is the union of both backend response shapes.
//
//	Shape A: {"type": "text"|"table", "data": <string | TableData>}
//	Shape B: {"result": [{...}] | null, "plot": "<base64 png>" | null, "error": "..."}
type Payload struct {
	Type   string          `json:"type"`
	Data   json.RawMessage `json:"data"`
	Result json.RawMessage `json:"result"`
	Plot   *string         `json:"plot"`
	Error  json.RawMessage `json:"error"`
}

type TableData struct {
	Headers []string            `json:"headers"`
	Rows    [][]json.RawMessage `json:"rows"`
}

type ErrorPayload struct {
	Error json.RawMessage `json:"error"`
}
