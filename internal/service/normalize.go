package service

import (
	"encoding/json"
	"fmt"

	"querydesk/helper"
	"querydesk/internal/model"
)

// Normalize maps a backend answer, in either response shape, onto a
// QueryResponse. Priority: status, error field, plot, table, text, empty.
func Normalize(status int, body []byte) (model.QueryResponse, error) {
	if status < 200 || status > 299 {
		return model.QueryResponse{}, &HTTPStatusError{
			StatusCode: status,
			Message:    statusMessage(status, body),
		}
	}

	var p model.Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return model.QueryResponse{}, &BackendError{Message: "invalid response payload", Err: err}
	}

	if msg := errorMessage(p.Error); msg != "" {
		return model.QueryResponse{}, &BackendError{Message: msg}
	}

	table, tableErr := payloadTable(p)

	if p.Plot != nil && *p.Plot != "" {
		// a broken result does not hide the plot
		if tableErr != nil || table.IsEmpty() {
			table = nil
		}
		return model.PlotResponse(*p.Plot, table), nil
	}

	if tableErr != nil {
		return model.QueryResponse{}, &BackendError{Message: "invalid table result", Err: tableErr}
	}

	if !table.IsEmpty() {
		return model.TableResponse(table), nil
	}

	if p.Type == model.PayloadTypeText {
		return model.TextResponse(helper.CellString(p.Data)), nil
	}

	return model.EmptyResponse(), nil
}

func statusMessage(status int, body []byte) string {
	var p model.ErrorPayload
	if err := json.Unmarshal(body, &p); err == nil {
		if msg := errorMessage(p.Error); msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("HTTP error! Status: %d", status)
}

// errorMessage returns the error field when it is a JSON string.
func errorMessage(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return ""
	}
	return msg
}

// payloadTable returns the tabular part of p: Shape A table data or the
// Shape B result records. It returns nil when p has neither.
func payloadTable(p model.Payload) (*model.Table, error) {
	if p.Type == model.PayloadTypeTable && !helper.IsNull(p.Data) {
		var data model.TableData
		if err := json.Unmarshal(p.Data, &data); err != nil {
			return nil, err
		}
		rows := make([][]string, 0, len(data.Rows))
		for _, raw := range data.Rows {
			row := make([]string, len(raw))
			for i, cell := range raw {
				row[i] = helper.CellString(cell)
			}
			rows = append(rows, row)
		}
		return &model.Table{Headers: data.Headers, Rows: rows}, nil
	}

	if !helper.IsNull(p.Result) {
		headers, rows, err := helper.DecodeRecords(p.Result)
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 {
			return nil, nil
		}
		return &model.Table{Headers: headers, Rows: rows}, nil
	}

	return nil, nil
}
