package helper

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one key/value pair of a JSON object, in document order.
type Field struct {
	Key   string
	Value json.RawMessage
}

// DecodeRecords decodes a JSON array of objects without losing key order.
// Headers are the keys of the first record. Every row has one cell per
// header; keys missing from a later record become empty cells and keys
// unknown to the first record are dropped.
func DecodeRecords(raw json.RawMessage) ([]string, [][]string, error) {
	if IsNull(raw) {
		return nil, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, nil, err
	}

	var records [][]Field
	for dec.More() {
		record, err := decodeObject(dec)
		if err != nil {
			return nil, nil, fmt.Errorf("record %d: %w", len(records), err)
		}
		records = append(records, record)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, nil
	}

	headers := make([]string, 0, len(records[0]))
	for _, f := range records[0] {
		headers = append(headers, f.Key)
	}

	rows := make([][]string, 0, len(records))
	for _, record := range records {
		values := make(map[string]json.RawMessage, len(record))
		for _, f := range record {
			values[f.Key] = f.Value
		}
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = CellString(values[h])
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

func decodeObject(dec *json.Decoder) ([]Field, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value of %q: %w", key, err)
		}
		fields = append(fields, Field{Key: key, Value: value})
	}
	return fields, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
