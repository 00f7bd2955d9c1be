package tableio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"tabfile/dataframe"
	apperrors "tabfile/errors"
)

// jsonRow is one decoded object with its keys in document order.
type jsonRow struct {
	keys   []string
	values map[string]string
}

// readJSON parses line-delimited objects (orient lines) or a top-level
// array of objects (orient records). Column order follows first-seen
// key order across all rows.
func (r *Reader) readJSON(path string) (*dataframe.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	dec := json.NewDecoder(stripBOM(file))

	var rows []jsonRow
	switch r.opts.Orient {
	case OrientRecords:
		rows, err = decodeRecordArray(dec)
	default:
		rows, err = decodeObjectStream(dec)
	}
	if err != nil {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("failed to parse JSON file %s", path), err)
	}

	// Union of keys in first-seen order.
	var headers []string
	seen := make(map[string]bool)
	for _, row := range rows {
		for _, key := range row.keys {
			if !seen[key] {
				seen[key] = true
				headers = append(headers, key)
			}
		}
	}

	records := make([][]string, len(rows))
	for i, row := range rows {
		rec := make([]string, len(headers))
		for j, key := range headers {
			rec[j] = row.values[key]
		}
		records[i] = rec
	}
	return dataframe.FromRecords(headers, records)
}

// decodeObjectStream decodes newline-delimited JSON objects until EOF.
func decodeObjectStream(dec *json.Decoder) ([]jsonRow, error) {
	var rows []jsonRow
	for {
		row, err := decodeOrderedObject(dec)
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

// decodeRecordArray decodes a top-level array of objects.
func decodeRecordArray(dec *json.Decoder) ([]jsonRow, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return nil, fmt.Errorf("expected top-level array, got %v", tok)
	}
	var rows []jsonRow
	for dec.More() {
		row, err := decodeOrderedObject(dec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rows, nil
}

// decodeOrderedObject decodes the next object token by token so key
// order is preserved.
func decodeOrderedObject(dec *json.Decoder) (jsonRow, error) {
	row := jsonRow{values: make(map[string]string)}

	tok, err := dec.Token()
	if err != nil {
		return row, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return row, fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return row, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return row, fmt.Errorf("expected object key, got %v", keyTok)
		}
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return row, err
		}
		row.keys = append(row.keys, key)
		row.values[key] = renderJSONValue(value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return row, err
	}
	return row, nil
}

// renderJSONValue renders a decoded JSON value as a raw text cell.
// Nested values re-serialize to JSON.
func renderJSONValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return dataframe.FormatFloat(v)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

// writeJSON writes the table per the configured orientation: one object
// per line, or a single array of objects. NaN cells serialize as null.
func (w *Writer) writeJSON(t *dataframe.Table, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to create JSON file %s", path), err)
	}
	defer file.Close()

	switch w.opts.Orient {
	case OrientRecords:
		if _, err := file.WriteString("["); err != nil {
			return apperrors.NewStorageError("failed to write JSON output", err)
		}
		for i := 0; i < t.Rows(); i++ {
			if i > 0 {
				if _, err := file.WriteString(","); err != nil {
					return apperrors.NewStorageError("failed to write JSON output", err)
				}
			}
			if err := writeJSONObject(file, t, i); err != nil {
				return err
			}
		}
		if _, err := file.WriteString("]\n"); err != nil {
			return apperrors.NewStorageError("failed to write JSON output", err)
		}
	default:
		for i := 0; i < t.Rows(); i++ {
			if err := writeJSONObject(file, t, i); err != nil {
				return err
			}
			if _, err := file.WriteString("\n"); err != nil {
				return apperrors.NewStorageError("failed to write JSON output", err)
			}
		}
	}
	return nil
}

// writeJSONObject writes row i as a JSON object with columns in table
// order.
func writeJSONObject(out io.Writer, t *dataframe.Table, i int) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for j := 0; j < t.NumColumns(); j++ {
		col := t.ColumnAt(j)
		if j > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col.Name())
		if err != nil {
			return apperrors.NewStorageError("failed to encode column name", err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		if col.Kind() == dataframe.KindFloat {
			if col.IsNaN(i) {
				buf.WriteString("null")
			} else {
				value, err := json.Marshal(col.Float(i))
				if err != nil {
					return apperrors.NewStorageError("failed to encode cell value", err)
				}
				buf.Write(value)
			}
		} else {
			value, err := json.Marshal(col.String(i))
			if err != nil {
				return apperrors.NewStorageError("failed to encode cell value", err)
			}
			buf.Write(value)
		}
	}
	buf.WriteByte('}')
	if _, err := out.Write(buf.Bytes()); err != nil {
		return apperrors.NewStorageError("failed to write JSON output", err)
	}
	return nil
}
