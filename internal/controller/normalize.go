package controller

import "encoding/json"

// Normalize coerces a response body into a sequence of records. The backend
// is inconsistent about envelopes: a collection may arrive as a bare array,
// as {"items": [...]}, or wrapped under an entity-specific plural key. Any
// shape outside those candidates yields an empty sequence, never an error.
func Normalize(raw []byte, wrapperKeys []string) []json.RawMessage {
	var rows []json.RawMessage
	if err := json.Unmarshal(raw, &rows); err == nil {
		if rows == nil {
			return []json.RawMessage{}
		}
		return rows
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return []json.RawMessage{}
	}

	for _, key := range wrapperKeys {
		wrapped, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(wrapped, &rows); err == nil && rows != nil {
			return rows
		}
	}

	return []json.RawMessage{}
}

// DecodeCollection normalizes raw into records of type T. Rows that fail to
// decode are dropped rather than failing the whole collection.
func DecodeCollection[T any](raw []byte, wrapperKeys []string) []T {
	rows := Normalize(raw, wrapperKeys)
	items := make([]T, 0, len(rows))
	for _, row := range rows {
		var item T
		if err := json.Unmarshal(row, &item); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items
}
