// Package model mirrors the backend's JSON documents as they travel over the
// wire. Field names follow the backend, not the app model.
package model

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Ref is a reference field that the backend sends either as a bare id string
// or as a populated sub-document. Decoding normalizes both to ID; the
// populated document, if any, is kept in Doc.
type Ref struct {
	ID  string
	Doc json.RawMessage
}

// NewRef returns a Ref holding a bare id.
func NewRef(id string) Ref {
	return Ref{ID: id}
}

// UnmarshalJSON accepts a string, an object with _id or id, or null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	*r = Ref{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		return json.Unmarshal(data, &r.ID)
	case '{':
		var doc struct {
			ObjectID json.RawMessage `json:"_id"`
			ID       json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return err
		}
		r.ID = scalarString(doc.ObjectID)
		if r.ID == "" {
			r.ID = scalarString(doc.ID)
		}
		r.Doc = append(json.RawMessage(nil), data...)
	default:
		// Numeric ids show up in legacy seed data.
		r.ID = scalarString(data)
	}

	return nil
}

// MarshalJSON always sends the bare id, or null when empty.
func (r Ref) MarshalJSON() ([]byte, error) {
	if r.ID == "" {
		return []byte("null"), nil
	}

	return json.Marshal(r.ID)
}

// Empty reports whether the reference points nowhere.
func (r Ref) Empty() bool {
	return r.ID == ""
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	// Extended JSON ObjectId: {"$oid": "..."}
	var oid struct {
		OID string `json:"$oid"`
	}
	if err := json.Unmarshal(raw, &oid); err == nil {
		return oid.OID
	}

	return ""
}

// Number is a numeric field that the backend sometimes sends as a string.
type Number float64

// UnmarshalJSON accepts a JSON number, a numeric string, or null. Anything
// unparseable decodes to 0.
func (n *Number) UnmarshalJSON(data []byte) error {
	*n = 0

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			*n = Number(f)
		}

		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
	}

	return nil
}
