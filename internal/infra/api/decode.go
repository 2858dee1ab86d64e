package api

import (
	"bytes"
	"encoding/json"

	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api/model"
)

// unwrapData strips the {success, data} envelope when the body has one.
func unwrapData(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return raw
	}

	var env model.Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &env); err != nil {
		return raw
	}

	data := bytes.TrimSpace(env.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return raw
	}

	return data
}

// decodeAs decodes raw into out, first descending into key when the body
// wraps the document under that name.
func decodeAs(raw json.RawMessage, key string, out any) error {
	raw = unwrapData(raw)

	if key != "" && len(raw) > 0 && raw[0] == '{' {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(raw, &wrapper); err == nil {
			if inner, ok := wrapper[key]; ok && !bytes.Equal(bytes.TrimSpace(inner), []byte("null")) {
				raw = inner
			}
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode %q", key)
	}

	return nil
}
