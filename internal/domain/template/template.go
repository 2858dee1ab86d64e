// Package template holds the bundled storefront template catalog and the
// mapping between template keys and the backend's numeric template_id.
// Array order defines the numeric id: the first template is 1.
package template

import (
	_ "embed"
	"encoding/json"
	"strconv"

	"sitesnap/internal/domain/entity"
)

//go:embed templates.json
var catalogJSON []byte

// DefaultNum is the template_id given to businesses created without a choice.
const DefaultNum = 1

var (
	catalog  []entity.Template
	keyToNum map[string]int
	numToKey map[int]string
)

func init() {
	if err := json.Unmarshal(catalogJSON, &catalog); err != nil {
		panic("template: bundled catalog is not valid JSON: " + err.Error())
	}

	keyToNum = make(map[string]int, len(catalog))
	numToKey = make(map[int]string, len(catalog))
	for i, t := range catalog {
		keyToNum[t.ID] = i + 1
		numToKey[i+1] = t.ID
	}
}

// All returns a copy of the template catalog.
func All() []entity.Template {
	out := make([]entity.Template, len(catalog))
	copy(out, catalog)

	return out
}

// KeyToNum resolves a template key to its numeric id.
func KeyToNum(key string) (int, bool) {
	num, ok := keyToNum[key]

	return num, ok
}

// NumToKey resolves a numeric id to its template key. Ids without a matching
// template (the catalog changed since they were stored) come back as the
// decimal string of the number.
func NumToKey(num int) string {
	if key, ok := numToKey[num]; ok {
		return key
	}

	return strconv.Itoa(num)
}

// Resolve turns a client template reference into a numeric id. Known keys go
// through the catalog; numeric strings are accepted as-is.
func Resolve(ref string) (int, bool) {
	if num, ok := KeyToNum(ref); ok {
		return num, true
	}
	if num, err := strconv.Atoi(ref); err == nil && num > 0 {
		return num, true
	}

	return 0, false
}
