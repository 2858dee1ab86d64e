// Package media decides how product images travel to the backend. Already
// hosted references are kept by value; device-local files are uploaded as
// multipart parts. The result is a Submission the API client knows how to
// send.
package media

import (
	"encoding/json"
	"path"
	"slices"
	"strings"
)

// Kind classifies an image reference.
type Kind int

const (
	// Local is a device file path that must be uploaded.
	Local Kind = iota
	// Remote is an http(s) URL already stored by the backend.
	Remote
	// Inline is a data: URI sent as-is.
	Inline
)

func (k Kind) String() string {
	switch k {
	case Remote:
		return "remote"
	case Inline:
		return "inline"
	default:
		return "local"
	}
}

// Classify returns the Kind of ref. Scheme checks are case-insensitive.
func Classify(ref string) Kind {
	lower := strings.ToLower(strings.TrimSpace(ref))
	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return Remote
	case strings.HasPrefix(lower, "data:"):
		return Inline
	default:
		return Local
	}
}

// Filter drops empty entries and the "null"/"undefined" strings that leak in
// from loosely typed form state.
func Filter(refs []string) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		trimmed := strings.TrimSpace(ref)
		if trimmed == "" || trimmed == "null" || trimmed == "undefined" {
			continue
		}
		out = append(out, ref)
	}

	return out
}

// Partition splits filtered refs into files to upload and references to keep.
func Partition(refs []string) (local, existing []string) {
	local = []string{}
	existing = []string{}
	for _, ref := range Filter(refs) {
		if Classify(ref) == Local {
			local = append(local, ref)
		} else {
			existing = append(existing, ref)
		}
	}

	return local, existing
}

// Mode says whether a submission creates or updates a product.
type Mode int

const (
	Create Mode = iota
	Update
)

const (
	fieldImages       = "images"
	fieldImagesToKeep = "imagesToKeep"
)

// Submission is either a JSON body or a multipart form.
type Submission interface {
	isSubmission()
}

// JSONSubmission is sent as application/json.
type JSONSubmission struct {
	Body map[string]any
}

func (*JSONSubmission) isSubmission() {}

// Field is one non-file multipart value.
type Field struct {
	Name  string
	Value string
}

// File is one local file to upload.
type File struct {
	Field       string
	Path        string
	Filename    string
	ContentType string
}

// MultipartSubmission is sent as multipart/form-data.
type MultipartSubmission struct {
	Fields []Field
	Files  []File
}

func (*MultipartSubmission) isSubmission() {}

// Field returns the value of the named field and whether it exists.
func (m *MultipartSubmission) Field(name string) (string, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}

	return "", false
}

// BuildProductSubmission picks the encoding for a product create or update.
// fields holds every non-image product field. imagesSupplied distinguishes
// an update that leaves images alone from one that sets them to empty.
func BuildProductSubmission(mode Mode, fields map[string]any, images []string, imagesSupplied bool) (Submission, error) {
	local, existing := Partition(images)

	if len(local) == 0 {
		return buildJSON(mode, fields, existing, imagesSupplied), nil
	}

	return buildMultipart(mode, fields, local, existing)
}

func buildJSON(mode Mode, fields map[string]any, existing []string, imagesSupplied bool) *JSONSubmission {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	delete(body, fieldImages)

	switch mode {
	case Create:
		body[fieldImages] = existing
	case Update:
		if imagesSupplied {
			body[fieldImagesToKeep] = existing
		}
	}

	return &JSONSubmission{Body: body}
}

func buildMultipart(mode Mode, fields map[string]any, local, existing []string) (*MultipartSubmission, error) {
	form := &MultipartSubmission{}

	flat, err := flatten(fields)
	if err != nil {
		return nil, err
	}
	form.Fields = flat

	switch mode {
	case Create:
		if len(existing) > 0 {
			encoded, err := json.Marshal(existing)
			if err != nil {
				return nil, err
			}
			form.Fields = append(form.Fields, Field{Name: fieldImages, Value: string(encoded)})
		}
	case Update:
		encoded, err := json.Marshal(existing)
		if err != nil {
			return nil, err
		}
		form.Fields = append(form.Fields, Field{Name: fieldImagesToKeep, Value: string(encoded)})
	}

	for _, p := range local {
		form.Files = append(form.Files, File{
			Field:       fieldImages,
			Path:        p,
			Filename:    Filename(p),
			ContentType: ContentType(p),
		})
	}

	return form, nil
}

// flatten turns product fields into form values in a stable order. Strings
// go as-is, objects and arrays as JSON. Nil becomes an empty value so a
// cleared field such as category_id still reaches the backend.
func flatten(fields map[string]any) ([]Field, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == fieldImages || k == fieldImagesToKeep {
			continue
		}
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]Field, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if v == nil {
			out = append(out, Field{Name: k})

			continue
		}
		if s, ok := v.(string); ok {
			out = append(out, Field{Name: k, Value: s})

			continue
		}
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{Name: k, Value: string(encoded)})
	}

	return out, nil
}

// Filename is the last path segment of a local reference.
func Filename(ref string) string {
	ref = strings.TrimPrefix(ref, "file://")
	name := path.Base(strings.ReplaceAll(ref, "\\", "/"))
	if name == "." || name == "/" {
		return "image.jpg"
	}

	return name
}

// ContentType infers the MIME type from the extension.
func ContentType(ref string) string {
	switch strings.ToLower(path.Ext(Filename(ref))) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
