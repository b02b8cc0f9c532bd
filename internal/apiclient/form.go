package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// File is an upload attached to a multipart request.
type File struct {
	Name string
	// ContentType is guessed from Name's extension when empty.
	ContentType string
	Content     io.Reader
}

// Form is a multipart/form-data body. The client never sets a JSON content
// type for it; the multipart writer supplies the boundary.
type Form struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	field string
	file  File
}

// NewForm creates an empty Form.
func NewForm() *Form {
	return &Form{}
}

// FormFromStruct flattens v's JSON representation into form fields. Arrays
// repeat the key, nested objects are sent as JSON strings, nulls are skipped.
func FormFromStruct(v interface{}) (*Form, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal form fields: %w", err)
	}

	var values map[string]interface{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("form fields must be an object: %w", err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f := NewForm()
	for _, k := range keys {
		switch val := values[k].(type) {
		case nil:
		case []interface{}:
			for _, item := range val {
				s, err := formValue(item)
				if err != nil {
					return nil, err
				}
				f.Add(k, s)
			}
		default:
			s, err := formValue(val)
			if err != nil {
				return nil, err
			}
			f.Add(k, s)
		}
	}
	return f, nil
}

func formValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	default:
		raw, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("marshal form value: %w", err)
		}
		return string(raw), nil
	}
}

// Add appends a text field.
func (f *Form) Add(name, value string) *Form {
	f.fields = append(f.fields, formField{name: name, value: value})
	return f
}

// AddFile appends a file part under the given field name.
func (f *Form) AddFile(field string, file File) *Form {
	f.files = append(f.files, formFile{field: field, file: file})
	return f
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encode writes the form and returns the body with its content type.
func (f *Form) encode() (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, field := range f.fields {
		if err := w.WriteField(field.name, field.value); err != nil {
			return nil, "", fmt.Errorf("write field %q: %w", field.name, err)
		}
	}

	for _, ff := range f.files {
		contentType := ff.file.ContentType
		if contentType == "" {
			contentType = mime.TypeByExtension(strings.ToLower(filepath.Ext(ff.file.Name)))
		}
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(ff.field), quoteEscaper.Replace(filepath.Base(ff.file.Name))))
		h.Set("Content-Type", contentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %q: %w", ff.field, err)
		}
		if _, err := io.Copy(part, ff.file.Content); err != nil {
			return nil, "", fmt.Errorf("copy file %q: %w", ff.file.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
