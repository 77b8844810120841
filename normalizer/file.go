package normalizer

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/dmitrymomot/optkit/pkg/fspath"
)

// File reads a file's full contents as the option value. The path is resolved
// to an absolute path (home shorthand and relative segments expanded) before
// reading. Read failures surface joined with ErrFileRead, never as a
// ValidationError.
type File struct{}

// NewFile creates a file-contents normalizer.
func NewFile() File { return File{} }

func (File) Format(raw string) (any, error) {
	path, err := fspath.Resolve(raw)
	if err != nil {
		return nil, errors.Join(ErrFileRead, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFileRead, err)
	}
	return string(data), nil
}

func (File) Describe() string { return "a path to a file" }

func (File) Complete(prefix string) []string {
	return fspath.Browse(prefix)
}

// JSONInput loads a JSON value either from a file (when the raw value
// resolves to an existing file) or from the raw value itself as an inline
// document. JSON syntax failures are collapsed into a generic
// ValidationError; the decoder's position diagnostic is discarded.
type JSONInput struct {
	File
}

// NewJSONInput creates a JSON document normalizer.
func NewJSONInput() JSONInput { return JSONInput{} }

func (n JSONInput) Format(raw string) (any, error) {
	text := raw
	if path, err := fspath.Resolve(raw); err == nil {
		if info, statErr := os.Stat(path); statErr == nil && !info.IsDir() {
			contents, readErr := n.File.Format(raw)
			if readErr != nil {
				return nil, readErr
			}
			text = contents.(string)
		}
	}
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, ValidationError{
			Message:        "Unable to parse JSON input",
			TranslationKey: "normalizer.json_invalid",
		}
	}
	return v, nil
}

func (JSONInput) Describe() string {
	return "a JSON document, inline or a path to a JSON file"
}
