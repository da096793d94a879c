// project/load.go
package project

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	toml "github.com/pelletier/go-toml/v2"
)

// LoadConfig reads, decodes and validates the project file at path. It
// returns either a fully valid project or an error, never both.
func LoadConfig(path string) (*Project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(b) {
		return nil, &IOError{Path: path, Err: ErrInvalidUTF8}
	}
	p, err := Parse(string(b))
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse decodes a project document without validating it. Unknown keys are
// ignored.
func Parse(text string) (*Project, error) {
	doc := defaultDocument()
	if err := toml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, newParseError(err)
	}
	if doc.Name == nil {
		return nil, &ParseError{Err: fmt.Errorf("%w `name`", ErrMissingField)}
	}
	return doc.project(), nil
}

func newParseError(err error) *ParseError {
	pe := &ParseError{Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
		pe.Detail = derr.String()
	}
	return pe
}
