// project/config.go
package project

import (
	"encoding/json"
	"maps"
	"slices"
)

// Project is a loaded .hemtt/project.toml. It is never mutated after Parse.
type Project struct {
	name       string
	prefix     string
	mainPrefix *string
	version    VersionOptions
	headers    map[string]string
	files      []string
	hemtt      Features
	signing    SigningOptions
}

// document is the on-disk shape. Defaults are filled in before decoding so
// that absent tables and keys keep them.
type document struct {
	Name       *string           `toml:"name"`
	Prefix     string            `toml:"prefix"`
	MainPrefix *string           `toml:"mainprefix"`
	Version    VersionOptions    `toml:"version"`
	Headers    map[string]string `toml:"headers"`
	Files      []string          `toml:"files"`
	Hemtt      Features          `toml:"hemtt"`
	Signing    SigningOptions    `toml:"signing"`
}

func defaultDocument() document {
	return document{
		Version: DefaultVersionOptions(),
		Headers: map[string]string{},
		Hemtt:   DefaultFeatures(),
		Signing: DefaultSigningOptions(),
	}
}

func (d document) project() *Project {
	p := &Project{
		prefix:     d.Prefix,
		mainPrefix: d.MainPrefix,
		version:    d.Version,
		headers:    d.Headers,
		files:      d.Files,
		hemtt:      d.Hemtt,
		signing:    d.Signing,
	}
	if d.Name != nil {
		p.name = *d.Name
	}
	if p.headers == nil {
		p.headers = map[string]string{}
	}
	return p
}

func (p *Project) Name() string   { return p.name }
func (p *Project) Prefix() string { return p.prefix }

// MainPrefix reports the optional main prefix and whether it was set.
func (p *Project) MainPrefix() (string, bool) {
	if p.mainPrefix == nil {
		return "", false
	}
	return *p.mainPrefix, true
}

func (p *Project) Version() VersionOptions { return p.version }

// Headers returns a copy of the headers injected into built PBOs.
func (p *Project) Headers() map[string]string { return maps.Clone(p.headers) }

// DeclaredFiles returns the files list exactly as configured, before any
// defaults are detected.
func (p *Project) DeclaredFiles() []string { return slices.Clone(p.files) }

func (p *Project) Hemtt() Features { return p.hemtt.clone() }

func (p *Project) Signing() SigningOptions {
	s := p.signing
	if s.Authority != nil {
		a := *s.Authority
		s.Authority = &a
	}
	return s
}

// -------- Validation ----------

// Validate checks the semantic rules that decoding cannot express. Only the
// prefix is checked here; everything else is left to the build steps that
// consume it.
func (p *Project) Validate() error {
	if p.prefix == "" {
		return &ValidationError{Field: "prefix", Reason: "prefix cannot be empty"}
	}
	return nil
}

// -------- JSON view ----------

type projectJSON struct {
	Name       string            `json:"name"`
	Prefix     string            `json:"prefix"`
	MainPrefix *string           `json:"mainprefix,omitempty"`
	Version    VersionOptions    `json:"version"`
	Headers    map[string]string `json:"headers"`
	Files      []string          `json:"files"`
	Hemtt      Features          `json:"hemtt"`
	Signing    SigningOptions    `json:"signing"`
}

func (p *Project) MarshalJSON() ([]byte, error) {
	files := p.DeclaredFiles()
	if files == nil {
		files = []string{}
	}
	return json.Marshal(projectJSON{
		Name:       p.name,
		Prefix:     p.prefix,
		MainPrefix: p.mainPrefix,
		Version:    p.version,
		Headers:    p.Headers(),
		Files:      files,
		Hemtt:      p.Hemtt(),
		Signing:    p.Signing(),
	})
}
