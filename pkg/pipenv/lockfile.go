// Package pipenv reads Pipfile.lock documents produced by Pipenv and
// extracts version facts from them.
package pipenv

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLockfile is returned when a document does not look like a
// Pipfile.lock at all.
var ErrInvalidLockfile = errors.New("invalid Pipfile.lock")

// NotFoundError reports that a requested value is absent from an otherwise
// valid lockfile. It is distinct from transport and validation failures.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Kind selects a dependency section of the lockfile.
type Kind string

const (
	// KindDefault selects the regular (production) dependency section.
	KindDefault Kind = "default"
	// KindDev selects the dev dependency section, stored as "develop"
	// on the wire.
	KindDev Kind = "dev"
)

// Requires mirrors _meta.requires.
type Requires struct {
	PythonVersion string `json:"python_version"`
}

// Meta mirrors the lockfile's _meta object.
type Meta struct {
	Requires Requires `json:"requires"`
}

// Package is a single resolved dependency entry. Pinned dependencies carry
// a version specifier ("==1.1.1"); VCS-sourced dependencies carry a ref.
type Package struct {
	Version string `json:"version"`
	Ref     string `json:"ref"`
}

// ResolvedVersion returns the pinned version with the "==" specifier
// stripped, or "" for VCS-sourced entries.
func (p Package) ResolvedVersion() string {
	return strings.TrimPrefix(p.Version, "==")
}

// Lockfile is a validated Pipfile.lock document. The default and develop
// sections hold the fully resolved dependency set, so transitive
// dependencies appear alongside direct ones.
type Lockfile struct {
	Meta    *Meta              `json:"_meta"`
	Default map[string]Package `json:"default"`
	Develop map[string]Package `json:"develop"`
}

// Decode parses and validates a Pipfile.lock document.
func Decode(data []byte) (*Lockfile, error) {
	var lockfile Lockfile
	if err := json.Unmarshal(data, &lockfile); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLockfile, err)
	}
	if err := lockfile.Validate(); err != nil {
		return nil, err
	}
	return &lockfile, nil
}

// Validate checks that the document has the shape Pipenv writes.
func (l *Lockfile) Validate() error {
	if l.Meta == nil {
		return fmt.Errorf("%w: missing _meta", ErrInvalidLockfile)
	}
	return nil
}

// PythonVersion returns the interpreter version pinned under
// _meta.requires.python_version.
func (l *Lockfile) PythonVersion() (string, error) {
	version := l.Meta.Requires.PythonVersion
	if version == "" {
		return "", &NotFoundError{Message: "version not specified"}
	}
	return version, nil
}

// Dependency looks up a package by name in the section selected by kind.
// A package present only in the other section is not found.
func (l *Lockfile) Dependency(name string, kind Kind) (Package, error) {
	section := l.Default
	if kind == KindDev {
		section = l.Develop
	}
	pkg, ok := section[name]
	if !ok {
		return Package{}, &NotFoundError{Message: "package not found"}
	}
	return pkg, nil
}
