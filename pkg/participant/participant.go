// Package participant models ledger participants and their fully-qualified identifiers.
package participant

import (
	"errors"
	"fmt"
	"strings"
)

// ResourceType is the registry type under which participants are resolved.
const ResourceType = "Participant"

const idSeparator = "#"

// ErrInvalidIdentifier is returned when a fully-qualified identifier cannot be parsed.
var ErrInvalidIdentifier = errors.New("invalid fully-qualified identifier")

// Ref is anything that names a participant by its fully-qualified identifier.
// Both a resolved *Participant and a raw FQI satisfy it.
type Ref interface {
	FullyQualifiedIdentifier() string
}

// Participant is a ledger participant resource as returned by a registry.
type Participant struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Namespace string `json:"namespace"`
}

// New creates a Participant.
func New(namespace, typ, id string) *Participant {
	return &Participant{ID: id, Type: typ, Namespace: namespace}
}

// FullyQualifiedType returns "namespace.Type", or just "Type" without a namespace.
// A nil participant has an empty type.
func (p *Participant) FullyQualifiedType() string {
	if p == nil {
		return ""
	}
	if p.Namespace == "" {
		return p.Type
	}
	return p.Namespace + "." + p.Type
}

// FullyQualifiedIdentifier returns "namespace.Type#id", or "" for a nil participant.
func (p *Participant) FullyQualifiedIdentifier() string {
	if p == nil {
		return ""
	}
	return p.FullyQualifiedType() + idSeparator + p.ID
}

// FQI is a fully-qualified identifier string such as "org.doge.Doge#DOGE_1".
type FQI string

// FullyQualifiedIdentifier implements Ref.
func (f FQI) FullyQualifiedIdentifier() string {
	return string(f)
}

// Identifier is a parsed fully-qualified identifier.
type Identifier struct {
	Namespace string
	Type      string
	ID        string
}

// FullyQualifiedType returns the "namespace.Type" part of the identifier.
func (i Identifier) FullyQualifiedType() string {
	return (&Participant{Namespace: i.Namespace, Type: i.Type}).FullyQualifiedType()
}

// String returns the identifier in "namespace.Type#id" form.
func (i Identifier) String() string {
	return i.FullyQualifiedType() + idSeparator + i.ID
}

// Parse splits a fully-qualified identifier into namespace, type and id.
// The id is everything after the first '#'; the namespace is everything before
// the last '.' of the type part.
func Parse(fqi string) (Identifier, error) {
	fqType, id, ok := strings.Cut(fqi, idSeparator)
	if !ok {
		return Identifier{}, fmt.Errorf("%w: %q is missing '%s'", ErrInvalidIdentifier, fqi, idSeparator)
	}
	if fqType == "" || id == "" {
		return Identifier{}, fmt.Errorf("%w: %q", ErrInvalidIdentifier, fqi)
	}

	var ident Identifier
	ident.ID = id
	if dot := strings.LastIndex(fqType, "."); dot >= 0 {
		ident.Namespace = fqType[:dot]
		ident.Type = fqType[dot+1:]
	} else {
		ident.Type = fqType
	}
	if ident.Type == "" || strings.HasSuffix(ident.Namespace, ".") || strings.HasPrefix(fqType, ".") {
		return Identifier{}, fmt.Errorf("%w: %q has an empty type segment", ErrInvalidIdentifier, fqi)
	}
	return ident, nil
}

// ParseFullyQualifiedType splits "namespace.Type" into its namespace and type.
func ParseFullyQualifiedType(fqType string) (namespace, typ string, err error) {
	ident, err := Parse(fqType + idSeparator + "_")
	if err != nil {
		return "", "", err
	}
	return ident.Namespace, ident.Type, nil
}
