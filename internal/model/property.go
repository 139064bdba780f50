package model

import (
	"fmt"
	"strings"
)

// PropertyID identifies an editable property in the format
// `<entity type>:<id>:<field name>:<langcode>:<view mode>`,
// e.g. "node:1:title:und:full".
type PropertyID string

// ParsePropertyID checks the given identifier for well-formedness.
func ParsePropertyID(s string) (PropertyID, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return "", fmt.Errorf("property id '%s' has %d parts, expected 5 (<entity type>:<id>:<field name>:<langcode>:<view mode>)", s, len(parts))
	}
	for i, part := range parts {
		if part == "" {
			return "", fmt.Errorf("property id '%s' has empty part at position %d", s, i)
		}
	}
	return PropertyID(s), nil
}

func (id PropertyID) parts() []string {
	parts := strings.Split(string(id), ":")
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	return parts
}

// EntityType returns the entity type, e.g. "node".
func (id PropertyID) EntityType() string { return id.parts()[0] }

// EntityID returns the id of the entity within its type, e.g. "1".
func (id PropertyID) EntityID() string { return id.parts()[1] }

// Subject returns `<entity type>/<id>`, e.g. "node/1".
func (id PropertyID) Subject() string {
	return strings.Join(id.parts()[0:2], "/")
}

// Predicate returns `<field name>/<langcode>/<view mode>`, e.g.
// "title/und/full".
func (id PropertyID) Predicate() string {
	return strings.Join(id.parts()[2:5], "/")
}

// FieldName returns the field name, e.g. "title".
func (id PropertyID) FieldName() string { return id.parts()[2] }
