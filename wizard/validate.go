// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import "errors"

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownField   = errors.New("unknown field")
	ErrSectionInvalid = errors.New("section has missing required fields")
	ErrClientRequired = errors.New("select a client")
	ErrRouteRequired  = errors.New("specify both route origin and destination")
	ErrSessionClosed  = errors.New("wizard session is closed")
	ErrSessionUnknown = errors.New("wizard session not found")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// ValidateSection reports whether a section's required fields are filled.
// It depends only on data.
func ValidateSection(s Section, d Data) bool {
	return sectionError(s, d) == nil
}

// sectionError names the first missing requirement of a section
func sectionError(s Section, d Data) error {
	switch s {
	case SectionClient:
		if !present(d.ClientID) {
			return ErrClientRequired
		}
	case SectionRoute:
		if !present(d.RouteFrom) || !present(d.RouteTo) {
			return ErrRouteRequired
		}
	}
	// cargo, transport and finance have no required fields
	return nil
}
