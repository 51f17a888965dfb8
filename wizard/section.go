// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import "fmt"

// Section is one step of the order wizard
type Section string

const (
	SectionClient    Section = "client"
	SectionRoute     Section = "route"
	SectionCargo     Section = "cargo"
	SectionTransport Section = "transport"
	SectionFinance   Section = "finance"
)

// SectionOrder is the sidebar order and the Next/Back order
var SectionOrder = [...]Section{
	SectionClient,
	SectionRoute,
	SectionCargo,
	SectionTransport,
	SectionFinance,
}

// FirstSection is where every session starts
const FirstSection = SectionClient

type edges struct {
	next, prev Section // empty at the ends
}

// transitions is the only source of adjacency for Next/Back
var transitions = map[Section]edges{
	SectionClient:    {next: SectionRoute},
	SectionRoute:     {next: SectionCargo, prev: SectionClient},
	SectionCargo:     {next: SectionTransport, prev: SectionRoute},
	SectionTransport: {next: SectionFinance, prev: SectionCargo},
	SectionFinance:   {prev: SectionTransport},
}

var sectionTitles = map[Section]string{
	SectionClient:    "Client",
	SectionRoute:     "Route",
	SectionCargo:     "Cargo",
	SectionTransport: "Transport",
	SectionFinance:   "Finance",
}

// Next returns the following section, or false on the last one
func (s Section) Next() (Section, bool) {
	e := transitions[s]
	return e.next, e.next != ""
}

// Prev returns the preceding section, or false on the first one
func (s Section) Prev() (Section, bool) {
	e := transitions[s]
	return e.prev, e.prev != ""
}

func (s Section) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Section) Title() string {
	return sectionTitles[s]
}

// ParseSection converts a sidebar step id into a Section
func ParseSection(s string) (Section, error) {
	sec := Section(s)
	if !sec.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSection, s)
	}
	return sec, nil
}

// SectionState is the display state of one section
type SectionState string

const (
	StateIncomplete SectionState = "incomplete"
	StateCurrent    SectionState = "current"
	StateComplete   SectionState = "complete"
	StateError      SectionState = "error"
)
