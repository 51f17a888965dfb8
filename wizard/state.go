// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

// State is the whole wizard state of one session. Transition functions take
// a State and return a new one; the input is never modified.
type State struct {
	Current Section
	Data    Data
	IsEdit  bool
	OrderID string // empty for a new order
	Status  string // status of the order being edited; kept on save

	// recorded outcomes of prior visits; CURRENT is derived, never stored
	recorded map[Section]SectionState
}

// NewState returns the initial state for a new order
func NewState() State {
	return State{
		Current:  FirstSection,
		recorded: map[Section]SectionState{},
	}
}

// EditState returns the initial state for editing an existing order
func EditState(orderID string, data Data) State {
	s := NewState()
	s.IsEdit = true
	s.OrderID = orderID
	s.Data = data
	return s
}

// SectionState returns the display state of one section. The current
// section shows CURRENT unless its last gate check failed.
func (s State) SectionState(id Section) SectionState {
	rec, ok := s.recorded[id]
	if id == s.Current && rec != StateError {
		return StateCurrent
	}
	if !ok {
		return StateIncomplete
	}
	return rec
}

// SectionStates returns the display state of every section
func (s State) SectionStates() map[Section]SectionState {
	out := make(map[Section]SectionState, len(SectionOrder))
	for _, id := range SectionOrder {
		out[id] = s.SectionState(id)
	}
	return out
}

func (s State) mark(id Section, st SectionState) State {
	rec := make(map[Section]SectionState, len(s.recorded)+1)
	for k, v := range s.recorded {
		rec[k] = v
	}
	rec[id] = st
	s.recorded = rec
	return s
}

// GoToSection jumps to any section. It is not gated by validation.
// Unknown ids leave the state unchanged.
func GoToSection(s State, id Section) State {
	if !id.Valid() {
		return s
	}
	s.Current = id
	return s
}

// GoToNextSection moves one step forward; no-op on the last section
func GoToNextSection(s State) State {
	if next, ok := s.Current.Next(); ok {
		s.Current = next
	}
	return s
}

// GoToPrevSection moves one step back; no-op on the first section
func GoToPrevSection(s State) State {
	if prev, ok := s.Current.Prev(); ok {
		s.Current = prev
	}
	return s
}

// Collect merges harvested section inputs into the data
func Collect(s State, values Values) (State, error) {
	data, err := s.Data.Merge(values)
	if err != nil {
		return s, err
	}
	s.Data = data
	return s, nil
}

// Advance is the gated Next action. A valid current section is marked
// COMPLETE and the state moves forward; an invalid one is marked ERROR and
// the returned error names the missing requirement.
func Advance(s State) (State, error) {
	if err := sectionError(s.Current, s.Data); err != nil {
		return s.mark(s.Current, StateError), err
	}
	return GoToNextSection(s.mark(s.Current, StateComplete)), nil
}
