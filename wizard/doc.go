// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard implements the order creation wizard: a five-section form
state machine with per-section validation, a live margin, and submission
to an order store.

# Sections

Sections run in a fixed order:

	client → route → cargo → transport → finance

Next and Back follow the transition table in section.go. The sidebar may
jump to any section at any time.

# State

State is a value. Transitions are functions from State to State:

	s := wizard.NewState()
	s, _ = wizard.Collect(s, wizard.Values{"clientId": "c1"})
	s, err := wizard.Advance(s) // gated Next
	s = wizard.GoToSection(s, wizard.SectionFinance) // ungated

Advance marks the current section COMPLETE and moves on, or marks it ERROR
and stays. Only client (clientId) and route (routeFrom, routeTo) have
required fields.

# Sessions

A Manager owns open sessions keyed by UUID. Every Session event harvests the
submitted field values first, so nothing typed on a section is lost when
leaving it:

	m := wizard.NewManager(wizard.Config{Store: orders, Refs: cache, Refresh: bump})
	s := m.Open(wizard.OpenOptions{})
	err := s.Next(wizard.Values{"clientId": "c1"})
	order, err := s.CreateOrder(ctx, nil)

CreateOrder re-checks client and route, jumps to the offending section when
one is missing, and closes the session on success. SaveDraft needs only a
client and keeps the session open. The first draft binds the session to the
saved order, so a later submit updates that order and notifies "Order
updated" instead of creating a second one. Store failures are returned as
*StoreError and notified verbatim; the data is kept.

A second submission while one is in flight fails with ErrSubmitInFlight.
Results that arrive after Close are dropped.

# Margin

	wizard.Profit("100000", 75000.0) // 25000
	wizard.Profit(nil, "20000")      // -20000

Missing or non-numeric rates count as zero. MarginOf renders the value with
thousands separators and a negative flag.
*/
package wizard
