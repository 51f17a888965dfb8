// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Freight Desk API.

# Handler Types

Each handler is a struct built by a constructor:

  - ClientHandler, CarrierHandler: reference CRUD; writes refresh the cache
  - ContactHandler: people attached to a client or carrier
  - DictionaryHandler: vehicle body, loading and package types
  - RefDataHandler: cache refresh and fuzzy suggestions
  - OrderHandler: order CRUD with derived margin
  - WizardHandler: order creation wizard sessions

	refs := handlers.NewRefDataHandler(cache, store.NewReferences(db))
	clients := handlers.NewClientHandler(db, cfg, refs)

# Wizard

Every wizard endpoint except close answers with a WizardResponse: the
rendered view plus notifications raised by the event. Field values sent
with goto, next, back, submit and draft are harvested before the action.

	POST   /wizard               → Open (optional order_id for edit mode)
	POST   /wizard/{id}/next     → Next (422 when the section is invalid)
	POST   /wizard/{id}/goto     → GoTo (sidebar, never gated)
	POST   /wizard/{id}/submit   → Submit (closes the session on success)
	POST   /wizard/{id}/draft    → SaveDraft (session stays open)
	DELETE /wizard/{id}          → Close

A second submit while one is running gets 409. Store failures keep the
session open and carry the store's message as the notice.

# Order List

GET /orders sets X-List-Version. Order writes, through the API or the
wizard, bump the version.
*/
package handlers
