// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - ClientRequest, CarrierRequest, ContactRequest: CRUD bodies
  - DictionaryEntryRequest: name of a dictionary entry
  - OrderPayload: composite order document (also the wizard's submission)
  - OpenWizardRequest: optional order_id to edit
  - WizardFieldsRequest, WizardGotoRequest: harvested section fields

# Domain Types

  - Client, Carrier, Contact
  - Order, OrderSummary (order plus margin)
  - Ref: {id, name} pair used by every reference list

# Constants

Order status values:

	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

TransportModeTBD ("tbd") is the placeholder transport mode used when an
order is created before a mode is chosen.

Dictionary kinds (URL segment of /dictionaries/{kind}):

	DictVehicleBodyTypes = "vehicle-body-types"
	DictLoadingTypes     = "loading-types"
	DictPackageTypes     = "package-types"
*/
package models
