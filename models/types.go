// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Order status constants
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// TransportModeTBD marks an order whose transport mode is not decided yet
const TransportModeTBD = "tbd"

// Transport modes
const (
	TransportModeFTL = "ftl" // full truckload
	TransportModeLTL = "ltl" // groupage
)

// Dictionary kinds
const (
	DictVehicleBodyTypes = "vehicle-body-types"
	DictLoadingTypes     = "loading-types"
	DictPackageTypes     = "package-types"
)

// Reference kinds served by the suggestion endpoint (dictionaries plus these)
const (
	RefClients  = "clients"
	RefCarriers = "carriers"
)

// Ref is an {id, name} pair from a reference list
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Request types

type ClientRequest struct {
	Name    string `json:"name"`
	INN     string `json:"inn"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

type CarrierRequest struct {
	Name      string `json:"name"`
	INN       string `json:"inn"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	FleetSize int    `json:"fleet_size"`
	Notes     string `json:"notes"`
}

type ContactRequest struct {
	ClientID  *string `json:"client_id"`
	CarrierID *string `json:"carrier_id"`
	Name      string  `json:"name"`
	Position  string  `json:"position"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
}

type DictionaryEntryRequest struct {
	Name string `json:"name"`
}

// OrderPayload is the composite order document sent to the Order Store.
// Nil pointers mean the field is absent.
type OrderPayload struct {
	ClientID          string   `json:"client_id"`
	CarrierID         *string  `json:"carrier_id"`
	RouteFrom         *string  `json:"route_from"`
	RouteTo           *string  `json:"route_to"`
	CargoName         *string  `json:"cargo_name"`
	CargoWeight       *float64 `json:"cargo_weight"`
	LoadingDate       *string  `json:"loading_date"`
	UnloadingDate     *string  `json:"unloading_date"`
	ClientRate        *float64 `json:"client_rate"`
	CarrierRate       *float64 `json:"carrier_rate"`
	TransportMode     *string  `json:"transport_mode"`
	Direction         *string  `json:"direction"`
	VehicleBodyTypeID *string  `json:"vehicle_body_type_id"`
	LoadingTypeID     *string  `json:"loading_type_id"`
	PackageTypeID     *string  `json:"package_type_id"`
	Notes             *string  `json:"notes"`
	Status            string   `json:"status"`
}

type OpenWizardRequest struct {
	OrderID string `json:"order_id"`
}

// FieldValues are raw form inputs keyed by field name. Numbers and
// booleans are accepted and kept in their JSON text form; null clears.
type FieldValues map[string]string

func (f *FieldValues) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		*f = nil
		return nil
	}
	out := make(FieldValues, len(raw))
	for k, v := range raw {
		dec := json.NewDecoder(bytes.NewReader(v))
		dec.UseNumber()
		var val any
		if err := dec.Decode(&val); err != nil {
			return err
		}
		switch x := val.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = x
		case json.Number:
			out[k] = x.String()
		case bool:
			out[k] = strconv.FormatBool(x)
		default:
			return fmt.Errorf("field %q: want a string, number or boolean", k)
		}
	}
	*f = out
	return nil
}

// Harvested field values from the active section
type WizardFieldsRequest struct {
	Fields FieldValues `json:"fields"`
}

type WizardGotoRequest struct {
	Section string      `json:"section"`
	Fields  FieldValues `json:"fields"`
}

// Response types

type CreatedResponse struct {
	ID string `json:"id"`
}

type ListResponse[T any] struct {
	Items []T `json:"items"`
}

type Notice struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Domain types

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	INN       string    `json:"inn"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Carrier struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	INN       string    `json:"inn"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	FleetSize int       `json:"fleet_size"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

type Contact struct {
	ID        string    `json:"id"`
	ClientID  *string   `json:"client_id,omitempty"`
	CarrierID *string   `json:"carrier_id,omitempty"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	ClientID          string    `json:"client_id"`
	CarrierID         *string   `json:"carrier_id,omitempty"`
	RouteFrom         *string   `json:"route_from,omitempty"`
	RouteTo           *string   `json:"route_to,omitempty"`
	CargoName         *string   `json:"cargo_name,omitempty"`
	CargoWeight       *float64  `json:"cargo_weight,omitempty"`
	LoadingDate       *string   `json:"loading_date,omitempty"`
	UnloadingDate     *string   `json:"unloading_date,omitempty"`
	ClientRate        *float64  `json:"client_rate,omitempty"`
	CarrierRate       *float64  `json:"carrier_rate,omitempty"`
	TransportMode     *string   `json:"transport_mode,omitempty"`
	Direction         *string   `json:"direction,omitempty"`
	VehicleBodyTypeID *string   `json:"vehicle_body_type_id,omitempty"`
	LoadingTypeID     *string   `json:"loading_type_id,omitempty"`
	PackageTypeID     *string   `json:"package_type_id,omitempty"`
	Notes             *string   `json:"notes,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// OrderSummary is an order list row with its derived margin
type OrderSummary struct {
	Order
	Margin     float64 `json:"margin"`
	MarginText string  `json:"margin_text"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
