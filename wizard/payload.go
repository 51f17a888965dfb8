// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"strings"

	"github.com/danielhkuo/freight-desk/models"
)

// CreateStatus is the status sent by CreateOrder. It is "draft", the same
// marker SaveDraft uses; see DESIGN.md before changing it.
const CreateStatus = models.StatusDraft

// CreatePayload assembles the order document for a final create.
// Carrier rate defaults to 0 and transport mode to TBD.
func CreatePayload(d Data) models.OrderPayload {
	p := basePayload(d)
	if p.CarrierRate == nil {
		zero := 0.0
		p.CarrierRate = &zero
	}
	if p.TransportMode == nil {
		mode := models.TransportModeTBD
		p.TransportMode = &mode
	}
	p.Status = CreateStatus
	return p
}

// DraftPayload assembles the order document for a draft save.
// Anything not filled in stays null.
func DraftPayload(d Data) models.OrderPayload {
	p := basePayload(d)
	p.Status = models.StatusDraft
	return p
}

func basePayload(d Data) models.OrderPayload {
	return models.OrderPayload{
		ClientID:          strings.TrimSpace(d.ClientID),
		CarrierID:         optional(d.CarrierID),
		RouteFrom:         optional(d.RouteFrom),
		RouteTo:           optional(d.RouteTo),
		CargoName:         optional(d.CargoName),
		CargoWeight:       parseNumber(d.CargoWeight),
		LoadingDate:       optional(d.LoadingDate),
		UnloadingDate:     optional(d.UnloadingDate),
		ClientRate:        parseNumber(d.ClientRate),
		CarrierRate:       parseNumber(d.CarrierRate),
		TransportMode:     optional(d.TransportMode),
		Direction:         optional(d.Direction),
		VehicleBodyTypeID: optional(d.VehicleBodyTypeID),
		LoadingTypeID:     optional(d.LoadingTypeID),
		PackageTypeID:     optional(d.PackageTypeID),
		Notes:             optional(d.Notes),
	}
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
