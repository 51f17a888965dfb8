// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielhkuo/freight-desk/models"
)

// Field names a form input. The string is the key the browser sends.
type Field string

const (
	FieldClientID          Field = "clientId"
	FieldRouteFrom         Field = "routeFrom"
	FieldRouteTo           Field = "routeTo"
	FieldDirection         Field = "direction"
	FieldCargoName         Field = "cargoName"
	FieldCargoWeight       Field = "cargoWeight"
	FieldPackageTypeID     Field = "packageTypeId"
	FieldLoadingDate       Field = "loadingDate"
	FieldUnloadingDate     Field = "unloadingDate"
	FieldCarrierID         Field = "carrierId"
	FieldTransportMode     Field = "transportMode"
	FieldVehicleBodyTypeID Field = "vehicleBodyTypeId"
	FieldLoadingTypeID     Field = "loadingTypeId"
	FieldClientRate        Field = "clientRate"
	FieldCarrierRate       Field = "carrierRate"
	FieldNotes             Field = "notes"
)

// sectionFields lists the inputs each section renders
var sectionFields = map[Section][]Field{
	SectionClient:    {FieldClientID},
	SectionRoute:     {FieldRouteFrom, FieldRouteTo, FieldDirection},
	SectionCargo:     {FieldCargoName, FieldCargoWeight, FieldPackageTypeID, FieldLoadingDate, FieldUnloadingDate},
	SectionTransport: {FieldCarrierID, FieldTransportMode, FieldVehicleBodyTypeID, FieldLoadingTypeID},
	SectionFinance:   {FieldClientRate, FieldCarrierRate, FieldNotes},
}

// FieldsOf returns the fields rendered by a section
func FieldsOf(s Section) []Field {
	return append([]Field(nil), sectionFields[s]...)
}

// Values are raw inputs harvested from a rendered section
type Values map[string]string

// Data is the order document accumulated across sections.
// Every slot holds the raw input; empty means absent.
type Data struct {
	ClientID          string `json:"clientId"`
	RouteFrom         string `json:"routeFrom"`
	RouteTo           string `json:"routeTo"`
	Direction         string `json:"direction"`
	CargoName         string `json:"cargoName"`
	CargoWeight       string `json:"cargoWeight"`
	PackageTypeID     string `json:"packageTypeId"`
	LoadingDate       string `json:"loadingDate"`
	UnloadingDate     string `json:"unloadingDate"`
	CarrierID         string `json:"carrierId"`
	TransportMode     string `json:"transportMode"`
	VehicleBodyTypeID string `json:"vehicleBodyTypeId"`
	LoadingTypeID     string `json:"loadingTypeId"`
	ClientRate        string `json:"clientRate"`
	CarrierRate       string `json:"carrierRate"`
	Notes             string `json:"notes"`
}

func (d *Data) slot(f Field) *string {
	switch f {
	case FieldClientID:
		return &d.ClientID
	case FieldRouteFrom:
		return &d.RouteFrom
	case FieldRouteTo:
		return &d.RouteTo
	case FieldDirection:
		return &d.Direction
	case FieldCargoName:
		return &d.CargoName
	case FieldCargoWeight:
		return &d.CargoWeight
	case FieldPackageTypeID:
		return &d.PackageTypeID
	case FieldLoadingDate:
		return &d.LoadingDate
	case FieldUnloadingDate:
		return &d.UnloadingDate
	case FieldCarrierID:
		return &d.CarrierID
	case FieldTransportMode:
		return &d.TransportMode
	case FieldVehicleBodyTypeID:
		return &d.VehicleBodyTypeID
	case FieldLoadingTypeID:
		return &d.LoadingTypeID
	case FieldClientRate:
		return &d.ClientRate
	case FieldCarrierRate:
		return &d.CarrierRate
	case FieldNotes:
		return &d.Notes
	}
	return nil
}

// Get returns the raw value of a field ("" when absent or unknown)
func (d Data) Get(f Field) string {
	if p := d.slot(f); p != nil {
		return *p
	}
	return ""
}

// Set overwrites one field
func (d *Data) Set(f Field, value string) error {
	p := d.slot(f)
	if p == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, string(f))
	}
	*p = value
	return nil
}

// Merge writes harvested values over the current data. Later writes win.
// Unknown keys reject the whole harvest and leave d untouched.
func (d Data) Merge(values Values) (Data, error) {
	out := d
	for key, value := range values {
		if err := out.Set(Field(key), value); err != nil {
			return d, err
		}
	}
	return out, nil
}

// present reports whether a raw value counts as filled in
func present(v string) bool {
	return strings.TrimSpace(v) != ""
}

// DataFromOrder pre-populates wizard data from a stored order
func DataFromOrder(o models.Order) Data {
	return Data{
		ClientID:          o.ClientID,
		RouteFrom:         deref(o.RouteFrom),
		RouteTo:           deref(o.RouteTo),
		Direction:         deref(o.Direction),
		CargoName:         deref(o.CargoName),
		CargoWeight:       formatNumber(o.CargoWeight),
		PackageTypeID:     deref(o.PackageTypeID),
		LoadingDate:       deref(o.LoadingDate),
		UnloadingDate:     deref(o.UnloadingDate),
		CarrierID:         deref(o.CarrierID),
		TransportMode:     deref(o.TransportMode),
		VehicleBodyTypeID: deref(o.VehicleBodyTypeID),
		LoadingTypeID:     deref(o.LoadingTypeID),
		ClientRate:        formatNumber(o.ClientRate),
		CarrierRate:       formatNumber(o.CarrierRate),
		Notes:             deref(o.Notes),
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func formatNumber(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
