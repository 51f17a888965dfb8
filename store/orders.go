// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/freight-desk/ids"
	"github.com/danielhkuo/freight-desk/models"
)

var (
	ErrNotFound       = errors.New("order not found")
	ErrClientRequired = errors.New("client is required")
	ErrUnknownClient  = errors.New("client does not exist")
	ErrUnknownCarrier = errors.New("carrier does not exist")
	ErrInvalidStatus  = errors.New("invalid order status")
)

// ValidStatus reports whether s is a known order status
func ValidStatus(s string) bool {
	switch s {
	case models.StatusDraft, models.StatusActive, models.StatusCompleted, models.StatusCancelled:
		return true
	}
	return false
}

// Orders is the SQL-backed order store
type Orders struct {
	db  *sql.DB
	now func() time.Time
}

func NewOrders(db *sql.DB) *Orders {
	return &Orders{db: db, now: func() time.Time { return time.Now().UTC() }}
}

const orderColumns = `id, client_id, carrier_id, route_from, route_to, cargo_name, cargo_weight,
	loading_date, unloading_date, client_rate, carrier_rate, transport_mode, direction,
	vehicle_body_type_id, loading_type_id, package_type_id, notes, status, created_at, updated_at`

// Create inserts a new order from p
func (o *Orders) Create(ctx context.Context, p models.OrderPayload) (models.Order, error) {
	p, err := o.check(ctx, p)
	if err != nil {
		return models.Order{}, err
	}

	id, err := ids.GenerateID(ids.OrderIDBytes)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to generate order id: %w", err)
	}
	now := o.now()

	_, err = o.db.ExecContext(ctx, `
		INSERT INTO freight_order (`+orderColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
	`, id, p.ClientID, p.CarrierID, p.RouteFrom, p.RouteTo, p.CargoName, p.CargoWeight,
		p.LoadingDate, p.UnloadingDate, p.ClientRate, p.CarrierRate, p.TransportMode, p.Direction,
		p.VehicleBodyTypeID, p.LoadingTypeID, p.PackageTypeID, p.Notes, p.Status, now, now)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to create order: %w", err)
	}

	return orderFromPayload(id, p, now, now), nil
}

// Update overwrites every field of an existing order with p
func (o *Orders) Update(ctx context.Context, id string, p models.OrderPayload) (models.Order, error) {
	p, err := o.check(ctx, p)
	if err != nil {
		return models.Order{}, err
	}

	var createdAt time.Time
	err = o.db.QueryRowContext(ctx, "SELECT created_at FROM freight_order WHERE id = $1", id).Scan(&createdAt)
	if err == sql.ErrNoRows {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to load order: %w", err)
	}

	now := o.now()
	_, err = o.db.ExecContext(ctx, `
		UPDATE freight_order SET
			client_id = $1, carrier_id = $2, route_from = $3, route_to = $4, cargo_name = $5,
			cargo_weight = $6, loading_date = $7, unloading_date = $8, client_rate = $9,
			carrier_rate = $10, transport_mode = $11, direction = $12, vehicle_body_type_id = $13,
			loading_type_id = $14, package_type_id = $15, notes = $16, status = $17, updated_at = $18
		WHERE id = $19
	`, p.ClientID, p.CarrierID, p.RouteFrom, p.RouteTo, p.CargoName,
		p.CargoWeight, p.LoadingDate, p.UnloadingDate, p.ClientRate,
		p.CarrierRate, p.TransportMode, p.Direction, p.VehicleBodyTypeID,
		p.LoadingTypeID, p.PackageTypeID, p.Notes, p.Status, now, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to update order: %w", err)
	}

	return orderFromPayload(id, p, createdAt, now), nil
}

// check normalizes p and verifies the rows it points at exist
func (o *Orders) check(ctx context.Context, p models.OrderPayload) (models.OrderPayload, error) {
	p.ClientID = strings.TrimSpace(p.ClientID)
	if p.ClientID == "" {
		return p, ErrClientRequired
	}
	if p.Status == "" {
		p.Status = models.StatusDraft
	}
	if !ValidStatus(p.Status) {
		return p, fmt.Errorf("%w: %q", ErrInvalidStatus, p.Status)
	}

	ok, err := o.exists(ctx, "client", p.ClientID)
	if err != nil {
		return p, err
	}
	if !ok {
		return p, ErrUnknownClient
	}

	if p.CarrierID != nil {
		ok, err := o.exists(ctx, "carrier", *p.CarrierID)
		if err != nil {
			return p, err
		}
		if !ok {
			return p, ErrUnknownCarrier
		}
	}
	return p, nil
}

func (o *Orders) exists(ctx context.Context, table, id string) (bool, error) {
	var one int
	err := o.db.QueryRowContext(ctx, "SELECT 1 FROM "+table+" WHERE id = $1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up %s: %w", table, err)
	}
	return true, nil
}

// Get loads one order
func (o *Orders) Get(ctx context.Context, id string) (models.Order, error) {
	row := o.db.QueryRowContext(ctx, "SELECT "+orderColumns+" FROM freight_order WHERE id = $1", id)
	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// List returns orders newest first, optionally limited to one status
func (o *Orders) List(ctx context.Context, status string) ([]models.Order, error) {
	query := "SELECT " + orderColumns + " FROM freight_order"
	var args []any
	if status != "" {
		if !ValidStatus(status) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC, id"

	rows, err := o.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Delete removes an order
func (o *Orders) Delete(ctx context.Context, id string) error {
	res, err := o.db.ExecContext(ctx, "DELETE FROM freight_order WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (models.Order, error) {
	var (
		o                                                    models.Order
		carrierID, routeFrom, routeTo, cargoName             sql.NullString
		loadingDate, unloadingDate, transportMode, direction sql.NullString
		vehicleBodyTypeID, loadingTypeID, packageTypeID      sql.NullString
		notes                                                sql.NullString
		cargoWeight, clientRate, carrierRate                 sql.NullFloat64
	)
	err := s.Scan(&o.ID, &o.ClientID, &carrierID, &routeFrom, &routeTo, &cargoName, &cargoWeight,
		&loadingDate, &unloadingDate, &clientRate, &carrierRate, &transportMode, &direction,
		&vehicleBodyTypeID, &loadingTypeID, &packageTypeID, &notes, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}

	o.Number = ids.OrderNumber(o.ID)
	o.CarrierID = nullString(carrierID)
	o.RouteFrom = nullString(routeFrom)
	o.RouteTo = nullString(routeTo)
	o.CargoName = nullString(cargoName)
	o.CargoWeight = nullFloat(cargoWeight)
	o.LoadingDate = nullString(loadingDate)
	o.UnloadingDate = nullString(unloadingDate)
	o.ClientRate = nullFloat(clientRate)
	o.CarrierRate = nullFloat(carrierRate)
	o.TransportMode = nullString(transportMode)
	o.Direction = nullString(direction)
	o.VehicleBodyTypeID = nullString(vehicleBodyTypeID)
	o.LoadingTypeID = nullString(loadingTypeID)
	o.PackageTypeID = nullString(packageTypeID)
	o.Notes = nullString(notes)
	return o, nil
}

func nullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	return &n.String
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	return &n.Float64
}

func orderFromPayload(id string, p models.OrderPayload, createdAt, updatedAt time.Time) models.Order {
	return models.Order{
		ID:                id,
		Number:            ids.OrderNumber(id),
		ClientID:          p.ClientID,
		CarrierID:         p.CarrierID,
		RouteFrom:         p.RouteFrom,
		RouteTo:           p.RouteTo,
		CargoName:         p.CargoName,
		CargoWeight:       p.CargoWeight,
		LoadingDate:       p.LoadingDate,
		UnloadingDate:     p.UnloadingDate,
		ClientRate:        p.ClientRate,
		CarrierRate:       p.CarrierRate,
		TransportMode:     p.TransportMode,
		Direction:         p.Direction,
		VehicleBodyTypeID: p.VehicleBodyTypeID,
		LoadingTypeID:     p.LoadingTypeID,
		PackageTypeID:     p.PackageTypeID,
		Notes:             p.Notes,
		Status:            p.Status,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}
