// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package store is the SQL-backed order store used by the wizard and the
// orders handlers, plus the loader that feeds the reference data cache.
//
// Orders.Create and Orders.Update reject a payload with no client
// (ErrClientRequired) or one whose client or carrier row is missing
// (ErrUnknownClient, ErrUnknownCarrier). An empty status means draft.
package store
