// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package wizard

import "github.com/danielhkuo/freight-desk/models"

// ReferenceProvider is read-only access to already-fetched reference lists
type ReferenceProvider interface {
	Clients() []models.Ref
	Carriers() []models.Ref
	VehicleBodyTypes() []models.Ref
	LoadingTypes() []models.Ref
	PackageTypes() []models.Ref
}

// Options are the select lists captured when a session opens
type Options struct {
	Clients          []models.Ref `json:"clients"`
	Carriers         []models.Ref `json:"carriers"`
	VehicleBodyTypes []models.Ref `json:"vehicle_body_types"`
	LoadingTypes     []models.Ref `json:"loading_types"`
	PackageTypes     []models.Ref `json:"package_types"`
}

// OptionsFrom snapshots a provider. A nil provider yields empty lists.
func OptionsFrom(p ReferenceProvider) Options {
	if p == nil {
		return Options{
			Clients:          []models.Ref{},
			Carriers:         []models.Ref{},
			VehicleBodyTypes: []models.Ref{},
			LoadingTypes:     []models.Ref{},
			PackageTypes:     []models.Ref{},
		}
	}
	return Options{
		Clients:          p.Clients(),
		Carriers:         p.Carriers(),
		VehicleBodyTypes: p.VehicleBodyTypes(),
		LoadingTypes:     p.LoadingTypes(),
		PackageTypes:     p.PackageTypes(),
	}
}

type SectionView struct {
	ID     Section      `json:"id"`
	Title  string       `json:"title"`
	State  SectionState `json:"state"`
	Fields []Field      `json:"fields"`
}

// View is what the browser renders for a session
type View struct {
	SessionID string        `json:"session_id"`
	Current   Section       `json:"current"`
	Sections  []SectionView `json:"sections"`
	Data      Data          `json:"data"`
	Margin    Margin        `json:"margin"`
	IsEdit    bool          `json:"is_edit"`
	OrderID   string        `json:"order_id,omitempty"`
	CanGoBack bool          `json:"can_go_back"`
	CanGoNext bool          `json:"can_go_next"`
	Options   Options       `json:"options"`
}

// Render projects a state into a view. It has no side effects.
func Render(sessionID string, s State, opts Options) View {
	sections := make([]SectionView, 0, len(SectionOrder))
	for _, id := range SectionOrder {
		sections = append(sections, SectionView{
			ID:     id,
			Title:  id.Title(),
			State:  s.SectionState(id),
			Fields: FieldsOf(id),
		})
	}
	_, hasPrev := s.Current.Prev()
	_, hasNext := s.Current.Next()

	return View{
		SessionID: sessionID,
		Current:   s.Current,
		Sections:  sections,
		Data:      s.Data,
		Margin:    MarginOf(s.Data),
		IsEdit:    s.IsEdit,
		OrderID:   s.OrderID,
		CanGoBack: hasPrev,
		CanGoNext: hasNext,
		Options:   opts,
	}
}
