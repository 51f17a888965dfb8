// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package refdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/danielhkuo/freight-desk/models"
)

// ErrUnknownKind is returned for a reference kind the cache does not hold
var ErrUnknownKind = errors.New("unknown reference kind")

// DefaultSuggestLimit caps Suggest results when no limit is given
const DefaultSuggestLimit = 10

// Snapshot is one complete set of reference lists
type Snapshot struct {
	Clients          []models.Ref
	Carriers         []models.Ref
	VehicleBodyTypes []models.Ref
	LoadingTypes     []models.Ref
	PackageTypes     []models.Ref
}

// Loader fetches a fresh snapshot, usually from the database
type Loader interface {
	Load(ctx context.Context) (Snapshot, error)
}

// Cache holds already-fetched reference lists. Readers always get copies.
type Cache struct {
	mu       sync.RWMutex
	lists    map[string][]models.Ref
	loadedAt time.Time
}

func New() *Cache {
	return &Cache{lists: emptyLists()}
}

func emptyLists() map[string][]models.Ref {
	return map[string][]models.Ref{
		models.RefClients:           {},
		models.RefCarriers:          {},
		models.DictVehicleBodyTypes: {},
		models.DictLoadingTypes:     {},
		models.DictPackageTypes:     {},
	}
}

// Kinds lists every kind the cache serves
func Kinds() []string {
	return []string{
		models.RefClients,
		models.RefCarriers,
		models.DictVehicleBodyTypes,
		models.DictLoadingTypes,
		models.DictPackageTypes,
	}
}

// Refresh replaces all lists at once. On error the previous lists stay.
func (c *Cache) Refresh(ctx context.Context, l Loader) error {
	snap, err := l.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load reference data: %w", err)
	}
	c.Replace(snap)
	return nil
}

// Replace installs a snapshot
func (c *Cache) Replace(snap Snapshot) {
	lists := map[string][]models.Ref{
		models.RefClients:           clone(snap.Clients),
		models.RefCarriers:          clone(snap.Carriers),
		models.DictVehicleBodyTypes: clone(snap.VehicleBodyTypes),
		models.DictLoadingTypes:     clone(snap.LoadingTypes),
		models.DictPackageTypes:     clone(snap.PackageTypes),
	}

	c.mu.Lock()
	c.lists = lists
	c.loadedAt = time.Now()
	c.mu.Unlock()

	slog.Info("reference data refreshed",
		"clients", len(lists[models.RefClients]),
		"carriers", len(lists[models.RefCarriers]),
		"vehicle_body_types", len(lists[models.DictVehicleBodyTypes]),
		"loading_types", len(lists[models.DictLoadingTypes]),
		"package_types", len(lists[models.DictPackageTypes]))
}

// LoadedAt is the time of the last successful refresh
func (c *Cache) LoadedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadedAt
}

// List returns a copy of one kind's entries
func (c *Cache) List(kind string) ([]models.Ref, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	refs, ok := c.lists[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return clone(refs), nil
}

func (c *Cache) get(kind string) []models.Ref {
	refs, _ := c.List(kind)
	return refs
}

func (c *Cache) Clients() []models.Ref          { return c.get(models.RefClients) }
func (c *Cache) Carriers() []models.Ref         { return c.get(models.RefCarriers) }
func (c *Cache) VehicleBodyTypes() []models.Ref { return c.get(models.DictVehicleBodyTypes) }
func (c *Cache) LoadingTypes() []models.Ref     { return c.get(models.DictLoadingTypes) }
func (c *Cache) PackageTypes() []models.Ref     { return c.get(models.DictPackageTypes) }

// Name looks up the display name for an id within a kind
func (c *Cache) Name(kind, id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, r := range c.lists[kind] {
		if r.ID == id {
			return r.Name, true
		}
	}
	return "", false
}

type match struct {
	ref  models.Ref
	rank int // 0 prefix, 1 substring, 2 fuzzy
	dist int
}

// Suggest ranks entries of kind against query: prefix matches first, then
// substring matches, then the rest by edit distance. Matching ignores case.
// An empty query returns the first limit entries in list order.
func (c *Cache) Suggest(kind, query string, limit int) ([]models.Ref, error) {
	refs, err := c.List(kind)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		if len(refs) > limit {
			refs = refs[:limit]
		}
		return refs, nil
	}

	// fuzzy hits further than this are noise
	maxDist := max(len([]rune(q))/2, 1)

	matches := make([]match, 0, len(refs))
	for _, r := range refs {
		name := strings.ToLower(r.Name)
		switch {
		case strings.HasPrefix(name, q):
			matches = append(matches, match{ref: r, rank: 0, dist: len(name) - len(q)})
		case strings.Contains(name, q):
			matches = append(matches, match{ref: r, rank: 1, dist: len(name) - len(q)})
		default:
			// compare against the same-length head of the name so long
			// names are not penalised for their tails
			head := name
			if hr := []rune(name); len(hr) > len([]rune(q)) {
				head = string(hr[:len([]rune(q))])
			}
			d := min(levenshtein.ComputeDistance(q, head), levenshtein.ComputeDistance(q, name))
			if d <= maxDist {
				matches = append(matches, match{ref: r, rank: 2, dist: d})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}
		return strings.ToLower(matches[i].ref.Name) < strings.ToLower(matches[j].ref.Name)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]models.Ref, len(matches))
	for i, m := range matches {
		out[i] = m.ref
	}
	return out, nil
}

func clone(refs []models.Ref) []models.Ref {
	out := make([]models.Ref, len(refs))
	copy(out, refs)
	return out
}
