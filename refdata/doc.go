// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package refdata caches the reference lists the order wizard selects from:
clients, carriers, vehicle body types, loading types and package types.

	cache := refdata.New()
	err := cache.Refresh(ctx, store.NewReferences(conn))
	clients := cache.Clients() // a copy

The wizard reads the cache through its ReferenceProvider interface and never
writes to it. Handlers that change reference rows call Refresh afterwards.

Suggest ranks a kind's entries against a typed query (prefix, then substring,
then Levenshtein distance):

	refs, err := cache.Suggest(models.RefClients, "acme", 5)
*/
package refdata
