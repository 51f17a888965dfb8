// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Freight Desk API.

# Route Registration

NewServices builds the shared collaborators (reference cache, order store,
list version, wizard manager) and NewRouter registers every endpoint:

	svc := router.NewServices(ctx, db, cfg)
	mux := router.NewRouter(db, cfg, svc)

# Endpoints

Health:

	GET /health

Reference data:

	GET/POST          /clients, /carriers
	GET/PUT/DELETE    /clients/{id}, /carriers/{id}
	GET/POST          /contacts
	DELETE            /contacts/{id}
	GET/POST          /dictionaries/{kind}
	DELETE            /dictionaries/{kind}/{id}
	GET               /refdata/{kind}/suggest?q=

Orders:

	GET  /orders?status=  - List with margin, sets X-List-Version
	POST /orders          - Create directly from a payload
	GET/PUT/DELETE /orders/{id}

Order wizard:

	POST   /wizard             - Open (optional order_id)
	GET    /wizard/{id}        - Current view
	POST   /wizard/{id}/fields - Harvest without navigating
	POST   /wizard/{id}/goto   - Sidebar jump
	POST   /wizard/{id}/next   - Validated next
	POST   /wizard/{id}/back   - Previous section
	POST   /wizard/{id}/submit - Create the order
	POST   /wizard/{id}/draft  - Save as draft
	DELETE /wizard/{id}        - Cancel
*/
package router
