// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, client_ip) and completion (status,
duration_ms).

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Reflects the request origin and exposes X-List-Version so the order list
can tell when it is stale.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

ParseJSONBody rejects unknown fields and bodies over MaxBodyBytes.
ParseOptionalJSONBody accepts an empty body.

	var req models.ClientRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
