// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/freight-desk/models"
)

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"id":"123"}`},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"NotFound", http.StatusNotFound, "not found"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/orders", nil)
			w := httptest.NewRecorder()
			handler(w, req)

			if !called {
				t.Error("Expected handler to be called")
			}
			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	rec.Write([]byte("implicit"))
	if rec.status != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.status)
	}

	rec.WriteHeader(http.StatusTeapot)
	if rec.status != http.StatusTeapot {
		t.Errorf("Expected recorded 418, got %d", rec.status)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       any
		expected   string
	}{
		{
			name:       "created response",
			statusCode: http.StatusCreated,
			data:       models.CreatedResponse{ID: "abc123"},
			expected:   `{"id":"abc123"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "name is required"},
			expected:   `{"error":"Bad Request","message":"name is required"}`,
		},
		{
			name:       "list response",
			statusCode: http.StatusOK,
			data:       models.ListResponse[models.Ref]{Items: []models.Ref{{ID: "v1", Name: "Tent"}}},
			expected:   `{"items":[{"id":"v1","name":"Tent"}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", ct)
			}
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode    int
		message       string
		expectedError string
	}{
		{http.StatusBadRequest, "name is required", "Bad Request"},
		{http.StatusNotFound, "Order not found", "Not Found"},
		{http.StatusConflict, "submission already in progress", "Conflict"},
		{http.StatusUnprocessableEntity, "select a client", "Unprocessable Entity"},
		{http.StatusInternalServerError, "Database error", "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.expectedError, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Acme","inn":"7701"}`))

		var parsed models.ClientRequest
		if err := ParseJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Name != "Acme" || parsed.INN != "7701" {
			t.Errorf("Unexpected parse result: %+v", parsed)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.ClientRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.ClientRequest
		if err := ParseJSONBody(req, &parsed); !errors.Is(err, ErrEmptyBody) {
			t.Errorf("Expected ErrEmptyBody, got %v", err)
		}
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Acme","colour":"red"}`))

		var parsed models.ClientRequest
		if err := ParseJSONBody(req, &parsed); err == nil {
			t.Error("Expected error for unknown field")
		}
	})

	t.Run("optional body may be empty", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		parsed := models.OpenWizardRequest{OrderID: "keep"}
		if err := ParseOptionalJSONBody(req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.OrderID != "keep" {
			t.Error("Expected empty body to leave target untouched")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})
	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/wizard", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
		for _, method := range []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"} {
			if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
	})

	t.Run("regular request exposes list version", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders", nil)
		req.Header.Set("Origin", "https://desk.example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Expose-Headers") != "X-List-Version" {
			t.Error("Expected X-List-Version to be exposed")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/orders", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{"X-Forwarded-For single IP", map[string]string{"X-Forwarded-For": "192.168.1.100"}, "10.0.0.1:12345", "192.168.1.100"},
		{"X-Forwarded-For chain", map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18"}, "127.0.0.1:12345", "203.0.113.195"},
		{"X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "203.0.113.50"},
		{"X-Forwarded-For wins over X-Real-IP", map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"}, "10.0.0.1:12345", "192.168.1.100"},
		{"RemoteAddr with port", nil, "192.168.1.50:54321", "192.168.1.50"},
		{"RemoteAddr without port", nil, "192.168.1.50", "192.168.1.50"},
		{"IPv6 RemoteAddr with port", nil, "[::1]:12345", "::1"},
		{"IPv6 in X-Forwarded-For", map[string]string{"X-Forwarded-For": "2001:db8::1"}, "127.0.0.1:12345", "2001:db8::1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, got)
			}
		})
	}
}
