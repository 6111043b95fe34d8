// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONResponse(rec, http.StatusOK, map[string]string{"status": "ok"})

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %q", body["status"])
	}
}

func TestErrorResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrorResponse(rec, http.StatusNotFound, "unknown prabhag: 99")

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] != "Not Found" {
		t.Errorf("expected error Not Found, got %q", body["error"])
	}
	if body["message"] != "unknown prabhag: 99" {
		t.Errorf("unexpected message: %q", body["message"])
	}
}

func TestParseJSONBody(t *testing.T) {
	payload := bytes.NewBufferString(`{"units": ["2", "5"]}`)
	req := httptest.NewRequest("POST", "/reports/results", payload)

	var dst struct {
		Units []string `json:"units"`
	}
	if err := ParseJSONBody(req, &dst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dst.Units) != 2 || dst.Units[0] != "2" {
		t.Errorf("unexpected units: %v", dst.Units)
	}
}

func TestParseJSONBodyInvalid(t *testing.T) {
	payload := bytes.NewBufferString(`{not json`)
	req := httptest.NewRequest("POST", "/reports/results", payload)

	var dst struct{}
	if err := ParseJSONBody(req, &dst); err == nil {
		t.Error("expected error for invalid JSON body")
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("inner handler should not run for preflight")
	}))

	req := httptest.NewRequest("OPTIONS", "/units", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected origin echoed back, got %q", got)
	}
}

func TestCORSPassesThrough(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/units", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
}
