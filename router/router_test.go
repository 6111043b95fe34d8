// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akshayghatge/prabhag-pulse/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestRootEndpoint(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "prabhag-pulse API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	routes := []struct {
		method string
		path   string
	}{
		{"GET", "/units"},
		{"GET", "/units/5"},
		{"GET", "/table"},
		{"GET", "/margins"},
		{"GET", "/insights"},
		{"POST", "/reload"},
	}

	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code == http.StatusNotFound || w.Code == http.StatusMethodNotAllowed {
			t.Errorf("Route %s %s not registered (got %d)", route.method, route.path, w.Code)
		}
	}
}

func TestUnitPathValue(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	// The mux extracts {id} for the handler; an unknown unit is a 404 from
	// the handler, not the router.
	req := httptest.NewRequest("GET", "/units/does-not-exist", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown unit, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	// The root route is exact-match, so a GET on a POST-only path must
	// fall through to a 405, not the root handler.
	req := httptest.NewRequest("GET", "/reports/results", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405 for GET on a POST route, got %d", w.Code)
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/no-such-route", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for an unregistered path, got %d", w.Code)
	}
}
