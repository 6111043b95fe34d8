// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/akshayghatge/prabhag-pulse/cliparse"
	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/store"
)

// SampleCSV covers the interesting shapes: multiple parties per unit, an
// exact tie (B before C), a non-numeric unit, a second category, and an
// unopposed group.
const SampleCSV = `Prabhag,Election_type,Name,Party,Votes
5,General,A,PartyX,120
5,General,B,PartyY,95
5,General,C,PartyX,95
2,General,D,PartyY,40
2,General,E,,10
10,General,F,PartyX,70
10,General,G,PartyY,55
Ward-A,General,H,PartyX,30
2,Mayor,M,PartyY,25
`

// WriteCSV writes contents into a temp file and returns its path.
func WriteCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "election.csv")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("Failed to write test CSV: %v", err)
	}
	return path
}

// OpenStore writes contents to a temp CSV and opens a store over it.
func OpenStore(t *testing.T, contents string) *store.Store {
	t.Helper()
	st := store.Open(WriteCSV(t, contents))
	if len(st.Warnings()) > 0 {
		t.Fatalf("test data produced load warnings: %v", st.Warnings())
	}
	return st
}

// GetTestConfig returns a standard test configuration.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:      4117,
		DataPath:  "election.csv",
		Watermark: "Test Watermark",
	}
}

// StubRenderer is a ChartRenderer double. It returns placeholder bytes for
// every chart unless the unit/category is listed in Fail, and records the
// order of render calls.
type StubRenderer struct {
	Fail  map[string]bool
	Calls []string
}

// ErrStubRender is returned for keys listed in Fail.
var ErrStubRender = errors.New("stub renderer: simulated failure")

func (s *StubRenderer) VoteChart(unit string, entries []models.AggregatedEntry) ([]byte, error) {
	s.Calls = append(s.Calls, unit)
	if s.Fail[unit] {
		return nil, ErrStubRender
	}
	return []byte("stub-png"), nil
}

func (s *StubRenderer) MarginChart(category string, results []models.MarginResult) ([]byte, error) {
	s.Calls = append(s.Calls, category)
	if s.Fail[category] {
		return nil, ErrStubRender
	}
	return []byte("stub-png"), nil
}

// MakeRequest creates an HTTP test request with an optional JSON body.
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code.
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct.
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
