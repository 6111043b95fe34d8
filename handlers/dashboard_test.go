// Copyright (c) 2025 Akshay Ghatge.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"testing"

	"github.com/akshayghatge/prabhag-pulse/models"
	"github.com/akshayghatge/prabhag-pulse/store"
	"github.com/akshayghatge/prabhag-pulse/testutil"
)

func TestHealth(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	rec := httptest.NewRecorder()
	h.Health(rec, testutil.MakeRequest("GET", "/health", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, rec, &resp)
	if resp.Status != "ok" {
		t.Errorf("expected status ok, got %q", resp.Status)
	}
	if resp.Rows != 9 {
		t.Errorf("expected 9 rows, got %d", resp.Rows)
	}
	if resp.Warnings != 0 {
		t.Errorf("expected 0 warnings, got %d", resp.Warnings)
	}
}

func TestHealthDegraded(t *testing.T) {
	st := store.Open("/nonexistent/election.csv")
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	rec := httptest.NewRecorder()
	h.Health(rec, testutil.MakeRequest("GET", "/health", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.HealthResponse
	testutil.AssertJSON(t, rec, &resp)
	if resp.Status != "degraded" {
		t.Errorf("expected status degraded, got %q", resp.Status)
	}
	if resp.Rows != 0 {
		t.Errorf("expected 0 rows, got %d", resp.Rows)
	}
}

func TestListUnits(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	rec := httptest.NewRecorder()
	h.ListUnits(rec, testutil.MakeRequest("GET", "/units", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.UnitsResponse
	testutil.AssertJSON(t, rec, &resp)

	wantUnits := []string{"2", "5", "10", "Ward-A"}
	if !reflect.DeepEqual(resp.Units, wantUnits) {
		t.Errorf("expected units in natural order %v, got %v", wantUnits, resp.Units)
	}

	wantParties := []string{"Independent", "PartyX", "PartyY"}
	if !reflect.DeepEqual(resp.Parties, wantParties) {
		t.Errorf("expected parties %v, got %v", wantParties, resp.Parties)
	}

	wantCategories := []string{"General", "Mayor"}
	if !reflect.DeepEqual(resp.Categories, wantCategories) {
		t.Errorf("expected categories %v, got %v", wantCategories, resp.Categories)
	}
}

func TestGetUnit(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/units/5", nil)
	req.SetPathValue("id", "5")
	rec := httptest.NewRecorder()
	h.GetUnit(rec, req)

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.UnitDetailResponse
	testutil.AssertJSON(t, rec, &resp)
	if resp.Unit != "5" {
		t.Errorf("expected unit 5, got %q", resp.Unit)
	}
	if len(resp.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(resp.Entries))
	}

	// Party ascending, then votes descending within a party.
	if resp.Entries[0].Name != "A" || resp.Entries[0].TotalVotes != 120 {
		t.Errorf("unexpected first entry: %+v", resp.Entries[0])
	}
	if resp.Entries[1].Name != "C" || resp.Entries[2].Name != "B" {
		t.Errorf("unexpected entry order: %+v", resp.Entries)
	}
}

func TestGetUnitNotFound(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/units/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.GetUnit(rec, req)

	testutil.AssertStatus(t, rec, http.StatusNotFound)
}

func TestGetTable(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	rec := httptest.NewRecorder()
	h.GetTable(rec, testutil.MakeRequest("GET", "/table", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.TableResponse
	testutil.AssertJSON(t, rec, &resp)
	if len(resp.Rows) != 9 {
		t.Fatalf("expected 9 aggregated rows, got %d", len(resp.Rows))
	}

	// Rows come back in natural unit order: all of unit 2 first.
	if resp.Rows[0].Unit != "2" {
		t.Errorf("expected first row from unit 2, got %q", resp.Rows[0].Unit)
	}
	last := resp.Rows[len(resp.Rows)-1]
	if last.Unit != "Ward-A" {
		t.Errorf("expected last row from Ward-A, got %q", last.Unit)
	}
}

func TestReloadUnchanged(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	rec := httptest.NewRecorder()
	h.Reload(rec, testutil.MakeRequest("POST", "/reload", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.ReloadResponse
	testutil.AssertJSON(t, rec, &resp)
	if resp.Reloaded {
		t.Error("expected no reload for an unchanged source")
	}
	if resp.Rows != 9 {
		t.Errorf("expected 9 rows, got %d", resp.Rows)
	}
}

func TestReloadAfterChange(t *testing.T) {
	st := testutil.OpenStore(t, testutil.SampleCSV)
	h := NewDashboardHandler(st, testutil.GetTestConfig())

	extended := testutil.SampleCSV + "7,General,Z,PartyX,15\n"
	if err := os.WriteFile(st.Path(), []byte(extended), 0o644); err != nil {
		t.Fatalf("failed to rewrite source: %v", err)
	}

	rec := httptest.NewRecorder()
	h.Reload(rec, testutil.MakeRequest("POST", "/reload", nil))

	testutil.AssertStatus(t, rec, http.StatusOK)

	var resp models.ReloadResponse
	testutil.AssertJSON(t, rec, &resp)
	if !resp.Reloaded {
		t.Error("expected reload after the source grew")
	}
	if resp.Rows != 10 {
		t.Errorf("expected 10 rows after reload, got %d", resp.Rows)
	}
}
