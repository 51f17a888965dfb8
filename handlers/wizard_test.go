// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/testutil"
	"github.com/danielhkuo/freight-desk/wizard"
)

func openWizard(t *testing.T, env *testEnv, body any) WizardResponse {
	t.Helper()
	w := call(env.wiz.Open, testutil.MakeRequest("POST", "/wizard", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp WizardResponse
	testutil.AssertJSON(t, w, &resp)
	return resp
}

func wizardCall(t *testing.T, h http.HandlerFunc, sessionID, action string, body any) (*httptest.ResponseRecorder, WizardResponse) {
	t.Helper()
	w := call(h, testutil.MakeRequest("POST", "/wizard/"+sessionID+"/"+action, body, nil), "id", sessionID)
	var resp WizardResponse
	if w.Header().Get("Content-Type") == "application/json" {
		testutil.AssertJSON(t, w, &resp)
	}
	return w, resp
}

func fields(kv ...string) models.WizardFieldsRequest {
	f := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		f[kv[i]] = kv[i+1]
	}
	return models.WizardFieldsRequest{Fields: f}
}

func TestWizardOpen(t *testing.T) {
	env := newTestEnv(t)
	testutil.CreateTestClient(t, env.db, "Acme")
	env.refs.Refresh(t.Context())

	// empty body is allowed
	w := call(env.wiz.Open, httptest.NewRequest("POST", "/wizard", nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var resp WizardResponse
	testutil.AssertJSON(t, w, &resp)

	v := resp.View
	if v.Current != wizard.SectionClient {
		t.Errorf("Expected client section, got %s", v.Current)
	}
	if len(v.Sections) != 5 || v.Sections[0].State != wizard.StateCurrent {
		t.Errorf("Unexpected sections: %+v", v.Sections)
	}
	if len(v.Options.Clients) != 1 || len(v.Options.VehicleBodyTypes) == 0 {
		t.Errorf("Expected reference options, got %+v", v.Options)
	}
	if v.IsEdit || resp.Closed {
		t.Error("Expected fresh open session")
	}
	if resp.Notices == nil {
		t.Error("Expected notices array")
	}
}

func TestWizardOpen_EditMode(t *testing.T) {
	env := newTestEnv(t)
	clientID := testutil.CreateTestClient(t, env.db, "Acme")
	orderID := testutil.CreateTestOrder(t, env.db, clientID, "Moscow", "SPB", models.StatusActive)

	resp := openWizard(t, env, models.OpenWizardRequest{OrderID: orderID})
	if !resp.View.IsEdit || resp.View.OrderID != orderID {
		t.Fatalf("Expected edit mode for %s, got %+v", orderID, resp.View)
	}
	if resp.View.Data.ClientID != clientID || resp.View.Data.RouteFrom != "Moscow" || resp.View.Data.ClientRate != "1000" {
		t.Errorf("Expected pre-populated data, got %+v", resp.View.Data)
	}
	if resp.View.Margin.Value != 200 {
		t.Errorf("Expected margin 200, got %v", resp.View.Margin.Value)
	}

	w := call(env.wiz.Open, testutil.MakeRequest("POST", "/wizard", models.OpenWizardRequest{OrderID: "missing"}, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestWizardUnknownSession(t *testing.T) {
	env := newTestEnv(t)

	for _, id := range []string{"not-a-uuid", "7d444840-9dc0-11d1-b245-5ffdce74fad2"} {
		w := call(env.wiz.View, testutil.MakeRequest("GET", "/wizard/"+id, nil, nil), "id", id)
		testutil.AssertStatus(t, w, http.StatusNotFound)
		w = call(env.wiz.Close, testutil.MakeRequest("DELETE", "/wizard/"+id, nil, nil), "id", id)
		testutil.AssertStatus(t, w, http.StatusNotFound)
	}
}

func TestWizardNext_Gate(t *testing.T) {
	env := newTestEnv(t)
	clientID := testutil.CreateTestClient(t, env.db, "Acme")
	sid := openWizard(t, env, nil).View.SessionID

	w, resp := wizardCall(t, env.wiz.Next, sid, "next", fields("clientId", ""))
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
	if resp.View.Current != wizard.SectionClient || resp.View.Sections[0].State != wizard.StateError {
		t.Errorf("Expected client section in error, got %+v", resp.View.Sections[0])
	}
	if len(resp.Notices) != 1 || resp.Notices[0].Severity != "error" {
		t.Errorf("Expected one error notice, got %+v", resp.Notices)
	}

	// sidebar still works while client is invalid
	w, resp = wizardCall(t, env.wiz.GoTo, sid, "goto", models.WizardGotoRequest{Section: "finance"})
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Current != wizard.SectionFinance {
		t.Errorf("Expected finance, got %s", resp.View.Current)
	}

	w, resp = wizardCall(t, env.wiz.GoTo, sid, "goto", models.WizardGotoRequest{Section: "client", Fields: map[string]string{"clientRate": "5000"}})
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Data.ClientRate != "5000" {
		t.Error("Expected goto to harvest finance fields before leaving")
	}

	w, resp = wizardCall(t, env.wiz.Next, sid, "next", fields("clientId", clientID))
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Current != wizard.SectionRoute || resp.View.Sections[0].State != wizard.StateComplete {
		t.Errorf("Expected route with client complete, got %+v", resp.View)
	}

	w, resp = wizardCall(t, env.wiz.Back, sid, "back", fields("routeFrom", "Moscow"))
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Current != wizard.SectionClient || resp.View.Data.RouteFrom != "Moscow" {
		t.Errorf("Expected back to client with route kept, got %+v", resp.View)
	}
}

func TestWizardBadInput(t *testing.T) {
	env := newTestEnv(t)
	sid := openWizard(t, env, nil).View.SessionID

	w, _ := wizardCall(t, env.wiz.Fields, sid, "fields", fields("colour", "red"))
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w, _ = wizardCall(t, env.wiz.GoTo, sid, "goto", models.WizardGotoRequest{Section: "billing"})
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = call(env.wiz.Fields, httptest.NewRequest("POST", "/wizard/"+sid+"/fields", nil), "id", sid)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestWizardFields_NumericValues(t *testing.T) {
	env := newTestEnv(t)
	sid := openWizard(t, env, nil).View.SessionID

	body := map[string]any{"fields": map[string]any{
		"clientRate":  50000,
		"carrierRate": 40000.5,
		"notes":       nil,
	}}
	w, resp := wizardCall(t, env.wiz.Fields, sid, "fields", body)
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Data.ClientRate != "50000" || resp.View.Data.CarrierRate != "40000.5" {
		t.Errorf("Expected numbers kept as text, got %q and %q", resp.View.Data.ClientRate, resp.View.Data.CarrierRate)
	}
	if resp.View.Margin.Value != 9999.5 {
		t.Errorf("Expected margin 9999.5, got %v", resp.View.Margin.Value)
	}

	// nested values are not form inputs
	body = map[string]any{"fields": map[string]any{"clientRate": []int{1}}}
	w, _ = wizardCall(t, env.wiz.Fields, sid, "fields", body)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestWizardFields_OverflowingRate(t *testing.T) {
	env := newTestEnv(t)
	sid := openWizard(t, env, nil).View.SessionID

	w, resp := wizardCall(t, env.wiz.Fields, sid, "fields", fields("clientRate", "1e400"))
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Margin.Value != 0 {
		t.Errorf("Expected overflowing rate to count as zero, got %v", resp.View.Margin.Value)
	}

	// the session stays readable so the rate can be corrected
	w = call(env.wiz.View, testutil.MakeRequest("GET", "/wizard/"+sid, nil, nil), "id", sid)
	testutil.AssertStatus(t, w, http.StatusOK)
	var view WizardResponse
	testutil.AssertJSON(t, w, &view)
	if view.View.Data.ClientRate != "1e400" {
		t.Errorf("Expected raw input kept, got %q", view.View.Data.ClientRate)
	}
}

func TestWizardSubmit_RouteMissing(t *testing.T) {
	env := newTestEnv(t)
	clientID := testutil.CreateTestClient(t, env.db, "Acme")
	sid := openWizard(t, env, nil).View.SessionID

	wizardCall(t, env.wiz.Next, sid, "next", fields("clientId", clientID))
	w, resp := wizardCall(t, env.wiz.GoTo, sid, "goto", models.WizardGotoRequest{Section: "finance", Fields: map[string]string{"routeFrom": "Moscow"}})
	testutil.AssertStatus(t, w, http.StatusOK)

	w, resp = wizardCall(t, env.wiz.Submit, sid, "submit", nil)
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
	if resp.View.Current != wizard.SectionRoute {
		t.Errorf("Expected jump to route, got %s", resp.View.Current)
	}
	if resp.Closed {
		t.Error("Expected session to stay open")
	}
	if len(resp.Notices) != 1 {
		t.Errorf("Expected a notice, got %+v", resp.Notices)
	}

	var count int
	env.db.QueryRow("SELECT COUNT(*) FROM freight_order").Scan(&count)
	if count != 0 {
		t.Errorf("Expected no order, found %d", count)
	}
}

func TestWizardSubmit_UnknownClientKeepsSession(t *testing.T) {
	env := newTestEnv(t)
	sid := openWizard(t, env, nil).View.SessionID

	w, resp := wizardCall(t, env.wiz.Submit, sid, "submit", fields("clientId", "ghost", "routeFrom", "A", "routeTo", "B"))
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)
	if resp.Closed {
		t.Error("Expected session to stay open")
	}
	if len(resp.Notices) != 1 || resp.Notices[0].Message != "client does not exist" {
		t.Errorf("Expected the store message verbatim, got %+v", resp.Notices)
	}
	if resp.View.Data.ClientID != "ghost" || resp.View.Data.RouteTo != "B" {
		t.Error("Expected data to be kept")
	}
	if env.version.Current() != 0 {
		t.Error("Expected no list refresh")
	}
}

func TestWizardDraft(t *testing.T) {
	env := newTestEnv(t)
	clientID := testutil.CreateTestClient(t, env.db, "Acme")
	sid := openWizard(t, env, nil).View.SessionID

	w, resp := wizardCall(t, env.wiz.SaveDraft, sid, "draft", fields("clientId", ""))
	testutil.AssertStatus(t, w, http.StatusUnprocessableEntity)

	w, resp = wizardCall(t, env.wiz.SaveDraft, sid, "draft", fields("clientId", clientID))
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.Closed || resp.Order == nil || resp.Order.Status != models.StatusDraft {
		t.Fatalf("Expected open session with a draft order, got %+v", resp)
	}
	if resp.View.OrderID != resp.Order.ID {
		t.Errorf("Expected session bound to draft %s, got %q", resp.Order.ID, resp.View.OrderID)
	}

	// saving again overwrites the same draft
	w, resp = wizardCall(t, env.wiz.SaveDraft, sid, "draft", fields("cargoName", "Steel"))
	testutil.AssertStatus(t, w, http.StatusOK)

	var count int
	var cargo string
	env.db.QueryRow("SELECT COUNT(*) FROM freight_order").Scan(&count)
	env.db.QueryRow("SELECT cargo_name FROM freight_order").Scan(&cargo)
	if count != 1 || cargo != "Steel" {
		t.Errorf("Expected one draft with cargo Steel, got %d / %q", count, cargo)
	}
	if env.version.Current() != 2 {
		t.Errorf("Expected two list refreshes, got %d", env.version.Current())
	}
}

func TestWizardClose(t *testing.T) {
	env := newTestEnv(t)
	sid := openWizard(t, env, nil).View.SessionID

	w := call(env.wiz.Close, testutil.MakeRequest("DELETE", "/wizard/"+sid, nil, nil), "id", sid)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = call(env.wiz.View, testutil.MakeRequest("GET", "/wizard/"+sid, nil, nil), "id", sid)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	if env.manager.Len() != 0 {
		t.Errorf("Expected no open sessions, got %d", env.manager.Len())
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, http.StatusOK},
		{wizard.ErrSessionClosed, http.StatusGone},
		{wizard.ErrSessionUnknown, http.StatusNotFound},
		{wizard.ErrSubmitInFlight, http.StatusConflict},
		{wizard.ErrUnknownField, http.StatusBadRequest},
		{wizard.ErrClientRequired, http.StatusUnprocessableEntity},
		{wizard.ErrRouteRequired, http.StatusUnprocessableEntity},
		{&wizard.StoreError{Err: http.ErrHandlerTimeout}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
