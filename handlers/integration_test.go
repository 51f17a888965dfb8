// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"testing"

	"github.com/danielhkuo/freight-desk/models"
	"github.com/danielhkuo/freight-desk/testutil"
	"github.com/danielhkuo/freight-desk/wizard"
)

// TestFullWizardWorkflow walks an order through the desk end to end:
// 1. Create a client and a carrier
// 2. Open the wizard and fill each section with Next
// 3. Check the live margin on finance
// 4. Submit and verify the session closes
// 5. Find the order in the list with a bumped list version
// 6. Reopen it in edit mode and change the rates
func TestFullWizardWorkflow(t *testing.T) {
	env := newTestEnv(t)

	// Step 1
	w := call(env.clients.CreateClient, testutil.MakeRequest("POST", "/clients", models.ClientRequest{Name: "Acme"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var client models.CreatedResponse
	testutil.AssertJSON(t, w, &client)

	w = call(env.carriers.CreateCarrier, testutil.MakeRequest("POST", "/carriers", models.CarrierRequest{Name: "FastTrucks"}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)
	var carrier models.CreatedResponse
	testutil.AssertJSON(t, w, &carrier)
	t.Logf("Step 1 - client %s, carrier %s", client.ID, carrier.ID)

	// Step 2
	open := openWizard(t, env, nil)
	sid := open.View.SessionID
	if len(open.View.Options.Clients) != 1 || len(open.View.Options.Carriers) != 1 {
		t.Fatalf("Step 2 - Expected new client and carrier in options, got %+v", open.View.Options)
	}
	tent := open.View.Options.VehicleBodyTypes[0].ID

	steps := []struct {
		values models.WizardFieldsRequest
		want   wizard.Section
	}{
		{fields("clientId", client.ID), wizard.SectionRoute},
		{fields("routeFrom", "Moscow", "routeTo", "SPB", "direction", "north-west"), wizard.SectionCargo},
		{fields("cargoName", "Steel coils", "cargoWeight", "20,5", "loadingDate", "2026-10-20"), wizard.SectionTransport},
		{fields("carrierId", carrier.ID, "transportMode", models.TransportModeFTL, "vehicleBodyTypeId", tent), wizard.SectionFinance},
	}
	for i, step := range steps {
		w, resp := wizardCall(t, env.wiz.Next, sid, "next", step.values)
		testutil.AssertStatus(t, w, http.StatusOK)
		if resp.View.Current != step.want {
			t.Fatalf("Step 2.%d - Expected %s, got %s", i, step.want, resp.View.Current)
		}
	}

	// Step 3
	w, resp := wizardCall(t, env.wiz.Fields, sid, "fields", fields("clientRate", "100000", "carrierRate", "75000"))
	testutil.AssertStatus(t, w, http.StatusOK)
	if resp.View.Margin.Value != 25000 || resp.View.Margin.Text != "25,000" || resp.View.Margin.Negative {
		t.Errorf("Step 3 - Unexpected margin %+v", resp.View.Margin)
	}
	for _, sec := range resp.View.Sections[:4] {
		if sec.State != wizard.StateComplete {
			t.Errorf("Step 3 - Expected %s complete, got %s", sec.ID, sec.State)
		}
	}

	// Step 4
	w, resp = wizardCall(t, env.wiz.Submit, sid, "submit", fields("notes", "fragile"))
	testutil.AssertStatus(t, w, http.StatusCreated)
	if !resp.Closed || resp.Order == nil {
		t.Fatalf("Step 4 - Expected closed session with order, got %+v", resp)
	}
	if len(resp.Notices) != 1 || resp.Notices[0].Severity != "success" {
		t.Errorf("Step 4 - Expected success notice, got %+v", resp.Notices)
	}
	orderID := resp.Order.ID

	w = call(env.wiz.View, testutil.MakeRequest("GET", "/wizard/"+sid, nil, nil), "id", sid)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Step 5
	w = call(env.orderH.ListOrders, testutil.MakeRequest("GET", "/orders", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	if v := w.Header().Get(ListVersionHeader); v != "1" {
		t.Errorf("Step 5 - Expected list version 1, got %q", v)
	}
	var list models.ListResponse[models.OrderSummary]
	testutil.AssertJSON(t, w, &list)
	if len(list.Items) != 1 {
		t.Fatalf("Step 5 - Expected 1 order, got %d", len(list.Items))
	}
	o := list.Items[0]
	if o.ID != orderID || o.Status != models.StatusDraft || o.MarginText != "25,000" {
		t.Errorf("Step 5 - Unexpected order %+v", o)
	}
	if o.CargoWeight == nil || *o.CargoWeight != 20.5 {
		t.Errorf("Step 5 - Expected cargo weight 20.5, got %v", o.CargoWeight)
	}
	if o.CarrierID == nil || *o.CarrierID != carrier.ID || o.TransportMode == nil || *o.TransportMode != models.TransportModeFTL {
		t.Errorf("Step 5 - Expected carrier and transport mode to be stored")
	}
	if o.Notes == nil || *o.Notes != "fragile" {
		t.Errorf("Step 5 - Expected notes harvested on submit")
	}

	// Step 6
	edit := openWizard(t, env, models.OpenWizardRequest{OrderID: orderID})
	if !edit.View.IsEdit || edit.View.Data.CargoWeight != "20.5" {
		t.Fatalf("Step 6 - Expected edit view with data, got %+v", edit.View)
	}
	w, resp = wizardCall(t, env.wiz.GoTo, edit.View.SessionID, "goto", models.WizardGotoRequest{Section: "finance"})
	testutil.AssertStatus(t, w, http.StatusOK)
	w, resp = wizardCall(t, env.wiz.Submit, edit.View.SessionID, "submit", fields("carrierRate", "90000"))
	testutil.AssertStatus(t, w, http.StatusCreated)
	if resp.Notices[0].Message != "Order updated" {
		t.Errorf("Step 6 - Expected update notice, got %+v", resp.Notices)
	}

	updated, err := env.orders.Get(t.Context(), orderID)
	if err != nil {
		t.Fatalf("Step 6 - Get failed: %v", err)
	}
	if updated.CarrierRate == nil || *updated.CarrierRate != 90000 {
		t.Errorf("Step 6 - Expected carrier rate 90000, got %v", updated.CarrierRate)
	}

	var count int
	env.db.QueryRow("SELECT COUNT(*) FROM freight_order").Scan(&count)
	if count != 1 {
		t.Errorf("Step 6 - Expected edit to update in place, found %d orders", count)
	}
}
