package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/nutrivio/PlanAppBack/internal/models"
	"github.com/nutrivio/PlanAppBack/internal/services"
)

type stubSentPlanReader struct {
	plan *models.DietPlan
	err  error
}

func (r *stubSentPlanReader) GetSentPlan(_ context.Context, _ string) (*models.DietPlan, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.plan, nil
}

func newPortalTestApp(reader *stubSentPlanReader) *fiber.App {
	handler := &PortalHandler{service: reader}
	app := fiber.New()
	app.Get("/api/portal/plans/:id", handler.GetPlan)
	return app
}

func TestPortalGetPlanReturnsSentPlan(t *testing.T) {
	app := newPortalTestApp(&stubSentPlanReader{
		plan: &models.DietPlan{ID: "plan-1", Status: models.PlanStatusSent},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/portal/plans/plan-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload struct {
		Plan models.DietPlan `json:"plan"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Plan.ID != "plan-1" {
		t.Fatalf("unexpected plan: %+v", payload.Plan)
	}
}

func TestPortalGetPlanHidesUnsentPlans(t *testing.T) {
	app := newPortalTestApp(&stubSentPlanReader{err: services.ErrPlanNotAvailable})

	req := httptest.NewRequest(http.MethodGet, "/api/portal/plans/plan-1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for an unsent plan, got %d", resp.StatusCode)
	}
}
