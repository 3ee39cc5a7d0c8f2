package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/weallth/weallth-backend/internal/service"
	"github.com/weallth/weallth-backend/internal/testutil"
	"github.com/weallth/weallth-backend/internal/websocket"
)

func newGoalHandler(repo *testutil.MockGoalRepository) *GoalHandler {
	plans := service.NewPlanService()
	goals := service.NewGoalService(repo, plans)
	return NewGoalHandler(goals, plans, &websocket.NoOpPublisher{})
}

func TestCreateGoalEndpoint(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"name":"House deposit","targetAmount":100000,"timelineMonths":120,"currentInvestment":0}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals", body)
	asUser(c, "user-1")

	if err := h.CreateGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp GoalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected an id in the response")
	}
	if resp.MonthlySaving != "435.00" {
		t.Errorf("expected monthly saving 435.00, got %s", resp.MonthlySaving)
	}
	if resp.Status != "active" {
		t.Errorf("expected status active, got %s", resp.Status)
	}
}

func TestCreateGoalEndpointValidation(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"name":"","targetAmount":1000,"timelineMonths":12}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals", body)
	asUser(c, "user-1")

	if err := h.CreateGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if problem.Type != ErrorTypeValidation {
		t.Errorf("expected validation problem type, got %s", problem.Type)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "name" {
		t.Errorf("expected a name field error, got %+v", problem.Errors)
	}
}

func TestCreateGoalEndpointUnauthorized(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"name":"Car","targetAmount":1000,"timelineMonths":12}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals", body)

	if err := h.CreateGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestGetGoalsEndpoint(t *testing.T) {
	repo := testutil.NewMockGoalRepository()
	h := newGoalHandler(repo)

	// Seed through the handler to exercise the full path
	body := `{"name":"Trip","targetAmount":5000,"timelineMonths":6}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/goals", body)
	asUser(c, "user-1")
	if err := h.CreateGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/goals", "")
	asUser(c, "user-1")
	if err := h.GetGoals(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var goals []GoalResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &goals); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(goals) != 1 || goals[0].Name != "Trip" {
		t.Errorf("expected one goal named Trip, got %+v", goals)
	}

	// Another user sees an empty array, not null
	c, rec = newTestContext(http.MethodGet, "/api/v1/goals", "")
	asUser(c, "user-2")
	if err := h.GetGoals(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Errorf("expected empty JSON array, got %q", body)
	}
}

func TestGetGoalEndpointNotFound(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	c, rec := newTestContext(http.MethodGet, "/api/v1/goals/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	asUser(c, "user-1")

	if err := h.GetGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteGoalEndpointIdempotent(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	// Deleting a goal that never existed still succeeds
	c, rec := newTestContext(http.MethodDelete, "/api/v1/goals/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	asUser(c, "user-1")

	if err := h.DeleteGoal(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}

func TestComputePlanEndpoint(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"targetAmount":100000,"timelineMonths":120,"currentInvestment":0}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals/plan", body)

	if err := h.ComputePlan(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var plan PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if plan.SIPAmount != "435.00" {
		t.Errorf("expected SIP 435.00, got %s", plan.SIPAmount)
	}
	if plan.MonthlySavingLinear != "833.00" {
		t.Errorf("expected linear 833.00, got %s", plan.MonthlySavingLinear)
	}
}

func TestComputePlanEndpointInvalidTimeline(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"targetAmount":100000,"timelineMonths":0}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals/plan", body)

	if err := h.ComputePlan(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(problem.Errors) != 1 || problem.Errors[0].Field != "timelineMonths" {
		t.Errorf("expected a timelineMonths field error, got %+v", problem.Errors)
	}
}

func TestComputePlanEndpointMalformedBody(t *testing.T) {
	h := newGoalHandler(testutil.NewMockGoalRepository())

	body := `{"targetAmount":"not-a-number","timelineMonths":12}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/goals/plan", body)

	if err := h.ComputePlan(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
