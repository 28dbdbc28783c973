package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tirasundara/lotto-reward/internal/handlers"
	"github.com/tirasundara/lotto-reward/internal/report"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := handlers.NewRewardHandler(decimal.NewFromInt(1000), nil, zerolog.Nop())
	h.RegisterRoutes(router)
	return router
}

func postRewards(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rewards", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateRewards(t *testing.T) {
	router := newRouter()

	body := `{
		"winning_numbers": [1, 2, 3, 4, 5, 6],
		"bonus_number": 7,
		"tickets": [[1,2,3,4,5,6],[1,2,3,4,5,7],[1,2,3,4,5,8],[1,2,3,9,10,11],[9,10,11,12,13,14]]
	}`
	w := postRewards(t, router, body)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary report.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if summary.TotalPrize != "2031505000" {
		t.Errorf("Expected total prize 2031505000, got %s", summary.TotalPrize)
	}
	if summary.RateOfReturn != "40630100.0" {
		t.Errorf("Expected rate 40630100.0, got %s", summary.RateOfReturn)
	}
	if len(summary.Rows) != 6 || summary.Rows[3] != "5개 일치, 보너스 볼 일치 (30,000,000원) - 1개" {
		t.Errorf("Unexpected rows %v", summary.Rows)
	}
	if summary.Statistics["5+1"] != 1 || summary.Statistics["3"] != 1 || summary.Statistics["4"] != 0 {
		t.Errorf("Unexpected statistics %v", summary.Statistics)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	for _, key := range []string{"statistics", "tiers", "rows", "ticket_count", "total_prize", "total_spent", "rate_of_return", "empty_purchase"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("Expected response key %q, got %s", key, w.Body.String())
		}
	}

	var stats map[string]int
	if err := json.Unmarshal(fields["statistics"], &stats); err != nil {
		t.Fatalf("Failed to decode statistics: %v", err)
	}
	if len(stats) != 5 || stats["6"] != 1 || stats["5"] != 1 {
		t.Errorf("Expected statistics for all five tiers, got %v", stats)
	}
}

func TestCalculateRewards_EmptyTickets(t *testing.T) {
	w := postRewards(t, newRouter(), `{"winning_numbers":[1,2,3,4,5,6],"bonus_number":7,"tickets":[]}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"empty_purchase":true`) {
		t.Errorf("Expected empty purchase flag, got %s", w.Body.String())
	}
}

func TestCalculateRewards_BadRequests(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"winning_numbers":`},
		{name: "bonus among winning numbers", body: `{"winning_numbers":[1,2,3,4,5,6],"bonus_number":6,"tickets":[]}`},
		{name: "short ticket", body: `{"winning_numbers":[1,2,3,4,5,6],"bonus_number":7,"tickets":[[1,2,3]]}`},
		{name: "missing bonus", body: `{"winning_numbers":[1,2,3,4,5,6],"tickets":[]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := postRewards(t, router, tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	newRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
