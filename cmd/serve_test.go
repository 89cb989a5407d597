package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makao-group/advisor-cli/internal/guardrail"
	"github.com/makao-group/advisor-cli/internal/model"
	"github.com/makao-group/advisor-cli/internal/risk"
	"github.com/makao-group/advisor-cli/internal/tradeoff"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newRouter(guardrail.New(), risk.NewDefault(), tradeoff.NewDefault()))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServer_Health(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_Guardrail(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/guardrail", `{"query": "Which areas in Nairobi are dangerous?"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result model.GuardrailResult
	decode(t, resp, &result)
	assert.False(t, result.IsSafe)
	assert.Equal(t, model.QueryDangerousArea, result.QueryType)
	assert.NotEmpty(t, result.ReframedQuery)
	assert.NotEmpty(t, result.AdvisoryDisclaimer)
}

func TestServer_Risk(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/risk", `{
		"commute_minutes": 100,
		"return_time": "night",
		"living_arrangement": "alone",
		"familiar_with_area": true,
		"budget_comfort": 0.9
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var profile model.RiskProfile
	decode(t, resp, &profile)
	assert.Equal(t, model.RiskModerate, profile.OverallRiskLevel)
	assert.NotEmpty(t, profile.RiskFactors)
}

func TestServer_RiskCompare(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/risk/compare", `{
		"options": [
			{"name": "A", "commute_minutes": 20, "transport_mode": "matatu", "rent_kes": 90000},
			{"name": "B", "commute_minutes": 75, "transport_mode": "bus", "rent_kes": 28000}
		]
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var results []model.OptionRisk
	decode(t, resp, &results)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Name)
	assert.Contains(t, results[1].TradeOffSummary, "Lower rent but longer commute")
}

func TestServer_TradeOff(t *testing.T) {
	srv := testServer(t)

	resp := postJSON(t, srv.URL+"/v1/tradeoff", `{
		"budget_max": 70000,
		"workplace_minutes": 30,
		"options": [
			{"name": "A", "rent_kes": 65000, "commute_minutes": 25,
			 "transport_options": ["matatu", "bus", "private"],
			 "amenities": ["market", "gym", "mall", "pharmacy"]},
			{"name": "B", "rent_kes": 35000, "commute_minutes": 45,
			 "transport_options": ["matatu", "bodaboda"],
			 "amenities": ["market", "shops"]}
		]
	}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var comparison model.TradeOffComparison
	decode(t, resp, &comparison)
	assert.Equal(t, []string{"A", "B"}, comparison.RankedOrder)
	assert.Contains(t, comparison.Summary, "KES 70,000")
}

func TestServer_BadRequests(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		path string
		body string
	}{
		{"guardrail malformed", "/v1/guardrail", `{`},
		{"risk malformed", "/v1/risk", `not json`},
		{"compare malformed", "/v1/risk/compare", `[]`},
		{"tradeoff malformed", "/v1/tradeoff", `{`},
		{"tradeoff no options", "/v1/tradeoff", `{"budget_max": 70000, "options": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := postJSON(t, srv.URL+tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}
