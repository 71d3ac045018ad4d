package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/san-kum/hmclab/internal/chain"
)

func postSample(t *testing.T, h http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sample", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSampleEndpoint(t *testing.T) {
	h := NewRouter()
	seed := int64(21)
	rec := postSample(t, h, SampleRequest{
		NSamples: 100, StepSize: 0.1, NumSteps: 10,
		DistType: "gaussian", Seed: &seed,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}

	var res chain.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if len(res.Samples) != 100 {
		t.Errorf("got %d samples, want 100", len(res.Samples))
	}
	if res.AcceptanceRate < 0 || res.AcceptanceRate > 1 {
		t.Errorf("acceptance rate %g out of range", res.AcceptanceRate)
	}

	// identical seeded requests are bit-identical
	rec2 := postSample(t, h, SampleRequest{
		NSamples: 100, StepSize: 0.1, NumSteps: 10,
		DistType: "gaussian", Seed: &seed,
	})
	if !bytes.Equal(rec.Body.Bytes(), rec2.Body.Bytes()) {
		t.Error("seeded responses differ")
	}
}

func TestSampleValidation(t *testing.T) {
	h := NewRouter()
	cases := []SampleRequest{
		{NSamples: 10, StepSize: 0.1, NumSteps: 10, DistType: "unknown"},
		{NSamples: 10, StepSize: 0, NumSteps: 10, DistType: "gaussian"},
		{NSamples: 10, StepSize: 0.1, NumSteps: 0, DistType: "gaussian"},
		{NSamples: -5, StepSize: 0.1, NumSteps: 10, DistType: "gaussian"},
	}
	for i, req := range cases {
		rec := postSample(t, h, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: status %d, want 400", i, rec.Code)
		}
		var e errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &e); err != nil || e.Error == "" {
			t.Errorf("case %d: missing error body: %s", i, rec.Body.String())
		}
	}
}

func TestSampleBadBody(t *testing.T) {
	h := NewRouter()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sample", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", rec.Code)
	}
}

func TestTargetsEndpoint(t *testing.T) {
	h := NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/targets", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var body map[string][]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body["targets"]) != 3 {
		t.Errorf("targets = %v", body["targets"])
	}
}

func TestHealthz(t *testing.T) {
	h := NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
}
