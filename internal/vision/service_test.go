package vision

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/oghenetejiriorukpegmail/expense-tracker/constants"
	"github.com/oghenetejiriorukpegmail/expense-tracker/internal/common"
)

type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&t.calls, 1)
	return t.next.RoundTrip(req)
}

func testConfig(baseURL, apiKey string) common.VisionConfig {
	return common.VisionConfig{
		DefaultProvider: "openai",
		Timeout:         5 * time.Second,
		Providers: map[string]common.ProviderConfig{
			"openai":     {APIKey: apiKey, BaseURL: baseURL, Model: "gpt-4o-mini"},
			"openrouter": {APIKey: apiKey, BaseURL: baseURL, Model: "qwen/qwen2.5-vl-72b-instruct"},
			"gemini":     {APIKey: apiKey, BaseURL: baseURL, Model: "gemini-2.0-flash"},
			"anthropic":  {APIKey: apiKey, BaseURL: baseURL, Model: "claude-3-5-sonnet-latest"},
		},
	}
}

func chatCompletion(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	})
	return string(b)
}

func TestMissingAPIKeyMakesNoNetworkCalls(t *testing.T) {
	transport := &countingTransport{next: http.DefaultTransport}
	client := &http.Client{Transport: transport}

	registry := NewRegistry(testConfig("http://127.0.0.1:1", ""), client, nil)
	service := NewService(registry, nil)

	for _, name := range []string{"openai", "openrouter", "gemini", "anthropic"} {
		_, err := service.Extract(context.Background(), Request{
			Image:    []byte{0x1},
			MimeType: "image/png",
			Template: constants.TemplateGeneral,
			Provider: name,
		})
		if err == nil {
			t.Fatalf("provider %s: expected error for missing API key", name)
		}
		if !strings.Contains(err.Error(), "no API key") {
			t.Errorf("provider %s: error = %q, want it to name the missing key", name, err)
		}
	}
	if n := atomic.LoadInt64(&transport.calls); n != 0 {
		t.Errorf("transport saw %d calls, want 0", n)
	}
}

func TestExtractReceiptSuccess(t *testing.T) {
	content := "```json\n{\"merchant_name\":\"City Cabs\",\"total\":45.5,\"date\":\"2024-03-15\",\"category\":\"Transportation\",\"location\":\"New York, NY\"}\n```"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletion(content)))
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1, 0x2},
		MimeType: "image/jpeg",
		Template: constants.TemplateGeneral,
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if res.Fields["vendor"] != "City Cabs" {
		t.Errorf("vendor = %v, want City Cabs (normalized from merchant_name)", res.Fields["vendor"])
	}
	if res.Fields["type"] != "Transportation" {
		t.Errorf("type = %v, want Transportation (normalized from category)", res.Fields["type"])
	}
	if res.Fields["date"] != "2024-03-15" {
		t.Errorf("date = %v", res.Fields["date"])
	}
	if res.RawText != content {
		t.Error("raw provider text must be preserved on the result")
	}
}

func TestExtractKeepsInformationalFields(t *testing.T) {
	content := `{"vendor":"Osteria Roma","total":64.8,"subtotal":58.0,"tax":6.8,"paymentMethod":"VISA","date":"2024-03-16"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatCompletion(content)))
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/jpeg",
		Template: constants.TemplateGeneral,
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	asFloat := func(key string) float64 {
		t.Helper()
		n, ok := res.Fields[key].(json.Number)
		if !ok {
			t.Fatalf("%s = %T(%v), want a number", key, res.Fields[key], res.Fields[key])
		}
		f, err := n.Float64()
		if err != nil {
			t.Fatalf("%s = %q: %v", key, n, err)
		}
		return f
	}
	if got := asFloat("subtotal"); got != 58.0 {
		t.Errorf("subtotal = %v, want 58", got)
	}
	if got := asFloat("tax"); got != 6.8 {
		t.Errorf("tax = %v, want 6.8", got)
	}
	if res.Fields["payment_method"] != "VISA" {
		t.Errorf("payment_method = %v, want VISA (normalized from paymentMethod)", res.Fields["payment_method"])
	}
	if got := asFloat("cost"); got != 64.8 {
		t.Errorf("cost = %v, want 64.8 (normalized from total)", got)
	}
}

func TestExtractProviderErrorHidesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key sk-secret"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	_, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/png",
		Template: constants.TemplateGeneral,
	})
	if err == nil {
		t.Fatal("expected error for 401 response")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("error = %q, want the status code", err)
	}
	if strings.Contains(err.Error(), "sk-secret") {
		t.Errorf("error = %q, must not echo the upstream body", err)
	}
}

func TestExtractOdometerStructured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatCompletion(`{"reading": 45231.5}`)))
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/png",
		Template: constants.TemplateOdometer,
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if reading, _ := res.Fields["reading"].(float64); reading != 45231.5 {
		t.Errorf("reading = %v, want 45231.5", res.Fields["reading"])
	}
}

func TestExtractOdometerNumericFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatCompletion("The odometer shows 45,231.5 km")))
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/png",
		Template: constants.TemplateOdometer,
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if reading, _ := res.Fields["reading"].(float64); reading != 45231.5 {
		t.Errorf("reading = %v, want 45231.5", res.Fields["reading"])
	}
}

func TestExtractOdometerNoReading(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chatCompletion("the image is too blurry to read")))
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/png",
		Template: constants.TemplateOdometer,
	})
	if err == nil {
		t.Fatal("expected error for a response with no digits")
	}
	if !strings.Contains(err.Error(), "could not extract a numerical reading") {
		t.Errorf("error = %q", err)
	}
	if res.RawText == "" {
		t.Error("raw text must be preserved on parse failure")
	}
}

func TestExtractGeminiResponseShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("gemini key missing from query, got %q", r.URL.RawQuery)
		}
		b, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"vendor":"Hotel Luna","cost":"210.00","date":"2024-03-14"}`},
				}}},
			},
		})
		_, _ = w.Write(b)
	}))
	defer srv.Close()

	registry := NewRegistry(testConfig(srv.URL, "test-key"), srv.Client(), nil)
	service := NewService(registry, nil)

	res, err := service.Extract(context.Background(), Request{
		Image:    []byte{0x1},
		MimeType: "image/jpeg",
		Template: constants.TemplateTravel,
		Provider: "gemini",
	})
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if res.Fields["vendor"] != "Hotel Luna" {
		t.Errorf("vendor = %v", res.Fields["vendor"])
	}
}

func TestRegistryGet(t *testing.T) {
	registry := NewRegistry(testConfig("http://127.0.0.1:1", "k"), http.DefaultClient, nil)

	if p, ok := registry.Get(""); !ok || p.Name() != "openai" {
		t.Errorf("empty name should resolve the default provider, got %v %v", p, ok)
	}
	if p, ok := registry.Get("ANTHROPIC"); !ok || p.Name() != "anthropic" {
		t.Errorf("lookup should be case-insensitive, got %v %v", p, ok)
	}
	if _, ok := registry.Get("llava"); ok {
		t.Error("unknown provider must not resolve")
	}
}
