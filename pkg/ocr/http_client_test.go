package ocr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRecognize(t *testing.T) {
	imageBytes := []byte{0xff, 0xd8, 0xff, 0xe0}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/ocr" {
			t.Errorf("path = %q, want /api/ocr", r.URL.Path)
		}

		var req struct {
			Image  string `json:"image"`
			Format string `json:"format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Image != base64.StdEncoding.EncodeToString(imageBytes) {
			t.Error("image payload not base64 of the input bytes")
		}
		if req.Format != "jpeg" {
			t.Errorf("format = %q, want jpeg", req.Format)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"text":       "  INVOICE 2024-118  ",
			"confidence": 0.87,
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	result, err := client.Recognize(context.Background(), imageBytes, "image/jpeg")
	if err != nil {
		t.Fatalf("Recognize: %v", err)
	}

	if result.Text != "INVOICE 2024-118" {
		t.Errorf("Text = %q, want trimmed invoice line", result.Text)
	}
	if result.Confidence != 0.87 {
		t.Errorf("Confidence = %v, want 0.87", result.Confidence)
	}
}

func TestRecognizeServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"error": "engine not loaded"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.Recognize(context.Background(), []byte{0x00}, "image/png")
	if err == nil {
		t.Fatal("want error from service-reported failure")
	}
}

func TestRecognizeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL)
	_, err := client.Recognize(context.Background(), []byte{0x00}, "image/png")
	if err == nil {
		t.Fatal("want error on non-200 status")
	}
}

func TestFormatFromMIME(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"image/png", "png"},
		{"image/jpeg", "jpeg"},
		{"weird", "png"},
		{"image/", "png"},
	}

	for _, tt := range tests {
		if got := formatFromMIME(tt.in); got != tt.want {
			t.Errorf("formatFromMIME(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
