package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient talks to a remote OCR service that accepts base64 image payloads.
type HTTPClient struct {
	BaseURL string
	Client  *http.Client
}

var _ Provider = (*HTTPClient)(nil)

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type ocrRequest struct {
	Image  string `json:"image"` // base64-encoded bytes
	Format string `json:"format"`
}

type ocrResponse struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Error      string  `json:"error,omitempty"`
}

func (c *HTTPClient) Recognize(ctx context.Context, data []byte, mimeType string) (*Result, error) {
	payload := ocrRequest{
		Image:  base64.StdEncoding.EncodeToString(data),
		Format: formatFromMIME(mimeType),
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/ocr", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ocr request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ocr service returned status %d: %s", resp.StatusCode, string(body))
	}

	var out ocrResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("ocr service error: %s", out.Error)
	}

	return &Result{
		Text:       strings.TrimSpace(out.Text),
		Confidence: out.Confidence,
	}, nil
}

func formatFromMIME(mimeType string) string {
	if idx := strings.IndexByte(mimeType, '/'); idx >= 0 && idx+1 < len(mimeType) {
		return mimeType[idx+1:]
	}
	return "png"
}
