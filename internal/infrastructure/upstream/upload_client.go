package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/api/metrics"
)

// UploadClient posts files to the upload endpoint, which lives on a separate
// host from the catalog API and answers with a plain-text body.
type UploadClient struct {
	url   string
	httpc *http.Client
	log   zerolog.Logger
}

// NewUploadClient creates an UploadClient for the given endpoint URL.
func NewUploadClient(endpoint string, timeout time.Duration, log zerolog.Logger) *UploadClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &UploadClient{
		url:   endpoint,
		httpc: &http.Client{Timeout: timeout},
		log:   log,
	}
}

// Upload sends the file as multipart form field "file" and relays the
// response body.
func (u *UploadClient) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("upload: build form: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("upload: read file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("upload: finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.url, &body)
	if err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := u.httpc.Do(req)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("upload: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UploadsTotal.WithLabelValues("error").Inc()
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return "", &Error{StatusCode: resp.StatusCode, Message: msg}
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	return string(raw), nil
}
