package ports

import (
	"context"
	"io"
)

// Uploader streams a file to the upload endpoint (a separate host from the
// catalog API) and relays its plain-text response.
type Uploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}
