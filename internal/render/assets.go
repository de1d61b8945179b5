package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// maxCoverBytes caps cover image downloads at 20 MiB.
const maxCoverBytes = 20 << 20

// FetchCoverImage downloads the cover image from a URL with bounded
// retries. Backends fall back to a text-only cover when this fails, so
// callers should log the error rather than abort the render.
func FetchCoverImage(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", fmt.Errorf("no cover image URL")
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}

	var data []byte
	var contentType string
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
			if err != nil {
				return err
			}
			resp, err := httpClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("cover fetch status: %d", resp.StatusCode)
			}
			body, err := io.ReadAll(io.LimitReader(resp.Body, maxCoverBytes+1))
			if err != nil {
				return err
			}
			if len(body) > maxCoverBytes {
				return retry.Unrecoverable(fmt.Errorf("cover image exceeds %d bytes", maxCoverBytes))
			}
			data = body
			contentType = resp.Header.Get("Content-Type")
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(1*time.Second),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch cover image: %w", err)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return data, contentType, nil
}

// ImageTypeFromContentType maps a MIME type to the image type string the
// PDF drawing layer expects. Empty means unsupported.
func ImageTypeFromContentType(contentType string) string {
	switch {
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "JPG"
	case strings.Contains(contentType, "png"):
		return "PNG"
	case strings.Contains(contentType, "gif"):
		return "GIF"
	default:
		return ""
	}
}
