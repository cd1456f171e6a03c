package utils

import (
	"net/url"
	"os"
	"strings"
)

// BuildInvoiceAccessURL resolves an expense's stored invoice object key into a
// URL the client can open. Blob storage itself is an external boundary; the
// core only carries the opaque key.
func BuildInvoiceAccessURL(objectKey string) string {
	if objectKey == "" {
		return ""
	}

	base := strings.TrimSpace(os.Getenv("STORAGE_ACCESS_BASE_URL"))
	if base != "" {
		if strings.Contains(base, "{objectKey}") {
			escaped := objectKey
			if strings.Contains(base, "?") {
				escaped = url.QueryEscape(objectKey)
			}
			return strings.ReplaceAll(base, "{objectKey}", escaped)
		}
		if strings.Contains(base, "?") {
			return base + url.QueryEscape(objectKey)
		}
		return strings.TrimRight(base, "/") + "/" + objectKey
	}

	gcsURL := strings.TrimSpace(os.Getenv("GCS_URL"))
	gcsBucket := strings.TrimSpace(os.Getenv("GCS_BUCKET"))
	if gcsURL != "" && gcsBucket != "" {
		return "https://" + gcsURL + "/" + gcsBucket + "/" + objectKey
	}

	return objectKey
}

// ExtractInvoiceObjectKey accepts either a raw object key or a full URL and
// returns the bare key, rejecting path traversal.
func ExtractInvoiceObjectKey(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	if !strings.Contains(rawURL, "://") && !strings.HasPrefix(rawURL, "/") {
		if strings.Contains(rawURL, "..") {
			return ""
		}
		return rawURL
	}

	if strings.HasPrefix(rawURL, "gs://") {
		rawURL = strings.TrimPrefix(rawURL, "gs://")
		parts := strings.SplitN(rawURL, "/", 2)
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	if strings.Contains(key, "..") {
		return ""
	}
	// strip the bucket segment from storage-host URLs
	if i := strings.IndexByte(key, '/'); i > 0 && parsed.Host != "" && strings.Contains(parsed.Host, "storage") {
		key = key[i+1:]
	}
	return key
}
