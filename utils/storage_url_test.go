package utils

import "testing"

func TestBuildInvoiceAccessURL(t *testing.T) {
	t.Setenv("GCS_URL", "")
	t.Setenv("GCS_BUCKET", "")

	t.Setenv("STORAGE_ACCESS_BASE_URL", "https://files.example.com/invoices")
	if got := BuildInvoiceAccessURL("2025/inv-1.pdf"); got != "https://files.example.com/invoices/2025/inv-1.pdf" {
		t.Fatalf("base-path form: got %q", got)
	}

	t.Setenv("STORAGE_ACCESS_BASE_URL", "https://files.example.com/get?key={objectKey}")
	if got := BuildInvoiceAccessURL("2025/inv-1.pdf"); got != "https://files.example.com/get?key=2025%2Finv-1.pdf" {
		t.Fatalf("template form: got %q", got)
	}

	t.Setenv("STORAGE_ACCESS_BASE_URL", "")
	if got := BuildInvoiceAccessURL("2025/inv-1.pdf"); got != "2025/inv-1.pdf" {
		t.Fatalf("unconfigured: got %q", got)
	}
	if got := BuildInvoiceAccessURL(""); got != "" {
		t.Fatalf("empty key: got %q", got)
	}
}

func TestExtractInvoiceObjectKey(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"2025/inv-1.pdf", "2025/inv-1.pdf"},
		{"gs://my-bucket/2025/inv-1.pdf", "2025/inv-1.pdf"},
		{"https://storage.googleapis.com/my-bucket/2025/inv-1.pdf", "2025/inv-1.pdf"},
		{"../etc/passwd", ""},
		{"https://files.example.com/a/../b", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ExtractInvoiceObjectKey(tc.in); got != tc.expected {
			t.Fatalf("ExtractInvoiceObjectKey(%q) = %q, want %q", tc.in, got, tc.expected)
		}
	}
}
