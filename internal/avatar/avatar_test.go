package avatar

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultURL_SeedsWithUsername(t *testing.T) {
	got := DefaultURL("amy")
	want := "https://api.dicebear.com/7.x/avataaars/svg?seed=amy"
	if got != want {
		t.Fatalf("DefaultURL = %q, want %q", got, want)
	}
}

func TestDefaultURL_EscapesSeed(t *testing.T) {
	got := DefaultURL("señora&co")
	if strings.Contains(got, "&co") {
		t.Fatalf("seed not escaped: %q", got)
	}
}

func TestFromFile_EncodesPNG(t *testing.T) {
	// Minimal PNG header is enough; content is never decoded.
	raw := []byte("\x89PNG\r\n\x1a\nrest-of-image")
	path := filepath.Join(t.TempDir(), "me.png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}

	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", got[:30])
	}
	payload := strings.TrimPrefix(got, "data:image/png;base64,")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	if string(decoded) != string(raw) {
		t.Fatal("payload does not round-trip to the file contents")
	}
}

func TestFromFile_DetectsTypeWithoutExtension(t *testing.T) {
	raw := []byte("\x89PNG\r\n\x1a\nrest-of-image")
	path := filepath.Join(t.TempDir(), "avatar")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("sniffing failed: %q", got[:30])
	}
}

func TestFromFile_MissingFile(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}

func TestFromFile_AcceptsLargeFiles(t *testing.T) {
	// Imports are not size-limited; a multi-megabyte photo round-trips.
	raw := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 2<<20)...)
	path := filepath.Join(t.TempDir(), "big.png")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if !strings.HasPrefix(got, "data:image/png;base64,") {
		t.Fatalf("unexpected prefix: %q", got[:30])
	}
}
