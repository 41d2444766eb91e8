package infra

import (
	"strings"
	"testing"
)

func TestExtractMarker(t *testing.T) {
	query := "--sql 4224cf0f-b65c-46ba-b776-ad231733444d\nselect 1;"
	marker, trimmed, err := extractMarker(query)
	if err != nil {
		t.Fatalf("extractMarker() unexpected error: %v", err)
	}
	if marker != "4224cf0f-b65c-46ba-b776-ad231733444d" {
		t.Fatalf("marker = %q", marker)
	}
	if strings.Contains(trimmed, "--sql") {
		t.Fatalf("marker line must be stripped, got %q", trimmed)
	}
}

func TestExtractMarkerRejectsUntagged(t *testing.T) {
	for name, query := range map[string]string{
		"no marker":     "select 1;",
		"bad uuid":      "--sql not-a-uuid\nselect 1;",
		"plain comment": "-- select users\nselect 1;",
	} {
		if _, _, err := extractMarker(query); err == nil {
			t.Fatalf("%s: extractMarker() accepted %q", name, query)
		}
	}
}
