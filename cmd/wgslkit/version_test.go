package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-15"}

	var b strings.Builder
	renderVersionPretty(&b, info, true, true)
	out := b.String()
	if !strings.Contains(out, "wgslkit 1.2.3") {
		t.Errorf("missing version line:\n%s", out)
	}
	if !strings.Contains(out, "commit: abc123") || !strings.Contains(out, "built:  2026-01-15") {
		t.Errorf("missing metadata:\n%s", out)
	}

	b.Reset()
	renderVersionPretty(&b, info, false, false)
	if strings.Contains(b.String(), "commit") {
		t.Errorf("hash shown without flag:\n%s", b.String())
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123"}

	var b strings.Builder
	if err := renderVersionJSON(&b, info, true, false); err != nil {
		t.Fatal(err)
	}
	var payload versionPayload
	if err := json.Unmarshal([]byte(b.String()), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Tool != "wgslkit" || payload.Version != "1.2.3" || payload.GitCommit != "abc123" {
		t.Errorf("payload = %+v", payload)
	}
	if payload.BuildDate != "" {
		t.Errorf("build date leaked without flag: %+v", payload)
	}
}

func TestValueOrUnknown(t *testing.T) {
	if got := valueOrUnknown(""); got != "unknown" {
		t.Errorf("got %q", got)
	}
	if got := valueOrUnknown("x"); got != "x" {
		t.Errorf("got %q", got)
	}
}
