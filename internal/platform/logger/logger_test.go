package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStdLogger_TextFormat_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatText, App: "rescue-passport", Output: &buf})

	l.Info("passport issued", map[string]any{"passport_id": "p-1"})

	line := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(line, "app=rescue-passport level=info msg=passport issued passport_id=p-1") {
		t.Fatalf("unexpected line: %q", line)
	}
}

func TestStdLogger_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Debug("debug", nil)
	l.Info("info", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	l.Warn("warn", nil)
	if buf.Len() == 0 {
		t.Fatalf("expected warn to be written")
	}
}

func TestStdLogger_With_MergesFieldsAsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, Output: &buf}).
		With(map[string]any{"component": "passports", "": "ignored"})

	l.Error("boom", map[string]any{"caller": "0xabc"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json line, got %q (%v)", buf.String(), err)
	}
	if entry["component"] != "passports" || entry["caller"] != "0xabc" || entry["level"] != "error" {
		t.Fatalf("unexpected entry: %#v", entry)
	}
	if _, ok := entry[""]; ok {
		t.Fatalf("empty key must be dropped")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("WARNING") != Warn || ParseLevel("nope") != Info {
		t.Fatalf("unexpected level parsing")
	}
	if ParseFormat(" JSON ") != FormatJSON || ParseFormat("") != FormatText {
		t.Fatalf("unexpected format parsing")
	}
}
