package pace

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNoopRenderer(t *testing.T) {
	renderer := NewNoopRenderer()

	// Both operations must be safe and do nothing.
	renderer.Render(Snapshot{Current: 1, Total: 2})
	renderer.Finish(Snapshot{Current: 2, Total: 2})
}

func TestTextRenderer_RenderLine(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTextRenderer(&buf)

	renderer.Render(Snapshot{
		Timestamp:  time.Date(2026, 8, 29, 17, 6, 14, 0, time.UTC),
		Label:      "indexing",
		Current:    120,
		Total:      1000,
		Percentage: 12,
		Rate:       41.3,
		Elapsed:    2 * time.Second,
		ETA:        21 * time.Second,
	})

	line := buf.String()
	if !strings.HasPrefix(line, "[17:06:14] indexing: ") {
		t.Errorf("Unexpected line prefix: %q", line)
	}
	if !strings.Contains(line, "120/1000 (12.0%)") {
		t.Errorf("Expected counts and percentage in line: %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("Expected newline-terminated line")
	}
}

func TestTextRenderer_FinishLine(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewTextRenderer(&buf)

	renderer.Finish(Snapshot{
		Timestamp: time.Date(2026, 8, 29, 17, 6, 19, 0, time.UTC),
		Current:   1000,
		Total:     1000,
		Elapsed:   5 * time.Second,
	})

	line := buf.String()
	if !strings.Contains(line, "done 1000/1000 in 5s") {
		t.Errorf("Unexpected finish line: %q", line)
	}
}

func TestJSONRenderer_EmitsNDJSON(t *testing.T) {
	var buf bytes.Buffer
	renderer := NewJSONRenderer(&buf)

	renderer.Render(Snapshot{Current: 5, Total: 10, Percentage: 50})
	renderer.Finish(Snapshot{Current: 10, Total: 10, Percentage: 100})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 NDJSON lines, got %d", len(lines))
	}

	var mid struct {
		Current uint64 `json:"current"`
		Final   bool   `json:"final"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &mid); err != nil {
		t.Fatalf("First line is not valid JSON: %v", err)
	}
	if mid.Current != 5 || mid.Final {
		t.Errorf("Unexpected first line: %+v", mid)
	}

	var last struct {
		Current uint64 `json:"current"`
		Final   bool   `json:"final"`
	}
	if err := json.Unmarshal([]byte(lines[1]), &last); err != nil {
		t.Fatalf("Second line is not valid JSON: %v", err)
	}
	if last.Current != 10 || !last.Final {
		t.Errorf("Expected terminal line with final=true, got %+v", last)
	}
}
