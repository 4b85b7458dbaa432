package pace

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
)

// JSONRenderer writes snapshots as newline-delimited JSON (NDJSON).
//
// Each line is a complete, independently parseable JSON object, making the
// stream robust to interruption and easy to feed into log aggregation or
// monitoring tooling. The terminal snapshot carries "final":true.
//
// Example output:
//
//	{"timestamp":"2026-08-29T17:06:14Z","current":120,"total":1000,"percentage":12,"rate":41.3,"elapsed":2900000000,"eta":21000000000}
//	{"timestamp":"2026-08-29T17:06:19Z","current":1000,"total":1000,"percentage":100,"rate":44.1,"elapsed":5100000000,"eta":0,"final":true}
//
// The renderer is thread-safe; each line is written atomically without
// interleaving. Marshal and write errors are dropped so a broken stream
// never disturbs the owning bar.
type JSONRenderer struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONRenderer creates a JSON renderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{writer: w}
}

// jsonSnapshot augments a snapshot with the terminal marker.
type jsonSnapshot struct {
	Snapshot
	Final bool `json:"final,omitempty"`
}

// Render writes one snapshot line.
func (j *JSONRenderer) Render(s Snapshot) {
	j.write(jsonSnapshot{Snapshot: s})
}

// Finish writes the terminal snapshot line with "final":true.
func (j *JSONRenderer) Finish(s Snapshot) {
	j.write(jsonSnapshot{Snapshot: s, Final: true})
}

func (j *JSONRenderer) write(s jsonSnapshot) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.writer, "%s\n", data)
}
