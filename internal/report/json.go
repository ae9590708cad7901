package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Envelope is the top-level JSON export structure.
type Envelope struct {
	ExportedAt string `json:"exportedAt"`
	Result     any    `json:"result"`
}

// WriteJSON writes v to w as an indented JSON envelope with an export
// timestamp.
func WriteJSON(w io.Writer, v any) error {
	env := Envelope{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Result:     v,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// WriteJSONFile writes v as a JSON envelope to path, creating parent
// directories as needed.
func WriteJSONFile(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	if err := WriteJSON(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
