package bpeeditcmd

import (
	"encoding/json"
	"fmt"

	"github.com/bpeeditor/bpeedit/editor"
)

// loadEditor opens the tokenizer.json file at path and wraps it in an
// Editor, or returns a CLI-friendly error if the file cannot be loaded.
func loadEditor(path string) (*editor.Editor, error) {
	e, err := editor.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load tokenizer: %w", err)
	}
	return e, nil
}

// printResult renders v either as compact JSON (output == "json") or via
// the provided text renderer, matching llama3cmd's --output space|newline|json
// three-way switch shape.
func printResult(output string, v any, renderText func()) error {
	switch output {
	case "json":
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		fmt.Println(string(data))
	case "text":
		renderText()
	default:
		return fmt.Errorf("unknown output format: %s (want json or text)", output)
	}
	return nil
}

// saveUnlessDryRun writes e to path unless dryRun is set, in which case it
// prints a notice to stdout and leaves the file untouched, mirroring the
// teacher's --count-only preview mode.
func saveUnlessDryRun(e *editor.Editor, path string, dryRun bool) error {
	if dryRun {
		fmt.Printf("(dry run: %s was not modified)\n", path)
		return nil
	}
	if err := e.Save(path); err != nil {
		return fmt.Errorf("failed to save tokenizer: %w", err)
	}
	return nil
}
