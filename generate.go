// Package bpeedit edits HuggingFace-format BPE tokenizer.json files.
package bpeedit

// Generate documentation for the core package
//go:generate gomarkdoc -o editor/README.md -e ./editor --embed --repository.url https://github.com/bpeeditor/bpeedit --repository.default-branch main --repository.path /editor

// Generate documentation for the JSON (de)serialization package
//go:generate gomarkdoc -o internal/tokfile/README.md -e ./internal/tokfile --embed --repository.url https://github.com/bpeeditor/bpeedit --repository.default-branch main --repository.path /internal/tokfile

// Generate documentation for the CLI package
//go:generate gomarkdoc -o cmd/bpeedit/README.md -e ./cmd/bpeedit --embed --repository.url https://github.com/bpeeditor/bpeedit --repository.default-branch main --repository.path /cmd/bpeedit
