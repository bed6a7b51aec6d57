package xgbjson

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/vareth-ml/xgbtree/pkg/treemodel"
)

// LoadOptions configures a single load. Logger defaults to slog.Default()
// when nil.
type LoadOptions struct {
	Logger *slog.Logger
}

// LoadFile opens path, parses it as an XGBoost JSON model, and closes the
// file on every exit path. This is the public entry-point wrapper the core
// parser treats as an external collaborator.
func LoadFile(path string, opts LoadOptions) (*treemodel.Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xgbjson: open %s: %w", path, err)
	}
	defer f.Close()

	dispatcher := NewDispatcher(&Context{Model: &treemodel.Model{}, Logger: opts.Logger})

	if err := Stream(f, dispatcher); err != nil {
		return nil, err
	}

	if err := dispatcher.Err(); err != nil {
		return nil, err
	}

	return dispatcher.Result(), nil
}

// LoadBytes parses an in-memory XGBoost JSON model buffer.
func LoadBytes(data []byte, opts LoadOptions) (*treemodel.Model, error) {
	dispatcher := NewDispatcher(&Context{Model: &treemodel.Model{}, Logger: opts.Logger})

	if err := Stream(bytes.NewReader(data), dispatcher); err != nil {
		return nil, err
	}

	if err := dispatcher.Err(); err != nil {
		return nil, err
	}

	return dispatcher.Result(), nil
}
