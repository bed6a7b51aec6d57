// Package schema provides an optional, coarse-grained JSON-schema
// pre-validation pass over an XGBoost model document, run before the
// streaming parse when strict mode is enabled. It cannot catch everything
// the streaming parser enforces (the tree array-length invariant, the
// gbtree-only booster restriction's exact diagnostic) but it gives a
// single, field-path-annotated error report for structurally malformed
// input instead of aborting on the first offending key.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaFS embed.FS

var schemaLoader = sync.OnceValue(func() gojsonschema.JSONLoader {
	data, err := schemaFS.ReadFile("schema.json")
	if err != nil {
		panic(fmt.Sprintf("schema: embedded schema.json missing: %v", err))
	}

	return gojsonschema.NewBytesLoader(data)
})

// Validate checks data against the XGBoost model document schema and
// returns a single error summarizing every violation found, or nil if the
// document conforms.
func Validate(data []byte) error {
	var doc any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("schema: invalid JSON: %w", err)
	}

	result, err := gojsonschema.Validate(schemaLoader(), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("schema: validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var messages []string
	for _, verr := range result.Errors() {
		messages = append(messages, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("schema: document does not conform: %s", strings.Join(messages, "; "))
}
