package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// compiledSchemas caches validators by schema name.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// checkContent is the shared tail of every adapter: the model must have
// produced text, and when a schema was requested that text must be a JSON
// document satisfying it.
func checkContent(req Request, content json.RawMessage) error {
	if len(bytes.TrimSpace(content)) == 0 {
		return &ErrInvalidResponse{Content: content, Err: ErrEmptyResponse}
	}
	return validateResponse(req.Schema, content)
}

// validateResponse returns *ErrInvalidResponse naming the first schema
// violation, or nil.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(parsed); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: describeViolation(schema.Name, err)}
	}
	return nil
}

// describeViolation flattens a jsonschema error to "path: message" for the
// deepest failing location, which is what a reader of the log needs.
func describeViolation(name string, err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("schema %q: %w", name, err)
	}
	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}
	loc := "/"
	if len(leaf.InstanceLocation) > 0 {
		var b bytes.Buffer
		for _, p := range leaf.InstanceLocation {
			b.WriteByte('/')
			b.WriteString(p)
		}
		loc = b.String()
	}
	msg := leaf.ErrorKind.LocalizedString(message.NewPrinter(language.English))
	return fmt.Errorf("schema %q violated at %s: %s", name, loc, msg)
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// Round-trip through JSON so Go ints in the definition become the
	// json.Number values the compiler expects.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
	if err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, err
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
