package schedule

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/nibzard/schedule-go/internal/task"
	"github.com/nibzard/schedule-go/internal/utils"
)

const schemaURL = "tasks.schema.json"

//go:embed tasks.schema.json
var schemaJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// taskListSchema compiles the embedded schema on first use.
func taskListSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// validateData checks raw schedule file content against the embedded schema.
// It returns a *task.ParseError locating the first violation.
func validateData(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return syntaxError(err)
	}

	schema, err := taskListSchema()
	if err != nil {
		return err
	}

	err = schema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &task.ParseError{Err: err}
	}
	leaf := firstLeaf(ve)
	return &task.ParseError{
		Path: utils.JSONPointerToPath(leaf.InstanceLocation),
		Err:  errors.New(leaf.Message),
	}
}

// firstLeaf descends to the most specific cause of a validation failure.
func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// syntaxError wraps a JSON decoding failure as a *task.ParseError.
func syntaxError(err error) error {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return &task.ParseError{Err: fmt.Errorf("invalid JSON at offset %d: %w", se.Offset, err)}
	}
	var te *json.UnmarshalTypeError
	if errors.As(err, &te) {
		path := te.Field
		if path == "" {
			path = "$"
		}
		return &task.ParseError{Path: path, Err: fmt.Errorf("unexpected %s: %w", te.Value, err)}
	}
	var pe *task.ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &task.ParseError{Err: err}
}
