package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "mkprop/schema"
)

const projectSchemaFile = "project.schema.json"

var (
	projectSchema *jsonschema.Schema
	compileOnce   sync.Once
	compileErr    error
)

// compileSchema compiles the embedded project schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile(projectSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("read project schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal project schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()

		if err := compiler.AddResource(projectSchemaFile, doc); err != nil {
			compileErr = fmt.Errorf("add project schema resource: %w", err)
			return
		}

		projectSchema, err = compiler.Compile(projectSchemaFile)
		if err != nil {
			compileErr = fmt.Errorf("compile project schema: %w", err)
		}
	})

	return compileErr
}

// validateDocument checks a decoded YAML document against the project
// schema. The document goes through JSON so the validator sees plain JSON
// values.
func validateDocument(doc any) error {
	if err := compileSchema(); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("project is not representable as JSON: %w", err)
	}

	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := projectSchema.Validate(v); err != nil {
		return fmt.Errorf("project validation failed: %w", err)
	}

	return nil
}
