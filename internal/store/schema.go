package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const stateSchemaURL = "schema://math-facts-state.json"

// stateSchema describes the persisted blob. Fields added after version 1
// stay optional so older blobs still load.
const stateSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "selectedNumbers": {
      "type": ["array", "null"],
      "items": {"type": "integer"}
    },
    "mode": {"enum": ["tables", "single-digit"]},
    "useCustomKeypad": {"type": "boolean"},
    "currentUserId": {"type": ["string", "null"]},
    "users": {
      "type": ["array", "null"],
      "items": {"$ref": "#/$defs/user"}
    }
  },
  "$defs": {
    "count": {"type": "integer", "minimum": 0},
    "user": {
      "type": "object",
      "required": ["id"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "name": {"type": "string"},
        "lifetimeStats": {
          "type": "object",
          "properties": {
            "total": {"$ref": "#/$defs/count"},
            "correct": {"$ref": "#/$defs/count"}
          }
        },
        "problemHistory": {
          "type": ["object", "null"],
          "additionalProperties": {"$ref": "#/$defs/stats"}
        },
        "challenges": {
          "type": ["array", "null"],
          "items": {"$ref": "#/$defs/challenge"}
        }
      }
    },
    "stats": {
      "type": "object",
      "properties": {
        "correct": {"$ref": "#/$defs/count"},
        "wrong": {"$ref": "#/$defs/count"},
        "attempts": {"$ref": "#/$defs/count"},
        "gotMinFirstCorrect": {"type": "boolean"},
        "gotMaxFirstCorrect": {"type": "boolean"},
        "requiresTyping": {"type": "boolean"},
        "lastSeenUtc": {"type": "string"}
      }
    },
    "challenge": {
      "type": "object",
      "required": ["total", "required", "correct"],
      "properties": {
        "date": {"type": "string"},
        "tables": {"type": ["array", "null"], "items": {"type": "integer"}},
        "operation": {"enum": ["multiplication", "addition", "subtraction"]},
        "total": {"$ref": "#/$defs/count"},
        "required": {"$ref": "#/$defs/count"},
        "correct": {"$ref": "#/$defs/count"},
        "reward": {"type": "string"},
        "success": {"type": "boolean"}
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateState checks a parsed JSON document against stateSchema.
func validateState(doc any) error {
	sch, err := stateSchemaCompiled()
	if err != nil {
		return fmt.Errorf("compile state schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func stateSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(stateSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(stateSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(stateSchemaURL)
	})
	return compiledSchema, compileErr
}
