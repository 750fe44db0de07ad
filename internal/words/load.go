package words

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// File is the on-disk shape of a custom word bank.
type File struct {
	Groups []Group `json:"groups"`
	Words  []Word  `json:"words"`
}

const fileSchemaURL = "schema://phonix-word-bank.json"

// fileSchema is the JSON schema a word bank file must satisfy.
var fileSchema = map[string]any{
	"type":     "object",
	"required": []any{"groups", "words"},
	"properties": map[string]any{
		"groups": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"key", "name"},
				"properties": map[string]any{
					"key":         map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"emoji":       map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
		"words": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "word", "graphemes", "types", "group", "level"},
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"word": map[string]any{"type": "string", "minLength": 1},
					"graphemes": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"type": "string", "minLength": 1},
					},
					"types": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items":    map[string]any{"enum": phonemeTypeEnum()},
					},
					"pattern": map[string]any{"enum": []any{"CVC", "CVCe", "blend", "digraph", "other"}},
					"group":   map[string]any{"type": "string", "minLength": 1},
					"level":   map[string]any{"type": "integer", "minimum": 1, "maximum": MaxLevel},
					"emoji":   map[string]any{"type": "string"},
				},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func phonemeTypeEnum() []any {
	types := AllPhonemeTypes()
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return out
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go maps with typed slices.
		raw, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(fileSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(fileSchemaURL)
	})
	return compiled, compileErr
}

// Parse validates raw JSON against the word bank schema and builds a Bank.
func Parse(data []byte) (*Bank, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile word bank schema: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode word bank: %w", err)
	}
	for i := range f.Words {
		if f.Words[i].Pattern == "" {
			f.Words[i].Pattern = PatternOther
		}
	}
	return NewBank(f.Words, f.Groups)
}

// LoadFile reads and validates a word bank JSON file.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read word bank: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return b, nil
}

// Export returns the bank in the on-disk file shape.
func (b *Bank) Export() File {
	return File{Groups: b.Groups(), Words: b.All()}
}
