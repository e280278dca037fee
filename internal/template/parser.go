package template

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/template.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/files/0")
	Message string // Human-readable error message
	Keyword string // Schema keyword that failed
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("template.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("template.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Parse decodes a raw template document into a Descriptor.
// Any decode failure or schema violation yields an error matching
// ErrMalformedTemplate.
func Parse(raw []byte) (*Descriptor, error) {
	var generic interface{}
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, &MalformedError{Cause: fmt.Errorf("parsing YAML: %w", err)}
	}

	issues, err := validate(generic)
	if err != nil {
		return nil, &MalformedError{Cause: err}
	}
	if len(issues) > 0 {
		return nil, &MalformedError{Issues: issues}
	}

	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedError{Cause: fmt.Errorf("decoding template: %w", err)}
	}

	return NewDescriptor(doc.Files, doc.SubdirFiles, doc.Services, doc.Config), nil
}

// shapedFields are the top-level fields the schema constrains.
var shapedFields = []string{"name", "description", "files", "subdir_files", "services"}

// validate checks a decoded YAML value against the template schema.
// The error return is for schema compilation or conversion failures.
func validate(v interface{}) ([]ValidationIssue, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Round-trip through JSON so the validator sees json.Number values.
	jsonData, err := json.Marshal(shapeOf(v))
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	err = schema.Validate(inst)
	if err == nil {
		return nil, nil
	}

	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}
	return issuesOf(validationErr), nil
}

// shapeOf reduces a decoded document to what the schema looks at. The config
// section is opaque, so only its presence is kept.
func shapeOf(v interface{}) interface{} {
	doc, ok := v.(map[string]interface{})
	if !ok {
		generic, isMap := v.(map[interface{}]interface{})
		if !isMap {
			return stringKeys(v)
		}
		doc = make(map[string]interface{}, len(generic))
		for k, item := range generic {
			doc[fmt.Sprint(k)] = item
		}
	}

	shape := make(map[string]interface{}, len(shapedFields)+1)
	for _, name := range shapedFields {
		if field, ok := doc[name]; ok {
			shape[name] = stringKeys(field)
		}
	}
	if _, ok := doc["config"]; ok {
		shape["config"] = nil
	}
	return shape
}

// stringKeys rekeys nested YAML maps so list items that are mappings can be
// encoded as JSON and reported as a type mismatch. Non-finite floats become 0
// so they still fail as numbers.
func stringKeys(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[k] = stringKeys(item)
		}
		return m
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, item := range val {
			m[fmt.Sprint(k)] = stringKeys(item)
		}
		return m
	case []interface{}:
		a := make([]interface{}, len(val))
		for i, item := range val {
			a[i] = stringKeys(item)
		}
		return a
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0.0
		}
		return val
	default:
		return val
	}
}

// issuesOf flattens a validation error into one issue per violated
// required, type or minLength keyword.
func issuesOf(ve *jsonschema.ValidationError) []ValidationIssue {
	var issues []ValidationIssue
	seen := make(map[ValidationIssue]bool)

	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		for _, cause := range e.Causes {
			walk(cause)
		}
		if len(e.Causes) > 0 {
			return
		}

		issue := ValidationIssue{Path: pointer(e.InstanceLocation)}
		switch k := e.ErrorKind.(type) {
		case *kind.Required:
			issue.Keyword = "required"
			issue.Message = "missing required field(s): " + strings.Join(k.Missing, ", ")
		case *kind.Type:
			issue.Keyword = "type"
			issue.Message = fmt.Sprintf("expected %s, got %s", strings.Join(k.Want, " or "), k.Got)
		case *kind.MinLength:
			issue.Keyword = "minLength"
			issue.Message = "must not be empty"
		default:
			return
		}
		if !seen[issue] {
			seen[issue] = true
			issues = append(issues, issue)
		}
	}
	walk(ve)

	if len(issues) == 0 {
		return []ValidationIssue{{Message: ve.ErrorKind.LocalizedString(printer)}}
	}
	return issues
}

func pointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	return "/" + strings.Join(location, "/")
}
