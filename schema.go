package prompting

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	descriptionTag = "description"
	validateTag    = "validate"
)

// ResponseSchemaOf reflects T into a response schema for the model. Field
// descriptions come from the `description` tag; `oneof`, `gte`/`lte` and
// slice `min`/`max` validation rules are translated so the model is steered
// toward values the validator will accept.
func ResponseSchemaOf[T any]() (*genai.Schema, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("record type must be a struct, got %T", zero)
	}
	return schemaForType(rt)
}

func schemaForType(t reflect.Type) (*genai.Schema, error) {
	switch t.Kind() {
	case reflect.Pointer:
		return schemaForType(t.Elem())
	case reflect.String:
		return &genai.Schema{Type: genai.TypeString}, nil
	case reflect.Bool:
		return &genai.Schema{Type: genai.TypeBoolean}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &genai.Schema{Type: genai.TypeInteger}, nil
	case reflect.Float32, reflect.Float64:
		return &genai.Schema{Type: genai.TypeNumber}, nil
	case reflect.Slice, reflect.Array:
		items, err := schemaForType(t.Elem())
		if err != nil {
			return nil, err
		}
		return &genai.Schema{Type: genai.TypeArray, Items: items}, nil
	case reflect.Struct:
		if t == reflect.TypeOf(time.Time{}) {
			return &genai.Schema{Type: genai.TypeString, Format: "date-time"}, nil
		}
		return schemaForStruct(t)
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}

func schemaForStruct(t reflect.Type) (*genai.Schema, error) {
	s := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: map[string]*genai.Schema{},
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous || !f.IsExported() {
			continue
		}
		key := strings.Split(f.Tag.Get("json"), ",")[0]
		if key == "-" {
			continue
		}
		if key == "" {
			key = f.Name
		}
		fs, err := schemaForType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Name, err)
		}
		fs.Description = f.Tag.Get(descriptionTag)
		applyConstraints(fs, f.Tag.Get(validateTag))
		s.Properties[key] = fs
		s.Required = append(s.Required, key)
	}
	return s, nil
}

// applyConstraints maps the schema-expressible subset of validator rules
// onto the field schema. Rules the wire format cannot carry (custom
// validators, string lengths) stay enforcement-only on the decode side.
func applyConstraints(s *genai.Schema, rules string) {
	if rules == "" {
		return
	}
	for _, rule := range strings.Split(rules, ",") {
		name, val, _ := strings.Cut(rule, "=")
		switch name {
		case "oneof":
			if s.Type == genai.TypeString {
				s.Enum = strings.Fields(val)
			}
		case "gte", "min":
			if n, err := strconv.ParseFloat(val, 64); err == nil {
				switch s.Type {
				case genai.TypeNumber, genai.TypeInteger:
					s.Minimum = &n
				case genai.TypeArray:
					c := int64(n)
					s.MinItems = &c
				}
			}
		case "lte", "max":
			if n, err := strconv.ParseFloat(val, 64); err == nil {
				switch s.Type {
				case genai.TypeNumber, genai.TypeInteger:
					s.Maximum = &n
				case genai.TypeArray:
					c := int64(n)
					s.MaxItems = &c
				}
			}
		}
	}
}
