package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
)

//go:embed schema.json
var embeddedSchema string

type schemaNode struct {
	Ref        string                 `json:"$ref"`
	Defs       map[string]*schemaNode `json:"$defs"`
	Properties map[string]*schemaNode `json:"properties"`
	Minimum    *float64               `json:"minimum"`
	Maximum    *float64               `json:"maximum"`
}

// VerifyAgainstEmbeddedSchema validates the config against the embedded JSON schema.
// It reports keys unknown to the schema and numbers outside of declared bounds.
func VerifyAgainstEmbeddedSchema(cfg *Config) error {
	return verify(cfg, embeddedSchema)
}

func verify(cfg *Config, schemaText string) error {
	var root schemaNode
	if err := json.Unmarshal([]byte(schemaText), &root); err != nil {
		return fmt.Errorf("parse embedded schema: %w", err)
	}

	// convert config to JSON for validation
	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err := json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	var errs []error
	checkObject(&root, root.resolve(&root), configMap, "", &errs)
	return errors.Join(errs...)
}

func checkObject(root, node *schemaNode, values map[string]any, path string, errs *[]error) {
	if node == nil {
		*errs = append(*errs, fmt.Errorf("no schema for %q", strings.TrimSuffix(path, ".")))
		return
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		prop, ok := node.Properties[k]
		if !ok {
			*errs = append(*errs, fmt.Errorf("%s%s is not in schema", path, k))
			continue
		}
		prop = root.resolve(prop)
		switch v := values[k].(type) {
		case map[string]any:
			checkObject(root, prop, v, path+k+".", errs)
		case float64:
			if prop.Minimum != nil && v < *prop.Minimum {
				*errs = append(*errs, fmt.Errorf("%s%s must be >= %v", path, k, *prop.Minimum))
			}
			if prop.Maximum != nil && v > *prop.Maximum {
				*errs = append(*errs, fmt.Errorf("%s%s must be <= %v", path, k, *prop.Maximum))
			}
		}
	}
}

// resolve follows local $ref links of n
func (s *schemaNode) resolve(n *schemaNode) *schemaNode {
	for n != nil && n.Ref != "" {
		name, ok := strings.CutPrefix(n.Ref, "#/$defs/")
		if !ok {
			return nil
		}
		n = s.Defs[name]
	}
	return n
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() (*jsonschema.Schema, error) {
	return jsonschema.Reflect(&Config{}), nil
}
