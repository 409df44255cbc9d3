// Package schema provides utilities for working with JSON schemas.
package schema

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/yeisme/jprof/pkg/configs"
)

// GenConfigSchema generates the JSON schema for the application configuration
// file and writes it to the provided writer.
func GenConfigSchema(out io.Writer) error {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "mapstructure",
	}
	configSchema := reflector.Reflect(configs.Config{})
	schemaJSON, err := json.MarshalIndent(configSchema, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(schemaJSON))
	return err
}
