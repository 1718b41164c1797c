package checks

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/matrix-docker/stackcheck/pkg/compose"
	"github.com/matrix-docker/stackcheck/pkg/console"
	"github.com/matrix-docker/stackcheck/pkg/logger"
)

var schemaLog = logger.New("checks:schema")

//go:embed schemas/compose.json
var composeSchemaJSON []byte

// composeSchema validates the top-level shape of a compose document: it
// catches structural mistakes like a scalar where a mapping is expected long
// before the container CLI would.
var composeSchema = mustCompileComposeSchema()

func mustCompileComposeSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(composeSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("invalid embedded compose schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("compose.json", doc); err != nil {
		panic(fmt.Sprintf("registering embedded compose schema: %v", err))
	}

	schema, err := compiler.Compile("compose.json")
	if err != nil {
		panic(fmt.Sprintf("compiling embedded compose schema: %v", err))
	}
	return schema
}

// checkComposeSchema validates the raw document against the embedded compose
// structure schema. Schema mismatches are advisory only: the compose file
// check owns the hard verdict on document shape, so this check never returns
// a violation.
func checkComposeSchema(_ context.Context, opts *Options) error {
	doc, err := compose.Load(opts.ComposeFile)
	if err != nil {
		return err
	}

	// Round-trip through JSON so the instance carries the value types the
	// schema validator expects from a JSON decode.
	data, err := json.Marshal(doc.Raw())
	if err != nil {
		return fmt.Errorf("encoding compose document: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding compose document: %w", err)
	}

	if err := composeSchema.Validate(instance); err != nil {
		schemaLog.Printf("Schema validation failed: %v", err)
		fmt.Fprintln(opts.Out, console.FormatWarningMessage(fmt.Sprintf("compose document does not match the compose schema: %v", err)))
		return nil
	}

	fmt.Fprintln(opts.Out, console.FormatSuccessMessage("compose document matches the compose schema"))
	return nil
}
