package poolgen

import (
	"encoding/json"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// envelopeSchema is the minimal well-formedness gate for generator
// output: an object carrying a steps array. Per-step field coercion is
// the parser's job; this only decides whether the payload is worth
// walking at all.
const envelopeSchema = `{
	"type": "object",
	"properties": {
		"steps": {"type": "array"}
	},
	"required": ["steps"]
}`

var (
	envelopeOnce sync.Once
	envelope     *jsonschema.Schema
)

func compiledEnvelope() *jsonschema.Schema {
	envelopeOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(envelopeSchema), &def); err != nil {
			panic("poolgen: invalid envelope schema: " + err.Error())
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://practice-pool.json", def); err != nil {
			panic("poolgen: add envelope schema: " + err.Error())
		}
		compiled, err := c.Compile("schema://practice-pool.json")
		if err != nil {
			panic("poolgen: compile envelope schema: " + err.Error())
		}
		envelope = compiled
	})
	return envelope
}

// wellFormed reports whether a parsed payload passes the envelope
// schema.
func wellFormed(doc any) bool {
	return compiledEnvelope().Validate(doc) == nil
}
