// internal/decks/schema.go
package decks

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// cardsSchema describes the simplified card list written to cards.json.
const cardsSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "quantity", "board"],
    "properties": {
      "name": { "type": "string", "minLength": 1 },
      "quantity": { "type": "integer", "minimum": 1 },
      "board": { "type": "string", "minLength": 1 },
      "type_line": { "type": "string" },
      "mana_cost": { "type": "string" },
      "cmc": { "type": "number", "minimum": 0 }
    },
    "additionalProperties": false
  }
}`

// ValidateCards checks a cards.json document against the card list
// schema and returns an error describing every violation.
func ValidateCards(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(cardsSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("could not validate card list: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("card list does not match schema: %s", strings.Join(problems, "; "))
}
