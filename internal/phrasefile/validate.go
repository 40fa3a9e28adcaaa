package phrasefile

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"
)

// ValidateSchema checks that the file has a string phrase column and, if it
// has an id column, that the id is an integer.
func ValidateSchema(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[strings.ToLower(field.Name())] = field
	}

	phrase, ok := columns["phrase"]
	if !ok {
		return fmt.Errorf("missing required column: phrase")
	}
	if !phrase.Leaf() || phrase.Type().Kind() != parquet.ByteArray {
		return fmt.Errorf("column phrase must be a string, got %s", phrase.Type())
	}

	if id, ok := columns["id"]; ok {
		if !id.Leaf() || (id.Type().Kind() != parquet.Int64 && id.Type().Kind() != parquet.Int32) {
			return fmt.Errorf("column id must be an integer, got %s", id.Type())
		}
	}
	return nil
}
