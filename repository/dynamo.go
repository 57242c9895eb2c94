package repository

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Every table uses a single string partition key holding the document
// UUID. The adapters in this package map between the typed models and
// their DynamoDB items; timestamps travel as RFC3339 strings.

func idKey(attr, id string) (map[string]types.AttributeValue, error) {
	key, err := attributevalue.MarshalMap(map[string]string{attr: id})
	if err != nil {
		return nil, fmt.Errorf("marshal key: %w", err)
	}
	return key, nil
}

// buildUpdateExpr turns a merge-patch map into an UpdateItem SET
// expression. Attribute names go through placeholders because several
// document fields (name, state, status) are DynamoDB reserved words.
func buildUpdateExpr(updates map[string]interface{}) (string, map[string]string, map[string]types.AttributeValue, error) {
	expr := "SET "
	names := make(map[string]string, len(updates))
	values := make(map[string]types.AttributeValue, len(updates))
	i := 0
	for k, v := range updates {
		namePH := fmt.Sprintf("#n%d", i)
		valPH := fmt.Sprintf(":v%d", i)
		if i > 0 {
			expr += ", "
		}
		expr += fmt.Sprintf("%s = %s", namePH, valPH)
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return "", nil, nil, fmt.Errorf("marshal update value %q: %w", k, err)
		}
		names[namePH] = k
		values[valPH] = av
		i++
	}
	return expr, names, values, nil
}
