package api

import (
	"encoding/json"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Ensure JSONCodec implements connect.Codec
var _ connect.Codec = JSONCodec{}

// JSONCodec marshals plain Go structs with encoding/json.
type JSONCodec struct{}

// Name returns the codec name, matching Content-Type application/json.
func (JSONCodec) Name() string { return "json" }

// Marshal encodes v as JSON.
func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data into v. An empty body leaves v at its zero value.
func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}
