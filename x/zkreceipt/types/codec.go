package types

import (
	"encoding/json"
	"fmt"
)

// jsonValueCodec adapts an arbitrary Go struct to collections.ValueCodec via
// encoding/json. The teacher's own modules lean on codec.CollValue, which
// needs a protobuf-generated type; none of this module's registry values
// are protobuf messages (there is no protoc/buf codegen step in this
// repository), so encoding/json is the stdlib fallback for the one concern
// a generated (un)marshaller would otherwise cover.
type jsonValueCodec[T any] struct {
	typeName string
}

// NewJSONValueCodec builds a collections.ValueCodec for T backed by JSON.
// typeName is only used for diagnostics (ValueType / Stringify).
func NewJSONValueCodec[T any](typeName string) jsonValueCodec[T] {
	return jsonValueCodec[T]{typeName: typeName}
}

func (c jsonValueCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) Decode(b []byte) (T, error) {
	var v T
	err := json.Unmarshal(b, &v)
	return v, err
}

func (c jsonValueCodec[T]) EncodeJSON(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValueCodec[T]) DecodeJSON(b []byte) (T, error) {
	return c.Decode(b)
}

func (c jsonValueCodec[T]) Stringify(value T) string {
	return fmt.Sprintf("%+v", value)
}

func (c jsonValueCodec[T]) ValueType() string {
	return c.typeName
}
