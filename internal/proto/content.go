package proto

import (
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// ContentValue converts decoded JSON content to a protobuf Value. Values
// structpb does not take directly, such as time.Time, are converted through
// their JSON encoding.
func ContentValue(v any) (*structpb.Value, error) {
	if val, err := structpb.NewValue(v); err == nil {
		return val, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	val := &structpb.Value{}
	if err := protojson.Unmarshal(b, val); err != nil {
		return nil, err
	}
	return val, nil
}

// ContentOf returns v as nil, bool, float64, string, []any or
// map[string]any.
func ContentOf(v *structpb.Value) any {
	if v == nil {
		return nil
	}
	return v.AsInterface()
}
