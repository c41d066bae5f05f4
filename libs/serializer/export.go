package serializer

import (
	mathops "github.com/aaiyer/math-ops"
)

// EncodeSummary serializes a summary record using the named serializer from
// the default registry.
func EncodeSummary[T mathops.Float](serializerType string, summary mathops.Summary[T]) ([]byte, error) {
	s, err := New(serializerType)
	if err != nil {
		return nil, err
	}

	return s.Marshal(summary)
}

// DecodeSummary deserializes a summary record previously produced by
// EncodeSummary with the same serializer.
func DecodeSummary[T mathops.Float](serializerType string, data []byte) (mathops.Summary[T], error) {
	var summary mathops.Summary[T]

	s, err := New(serializerType)
	if err != nil {
		return summary, err
	}

	if err := s.Unmarshal(data, &summary); err != nil {
		return summary, err
	}

	return summary, nil
}

// EncodeVector serializes a vector's values using the named serializer from
// the default registry. Note that the JSON serializer cannot represent NaN
// slots; use msgpack for vectors carrying missing values.
func EncodeVector[T mathops.Float](serializerType string, v mathops.Vector[T]) ([]byte, error) {
	s, err := New(serializerType)
	if err != nil {
		return nil, err
	}

	return s.Marshal(v.Unwrap())
}

// DecodeVector deserializes values previously produced by EncodeVector with
// the same serializer and wraps them as a vector.
func DecodeVector[T mathops.Float](serializerType string, data []byte) (mathops.Vector[T], error) {
	s, err := New(serializerType)
	if err != nil {
		return mathops.Vector[T]{}, err
	}

	var values []T
	if err := s.Unmarshal(data, &values); err != nil {
		return mathops.Vector[T]{}, err
	}

	return mathops.Wrap(values), nil
}
