package snapshot

import (
	"bytes"
	"io"
	"iter"
)

// Serialize writes v to w. A nil codec selects Gob.
func Serialize(c Codec, w io.Writer, v any) error {
	c = codecOrDefault(c)
	if err := c.Encode(w, v); err != nil {
		return encodeErr(c, err)
	}
	return nil
}

// Deserialize reads a value of type T from r.
func Deserialize[T any](c Codec, r io.Reader) (T, error) {
	c = codecOrDefault(c)
	var v T
	if err := c.Decode(r, &v); err != nil {
		return v, decodeErr[T](c, err)
	}
	return v, nil
}

// Compress serializes v into a byte slice.
func Compress(c Codec, v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Serialize(c, &buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extract deserializes a value of type T from data.
func Extract[T any](c Codec, data []byte) (T, error) {
	return Deserialize[T](c, bytes.NewReader(data))
}

// DeepClone returns a copy of v which shares no memory with v. The copy is a
// gob round trip and inherits its limits: unexported fields are dropped, and
// struct types without exported fields as well as slices or arrays holding
// nil pointers fail with ErrEncode.
func DeepClone[T any](v T) (T, error) {
	data, err := Compress(Gob, v)
	if err != nil {
		var zero T
		return zero, err
	}
	return Extract[T](Gob, data)
}

// Sequence collects seq into a slice of deep copies of its elements.
// A nil seq yields an empty snapshot. Elements are cloned with DeepClone,
// so element types must be encodable by gob.
func Sequence[E any](seq iter.Seq[E]) ([]E, error) {
	elems := []E{}
	if seq == nil {
		return elems, nil
	}
	for e := range seq {
		elems = append(elems, e)
	}
	if len(elems) == 0 {
		return elems, nil
	}
	clone, err := DeepClone(elems)
	if err != nil {
		return nil, err
	}
	return clone, nil
}
