package snapshot

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrDecode signals that a snapshot could not be decoded into the
// requested type.
var ErrDecode = errors.New("snapshot: cannot decode")

// ErrEncode signals that a value could not be serialized.
var ErrEncode = errors.New("snapshot: cannot encode")

// Codec encodes values to and decodes values from a byte stream.
type Codec interface {
	Name() string
	Encode(w io.Writer, v any) error
	Decode(r io.Reader, v any) error
}

// Gob encodes values with encoding/gob.
var Gob Codec = gobCodec{}

// YAML encodes values as YAML documents.
var YAML Codec = yamlCodec{}

type gobCodec struct{}

func (gobCodec) Name() string { return "gob" }

func (gobCodec) Encode(w io.Writer, v any) error {
	return gob.NewEncoder(w).Encode(v)
}

func (gobCodec) Decode(r io.Reader, v any) error {
	return gob.NewDecoder(r).Decode(v)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Encode(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func (yamlCodec) Decode(r io.Reader, v any) error {
	return yaml.NewDecoder(r).Decode(v)
}

func codecOrDefault(c Codec) Codec {
	if c == nil {
		return Gob
	}
	return c
}

func encodeErr(c Codec, err error) error {
	return fmt.Errorf("%w (%s): %v", ErrEncode, c.Name(), err)
}

func decodeErr[T any](c Codec, err error) error {
	var zero T
	return fmt.Errorf("%w (%s) as %T: %v", ErrDecode, c.Name(), zero, err)
}
