package rancher

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Body is a successful response body. It is JSON when the bytes form a valid
// JSON document and raw otherwise; an empty body is neither.
type Body struct {
	raw    []byte
	isJSON bool
}

// NewBody wraps raw response bytes.
func NewBody(raw []byte) *Body {
	return &Body{
		raw:    raw,
		isJSON: len(raw) > 0 && gjson.ValidBytes(raw),
	}
}

// Bytes returns the body as received.
func (b *Body) Bytes() []byte {
	return b.raw
}

// String returns the body as text.
func (b *Body) String() string {
	return string(b.raw)
}

// IsJSON reports whether the body parsed as JSON.
func (b *Body) IsJSON() bool {
	return b.isJSON
}

// IsEmpty reports whether the body has no content.
func (b *Body) IsEmpty() bool {
	return len(b.raw) == 0
}

// Decode unmarshals a JSON body into v.
func (b *Body) Decode(v interface{}) error {
	if b.IsEmpty() {
		return ErrEmptyBody
	}

	if !b.isJSON {
		return ErrNotJSON
	}

	err := json.Unmarshal(b.raw, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Get returns the value at a gjson path. Non-JSON bodies yield an empty result.
func (b *Body) Get(path string) gjson.Result {
	if !b.isJSON {
		return gjson.Result{}
	}

	return gjson.GetBytes(b.raw, path)
}

// Value returns the whole body as a gjson result.
func (b *Body) Value() gjson.Result {
	if !b.isJSON {
		return gjson.Result{}
	}

	return gjson.ParseBytes(b.raw)
}

// Field returns the value at path as a body of its own.
func (b *Body) Field(path string) (*Body, error) {
	result := b.Get(path)
	if !result.Exists() {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, path)
	}

	return NewBody([]byte(result.Raw)), nil
}

// MarshalJSON emits JSON bodies verbatim and raw bodies as a JSON string.
func (b *Body) MarshalJSON() ([]byte, error) {
	if b.isJSON {
		return b.raw, nil
	}

	if b.IsEmpty() {
		return []byte("null"), nil
	}

	data, err := json.Marshal(string(b.raw))
	if err != nil {
		return nil, fmt.Errorf("encoding raw body: %w", err)
	}

	return data, nil
}
