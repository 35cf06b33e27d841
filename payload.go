package roomplanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FurnitureFormat is the drag-data key furniture descriptors travel under.
const FurnitureFormat = "furniture"

var ErrMalformedPayload = errors.New("malformed furniture payload")

// Descriptor identifies a catalog item.
type Descriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Color Color  `json:"color"`
}

func (d Descriptor) Archetype() Archetype {
	return ParseArchetype(d.ID)
}

// ParseDescriptor decodes a serialized descriptor. The payload must be a JSON
// object and the color must fit in 24 bits.
func ParseDescriptor(data string) (Descriptor, error) {
	data = strings.TrimSpace(data)
	if data == "" {
		return Descriptor{}, fmt.Errorf("%w: empty", ErrMalformedPayload)
	}
	var raw struct {
		ID    string       `json:"id"`
		Label string       `json:"label"`
		Color *json.Number `json:"color"`
	}
	if !strings.HasPrefix(data, "{") {
		return Descriptor{}, fmt.Errorf("%w: not an object", ErrMalformedPayload)
	}
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return Descriptor{}, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	d := Descriptor{ID: raw.ID, Label: raw.Label}
	if raw.Color != nil {
		v, err := raw.Color.Int64()
		if err != nil || v < 0 || v > colorMask {
			return Descriptor{}, fmt.Errorf("%w: color %s is not a 24-bit value", ErrMalformedPayload, raw.Color.String())
		}
		d.Color = Color(v)
	}
	return d, nil
}

// Encode serializes the descriptor for a DataTransfer.
func (d Descriptor) Encode() string {
	b, _ := json.Marshal(d)
	return string(b)
}
