package roomplanner

import (
	"errors"
	"testing"
)

func TestParseDescriptor(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		want    Descriptor
		wantErr bool
	}{
		{
			name: "valid",
			data: `{"id":"sofa","label":"Sofa","color":7048862}`,
			want: Descriptor{ID: "sofa", Label: "Sofa", Color: 0x6b8e9e},
		},
		{
			name: "extra fields and spacing",
			data: "  {\"id\": \"mesa\", \"label\": \"Mesa\", \"color\": 0, \"w\": 2}\n",
			want: Descriptor{ID: "mesa", Label: "Mesa"},
		},
		{
			name: "missing color",
			data: `{"id":"lamp","label":"Lamp"}`,
			want: Descriptor{ID: "lamp", Label: "Lamp"},
		},
		{name: "empty", data: "", wantErr: true},
		{name: "not an object", data: `"sofa"`, wantErr: true},
		{name: "array", data: `[{"id":"sofa"}]`, wantErr: true},
		{name: "truncated", data: `{"id":"sofa"`, wantErr: true},
		{name: "color too large", data: `{"id":"sofa","color":16777216}`, wantErr: true},
		{name: "negative color", data: `{"id":"sofa","color":-1}`, wantErr: true},
		{name: "fractional color", data: `{"id":"sofa","color":1.5}`, wantErr: true},
		{name: "string color", data: `{"id":"sofa","color":"red"}`, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDescriptor(tc.data)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedPayload) {
					t.Errorf("ParseDescriptor() error = %v, want ErrMalformedPayload", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDescriptor() error = %v", err)
			}
			if got != tc.want {
				t.Errorf("ParseDescriptor() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDescriptorEncode(t *testing.T) {
	d := Descriptor{ID: "estanteria", Label: "Estantería", Color: 0x7a5230}
	got, err := ParseDescriptor(d.Encode())
	if err != nil || got != d {
		t.Errorf("ParseDescriptor(Encode()) = %+v, %v", got, err)
	}
	if got.Archetype() != Shelf {
		t.Errorf("Archetype() = %v", got.Archetype())
	}
}
