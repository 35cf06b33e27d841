package main

import "github.com/smasonuk/roomplanner"

// catalog is the keyboard palette, keys 1 to 6 in order.
var catalog = []roomplanner.Descriptor{
	{ID: "sofa", Label: "Sofa", Color: 0x6b8e9e},
	{ID: "table", Label: "Table", Color: 0x8b5a2b},
	{ID: "chair", Label: "Chair", Color: 0xa0522d},
	{ID: "bed", Label: "Bed", Color: 0xd8c8b0},
	{ID: "lamp", Label: "Lamp", Color: 0xf5f0e1},
	{ID: "shelf", Label: "Shelf", Color: 0x7a5230},
}
