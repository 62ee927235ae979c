// Package barcode genera imágenes PNG Code 128 para los códigos de los
// productos (las pega el front en la vista de etiquetas y en el escáner de
// prueba).
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
)

// Dimensiones por defecto de la imagen generada (px).
const (
	DefaultWidth  = 300
	DefaultHeight = 80
)

// Code128Renderer genera PNGs Code 128.
type Code128Renderer struct {
	width  int
	height int
}

// NewCode128Renderer construye el renderer. Dimensiones <= 0 caen a los defaults.
func NewCode128Renderer(width, height int) *Code128Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Code128Renderer{width: width, height: height}
}

// RenderPNG codifica value como Code 128 y devuelve el PNG escalado.
func (r *Code128Renderer) RenderPNG(value string) ([]byte, error) {
	if value == "" {
		return nil, fmt.Errorf("código vacío")
	}
	encoded, err := code128.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("codificar code128 %q: %w", value, err)
	}
	scaled, err := barcode.Scale(encoded, r.width, r.height)
	if err != nil {
		return nil, fmt.Errorf("escalar code128: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("codificar PNG: %w", err)
	}
	return buf.Bytes(), nil
}
