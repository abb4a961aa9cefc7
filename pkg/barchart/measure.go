package barchart

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMeasurer reports the rendered width of a string in pixels.
type TextMeasurer interface {
	MeasureText(text string) float64
}

// FaceMeasurer measures text with a font face.
type FaceMeasurer struct {
	Face font.Face
}

func NewFaceMeasurer(face font.Face) *FaceMeasurer {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceMeasurer{Face: face}
}

func (m *FaceMeasurer) MeasureText(text string) float64 {
	adv := font.MeasureString(m.Face, text)
	return float64(adv) / 64
}

// MeasureFunc adapts a plain function to TextMeasurer.
type MeasureFunc func(text string) float64

func (f MeasureFunc) MeasureText(text string) float64 { return f(text) }
