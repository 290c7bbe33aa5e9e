// internal/ui/fonts.go
package ui

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// MustFontFace parses the bundled typeface at the given size. Font data is
// compiled in, so a parse failure is a build defect, not a runtime case.
func MustFontFace(size float64) font.Face {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		log.Fatalf("parse font: %v", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingVertical,
	})
	if err != nil {
		log.Fatalf("create font face: %v", err)
	}
	return face
}
