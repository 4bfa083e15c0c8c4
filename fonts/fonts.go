package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD      FontName = "hud"
	HUDLarge FontName = "hud-large"
	Small    FontName = "small"
)

// Get returns the raw face for measuring.
func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the face wrapped for text/v2 drawing.
func (f FontName) Face() text.Face {
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	textFaces[f] = tf
	return tf
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults parses the bundled Go Regular face at the HUD sizes.
func LoadDefaults(size float64) error {
	for name, s := range map[FontName]float64{
		HUD:      size,
		HUDLarge: size * 2,
		Small:    size * 0.75,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, s); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("error parsing font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
