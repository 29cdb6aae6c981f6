package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Small   FontName = "small"
	Large   FontName = "large"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Stage   FontName = "stage" // dialogue text, scaled by the text size option
)

// StageBaseSize is the dialogue font size at 100% text size
const StageBaseSize = 24

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Width returns the advance width of s in pixels.
func (f FontName) Width(s string) int {
	return font.MeasureString(getFont(f), s).Ceil()
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face used by the UI from the Go fonts.
func LoadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 20)
	LoadFontWithSize(Small, goregular.TTF, 14)
	LoadFontWithSize(Large, goregular.TTF, 28)
	LoadFontWithSize(Bold, gobold.TTF, 22)
	LoadFontWithSize(Title, gobold.TTF, 56)
	ScaleStage(100)
}

// ScaleStage reloads the dialogue face at percent of StageBaseSize.
func ScaleStage(percent float64) {
	LoadFontWithSize(Stage, goregular.TTF, StageBaseSize*percent/100)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
