package components

import (
	"github.com/automoto/vellum/script"
	"github.com/yohamta/donburi"
)

// StageData is the text playback state
type StageData struct {
	Scene      *script.Scene
	SentenceID int // index into Scene.Sentences
	ShowName   string
	ShowText   string
	IsRead     bool    // the current line had been read before it was shown
	Revealed   float64 // runes of ShowText revealed so far
	AutoMode   bool
	AutoTimer  float64 // seconds since the line was fully revealed
	SkipTimer  int     // frames until the next skip step
	Ended      bool
}

var Stage = donburi.NewComponentType[StageData]()
