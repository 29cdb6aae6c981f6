package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// SaveData is one persisted save slot
type SaveData struct {
	ID         string `json:"id"`
	Index      int    `json:"index"`
	SaveTime   string `json:"saveTime"`
	SceneName  string `json:"sceneName"`
	SceneURL   string `json:"sceneUrl"`
	SentenceID int    `json:"currentSentenceId"`
	ShowName   string `json:"showName"`
	ShowText   string `json:"showText"`
}

// SlotAnimation fades one slot in after a per-slot delay
type SlotAnimation struct {
	Tween *gween.Sequence
	Alpha float32
}

// SaveLoadData caches the slots of the visible page
type SaveLoadData struct {
	LoadedPage int // page the cache belongs to, 0 = none
	Saves      map[int]*SaveData
	Animations []SlotAnimation
}

var SaveLoad = donburi.NewComponentType[SaveLoadData]()
