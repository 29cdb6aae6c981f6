package components

// OptionData is the persisted user preference set
type OptionData struct {
	TextSpeed   float64 `json:"textSpeed"`
	AutoDelay   float64 `json:"autoDelay"`
	TextSize    float64 `json:"textSize"`
	MainVolume  float64 `json:"mainVolume"`
	MusicVolume float64 `json:"bgmVolume"`
	SFXVolume   float64 `json:"seVolume"`
	VoiceVolume float64 `json:"vocalVolume"`
	Fullscreen  bool    `json:"fullScreen"`
	SlPage      int     `json:"slPage"`
}

// AppreciationData lists unlocked gallery items
type AppreciationData struct {
	Bgm []string `json:"bgm"`
	CG  []string `json:"cg"`
}

// HasItems reports whether anything is unlocked
func (a AppreciationData) HasItems() bool {
	return len(a.Bgm) > 0 || len(a.CG) > 0
}
