package tags

import "github.com/yohamta/donburi"

var (
	GUI      = donburi.NewTag().SetName("GUI")
	Input    = donburi.NewTag().SetName("Input")
	Audio    = donburi.NewTag().SetName("Audio")
	Title    = donburi.NewTag().SetName("Title")
	Options  = donburi.NewTag().SetName("Options")
	SaveLoad = donburi.NewTag().SetName("SaveLoad")
	Dialog   = donburi.NewTag().SetName("Dialog")
	Stage    = donburi.NewTag().SetName("Stage")
)
