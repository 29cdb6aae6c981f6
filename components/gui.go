package components

import "github.com/yohamta/donburi"

// MenuPanelTag selects the page shown by the menu panel
type MenuPanelTag int

const (
	MenuPanelSave MenuPanelTag = iota
	MenuPanelLoad
	MenuPanelOption
)

// GUIVisibility names a toggleable GUI element
type GUIVisibility int

const (
	VisibilityTitle GUIVisibility = iota
	VisibilityEnterGame
	VisibilityMenuPanel
	VisibilityExtra
)

// GUIData is the visibility state shared by the title, menu panel and stage
type GUIData struct {
	ShowTitle          bool
	IsEnterGame        bool // the "click to enter" gate has been passed
	ShowMenuPanel      bool
	ShowExtra          bool
	CurrentMenuTag     MenuPanelTag
	TitleBg            string
	TitleBgm           string
	EnableAppreciation bool
}

var GUI = donburi.NewComponentType[GUIData]()
