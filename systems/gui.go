package systems

import (
	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGUI returns the singleton GUI state, creating it with the title
// showing.
func GetOrCreateGUI(e *ecs.ECS) *components.GUIData {
	entry, ok := components.GUI.First(e.World)
	if !ok {
		entry = archetypes.GUI.Spawn(e)
		components.GUI.SetValue(entry, components.GUIData{
			ShowTitle:          true,
			CurrentMenuTag:     components.MenuPanelOption,
			TitleBg:            cfg.Game.TitleBackground,
			TitleBgm:           cfg.Game.TitleBgm,
			EnableAppreciation: cfg.Game.EnableAppreciation,
		})
	}
	return components.GUI.Get(entry)
}

// SetVisibility shows or hides one GUI element
func SetVisibility(e *ecs.ECS, which components.GUIVisibility, visible bool) {
	gui := GetOrCreateGUI(e)
	switch which {
	case components.VisibilityTitle:
		gui.ShowTitle = visible
	case components.VisibilityEnterGame:
		gui.IsEnterGame = visible
	case components.VisibilityMenuPanel:
		gui.ShowMenuPanel = visible
		if !visible {
			closeMenuPanelPages(e)
		}
	case components.VisibilityExtra:
		gui.ShowExtra = visible
	}
}

// SetMenuPanelTag switches the menu panel page
func SetMenuPanelTag(e *ecs.ECS, tag components.MenuPanelTag) {
	gui := GetOrCreateGUI(e)
	if gui.CurrentMenuTag == tag {
		return
	}
	if gui.CurrentMenuTag == components.MenuPanelOption {
		closeOptions(e)
	}
	gui.CurrentMenuTag = tag
	if tag != components.MenuPanelOption {
		resetSaveLoadPage(e)
	}
}

// OpenMenuPanel shows the menu panel on tag
func OpenMenuPanel(e *ecs.ECS, tag components.MenuPanelTag) {
	SetMenuPanelTag(e, tag)
	resetSaveLoadPage(e)
	SetVisibility(e, components.VisibilityMenuPanel, true)
}

// closeMenuPanelPages tears down page state that must not outlive the panel
func closeMenuPanelPages(e *ecs.ECS) {
	closeOptions(e)
	resetSaveLoadPage(e)
}
