package systems

import (
	"fmt"
	"time"

	"github.com/automoto/vellum/archetypes"
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/fonts"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// now is swapped out by tests
var now = time.Now

// GetOrCreateSaveLoad returns the singleton save/load browser state
func GetOrCreateSaveLoad(e *ecs.ECS) *components.SaveLoadData {
	entry, ok := components.SaveLoad.First(e.World)
	if !ok {
		entry = archetypes.SaveLoad.Spawn(e)
		components.SaveLoad.SetValue(entry, components.SaveLoadData{
			Saves: map[int]*components.SaveData{},
		})
	}
	return components.SaveLoad.Get(entry)
}

// resetSaveLoadPage drops the slot cache so the next frame reloads the page
// and replays the fade-in.
func resetSaveLoadPage(e *ecs.ECS) {
	entry, ok := components.SaveLoad.First(e.World)
	if !ok {
		return
	}
	components.SaveLoad.Get(entry).LoadedPage = 0
}

// slotIndex maps a 1-based page and 0-based position to a 1-based slot index
func slotIndex(page, pos int) int {
	return (page-1)*cfg.SaveLoad.SavesPerPage + pos + 1
}

// ensurePageLoaded reads the visible page from the store and starts the
// staggered fade-in.
func ensurePageLoaded(sl *components.SaveLoadData) {
	page := UserOptions.SlPage
	if sl.LoadedPage == page {
		return
	}
	sl.LoadedPage = page
	sl.Saves = make(map[int]*components.SaveData, cfg.SaveLoad.SavesPerPage)
	sl.Animations = make([]components.SlotAnimation, cfg.SaveLoad.SavesPerPage)

	step := float32(cfg.SaveLoad.AnimationStepMs) / 1000
	fadeDur := float32(cfg.SaveLoad.AnimationFadeMs) / 1000
	for pos := 0; pos < cfg.SaveLoad.SavesPerPage; pos++ {
		index := slotIndex(page, pos)
		if s := LoadSlot(index); s != nil {
			sl.Saves[index] = s
		}

		seq := gween.NewSequence()
		if pos > 0 {
			seq.Add(gween.New(0, 0, step*float32(pos), ease.Linear))
		}
		seq.Add(gween.New(0, 1, fadeDur, ease.OutQuad))
		sl.Animations[pos] = components.SlotAnimation{Tween: seq}
	}
}

// SetSaveLoadPage switches the browser page and persists it
func SetSaveLoadPage(e *ecs.ECS, page int) {
	if page < 1 || page > cfg.SaveLoad.TotalPages || page == UserOptions.SlPage {
		return
	}
	UserOptions.SlPage = page
	SaveUserOptions()
}

// CurrentSaveData snapshots the stage position, or nil when no scene plays
func CurrentSaveData(e *ecs.ECS, index int) *components.SaveData {
	entry, ok := components.Stage.First(e.World)
	if !ok {
		return nil
	}
	st := components.Stage.Get(entry)
	if st.Scene == nil {
		return nil
	}
	return &components.SaveData{
		ID:         uuid.NewString(),
		Index:      index,
		SaveTime:   now().Format(cfg.SaveLoad.TimeFormat),
		SceneName:  st.Scene.Name,
		SceneURL:   st.Scene.URL,
		SentenceID: st.SentenceID,
		ShowName:   st.ShowName,
		ShowText:   st.ShowText,
	}
}

// SaveToSlot writes the current stage position into slot index
func SaveToSlot(e *ecs.ECS, index int) bool {
	data := CurrentSaveData(e, index)
	if data == nil {
		return false
	}
	if err := StoreSlot(data); err != nil {
		return false
	}
	sl := GetOrCreateSaveLoad(e)
	sl.Saves[index] = data
	cfg.Log.WithFields(logrus.Fields{"slot": index, "scene": data.SceneName, "sentence": data.SentenceID}).Info("Game saved")
	return true
}

// verifySlot re-reads a cached slot so a load never restores data that was
// replaced behind the browser's back.
func verifySlot(cached *components.SaveData) *components.SaveData {
	fresh := LoadSlot(cached.Index)
	if fresh == nil {
		if store == nil {
			return cached
		}
		return nil
	}
	if fresh.ID != cached.ID {
		cfg.Log.WithField("slot", cached.Index).Info("Save slot changed since it was listed, loading the stored one")
	}
	return fresh
}

func saveSlotRect(pos int) rect {
	c := cfg.SaveLoad
	col := pos % c.Columns
	row := pos / c.Columns
	return rect{
		X: c.GridX + float64(col)*(c.ItemWidth+c.ItemGap),
		Y: c.GridY + float64(row)*(c.ItemHeight+c.ItemGap),
		W: c.ItemWidth,
		H: c.ItemHeight,
	}
}

func pageButtonRect(page int) rect {
	c := cfg.SaveLoad
	return rect{
		X: c.PageButtonsX + float64(page-1)*(c.PageButtonSize+c.PageButtonGap),
		Y: c.PageButtonsY,
		W: c.PageButtonSize,
		H: c.PageButtonSize,
	}
}

// NewUpdateSaveLoad creates the save/load browser system. onLoad receives the
// verified save when the player loads a slot.
func NewUpdateSaveLoad(onLoad func(*components.SaveData)) ecs.System {
	return func(e *ecs.ECS) {
		gui := GetOrCreateGUI(e)
		if !gui.ShowMenuPanel || gui.CurrentMenuTag == components.MenuPanelOption {
			return
		}
		isSave := gui.CurrentMenuTag == components.MenuPanelSave

		sl := GetOrCreateSaveLoad(e)
		input := getOrCreateInput(e)
		ensurePageLoaded(sl)

		dt := float32(1.0 / float64(ebiten.TPS()))
		for i := range sl.Animations {
			anim := &sl.Animations[i]
			if anim.Tween == nil {
				continue
			}
			alpha, _, done := anim.Tween.Update(dt)
			anim.Alpha = alpha
			if done {
				anim.Alpha = 1
				anim.Tween = nil
			}
		}

		// Keyboard paging
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			SetSaveLoadPage(e, UserOptions.SlPage-1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			SetSaveLoadPage(e, UserOptions.SlPage+1)
		}

		for page := 1; page <= cfg.SaveLoad.TotalPages; page++ {
			key := fmt.Sprintf("saveload.page.%d", page)
			if ev := pointerButton(e, input, key, pageButtonRect(page), true); ev.Clicked {
				PlaySFX(e, cfg.SoundPageChange)
				SetSaveLoadPage(e, page)
			}
		}

		for pos := 0; pos < cfg.SaveLoad.SavesPerPage; pos++ {
			index := slotIndex(sl.LoadedPage, pos)
			key := fmt.Sprintf("saveload.slot.%d", index)
			ev := pointerButton(e, input, key, saveSlotRect(pos), true)
			if !ev.Clicked {
				continue
			}

			existing := sl.Saves[index]
			switch {
			case isSave && existing == nil:
				if SaveToSlot(e, index) {
					PlaySFX(e, cfg.SoundPageChange)
				}
			case isSave:
				PlaySFX(e, cfg.SoundDialogOpen)
				ShowDialog(e, components.DialogData{
					Title:     fmt.Sprintf("Overwrite save %s?", slotLabel(index)),
					LeftText:  "Yes",
					RightText: "No",
					LeftFunc: func() {
						if SaveToSlot(e, index) {
							PlaySFX(e, cfg.SoundPageChange)
						}
					},
				})
			case existing != nil:
				PlaySFX(e, cfg.SoundClick)
				data := verifySlot(existing)
				if data == nil {
					cfg.Log.WithField("slot", index).Warn("Could not load save, slot is empty now")
					resetSaveLoadPage(e)
					continue
				}
				SetVisibility(e, components.VisibilityMenuPanel, false)
				SetVisibility(e, components.VisibilityTitle, false)
				if onLoad != nil {
					onLoad(data)
				}
				return
			}
		}
	}
}

func slotLabel(index int) string {
	return fmt.Sprintf("#%02d", index)
}

// slotTitle is the headline of a filled slot
func slotTitle(s *components.SaveData, isSave bool) string {
	if s.ShowText == "" {
		return cfg.SaveLoad.UnknownSceneTitle
	}
	if !isSave {
		return s.ShowText
	}
	runes := []rune(s.ShowText)
	if len(runes) <= cfg.SaveLoad.TitleMaxRunes {
		return s.ShowText
	}
	return string(runes[:cfg.SaveLoad.TitleMaxRunes]) + "..."
}

// slotSpeech is the "speaker:text" line of a filled slot
func slotSpeech(s *components.SaveData) string {
	return s.ShowName + ":" + s.ShowText
}

// slotPosition is the "scene-sentence" line of a filled slot
func slotPosition(s *components.SaveData) string {
	return fmt.Sprintf("%s-%d", s.SceneName, s.SentenceID)
}

// ellipsize shortens s to fit width pixels in face f
func ellipsize(s string, f fonts.FontName, width float64) string {
	if float64(f.Width(s)) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		cut := string(runes) + "..."
		if float64(f.Width(cut)) <= width {
			return cut
		}
	}
	return ""
}

// DrawSaveLoad renders the save/load browser
func DrawSaveLoad(e *ecs.ECS, screen *ebiten.Image) {
	gui := GetOrCreateGUI(e)
	if !gui.ShowMenuPanel || gui.CurrentMenuTag == components.MenuPanelOption {
		return
	}
	isSave := gui.CurrentMenuTag == components.MenuPanelSave
	sl := GetOrCreateSaveLoad(e)
	c := cfg.SaveLoad

	accent := c.LoadAccentColor
	header := "Load"
	if isSave {
		accent = c.SaveAccentColor
		header = "Save"
	}
	drawText(screen, header, fonts.Large, c.GridX, c.PageButtonsY+30, accent)

	for page := 1; page <= c.TotalPages; page++ {
		r := pageButtonRect(page)
		bg := c.PageColor
		if page == UserOptions.SlPage {
			bg = c.PageActiveColor
		}
		fillRect(screen, r, bg)
		drawTextCentered(screen, fmt.Sprint(page), fonts.Small, r, c.TextColor)
	}

	input := getOrCreateInput(e)
	for pos := 0; pos < c.SavesPerPage; pos++ {
		index := slotIndex(sl.LoadedPage, pos)
		var alpha float32 = 1
		if pos < len(sl.Animations) {
			alpha = sl.Animations[pos].Alpha
		}
		r := saveSlotRect(pos)

		bg := c.ItemColor
		if input.HoveredWidget == fmt.Sprintf("saveload.slot.%d", index) {
			bg = c.ItemHoverColor
		}
		fillRect(screen, r, fade(bg, alpha))
		strokeRect(screen, r, 2, fade(accent, alpha))

		textColor := fade(c.TextColor, alpha)
		inner := r.W - 24
		drawText(screen, slotLabel(index), fonts.Bold, r.X+12, r.Y+30, fade(accent, alpha))

		s := sl.Saves[index]
		if s == nil {
			drawTextCentered(screen, c.EmptyText, fonts.Regular, r, textColor)
			continue
		}
		drawText(screen, ellipsize(slotTitle(s, isSave), fonts.Regular, inner), fonts.Regular, r.X+12, r.Y+70, textColor)
		drawText(screen, ellipsize(slotSpeech(s), fonts.Small, inner), fonts.Small, r.X+12, r.Y+110, textColor)
		drawText(screen, ellipsize(slotPosition(s), fonts.Small, inner), fonts.Small, r.X+12, r.Y+140, textColor)
		drawText(screen, s.SaveTime, fonts.Small, r.X+12, r.Y+r.H-16, textColor)
	}
}
