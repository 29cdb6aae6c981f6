package systems

import (
	"errors"
	"testing"

	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/script"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// memStore is an in-memory ItemStore
type memStore struct {
	items    map[string][]byte
	failSave bool
}

func newMemStore() *memStore {
	return &memStore{items: map[string][]byte{}}
}

func (s *memStore) LoadItem(key string) ([]byte, error) {
	return s.items[key], nil
}

func (s *memStore) SaveItem(key string, data []byte) error {
	if s.failSave {
		return errors.New("disk full")
	}
	if data == nil {
		delete(s.items, key)
		return nil
	}
	s.items[key] = data
	return nil
}

// newTestECS returns an empty world and restores the process-wide user data
// when the test ends.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	UseStore(nil)
	UserOptions = DefaultOptions()
	Appreciation = components.AppreciationData{}
	t.Cleanup(func() {
		UseStore(nil)
		UserOptions = DefaultOptions()
		Appreciation = components.AppreciationData{}
	})
	return ecs.NewECS(donburi.NewWorld())
}

// useMemStore installs a fresh in-memory store for the test
func useMemStore(t *testing.T) *memStore {
	t.Helper()
	s := newMemStore()
	UseStore(s)
	return s
}

// click puts a fresh press at (x, y) into this frame's input
func click(e *ecs.ECS, x, y float64) {
	input := getOrCreateInput(e)
	input.Pointer = components.PointerData{X: x, Y: y, Pressed: true, JustPressed: true}
}

// pressAction makes id just pressed this frame
func pressAction(e *ecs.ECS, id cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[id] = true
}

// nextFrame clears this frame's input
func nextFrame(e *ecs.ECS) {
	input := getOrCreateInput(e)
	*input = components.InputData{}
}

func mustParse(t *testing.T, src string) *script.Scene {
	t.Helper()
	scene, err := script.Parse("test", "builtin:scene/test", src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return scene
}

// clickRect presses the centre of r
func clickRect(e *ecs.ECS, r rect) {
	click(e, r.X+r.W/2, r.Y+r.H/2)
}

func hasSFX(e *ecs.ECS, id cfg.SoundID) bool {
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			return true
		}
	}
	return false
}
