package archetypes

import (
	"github.com/automoto/vellum/components"
	cfg "github.com/automoto/vellum/config"
	"github.com/automoto/vellum/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Every UI state lives on a single tagged entity per world.
var (
	GUI = newArchetype(
		tags.GUI,
		components.GUI,
	)
	Input = newArchetype(
		tags.Input,
		components.Input,
	)
	Audio = newArchetype(
		tags.Audio,
		components.Audio,
	)
	Title = newArchetype(
		tags.Title,
		components.Title,
	)
	Options = newArchetype(
		tags.Options,
		components.Options,
	)
	SaveLoad = newArchetype(
		tags.SaveLoad,
		components.SaveLoad,
	)
	Dialog = newArchetype(
		tags.Dialog,
		components.Dialog,
	)
	Stage = newArchetype(
		tags.Stage,
		components.Stage,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
