package release_test

import (
	"testing"

	"github.com/plin1112/mcell/pkg/adapters/memory"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/release"
	"github.com/stretchr/testify/require"
)

var (
	volumeA   = &domain.Species{Name: "A"}
	surfaceB  = &domain.Species{Name: "B", Flags: domain.SpeciesNotFree | domain.SpeciesOnGrid}
	surfClass = &domain.Species{Name: "reflective", Flags: domain.SpeciesSurfaceClass | domain.SpeciesNotFree}
)

type world struct {
	cfg   *domain.Config
	scene *memory.Scene
	group *domain.Object
	cell  *domain.Object
	site  *domain.Object
	tmpl  *domain.Object
}

func newWorld(t *testing.T) *world {
	t.Helper()
	scene := memory.NewScene("world")
	group, err := scene.AddObject("group", domain.ObjectMeta, scene.Root())
	require.NoError(t, err)
	cell, err := scene.AddObject("cell", domain.ObjectPolygon, group)
	require.NoError(t, err)
	site, err := scene.AddObject("rel", domain.ObjectReleaseSite, group)
	require.NoError(t, err)
	tmpl, err := scene.AddObject("template", domain.ObjectPolygon, nil)
	require.NoError(t, err)

	return &world{
		cfg:   domain.NewConfig(scene.Root()),
		scene: scene,
		group: group,
		cell:  cell,
		site:  site,
		tmpl:  tmpl,
	}
}

func newSite(t *testing.T, cfg *domain.Config, name string) *domain.ReleaseSite {
	t.Helper()
	site, err := release.New(cfg, name)
	require.NoError(t, err)
	return site
}
