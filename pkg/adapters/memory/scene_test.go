package memory_test

import (
	"testing"

	"github.com/plin1112/mcell/pkg/adapters/memory"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScene_CommonAncestor(t *testing.T) {
	scene := memory.NewScene("world")
	cellGroup, err := scene.AddObject("cell_group", domain.ObjectMeta, scene.Root())
	require.NoError(t, err)
	cell, err := scene.AddObject("cell", domain.ObjectPolygon, cellGroup)
	require.NoError(t, err)
	site, err := scene.AddObject("site", domain.ObjectReleaseSite, cellGroup)
	require.NoError(t, err)
	other, err := scene.AddObject("other", domain.ObjectBox, scene.Root())
	require.NoError(t, err)
	detached, err := scene.AddObject("template", domain.ObjectPolygon, nil)
	require.NoError(t, err)

	assert.Same(t, cellGroup, scene.CommonAncestor(cell, site))
	assert.Same(t, scene.Root(), scene.CommonAncestor(site, other))
	assert.Same(t, cell, scene.CommonAncestor(cell, cell))
	assert.Nil(t, scene.CommonAncestor(site, detached))
	assert.Nil(t, scene.CommonAncestor(nil, cell))
}

func TestScene_Regions(t *testing.T) {
	scene := memory.NewScene("world")
	cell, err := scene.AddObject("cell", domain.ObjectPolygon, scene.Root())
	require.NoError(t, err)
	_, err = scene.AddRegion(cell, "membrane")
	require.NoError(t, err)

	all, err := scene.LookupRegion("cell,ALL")
	require.NoError(t, err)
	assert.Same(t, cell, all.Parent)

	_, err = scene.LookupRegion("cell,nope")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	_, err = scene.AddRegion(cell, "membrane")
	assert.Error(t, err, "duplicate region should be rejected")

	assert.Equal(t, []string{"cell,ALL", "cell,membrane"}, scene.ListRegions())

	// Meta objects carry no implicit region
	_, err = scene.LookupRegion("world,ALL")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
}

func TestScene_RemoveObject(t *testing.T) {
	scene := memory.NewScene("world")
	group, err := scene.AddObject("group", domain.ObjectMeta, scene.Root())
	require.NoError(t, err)
	cell, err := scene.AddObject("cell", domain.ObjectPolygon, group)
	require.NoError(t, err)
	_, err = scene.AddRegion(cell, "membrane")
	require.NoError(t, err)

	assert.Error(t, scene.RemoveObject(group), "objects with children stay")
	assert.Error(t, scene.RemoveObject(scene.Root()))
	assert.Error(t, scene.RemoveObject(&domain.Object{Name: "cell"}), "a lookalike is not the registered object")

	require.NoError(t, scene.RemoveObject(cell))
	_, ok := scene.Object("cell")
	assert.False(t, ok)
	assert.Empty(t, group.Children)
	assert.Nil(t, cell.Parent)
	_, err = scene.LookupRegion("cell,membrane")
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)

	// The name is free again.
	_, err = scene.AddObject("cell", domain.ObjectBox, group)
	assert.NoError(t, err)
}
