package release_test

import (
	"errors"
	"testing"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/regionexpr"
	"github.com/plin1112/mcell/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGeometryRegion(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	cellAll, err := w.scene.LookupRegion("cell,ALL")
	require.NoError(t, err)
	expr, err := regionexpr.MakeLeaf(cellAll)
	require.NoError(t, err)

	require.NoError(t, release.SetGeometryRegion(w.cfg, site, w.site, expr, w.scene))
	assert.Equal(t, domain.ShapeRegion, site.Shape)
	require.NotNil(t, site.Region)
	assert.Same(t, expr, site.Region.Expression)
	assert.Same(t, w.site, site.Region.Self)
	assert.True(t, w.cfg.PlaceWaypoints)
}

func TestSetGeometryRegion_UnreachableLeavesSiteUntouched(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	tmplAll, err := w.scene.LookupRegion("template,ALL")
	require.NoError(t, err)
	expr, err := regionexpr.MakeLeaf(tmplAll)
	require.NoError(t, err)

	err = release.SetGeometryRegion(w.cfg, site, w.site, expr, w.scene)
	assert.ErrorIs(t, err, domain.ErrRegionUnreachable)

	var unreachable *domain.UnreachableRegionError
	require.True(t, errors.As(err, &unreachable))
	assert.Equal(t, "template,ALL", unreachable.Region)
	assert.Contains(t, err.Error(), "'rel'")

	assert.Equal(t, domain.ShapeUndefined, site.Shape)
	assert.Nil(t, site.Region)
	assert.False(t, w.cfg.PlaceWaypoints)
}

func TestSetGeometryRegion_NilExpression(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	err := release.SetGeometryRegion(w.cfg, site, w.site, nil, w.scene)
	assert.ErrorIs(t, err, domain.ErrInvalidExpression)
}

func TestSetGeometryObject(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	require.NoError(t, release.SetGeometryObject(w.cfg, site, w.cell, w.scene, w.scene))
	assert.Equal(t, domain.ShapeRegion, site.Shape)
	require.NotNil(t, site.Region)
	assert.True(t, site.Region.Expression.IsLeaf())

	regions := site.Region.Expression.Regions()
	require.Len(t, regions, 1)
	assert.Equal(t, "cell,ALL", regions[0].QualifiedName())
	assert.True(t, regions[0].CountContents)
	assert.True(t, w.cfg.PlaceWaypoints)
}

func TestSetGeometryObject_InvalidTargets(t *testing.T) {
	w := newWorld(t)

	tests := []struct {
		name   string
		target *domain.Object
	}{
		{"meta object", w.group},
		{"release site", w.site},
		{"root instance", w.scene.Root()},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site := newSite(t, w.cfg, "rel")
			err := release.SetGeometryObject(w.cfg, site, tt.target, w.scene, w.scene)
			assert.ErrorIs(t, err, domain.ErrInvalidTarget)
			assert.Equal(t, domain.ShapeUndefined, site.Shape)
			assert.Nil(t, site.Region)
		})
	}
	assert.False(t, w.cfg.PlaceWaypoints)
}

func TestSetGeometryObject_RollsBackOnUnreachable(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	err := release.SetGeometryObject(w.cfg, site, w.tmpl, w.scene, w.scene)
	assert.ErrorIs(t, err, domain.ErrRegionUnreachable)
	assert.Equal(t, domain.ShapeUndefined, site.Shape)

	tmplAll, lookupErr := w.scene.LookupRegion("template,ALL")
	require.NoError(t, lookupErr)
	assert.False(t, tmplAll.CountContents, "count flag should be restored after a rejected release")
}

func TestSetGeometryObject_MissingWholeRegion(t *testing.T) {
	w := newWorld(t)
	site := newSite(t, w.cfg, "rel")

	// Geometric object created outside the scene registry: no ",ALL" region.
	loose := &domain.Object{Name: "loose", Type: domain.ObjectBox, Parent: w.group}

	err := release.SetGeometryObject(w.cfg, site, loose, w.scene, w.scene)
	assert.ErrorIs(t, err, domain.ErrRegionNotFound)
	assert.Equal(t, domain.ShapeUndefined, site.Shape)
}
