package release_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoleculeList_ScalesLocations(t *testing.T) {
	cfg := domain.NewConfig(nil)
	cfg.LengthUnit = 0.5
	site := newSite(t, cfg, "list")

	release.SetMoleculeList(cfg, site, []domain.SingleMolecule{{Species: volumeA, Location: domain.Vector3{X: 2}}})
	release.AddSingleMolecule(cfg, site, domain.SingleMolecule{Species: volumeA, Location: domain.Vector3{Z: 4}})

	assert.Equal(t, domain.ShapeList, site.Shape)
	require.Len(t, site.MoleculeList, 2)
	assert.Equal(t, domain.Vector3{X: 1}, site.MoleculeList[0].Location)
	assert.Equal(t, domain.Vector3{Z: 2}, site.MoleculeList[1].Location)
}

func TestCheckMoleculeRelease(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg := domain.NewConfig(nil)
	cfg.Notify.MissedSurfaceOrient = domain.WarnError
	cfg.Notify.UselessVolumeOrient = domain.WarnWarning

	assert.NoError(t, release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: volumeA}, logger))
	assert.NoError(t, release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: surfaceB, OrientSet: true, Orientation: -1}, logger))

	err := release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: surfaceB}, logger)
	assert.ErrorIs(t, err, domain.ErrInvalidMolecule)

	err = release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: volumeA, OrientSet: true, Orientation: 1}, logger)
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "orientation ignored for volume molecule 'A'")

	err = release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: surfClass}, logger)
	assert.ErrorIs(t, err, domain.ErrInvalidMolecule)

	err = release.CheckMoleculeRelease(cfg, nil, logger)
	assert.ErrorIs(t, err, domain.ErrInvalidMolecule)

	cfg.Notify.MissedSurfaceOrient = domain.WarnIgnore
	assert.NoError(t, release.CheckMoleculeRelease(cfg, &domain.SpeciesOrient{Species: surfaceB}, logger))
}
