package ports

import (
	"context"
	"testing"
	"time"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSiteStoreContract runs a suite of tests to verify that a SiteStore
// implementation adheres to the defined interface contract.
func RunSiteStoreContract(t *testing.T, store SiteStore) {
	ctx := context.Background()
	name := "contract-site-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		record := domain.SiteRecord{
			Name:        name,
			Molecule:    "A",
			Shape:       domain.ShapeRegion.String(),
			Method:      domain.MethodConcentration.String(),
			Expression:  "cell,ALL - nucleus,ALL",
			Probability: 1,
			Location:    &domain.Vector3{X: 1, Y: 2, Z: 3},
		}

		err := store.Save(ctx, record)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, record.Name, loaded.Name)
		assert.Equal(t, record.Expression, loaded.Expression)
		assert.Equal(t, record.Shape, loaded.Shape)
		require.NotNil(t, loaded.Location)
		assert.Equal(t, *record.Location, *loaded.Location)
	})

	t.Run("Save Replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, domain.SiteRecord{Name: name, Method: "constant", Number: 10}))
		require.NoError(t, store.Save(ctx, domain.SiteRecord{Name: name, Method: "constant", Number: 20}))

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, 20.0, loaded.Number)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, domain.ErrSiteNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, domain.SiteRecord{Name: name})
		require.NoError(t, err)

		err = store.Delete(ctx, name)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, name)
		assert.ErrorIs(t, err, domain.ErrSiteNotFound, "Load after Delete should return ErrSiteNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := name + "-1"
		id2 := name + "-2"
		_ = store.Save(ctx, domain.SiteRecord{Name: id1})
		_ = store.Save(ctx, domain.SiteRecord{Name: id2})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sites, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sites, id1)
		assert.Contains(t, sites, id2)
	})

	t.Run("Find", func(t *testing.T) {
		sphere := name + "-sphere"
		cube := name + "-cube"
		region := name + "-region"
		records := []domain.SiteRecord{
			{Name: sphere, Molecule: "A", Shape: "spherical", Method: "constant", Number: 10},
			{Name: cube, Molecule: "A", Shape: "cubic", Method: "gaussian", Number: 5, StdDev: 1},
			{Name: region, Molecule: "B", Shape: "region", Method: "density", Concentration: 100, Expression: "cell,ALL"},
		}
		for _, r := range records {
			require.NoError(t, store.Save(ctx, r))
		}
		defer func() {
			for _, r := range records {
				_ = store.Delete(ctx, r.Name)
			}
		}()

		names := func(recs []domain.SiteRecord) []string {
			out := make([]string, 0, len(recs))
			for _, r := range recs {
				out = append(out, r.Name)
			}
			return out
		}

		found, err := store.Find(ctx, domain.SiteFilter{Shape: "spherical"})
		require.NoError(t, err)
		assert.Contains(t, names(found), sphere)
		assert.NotContains(t, names(found), cube)
		assert.NotContains(t, names(found), region)

		found, err = store.Find(ctx, domain.SiteFilter{Molecule: "A", Method: "gaussian"})
		require.NoError(t, err)
		assert.Equal(t, []string{cube}, names(found))
		assert.Equal(t, 1.0, found[0].StdDev)

		found, err = store.Find(ctx, domain.SiteFilter{Molecule: "B"})
		require.NoError(t, err)
		require.Equal(t, []string{region}, names(found))
		assert.Equal(t, "cell,ALL", found[0].Expression)

		all, err := store.Find(ctx, domain.SiteFilter{})
		require.NoError(t, err)
		assert.Subset(t, names(all), []string{sphere, cube, region})
		assert.IsIncreasing(t, names(all))
	})

	t.Run("Find After Replace", func(t *testing.T) {
		id := name + "-moved"
		require.NoError(t, store.Save(ctx, domain.SiteRecord{Name: id, Shape: "spherical", Method: "constant"}))
		require.NoError(t, store.Save(ctx, domain.SiteRecord{Name: id, Shape: "cubic", Method: "constant"}))
		defer func() { _ = store.Delete(ctx, id) }()

		found, err := store.Find(ctx, domain.SiteFilter{Shape: "spherical"})
		require.NoError(t, err)
		for _, r := range found {
			assert.NotEqual(t, id, r.Name, "replaced record must not match its old shape")
		}

		found, err = store.Find(ctx, domain.SiteFilter{Shape: "cubic"})
		require.NoError(t, err)
		var hit bool
		for _, r := range found {
			hit = hit || r.Name == id
		}
		assert.True(t, hit)
	})

	t.Run("Find After Delete", func(t *testing.T) {
		id := name + "-gone"
		require.NoError(t, store.Save(ctx, domain.SiteRecord{Name: id, Shape: "ellipsoidal"}))
		require.NoError(t, store.Delete(ctx, id))

		found, err := store.Find(ctx, domain.SiteFilter{Shape: "ellipsoidal"})
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
