package scenefile_test

import (
	"errors"
	"testing"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/scenefile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	model, err := scenefile.Load("testdata/cell.yaml")
	require.NoError(t, err)

	assert.Equal(t, 0.5, model.Config.LengthUnit)
	assert.Equal(t, domain.WarnIgnore, model.Config.Notify.UselessVolumeOrient)
	assert.True(t, model.Config.PlaceWaypoints)
	require.Len(t, model.Sites, 4)

	sphere, ok := model.Site("rel_sphere")
	require.True(t, ok)
	assert.Equal(t, domain.ShapeSpherical, sphere.Shape)
	assert.Equal(t, domain.Vector3{X: 0.5, Y: 0.5, Z: 0.5}, *sphere.Diameter)
	assert.Equal(t, domain.Vector3{X: 1, Z: -1}, *sphere.Location)
	assert.Equal(t, domain.MethodGaussian, sphere.Method)
	assert.Equal(t, 0.5, sphere.Probability)
	assert.Equal(t, 3, sphere.Pattern.NumberOfTrains)

	cytosol, _ := model.Site("rel_cytosol")
	assert.Equal(t, domain.ShapeRegion, cytosol.Shape)
	assert.Equal(t, "cell,ALL - (nucleus,ALL + cell,cap)", cytosol.Region.Expression.String())
	assert.Equal(t, 1e-6, cytosol.Concentration)
	for _, r := range cytosol.Region.Expression.Regions() {
		assert.True(t, r.CountContents, r.QualifiedName())
	}

	membrane, _ := model.Site("rel_membrane")
	assert.Equal(t, "cell,ALL", membrane.Region.Expression.String())
	assert.Equal(t, domain.MethodDensity, membrane.Method)
	assert.True(t, membrane.Molecule.OrientSet)

	list, _ := model.Site("rel_list")
	assert.Equal(t, domain.ShapeList, list.Shape)
	require.Len(t, list.MoleculeList, 2)
	assert.Equal(t, domain.Vector3{X: 1}, list.MoleculeList[0].Location)
	assert.Equal(t, -1, list.MoleculeList[1].Orientation)
	assert.Equal(t, domain.Vector3{}, *list.Location)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scenefile.Load("testdata/nope.yaml")
	assert.Error(t, err)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := scenefile.Parse([]byte("sites:\n  - name: a\n    colour: red\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := scenefile.Parse([]byte("sites: [\n"))
	assert.Error(t, err)
}

func TestBuild_ReportsEveryProblem(t *testing.T) {
	doc, err := scenefile.Parse([]byte(`
species:
  - name: A
objects:
  - name: blob
    type: sphere
  - name: cell
    type: polygon
sites:
  - name: no_location
    molecule: A
    shape: cubic
  - name: shell
    molecule: A
    shape: spherical_shell
    location: {x: 0}
    quantity: {method: concentration, concentration: 1}
  - name: both
    molecule: A
    object: cell
    region: "cell,ALL"
  - name: bad_method
    molecule: A
    location: {x: 0}
    quantity: {method: lots}
`))
	require.NoError(t, err)

	_, err = scenefile.Build(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown object type "sphere"`)
	assert.Contains(t, err.Error(), "mutually exclusive")
	assert.Contains(t, err.Error(), `unknown release method "lots"`)
	assert.ErrorIs(t, err, domain.ErrMissingLocation)
	assert.ErrorIs(t, err, domain.ErrIncompatibleShape)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "no_location", verr.Site)
	assert.Equal(t, domain.RuleLocation, verr.Rule)
}

func TestBuild_Notify(t *testing.T) {
	doc := &scenefile.Document{
		Notify: scenefile.NotifySpec{MissedSurfaceOrientation: "loud"},
	}
	_, err := scenefile.Build(doc)
	assert.ErrorContains(t, err, `unknown warning level "loud"`)
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		err  bool
	}{
		{"region", "cell,ALL", "cell,ALL", false},
		{"union", map[string]any{"union": []any{"a,ALL", "b,ALL"}}, "union(a,ALL, b,ALL)", false},
		{"fold", map[string]any{"intersection": []any{"a,ALL", "b,ALL", "c,ALL"}}, "intersection(intersection(a,ALL, b,ALL), c,ALL)", false},
		{"nested", map[string]any{"inclusion": []any{"a,ALL", map[string]any{"subtraction": []any{"b,ALL", "c,ALL"}}}}, "inclusion(a,ALL, subtraction(b,ALL, c,ALL))", false},
		{"empty name", "", "", true},
		{"two operators", map[string]any{"union": []any{"a,ALL", "b,ALL"}, "intersection": []any{"a,ALL", "b,ALL"}}, "", true},
		{"unknown operator", map[string]any{"xor": []any{"a,ALL", "b,ALL"}}, "", true},
		{"single operand", map[string]any{"union": []any{"a,ALL"}}, "", true},
		{"inclusion of three", map[string]any{"inclusion": []any{"a,ALL", "b,ALL", "c,ALL"}}, "", true},
		{"number", 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scenefile.ParseExpr(tt.in)
			if tt.err {
				assert.ErrorIs(t, err, domain.ErrInvalidExpression)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
