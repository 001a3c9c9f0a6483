package dsl

import (
	"errors"
	"testing"

	"github.com/plin1112/mcell/pkg/domain"
)

func cellScene() *Builder {
	b := New("world", WithLengthUnit(2))

	b.Object("group", domain.ObjectMeta, "").
		Object("cell", domain.ObjectPolygon, "group").
		Object("template", domain.ObjectBox, "-").
		Region("cell", "membrane")

	b.Species("A", 0).
		Species("B", domain.SpeciesNotFree|domain.SpeciesOnGrid).
		Species("wall", domain.SpeciesSurfaceClass|domain.SpeciesNotFree)

	b.Pattern(domain.ReleasePattern{Name: "pulse", Delay: 1e-3, NumberOfTrains: 2})
	return b
}

func TestBuilder_Scene(t *testing.T) {
	b := cellScene()

	b.Site("rel_sphere", "").
		Molecule("A").
		Shape(domain.ShapeSpherical, domain.Vector3{X: 1, Y: 1, Z: 1}).
		At(1, 2, 3).
		Gaussian(100, 5).
		Pattern("pulse")

	b.Site("rel_cell", "group").
		Oriented("B", 1).
		OnRegions(Diff(R("cell,ALL"), R("cell,membrane"))).
		Density(1000)

	b.Site("rel_list", "").
		Add("A", domain.Vector3{X: 1}, 0).
		Add("B", domain.Vector3{Y: 1}, -1)

	model, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(model.Sites) != 3 {
		t.Fatalf("Expected 3 sites, got %d", len(model.Sites))
	}

	sphere, ok := model.Site("rel_sphere")
	if !ok {
		t.Fatal("rel_sphere missing")
	}
	if *sphere.Location != (domain.Vector3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Expected scaled location, got %v", *sphere.Location)
	}
	if sphere.Method != domain.MethodGaussian || sphere.Number != 100 || sphere.StdDev != 5 {
		t.Errorf("Unexpected quantity: %s %g %g", sphere.Method, sphere.Number, sphere.StdDev)
	}
	if sphere.Pattern.Name != "pulse" {
		t.Errorf("Expected pattern 'pulse', got %q", sphere.Pattern.Name)
	}

	cell, _ := model.Site("rel_cell")
	if cell.Shape != domain.ShapeRegion {
		t.Errorf("Expected region shape, got %s", cell.Shape)
	}
	if got := cell.Region.Expression.String(); got != "cell,ALL - cell,membrane" {
		t.Errorf("Unexpected expression %q", got)
	}
	if cell.Region.Self.Type != domain.ObjectReleaseSite {
		t.Errorf("Expected owner to be the release site object, got %s", cell.Region.Self.Type)
	}
	if !model.Config.PlaceWaypoints {
		t.Error("Expected waypoints to be requested")
	}

	list, _ := model.Site("rel_list")
	if list.Shape != domain.ShapeList || len(list.MoleculeList) != 2 {
		t.Fatalf("Expected a 2-molecule list, got %s with %d", list.Shape, len(list.MoleculeList))
	}
	if list.Location == nil || *list.Location != (domain.Vector3{}) {
		t.Errorf("Expected list location to default to the origin, got %v", list.Location)
	}
}

func TestBuilder_OnObject(t *testing.T) {
	b := cellScene()
	b.Site("rel", "group").Molecule("A").OnObject("cell").Concentration(1e-6)

	model, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	site := model.Sites[0]
	if got := site.Region.Expression.String(); got != "cell,ALL" {
		t.Errorf("Unexpected expression %q", got)
	}
}

func TestBuilder_CollectsErrors(t *testing.T) {
	b := cellScene()
	b.Object("orphan", domain.ObjectBox, "nowhere")
	b.Species("A", 0)

	b.Site("no_molecule", "").At(0, 0, 0)
	b.Site("meta_target", "").Molecule("A").OnObject("group")
	b.Site("unreachable", "").Molecule("A").OnRegions(R("template,ALL"))
	b.Site("bad_species", "").Molecule("Z").At(0, 0, 0)
	b.Site("shell", "").Molecule("A").Shape(domain.ShapeSphericalShell, domain.Vector3{}).Concentration(1)

	_, err := b.Build()
	if err == nil {
		t.Fatal("Expected Build() to fail")
	}

	for _, want := range []error{
		domain.ErrMissingMoleculeType,
		domain.ErrInvalidTarget,
		domain.ErrRegionUnreachable,
		domain.ErrIncompatibleShape,
	} {
		if !errors.Is(err, want) {
			t.Errorf("Expected %v in %v", want, err)
		}
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) || verr.Site != "no_molecule" || verr.Rule != domain.RuleMoleculeRequired {
		t.Errorf("Expected rule failure for no_molecule, got %v", verr)
	}
}

func TestBuilder_OrientationNotify(t *testing.T) {
	b := cellScene()
	b.Site("unoriented", "group").Molecule("B").OnObject("cell").Density(10)

	_, err := b.Build()
	if !errors.Is(err, domain.ErrInvalidMolecule) {
		t.Fatalf("Expected ErrInvalidMolecule, got %v", err)
	}

	b = New("world", WithNotify(domain.Notify{}))
	b.Object("cell", domain.ObjectPolygon, "").Species("B", domain.SpeciesNotFree|domain.SpeciesOnGrid)
	b.Site("unoriented", "").Molecule("B").OnObject("cell").Density(10)
	if _, err := b.Build(); err != nil {
		t.Fatalf("Expected ignored orientation warning, got %v", err)
	}
}

func TestExpr_Resolve(t *testing.T) {
	b := cellScene()
	scene := b.Scene()

	tests := []struct {
		name string
		expr Expr
		want string
		err  error
	}{
		{"leaf", R("cell,membrane"), "cell,membrane", nil},
		{"union fold", Union(R("cell,ALL"), R("cell,membrane"), R("template,ALL")), "(cell,ALL + cell,membrane) + template,ALL", nil},
		{"intersection", Intersect(R("cell,ALL"), R("cell,membrane")), "cell,ALL * cell,membrane", nil},
		{"inclusion", Include(R("cell,ALL"), R("cell,membrane")), "cell,ALL ~ cell,membrane", nil},
		{"explicit op", Op(domain.OpUnion, R("cell,ALL"), R("cell,membrane")), "cell,ALL + cell,membrane", nil},
		{"missing region", R("cell,nope"), "", domain.ErrRegionNotFound},
		{"missing operand", Union(R("cell,ALL"), nil), "", domain.ErrInvalidExpression},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.expr.resolve(scene)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got.String())
			}
		})
	}
}

func TestBuilder_FailedSiteLeavesSceneUntouched(t *testing.T) {
	tests := []struct {
		name   string
		region string
		site   func(*SiteBuilder)
		err    error
	}{
		{
			name:   "unreachable region",
			region: "template,ALL",
			site: func(s *SiteBuilder) {
				s.Molecule("A").OnRegions(R("template,ALL")).Number(10)
			},
			err: domain.ErrRegionUnreachable,
		},
		{
			name:   "placed then rejected by validation",
			region: "cell,membrane",
			site: func(s *SiteBuilder) {
				s.OnRegions(Union(R("cell,membrane"), R("cell,ALL"))).Number(10)
			},
			err: domain.ErrMissingMoleculeType,
		},
		{
			name:   "object release rejected by validation",
			region: "cell,ALL",
			site: func(s *SiteBuilder) {
				s.Molecule("A").OnObject("cell").Density(5)
			},
			err: domain.ErrIncompatibleMobility,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cellScene()
			tt.site(b.Site("rel_bad", "group"))

			_, err := b.Build()
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected %v, got %v", tt.err, err)
			}

			reg, lookupErr := b.Scene().LookupRegion(tt.region)
			if lookupErr != nil {
				t.Fatalf("LookupRegion(%q) failed: %v", tt.region, lookupErr)
			}
			if reg.CountContents {
				t.Errorf("Expected count flag of %s to be restored", tt.region)
			}
			if _, ok := b.Scene().Object("rel_bad"); ok {
				t.Error("Expected failed site object to be removed from the scene")
			}
			group, _ := b.Scene().Object("group")
			for _, c := range group.Children {
				if c.Name == "rel_bad" {
					t.Error("Expected failed site object to be unlinked from its parent")
				}
			}
			if b.Config().PlaceWaypoints {
				t.Error("Expected PlaceWaypoints to be restored")
			}
		})
	}
}

func TestBuilder_FailedSiteKeepsEarlierCounts(t *testing.T) {
	b := cellScene()
	b.Site("rel_good", "group").Molecule("A").OnRegions(R("cell,membrane")).Number(1)
	b.Site("rel_bad", "group").OnRegions(R("cell,membrane")).Number(1)

	if _, err := b.Build(); !errors.Is(err, domain.ErrMissingMoleculeType) {
		t.Fatalf("Expected ErrMissingMoleculeType, got %v", err)
	}
	reg, _ := b.Scene().LookupRegion("cell,membrane")
	if !reg.CountContents {
		t.Error("Expected the count flag set by rel_good to survive rel_bad's rollback")
	}
	if _, ok := b.Scene().Object("rel_good"); !ok {
		t.Error("Expected rel_good to stay in the scene")
	}
	if !b.Config().PlaceWaypoints {
		t.Error("Expected PlaceWaypoints from rel_good to survive")
	}
}
