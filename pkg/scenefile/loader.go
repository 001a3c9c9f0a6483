package scenefile

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/dsl"
	"gopkg.in/yaml.v3"
)

// DefaultRoot names the scene root when a file does not set one.
const DefaultRoot = "world"

// Load reads, decodes and builds the scene file at path.
func Load(path string, opts ...dsl.Option) (*dsl.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	model, err := Build(doc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// Parse decodes a YAML scene document. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse scene yaml: %w", err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &doc,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return &doc, nil
}

// Build turns a decoded document into a validated model. Every problem in
// the document is reported, not just the first.
func Build(doc *Document, opts ...dsl.Option) (*dsl.Model, error) {
	var errs []error

	if doc.LengthUnit < 0 {
		errs = append(errs, fmt.Errorf("length_unit must be positive, got %g", doc.LengthUnit))
	} else if doc.LengthUnit > 0 {
		opts = append(opts, dsl.WithLengthUnit(doc.LengthUnit))
	}
	notify, err := parseNotify(doc.Notify)
	if err != nil {
		errs = append(errs, err)
	}
	opts = append(opts, dsl.WithNotify(notify))

	root := doc.Root
	if root == "" {
		root = DefaultRoot
	}
	b := dsl.New(root, opts...)

	for _, sp := range doc.Species {
		var flags domain.SpeciesFlag
		if sp.Surface {
			flags |= domain.SpeciesNotFree | domain.SpeciesOnGrid
		}
		if sp.SurfaceClass {
			flags |= domain.SpeciesSurfaceClass | domain.SpeciesNotFree
		}
		b.Species(sp.Name, flags)
	}

	for _, obj := range doc.Objects {
		typ, err := lookup(objectTypes, obj.Type, "object type")
		if err != nil {
			errs = append(errs, fmt.Errorf("object %q: %w", obj.Name, err))
			continue
		}
		b.Object(obj.Name, typ, obj.Parent)
		for _, reg := range obj.Regions {
			b.Region(obj.Name, reg)
		}
	}

	for _, p := range doc.Patterns {
		b.Pattern(domain.ReleasePattern{
			Name:            p.Name,
			Delay:           p.Delay,
			ReleaseInterval: p.ReleaseInterval,
			TrainInterval:   p.TrainInterval,
			TrainDuration:   p.TrainDuration,
			NumberOfTrains:  p.NumberOfTrains,
		})
	}

	for i := range doc.Sites {
		if err := addSite(b, &doc.Sites[i]); err != nil {
			errs = append(errs, err)
		}
	}

	model, err := b.Build()
	if err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return model, nil
}

func addSite(b *dsl.Builder, s *SiteSpec) error {
	fail := func(err error) error {
		return fmt.Errorf("release site '%s': %w", s.Name, err)
	}

	var shape domain.ReleaseShape
	if s.Shape != "" {
		var err error
		if shape, err = lookup(shapes, s.Shape, "release shape"); err != nil {
			return fail(err)
		}
	}
	if s.Object != "" && s.Region != nil {
		return fail(errors.New("object and region are mutually exclusive"))
	}
	var expr dsl.Expr
	if s.Region != nil {
		var err error
		if expr, err = ParseExpr(s.Region); err != nil {
			return fail(err)
		}
	}
	var method domain.ReleaseMethod
	if s.Quantity != nil {
		var err error
		if method, err = lookup(methods, s.Quantity.Method, "release method"); err != nil {
			return fail(err)
		}
	}

	sb := b.Site(s.Name, s.Parent)

	switch {
	case s.Molecule == "":
	case s.Orientation != nil:
		sb.Oriented(s.Molecule, *s.Orientation)
	default:
		sb.Molecule(s.Molecule)
	}

	if s.Shape != "" {
		var d domain.Vector3
		if s.Diameter != nil {
			d = *s.Diameter
		}
		sb.Shape(shape, d)
	}
	if s.Location != nil {
		sb.At(s.Location.X, s.Location.Y, s.Location.Z)
	}

	if s.Object != "" {
		sb.OnObject(s.Object)
	}
	if expr != nil {
		sb.OnRegions(expr)
	}

	for _, m := range s.Molecules {
		sb.Add(m.Species, m.Location, m.Orientation)
	}

	if q := s.Quantity; q != nil {
		switch method {
		case domain.MethodConstant:
			sb.Number(q.Number)
		case domain.MethodGaussian:
			sb.Gaussian(q.Number, q.StdDev)
		case domain.MethodVolumeDependent:
			sb.VolumeDependent(q.MeanDiameter, q.StdDev, q.Concentration)
		case domain.MethodConcentration:
			sb.Concentration(q.Concentration)
		case domain.MethodDensity:
			sb.Density(q.Density)
		}
	}

	if s.Probability != nil {
		sb.Probability(*s.Probability)
	}
	if s.Pattern != "" {
		sb.Pattern(s.Pattern)
	}
	return nil
}

func parseNotify(n NotifySpec) (domain.Notify, error) {
	out := domain.NewConfig(nil).Notify
	var errs []error
	if n.MissedSurfaceOrientation != "" {
		lvl, err := lookup(warnLevels, n.MissedSurfaceOrientation, "warning level")
		errs = append(errs, err)
		out.MissedSurfaceOrient = lvl
	}
	if n.UselessVolumeOrientation != "" {
		lvl, err := lookup(warnLevels, n.UselessVolumeOrientation, "warning level")
		errs = append(errs, err)
		out.UselessVolumeOrient = lvl
	}
	return out, errors.Join(errs...)
}
