package dsl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/plin1112/mcell/internal/logging"
	"github.com/plin1112/mcell/pkg/adapters/memory"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/release"
)

// Model is a built scene with its validated release sites.
type Model struct {
	Config   *domain.Config
	Scene    *memory.Scene
	Species  map[string]*domain.Species
	Patterns map[string]*domain.ReleasePattern
	// Sites are listed in declaration order.
	Sites []*domain.ReleaseSite
}

// Site returns the site with the given name.
func (m *Model) Site(name string) (*domain.ReleaseSite, bool) {
	for _, s := range m.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

// Builder manages the scene construction.
// Errors are collected and reported together by Build.
type Builder struct {
	cfg      *domain.Config
	scene    *memory.Scene
	species  map[string]*domain.Species
	patterns map[string]*domain.ReleasePattern
	sites    []*SiteBuilder
	logger   *slog.Logger
	errs     []error
}

// Option configures a Builder.
type Option func(*Builder)

// WithLengthUnit sets the input-to-internal length scale.
func WithLengthUnit(unit float64) Option {
	return func(b *Builder) {
		b.cfg.LengthUnit = unit
	}
}

// WithNotify sets the orientation warning levels.
func WithNotify(n domain.Notify) Option {
	return func(b *Builder) {
		b.cfg.Notify = n
	}
}

// WithLogger sets the logger that receives orientation warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// New creates a builder whose scene is rooted at a meta object named root.
func New(root string, opts ...Option) *Builder {
	scene := memory.NewScene(root)
	b := &Builder{
		cfg:      domain.NewConfig(scene.Root()),
		scene:    scene,
		species:  make(map[string]*domain.Species),
		patterns: make(map[string]*domain.ReleasePattern),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.patterns[b.cfg.DefaultPattern.Name] = b.cfg.DefaultPattern
	return b
}

// Config exposes the configuration the scene is built against.
func (b *Builder) Config() *domain.Config { return b.cfg }

// Scene exposes the scene under construction.
func (b *Builder) Scene() *memory.Scene { return b.scene }

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

// Object adds an object under parent. An empty parent means the scene root;
// "-" declares a detached object that is not instanced.
func (b *Builder) Object(name string, typ domain.ObjectType, parent string) *Builder {
	var p *domain.Object
	switch parent {
	case "":
		p = b.scene.Root()
	case "-":
	default:
		var ok bool
		if p, ok = b.scene.Object(parent); !ok {
			b.fail(fmt.Errorf("object %q: parent %q not defined", name, parent))
			return b
		}
	}
	if _, err := b.scene.AddObject(name, typ, p); err != nil {
		b.fail(err)
	}
	return b
}

// Region adds a named region to an existing object.
func (b *Builder) Region(object, name string) *Builder {
	obj, ok := b.scene.Object(object)
	if !ok {
		b.fail(fmt.Errorf("region %q: object %q not defined", name, object))
		return b
	}
	if _, err := b.scene.AddRegion(obj, name); err != nil {
		b.fail(err)
	}
	return b
}

// Species declares a molecule species or surface class.
func (b *Builder) Species(name string, flags domain.SpeciesFlag) *Builder {
	if _, ok := b.species[name]; ok {
		b.fail(fmt.Errorf("species %q already defined", name))
		return b
	}
	b.species[name] = &domain.Species{Name: name, Flags: flags}
	return b
}

// Pattern declares a release pattern that sites can refer to by name.
func (b *Builder) Pattern(p domain.ReleasePattern) *Builder {
	if _, ok := b.patterns[p.Name]; ok {
		b.fail(fmt.Errorf("release pattern %q already defined", p.Name))
		return b
	}
	b.patterns[p.Name] = &p
	return b
}

// Site starts a release site placed under parent in the object hierarchy.
// An empty parent means the scene root.
func (b *Builder) Site(name, parent string) *SiteBuilder {
	sb := &SiteBuilder{builder: b, name: name, parent: parent}
	b.sites = append(b.sites, sb)
	return sb
}

// Build places every site, checks its molecules and validates it.
func (b *Builder) Build() (*Model, error) {
	errs := append([]error(nil), b.errs...)
	model := &Model{
		Config:   b.cfg,
		Scene:    b.scene,
		Species:  b.species,
		Patterns: b.patterns,
	}
	for _, sb := range b.sites {
		site, err := sb.build()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		model.Sites = append(model.Sites, site)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return model, nil
}

func (b *Builder) lookupSpecies(name string) (*domain.Species, error) {
	sp, ok := b.species[name]
	if !ok {
		return nil, fmt.Errorf("species %q not defined", name)
	}
	return sp, nil
}

func (b *Builder) newSite(name string) (*domain.ReleaseSite, error) {
	return release.New(b.cfg, name)
}
