/*
Package dsl provides a fluent builder for release scenes.

It lets callers declare objects, regions, species and release sites in Go,
resolving names and reporting every mistake at Build time instead of at
each call. The resulting Model holds validated sites ready for simulation.

Example usage:

	b := dsl.New("world")

	b.Object("cell", domain.ObjectPolygon, "").Region("cell", "membrane")
	b.Species("A", 0)

	b.Site("rel_a", "").
		Molecule("A").
		OnRegions(dsl.Diff(dsl.R("cell,ALL"), dsl.R("cell,membrane"))).
		Concentration(1e-6)

	model, err := b.Build()
*/
package dsl
