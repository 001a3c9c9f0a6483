/*
Package release defines and validates release sites.

Sites are created empty with New, populated by the Set* operations while a
model description is being read, and certified once with Validate before the
simulation starts. Geometry setters check region reachability against the
scene hierarchy and leave the site untouched when they fail.

	site, _ := release.New(cfg, "rel_a")
	site.Molecule = &domain.SpeciesOrient{Species: a}
	leaf, _ := regionexpr.MakeLeaf(cytosol)
	if err := release.SetGeometryRegion(cfg, site, owner, leaf, scene); err != nil {
		return err
	}
	_ = release.SetConcentration(site, 1e-6)
	if err := release.Validate(site); err != nil {
		return err
	}
*/
package release
