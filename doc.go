/*
Package mcell is the release and transport core of a Monte Carlo cell
simulator.

It covers the parts of a simulation that sit between model input and the
diffusion kernel:

  - release sites, built and certified once before the run (pkg/release)
  - region expressions selecting where region-shaped sites release
    (pkg/regionexpr)
  - the end-of-step transport queue that moves molecules between storage
    partitions and performs reaction-triggered releases

# Usage

A Simulation owns the configuration context and the partition table. The
diffusion kernel plugs in as a ports.ReleaseMechanism and feeds each
partition's outbound queue during a step; EndStep plays the queues back.

	cfg := domain.NewConfig(scene.Root())
	sim := mcell.New(cfg,
		mcell.WithReleaseMechanism(kernel),
		mcell.WithSiteStore(memory.NewStore()),
	)
	p := sim.AddPartition("left", memory.NewPool[domain.Molecule]("left", 0))

	if err := sim.Certify(ctx, site); err != nil {
		return err
	}

	for step := 0; step < steps; step++ {
		// ... diffuse, enqueue transfers on sim.Partition(p) ...
		if err := sim.EndStep(ctx); err != nil {
			return err
		}
	}

Scene files in YAML can be loaded with pkg/scenefile, and the mcell command
validates them from the shell.
*/
package mcell
