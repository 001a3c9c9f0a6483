/*
Package domain contains the core entities of the release and transport core.

It defines the scene-facing data (objects, regions, species), the shape of
region expressions, release sites and the particles moved between subvolumes.
This package is kept pure and free of I/O, following the same hexagonal split
as the rest of the module: behaviour lives in pkg/regionexpr, pkg/release and
internal/transport, collaborators are described in pkg/ports.

# Key Entities

  - Region: a named surface or volume element owned by a scene Object.
  - RegionExpr: a binary set-algebra tree over regions.
  - ReleaseSite: a named source of particles (shape, quantity method, geometry).
  - Molecule / Subvolume: particles and the spatial cells that hold them.
  - Config: the shared simulation context (length unit, waypoint request, root).
*/
package domain
