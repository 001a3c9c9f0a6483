/*
Package ports defines the driven ports (interfaces) consumed by the release and
transport core.

These interfaces decouple the core from the scene graph, the symbol table, the
pooled allocator, the physical release kernel and the site catalog backend.

# Key Interfaces

  - SceneGraph: nearest common ancestor queries over the object hierarchy.
  - RegionResolver: resolves qualified region names ("object,region").
  - Allocator: bounded pooled storage for particles and delayed releases.
  - ReleaseMechanism: materialises the molecules of a release event.
  - SiteStore: persists descriptors of validated release sites.
*/
package ports
