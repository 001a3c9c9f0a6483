// Package transport moves molecules between partitions at the end of a
// simulation step.
//
// During a step, molecules that cross into a subvolume owned by another
// partition are appended to the source partition's outbound Queue, and
// reactions that request a release push a DelayedRelease onto the same
// queue. Space.Playback then performs the releases and materialises every
// transferred molecule in its destination partition.
package transport
