// Package regionexpr builds and checks region expression trees: boolean
// set-algebra combinations of named regions that a release site can target.
package regionexpr
