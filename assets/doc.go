// Package assets locates the image files an OTML document refers to.
//
// Two operations make up the surface:
//
//   - DiscoverBase heuristically picks the directory that relative
//     image references are rooted at, trying conventional directory
//     names, then basename frequency, then image literals found in
//     Lua scripts.
//   - Resolve turns one reference value into a concrete file path by
//     probing an ordered candidate list.
//
// Both read through the FS interface and never write. Absence is an
// ordinary outcome, reported as a false second return, never as an
// error. All walks are snapshots: nothing is cached between calls
// unless the caller opts into a Session.
package assets
