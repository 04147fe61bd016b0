// Package vdlib accelerates rendering of large static 3D scenes by culling
// geometry that cannot contribute to the final image.
//
// It ingests a set of triangle meshes, builds a bounding-volume hierarchy
// over them, and exposes three traversal strategies: naive iteration,
// view-frustum culling, and coherent hierarchical culling (CHC) using
// hardware occlusion queries. View-frustum culling composes on top of CHC
// through the OcclusionCallback.IsValid hook.
//
// The package does not load geometry, transform vertices for rendering, or
// issue draw calls itself — those are the host application's
// responsibility. The only GPU-shaped collaborator vdlib defines is
// QueryBackend, which abstracts occlusion queries so that the traversal
// logic in OcclusionCuller is testable without a GPU.
package vdlib
