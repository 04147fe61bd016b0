package vdlib

import "errors"

// ErrQueryBackendUnavailable is returned by OcclusionCuller.Traverse when
// the configured QueryBackend fails to issue or resolve an occlusion
// query. Traversal does not recover automatically; the caller decides
// whether to retry the frame or fall back to a different culling mode.
var ErrQueryBackendUnavailable = errors.New("vdlib: occlusion query backend unavailable")
