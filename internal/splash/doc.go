// Package splash implements a parametric color-splash engine: given a raster
// image, a set of target colors, and a per-axis tolerance, it preserves pixels
// whose color is close enough to any target and desaturates everything else.
//
// The effect can be restricted to a geometric selection (rectangle, circle,
// polygon, or freehand path) with soft feathered edges, and rendered at a
// reduced resolution with caching for interactive responsiveness.
//
// # Pipeline
//
// A full-resolution pass runs BuildMask to mark matching pixels, then Compose
// to merge the original and desaturated buffers. The preview path first shrinks
// the image through OptimalSize/ResizeNearest, runs the same mask+compose pass
// on the reduced buffer, and stores the result in a PreviewCache keyed by the
// processing parameters.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y increasing downward. Pixel buffers are row-major RGBA with
// 8 bits per channel and non-premultiplied alpha.
//
// # Buffers
//
// No operation mutates an input buffer; every operation returns a freshly
// allocated one. Results handed out by the cache are defensive copies, so
// callers may mutate them freely.
//
// # Concurrency
//
// All computation is synchronous and runs to completion within the call.
// An Engine (and any Session derived from it) shares mutable state between
// calls (the preview cache and the last stored configuration) without
// internal synchronization of the workflow itself; concurrent callers must
// serialize access or use one Engine per worker.
package splash
