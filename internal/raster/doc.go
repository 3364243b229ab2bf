// Package raster is the host I/O boundary of the color-splash engine: it
// loads images from disk or Base64 payloads, converts them to and from the
// engine's RasterImage pixel buffers, and encodes results for transport or
// storage.
//
// The engine core has no format awareness; everything format-shaped lives
// here. Decoded images are normalized to 8-bit non-premultiplied RGBA before
// their pixels are handed to the engine.
//
// The Loader type caches decoded images by path and is safe for concurrent
// use. Cached images remain in memory until evicted; long-running processes
// handling many images should evict or clear periodically.
package raster
