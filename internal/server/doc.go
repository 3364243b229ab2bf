// Package server implements the MCP (Model Context Protocol) server for the
// color splash engine.
//
// This package provides a JSON-RPC 2.0 server that exposes selective
// recoloring capabilities through the MCP protocol. It's designed to work
// with Claude and other MCP-compatible clients, enabling AI systems to turn
// photographs grayscale everywhere except chosen colors.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// The server provides 8 tools organized into categories:
//
// Image Loading:
//   - image_load: Load an image and make it the active image
//   - image_dimensions: Get width and height
//
// Color Inspection:
//   - select_color: Pick the color at a pixel in RGB, HSV, and LAB
//
// Preview Workflow:
//   - create_preview: Render a reduced-size cached splash preview
//   - update_preview: Re-render the last preview with changed parameters
//
// Full-Resolution Output:
//   - apply_color_splash: Apply the effect to the whole image
//   - apply_color_splash_selection: Apply only inside a geometric selection
//
// Diagnostics:
//   - performance_stats: Rolling timing statistics per operation
//
// # Active Image and Sessions
//
// image_load (or any tool invoked with an explicit path) preloads the image
// into an engine session, which becomes the active image for subsequent
// calls that omit the path. Loading a new path replaces the session and
// clears the preview cache; repeating the same path keeps the session so
// cached previews stay warm. Decoded images are also cached by path in the
// loader, avoiding redundant disk I/O across tool calls.
//
// All requests are handled sequentially on the stdin loop, so the engine is
// never invoked concurrently.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New(logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
