package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/color-splash-mcp/internal/raster"
	"github.com/ironsheep/color-splash-mcp/internal/splash"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "create_preview").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Resolves the image (explicit path or the active session)
//  4. Calls the appropriate splash engine or raster function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image Loading
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Color Inspection
	case "select_color":
		return s.handleSelectColor(args)

	// Preview Workflow
	case "create_preview":
		return s.handleCreatePreview(args)
	case "update_preview":
		return s.handleUpdatePreview(args)

	// Full-Resolution Output
	case "apply_color_splash":
		return s.handleApplyColorSplash(args)
	case "apply_color_splash_selection":
		return s.handleApplyColorSplashSelection(args)

	// Diagnostics
	case "performance_stats":
		return s.handlePerformanceStats(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared Argument Types ===

// colorArg is a wire-level color; alpha defaults to 255 when omitted, which a
// direct unmarshal into splash.Color cannot express.
type colorArg struct {
	R uint8  `json:"r"`
	G uint8  `json:"g"`
	B uint8  `json:"b"`
	A *uint8 `json:"a,omitempty"`
}

func (c colorArg) toColor() splash.Color {
	a := uint8(255)
	if c.A != nil {
		a = *c.A
	}
	return splash.Color{R: c.R, G: c.G, B: c.B, A: a}
}

func toColors(args []colorArg) []splash.Color {
	if args == nil {
		return nil
	}
	colors := make([]splash.Color, len(args))
	for i, c := range args {
		colors[i] = c.toColor()
	}
	return colors
}

// activateImage loads the image at path and makes it the session's active
// image. A repeated path reuses the existing session so the preview cache
// survives.
func (s *Server) activateImage(path string) (*splash.Session, error) {
	if s.session != nil && path == s.activePath {
		return s.session, nil
	}
	img, err := s.loader.Load(path)
	if err != nil {
		return nil, err
	}
	s.session = s.engine.PreloadImage(img)
	s.activePath = path
	return s.session, nil
}

// resolveSession returns the session for path, or the active session when
// path is empty.
func (s *Server) resolveSession(path string) (*splash.Session, error) {
	if path != "" {
		return s.activateImage(path)
	}
	if s.session == nil {
		return nil, fmt.Errorf("no active image: call image_load first or pass a path")
	}
	return s.session, nil
}

// deliverImage saves the result to outputPath when given, otherwise returns
// it inline as base64 PNG.
func deliverImage(img *splash.RasterImage, outputPath string) (interface{}, error) {
	if outputPath != "" {
		if err := raster.Save(img, outputPath); err != nil {
			return nil, err
		}
		return map[string]interface{}{
			"saved_to": outputPath,
			"width":    img.Width,
			"height":   img.Height,
		}, nil
	}
	return raster.EncodePNG(img)
}

// === Image Loading Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	Path string `json:"path"`
	*raster.ImageInfo
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	info, err := s.loader.Info(a.Path)
	if err != nil {
		return nil, err
	}
	if _, err := s.activateImage(a.Path); err != nil {
		return nil, err
	}
	return imageLoadResult{Path: a.Path, ImageInfo: info}, nil
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.loader.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"width":  img.Width,
		"height": img.Height,
	}, nil
}

// === Color Inspection Handlers ===

type selectColorArgs struct {
	Path string  `json:"path"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type selectColorResult struct {
	RGB splash.Color `json:"rgb"`
	Hex string       `json:"hex"`
	HSV splash.HSV   `json:"hsv"`
	LAB splash.LAB   `json:"lab"`
}

func (s *Server) handleSelectColor(args json.RawMessage) (interface{}, error) {
	var a selectColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	session, err := s.resolveSession(a.Path)
	if err != nil {
		return nil, err
	}
	c := splash.SelectColor(session.Image(), a.X, a.Y)
	return selectColorResult{
		RGB: c,
		Hex: fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B),
		HSV: splash.RGBToHSV(c),
		LAB: splash.RGBToLAB(c),
	}, nil
}

// === Preview Workflow Handlers ===

type createPreviewArgs struct {
	Path            string                 `json:"path"`
	TargetColors    []colorArg             `json:"target_colors"`
	Tolerance       splash.Tolerance       `json:"tolerance"`
	ColorSpace      splash.ColorSpace      `json:"color_space"`
	GrayscaleMethod splash.GrayscaleMethod `json:"grayscale_method"`
	Quality         splash.Quality         `json:"quality"`
}

func (s *Server) handleCreatePreview(args json.RawMessage) (interface{}, error) {
	var a createPreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	session, err := s.resolveSession(a.Path)
	if err != nil {
		return nil, err
	}
	preview, err := session.CreateFastPreview(splash.PreviewConfig{
		TargetColors:    toColors(a.TargetColors),
		Tolerance:       a.Tolerance,
		ColorSpace:      a.ColorSpace,
		GrayscaleMethod: a.GrayscaleMethod,
		Quality:         a.Quality,
	})
	if err != nil {
		return nil, err
	}
	return raster.EncodePNG(preview)
}

type updatePreviewArgs struct {
	TargetColors    []colorArg              `json:"target_colors"`
	Tolerance       *splash.Tolerance       `json:"tolerance"`
	ColorSpace      *splash.ColorSpace      `json:"color_space"`
	GrayscaleMethod *splash.GrayscaleMethod `json:"grayscale_method"`
	Quality         *splash.Quality         `json:"quality"`
}

func (s *Server) handleUpdatePreview(args json.RawMessage) (interface{}, error) {
	var a updatePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if s.session == nil {
		return nil, fmt.Errorf("no active image: call image_load first")
	}
	preview, err := s.session.UpdatePreview(splash.PreviewPatch{
		TargetColors:    toColors(a.TargetColors),
		Tolerance:       a.Tolerance,
		ColorSpace:      a.ColorSpace,
		GrayscaleMethod: a.GrayscaleMethod,
		Quality:         a.Quality,
	})
	if err != nil {
		return nil, err
	}
	return raster.EncodePNG(preview)
}

// === Full-Resolution Output Handlers ===

type applySplashArgs struct {
	Path            string                 `json:"path"`
	TargetColors    []colorArg             `json:"target_colors"`
	Tolerance       splash.Tolerance       `json:"tolerance"`
	ColorSpace      splash.ColorSpace      `json:"color_space"`
	GrayscaleMethod splash.GrayscaleMethod `json:"grayscale_method"`
	Selection       *splash.SelectionArea  `json:"selection"`
	OutputPath      string                 `json:"output_path"`
}

func (a applySplashArgs) config() splash.SplashConfig {
	cfg := splash.SplashConfig{
		TargetColors:    toColors(a.TargetColors),
		Tolerance:       a.Tolerance,
		ColorSpace:      a.ColorSpace,
		GrayscaleMethod: a.GrayscaleMethod,
	}
	if cfg.ColorSpace == "" {
		cfg.ColorSpace = splash.ColorSpaceHSV
	}
	if cfg.GrayscaleMethod == "" {
		cfg.GrayscaleMethod = splash.GrayscaleLuminance
	}
	return cfg
}

func (s *Server) handleApplyColorSplash(args json.RawMessage) (interface{}, error) {
	var a applySplashArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	session, err := s.resolveSession(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := s.engine.ApplyColorSplash(session.Image(), a.config())
	if err != nil {
		return nil, err
	}
	return deliverImage(out, a.OutputPath)
}

func (s *Server) handleApplyColorSplashSelection(args json.RawMessage) (interface{}, error) {
	var a applySplashArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Selection == nil {
		return nil, fmt.Errorf("selection is required")
	}
	session, err := s.resolveSession(a.Path)
	if err != nil {
		return nil, err
	}
	out, err := s.engine.ApplyColorSplashInSelection(session.Image(), *a.Selection, a.config())
	if err != nil {
		return nil, err
	}
	return deliverImage(out, a.OutputPath)
}

// === Diagnostics Handlers ===

func (s *Server) handlePerformanceStats(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"operations": s.engine.Perf().AllStats(),
	}, nil
}
