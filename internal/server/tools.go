package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func colorSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": description,
		"properties": map[string]interface{}{
			"r": map[string]interface{}{"type": "integer", "description": "Red channel (0-255)"},
			"g": map[string]interface{}{"type": "integer", "description": "Green channel (0-255)"},
			"b": map[string]interface{}{"type": "integer", "description": "Blue channel (0-255)"},
			"a": map[string]interface{}{"type": "integer", "description": "Alpha channel (0-255). Default 255", "default": 255},
		},
		"required": []string{"r", "g", "b"},
	}
}

func toleranceSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Per-axis tolerance thresholds. Omitted axes are not constrained.",
		"properties": map[string]interface{}{
			"hue":        map[string]interface{}{"type": "number", "description": "Maximum hue difference in degrees (HSV space, circular)"},
			"saturation": map[string]interface{}{"type": "number", "description": "Maximum saturation difference (HSV space, 0-100 scale)"},
			"lightness":  map[string]interface{}{"type": "number", "description": "Maximum value/lightness difference (HSV space, 0-100 scale)"},
			"euclidean":  map[string]interface{}{"type": "number", "description": "Maximum straight-line distance (LAB and RGB spaces)"},
		},
	}
}

func selectionSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Geometric region restricting where the splash applies",
		"properties": map[string]interface{}{
			"type": map[string]interface{}{
				"type":        "string",
				"description": "Selection shape: rectangle, circle, polygon, or freehand",
				"enum":        []string{"rectangle", "circle", "polygon", "freehand"},
			},
			"points": map[string]interface{}{
				"type":        "array",
				"description": "Shape control points. Rectangle: two opposite corners. Circle: center then an edge point. Polygon/freehand: at least three vertices.",
				"items": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"x": map[string]interface{}{"type": "number"},
						"y": map[string]interface{}{"type": "number"},
					},
					"required": []string{"x", "y"},
				},
			},
			"feather_radius": map[string]interface{}{
				"type":        "number",
				"description": "Edge softening distance in pixels. 0 gives a hard edge. Default 0",
				"default":     0,
			},
		},
		"required": []string{"type", "points"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	splashProperties := map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the image file. Omit to use the active image",
		},
		"target_colors": map[string]interface{}{
			"type":        "array",
			"description": "Colors to keep in full color; everything else turns grayscale",
			"items":       colorSchema("A target color"),
		},
		"tolerance": toleranceSchema(),
		"color_space": map[string]interface{}{
			"type":        "string",
			"description": "Color space for similarity matching: hsv, lab, or rgb. Default hsv",
			"enum":        []string{"hsv", "lab", "rgb"},
			"default":     "hsv",
		},
		"grayscale_method": map[string]interface{}{
			"type":        "string",
			"description": "Grayscale conversion: luminance, average, or desaturation. Default luminance",
			"enum":        []string{"luminance", "average", "desaturation"},
			"default":     "luminance",
		},
		"output_path": map[string]interface{}{
			"type":        "string",
			"description": "Optional path to save the result (PNG, JPEG, or BMP by extension). When omitted the result is returned as base64 PNG",
		},
	}

	return []Tool{
		// Image Loading
		{
			Name:        "image_load",
			Description: "Load an image file and make it the active image for preview and splash operations. Returns dimensions and format information.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Color Inspection
		{
			Name:        "select_color",
			Description: "Pick the color at a pixel coordinate of an image. Coordinates outside the image are clamped to the nearest edge. Returns the color in RGB, HSV, and LAB representations.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file. Omit to use the active image",
					},
					"x": map[string]interface{}{
						"type":        "number",
						"description": "X coordinate of the pixel",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Y coordinate of the pixel",
					},
				},
				"required": []string{"x", "y"},
			},
		},

		// Preview Workflow
		{
			Name:        "create_preview",
			Description: "Render a reduced-size color splash preview of the active image and return it as base64-encoded PNG. Previews are cached, so repeated calls with the same parameters are fast.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file. Omit to use the active image",
					},
					"target_colors": map[string]interface{}{
						"type":        "array",
						"description": "Colors to keep in full color; everything else turns grayscale",
						"items":       colorSchema("A target color"),
					},
					"tolerance": toleranceSchema(),
					"color_space": map[string]interface{}{
						"type":        "string",
						"description": "Color space for similarity matching: hsv, lab, or rgb. Default hsv",
						"enum":        []string{"hsv", "lab", "rgb"},
						"default":     "hsv",
					},
					"grayscale_method": map[string]interface{}{
						"type":        "string",
						"description": "Grayscale conversion: luminance, average, or desaturation. Default luminance",
						"enum":        []string{"luminance", "average", "desaturation"},
						"default":     "luminance",
					},
					"quality": map[string]interface{}{
						"type":        "string",
						"description": "Preview resolution tier: low, medium, high, or realtime. Default realtime",
						"enum":        []string{"low", "medium", "high", "realtime"},
						"default":     "realtime",
					},
				},
				"required": []string{"target_colors"},
			},
		},
		{
			Name:        "update_preview",
			Description: "Re-render the most recent preview with some parameters changed. Only the provided fields are updated; the rest keep their previous values. Requires a prior create_preview.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"target_colors": map[string]interface{}{
						"type":        "array",
						"description": "Replacement target colors",
						"items":       colorSchema("A target color"),
					},
					"tolerance": toleranceSchema(),
					"color_space": map[string]interface{}{
						"type": "string",
						"enum": []string{"hsv", "lab", "rgb"},
					},
					"grayscale_method": map[string]interface{}{
						"type": "string",
						"enum": []string{"luminance", "average", "desaturation"},
					},
					"quality": map[string]interface{}{
						"type": "string",
						"enum": []string{"low", "medium", "high", "realtime"},
					},
				},
			},
		},

		// Full-Resolution Output
		{
			Name:        "apply_color_splash",
			Description: "Apply the color splash effect to the full-resolution image. Pixels matching any target color stay in color; the rest turn grayscale. Saves to output_path or returns base64 PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": splashProperties,
				"required":   []string{"target_colors"},
			},
		},
		{
			Name:        "apply_color_splash_selection",
			Description: "Apply the color splash effect only inside a geometric selection (rectangle, circle, polygon, or freehand) with optional feathered edges. Pixels outside the selection keep their original colors.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":             splashProperties["path"],
					"target_colors":    splashProperties["target_colors"],
					"tolerance":        splashProperties["tolerance"],
					"color_space":      splashProperties["color_space"],
					"grayscale_method": splashProperties["grayscale_method"],
					"selection":        selectionSchema(),
					"output_path":      splashProperties["output_path"],
				},
				"required": []string{"target_colors", "selection"},
			},
		},

		// Diagnostics
		{
			Name:        "performance_stats",
			Description: "Report rolling timing statistics (average, min, max, count in milliseconds) for engine operations performed in this session.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
