package server

import "testing"

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	want := []string{
		"image_load",
		"image_dimensions",
		"select_color",
		"create_preview",
		"update_preview",
		"apply_color_splash",
		"apply_color_splash_selection",
		"performance_stats",
	}
	if len(tools) != len(want) {
		t.Fatalf("tool count: got %d, want %d", len(tools), len(want))
	}

	byName := make(map[string]Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}
	for _, name := range want {
		tool, ok := byName[name]
		if !ok {
			t.Errorf("missing tool %q", name)
			continue
		}
		if tool.Description == "" {
			t.Errorf("%s: empty description", name)
		}
		if tool.InputSchema["type"] != "object" {
			t.Errorf("%s: schema type should be object, got %v", name, tool.InputSchema["type"])
		}
		if _, ok := tool.InputSchema["properties"]; !ok {
			t.Errorf("%s: schema missing properties", name)
		}
	}
}

func TestHandleToolsList(t *testing.T) {
	s := New(nil)
	req := &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/list"}

	resp := s.handleToolsList(req)
	if resp == nil {
		t.Fatal("handleToolsList returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatal("tools should be a []Tool")
	}
	if len(tools) != len(GetToolDefinitions()) {
		t.Errorf("tools/list returned %d tools, want %d", len(tools), len(GetToolDefinitions()))
	}
}
