package app

import (
	"testing"

	"github.com/gonewx/yesno/pkg/scenes"
)

const shippedConfig = "../../data/widget.yaml"

func TestNewApp(t *testing.T) {
	a, err := NewApp(Config{ConfigPath: shippedConfig, Seed: 1, Width: 640, Height: 480})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	scene, ok := a.GetSceneManager().GetCurrentScene().(*scenes.WidgetScene)
	if !ok {
		t.Fatal("Expected the widget scene to be active")
	}
	if v := scene.State().Viewport; v.X != 640 || v.Y != 480 {
		t.Errorf("Viewport = %+v, 期望 640x480", v)
	}
}

func TestLayoutResizesScene(t *testing.T) {
	a, err := NewApp(Config{ConfigPath: shippedConfig, Seed: 1})
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}

	w, h := a.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout should use the outside size, got %dx%d", w, h)
	}

	scene := a.GetSceneManager().GetCurrentScene().(*scenes.WidgetScene)
	if v := scene.State().Viewport; v.X != 1024 || v.Y != 768 {
		t.Errorf("Scene viewport not updated: %+v", v)
	}

	if w, h := a.Layout(0, 0); w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Degenerate outside size should fall back to defaults, got %dx%d", w, h)
	}
}

func TestNewAppMissingConfig(t *testing.T) {
	if _, err := NewApp(Config{ConfigPath: "does/not/exist.yaml"}); err == nil {
		t.Fatal("Expected error for a missing config file")
	}
}
