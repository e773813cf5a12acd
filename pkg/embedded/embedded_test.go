package embedded

import (
	"embed"
	"errors"
	"testing"
)

// 注意：真正的资源嵌入在项目根目录的 embed.go 中，
// 这里只验证包接口在未初始化和空文件系统下的行为。

// reset 还原包级状态，避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	var emptyFS embed.FS
	Init(emptyFS)

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/widget.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if Exists("data/widget.yaml") {
		t.Error("Exists() should be false before Init()")
	}
}

func TestUnknownPrefix(t *testing.T) {
	reset()
	defer reset()

	var emptyFS embed.FS
	Init(emptyFS)

	if _, err := ReadFile("assets/widget.yaml"); err == nil {
		t.Error("Expected error for path outside data/")
	}
	if _, err := ReadFile("./data/missing.yaml"); err == nil {
		t.Error("Expected error for missing file in empty FS")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists() should be false for missing file")
	}
}
