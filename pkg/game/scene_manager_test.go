package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

// Update records that Update was called and stores the deltaTime.
func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

// Draw records that Draw was called.
func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

// MockSaveableScene additionally implements Saveable.
type MockSaveableScene struct {
	MockScene
	saveCalls int
}

// SaveOnExit records the call.
func (m *MockSaveableScene) SaveOnExit() bool {
	m.saveCalls++
	return true
}

// TestNewSceneManager verifies that NewSceneManager creates a valid instance.
func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm == nil {
		t.Fatal("NewSceneManager() returned nil")
	}
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
}

// TestSceneManagerSwitchTo verifies that SwitchTo correctly changes the active scene.
func TestSceneManagerSwitchTo(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}

	sm.SwitchTo(mockScene)

	if sm.GetCurrentScene() != mockScene {
		t.Error("SwitchTo did not set the current scene correctly")
	}
}

// TestSceneManagerUpdate verifies that Update calls the current scene's Update method.
func TestSceneManagerUpdate(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016 // ~60 FPS
	sm.Update(deltaTime)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %f, got %f", deltaTime, mockScene.deltaTime)
	}
}

// TestSceneManagerNoScene verifies that Update and SaveOnExit are safe without a scene.
func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	sm.Update(0.016)
	sm.SaveOnExit()
}

// TestSceneManagerSaveOnExit verifies that SaveOnExit reaches Saveable scenes only.
func TestSceneManagerSaveOnExit(t *testing.T) {
	sm := NewSceneManager()

	sm.SwitchTo(&MockScene{})
	sm.SaveOnExit()

	saveable := &MockSaveableScene{}
	sm.SwitchTo(saveable)
	sm.SaveOnExit()

	if saveable.saveCalls != 1 {
		t.Errorf("SaveOnExit calls = %d, want 1", saveable.saveCalls)
	}
}
