package scenes

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/game"
	"github.com/decker502/cardhand/pkg/utils"
)

const testFrameTime = 1.0 / 60.0

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

const testHandsYAML = `
spawn: {x: 0, y: 0}
addDuration: 0.3
hands:
  - name: Hand1
    x: -2
    y: -2
    layout:
      automaticOrganizeHand: true
      startAngle: 150
      endAngle: 30
  - name: Hand2
    x: 2
    y: 1
`

func newTestScene(t *testing.T, settings *game.SettingsManager) *HandScene {
	t.Helper()
	cfg, err := config.ParseHandsConfig([]byte(testHandsYAML))
	if err != nil {
		t.Fatalf("ParseHandsConfig: %v", err)
	}
	s := NewHandScene(cfg, settings)
	s.SetCardImageFunc(nil)
	return s
}

func stepFrames(s *HandScene, n int) {
	for i := 0; i < n; i++ {
		s.step(testFrameTime)
	}
}

func handOf(t *testing.T, s *HandScene, index int) *components.HandComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HandComponent](s.EntityManager(), s.Hands()[index])
	if !ok {
		t.Fatalf("hand %d has no HandComponent", index)
	}
	return h
}

func TestNewHandSceneBuildsHandsAndButtons(t *testing.T) {
	s := newTestScene(t, nil)

	if len(s.Hands()) != 2 {
		t.Fatalf("hands = %d, want 2", len(s.Hands()))
	}
	if got := handOf(t, s, 0).Name; got != "Hand1" {
		t.Errorf("first hand name = %q, want Hand1", got)
	}
	buttons := ecs.GetEntitiesWith1[*components.ButtonComponent](s.EntityManager())
	if len(buttons) != 2 {
		t.Errorf("buttons = %d, want one per hand", len(buttons))
	}
}

func TestAddCardToHandFiresEventOnce(t *testing.T) {
	s := newTestScene(t, nil)

	if err := s.AddCardToHand(0); err != nil {
		t.Fatalf("AddCardToHand: %v", err)
	}
	if s.changedEvents != 0 {
		t.Fatalf("event fired synchronously")
	}

	// 0.3 秒补间加余量
	stepFrames(s, 30)

	if s.changedEvents != 1 {
		t.Errorf("changedEvents = %d, want 1", s.changedEvents)
	}
	if s.lastChangedHand != "Hand1" {
		t.Errorf("lastChangedHand = %q, want Hand1", s.lastChangedHand)
	}

	hand := handOf(t, s, 0)
	if len(hand.Cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(hand.Cards))
	}

	// N=1 位于 startAngle，自动半径写回布局
	card, _ := ecs.GetComponent[*components.TransformComponent](s.EntityManager(), hand.Cards[0])
	origin := utils.Vec3{X: -2, Y: -2}
	slot := utils.EllipseSlot(0, 150, hand.Layout.HorizontalRadius, hand.Layout.VerticalRadius)
	want := origin.Add(slot)
	if d := card.Position().Sub(want).Length(); d > 1e-6 {
		t.Errorf("card position = %+v, want %+v", card.Position(), want)
	}
}

func TestAddCardButtonClick(t *testing.T) {
	s := newTestScene(t, nil)

	buttons := ecs.GetEntitiesWith1[*components.ButtonComponent](s.EntityManager())
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.EntityManager(), buttons[1])
	cx := button.X + button.Width/2
	cy := button.Y + button.Height/2

	s.buttonSystem.HandlePointer(cx, cy, true, false)
	s.buttonSystem.HandlePointer(cx, cy, false, true)
	stepFrames(s, 30)

	if got := len(handOf(t, s, 1).Cards); got != 1 {
		t.Errorf("Hand2 cards = %d, want 1", got)
	}
	if got := len(handOf(t, s, 0).Cards); got != 0 {
		t.Errorf("Hand1 cards = %d, want 0", got)
	}
	if s.lastChangedHand != "Hand2" {
		t.Errorf("lastChangedHand = %q, want Hand2", s.lastChangedHand)
	}
}

func TestAddCardToHandOutOfRange(t *testing.T) {
	s := newTestScene(t, nil)

	for _, index := range []int{-1, 2} {
		if err := s.AddCardToHand(index); err == nil {
			t.Errorf("AddCardToHand(%d) should fail", index)
		}
	}
	if s.cardCount != 0 {
		t.Errorf("no card should be created, cardCount = %d", s.cardCount)
	}
}

func TestToggleDebugUpdate(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	s := newTestScene(t, settings)

	if err := s.AddCardToHand(0); err != nil {
		t.Fatalf("AddCardToHand: %v", err)
	}
	stepFrames(s, 30)

	s.ToggleDebugUpdate()
	if !handOf(t, s, 0).Layout.DebugUpdate || !handOf(t, s, 1).Layout.DebugUpdate {
		t.Fatal("debug update should be enabled on all hands")
	}
	if !settings.GetSettings().DebugUpdate {
		t.Error("settings should record debug update")
	}

	// 调试路径不触发事件
	if err := s.AddCardToHand(0); err != nil {
		t.Fatalf("AddCardToHand: %v", err)
	}
	stepFrames(s, 60)
	if s.changedEvents != 1 {
		t.Errorf("debug path fired events, changedEvents = %d", s.changedEvents)
	}

	// 关闭后每个手牌补一次布局
	s.ToggleDebugUpdate()
	stepFrames(s, 30)
	if s.changedEvents != 3 {
		t.Errorf("changedEvents = %d, want 3 after leaving debug update", s.changedEvents)
	}
	if settings.GetSettings().DebugUpdate {
		t.Error("settings should record debug update off")
	}
}

func TestToggleDebugGizmo(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	s := newTestScene(t, settings)

	s.ToggleDebugGizmo()
	if !handOf(t, s, 0).Layout.DebugGizmo || !settings.GetSettings().DebugGizmo {
		t.Fatal("gizmo should be on")
	}
	s.ToggleDebugGizmo()
	if handOf(t, s, 1).Layout.DebugGizmo || settings.GetSettings().DebugGizmo {
		t.Fatal("gizmo should be off")
	}
}

func TestSceneAppliesPersistedSettings(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	settings.SetDebugGizmo(true)

	s := newTestScene(t, settings)
	for i := range s.Hands() {
		if !handOf(t, s, i).Layout.DebugGizmo {
			t.Errorf("hand %d should start with gizmo on", i)
		}
	}
	if !s.SaveOnExit() {
		t.Error("SaveOnExit without storage should succeed")
	}
}

func TestToggleSound(t *testing.T) {
	settings := game.NewSettingsManager(nil)
	s := newTestScene(t, settings)
	s.SetAudioManager(game.NewAudioManager(nil, settings))

	s.ToggleSound()
	if settings.GetSettings().SoundEnabled {
		t.Error("sound should be off after toggle")
	}

	// 没有音频上下文时布局完成事件照常触发
	if err := s.AddCardToHand(1); err != nil {
		t.Fatalf("AddCardToHand: %v", err)
	}
	stepFrames(s, 30)
	if s.changedEvents != 1 {
		t.Errorf("changedEvents = %d, want 1", s.changedEvents)
	}
}
