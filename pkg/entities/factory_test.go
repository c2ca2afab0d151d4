package entities

import (
	"testing"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
)

func TestNewHandEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	entry := config.HandEntry{Name: "Hand1", X: -2, Y: 1.5, Layout: config.DefaultHandLayoutConfig()}

	hand := NewHandEntity(em, entry)

	transform, ok := ecs.GetComponent[*components.TransformComponent](em, hand)
	if !ok {
		t.Fatal("hand should have TransformComponent")
	}
	if transform.X != -2 || transform.Y != 1.5 {
		t.Errorf("hand origin = (%v, %v), want (-2, 1.5)", transform.X, transform.Y)
	}

	handComp, ok := ecs.GetComponent[*components.HandComponent](em, hand)
	if !ok {
		t.Fatal("hand should have HandComponent")
	}
	if handComp.Name != "Hand1" || len(handComp.Cards) != 0 {
		t.Errorf("unexpected hand component: %+v", handComp)
	}
	if handComp.Layout != entry.Layout {
		t.Error("hand layout should be copied from entry")
	}
}

func TestNewHandEntityLayoutIsCopied(t *testing.T) {
	em := ecs.NewEntityManager()
	entry := config.HandEntry{Name: "Hand1", Layout: config.DefaultHandLayoutConfig()}

	a := NewHandEntity(em, entry)
	b := NewHandEntity(em, entry)

	// 自动整理会改写半径，两个手牌之间不能共享布局
	handA, _ := ecs.GetComponent[*components.HandComponent](em, a)
	handB, _ := ecs.GetComponent[*components.HandComponent](em, b)
	handA.Layout.HorizontalRadius = 42
	if handB.Layout.HorizontalRadius == 42 {
		t.Error("hands must not share layout state")
	}
}

func TestNewCardEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	card := NewCardEntity(em, "#1", utils.Vec3{X: 0.5, Y: -1})

	transform, ok := ecs.GetComponent[*components.TransformComponent](em, card)
	if !ok || transform.X != 0.5 || transform.Y != -1 || transform.Rotation != 0 {
		t.Errorf("unexpected transform: %+v", transform)
	}

	cardComp, ok := ecs.GetComponent[*components.CardComponent](em, card)
	if !ok || cardComp.Label != "#1" || cardComp.Hand != ecs.InvalidEntity {
		t.Errorf("unexpected card component: %+v", cardComp)
	}

	if ecs.HasComponent[*components.SpriteComponent](em, card) {
		t.Error("NewCardEntity should not attach a sprite")
	}

	AttachCardSprite(em, card, nil)
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, card)
	if !ok || sprite.Width != config.CardWorldWidth || sprite.Height != config.CardWorldHeight {
		t.Errorf("unexpected sprite: %+v", sprite)
	}
}

func TestCardColorCycles(t *testing.T) {
	if CardColor(0) != CardColor(len(cardPalette)) {
		t.Error("CardColor should cycle through the palette")
	}
	if CardColor(-1) != CardColor(1) {
		t.Error("CardColor should accept negative indices")
	}
}

func TestNewAddCardButton(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id := NewAddCardButton(em, 10, 20, "Add", func() { clicked = true })

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button should have ButtonComponent")
	}
	if !button.Enabled || button.Width != AddCardButtonWidth || button.Text != "Add" {
		t.Errorf("unexpected button: %+v", button)
	}
	button.OnClick()
	if !clicked {
		t.Error("OnClick should invoke the callback")
	}
}
