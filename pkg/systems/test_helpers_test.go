package systems

import (
	"io"
	"log"
	"math"
	"os"
	"testing"

	"github.com/decker502/cardhand/pkg/components"
	"github.com/decker502/cardhand/pkg/config"
	"github.com/decker502/cardhand/pkg/ecs"
	"github.com/decker502/cardhand/pkg/utils"
)

const testEpsilon = 1e-6

// TestMain 测试期间关闭日志输出
func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// newTestHand 创建测试用手牌实体
func newTestHand(em *ecs.EntityManager, name string, x, y float64, layout config.HandLayoutConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.HandComponent{
		Name:   name,
		Cards:  make([]ecs.EntityID, 0),
		Layout: layout,
	})
	return id
}

// newTestCard 创建测试用卡牌实体
func newTestCard(em *ecs.EntityManager, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CardComponent{})
	return id
}

func getTransform(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no TransformComponent", id)
	}
	return tr
}

func getHand(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HandComponent {
	t.Helper()
	hand, ok := ecs.GetComponent[*components.HandComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no HandComponent", id)
	}
	return hand
}

func assertVec3(t *testing.T, label string, got, want utils.Vec3) {
	t.Helper()
	if math.Abs(got.X-want.X) > testEpsilon || math.Abs(got.Y-want.Y) > testEpsilon || math.Abs(got.Z-want.Z) > testEpsilon {
		t.Errorf("%s = %+v, want %+v", label, got, want)
	}
}
