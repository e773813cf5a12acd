package systems

import (
	"testing"

	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/entities"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
)

// scriptedRandom 按顺序循环返回预设的随机数
type scriptedRandom struct {
	values []float64
	next   int
}

func (r *scriptedRandom) Float64() float64 {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// testWidget 容器位于视口原点的最小挂件
type testWidget struct {
	em    *ecs.EntityManager
	state *game.WidgetState
	sched *game.Scheduler
	cfg   *config.WidgetConfig
}

// newTestWidget 创建 width x height 的容器（与视口重合），
// "是"按钮按默认布局放在 30% 处，"否"按钮在初始位置
func newTestWidget(t *testing.T, width, height float64) *testWidget {
	t.Helper()

	cfg := config.DefaultWidgetConfig()
	em := ecs.NewEntityManager()
	state := game.NewWidgetState(width, height)
	state.Container = utils.NewRect(0, 0, width, height)
	state.AffirmID = entities.NewAffirmControl(em, cfg.Layout, "Yes")
	state.DeclineID = entities.NewDeclineControl(em, cfg.Layout, "No")

	w := &testWidget{em: em, state: state, sched: game.NewScheduler(), cfg: cfg}
	w.placeAffirm(width*cfg.Layout.AffirmAnchorX-cfg.Layout.AffirmWidth/2, (height-cfg.Layout.AffirmHeight)/2)

	evasion := NewEvasionSystem(em, state, w.sched, &scriptedRandom{values: []float64{0.5}}, cfg.Evasion)
	evasion.PlaceInitial()
	return w
}

func (w *testWidget) placeAffirm(x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.state.AffirmID)
	pos.X, pos.Y = x, y
}

func (w *testWidget) placeDecline(x, y float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.state.DeclineID)
	pos.X, pos.Y = x, y
}

func (w *testWidget) declinePos() *components.PositionComponent {
	pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, w.state.DeclineID)
	return pos
}

func (w *testWidget) affirmScale() float64 {
	sc, _ := ecs.GetComponent[*components.ScaleComponent](w.em, w.state.AffirmID)
	return sc.Scale
}
