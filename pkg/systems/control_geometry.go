package systems

import (
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/utils"
	"github.com/jbeda/geom"
)

// ControlBounds 返回控件在容器坐标系下的包围盒
// 带 ScaleComponent 的控件以中心为原点缩放；实体缺少组件时返回零矩形
func ControlBounds(em *ecs.EntityManager, id ecs.EntityID) geom.Rect {
	ctrl, ok := ecs.GetComponent[*components.ControlComponent](em, id)
	if !ok {
		return geom.Rect{}
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return geom.Rect{}
	}

	r := utils.NewRect(pos.X, pos.Y, ctrl.Width, ctrl.Height)
	if sc, ok := ecs.GetComponent[*components.ScaleComponent](em, id); ok && sc.Scale != 1 {
		r = utils.ScaleRect(r, sc.Scale)
	}
	return r
}

// ControlViewportBounds 返回控件在视口坐标系下的包围盒
func ControlViewportBounds(em *ecs.EntityManager, state *game.WidgetState, id ecs.EntityID) geom.Rect {
	return utils.TranslateRect(ControlBounds(em, id), state.Container.Min)
}
