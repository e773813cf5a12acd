package entities

import (
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
)

// NewAffirmControl 创建"是"按钮实体
//
// 位置由场景布局时写入（依赖容器宽度），这里只初始化为原点。
// 返回的实体带有 ScaleComponent，吸引系统通过它放大按钮。
func NewAffirmControl(em *ecs.EntityManager, layout config.LayoutConfig, label string) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ControlComponent{
		Kind:   components.ControlAffirm,
		Label:  label,
		Width:  layout.AffirmWidth,
		Height: layout.AffirmHeight,
	})
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.ScaleComponent{Scale: 1})
	em.AddComponent(id, &components.SpringComponent{Scale: 1})
	return id
}

// NewDeclineControl 创建"否"按钮实体
// 初始位置由 EvasionSystem.PlaceInitial 决定
func NewDeclineControl(em *ecs.EntityManager, layout config.LayoutConfig, label string) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ControlComponent{
		Kind:   components.ControlDecline,
		Label:  label,
		Width:  layout.DeclineWidth,
		Height: layout.DeclineHeight,
	})
	em.AddComponent(id, &components.PositionComponent{})
	em.AddComponent(id, &components.SpringComponent{Scale: 1})
	return id
}
