package systems

import (
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/utils"
)

// ParticleSystem 推进粒子动画进度，并清理已到期的粒子
//
// 粒子的移除由生成时登记在调度器上的任务完成（DestroyEntity 只是标记），
// 这里统一调用 RemoveMarkedEntities。
type ParticleSystem struct {
	entityManager *ecs.EntityManager
	clock         Clock
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, clock Clock) *ParticleSystem {
	return &ParticleSystem{
		entityManager: em,
		clock:         clock,
	}
}

// Update 更新所有粒子，返回本帧清理的实体数量
func (s *ParticleSystem) Update() int {
	removed := s.entityManager.RemoveMarkedEntities()

	now := s.clock.Now()
	entities := ecs.GetEntitiesWith2[*components.ParticleComponent, *components.LifetimeComponent](s.entityManager)
	for _, id := range entities {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		p.Progress = utils.Progress((now - life.SpawnedAt).Seconds(), p.AnimDuration.Seconds())
	}
	return removed
}

// Count 返回存活的粒子数量
func (s *ParticleSystem) Count() int {
	return len(ecs.GetEntitiesWith1[*components.ParticleComponent](s.entityManager))
}
