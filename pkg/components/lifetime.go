package components

import "time"

// LifetimeComponent 粒子的生命周期
// 时间均为调度器虚拟时钟，移除由调度器的一次性任务完成
type LifetimeComponent struct {
	SpawnedAt   time.Duration // 生成时间
	MaxLifetime time.Duration // 生成后多久被移除
}
