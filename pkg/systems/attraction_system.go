package systems

import (
	"github.com/charmbracelet/log"
	"github.com/gonewx/yesno/pkg/components"
	"github.com/gonewx/yesno/pkg/config"
	"github.com/gonewx/yesno/pkg/ecs"
	"github.com/gonewx/yesno/pkg/game"
	"github.com/gonewx/yesno/pkg/logging"
	"github.com/gonewx/yesno/pkg/utils"
)

// AttractionSystem "是"按钮的靠近放大
//
// 指针越靠近按钮中心，按钮越大；悬停时保持不低于 HoverFloor 的缩放。
// 接受之后所有操作都不再生效。
type AttractionSystem struct {
	entityManager *ecs.EntityManager
	state         *game.WidgetState
	cfg           config.AttractionConfig
	logger        *log.Logger
}

// NewAttractionSystem 创建吸引系统
func NewAttractionSystem(em *ecs.EntityManager, state *game.WidgetState, cfg config.AttractionConfig) *AttractionSystem {
	return &AttractionSystem{
		entityManager: em,
		state:         state,
		cfg:           cfg,
		logger:        logging.For("Attraction"),
	}
}

// AttractionScale 根据指针到按钮中心的距离计算缩放
//
//	d <  threshold: 1 + (1 - d/threshold) * maxBoost
//	d >= threshold: 1
//
// 悬停时结果不低于 hoverFloor。
func AttractionScale(distance float64, hover bool, cfg config.AttractionConfig) float64 {
	scale := 1.0
	if distance < cfg.Threshold {
		t := 1 - distance/cfg.Threshold
		scale = 1 + t*cfg.MaxBoost
	}
	if hover && scale < cfg.HoverFloor {
		scale = cfg.HoverFloor
	}
	return scale
}

// Update 按最新指针位置更新"是"按钮缩放
// 距离以未缩放的按钮中心计算（缩放不改变中心）
func (s *AttractionSystem) Update() {
	if s.state.Accepted {
		return
	}
	bounds := ControlViewportBounds(s.entityManager, s.state, s.state.AffirmID)
	center := utils.RectCenter(bounds)
	d := s.state.Pointer.DistanceFrom(center)
	s.setScale(AttractionScale(d, s.state.Hover, s.cfg))
}

// Enter 指针进入"是"按钮：立即放大到悬停下限
func (s *AttractionSystem) Enter() {
	if s.state.Accepted {
		return
	}
	s.state.Hover = true
	s.setScale(s.cfg.HoverFloor)
}

// Leave 指针离开"是"按钮或整个容器：恢复原始大小
func (s *AttractionSystem) Leave() {
	if s.state.Accepted {
		return
	}
	s.state.Hover = false
	s.setScale(1)
}

// Reset 无条件恢复原始大小（庆祝开始时使用）
func (s *AttractionSystem) Reset() {
	s.setScale(1)
}

func (s *AttractionSystem) setScale(v float64) {
	sc, ok := ecs.GetComponent[*components.ScaleComponent](s.entityManager, s.state.AffirmID)
	if !ok {
		s.logger.Warn("affirm control has no scale component", "entity", s.state.AffirmID)
		return
	}
	sc.Scale = v
}
