package systems

import (
	"testing"
	"time"

	"github.com/gonewx/yesno/pkg/ecs"
)

// recordingEmitter 记录发射调用
type recordingEmitter struct {
	hearts   [][2]float64
	confetti []float64
	// 彩纸发射时结果视图是否已显示
	resultVisibleAtConfetti bool
	visible                 func() bool
}

func (e *recordingEmitter) SpawnHearts(x, y float64) []ecs.EntityID {
	e.hearts = append(e.hearts, [2]float64{x, y})
	return nil
}

func (e *recordingEmitter) SpawnConfetti(originX float64) []ecs.EntityID {
	e.confetti = append(e.confetti, originX)
	if e.visible != nil {
		e.resultVisibleAtConfetti = e.visible()
	}
	return nil
}

func newTestCelebration(t *testing.T) (*testWidget, *CelebrationSystem, *recordingEmitter) {
	t.Helper()
	w := newTestWidget(t, 520, 200)
	emitter := &recordingEmitter{visible: func() bool { return w.state.ResultVisible }}
	attraction := NewAttractionSystem(w.em, w.state, w.cfg.Attraction)
	sys := NewCelebrationSystem(w.em, w.state, w.sched, emitter, attraction, w.cfg.Celebration)
	return w, sys, emitter
}

func TestCelebrationSequence(t *testing.T) {
	w, sys, emitter := newTestCelebration(t)

	// 悬停放大中点击
	NewAttractionSystem(w.em, w.state, w.cfg.Attraction).Enter()

	if !sys.Activate() {
		t.Fatal("First activation should succeed")
	}

	if !w.state.Accepted || w.state.Hover {
		t.Errorf("Expected accepted and not hovering, got accepted=%v hover=%v", w.state.Accepted, w.state.Hover)
	}
	if w.affirmScale() != 1 {
		t.Errorf("Affirm scale should reset to 1, got %v", w.affirmScale())
	}
	if !w.state.Celebrating || !w.state.Pop {
		t.Error("Celebrating and pop should be set immediately")
	}

	// 爱心同步生成在"是"按钮中心
	if len(emitter.hearts) != 1 || emitter.hearts[0] != [2]float64{156, 100} {
		t.Fatalf("Expected one heart burst at (156, 100), got %v", emitter.hearts)
	}
	if w.state.ResultVisible || len(emitter.confetti) != 0 {
		t.Fatal("Result and confetti must wait for the reveal delay")
	}

	w.sched.Advance(299 * time.Millisecond)
	if w.state.ResultVisible {
		t.Fatal("Result revealed too early")
	}

	w.sched.Advance(time.Millisecond)
	if !w.state.ResultVisible {
		t.Fatal("Result should be visible after 300ms")
	}
	if len(emitter.confetti) != 1 || emitter.confetti[0] != 260 {
		t.Fatalf("Expected confetti at viewport mid-x 260, got %v", emitter.confetti)
	}
	if !emitter.resultVisibleAtConfetti {
		t.Error("Result must be visible before confetti is spawned")
	}
	if !w.state.Pop {
		t.Error("Pop should still be active at 300ms")
	}

	w.sched.Advance(300 * time.Millisecond)
	if w.state.Pop {
		t.Error("Pop should end at 600ms")
	}
	if !w.state.Celebrating {
		t.Error("Celebrating mode is permanent")
	}
}

func TestCelebrationIsIdempotent(t *testing.T) {
	w, sys, emitter := newTestCelebration(t)

	sys.Activate()
	w.sched.Advance(time.Second)

	if sys.Activate() {
		t.Fatal("Second activation must return false")
	}
	w.sched.Advance(time.Second)

	if len(emitter.hearts) != 1 || len(emitter.confetti) != 1 {
		t.Errorf("Second activation must not spawn particles, hearts=%d confetti=%d", len(emitter.hearts), len(emitter.confetti))
	}
	if w.state.Pop {
		t.Error("Second activation must not restart the pop emphasis")
	}
}
