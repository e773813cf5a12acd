package game

import (
	"testing"
	"time"
)

func TestSchedulerRunsTasksInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(600*time.Millisecond, func() { order = append(order, "pop") })
	s.After(300*time.Millisecond, func() { order = append(order, "reveal") })
	s.After(300*time.Millisecond, func() { order = append(order, "confetti") })

	s.Advance(299 * time.Millisecond)
	if len(order) != 0 {
		t.Fatalf("No task should run before 300ms, got %v", order)
	}

	s.Advance(1 * time.Millisecond)
	if len(order) != 2 || order[0] != "reveal" || order[1] != "confetti" {
		t.Fatalf("Expected [reveal confetti] at 300ms, got %v", order)
	}

	s.Advance(time.Second)
	if len(order) != 3 || order[2] != "pop" {
		t.Fatalf("Expected pop last, got %v", order)
	}
	if s.Now() != 1300*time.Millisecond {
		t.Errorf("Now() = %v, want 1.3s", s.Now())
	}
}

func TestSchedulerNowDuringTask(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(250*time.Millisecond, func() { seen = s.Now() })

	// 一次推进跨过任务时间，任务内看到的是计划时间
	s.Advance(time.Second)
	if seen != 250*time.Millisecond {
		t.Errorf("Now() inside task = %v, want 250ms", seen)
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	ran := false
	task := s.After(100*time.Millisecond, func() { ran = true })

	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}
	task.Cancel()
	if s.Pending() != 0 {
		t.Errorf("Pending() after cancel = %d, want 0", s.Pending())
	}

	s.Advance(time.Second)
	if ran {
		t.Error("Cancelled task must not run")
	}
	if task.Done() {
		t.Error("Cancelled task must not be marked done")
	}
}

func TestSchedulerNestedScheduling(t *testing.T) {
	s := NewScheduler()
	var at []time.Duration

	s.After(100*time.Millisecond, func() {
		at = append(at, s.Now())
		// 在窗口内到期的嵌套任务应在同一次 Advance 中执行
		s.After(50*time.Millisecond, func() { at = append(at, s.Now()) })
		// 窗口外的任务留到下一次
		s.After(time.Second, func() { at = append(at, s.Now()) })
	})

	s.Advance(200 * time.Millisecond)
	if len(at) != 2 || at[0] != 100*time.Millisecond || at[1] != 150*time.Millisecond {
		t.Fatalf("Unexpected execution times: %v", at)
	}
	if s.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", s.Pending())
	}

	s.Advance(time.Second)
	if len(at) != 3 || at[2] != 1100*time.Millisecond {
		t.Errorf("Unexpected execution times: %v", at)
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	s := NewScheduler()
	s.Advance(time.Second)

	task := s.After(-time.Second, func() {})
	if task.Due() != time.Second {
		t.Errorf("Due() = %v, want 1s", task.Due())
	}
	s.Advance(0)
	if !task.Done() {
		t.Error("Zero-delay task should run on the next Advance")
	}
}
