package game

import (
	"container/heap"
	"time"
)

// Task 一次性延迟任务
type Task struct {
	at        time.Duration
	seq       uint64
	fn        func()
	cancelled bool
	done      bool
	index     int
}

// Cancel 取消尚未执行的任务，对已执行或已取消的任务无效果
func (t *Task) Cancel() {
	t.cancelled = true
}

// Due 返回任务的计划执行时间
func (t *Task) Due() time.Duration {
	return t.at
}

// Done 返回任务是否已经执行
func (t *Task) Done() bool {
	return t.done
}

// Scheduler 基于虚拟时钟的一次性任务调度器
//
// 时钟只在 Advance 时前进，测试可以精确模拟时间流逝，无需真实等待。
// 同一时刻到期的任务按注册顺序执行。
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

// NewScheduler 创建调度器，时钟从 0 开始
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now 返回当前虚拟时间
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After 注册一个在 d 之后执行的任务
// d <= 0 的任务在下一次 Advance 时执行
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Task{at: s.now + d, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	return t
}

// Advance 推进虚拟时钟并执行所有到期任务
//
// 任务执行时 Now() 等于其计划时间；执行过程中新注册且在窗口内到期的任务也会被执行。
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&s.queue)
		if next.at > s.now {
			s.now = next.at
		}
		if next.cancelled {
			continue
		}
		next.done = true
		next.fn()
	}
	if target > s.now {
		s.now = target
	}
}

// Pending 返回尚未执行且未取消的任务数量
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// taskQueue 按 (到期时间, 注册顺序) 排序的最小堆
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
