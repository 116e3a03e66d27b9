package stack

import "sync"

// Synced 带互斥锁的 BoundedStack，可在多个 goroutine 间共享
type Synced struct {
	mu sync.Mutex
	s  *BoundedStack
}

// NewSynced 创建带锁的栈
func NewSynced(capacity int, opts ...Option) (*Synced, error) {
	s, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &Synced{s: s}, nil
}

// Push 见 BoundedStack.Push
func (s *Synced) Push(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Push(n)
}

// Pop 见 BoundedStack.Pop
func (s *Synced) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.s.Pop()
}

func (s *Synced) TryPush(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.TryPush(n)
}

func (s *Synced) TryPop() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.TryPop()
}

func (s *Synced) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.IsEmpty()
}

func (s *Synced) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Len()
}

// Display 见 BoundedStack.Display
func (s *Synced) Display() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s.Display()
}
