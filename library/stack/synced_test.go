package stack

import (
	"sync"
	"testing"
)

func TestSyncedConcurrentPush(t *testing.T) {
	s, err := NewSynced(100)
	if err != nil {
		t.Fatalf("NewSynced error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.Push(base*100 + j)
			}
		}(i)
	}
	wg.Wait()

	if s.Len() != 100 {
		t.Errorf("Expected size 100, got %d", s.Len())
	}

	for i := 0; i < 100; i++ {
		if _, err := s.TryPop(); err != nil {
			t.Fatalf("TryPop %d error = %v", i, err)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("Expected empty stack")
	}
}

func TestNewSyncedInvalid(t *testing.T) {
	if _, err := NewSynced(0); err == nil {
		t.Errorf("Expected error for zero capacity")
	}
}
