package utils

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSeenSetNoDuplicates(t *testing.T) {
	s := NewSeenSet()

	added := s.Add("RP/01/2024/01234")
	if !added {
		t.Error("first Add should return true")
	}

	added = s.Add("RP/01/2024/01234")
	if added {
		t.Error("second Add of same identifier should return false")
	}

	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
	if !s.Contains("RP/01/2024/01234") {
		t.Error("Contains should report the identifier")
	}
}

func TestSeenSetConcurrency(t *testing.T) {
	s := NewSeenSet()
	var added int64

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.Add("https://rera.odisha.gov.in/projects/1") {
				atomic.AddInt64(&added, 1)
			}
		}()
	}
	wg.Wait()

	if added != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", added)
	}
}
