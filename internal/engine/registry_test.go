package engine

import (
	"context"
	"errors"
	"sync"
	"testing"
)

type countingEngine struct{ Mock }

func TestRegistry_BuildsAtMostOnce(t *testing.T) {
	builds := 0
	reg := NewRegistry(func() (Engine, error) {
		builds++
		return &countingEngine{}, nil
	})

	first, err := reg.Acquire()
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	second, err := reg.Acquire()
	if err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}
	if first != second {
		t.Error("Acquire returned different handles")
	}
	if builds != 1 {
		t.Errorf("build ran %d times, want 1", builds)
	}
}

func TestRegistry_RetriesAfterFailedBuild(t *testing.T) {
	builds := 0
	reg := NewRegistry(func() (Engine, error) {
		builds++
		if builds == 1 {
			return nil, errors.New("no api key")
		}
		return &Mock{}, nil
	})

	if _, err := reg.Acquire(); err == nil {
		t.Fatal("first Acquire should surface the build failure")
	}
	eng, err := reg.Acquire()
	if err != nil {
		t.Fatalf("second Acquire should retry and succeed, got %v", err)
	}
	if _, err := eng.Translate(context.Background(), "bonjour"); err != nil {
		t.Errorf("engine unusable after retry: %v", err)
	}
	if builds != 2 {
		t.Errorf("build ran %d times, want 2", builds)
	}
}

func TestRegistry_ConcurrentAcquireSerializesInit(t *testing.T) {
	builds := 0
	reg := NewRegistry(func() (Engine, error) {
		builds++
		return &Mock{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Acquire(); err != nil {
				t.Errorf("Acquire failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if builds != 1 {
		t.Errorf("build ran %d times under concurrency, want 1", builds)
	}
}
