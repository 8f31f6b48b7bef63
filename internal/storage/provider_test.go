// ABOUTME: Tests for the process-wide database Provider.
// ABOUTME: Verifies lazy open, reuse, concurrent access and retry after failure.
package storage

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/harperreed/workouts/internal/models"
)

func TestProviderReusesHandle(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "test.db"))
	defer p.Close()

	first, err := p.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	second, err := p.Get()
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if first != second {
		t.Error("expected the same handle on repeated Get")
	}
}

func TestProviderConcurrentGet(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "test.db"))
	defer p.Close()

	const workers = 8
	handles := make([]*DB, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			handles[i], errs[i] = p.Get()
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("Get %d failed: %v", i, errs[i])
		}
		if handles[i] != handles[0] {
			t.Errorf("Get %d returned a different handle", i)
		}
	}
}

func TestProviderCloseAllowsReopen(t *testing.T) {
	p := NewProvider(filepath.Join(t.TempDir(), "test.db"))

	first, err := p.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if _, err := first.CreateMessage(&models.NewMessage{UUID: "kept", Content: "still here"}); err != nil {
		t.Fatalf("CreateMessage failed: %v", err)
	}

	if err := p.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	second, err := p.Get()
	if err != nil {
		t.Fatalf("Get after Close failed: %v", err)
	}
	defer p.Close()

	if first == second {
		t.Error("expected a fresh handle after Close")
	}
	if _, err := second.GetMessageByUUID("kept"); err != nil {
		t.Errorf("expected data to survive reopen: %v", err)
	}
}

func TestProviderDoesNotCacheFailure(t *testing.T) {
	tmpDir := t.TempDir()
	parent := filepath.Join(tmpDir, "data")
	if err := os.WriteFile(parent, []byte("x"), 0600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	p := NewProvider(filepath.Join(parent, "test.db"))
	if _, err := p.Get(); err == nil {
		t.Fatal("expected Get to fail while parent is a file")
	}

	if err := os.Remove(parent); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	db, err := p.Get()
	if err != nil {
		t.Fatalf("Get after fixing the path failed: %v", err)
	}
	defer p.Close()
	if db == nil {
		t.Fatal("expected a handle")
	}
}
