package cache

import "testing"

func TestNew_DefaultsToMemory(t *testing.T) {
	c, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	defer c.Close()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New(nil) = %T, want *MemoryCache", c)
	}
}

func TestNew_UnknownBackendFallsBackToMemory(t *testing.T) {
	c, err := New(&Options{Backend: "bogus"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if _, ok := c.(*MemoryCache); !ok {
		t.Errorf("New(bogus) = %T, want *MemoryCache", c)
	}
}
