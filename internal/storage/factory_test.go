package storage

import (
	"errors"
	"testing"

	"github.com/Belphemur/ReaderSettings/internal/apperrors"
)

func TestFactory_New_Memory(t *testing.T) {
	s, err := New("memory", ProviderConfig{})
	if err != nil {
		t.Fatalf("New memory: %v", err)
	}
	defer s.Close()

	s.Set("test", []byte("data"))
	val, ok := s.Get("test")
	if !ok || string(val) != "data" {
		t.Fatal("Memory store should work after creation via factory")
	}
}

func TestFactory_New_UnknownProvider(t *testing.T) {
	_, err := New("nonexistent", ProviderConfig{})
	if err == nil {
		t.Fatal("Expected error for unknown provider")
	}
	if !errors.Is(err, &apperrors.ErrUnknownProvider{}) {
		t.Fatalf("Expected ErrUnknownProvider, got %T: %v", err, err)
	}
}

func TestFactory_RegisteredProviders(t *testing.T) {
	names := RegisteredProviders()

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"memory", "redis", "sqlite"} {
		if !found[want] {
			t.Errorf("Expected %q provider to be registered, got %v", want, names)
		}
	}
}

func TestFactory_RegisteredProviders_Sorted(t *testing.T) {
	names := RegisteredProviders()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Providers not sorted: %v", names)
			break
		}
	}
}

func TestFactory_Register_Duplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected Register to panic on a duplicate name")
		}
	}()
	Register("memory", newMemoryStore)
}

func TestFactory_Register_Nil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected Register to panic on a nil provider")
		}
	}()
	Register("nil-provider", nil)
}

func TestFactory_New_Redis_InvalidAddress(t *testing.T) {
	_, err := New("redis", ProviderConfig{
		RedisAddress: "localhost:59999", // unlikely to have Redis here
	})
	if err == nil {
		t.Fatal("Expected error when connecting to invalid Redis address")
	}
}

func TestFactory_New_SQLite_MissingPath(t *testing.T) {
	if _, err := New("sqlite", ProviderConfig{}); err == nil {
		t.Fatal("Expected error when no SQLite path is configured")
	}
}
