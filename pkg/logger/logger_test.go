package logger

import "testing"

func TestDispatchFansOutToAllInstances(t *testing.T) {
	a := NewMemoryLogger()
	b := NewMemoryLogger()
	Init(a, b)
	t.Cleanup(func() { Init() })

	Info("hello", "k", 1)
	Warn("careful")

	for _, m := range []*MemoryLogger{a, b} {
		if got := len(m.Entries()); got != 2 {
			t.Fatalf("expected 2 entries, got %d", got)
		}
		if m.Count("warn") != 1 {
			t.Fatalf("expected 1 warn entry")
		}
	}
}

func TestNamedScopePrefixesMessages(t *testing.T) {
	m := NewMemoryLogger()
	Init(m)
	t.Cleanup(func() { Init() })

	Named("NBL").Info("Processed", "count", 1000)

	entries := m.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "[NBL] Processed" {
		t.Fatalf("unexpected message %q", entries[0].Message)
	}
	if len(entries[0].Keyvals) != 2 {
		t.Fatalf("expected keyvals to be forwarded, got %v", entries[0].Keyvals)
	}
}

func TestCallsWithoutBackendsAreDropped(t *testing.T) {
	Init()
	Info("nobody listens")
	Named("X").Error("still nobody")
}
