package config

import "testing"

func TestStoreStartsDirty(t *testing.T) {
	s := NewStore(DefaultParameters())
	if _, dirty := s.TakeSnapshot(); !dirty {
		t.Error("a fresh store must trigger the first generation")
	}
	if _, dirty := s.TakeSnapshot(); dirty {
		t.Error("dirty flag must be one-shot")
	}
}

func TestMutateSetsDirtyAndSnapshotClears(t *testing.T) {
	s := NewStore(DefaultParameters())
	s.TakeSnapshot()

	s.Mutate(func(p *GenerationParameters) {
		p.StarCount = 123
	})

	params, dirty := s.TakeSnapshot()
	if !dirty {
		t.Fatal("mutation did not set the dirty flag")
	}
	if params.StarCount != 123 {
		t.Errorf("snapshot StarCount = %d, want 123", params.StarCount)
	}
	if _, dirty := s.TakeSnapshot(); dirty {
		t.Error("flag not cleared by the consuming snapshot")
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	s := NewStore(DefaultParameters())
	s.Peek()
	if _, dirty := s.TakeSnapshot(); !dirty {
		t.Error("Peek must not clear the dirty flag")
	}
}
