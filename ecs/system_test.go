package ecs

import "testing"

// recordingSystem appends its tag to a shared trace on every update.
type recordingSystem struct {
	tag   string
	trace *[]string
}

func (s *recordingSystem) Update(m *Manager, dt float64) {
	*s.trace = append(*s.trace, s.tag)
}

// writerSystem sets every posComp.X to its value.
type writerSystem struct{ value float64 }

func (s *writerSystem) Update(m *Manager, dt float64) {
	for _, e := range EntitiesWith1[posComp](m) {
		Get[posComp](m, e).X = s.value
	}
}

// readerSystem records the posComp.X values it observes.
type readerSystem struct{ seen []float64 }

func (s *readerSystem) Update(m *Manager, dt float64) {
	for _, e := range EntitiesWith1[posComp](m) {
		s.seen = append(s.seen, Get[posComp](m, e).X)
	}
}

func TestSystemsRunInRegistrationOrder(t *testing.T) {
	m := NewManager()
	var trace []string
	AddSystem(m, &recordingSystem{tag: "a", trace: &trace})
	AddSystem(m, &recordingSystem{tag: "b", trace: &trace})
	AddSystem(m, &recordingSystem{tag: "c", trace: &trace})

	m.Update(1.0 / 60.0)
	m.Update(1.0 / 60.0)

	want := []string{"a", "b", "c", "a", "b", "c"}
	if len(trace) != len(want) {
		t.Fatalf("trace = %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace = %v, want %v", trace, want)
		}
	}
}

func TestLaterSystemSeesEarlierWritesSameTick(t *testing.T) {
	m := NewManager()
	e := m.CreateEntity()
	Add(m, e, posComp{X: 0})

	AddSystem(m, &writerSystem{value: 42})
	reader := AddSystem(m, &readerSystem{})

	m.Update(1.0 / 60.0)

	if len(reader.seen) != 1 || reader.seen[0] != 42 {
		t.Errorf("reader saw %v, want [42] (no snapshotting between systems)", reader.seen)
	}
}

func TestSystemOf(t *testing.T) {
	m := NewManager()
	var trace []string
	AddSystem(m, &recordingSystem{tag: "a", trace: &trace})
	writer := AddSystem(m, &writerSystem{value: 7})

	got, ok := SystemOf[*writerSystem](m)
	if !ok {
		t.Fatal("SystemOf should find the registered system")
	}
	if got != writer {
		t.Error("SystemOf should return the registered instance")
	}

	if _, ok := SystemOf[*readerSystem](m); ok {
		t.Error("SystemOf for an unregistered type should report false")
	}
}

func TestAddSystemReturnsConcrete(t *testing.T) {
	m := NewManager()
	s := AddSystem(m, &writerSystem{value: 3})
	if s.value != 3 {
		t.Errorf("value = %v, want 3", s.value)
	}
	if len(m.Systems()) != 1 {
		t.Errorf("Systems len = %d, want 1", len(m.Systems()))
	}
}
