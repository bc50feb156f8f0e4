package editor

import "slices"

// Observer receives the events an EditorState has applied. Undo logs,
// macro recorders and replication layers register here instead of wrapping
// Apply. Observers run synchronously after the mutation, in registration
// order, and must not mutate the state.
type Observer interface {
	// Applied is called once per successful Apply with the applied event.
	Applied(ev Event)
}

// AddObserver registers an observer. Registering the same observer twice
// is a no-op.
func (s *EditorState) AddObserver(o Observer) {
	if slices.Contains(s.observers, o) {
		return
	}
	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters an observer.
func (s *EditorState) RemoveObserver(o Observer) {
	if i := slices.Index(s.observers, o); i >= 0 {
		s.observers = slices.Delete(s.observers, i, i+1)
	}
}

func (s *EditorState) notify(ev Event) {
	for _, o := range s.observers {
		o.Applied(ev)
	}
}
