package habitat

import "sync"

// Store owns the current design snapshot. Views subscribe to it instead of
// keeping their own copies; every Dispatch replaces the snapshot and then
// notifies subscribers in subscription order.
type Store struct {
	mu          sync.Mutex
	reducer     *Reducer
	state       State
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(State)
}

// NewStore creates a store starting from initial
func NewStore(reducer *Reducer, initial State) *Store {
	return &Store{
		reducer: reducer,
		state:   initial.Clone(),
	}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch reduces action into the current state and returns the result.
// Subscribers are called after the lock is released so they may dispatch.
func (s *Store) Dispatch(action Action) State {
	s.mu.Lock()
	s.state = s.reducer.Reduce(s.state, action)
	next := s.state.Clone()
	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, sub := range subs {
		sub.fn(next.Clone())
	}
	return next
}

// Subscribe registers fn for state changes and returns a function that
// removes the subscription
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}
