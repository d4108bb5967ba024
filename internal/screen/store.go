// Package screen holds the observable state behind a list screen and the
// request lifecycle that fills it.
package screen

import (
	"sync"
)

// Token identifies a fetch. Only the latest issued token may commit.
type Token uint64

type subscriber[T Keyed] struct {
	id int
	fn func(State[T])
}

// Store is an observable State. Writes are serialized and subscribers are
// notified in commit order. Subscribers must not write to the store they
// are subscribed to.
type Store[T Keyed] struct {
	dispatch sync.Mutex
	mu       sync.RWMutex

	state       State[T]
	latest      Token
	scope       string
	subscribers []subscriber[T]
	nextID      int

	// removed maps keys dropped by Remove to the latest token at that time
	removed map[string]Token
}

func NewStore[T Keyed]() *Store[T] {
	//nolint:exhaustruct //other fields are optional
	return &Store[T]{
		state: State[T]{
			Phase:  Loading,
			Items:  []T{},
			Error:  "",
			Notice: "",
			Busy:   map[string]bool{},
			Scope:  "",
		},
		removed: map[string]Token{},
	}
}

// State returns a snapshot that is safe to keep.
func (store *Store[T]) State() State[T] {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return store.state.clone()
}

// Subscribe registers fn for every committed change and returns a function
// removing it again.
func (store *Store[T]) Subscribe(fn func(State[T])) func() {
	store.mu.Lock()
	defer store.mu.Unlock()

	id := store.nextID
	store.nextID++
	store.subscribers = append(store.subscribers, subscriber[T]{id: id, fn: fn})

	return func() {
		store.mu.Lock()
		defer store.mu.Unlock()

		for i, sub := range store.subscribers {
			if sub.id == id {
				store.subscribers = append(store.subscribers[:i], store.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Begin issues a new token and enters the Loading phase. Responses for
// earlier tokens are discarded from now on. A pending Notice is kept.
func (store *Store[T]) Begin() Token {
	return store.BeginScope("")
}

// BeginScope is Begin for a fetch of scope. The scope is committed together
// with the fetch's outcome.
func (store *Store[T]) BeginScope(scope string) Token {
	var token Token

	store.update(func(state *State[T]) bool {
		store.latest++
		token = store.latest
		store.scope = scope

		state.Phase = Loading
		state.Error = ""
		return true
	})

	return token
}

// Resolve commits items fetched for token. It reports false when token was
// superseded. Items removed after token was issued are left out.
func (store *Store[T]) Resolve(token Token, items []T) bool {
	return store.update(func(state *State[T]) bool {
		if token != store.latest {
			return false
		}

		kept := make([]T, 0, len(items))
		for _, item := range items {
			if removedAt, ok := store.removed[item.Key()]; ok && token <= removedAt {
				continue
			}
			kept = append(kept, item)
		}
		clear(store.removed)

		state.Phase = Loaded
		state.Items = kept
		state.Error = ""
		state.Scope = store.scope
		return true
	})
}

// Fail moves to the Error phase with message and clears the items. It
// reports false when token was superseded.
func (store *Store[T]) Fail(token Token, message string) bool {
	return store.update(func(state *State[T]) bool {
		if token != store.latest {
			return false
		}

		clear(store.removed)

		state.Phase = Error
		state.Items = []T{}
		state.Error = message
		state.Scope = store.scope
		return true
	})
}

// Remove drops the item with key and its busy marker. Fetches already
// running when Remove is called will not list the item again. It reports
// whether the item was listed.
func (store *Store[T]) Remove(key string) bool {
	found := false

	store.update(func(state *State[T]) bool {
		if state.Phase == Loading {
			store.removed[key] = store.latest
		}

		wasBusy := state.Busy[key]
		delete(state.Busy, key)

		for i, item := range state.Items {
			if item.Key() == key {
				state.Items = append(state.Items[:i:i], state.Items[i+1:]...)
				found = true
				break
			}
		}

		return found || wasBusy
	})

	return found
}

func (store *Store[T]) SetBusy(key string, busy bool) {
	store.update(func(state *State[T]) bool {
		if busy {
			state.Busy[key] = true
		} else {
			delete(state.Busy, key)
		}
		return true
	})
}

// SetNotice replaces the notice; an empty message clears it.
func (store *Store[T]) SetNotice(message string) {
	store.update(func(state *State[T]) bool {
		if state.Notice == message {
			return false
		}

		state.Notice = message
		return true
	})
}

func (store *Store[T]) update(fn func(state *State[T]) bool) bool {
	store.dispatch.Lock()
	defer store.dispatch.Unlock()

	store.mu.Lock()
	changed := fn(&store.state)
	snapshot := store.state.clone()
	subscribers := make([]subscriber[T], len(store.subscribers))
	copy(subscribers, store.subscribers)
	store.mu.Unlock()

	if !changed {
		return false
	}

	for _, sub := range subscribers {
		sub.fn(snapshot)
	}

	return true
}
