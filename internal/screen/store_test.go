package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"readinglog.xdoubleu.com/internal/screen"
)

type item struct {
	id string
}

func (i item) Key() string {
	return i.id
}

func TestStoreStartsLoading(t *testing.T) {
	store := screen.NewStore[item]()

	state := store.State()
	assert.Equal(t, screen.Loading, state.Phase)
	assert.Empty(t, state.Items)
	assert.False(t, state.IsEmpty())
}

func TestStoreResolveLatestOnly(t *testing.T) {
	store := screen.NewStore[item]()

	first := store.Begin()
	second := store.Begin()

	assert.True(t, store.Resolve(second, []item{{id: "b"}}))
	assert.False(t, store.Resolve(first, []item{{id: "a"}}))
	assert.False(t, store.Fail(first, "failed"))

	state := store.State()
	assert.Equal(t, screen.Loaded, state.Phase)
	assert.Equal(t, []item{{id: "b"}}, state.Items)
	assert.Empty(t, state.Error)
}

func TestStoreResolveNilIsEmpty(t *testing.T) {
	store := screen.NewStore[item]()

	assert.True(t, store.Resolve(store.Begin(), nil))

	state := store.State()
	assert.NotNil(t, state.Items)
	assert.True(t, state.IsEmpty())
}

func TestStoreFailClearsItems(t *testing.T) {
	store := screen.NewStore[item]()
	store.Resolve(store.Begin(), []item{{id: "a"}})

	assert.True(t, store.Fail(store.Begin(), "Failed to load"))

	state := store.State()
	assert.Equal(t, screen.Error, state.Phase)
	assert.Equal(t, "Failed to load", state.Error)
	assert.Empty(t, state.Items)
	assert.False(t, state.IsEmpty())
}

func TestStoreRemove(t *testing.T) {
	store := screen.NewStore[item]()
	store.Resolve(store.Begin(), []item{{id: "a"}, {id: "b"}, {id: "c"}})
	store.SetBusy("b", true)

	assert.True(t, store.Remove("b"))
	assert.False(t, store.Remove("x"))

	state := store.State()
	assert.Equal(t, []item{{id: "a"}, {id: "c"}}, state.Items)
	assert.False(t, state.IsBusy("b"))
}

func TestStoreBusyAndNotice(t *testing.T) {
	store := screen.NewStore[item]()

	store.SetBusy("a", true)
	store.SetBusy("b", true)
	store.SetBusy("a", false)
	store.SetNotice("Failed to delete post")

	state := store.State()
	assert.False(t, state.IsBusy("a"))
	assert.True(t, state.IsBusy("b"))
	assert.Equal(t, "Failed to delete post", state.Notice)

	// a reload keeps the notice until it is replaced
	store.Resolve(store.Begin(), []item{{id: "b"}})
	assert.Equal(t, "Failed to delete post", store.State().Notice)

	store.SetNotice("")
	assert.Empty(t, store.State().Notice)
}

func TestStoreSetNoticeUnchanged(t *testing.T) {
	store := screen.NewStore[item]()

	changes := 0
	unsubscribe := store.Subscribe(func(_ screen.State[item]) {
		changes++
	})
	defer unsubscribe()

	store.SetNotice("")
	store.SetNotice("Failed to delete post")
	store.SetNotice("Failed to delete post")

	assert.Equal(t, 1, changes)
}

func TestStoreRemoveDuringFetch(t *testing.T) {
	store := screen.NewStore[item]()
	store.Resolve(store.Begin(), []item{{id: "a"}, {id: "b"}})

	token := store.Begin()
	assert.True(t, store.Remove("b"))

	// the fetch started before the removal still lists the item
	assert.True(t, store.Resolve(token, []item{{id: "a"}, {id: "b"}}))
	assert.Equal(t, []item{{id: "a"}}, store.State().Items)

	// later fetches are taken as they come
	assert.True(t, store.Resolve(store.Begin(), []item{{id: "a"}, {id: "b"}}))
	assert.Equal(t, []item{{id: "a"}, {id: "b"}}, store.State().Items)
}

func TestStoreScope(t *testing.T) {
	store := screen.NewStore[item]()
	store.Resolve(store.BeginScope("reading"), []item{{id: "a"}})

	token := store.BeginScope("completed")
	assert.Equal(t, "reading", store.State().Scope)

	store.Fail(token, "Failed to load")
	assert.Equal(t, "completed", store.State().Scope)
}

func TestStoreSnapshotIsIsolated(t *testing.T) {
	store := screen.NewStore[item]()
	store.Resolve(store.Begin(), []item{{id: "a"}})

	state := store.State()
	state.Items[0] = item{id: "changed"}
	state.Busy["a"] = true

	assert.Equal(t, []item{{id: "a"}}, store.State().Items)
	assert.False(t, store.State().IsBusy("a"))
}

func TestStoreSubscribe(t *testing.T) {
	store := screen.NewStore[item]()

	phases := []screen.Phase{}
	unsubscribe := store.Subscribe(func(state screen.State[item]) {
		phases = append(phases, state.Phase)
	})

	token := store.Begin()
	store.Resolve(token, []item{{id: "a"}})
	// stale commits do not notify
	store.Resolve(token-1, []item{})

	assert.Equal(t, []screen.Phase{screen.Loading, screen.Loaded}, phases)

	unsubscribe()
	store.Begin()
	assert.Len(t, phases, 2)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", screen.Loading.String())
	assert.Equal(t, "error", screen.Error.String())
	assert.Equal(t, "loaded", screen.Loaded.String())
}
