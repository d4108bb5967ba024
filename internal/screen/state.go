package screen

// Phase is the lifecycle stage of a screen's data.
type Phase int

const (
	Loading Phase = iota
	Error
	Loaded
)

func (phase Phase) String() string {
	switch phase {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Keyed is implemented by every item a screen lists.
type Keyed interface {
	Key() string
}

type State[T Keyed] struct {
	Phase Phase
	Items []T
	// Error is only set in the Error phase.
	Error string
	// Notice reports a failed mutation without leaving the Loaded phase.
	Notice string
	// Busy holds the keys of items with a mutation in flight.
	Busy map[string]bool
	// Scope names what the committed Items were fetched for.
	Scope string
}

func (state State[T]) IsEmpty() bool {
	return state.Phase == Loaded && len(state.Items) == 0
}

func (state State[T]) IsBusy(key string) bool {
	return state.Busy[key]
}

func (state State[T]) clone() State[T] {
	items := make([]T, len(state.Items))
	copy(items, state.Items)

	busy := make(map[string]bool, len(state.Busy))
	for key, value := range state.Busy {
		busy[key] = value
	}

	return State[T]{
		Phase:  state.Phase,
		Items:  items,
		Error:  state.Error,
		Notice: state.Notice,
		Busy:   busy,
		Scope:  state.Scope,
	}
}
