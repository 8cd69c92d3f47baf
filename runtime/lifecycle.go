package runtime

// Initializer is implemented by components that set up state once, before
// their first render.
type Initializer interface {
	OnInit()
}

// ParameterReceiver is implemented by components that react to props before
// every render, including the first.
type ParameterReceiver interface {
	OnParametersSet()
}

// Mounter is implemented by components that need their DOM. OnMount runs
// once, after the first render has been committed, so element refs are set.
type Mounter interface {
	OnMount()
}

// Unmounter is implemented by components holding resources that must be
// released when the component leaves the tree (observers, subscriptions).
type Unmounter interface {
	OnUnmount()
}

// PropUpdater is implemented by components that accept new props from the
// freshly constructed instance their parent passes on each render, while
// keeping their own state.
type PropUpdater interface {
	ApplyProps(from Component)
}
