package runtime

import (
	"sort"

	"github.com/vcrobe/nojs-inviewport/vdom"
)

// HookRunner invokes one lifecycle hook. Renderers decide whether panics
// propagate (dev) or are recovered and logged (prod).
type HookRunner func(hook, key string, fn func())

// Tree tracks keyed component instances across render cycles and drives
// their lifecycle. It has no DOM dependency; the WASM renderer and the test
// renderer share it and differ only in how they commit VDOM.
//
// A render cycle is Begin, any number of RenderChild calls, the renderer's
// own DOM commit, then Commit.
type Tree struct {
	instances map[string]Component
	active    map[string]bool
	pending   []string
	run       HookRunner
}

// NewTree creates an empty tree. A nil runner calls hooks directly.
func NewTree(run HookRunner) *Tree {
	if run == nil {
		run = func(_, _ string, fn func()) { fn() }
	}
	return &Tree{
		instances: make(map[string]Component),
		active:    make(map[string]bool),
		run:       run,
	}
}

// Begin starts a render cycle.
func (t *Tree) Begin() {
	t.active = make(map[string]bool)
}

// RenderChild handles instance creation and reuse for key, then renders it.
func (t *Tree) RenderChild(r Renderer, key string, childWithProps Component) *vdom.VNode {
	t.active[key] = true

	instance, exists := t.instances[key]
	isFirstRender := !exists
	if isFirstRender {
		instance = childWithProps
		t.instances[key] = instance
	} else if instance != childWithProps {
		// Preserve the existing instance to keep state; take the new props.
		if updater, ok := instance.(PropUpdater); ok {
			updater.ApplyProps(childWithProps)
		}
	}

	instance.SetRenderer(r)

	if isFirstRender {
		if initializer, ok := instance.(Initializer); ok {
			t.run("OnInit", key, initializer.OnInit)
		}
	}
	if receiver, ok := instance.(ParameterReceiver); ok {
		t.run("OnParametersSet", key, receiver.OnParametersSet)
	}

	node := instance.Render(r)

	// Children finish rendering first, so they are mounted before their parent.
	if isFirstRender {
		t.pending = append(t.pending, key)
	}
	return node
}

// Commit unmounts instances that were not rendered this cycle, then mounts
// the ones rendered for the first time. Call it after the DOM is updated.
func (t *Tree) Commit() {
	for _, key := range t.sortedKeys() {
		if !t.active[key] {
			t.remove(key)
		}
	}

	pending := t.pending
	t.pending = nil
	for _, key := range pending {
		instance, ok := t.instances[key]
		if !ok {
			continue
		}
		if mounter, ok := instance.(Mounter); ok {
			t.run("OnMount", key, mounter.OnMount)
		}
	}
}

// Remove unmounts and forgets the instance at key, if any.
func (t *Tree) Remove(key string) {
	t.remove(key)
}

// RemoveAll unmounts every instance.
func (t *Tree) RemoveAll() {
	for _, key := range t.sortedKeys() {
		t.remove(key)
	}
	t.pending = nil
}

// Instance returns the live instance for key.
func (t *Tree) Instance(key string) (Component, bool) {
	c, ok := t.instances[key]
	return c, ok
}

// Len returns the number of live instances.
func (t *Tree) Len() int {
	return len(t.instances)
}

func (t *Tree) remove(key string) {
	instance, ok := t.instances[key]
	if !ok {
		return
	}
	delete(t.instances, key)
	delete(t.active, key)
	if unmounter, ok := instance.(Unmounter); ok {
		t.run("OnUnmount", key, unmounter.OnUnmount)
	}
}

func (t *Tree) sortedKeys() []string {
	keys := make([]string, 0, len(t.instances))
	for k := range t.instances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
