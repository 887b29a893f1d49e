package binding

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Binding lifecycle signals.
var (
	// BindingRegistered is emitted when a binder takes ownership of a binding.
	BindingRegistered = capitan.NewSignal(
		"pectin.binding.registered",
		"Binding registered with a binder",
	)

	// BindingDisposed is emitted once per disposed binding.
	BindingDisposed = capitan.NewSignal(
		"pectin.binding.disposed",
		"Binding disposed",
	)

	// BinderDisposed is emitted when a binder releases its bindings.
	BinderDisposed = capitan.NewSignal(
		"pectin.binder.disposed",
		"Binder disposed",
	)
)

// Field keys for binding events.
var (
	// KeyBinder is the binder id.
	KeyBinder = capitan.NewStringKey("binder")

	// KeyBinding is the binding id.
	KeyBinding = capitan.NewStringKey("binding")

	// KeyKind is the binding kind.
	KeyKind = capitan.NewStringKey("kind")

	// KeyCount is the number of bindings released by a binder.
	KeyCount = capitan.NewIntKey("count")
)

type kinded interface {
	Kind() string
}

func emitRegistered(b *Binder, binding Binding) {
	kind := ""
	if k, ok := binding.(kinded); ok {
		kind = k.Kind()
	}
	capitan.Emit(context.Background(), BindingRegistered,
		KeyBinder.Field(b.id),
		KeyBinding.Field(binding.ID()),
		KeyKind.Field(kind),
	)
}

func emitDisposed(b *Base) {
	capitan.Emit(context.Background(), BindingDisposed,
		KeyBinding.Field(b.id),
		KeyKind.Field(b.kind),
	)
}

func emitBinderDisposed(b *Binder, count int) {
	capitan.Emit(context.Background(), BinderDisposed,
		KeyBinder.Field(b.id),
		KeyCount.Field(count),
	)
}
