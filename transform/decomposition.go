package transform

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/mevansam/textparsers/config"
)

// Decomposition describes how a type without a structural shape is
// split into a fixed number of elements and built back from them.
type Decomposition struct {
	ElementTypes []reflect.Type
	Decompose    func(v reflect.Value) []reflect.Value
	Compose      func(elements []reflect.Value) (reflect.Value, error)
	// Settings overrides the default deconstructable settings.
	Settings *config.DeconstructableSettings
}

// DecompositionProvider supplies decompositions for types
// that cannot implement Deconstructable themselves.
type DecompositionProvider interface {
	TryGetDecomposition(t reflect.Type) (Decomposition, bool)
}

// Decompositions is a concurrency safe DecompositionProvider
// to which decompositions can be added at any time.
type Decompositions struct {
	decompositions sync.Map // reflect.Type => Decomposition
}

func NewDecompositions() *Decompositions {
	return &Decompositions{}
}

func (d *Decompositions) Add(t reflect.Type, decomposition Decomposition) error {

	if n := len(decomposition.ElementTypes); n < 1 || n > maxShapeArity {
		return fmt.Errorf("decomposition of '%s' has %d elements but only 1 to %d are supported",
			t, n, maxShapeArity)
	}
	if decomposition.Decompose == nil || decomposition.Compose == nil {
		return fmt.Errorf("decomposition of '%s' requires both decompose and compose functions", t)
	}
	d.decompositions.Store(t, decomposition)
	return nil
}

func (d *Decompositions) TryGetDecomposition(t reflect.Type) (Decomposition, bool) {
	if decomposition, ok := d.decompositions.Load(t); ok {
		return decomposition.(Decomposition), true
	}
	return Decomposition{}, false
}

// Decompose2 builds a decomposition of T into two elements.
func Decompose2[T, E1, E2 any](
	decompose func(T) (E1, E2),
	compose func(E1, E2) (T, error),
) Decomposition {

	return Decomposition{
		ElementTypes: []reflect.Type{reflect.TypeFor[E1](), reflect.TypeFor[E2]()},
		Decompose: func(v reflect.Value) []reflect.Value {
			e1, e2 := decompose(v.Interface().(T))
			return []reflect.Value{valueOf(e1), valueOf(e2)}
		},
		Compose: func(elements []reflect.Value) (reflect.Value, error) {
			t, err := compose(elements[0].Interface().(E1), elements[1].Interface().(E2))
			return valueOf(t), err
		},
	}
}

// Decompose3 builds a decomposition of T into three elements.
func Decompose3[T, E1, E2, E3 any](
	decompose func(T) (E1, E2, E3),
	compose func(E1, E2, E3) (T, error),
) Decomposition {

	return Decomposition{
		ElementTypes: []reflect.Type{reflect.TypeFor[E1](), reflect.TypeFor[E2](), reflect.TypeFor[E3]()},
		Decompose: func(v reflect.Value) []reflect.Value {
			e1, e2, e3 := decompose(v.Interface().(T))
			return []reflect.Value{valueOf(e1), valueOf(e2), valueOf(e3)}
		},
		Compose: func(elements []reflect.Value) (reflect.Value, error) {
			t, err := compose(
				elements[0].Interface().(E1),
				elements[1].Interface().(E2),
				elements[2].Interface().(E3),
			)
			return valueOf(t), err
		},
	}
}

// Decompose4 builds a decomposition of T into four elements.
func Decompose4[T, E1, E2, E3, E4 any](
	decompose func(T) (E1, E2, E3, E4),
	compose func(E1, E2, E3, E4) (T, error),
) Decomposition {

	return Decomposition{
		ElementTypes: []reflect.Type{
			reflect.TypeFor[E1](), reflect.TypeFor[E2](), reflect.TypeFor[E3](), reflect.TypeFor[E4](),
		},
		Decompose: func(v reflect.Value) []reflect.Value {
			e1, e2, e3, e4 := decompose(v.Interface().(T))
			return []reflect.Value{valueOf(e1), valueOf(e2), valueOf(e3), valueOf(e4)}
		},
		Compose: func(elements []reflect.Value) (reflect.Value, error) {
			t, err := compose(
				elements[0].Interface().(E1),
				elements[1].Interface().(E2),
				elements[2].Interface().(E3),
				elements[3].Interface().(E4),
			)
			return valueOf(t), err
		},
	}
}

// WithSettings returns a copy of the decomposition using the given settings.
func (d Decomposition) WithSettings(settings config.DeconstructableSettings) Decomposition {
	d.Settings = &settings
	return d
}

// valueOf keeps the static type of v even if it is a nil interface or pointer.
func valueOf[T any](v T) reflect.Value {
	return reflect.ValueOf(&v).Elem()
}

type decompositionCreator struct{}

func (decompositionCreator) Priority() int { return PriorityDecomposition }

func (decompositionCreator) CanHandle(t reflect.Type, r *Resolver) bool {

	if r.store.decompositions == nil {
		return false
	}
	d, ok := r.store.decompositions.TryGetDecomposition(t)
	return ok && r.canResolveAll(d.ElementTypes...)
}

func (decompositionCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	d, _ := r.store.decompositions.TryGetDecomposition(t)
	source := decompositionShape(d, r.Settings().Deconstructable)
	return newShapeCodec(t, source, source.settings, r)
}
