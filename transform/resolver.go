package transform

import (
	"fmt"
	"reflect"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/logger"
)

// Creator offers to build transformers for the types it can handle.
// Creators with a lower priority are asked first.
type Creator interface {
	Priority() int
	// CanHandle must only return true if every element type
	// the transformer depends on can be resolved as well.
	CanHandle(t reflect.Type, r *Resolver) bool
	Create(t reflect.Type, r *Resolver) (Transformer, error)
}

// Priorities of the built in creators.
const (
	PriorityRegistered     = 0
	PriorityProvider       = 1
	PriorityEnum           = 10
	PriorityLeaf           = 20
	PriorityPointer        = 30
	PriorityKeyValue       = 40
	PriorityShape          = 50
	PriorityGraduated      = 60
	PriorityMap            = 70
	PriorityCollection     = 80
	PriorityDecomposition  = 90
	PriorityLegacy         = 100
	PriorityTextMarshaling = 110
)

// Resolver carries the state of one resolution. Types that are being
// resolved are tracked so that self-referential types are rejected.
type Resolver struct {
	store    *Store
	visiting map[reflect.Type]struct{}
}

func (r *Resolver) Store() *Store {
	return r.store
}

func (r *Resolver) Settings() *config.Store {
	return r.store.settings
}

func (r *Resolver) Resolve(t reflect.Type) (Transformer, error) {

	var (
		err         error
		transformer Transformer
	)

	if t == nil {
		return nil, unsupportedType(t, "")
	}
	if cached, ok := r.store.cache.Load(t); ok {
		return cached.(Transformer), nil
	}
	if _, cyclic := r.visiting[t]; cyclic {
		return nil, unsupportedType(t, "refers to itself")
	}
	r.visiting[t] = struct{}{}
	defer delete(r.visiting, t)

	for _, c := range r.store.creators {
		if !c.CanHandle(t, r) {
			continue
		}
		if transformer, err = c.Create(t, r); err != nil {
			return nil, err
		}
		if transformer.Type() != t {
			return nil, fmt.Errorf("creator %T built a transformer for '%s' instead of '%s'",
				c, typeName(transformer.Type()), typeName(t))
		}
		r.store.cache.Store(t, transformer)

		if logger.IsTraceEnabled() {
			logger.TraceMessage("Resolved '%s' using creator '%s': %s", t, reflect.TypeOf(c), transformer.String())
		}
		return transformer, nil
	}

	logger.DebugMessage("No creator can handle type '%s'.", t)
	return nil, unsupportedType(t, "")
}

// CanResolve reports whether some creator can handle t.
func (r *Resolver) CanResolve(t reflect.Type) bool {

	if t == nil {
		return false
	}
	if _, ok := r.store.cache.Load(t); ok {
		return true
	}
	if _, cyclic := r.visiting[t]; cyclic {
		return false
	}
	r.visiting[t] = struct{}{}
	defer delete(r.visiting, t)

	for _, c := range r.store.creators {
		if c.CanHandle(t, r) {
			return true
		}
	}
	return false
}

func (r *Resolver) canResolveAll(types ...reflect.Type) bool {
	for _, t := range types {
		if !r.CanResolve(t) {
			return false
		}
	}
	return true
}

func (r *Resolver) resolveAll(types []reflect.Type) ([]Transformer, error) {

	transformers := make([]Transformer, len(types))
	for i, t := range types {
		transformer, err := r.Resolve(t)
		if err != nil {
			return nil, err
		}
		transformers[i] = transformer
	}
	return transformers, nil
}

// registered transformers

type registeredCreator struct{}

func (registeredCreator) Priority() int { return PriorityRegistered }

func (registeredCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	_, ok := r.store.registered[t]
	return ok
}

func (registeredCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	return r.store.registered[t], nil
}

// TransformerProvider is implemented with a value receiver by types
// that supply their own transformer. It overrides every transformer
// the store would otherwise derive for the type.
type TransformerProvider interface {
	TextTransformer(r *Resolver) (Transformer, error)
}

var transformerProviderType = reflect.TypeFor[TransformerProvider]()

type providerCreator struct{}

func (providerCreator) Priority() int { return PriorityProvider }

func (providerCreator) CanHandle(t reflect.Type, r *Resolver) bool {
	return t.Kind() != reflect.Interface && t.Kind() != reflect.Pointer &&
		t.Implements(transformerProviderType)
}

func (providerCreator) Create(t reflect.Type, r *Resolver) (Transformer, error) {
	return reflect.Zero(t).Interface().(TransformerProvider).TextTransformer(r)
}
