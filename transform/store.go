package transform

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/mevansam/textparsers/config"
	"github.com/mevansam/textparsers/logger"
)

// Store resolves and caches transformers. It is safe for concurrent
// use. Concurrent first time resolutions of the same type may build
// equivalent transformers more than once and the last one is cached.
type Store struct {
	settings *config.Store

	creators []Creator
	cache    sync.Map // reflect.Type => Transformer
	shapes   sync.Map // shapeKey => Transformer

	registered     map[reflect.Type]Transformer
	decompositions DecompositionProvider
	numerics       NumericCodecProvider
	legacy         LegacyConverterProvider
}

type shapeKey struct {
	t           reflect.Type
	fingerprint uint64
}

type Option func(*Store)

// WithTransformer registers transformers that take precedence
// over every transformer the store would derive on its own.
func WithTransformer(transformers ...Transformer) Option {
	return func(s *Store) {
		for _, t := range transformers {
			s.registered[t.Type()] = t
		}
	}
}

// WithCreator adds a creator to the resolution chain.
func WithCreator(creator Creator) Option {
	return func(s *Store) {
		s.creators = append(s.creators, creator)
	}
}

func WithDecompositions(provider DecompositionProvider) Option {
	return func(s *Store) {
		s.decompositions = provider
	}
}

func WithNumericCodecs(provider NumericCodecProvider) Option {
	return func(s *Store) {
		s.numerics = provider
	}
}

func WithLegacyConverters(provider LegacyConverterProvider) Option {
	return func(s *Store) {
		s.legacy = provider
	}
}

// NewStore creates a store using the given settings
// or the default settings when settings is nil.
func NewStore(settings *config.Store, opts ...Option) (*Store, error) {

	var (
		err error
	)

	if settings == nil {
		settings = config.DefaultStore()
	}
	if err = settings.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		settings:   settings.Copy(),
		registered: make(map[reflect.Type]Transformer),
		numerics:   DefaultNumericCodecs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.creators = append(s.creators,
		registeredCreator{},
		providerCreator{},
		enumCreator{},
		leafCreator{},
		pointerCreator{},
		keyValueCreator{},
		shapeCreator{},
		graduatedCreator{},
		mapCreator{},
		collectionCreator{},
		decompositionCreator{},
		legacyCreator{},
		textMarshalerCreator{},
	)
	sort.SliceStable(s.creators, func(i, j int) bool {
		return s.creators[i].Priority() < s.creators[j].Priority()
	})

	logger.TraceMessage("Created transformer store with creators: %# v", s.creators)
	return s, nil
}

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// Default returns a shared store using the default settings.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		var err error
		if defaultStore, err = NewStore(nil); err != nil {
			panic(err)
		}
	})
	return defaultStore
}

// Settings returns a copy of the store's settings.
func (s *Store) Settings() *config.Store {
	return s.settings.Copy()
}

func (s *Store) Resolve(t reflect.Type) (Transformer, error) {
	if transformer, ok := s.cache.Load(t); ok {
		return transformer.(Transformer), nil
	}
	return s.newResolver().Resolve(t)
}

func (s *Store) IsSupported(t reflect.Type) bool {
	if _, ok := s.cache.Load(t); ok {
		return true
	}
	return s.newResolver().CanResolve(t)
}

// Deconstructable builds a transformer for a fixed-arity shape using
// explicit settings instead of the settings the type would default to.
// Transformers are cached per type and settings fingerprint.
func (s *Store) Deconstructable(t reflect.Type, settings config.DeconstructableSettings) (Transformer, error) {

	var (
		err         error
		transformer Transformer
	)

	if err = settings.Validate(); err != nil {
		return nil, err
	}
	key := shapeKey{t: t, fingerprint: settings.Fingerprint()}
	if cached, ok := s.shapes.Load(key); ok {
		return cached.(Transformer), nil
	}

	r := s.newResolver()
	source, ok := r.shapeOf(t)
	if !ok {
		return nil, unsupportedType(t, "cannot be deconstructed into 1 to 8 elements")
	}
	if transformer, err = newShapeCodec(t, source, settings, r); err != nil {
		return nil, err
	}
	s.shapes.Store(key, transformer)
	return transformer, nil
}

// GetDeconstructable resolves a shape transformer for T using explicit settings.
func GetDeconstructable[T any](s *Store, settings config.DeconstructableSettings) (Typed[T], error) {

	transformer, err := s.Deconstructable(reflect.TypeFor[T](), settings)
	if err != nil {
		return Typed[T]{}, err
	}
	return Typed[T]{transformer: transformer}, nil
}

func (s *Store) newResolver() *Resolver {
	return &Resolver{
		store:    s,
		visiting: make(map[reflect.Type]struct{}),
	}
}

func (s *Store) String() string {
	return fmt.Sprintf("transformer store with %d creators", len(s.creators))
}
