package config

import (
	"encoding/binary"
	"fmt"

	"github.com/minio/highwayhash"
)

// Store is an immutable set of settings for every codec level.
type Store struct {
	Collection      CollectionSettings
	Dictionary      DictionarySettings
	KeyValue        KeyValueSettings
	Graduated       GraduatedSettings
	Tuple           DeconstructableSettings
	Deconstructable DeconstructableSettings
	Enum            EnumSettings
}

func DefaultStore() *Store {
	return &Store{
		Collection:      DefaultCollectionSettings(),
		Dictionary:      DefaultDictionarySettings(),
		KeyValue:        DefaultKeyValueSettings(),
		Graduated:       DefaultGraduatedSettings(),
		Tuple:           DefaultTupleSettings(),
		Deconstructable: DefaultDeconstructableSettings(),
		Enum:            DefaultEnumSettings(),
	}
}

// Validate checks every settings group and
// returns the first configuration error found.
func (s *Store) Validate() error {

	var (
		err error
	)

	groups := []struct {
		name     string
		settings Settings
	}{
		{"collection", s.Collection},
		{"dictionary", s.Dictionary},
		{"keyValue", s.KeyValue},
		{"graduated", s.Graduated},
		{"tuple", s.Tuple},
		{"deconstructable", s.Deconstructable},
		{"enum", s.Enum},
	}
	for _, g := range groups {
		if err = g.settings.Validate(); err != nil {
			return fmt.Errorf("settings group '%s': %w", g.name, err)
		}
	}
	return nil
}

// Copy returns a copy of the store that can be modified
// by the caller without affecting this instance.
func (s *Store) Copy() *Store {
	c := *s
	return &c
}

// fixed key so that fingerprints are stable across processes
var fingerprintKey = []byte("textparsers.settings.fingerprint")

// Fingerprint returns a stable 64 bit hash identifying a deconstructable
// shape configuration. It is used to key caches of per-shape transformers.
func (s DeconstructableSettings) Fingerprint() uint64 {

	var (
		data [6 * 4]byte
	)

	strict := uint32(0)
	if s.StrictBorders {
		strict = 1
	}
	binary.LittleEndian.PutUint32(data[0:], uint32(s.Delimiter))
	binary.LittleEndian.PutUint32(data[4:], uint32(s.Escape))
	binary.LittleEndian.PutUint32(data[8:], uint32(s.NullMarker))
	binary.LittleEndian.PutUint32(data[12:], uint32(s.Start))
	binary.LittleEndian.PutUint32(data[16:], uint32(s.End))
	binary.LittleEndian.PutUint32(data[20:], strict)

	return highwayhash.Sum64(data[:], fingerprintKey)
}
