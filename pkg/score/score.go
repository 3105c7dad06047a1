// Package score persists the high score in a single fixed-size record of
// non-volatile storage.
package score

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/golang/glog"
)

// SaneMax is the largest stored value accepted as a real score. Anything
// above it is treated as erased or corrupt storage.
const SaneMax = 100

// ErasedRecord is what a freshly erased record reads back as.
const ErasedRecord uint32 = 0xffffffff

var (
	// ErrUnknownScheme indicates an unsupported store URL scheme.
	ErrUnknownScheme = errors.New("unknown score store scheme")
	// ErrNotErasable indicates the store can't erase its record.
	ErrNotErasable = errors.New("store is not erasable")
)

// Store is the non-volatile record holding the high score.
type Store interface {
	// ReadScoreRecord reads the raw record.
	ReadScoreRecord() (uint32, error)
	// WriteScoreRecord erases the storage unit and programs the record.
	WriteScoreRecord(uint32) error
}

// Eraser is implemented by stores able to erase the record without
// programming it.
type Eraser interface {
	EraseScoreRecord() error
}

// Load reads the high score. Values above SaneMax and read failures both
// yield 0.
func Load(s Store) uint32 {
	v, err := s.ReadScoreRecord()
	if err != nil {
		glog.Warningf("read score record: %v", err)
		return 0
	}
	if v > SaneMax {
		glog.Infof("score record %#x out of range, reset to 0", v)
		return 0
	}
	return v
}

// Save writes the high score synchronously.
func Save(s Store, v uint32) error {
	if err := s.WriteScoreRecord(v); err != nil {
		return fmt.Errorf("write score record: %w", err)
	}
	glog.V(2).Infof("score record written: %d", v)
	return nil
}

// Erase erases the record if the store supports it.
func Erase(s Store) error {
	if e, ok := s.(Eraser); ok {
		return e.EraseScoreRecord()
	}
	return ErrNotErasable
}

// Close closes the store if it holds resources.
func Close(s Store) error {
	if c, ok := s.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Open opens a store from URL:
//
//	flash:///path/to/image.bin  file emulating a flash sector
//	sqlite:///path/to/simon.db  SQLite database
//	mem://                      in-memory, erased at start
func Open(storeURL string) (Store, error) {
	u, err := url.Parse(storeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid score store URL: %v", err)
	}
	path := u.Host + u.Path
	var s Store
	switch u.Scheme {
	case "flash":
		s, err = OpenFlashImage(path)
	case "sqlite":
		s, err = OpenSQLite(path)
	case "mem":
		s = NewMemoryStore(ErasedRecord)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownScheme, u.Scheme)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}
