package score

import "sync"

// MemoryStore keeps the record in memory and remembers every write.
type MemoryStore struct {
	lock    sync.Mutex
	value   uint32
	history []uint32
}

// NewMemoryStore creates a MemoryStore holding v.
func NewMemoryStore(v uint32) *MemoryStore {
	return &MemoryStore{value: v}
}

// ReadScoreRecord implements Store.
func (m *MemoryStore) ReadScoreRecord() (uint32, error) {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.value, nil
}

// WriteScoreRecord implements Store.
func (m *MemoryStore) WriteScoreRecord(v uint32) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.value = v
	m.history = append(m.history, v)
	return nil
}

// EraseScoreRecord implements Eraser.
func (m *MemoryStore) EraseScoreRecord() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.value = ErasedRecord
	return nil
}

// Writes returns all values written so far.
func (m *MemoryStore) Writes() []uint32 {
	m.lock.Lock()
	defer m.lock.Unlock()
	return append([]uint32(nil), m.history...)
}
