package score

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct{}

func (brokenStore) ReadScoreRecord() (uint32, error) { return 0, errors.New("bus error") }
func (brokenStore) WriteScoreRecord(uint32) error    { return errors.New("bus error") }

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		stored uint32
		expect uint32
	}{
		{"erased", ErasedRecord, 0},
		{"zero", 0, 0},
		{"in range", 42, 42},
		{"max", SaneMax, SaneMax},
		{"above max", SaneMax + 1, 0},
		{"garbage", 150, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Load(NewMemoryStore(tc.stored)))
		})
	}
}

func TestLoadReadFailure(t *testing.T) {
	assert.Equal(t, uint32(0), Load(brokenStore{}))
}

func TestSave(t *testing.T) {
	m := NewMemoryStore(ErasedRecord)
	require.NoError(t, Save(m, 3))
	require.NoError(t, Save(m, 4))
	assert.Equal(t, []uint32{3, 4}, m.Writes())
	assert.Equal(t, uint32(4), Load(m))

	err := Save(brokenStore{}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bus error")
}

func TestErase(t *testing.T) {
	m := NewMemoryStore(7)
	require.NoError(t, Erase(m))
	v, err := m.ReadScoreRecord()
	require.NoError(t, err)
	assert.Equal(t, ErasedRecord, v)

	assert.ErrorIs(t, Erase(brokenStore{}), ErrNotErasable)
}

func TestFlashImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	f, err := OpenFlashImage(path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, data, DefaultSectorSize)
	for _, b := range data {
		require.Equal(t, byte(0xff), b)
	}

	v, err := f.ReadScoreRecord()
	require.NoError(t, err)
	assert.Equal(t, ErasedRecord, v)
	assert.Equal(t, uint32(0), Load(f))

	require.NoError(t, f.WriteScoreRecord(5))
	require.NoError(t, f.WriteScoreRecord(12))
	assert.Equal(t, uint32(12), Load(f))

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{12, 0, 0, 0}, data[:RecordSize])
	assert.Equal(t, byte(0xff), data[RecordSize])

	reopened, err := OpenFlashImage(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), Load(reopened))

	require.NoError(t, Erase(reopened))
	assert.Equal(t, uint32(0), Load(reopened))
}

func TestFlashProgramOnlyClearsBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flash.bin")
	f, err := OpenFlashImage(path)
	require.NoError(t, err)
	require.NoError(t, f.WriteScoreRecord(0x0f))
	// programming without erasing first can't set bits back
	require.NoError(t, f.program(0xf0))
	v, err := f.ReadScoreRecord()
	require.NoError(t, err)
	assert.Equal(t, uint32(0), v)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simon.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)

	v, err := s.ReadScoreRecord()
	require.NoError(t, err)
	assert.Equal(t, ErasedRecord, v)

	require.NoError(t, Save(s, 9))
	require.NoError(t, Save(s, 10))
	assert.Equal(t, uint32(10), Load(s))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, uint32(10), Load(s))

	require.NoError(t, Erase(s))
	v, err = s.ReadScoreRecord()
	require.NoError(t, err)
	assert.Equal(t, ErasedRecord, v)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open("flash://" + filepath.Join(dir, "a.bin"))
	require.NoError(t, err)
	assert.IsType(t, &FlashImage{}, s)

	s, err = Open("sqlite://" + filepath.Join(dir, "a.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, Close(s))

	s, err = Open("mem://")
	require.NoError(t, err)
	assert.Equal(t, uint32(0), Load(s))
	require.NoError(t, Close(s))

	_, err = Open("eeprom://x")
	assert.ErrorIs(t, err, ErrUnknownScheme)

	_, err = Open("flash://")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	c := NewConfig()
	c.URL = "mem://"
	s, err := c.Open()
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
}
