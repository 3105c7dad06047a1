package score

import (
	"encoding/binary"
	"fmt"
	"os"
	"sync"
)

// Flash geometry emulated by FlashImage.
const (
	DefaultSectorSize = 2048
	RecordSize        = 4
)

// FlashImage emulates one erasable flash sector in a file. Erasing sets
// every byte to 0xff; programming can only clear bits. The record is a
// little-endian uint32 at Offset.
type FlashImage struct {
	Path       string
	SectorSize int
	Offset     int64

	lock sync.Mutex
}

// OpenFlashImage opens the image at path, creating an erased one if missing.
func OpenFlashImage(path string) (*FlashImage, error) {
	if path == "" {
		return nil, fmt.Errorf("flash image path required")
	}
	f := &FlashImage{Path: path, SectorSize: DefaultSectorSize}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = f.EraseScoreRecord(); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	return f, nil
}

// ReadScoreRecord implements Store.
func (f *FlashImage) ReadScoreRecord() (uint32, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	file, err := os.Open(f.Path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	var buf [RecordSize]byte
	if _, err = file.ReadAt(buf[:], f.Offset); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// WriteScoreRecord implements Store.
func (f *FlashImage) WriteScoreRecord(v uint32) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if err := f.erase(); err != nil {
		return err
	}
	return f.program(v)
}

// EraseScoreRecord implements Eraser.
func (f *FlashImage) EraseScoreRecord() error {
	f.lock.Lock()
	defer f.lock.Unlock()
	return f.erase()
}

func (f *FlashImage) erase() error {
	sector := make([]byte, f.SectorSize)
	for i := range sector {
		sector[i] = 0xff
	}
	return writeSync(f.Path, sector)
}

func (f *FlashImage) program(v uint32) error {
	sector, err := os.ReadFile(f.Path)
	if err != nil {
		return err
	}
	if int64(len(sector)) < f.Offset+RecordSize {
		return fmt.Errorf("flash image %s too small: %d bytes", f.Path, len(sector))
	}
	var rec [RecordSize]byte
	binary.LittleEndian.PutUint32(rec[:], v)
	for i, b := range rec {
		sector[f.Offset+int64(i)] &= b
	}
	return writeSync(f.Path, sector)
}

func writeSync(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err = file.Write(data); err == nil {
		err = file.Sync()
	}
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}
