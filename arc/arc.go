// Package arc reads and writes AdvSys3 resource archives (arc.dat,
// arca.dat). An archive is a flat sequence of entries, each a
// little-endian size and index, a length-prefixed UTF-8 name and the
// raw entry data, terminated by a four-byte zero sentinel.
//
// Entry indices follow the packing order, except that the engine's
// setup entry restarts the numbering at a high base; see Pack.
package arc

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrTruncated indicates the archive ended inside an entry.
	ErrTruncated = errors.New("truncated archive")
	// ErrNoTerminator indicates the archive ended without the zero sentinel.
	ErrNoTerminator = errors.New("missing archive terminator")
	// ErrNameLength indicates an entry name longer than the length field holds.
	ErrNameLength = errors.New("entry name too long")
	// ErrDataLength indicates entry data longer than the size field holds.
	ErrDataLength = errors.New("entry data too long")
	// ErrEmptyEntry indicates an entry with no data. A zero size is the
	// archive terminator, so empty entries cannot be represented.
	ErrEmptyEntry = errors.New("empty entry data")
)

// Defaults for the index restart rule observed in stock archives.
const (
	DefaultRestartName  = "system_setup_ss"
	DefaultRestartIndex = 10000
)

// Entry is one archived resource.
type Entry struct {
	Name  string
	Index uint32
	Data  []byte
}

// Options configures packing.
type Options struct {
	// RestartName is the entry name that restarts index numbering.
	// Empty uses DefaultRestartName.
	RestartName string
	// RestartIndex is the index assigned to the restart entry.
	// Zero uses DefaultRestartIndex.
	RestartIndex uint32
}

func (o *Options) restartName() string {
	if o == nil || o.RestartName == "" {
		return DefaultRestartName
	}
	return o.RestartName
}

func (o *Options) restartIndex() uint32 {
	if o == nil || o.RestartIndex == 0 {
		return DefaultRestartIndex
	}
	return o.RestartIndex
}

// Pack writes entries to w in order, assigning indices: before the
// restart entry each entry's index is its position; from the restart
// entry on, indices count up from the restart base. Entry.Index on the
// inputs is ignored.
func Pack(w io.Writer, entries []Entry, opts *Options) error {
	counter := uint32(0)
	restarted := false

	for i, e := range entries {
		if e.Name == opts.restartName() {
			counter = opts.restartIndex()
			restarted = true
		}

		if err := writeEntry(w, &e, counter); err != nil {
			return fmt.Errorf("entry %q: %w", e.Name, err)
		}

		if restarted {
			counter++
		} else {
			counter = uint32(i) + 1 // #nosec G115 -- entry count bounded by the index field
		}
	}

	var sentinel [4]byte
	if _, err := w.Write(sentinel[:]); err != nil {
		return err
	}
	return nil
}

func writeEntry(w io.Writer, e *Entry, index uint32) error {
	if len(e.Data) == 0 {
		return ErrEmptyEntry
	}
	if len(e.Name) > int(^uint16(0)) {
		return ErrNameLength
	}
	if uint64(len(e.Data)) > uint64(^uint32(0)) {
		return ErrDataLength
	}

	var hdr [10]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(len(e.Data)))
	binary.LittleEndian.PutUint32(hdr[4:8], index)
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(len(e.Name)))

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := io.WriteString(w, e.Name); err != nil {
		return err
	}
	_, err := w.Write(e.Data)
	return err
}

// Unpack reads every entry until the zero sentinel. An archive ending
// without the sentinel, or inside an entry, is an error.
func Unpack(r io.Reader) ([]Entry, error) {
	var entries []Entry

	for {
		var sizeBuf [4]byte
		if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoTerminator
			}
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}

		size := binary.LittleEndian.Uint32(sizeBuf[:])
		if size == 0 {
			return entries, nil
		}

		var rest [6]byte
		if _, err := io.ReadFull(r, rest[:]); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}
		index := binary.LittleEndian.Uint32(rest[0:4])
		nameLen := binary.LittleEndian.Uint16(rest[4:6])

		name := make([]byte, nameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}

		data := make([]byte, size)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTruncated, err)
		}

		entries = append(entries, Entry{Name: string(name), Index: index, Data: data})
	}
}
