// Package wal implements the durable append-only log backing the log
// service: an on-disk file of length-prefixed records, an in-memory offset
// index, and a FIFO queue of uncommitted entries.
package wal

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ehrlich-b/logstore"
)

const lenWidth = 4

var (
	// ErrOutOfRange is returned when a read addresses an entry at or past
	// the committed count.
	ErrOutOfRange = errors.New("entry index out of range")

	// ErrNotEnoughEntries is returned when a commit asks for more entries
	// than the uncommitted queue holds.
	ErrNotEnoughEntries = errors.New("not enough uncommitted entries")
)

// Entry locates one committed record. Position is the byte offset of the
// payload, just past the record's 4-byte length prefix.
type Entry struct {
	Position uint64
	Length   uint32
}

// Store owns one log file plus the queue and index. It is internally
// synchronized: Append, Commit, and the read methods may be called
// concurrently.
//
// Lock order is queue then index. Commit holds both for the whole batch so
// no reader observes an index entry whose bytes are not yet on disk.
// Readers use pread and never touch the shared file offset.
type Store struct {
	logger *zap.Logger

	mu    sync.Mutex // guards queue and write sequencing
	queue [][]byte

	file *os.File
	size uint64 // committed bytes on disk

	indexMu sync.RWMutex
	index   []Entry
}

// Open creates dir if missing, opens (or creates) the log file in
// read+append mode, and rebuilds the index by scanning from offset zero.
// A trailing partial record is excluded from the view; no repair is
// attempted.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, logstore.WrapError("OPEN", err)
	}

	file, err := os.OpenFile(
		filepath.Join(dir, logstore.LogFileName),
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0644,
	)
	if err != nil {
		return nil, logstore.WrapError("OPEN", err)
	}

	s := &Store{
		logger: logger,
		file:   file,
	}
	if err := s.rebuild(); err != nil {
		file.Close()
		return nil, err
	}
	return s, nil
}

// rebuild scans the file from offset zero and reconstructs the index
func (s *Store) rebuild() error {
	info, err := s.file.Stat()
	if err != nil {
		return logstore.WrapError("REBUILD", err)
	}
	fileSize := uint64(info.Size())

	var hdr [lenWidth]byte
	var off uint64
	for off < fileSize {
		if _, err := s.file.ReadAt(hdr[:], int64(off)); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return logstore.WrapError("REBUILD", err)
		}
		length := binary.BigEndian.Uint32(hdr[:])
		if off+lenWidth+uint64(length) > fileSize {
			break
		}
		s.index = append(s.index, Entry{
			Position: off + lenWidth,
			Length:   length,
		})
		off += lenWidth + uint64(length)
	}

	if off < fileSize {
		s.logger.Warn("log file has a partial trailing record; excluding it",
			zap.Uint64("offset", off),
			zap.Uint64("file_size", fileSize))
	}
	s.size = off
	return nil
}

// Append pushes one payload to the back of the uncommitted queue. It never
// writes to disk. The payload is copied.
func (s *Store) Append(entry []byte) {
	p := make([]byte, len(entry))
	copy(p, entry)

	s.mu.Lock()
	s.queue = append(s.queue, p)
	s.mu.Unlock()
}

// UncommittedCount returns the queue length
func (s *Store) UncommittedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// CommittedCount returns the index length
func (s *Store) CommittedCount() int {
	s.indexMu.RLock()
	defer s.indexMu.RUnlock()
	return len(s.index)
}

// Commit pops the first n queued entries, writes them to the file as one
// buffered batch of length-prefixed records, syncs, and extends the index.
// If n exceeds the queue length nothing is mutated. If the batch write or
// sync fails, the queue and index are left untouched and the file is cut
// back to its committed size, so the failed batch leaves no records behind.
func (s *Store) Commit(n int) error {
	if n < 0 {
		return logstore.WrapError("COMMIT", errors.Errorf("negative entry count %d", n))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.queue) {
		return logstore.WrapError("COMMIT",
			errors.Wrapf(ErrNotEnoughEntries, "have %d, want %d", len(s.queue), n))
	}
	if n == 0 {
		return nil
	}

	batch := s.queue[:n]
	total := 0
	for _, e := range batch {
		total += lenWidth + len(e)
	}
	buf := make([]byte, 0, total)
	for _, e := range batch {
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(e)))
		buf = append(buf, e...)
	}

	s.indexMu.Lock()
	defer s.indexMu.Unlock()

	// The file is opened with O_APPEND, so the batch lands at the end
	// regardless of any reader activity.
	if _, err := s.file.Write(buf); err != nil {
		s.file.Truncate(int64(s.size))
		return logstore.WrapError("COMMIT", err)
	}
	if err := s.file.Sync(); err != nil {
		s.file.Truncate(int64(s.size))
		return logstore.WrapError("COMMIT", err)
	}

	pos := s.size
	for _, e := range batch {
		s.index = append(s.index, Entry{
			Position: pos + lenWidth,
			Length:   uint32(len(e)),
		})
		pos += lenWidth + uint64(len(e))
	}
	s.size = pos
	s.queue = s.queue[n:]
	return nil
}

// Get returns the i-th committed payload
func (s *Store) Get(i int) ([]byte, error) {
	s.indexMu.RLock()
	if i < 0 || i >= len(s.index) {
		s.indexMu.RUnlock()
		return nil, logstore.WrapError("GET",
			errors.Wrapf(ErrOutOfRange, "index %d, committed %d", i, len(s.index)))
	}
	ent := s.index[i]
	s.indexMu.RUnlock()

	return s.readEntry(ent)
}

// IndexEntry returns the position and length of the i-th committed record
func (s *Store) IndexEntry(i int) (Entry, error) {
	s.indexMu.RLock()
	defer s.indexMu.RUnlock()
	if i < 0 || i >= len(s.index) {
		return Entry{}, logstore.WrapError("INDEX",
			errors.Wrapf(ErrOutOfRange, "index %d, committed %d", i, len(s.index)))
	}
	return s.index[i], nil
}

// ReadExact returns the committed payloads in [from, from+n)
func (s *Store) ReadExact(from, n int) ([][]byte, error) {
	s.indexMu.RLock()
	if from < 0 || n < 0 || from+n > len(s.index) {
		s.indexMu.RUnlock()
		return nil, logstore.WrapError("READ_EXACT",
			errors.Wrapf(ErrOutOfRange, "range [%d, %d), committed %d", from, from+n, len(s.index)))
	}
	ents := make([]Entry, n)
	copy(ents, s.index[from:from+n])
	s.indexMu.RUnlock()

	entries := make([][]byte, 0, n)
	for _, ent := range ents {
		e, err := s.readEntry(ent)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ReadAll scans the file sequentially from offset zero and returns every
// committed payload in order. It does not consult the index; the scan stops
// at the first incomplete record, so concurrent commits are observed as a
// prefix.
func (s *Store) ReadAll() ([][]byte, error) {
	info, err := s.file.Stat()
	if err != nil {
		return nil, logstore.WrapError("READ_ALL", err)
	}
	fileSize := uint64(info.Size())

	var entries [][]byte
	var hdr [lenWidth]byte
	var off uint64
	for off < fileSize {
		if _, err := s.file.ReadAt(hdr[:], int64(off)); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return nil, logstore.WrapError("READ_ALL", err)
		}
		length := binary.BigEndian.Uint32(hdr[:])
		if off+lenWidth+uint64(length) > fileSize {
			break
		}
		payload := make([]byte, length)
		if _, err := s.file.ReadAt(payload, int64(off+lenWidth)); err != nil {
			return nil, logstore.WrapError("READ_ALL", err)
		}
		entries = append(entries, payload)
		off += lenWidth + uint64(length)
	}
	return entries, nil
}

// readEntry reads one payload by its index entry using pread
func (s *Store) readEntry(ent Entry) ([]byte, error) {
	buf := make([]byte, ent.Length)
	if _, err := s.file.ReadAt(buf, int64(ent.Position)); err != nil {
		return nil, logstore.WrapError("READ", err)
	}
	return buf, nil
}

// Close closes the log file. Queued uncommitted entries are discarded; the
// queue is never persisted.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}
