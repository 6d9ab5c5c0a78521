package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"fitbook/internal/structures"
)

// FileStore keeps the state document in a single zstd-compressed file.
// Meant for local development; writes go through a tmp file with fsync
// and rename so a crash never leaves a torn document.
type FileStore struct {
	mu         sync.Mutex
	path       string
	compressor *ZstdCompression
}

func NewFileStore(conf *structures.Config) (*FileStore, error) {
	if conf.Store.File.Path == "" {
		return nil, errors.New("store.file.path is not set")
	}
	compressor, err := NewZstdCompressor()
	if err != nil {
		return nil, err
	}
	return &FileStore{path: conf.Store.File.Path, compressor: compressor}, nil
}

func (s *FileStore) Get(_ context.Context) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", s.path, err)
	}
	decompressed, err := s.compressor.Decompress(data)
	if err != nil {
		return nil, false, fmt.Errorf("decompress %s: %w", s.path, err)
	}
	return decompressed, true, nil
}

func (s *FileStore) Put(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	compressed, err := s.compressor.Compress(data)
	if err != nil {
		return err
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(compressed); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, s.path)
}

func (s *FileStore) Ping(_ context.Context) error {
	return nil
}

func (s *FileStore) Close() error {
	s.compressor.Close()
	return nil
}
