package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/gosocial/internal/storage"
)

const ext = ".json"

// FileStore keeps every key in its own file under Root.
type FileStore struct {
	Root string
}

func New(root string) (store storage.Store, err error) {
	store = &FileStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, os.ModePerm)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *FileStore) path(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: invalid key %q", storage.ErrInternal, key)
	}
	return filepath.Join(s.Root, key+ext), nil
}

func (s *FileStore) Open(key string) (content []byte, err error) {
	path, err := s.path(key)
	if err != nil {
		return
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			err = storage.ErrNotExist
		} else {
			log.Error().Err(err).Msg("failed to open file at path " + path)
			err = storage.ErrInternal
		}
		return
	}
	defer f.Close()

	content, err = io.ReadAll(f)
	if err != nil {
		log.Error().Err(err).Msg("failed to read file " + path)
		err = storage.ErrInternal
	}
	return
}

func (s *FileStore) Delete(key string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotExist
		}
		log.Error().Err(err).Msg("file deletion error")
		return storage.ErrInternal
	}

	return nil
}

// Write replaces the key's file atomically, so a crash mid-write leaves the previous value intact.
func (s *FileStore) Write(key string, content []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		log.Error().Err(err).Msg("failed to write file with path " + path)
		return storage.ErrInternal
	}

	return nil
}
