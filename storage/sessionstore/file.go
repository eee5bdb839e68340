package sessionstore

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/educonnect/core/session"
)

// FileStore keeps the serialized session in a JSON file so it survives restarts.
type FileStore struct {
	path string
}

var _ session.Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Save(_ context.Context, usr session.User) error {
	data, err := encodeUser(usr)
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}

	// write then rename so readers never see a partial file
	tmp, err := ioutil.TempFile(dir, ".session-*")
	if err != nil {
		return errors.Wrap(err, "creating temp session file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.Write(data); err != nil {
		tmp.Close() //nolint:errcheck
		return errors.Wrap(err, "writing session file")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "closing session file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path), "renaming session file")
}

func (s *FileStore) Load(_ context.Context) (session.User, error) {
	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return session.User{}, session.ErrNoSession
		}
		return session.User{}, errors.Wrap(err, "reading session file")
	}
	return decodeUser(data)
}

func (s *FileStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}
