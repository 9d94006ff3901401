package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// StorageKey is the fixed name cart snapshots are saved under.
const StorageKey = "cart-storage"

// Store persists cart lines between visits. The open flag is deliberately not
// part of the contract.
type Store interface {
	Save(lines []Line) error
	Load() ([]Line, error)
}

// FileStore keeps the cart snapshot as a JSON file under dir, the durable
// local storage for a session. A missing file means an empty cart.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

func (s *FileStore) Save(lines []Line) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}

func (s *FileStore) Load() ([]Line, error) {
	data, err := os.ReadFile(s.path())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
