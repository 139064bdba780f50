package providers

import (
	"errors"
	"fmt"
	"os"
	"path"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/quickedit/internal/storage"
)

type fileHandler struct {
	mutex sync.Mutex

	basePath   string
	entityType string
	entityID   string

	data map[string]string
}

func newFileHandlerWithDataReadFromDisk(basePath, entityType, entityID string) (*fileHandler, error) {
	f := fileHandler{basePath: basePath, entityType: entityType, entityID: entityID}
	err := f.readFromDisk()
	if err != nil {
		return nil, fmt.Errorf("could not read file from disk (%w)", err)
	}
	return &f, nil
}

// Filename returns the path of the entity's file.
func (h *fileHandler) Filename() string {
	return path.Join(h.basePath, h.entityType, h.entityID+".yaml")
}

func (h *fileHandler) Get(predicate string) (string, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	value, ok := h.data[predicate]
	if !ok {
		return "", fmt.Errorf("no '%s' in '%s': %w", predicate, h.Filename(), storage.ErrNotFound)
	}
	return value, nil
}

func (h *fileHandler) Set(predicate, value string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.data[predicate] = value
}

func (h *fileHandler) Write() error {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	data, err := yaml.Marshal(h.data)
	if err != nil {
		return fmt.Errorf("could not marshal data for '%s' (%w)", h.Filename(), err)
	}
	err = os.MkdirAll(path.Dir(h.Filename()), 0755)
	if err != nil {
		return fmt.Errorf("could not create directory for '%s' (%w)", h.Filename(), err)
	}
	err = os.WriteFile(h.Filename(), data, 0644)
	if err != nil {
		return fmt.Errorf("could not write file '%s' (%w)", h.Filename(), err)
	}
	return nil
}

func (h *fileHandler) readFromDisk() error {
	h.data = make(map[string]string)

	data, err := os.ReadFile(h.Filename())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read file '%s' from disk (%w)", h.Filename(), err)
	}

	err = yaml.Unmarshal(data, &h.data)
	if err != nil {
		return fmt.Errorf("could not parse file '%s' (%w)", h.Filename(), err)
	}
	if h.data == nil {
		h.data = make(map[string]string)
	}
	return nil
}
