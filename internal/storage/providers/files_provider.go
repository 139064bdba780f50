// Package providers contains the implementations of storage.FieldStore.
package providers

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/quickedit/internal/model"
)

// FilesFieldStore stores properties in YAML files, one per entity (e.g.
// '<base>/node/1.yaml'), each mapping the predicates of the entity's
// properties to their values.
type FilesFieldStore struct {
	BasePath string

	fhMutex      sync.Mutex
	fileHandlers map[string]*fileHandler
}

// NewFilesFieldStore returns a pointer to a new FilesFieldStore over the
// given directory.
func NewFilesFieldStore(basePath string) *FilesFieldStore {
	return &FilesFieldStore{
		BasePath:     basePath,
		fileHandlers: make(map[string]*fileHandler),
	}
}

func (p *FilesFieldStore) getFileHandler(id model.PropertyID) (*fileHandler, error) {
	p.fhMutex.Lock()
	defer p.fhMutex.Unlock()

	if fh, ok := p.fileHandlers[id.Subject()]; ok {
		return fh, nil
	}

	fh, err := newFileHandlerWithDataReadFromDisk(p.BasePath, id.EntityType(), id.EntityID())
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", fh.Filename()).Int("properties", len(fh.data)).Msg("loaded entity file")
	p.fileHandlers[id.Subject()] = fh
	return fh, nil
}

// Load returns the stored value of the property, or storage.ErrNotFound.
func (p *FilesFieldStore) Load(id model.PropertyID) (string, error) {
	fh, err := p.getFileHandler(id)
	if err != nil {
		return "", fmt.Errorf("error loading file handler for '%s': %w", id.Subject(), err)
	}
	return fh.Get(id.Predicate())
}

// Save stores the value of the property and writes the entity's file.
func (p *FilesFieldStore) Save(id model.PropertyID, value string) error {
	fh, err := p.getFileHandler(id)
	if err != nil {
		return fmt.Errorf("error loading file handler for '%s': %w", id.Subject(), err)
	}
	fh.Set(id.Predicate(), value)
	if err := fh.Write(); err != nil {
		return fmt.Errorf("error writing '%s': %w", id.Subject(), err)
	}
	log.Debug().Str("property", string(id)).Str("file", fh.Filename()).Msg("saved property")
	return nil
}
