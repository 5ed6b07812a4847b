package storage

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var _ Store = (*File)(nil)

// File keeps the values in a YAML document. Every call reads the file so that
// a logout in another process is seen by the next request.
type File struct {
	path string
	lock sync.Mutex
}

type fileDocument struct {
	Values map[string]string `yaml:"values"`
}

// NewFile creates a file store. The file and its directory are created on first write.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path
func (f *File) Path() string {
	return f.path
}

func (f *File) Get(key string) (string, bool, error) {
	f.lock.Lock()
	defer f.lock.Unlock()

	doc, err := f.load()
	if err != nil {
		return "", false, err
	}
	v, ok := doc.Values[key]
	return v, ok, nil
}

func (f *File) Set(key, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	doc.Values[key] = value
	return f.save(doc)
}

func (f *File) Remove(key string) error {
	f.lock.Lock()
	defer f.lock.Unlock()

	doc, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := doc.Values[key]; !ok {
		return nil
	}
	delete(doc.Values, key)
	return f.save(doc)
}

// load returns an empty document if the file doesn't exist.
func (f *File) load() (*fileDocument, error) {
	doc := &fileDocument{}
	data, err := os.ReadFile(f.path)
	if err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "[File load] read")
	}
	if err == nil {
		if err := yaml.Unmarshal(data, doc); err != nil {
			return nil, errors.Wrapf(err, "[File load] parse %s", f.path)
		}
	}
	if doc.Values == nil {
		doc.Values = make(map[string]string)
	}
	return doc, nil
}

func (f *File) save(doc *fileDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "[File save] marshal")
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "[File save] mkdir")
	}
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".session-*")
	if err != nil {
		return errors.Wrap(err, "[File save] create temp")
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "[File save] write")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "[File save] close")
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "[File save] rename")
	}
	return nil
}
