package storage

import (
	"io"
	"os"
	"path/filepath"
)

type FileStorage interface {
	Save(path string, data io.Reader) error
	Get(path string) (io.ReadCloser, error)
	Delete(path string) error
	Exists(path string) bool
}

type fileStorage struct {
	basePath string
}

// NewFileStorage возвращает хранилище относительно basePath.
// Пустой basePath означает работу с путями как есть (рабочая директория CLI).
func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

func (s *fileStorage) resolve(path string) string {
	if s.basePath == "" {
		return path
	}
	return filepath.Join(s.basePath, path)
}

func (s *fileStorage) Save(path string, data io.Reader) error {
	fullPath := s.resolve(path)

	// Создаем директорию если нужно
	if dir := filepath.Dir(fullPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (s *fileStorage) Get(path string) (io.ReadCloser, error) {
	return os.Open(s.resolve(path))
}

func (s *fileStorage) Delete(path string) error {
	return os.Remove(s.resolve(path))
}

func (s *fileStorage) Exists(path string) bool {
	_, err := os.Stat(s.resolve(path))
	return !os.IsNotExist(err)
}
