package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

type StorageService interface {
	SaveDocument(data []byte) (string, error)
	DeleteFile(path string) error
	EnsureDir() error
	Dir() string
}

type storageService struct {
	tempDir string
}

func NewStorageService(tempDir string) StorageService {
	return &storageService{
		tempDir: tempDir,
	}
}

func (s *storageService) EnsureDir() error {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}

	return nil
}

func (s *storageService) Dir() string {
	return s.tempDir
}

// SaveDocument writes the blob under a unique name and returns its path.
// UUIDs rather than timestamps so concurrent requests never collide.
func (s *storageService) SaveDocument(data []byte) (string, error) {
	filename := fmt.Sprintf("resume_%s.pdf", uuid.New().String())
	filePath := filepath.Join(s.tempDir, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return filePath, nil
}

func (s *storageService) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
