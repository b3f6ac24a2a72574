package service

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"focusapp/internal/models"
	"focusapp/internal/repository"
)

// BackupData represents a complete roster backup
type BackupData struct {
	Version    string        `json:"version"`
	ExportedAt time.Time     `json:"exported_at"`
	Users      []models.User `json:"users"`
}

const backupVersion = "1.0"

// BackupService exports and imports the persisted roster
type BackupService struct {
	repo *repository.RosterRepository
}

// NewBackupService creates a new backup service
func NewBackupService(repo *repository.RosterRepository) *BackupService {
	return &BackupService{repo: repo}
}

// Export writes the full roster to the given writer as indented JSON.
func (s *BackupService) Export(w io.Writer) (*BackupData, error) {
	users, err := s.repo.LoadUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	data := &BackupData{
		Version:    backupVersion,
		ExportedAt: time.Now(),
		Users:      users,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// ExportToFile writes the roster backup to a file.
func (s *BackupService) ExportToFile(path string) (*BackupData, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer f.Close()

	return s.Export(f)
}

// Import reads a backup and persists it as the new roster. With merge set,
// backed-up users whose names collide (case-insensitively) with existing
// roster members are skipped instead of replacing the roster wholesale.
func (s *BackupService) Import(r io.Reader, merge bool) (int, error) {
	var data BackupData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to parse backup: %w", err)
	}
	if len(data.Users) == 0 {
		return 0, fmt.Errorf("backup contains no users")
	}

	if !merge {
		if err := s.repo.SaveUsers(data.Users); err != nil {
			return 0, err
		}
		return len(data.Users), nil
	}

	existing, err := s.repo.LoadUsers()
	if err != nil {
		return 0, fmt.Errorf("failed to load roster: %w", err)
	}

	added := 0
	for _, u := range data.Users {
		collision := false
		for _, e := range existing {
			if strings.EqualFold(e.Name, u.Name) {
				collision = true
				break
			}
		}
		if !collision {
			existing = append(existing, u)
			added++
		}
	}

	if err := s.repo.SaveUsers(existing); err != nil {
		return 0, err
	}
	return added, nil
}

// ImportFromFile reads a backup file and persists it.
func (s *BackupService) ImportFromFile(path string, merge bool) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open backup file: %w", err)
	}
	defer f.Close()

	return s.Import(f, merge)
}
