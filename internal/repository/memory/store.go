// Package memory keeps users and projects in process memory. It satisfies the
// same interfaces as the SQL repositories and backs handler and service tests.
package memory

import (
	"context"
	"sync"
	"time"

	"user-directory/internal/models"
	repo "user-directory/internal/repository"
)

type Store struct {
	mu       sync.RWMutex
	projects []models.Project
	users    []models.User
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Create(_ context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.projects {
		if p.Name == name {
			return 0, repo.ErrProjectExists
		}
	}

	now := time.Now()
	project := models.Project{
		ID:        len(s.projects) + 1,
		Name:      name,
		CreatedAt: &now,
	}
	s.projects = append(s.projects, project)

	return project.ID, nil
}

func (s *Store) GetByName(_ context.Context, name string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projectByName(name)
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (s *Store) GetSummary(_ context.Context, name string) (*models.ProjectSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.projectByName(name)
	if !ok {
		return nil, repo.ErrNotFound
	}

	summary := &models.ProjectSummary{Name: p.Name}
	for _, u := range s.users {
		if u.ProjectID != nil && *u.ProjectID == p.ID {
			summary.UserCount++
		}
	}
	return summary, nil
}

func (s *Store) FindAll(_ context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*models.User, 0, len(s.users))
	for i := range s.users {
		u := s.users[i]
		users = append(users, &u)
	}
	return users, nil
}

func (s *Store) FindByProjectName(_ context.Context, projectName string) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []*models.User{}
	p, ok := s.projectByName(projectName)
	if !ok {
		return users, nil
	}

	for i := range s.users {
		u := s.users[i]
		if u.ProjectID != nil && *u.ProjectID == p.ID {
			users = append(users, &u)
		}
	}
	return users, nil
}

// SaveUsers stores the batch atomically: either every user is added or none.
func (s *Store) SaveUsers(_ context.Context, users []*models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(s.users)+len(users))
	for _, u := range s.users {
		seen[u.Username] = struct{}{}
	}

	for _, u := range users {
		if _, ok := seen[u.Username]; ok {
			return repo.ErrUserExists
		}
		seen[u.Username] = struct{}{}

		if u.ProjectID != nil && !s.hasProject(*u.ProjectID) {
			return repo.ErrNotFound
		}
	}

	now := time.Now()
	for _, u := range users {
		u.ID = len(s.users) + 1
		u.CreatedAt = &now
		s.users = append(s.users, *u)
	}

	return nil
}

func (s *Store) projectByName(name string) (models.Project, bool) {
	for _, p := range s.projects {
		if p.Name == name {
			return p, true
		}
	}
	return models.Project{}, false
}

func (s *Store) hasProject(id int) bool {
	for _, p := range s.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}
