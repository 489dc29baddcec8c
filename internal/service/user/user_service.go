package user

import (
	"context"

	"user-directory/internal/http/api"
	"user-directory/internal/models"
	"user-directory/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByProjectName(ctx context.Context, projectName string) ([]*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserSaver
type UserSaver interface {
	SaveUsers(ctx context.Context, users []*models.User) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProjectProvider
type ProjectProvider interface {
	GetByName(ctx context.Context, name string) (*models.Project, error)
}

type UserService struct {
	trm             service.TransactionManager
	userProvider    UserProvider
	userSaver       UserSaver
	projectProvider ProjectProvider
}

func NewUserService(trm service.TransactionManager, userProvider UserProvider, userSaver UserSaver, projectProvider ProjectProvider) *UserService {
	return &UserService{
		trm:             trm,
		userProvider:    userProvider,
		userSaver:       userSaver,
		projectProvider: projectProvider,
	}
}

// List returns all users, or only the members of projectName when it is set.
func (s *UserService) List(ctx context.Context, projectName string) ([]api.UserRecord, error) {
	var (
		users []*models.User
		err   error
	)

	if projectName == "" {
		users, err = s.userProvider.FindAll(ctx)
	} else {
		users, err = s.userProvider.FindByProjectName(ctx, projectName)
	}
	if err != nil {
		return nil, err
	}

	return ToRecords(users), nil
}

// Add resolves project names and stores the whole batch in one transaction.
func (s *UserService) Add(ctx context.Context, newUsers []api.NewUser) ([]api.UserRecord, error) {
	users := make([]*models.User, 0, len(newUsers))

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		users = users[:0]
		projectIDs := make(map[string]int)

		for _, nu := range newUsers {
			u := &models.User{
				Username:  nu.Username,
				Email:     nu.Email,
				FirstName: nu.FirstName,
				LastName:  nu.LastName,
				Position:  models.Position(nu.Position),
			}

			if nu.ProjectName != "" {
				id, ok := projectIDs[nu.ProjectName]
				if !ok {
					project, err := s.projectProvider.GetByName(ctx, nu.ProjectName)
					if err != nil {
						return err
					}
					id = project.ID
					projectIDs[nu.ProjectName] = id
				}
				u.ProjectID = &id
			}

			users = append(users, u)
		}

		return s.userSaver.SaveUsers(ctx, users)
	})
	if err != nil {
		return nil, err
	}

	return ToRecords(users), nil
}
