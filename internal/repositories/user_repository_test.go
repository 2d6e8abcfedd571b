package repositories

import (
	"testing"

	"smartspend/internal/database"
	"smartspend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

func (s *UserRepositorySuite) TestCreate() {
	user := &models.User{
		Username:     "alice",
		PasswordHash: "hashed_password",
		IsActive:     true,
	}

	err := s.repo.Create(user)

	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
}

func (s *UserRepositorySuite) TestCreate_DuplicateUsername() {
	s.NoError(s.repo.Create(&models.User{Username: "alice", PasswordHash: "hash", IsActive: true}))

	err := s.repo.Create(&models.User{Username: "alice", PasswordHash: "hash", IsActive: true})
	s.Error(err)
}

func (s *UserRepositorySuite) TestCreate_InvalidUsernameRejected() {
	err := s.repo.Create(&models.User{Username: "a!", PasswordHash: "hash"})
	s.Error(err)
}

func (s *UserRepositorySuite) TestGetByUsername() {
	created := database.CreateTestUser(s.T(), s.db, "alice")

	user, err := s.repo.GetByUsername("alice")
	s.NoError(err)
	s.Equal(created.ID, user.ID)

	_, err = s.repo.GetByUsername("ghost")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestGetByID() {
	created := database.CreateTestUser(s.T(), s.db, "alice")

	user, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("alice", user.Username)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUpdateLastLogin() {
	created := database.CreateTestUser(s.T(), s.db, "alice")
	s.Nil(created.LastLoginAt)

	err := s.repo.UpdateLastLogin(created.ID)
	s.NoError(err)

	user, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.NotNil(user.LastLoginAt)
}

func (s *UserRepositorySuite) TestUpdateLastLogin_MissingUser() {
	err := s.repo.UpdateLastLogin(uuid.New())
	s.Equal(ErrUserNotFound, err)
}
