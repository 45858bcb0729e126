package user

import (
	"context"
	"testing"
	"time"

	"plateplan-backend/domain"
	"plateplan-backend/entities"

	jwtlib "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserRepository struct {
	users []*entities.User
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user *entities.User) error {
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	for _, user := range m.users {
		if user.ID.String() == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return nil
}

func (m *mockUserRepository) GetAdminStats(ctx context.Context) (map[string]int64, error) {
	return map[string]int64{}, nil
}

type stubJWTService struct {
	issuedRole string
}

func (s *stubJWTService) GenerateTokenUser(userID string, role string) string {
	s.issuedRole = role
	return "token"
}

func (s *stubJWTService) ValidateTokenUser(token string) (*jwtlib.Token, error) {
	return nil, nil
}

func (s *stubJWTService) GetUserIDByToken(token string) (string, string, error) {
	return "", "", nil
}

func (s *stubJWTService) GenerateTokenForgetPassword(data map[string]any, duration time.Duration) (string, error) {
	return "", nil
}

func (s *stubJWTService) ValidateTokenForgetPassword(token string) (jwtlib.MapClaims, error) {
	return nil, nil
}

func seedUser(repo *mockUserRepository, password string, isAdmin bool) *entities.User {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: string(hashed),
		IsAdmin:  isAdmin,
	}
	repo.users = append(repo.users, user)
	return user
}

func TestLoginIssuesAdminRoleForAdminUser(t *testing.T) {
	repo := &mockUserRepository{}
	jwtStub := &stubJWTService{}
	seedUser(repo, "hunter2", true)
	svc := NewUserService(repo, jwtStub)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Email: "sam@example.com", Password: "hunter2"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, jwtStub.issuedRole)
	assert.Equal(t, domain.RoleAdmin, res.Role)
}

func TestLoginIssuesUserRoleByDefault(t *testing.T) {
	repo := &mockUserRepository{}
	jwtStub := &stubJWTService{}
	seedUser(repo, "hunter2", false)
	svc := NewUserService(repo, jwtStub)

	res, err := svc.Login(context.Background(), domain.LoginRequest{Email: "sam@example.com", Password: "hunter2"})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, jwtStub.issuedRole)
	assert.Equal(t, domain.RoleUser, res.Role)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	repo := &mockUserRepository{}
	seedUser(repo, "hunter2", false)
	svc := NewUserService(repo, &stubJWTService{})

	_, err := svc.Login(context.Background(), domain.LoginRequest{Email: "sam@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestMeReportsAdminFlag(t *testing.T) {
	repo := &mockUserRepository{}
	user := seedUser(repo, "hunter2", true)
	svc := NewUserService(repo, &stubJWTService{})

	res, err := svc.Me(context.Background(), user.ID.String())

	assert.NoError(t, err)
	assert.True(t, res.IsAdmin)
}
