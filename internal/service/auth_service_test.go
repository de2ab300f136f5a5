package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"agendados/internal/domain"
	"agendados/internal/service"
	"agendados/mocks"
)

func hashPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

func activeAgent(password string) *domain.Agent {
	return &domain.Agent{
		ID:           uuid.New(),
		Email:        "agente@agendados.pe",
		FullName:     "Lucia Campos",
		PasswordHash: hashPassword(password),
		IsActive:     true,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(mocks.MockAgentRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Agent) bool {
		return a.Email == "agente@agendados.pe" && a.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("password123")) == nil
	})).Return(nil)

	agent, tokens, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "  Agente@Agendados.pe ",
		Password: "password123",
		FullName: "Lucia Campos",
	})

	require.NoError(t, err)
	assert.Equal(t, "Lucia Campos", agent.FullName)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	repo.AssertExpectations(t)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mocks.MockAgentRepo)
	svc := service.NewAuthService(repo, testJWTConfig())

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Agent")).Return(domain.ErrDuplicateEmail)

	_, _, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "agente@agendados.pe",
		Password: "password123",
		FullName: "Lucia Campos",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		agent    func() *domain.Agent
		repoErr  error
		password string
		wantErr  error
	}{
		{"success", func() *domain.Agent { return activeAgent("password123") }, nil, "password123", nil},
		{"wrong_password", func() *domain.Agent { return activeAgent("password123") }, nil, "otra-clave-1", domain.ErrInvalidCredentials},
		{"unknown_email", func() *domain.Agent { return nil }, domain.ErrNotFound, "password123", domain.ErrInvalidCredentials},
		{"inactive", func() *domain.Agent {
			a := activeAgent("password123")
			a.IsActive = false
			return a
		}, nil, "password123", domain.ErrAgentInactive},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mocks.MockAgentRepo)
			svc := service.NewAuthService(repo, testJWTConfig())

			agent := tc.agent()
			if agent == nil {
				repo.On("GetByEmail", mock.Anything, "agente@agendados.pe").Return(nil, tc.repoErr)
			} else {
				repo.On("GetByEmail", mock.Anything, "agente@agendados.pe").Return(agent, nil)
			}

			tokens, err := svc.Login(context.Background(), service.LoginInput{
				Email:    "agente@agendados.pe",
				Password: tc.password,
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, tokens)
				return
			}
			require.NoError(t, err)
			assert.True(t, tokens.ExpiresAt.After(time.Now()))

			claims, err := svc.ValidateToken(tokens.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, agent.ID, claims.AgentID)
			assert.Equal(t, agent.Email, claims.Email)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	repo := new(mocks.MockAgentRepo)
	svc := service.NewAuthService(repo, testJWTConfig())
	agent := activeAgent("password123")

	repo.On("GetByEmail", mock.Anything, agent.Email).Return(agent, nil)
	repo.On("GetByID", mock.Anything, agent.ID).Return(agent, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: agent.Email, Password: "password123"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	_, err = svc.RefreshToken(context.Background(), tokens.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthService_ValidateToken_RejectsRefreshAndForeignTokens(t *testing.T) {
	repo := new(mocks.MockAgentRepo)
	svc := service.NewAuthService(repo, testJWTConfig())
	agent := activeAgent("password123")
	repo.On("GetByEmail", mock.Anything, agent.Email).Return(agent, nil)

	tokens, err := svc.Login(context.Background(), service.LoginInput{Email: agent.Email, Password: "password123"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokens.RefreshToken)
	assert.Error(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret"
	_, err = service.NewAuthService(repo, other).ValidateToken(tokens.AccessToken)
	assert.Error(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}
