package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/rma-tracker/internal/application/auth"
	"github.com/jhoicas/rma-tracker/internal/application/dto"
	"github.com/jhoicas/rma-tracker/internal/domain"
	"github.com/jhoicas/rma-tracker/internal/domain/entity"
	"github.com/jhoicas/rma-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/rma-tracker/pkg/clock"
	"github.com/jhoicas/rma-tracker/pkg/jwt"
)

const secret = "test-secret"

func newUseCase() *auth.AuthUseCase {
	repo := memory.NewUserRepository(memory.NewStore())
	cfg := auth.JWTConfig{Secret: secret, ExpMinutes: 30, Issuer: "rma-tracker"}
	return auth.NewAuthUseCase(repo, cfg, clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
}

func TestRegisterUser_RolPorDefectoTechnician(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	u, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ana@shop.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleTechnician, u.Role)
	assert.Equal(t, "ana@shop.com", u.Name)
	assert.Equal(t, "active", u.Status)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "ANA@shop.com", Password: "secreto123"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegisterUser_RolInvalido(t *testing.T) {
	_, err := newUseCase().RegisterUser(context.Background(), dto.RegisterRequest{Email: "x@shop.com", Password: "secreto123", Role: "bodeguero"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenConRol(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	created, err := uc.EnsureAdmin(ctx, "admin@shop.com", "supersecreto")
	require.NoError(t, err)
	assert.True(t, created)

	again, err := uc.EnsureAdmin(ctx, "admin@shop.com", "supersecreto")
	require.NoError(t, err)
	assert.False(t, again, "segunda llamada no crea otro administrador")

	resp, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@shop.com", Password: "supersecreto"})
	require.NoError(t, err)

	userID, role, err := jwt.Parse(secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)

	me, err := uc.Me(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "admin@shop.com", me.Email)
}

func TestLogin_Errores(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	_, err := uc.Login(ctx, dto.LoginRequest{Email: "nadie@shop.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "bob@shop.com", Password: "secreto123"})
	require.NoError(t, err)
	_, err = uc.Login(ctx, dto.LoginRequest{Email: "bob@shop.com", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestEnsureAdmin_EmailVacioNoHaceNada(t *testing.T) {
	created, err := newUseCase().EnsureAdmin(context.Background(), "", "")
	require.NoError(t, err)
	assert.False(t, created)
}
