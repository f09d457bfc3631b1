package main

import (
	"context"
	"testing"

	"github.com/FranCa26/InvenLink-24-7/internal/model"
	"github.com/FranCa26/InvenLink-24-7/internal/repository"
	"github.com/FranCa26/InvenLink-24-7/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed_CreatesThenResetsPassword(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewUsuarioRepository(db)
	ctx := context.Background()

	require.NoError(t, seed(ctx, repo, "admin", "primera", "Administrador", model.RolAdmin))
	u, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, model.RolAdmin, u.Rol)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("primera")))

	require.NoError(t, seed(ctx, repo, "admin", "segunda", "Otro", model.RolVendedor))
	again, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, u.IdUsuario, again.IdUsuario)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(again.Password), []byte("segunda")))
}
