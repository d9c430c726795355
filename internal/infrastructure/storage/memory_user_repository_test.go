package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DavidOG03/crack-analyst/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesUser(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	again, err := repo.Get(ctx, 1, 99)
	require.NoError(t, err)
	require.Same(t, user, again)
}

func TestMemoryUserRepository_UpdateState(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 2, 20)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateState(ctx, 2, entity.StateAwaitingPhoto))
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	// Обновление несуществующего пользователя не считается ошибкой.
	require.NoError(t, repo.UpdateState(ctx, 404, entity.StateProcessing))
}
