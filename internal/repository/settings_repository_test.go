package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/repository"
	"github.com/PIYUSH-JOSHI1/SpeechToTxt/internal/repository/testutil"
)

func TestSettingsRepository_SetAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	missing, err := repo.Get(ctx, "provider.translator")
	require.NoError(t, err)
	require.Nil(t, missing)

	require.NoError(t, repo.Set(ctx, "provider.translator", "openai"))
	got, err := repo.Get(ctx, "provider.translator")
	require.NoError(t, err)
	require.Equal(t, "openai", got.Value)
	require.False(t, got.UpdatedAt.IsZero())

	require.NoError(t, repo.Set(ctx, "provider.translator", "anthropic"))
	got, err = repo.Get(ctx, "provider.translator")
	require.NoError(t, err)
	require.Equal(t, "anthropic", got.Value)
}

func TestSettingsRepository_GetByPrefix(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "openai.api_key", "sk-1"))
	require.NoError(t, repo.Set(ctx, "openai.model", "gpt-4o-mini"))
	require.NoError(t, repo.Set(ctx, "open_ai.other", "x"))
	require.NoError(t, repo.Set(ctx, "deepgram.api_key", "dg"))

	settings, err := repo.GetByPrefix(ctx, "openai.")
	require.NoError(t, err)
	require.Len(t, settings, 2)
	require.Equal(t, "openai.api_key", settings[0].Key)
	require.Equal(t, "openai.model", settings[1].Key)

	all, err := repo.GetByPrefix(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 4)
}

func TestSettingsRepository_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "network.proxy_url", "http://proxy:3128"))
	require.NoError(t, repo.Delete(ctx, "network.proxy_url"))

	got, err := repo.Get(ctx, "network.proxy_url")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSettingsRepository_SetMany(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "provider.translator", "google"))
	require.NoError(t, repo.SetMany(ctx, map[string]string{
		"provider.translator":  "openai",
		"provider.synthesizer": "elevenlabs",
	}))

	all, err := repo.GetByPrefix(ctx, "provider.")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "provider.synthesizer", all[0].Key)
	require.Equal(t, "elevenlabs", all[0].Value)
	require.Equal(t, "openai", all[1].Value)

	require.NoError(t, repo.SetMany(ctx, nil))
}
