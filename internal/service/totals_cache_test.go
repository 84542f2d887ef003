package service_test

import (
	"context"
	"testing"

	"ClubRoster/internal/cache"
	"ClubRoster/internal/model"
	"ClubRoster/internal/repository"
	"ClubRoster/internal/service"
	"ClubRoster/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerTotalsCache(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	svcs := service.NewServices(testutil.NewTestDB(t), cache.NewRedisStatsCache(client, 0), testutil.NewLogger())

	p, err := svcs.Players.Create(ctx, playerInput(9))
	require.NoError(t, err)
	m, err := svcs.Matches.Create(ctx, matchInput(2, 0))
	require.NoError(t, err)

	totals, err := svcs.Players.Totals(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, totals.MatchesPlayed)
	assert.True(t, mr.Exists("player:1:totals"), "totals cached after first read")

	_, err = svcs.Statistics.Create(ctx, service.StatisticCreate{PlayerID: p.ID, MatchID: m.ID, MinutesPlayed: 90, Goals: 2})
	require.NoError(t, err)
	assert.False(t, mr.Exists("player:1:totals"), "statistic create invalidates")

	totals, err = svcs.Players.Totals(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, totals.MatchesPlayed)
	assert.Equal(t, 2, totals.Goals)
	require.True(t, mr.Exists("player:1:totals"))

	require.NoError(t, svcs.Matches.Delete(ctx, m.ID))
	assert.False(t, mr.Exists("player:1:totals"), "match delete invalidates its players")

	totals, err = svcs.Players.Totals(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, totals.Goals)
}

func TestPlayerTotalsCacheDown(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	svcs := service.NewServices(testutil.NewTestDB(t), cache.NewRedisStatsCache(client, 0), testutil.NewLogger())
	p, err := svcs.Players.Create(ctx, playerInput(9))
	require.NoError(t, err)

	mr.Close()
	totals, err := svcs.Players.Totals(ctx, p.ID)
	require.NoError(t, err, "cache failures fall back to the store")
	assert.Zero(t, totals.MatchesPlayed)
}

// listHook calls after once, right after the wrapped List has read its rows.
type listHook struct {
	repository.StatisticRepository
	after func()
}

func (r *listHook) List(ctx context.Context, filter repository.StatisticFilter) ([]model.Statistic, error) {
	list, err := r.StatisticRepository.List(ctx, filter)
	if r.after != nil {
		after := r.after
		r.after = nil
		after()
	}
	return list, err
}

func TestPlayerTotalsNotCachedWhenStatisticLandsDuringLoad(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	totals := cache.NewRedisStatsCache(client, 0)

	db := testutil.NewTestDB(t)
	log := testutil.NewLogger()
	playerRepo := repository.NewPlayerRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	statRepo := repository.NewStatisticRepository(db)
	hooked := &listHook{StatisticRepository: statRepo}

	players := service.NewPlayerService(playerRepo, hooked, totals, log)
	matches := service.NewMatchService(matchRepo, statRepo, totals, log)
	statistics := service.NewStatisticService(statRepo, playerRepo, matchRepo, totals, log)

	p, err := players.Create(ctx, playerInput(9))
	require.NoError(t, err)
	m, err := matches.Create(ctx, matchInput(2, 0))
	require.NoError(t, err)

	hooked.after = func() {
		_, err := statistics.Create(ctx, service.StatisticCreate{PlayerID: p.ID, MatchID: m.ID, MinutesPlayed: 90, Goals: 2})
		require.NoError(t, err)
	}

	first, err := players.Totals(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, first.MatchesPlayed, "rows were read before the statistic was committed")
	assert.False(t, mr.Exists("player:1:totals"), "totals loaded under an old generation are not cached")

	second, err := players.Totals(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, second.MatchesPlayed)
	assert.Equal(t, 90, second.Minutes)
	assert.Equal(t, 2, second.Goals)
	assert.True(t, mr.Exists("player:1:totals"))
}
