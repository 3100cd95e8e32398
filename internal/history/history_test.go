package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/jumble/apps/go-server/internal/game"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func view(id string, res game.Result, guess string, total, remaining int) game.View {
	return game.View{
		Result:         res,
		ID:             id,
		OriginalWord:   "yellow",
		ScrambleWord:   "lowyel",
		GuessWord:      guess,
		TotalWords:     total,
		RemainingWords: remaining,
	}
}

func TestOpen_MigratesOnce(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "jumble.db")
	s, err := Open(dsn)
	require.NoError(t, err)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
	require.NoError(t, s.Close())

	// reopening skips applied migrations
	s, err = Open(dsn)
	require.NoError(t, err)
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n))
	assert.Equal(t, 2, n)
	require.NoError(t, s.Close())
}

func TestDSNHelpers(t *testing.T) {
	assert.True(t, isMemory(DefaultDSN))
	assert.True(t, isMemory(":memory:"))
	assert.False(t, isMemory("./data/jumble.db"))

	assert.Equal(t, "./data/jumble.db", dbPath("file:./data/jumble.db?cache=shared"))
	assert.Equal(t, "x.db?_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", withParams("x.db"))
	assert.Equal(t, "x.db?a=b&_busy_timeout=5000&_journal_mode=WAL&_foreign_keys=on", withParams("x.db?a=b"))
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)

	require.NoError(t, s.RecordGame(ctx, view("g1", game.ResultCreated, "", 2, 2), 3, false))
	require.NoError(t, s.RecordGame(ctx, view("g2", game.ResultCreated, "", 0, 0), 3, true))

	require.NoError(t, s.RecordGuess(ctx, view("g1", game.ResultIncorrect, "zzz", 2, 2)))
	require.NoError(t, s.RecordGuess(ctx, view("g1", game.ResultCorrect, "owl", 2, 1)))
	require.NoError(t, s.RecordGuess(ctx, view("g1", game.ResultAllGuessed, "yell", 2, 0)))

	st, err := s.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Games: 2, DailyGames: 1, Completed: 2, Guesses: 3, CorrectGuesses: 2}, st)
}

func TestRecordGuess_UnknownGameFails(t *testing.T) {
	s := openTest(t)
	err := s.RecordGuess(context.Background(), view("ghost", game.ResultIncorrect, "x", 1, 1))
	assert.Error(t, err)
}

func TestRecordGame_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	require.NoError(t, s.RecordGame(ctx, view("g1", game.ResultCreated, "", 1, 1), 3, false))
	assert.Error(t, s.RecordGame(ctx, view("g1", game.ResultCreated, "", 1, 1), 3, false))
}

func TestDailyBoard(t *testing.T) {
	ctx := context.Background()
	s := openTest(t)
	day := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	clock := day
	s.now = func() time.Time { return clock }

	// slow: 2 guesses over 90s
	require.NoError(t, s.RecordGame(ctx, view("slow", game.ResultCreated, "", 1, 1), 3, true))
	// fast: 1 guess over 10s
	require.NoError(t, s.RecordGame(ctx, view("fast", game.ResultCreated, "", 1, 1), 3, true))
	// unfinished and non-daily games never show up
	require.NoError(t, s.RecordGame(ctx, view("open", game.ResultCreated, "", 1, 1), 3, true))
	require.NoError(t, s.RecordGame(ctx, view("free", game.ResultCreated, "", 1, 1), 3, false))

	clock = day.Add(10 * time.Second)
	require.NoError(t, s.RecordGuess(ctx, view("fast", game.ResultAllGuessed, "owl", 1, 0)))
	require.NoError(t, s.RecordGuess(ctx, view("free", game.ResultAllGuessed, "owl", 1, 0)))
	clock = day.Add(30 * time.Second)
	require.NoError(t, s.RecordGuess(ctx, view("slow", game.ResultIncorrect, "zzz", 1, 1)))
	clock = day.Add(90 * time.Second)
	require.NoError(t, s.RecordGuess(ctx, view("slow", game.ResultAllGuessed, "owl", 1, 0)))

	rows, err := s.DailyBoard(ctx, "2026-10-18", 0)
	require.NoError(t, err)
	assert.Equal(t, []BoardRow{
		{GameID: "fast", Guesses: 1, ElapsedMs: 10_000},
		{GameID: "slow", Guesses: 2, ElapsedMs: 90_000},
	}, rows)

	rows, err = s.DailyBoard(ctx, "2026-10-17", 5)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
