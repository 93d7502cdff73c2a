package postgres

import (
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/millionaire-api/internal/domain/entity"
	"github.com/yourusername/millionaire-api/internal/service/gameplay"
)

// Сервер в часовом поясе, отличном от UTC
var moscow = time.FixedZone("MSK", 3*60*60)

// roundTrip кодирует время так, как pgx пишет его в колонку timestamptz, и читает обратно
func roundTrip(t *testing.T, value time.Time) time.Time {
	t.Helper()

	m := pgtype.NewMap()
	buf, err := m.Encode(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, value, nil)
	require.NoError(t, err)

	var got time.Time
	require.NoError(t, m.Scan(pgtype.TimestamptzOID, pgtype.BinaryFormatCode, buf, &got))
	return got
}

func TestGameTimestamps_SurviveStorageInAnyZone(t *testing.T) {
	rules := gameplay.DefaultRules()
	machine := gameplay.NewStateMachine(rules)
	createdAt := time.Date(2024, 2, 2, 13, 37, 0, 0, moscow)

	stored := &entity.Game{ID: 1, CreatedAt: roundTrip(t, createdAt)}

	assert.True(t, createdAt.Equal(stored.CreatedAt), "Момент создания не должен сдвигаться: %s", stored.CreatedAt)

	now := createdAt.Add(40 * time.Minute)
	assert.True(t, machine.IsTimedOut(stored, now), "Игра старше 35 минут просрочена")
	assert.Equal(t, time.Duration(0), machine.TimeLeft(stored, now))
	assert.Equal(t, 25*time.Minute, machine.TimeLeft(stored, createdAt.Add(10*time.Minute)))

	finishedAt := roundTrip(t, createdAt.Add(36*time.Minute))
	stored.FinishedAt = &finishedAt
	stored.IsFailed = true
	assert.Equal(t, entity.GameStatusTimeout, machine.Status(stored))
}

func TestSchema_TimestampsCarryTimeZone(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "..", "migrations", "*.up.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	bare := regexp.MustCompile(`(?i)\bTIMESTAMP\b`)
	for _, file := range files {
		content, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Empty(t, bare.FindAllString(string(content), -1), "%s: колонки времени должны быть TIMESTAMPTZ", filepath.Base(file))
	}

	field, ok := reflect.TypeOf(entity.Game{}).FieldByName("FinishedAt")
	require.True(t, ok)
	assert.Contains(t, field.Tag.Get("gorm"), "type:timestamptz")
}
