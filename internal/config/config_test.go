package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
server:
  port: "9090"
  time_zone: "Europe/Moscow"
database:
  host: localhost
  user: millionaire
  password: secret
  dbname: millionaire
jwt:
  secret: test-secret
  expirationHrs: 12
game:
  time_limit_minutes: 20
  prizes: [10, 20, 30]
  currency: "$"
email:
  from: "game@example.com"
cors:
  allow_origins:
    - "http://localhost:3000"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, testConfigYAML))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "5432", cfg.Database.Port, "Порт БД по умолчанию")
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 12, cfg.JWT.ExpirationHrs)
	assert.Equal(t, 20*time.Minute, cfg.Game.TimeLimit())
	assert.Equal(t, []int64{10, 20, 30}, cfg.Game.Prizes)
	assert.Equal(t, "$", cfg.Game.Currency)
	assert.Equal(t, 5*time.Second, cfg.Game.LockTTL())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "game@example.com", cfg.Email.From)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("GAME_TIME_LIMIT_MINUTES", "35")

	cfg, err := Load(writeConfig(t, testConfigYAML))

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 35*time.Minute, cfg.Game.TimeLimit())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
database:
  host: localhost
  user: u
  dbname: d
jwt:
  secret: s
`))

	require.NoError(t, err)
	assert.Equal(t, 35*time.Minute, cfg.Game.TimeLimit())
	assert.Len(t, cfg.Game.Prizes, 15)
	assert.Equal(t, "₽", cfg.Game.Currency)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad_MissingRequired(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  host: localhost
  user: u
  dbname: d
`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Host: "h", User: "u", DBName: "d"},
			JWT:      JWTConfig{Secret: "s"},
			Game:     GameConfig{TimeLimitMinutes: 35, Prizes: []int64{100}},
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.Game.TimeLimitMinutes = 0
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Game.Prizes = nil
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Server.TimeZone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}

func TestDatabaseConfig_ConnectionStrings(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "game", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=game sslmode=disable", d.PostgresConnectionString())
	assert.Equal(t, "postgres://u:p@db:5432/game?sslmode=disable", d.PostgresURL())
}
