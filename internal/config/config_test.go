package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jneves25/barber-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[server]
http_port = 9090

[database]
host = "db"
user = "barber"
password = "secret"
dbname = "barber"

[logs]
level = "debug"

[catalog_service]
url = "http://catalog:8081"
timeout = 3

[schedule]
open_hour = 8
close_hour = 20
step_minutes = 15
max_advance_days = 60

[permissions.owner]
grants = ["orders.manage", "commissions.manage", "goals.manage"]

[permissions.barber]
grants = []
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "host=db port=5432 user=barber password=secret dbname=barber sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, domain.WorkingHours{OpenHour: 8, CloseHour: 20}, cfg.Schedule.WorkingHours())
	assert.Equal(t, 15, cfg.Schedule.StepMinutes)

	table := cfg.PermissionTable()
	assert.ElementsMatch(t, []string{"orders.manage", "commissions.manage", "goals.manage"}, table["owner"])
	assert.Empty(t, table["barber"])
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "step too small", content: `
[database]
host = "db"
user = "barber"
dbname = "barber"
[catalog_service]
url = "http://catalog"
[schedule]
step_minutes = 3
`},
		{name: "missing catalog url", content: `
[database]
host = "db"
user = "barber"
dbname = "barber"
`},
		{name: "closed before open", content: `
[database]
host = "db"
user = "barber"
dbname = "barber"
[catalog_service]
url = "http://catalog"
[schedule]
open_hour = 19
close_hour = 9
`},
		{name: "unknown log level", content: `
[database]
host = "db"
user = "barber"
dbname = "barber"
[logs]
level = "verbose"
[catalog_service]
url = "http://catalog"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
