package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pixel-PropX-Solutions/vyapar-drishti-frontend-sub005/pkg/config"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 720*time.Minute, cfg.Drafts.TTL)
	assert.Equal(t, 300*time.Second, cfg.Catalog.TTL)
	assert.Empty(t, cfg.Redis.Addr, "sin REDIS_ADDR los borradores van en memoria")
}

func TestFromViper_EnterosDesdeTexto(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")
	v.Set("HTTP_PORT", "9090")
	v.Set("DRAFT_TTL_MINUTES", "30")
	v.Set("REDIS_DB", "no-numérico")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Drafts.TTL)
	assert.Equal(t, 0, cfg.Redis.DB, "un entero inválido cae al valor por defecto")
}

func TestFromViper_SinSecretoJWT(t *testing.T) {
	_, err := config.FromViper(viper.New())
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/word", DBName: "vyapar", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fword@db:5432/vyapar?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}

func TestFromViper_Migraciones(t *testing.T) {
	v := viper.New()
	v.Set("JWT_SECRET", "s3cr3t")
	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.False(t, cfg.DB.Migrate)

	v.Set("MIGRATIONS", "true")
	cfg, err = config.FromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.DB.Migrate)
}
