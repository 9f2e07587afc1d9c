package postgres

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateURL_TraduceEsquema(t *testing.T) {
	assert.Equal(t, "pgx5://u:p@db:5432/vyapar?sslmode=disable", migrateURL("postgres://u:p@db:5432/vyapar?sslmode=disable"))
	assert.Equal(t, "pgx5://u@db/vyapar", migrateURL("postgresql://u@db/vyapar"))
	assert.Equal(t, "pgx5://ya/listo", migrateURL("pgx5://ya/listo"))
}

// Las columnas de entrada de la línea guardan el valor tal cual lo recibió el cálculo.
func TestMigracion_EntradasDeLineaSinEscala(t *testing.T) {
	raw, err := migrationsFS.ReadFile("migrations/000001_init.up.sql")
	require.NoError(t, err)
	sql := string(raw)

	for _, col := range []string{"quantity", "rate", "discount_amount", "tax_rate"} {
		re := regexp.MustCompile(`(?m)^\s*` + col + `\s+NUMERIC\s+NOT NULL`)
		assert.Regexp(t, re, sql, "columna %s", col)
		assert.NotRegexp(t, regexp.MustCompile(`(?m)^\s*`+col+`\s+NUMERIC\(`), sql, "columna %s", col)
	}
}
