package postgres_test

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vientosur/eolico-api/internal/infrastructure/postgres"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de registro: captura las sentencias sin tocar una base real
// ──────────────────────────────────────────────────────────────────────────────

type registroSQL struct {
	sentencias []string
	args       [][]any
}

func (q *registroSQL) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.sentencias = append(q.sentencias, sql)
	q.args = append(q.args, args)
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (q *registroSQL) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sentencias = append(q.sentencias, sql)
	q.args = append(q.args, args)
	return sinFilas{}, nil
}

func (q *registroSQL) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.sentencias = append(q.sentencias, sql)
	q.args = append(q.args, args)
	return filaVacia{}
}

func (q *registroSQL) ultima() string {
	if len(q.sentencias) == 0 {
		return ""
	}
	return q.sentencias[len(q.sentencias)-1]
}

type sinFilas struct{}

func (sinFilas) Close()                                       {}
func (sinFilas) Err() error                                   { return nil }
func (sinFilas) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (sinFilas) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (sinFilas) Next() bool                                   { return false }
func (sinFilas) Scan(...any) error                            { return nil }
func (sinFilas) Values() ([]any, error)                       { return nil, nil }
func (sinFilas) RawValues() [][]byte                          { return nil }
func (sinFilas) Conn() *pgx.Conn                              { return nil }

type filaVacia struct{}

func (filaVacia) Scan(...any) error { return pgx.ErrNoRows }

// ──────────────────────────────────────────────────────────────────────────────
// Tests de forma de las sentencias
// ──────────────────────────────────────────────────────────────────────────────

// Caso: encender/apagar escribe solo la columna activo; un eólico asignado que
// se apaga debe seguir habilitado.
func TestSetActivo_NoTocaHabilitado(t *testing.T) {
	q := &registroSQL{}
	repo := postgres.NewEolicoRepository(q)

	require.NoError(t, repo.SetActivo(1, false))

	require.Len(t, q.sentencias, 1)
	sql := q.ultima()
	assert.Contains(t, sql, "SET activo")
	assert.NotContains(t, sql, "habilitado", "el toggle no debe escribir habilitado")
	assert.Equal(t, []any{int64(1), false}, q.args[0])
}

// Caso: la búsqueda de usuarios cubre nombres, login, email, ci, teléfono,
// dirección, código del eólico asignado y el id como texto.
func TestListarUsuarios_BusquedaCubreTodosLosCampos(t *testing.T) {
	q := &registroSQL{}
	repo := postgres.NewUsuarioRepository(q)

	_, err := repo.Listar("ana")
	require.NoError(t, err)

	sql := q.ultima()
	for _, col := range []string{
		"u.nombres", "c.usuario", "u.email", "u.ci",
		"u.telefono", "u.direccion", "e.codigo", "u.id::text",
	} {
		assert.Contains(t, sql, col, "la búsqueda debe incluir %s", col)
	}
	require.Len(t, q.args[0], 1, "un solo placeholder compartido")
	assert.Equal(t, "%ana%", q.args[0][0])
}

// Caso: sin término de búsqueda no hay WHERE ni argumentos.
func TestListarUsuarios_SinBusqueda(t *testing.T) {
	q := &registroSQL{}
	repo := postgres.NewUsuarioRepository(q)

	_, err := repo.Listar("")
	require.NoError(t, err)

	assert.NotContains(t, strings.ToUpper(q.ultima()), "WHERE")
	assert.Empty(t, q.args[0])
}
