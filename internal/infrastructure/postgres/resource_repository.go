package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// TableSpec describe cómo se mapea una entidad de tablero a su tabla.
// Columns[0] debe ser "id"; Fields devuelve punteros a los campos de la
// entidad en el mismo orden que Columns (sirven tanto para insertar como
// para escanear).
type TableSpec[T any] struct {
	Table   string
	Columns []string
	Sort    string // columna de ORDER BY ... DESC en List
	ID      func(e *T) string
	Fields  func(e *T) []any
}

// ResourceRepo implementación genérica de repository.ResourceRepository[T].
// Las once tablas de tableros comparten este código; solo cambia el TableSpec.
type ResourceRepo[T any] struct {
	db   Querier
	spec TableSpec[T]

	insertSQL string
	selectSQL string
	listSQL   string
	updateSQL string
	deleteSQL string
}

// NewResourceRepo construye el repositorio para una tabla concreta y
// precalcula las sentencias SQL.
func NewResourceRepo[T any](db Querier, spec TableSpec[T]) *ResourceRepo[T] {
	// Todos los identificadores van entre comillas dobles para que una
	// columna que coincida con una palabra reservada no rompa la sentencia.
	table := quoteIdent(spec.Table)

	quoted := make([]string, len(spec.Columns))
	placeholders := make([]string, len(spec.Columns))
	for i, col := range spec.Columns {
		quoted[i] = quoteIdent(col)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	cols := strings.Join(quoted, ", ")

	// UPDATE asigna todas las columnas menos id, que es la condición.
	sets := make([]string, 0, len(spec.Columns)-1)
	for i, col := range spec.Columns[1:] {
		sets = append(sets, fmt.Sprintf("%s = $%d", quoteIdent(col), i+2))
	}

	return &ResourceRepo[T]{
		db:   db,
		spec: spec,
		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			table, cols, strings.Join(placeholders, ", ")),
		selectSQL: fmt.Sprintf(`SELECT %s FROM %s WHERE "id" = $1`, cols, table),
		listSQL:   fmt.Sprintf("SELECT %s FROM %s ORDER BY %s DESC", cols, table, quoteIdent(spec.Sort)),
		updateSQL: fmt.Sprintf(`UPDATE %s SET %s WHERE "id" = $1`,
			table, strings.Join(sets, ", ")),
		deleteSQL: fmt.Sprintf(`DELETE FROM %s WHERE "id" = $1`, table),
	}
}

// quoteIdent encierra un identificador en comillas dobles.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// Create inserta la fila completa.
func (r *ResourceRepo[T]) Create(ctx context.Context, e *T) error {
	_, err := r.db.Exec(ctx, r.insertSQL, r.spec.Fields(e)...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insertando en %s: fila duplicada: %w", r.spec.Table, err)
		}
		return fmt.Errorf("insertando en %s: %w", r.spec.Table, err)
	}
	return nil
}

// GetByID devuelve la fila o nil sin error si no existe.
func (r *ResourceRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	e := new(T)
	err := r.db.QueryRow(ctx, r.selectSQL, id).Scan(r.spec.Fields(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("consultando %s: %w", r.spec.Table, err)
	}
	return e, nil
}

// List devuelve todas las filas ordenadas por la columna de orden, descendente.
func (r *ResourceRepo[T]) List(ctx context.Context) ([]*T, error) {
	rows, err := r.db.Query(ctx, r.listSQL)
	if err != nil {
		return nil, fmt.Errorf("listando %s: %w", r.spec.Table, err)
	}
	defer rows.Close()

	var list []*T
	for rows.Next() {
		e := new(T)
		if err := rows.Scan(r.spec.Fields(e)...); err != nil {
			return nil, fmt.Errorf("escaneando %s: %w", r.spec.Table, err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterando %s: %w", r.spec.Table, err)
	}
	return list, nil
}

// Update reescribe todas las columnas de la fila identificada por id.
func (r *ResourceRepo[T]) Update(ctx context.Context, e *T) error {
	fields := r.spec.Fields(e)
	args := make([]any, 0, len(fields))
	args = append(args, r.spec.ID(e))
	args = append(args, fields[1:]...)

	_, err := r.db.Exec(ctx, r.updateSQL, args...)
	if err != nil {
		return fmt.Errorf("actualizando %s: %w", r.spec.Table, err)
	}
	return nil
}

// Delete elimina por id y devuelve las filas afectadas.
func (r *ResourceRepo[T]) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.db.Exec(ctx, r.deleteSQL, id)
	if err != nil {
		return 0, fmt.Errorf("eliminando de %s: %w", r.spec.Table, err)
	}
	return tag.RowsAffected(), nil
}
