package repository

import "context"

// ResourceRepository define el puerto genérico de persistencia para una
// entidad de tablero. Una sola definición reemplaza a los once repositorios
// casi idénticos que tendría cada módulo.
type ResourceRepository[T any] interface {
	Create(ctx context.Context, e *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	// List devuelve todas las filas ordenadas por la columna de orden
	// configurada, descendente. Un resultado vacío no es un error.
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, e *T) error
	// Delete devuelve el número de filas eliminadas; cero significa que el id
	// no existía.
	Delete(ctx context.Context, id string) (int64, error)
}
