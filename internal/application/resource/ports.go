package resource

import "context"

// Acciones de mutación sobre un recurso.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// ListCache cachea el listado serializado de cada recurso bajo su nombre.
// Los fallos de cache no deben propagar: los adaptadores degradan a miss
// y registran el problema.
type ListCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte)
	Invalidate(ctx context.Context, key string)
}

// Notifier recibe exactamente una notificación por mutación: de éxito tras
// confirmar el backend, o de error con el motivo. Es el equivalente servidor
// de los toasts de la UI.
type Notifier interface {
	Success(resource, action, message string)
	Failure(resource, action, message string)
}
