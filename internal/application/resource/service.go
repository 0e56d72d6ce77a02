// Package resource implementa el módulo CRUD genérico que sustituye a los
// once casos de uso casi idénticos de los tableros lean. Cada módulo aporta
// solo su Definition (nombre, etiqueta, fábrica y aplicador de parches);
// el flujo listar/crear/actualizar/borrar y la política de efectos
// (una invalidación de cache + una notificación por mutación) viven aquí
// una sola vez.
package resource

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/repository"
)

// Definition configura el servicio genérico para un tipo de entidad.
type Definition[T any, C any, P any] struct {
	Name  string // clave de cache y de notificaciones, ej. "pdca_cycles"
	Label string // sujeto de los mensajes, ej. "PDCA-Zyklus"
	// New construye la entidad a partir del DTO de alta: asigna id y
	// timestamps del servidor.
	New func(in C) *T
	// Apply aplica un parche parcial sobre la entidad cargada; solo los
	// campos no nulos del DTO modifican la fila.
	Apply func(e *T, patch P)
}

// Service casos de uso CRUD para un recurso de tablero.
//
// Invariantes de efectos:
//   - mutación exitosa  → exactamente una invalidación de cache y una
//     notificación de éxito;
//   - mutación fallida  → exactamente una notificación de error y cero
//     cambios en el cache;
//   - entrada inválida  → se bloquea antes de tocar el repositorio, sin
//     notificación (equivale a la validación del formulario).
type Service[T any, C any, P any] struct {
	def      Definition[T, C, P]
	repo     repository.ResourceRepository[T]
	cache    ListCache
	notifier Notifier
	validate *validator.Validate
}

// NewService construye el servicio para una Definition concreta.
func NewService[T any, C any, P any](
	def Definition[T, C, P],
	repo repository.ResourceRepository[T],
	cache ListCache,
	notifier Notifier,
	validate *validator.Validate,
) *Service[T, C, P] {
	return &Service[T, C, P]{def: def, repo: repo, cache: cache, notifier: notifier, validate: validate}
}

// Name devuelve el nombre del recurso (clave de cache).
func (s *Service[T, C, P]) Name() string { return s.def.Name }

// List devuelve el listado completo, ordenado por la columna configurada en
// el repositorio. Lectura read-through: sirve del cache cuando hay entrada
// vigente y lo repuebla tras un miss.
func (s *Service[T, C, P]) List(ctx context.Context) ([]*T, error) {
	if payload, ok := s.cache.Get(ctx, s.def.Name); ok {
		var list []*T
		if err := json.Unmarshal(payload, &list); err == nil {
			return list, nil
		}
		// Entrada no decodificable: se ignora y se vuelve al repositorio.
	}

	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*T{}
	}
	if payload, err := json.Marshal(list); err == nil {
		s.cache.Set(ctx, s.def.Name, payload)
	}
	return list, nil
}

// GetByID obtiene un registro por id. Devuelve nil sin error si no existe.
func (s *Service[T, C, P]) GetByID(ctx context.Context, id string) (*T, error) {
	return s.repo.GetByID(ctx, id)
}

// Create valida la entrada, construye la entidad y la persiste.
func (s *Service[T, C, P]) Create(ctx context.Context, in C) (*T, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	e := s.def.New(in)
	if err := s.repo.Create(ctx, e); err != nil {
		s.notifier.Failure(s.def.Name, ActionCreate, s.failureMessage(ActionCreate, err))
		return nil, err
	}
	s.cache.Invalidate(ctx, s.def.Name)
	s.notifier.Success(s.def.Name, ActionCreate, s.def.Label+" wurde erstellt")
	return e, nil
}

// Update carga el registro, aplica el parche y persiste. Un id inexistente es
// un error duro (ErrNotFound), decidido así para las once entidades.
func (s *Service[T, C, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.notifier.Failure(s.def.Name, ActionUpdate, s.failureMessage(ActionUpdate, err))
		return nil, err
	}
	if e == nil {
		s.notifier.Failure(s.def.Name, ActionUpdate, s.failureMessage(ActionUpdate, domain.ErrNotFound))
		return nil, domain.ErrNotFound
	}
	s.def.Apply(e, patch)
	if err := s.repo.Update(ctx, e); err != nil {
		s.notifier.Failure(s.def.Name, ActionUpdate, s.failureMessage(ActionUpdate, err))
		return nil, err
	}
	s.cache.Invalidate(ctx, s.def.Name)
	s.notifier.Success(s.def.Name, ActionUpdate, s.def.Label+" wurde aktualisiert")
	return e, nil
}

// Delete elimina un registro por id. Cero filas afectadas es ErrNotFound;
// el cache queda intacto en ese caso.
func (s *Service[T, C, P]) Delete(ctx context.Context, id string) error {
	n, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.notifier.Failure(s.def.Name, ActionDelete, s.failureMessage(ActionDelete, err))
		return err
	}
	if n == 0 {
		s.notifier.Failure(s.def.Name, ActionDelete, s.failureMessage(ActionDelete, domain.ErrNotFound))
		return domain.ErrNotFound
	}
	s.cache.Invalidate(ctx, s.def.Name)
	s.notifier.Success(s.def.Name, ActionDelete, s.def.Label+" wurde gelöscht")
	return nil
}

func (s *Service[T, C, P]) failureMessage(action string, err error) string {
	verb := map[string]string{
		ActionCreate: "Erstellen",
		ActionUpdate: "Aktualisieren",
		ActionDelete: "Löschen",
	}[action]
	return fmt.Sprintf("Fehler beim %s von %s: %v", verb, s.def.Label, err)
}
