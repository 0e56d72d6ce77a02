package resource_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Stanko5566/lean-cockpit-api/internal/application/dto"
	"github.com/Stanko5566/lean-cockpit-api/internal/application/resource"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain"
	"github.com/Stanko5566/lean-cockpit-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeRepo repositorio en memoria con errores inyectables.
type fakeRepo struct {
	mu        sync.Mutex
	rows      map[string]*entity.KanbanTask
	failWith  error
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[string]*entity.KanbanTask{}}
}

func (r *fakeRepo) Create(_ context.Context, e *entity.KanbanTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.rows[e.ID] = e
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id string) (*entity.KanbanTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.rows[id], nil
}

func (r *fakeRepo) List(_ context.Context) ([]*entity.KanbanTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	var list []*entity.KanbanTask
	for _, e := range r.rows {
		list = append(list, e)
	}
	return list, nil
}

func (r *fakeRepo) Update(_ context.Context, e *entity.KanbanTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	r.rows[e.ID] = e
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

// recordingCache cuenta operaciones del cache.
type recordingCache struct {
	entries     map[string][]byte
	sets        int
	invalidates int
}

func newRecordingCache() *recordingCache {
	return &recordingCache{entries: map[string][]byte{}}
}

func (c *recordingCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := c.entries[key]
	return payload, ok
}

func (c *recordingCache) Set(_ context.Context, key string, payload []byte) {
	c.sets++
	c.entries[key] = payload
}

func (c *recordingCache) Invalidate(_ context.Context, key string) {
	c.invalidates++
	delete(c.entries, key)
}

// recordingNotifier acumula las notificaciones emitidas.
type recordingNotifier struct {
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(_, _, message string) {
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Failure(_, _, message string) {
	n.failures = append(n.failures, message)
}

func buildService(repo *fakeRepo) (*resource.KanbanTaskService, *recordingCache, *recordingNotifier) {
	cache := newRecordingCache()
	notifier := &recordingNotifier{}
	svc := resource.NewKanbanTaskService(repo, cache, notifier, validator.New())
	return svc, cache, notifier
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Política de efectos: mutación exitosa
// ──────────────────────────────────────────────────────────────────────────────

// Una creación exitosa produce exactamente una invalidación y una notificación de éxito.
func TestCreate_ExitoInvalidaYNotificaUnaVez(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	out, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Rüstzeit reduzieren",
		Description: "SMED am Pressenwerkzeug anwenden",
		Status:      "todo",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID, "el servicio debe asignar el id")
	assert.False(t, out.CreatedAt.IsZero(), "el servicio debe asignar created_at")

	assert.Equal(t, 1, cache.invalidates, "exactamente una invalidación por mutación exitosa")
	require.Len(t, notifier.successes, 1, "exactamente una notificación de éxito")
	assert.Empty(t, notifier.failures)
	assert.Equal(t, "Aufgabe wurde erstellt", notifier.successes[0])
}

func TestUpdate_ExitoAplicaParcheYNotifica(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	created, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Audit vorbereiten",
		Description: "Unterlagen für das 5S Audit zusammenstellen",
		Status:      "todo",
	})
	require.NoError(t, err)
	cache.invalidates = 0
	notifier.successes = nil

	out, err := svc.Update(context.Background(), created.ID, dto.UpdateKanbanTaskRequest{
		Status:     strPtr("in_progress"),
		AssignedTo: strPtr("M. Weber"),
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", out.Status)
	assert.Equal(t, "Audit vorbereiten", out.Title, "los campos no parcheados se conservan")
	require.NotNil(t, out.AssignedTo)
	assert.Equal(t, "M. Weber", *out.AssignedTo)

	assert.Equal(t, 1, cache.invalidates)
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Aufgabe wurde aktualisiert", notifier.successes[0])
}

func TestDelete_ExitoInvalidaYNotifica(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	created, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "5S Zone markieren",
		Description: "Bodenmarkierungen in Halle 2 erneuern",
		Status:      "todo",
	})
	require.NoError(t, err)
	cache.invalidates = 0
	notifier.successes = nil

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, 1, cache.invalidates)
	require.Len(t, notifier.successes, 1)
	assert.Equal(t, "Aufgabe wurde gelöscht", notifier.successes[0])
}

// ──────────────────────────────────────────────────────────────────────────────
// Política de efectos: mutación fallida
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo del backend produce una notificación de error y cero cambios de cache.
func TestCreate_FalloNotificaErrorSinTocarCache(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = errors.New("connection refused")
	svc, cache, notifier := buildService(repo)

	_, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Layout ändern",
		Description: "U-Zelle für Linie 3 planen",
		Status:      "todo",
	})
	require.Error(t, err)

	assert.Equal(t, 0, cache.invalidates, "el cache queda intacto cuando la mutación falla")
	assert.Empty(t, notifier.successes)
	require.Len(t, notifier.failures, 1, "exactamente una notificación de error")
	assert.Contains(t, notifier.failures[0], "Fehler beim Erstellen von Aufgabe")
	assert.Contains(t, notifier.failures[0], "connection refused")
}

func TestUpdate_IdInexistenteEsErrNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	_, err := svc.Update(context.Background(), "no-existe", dto.UpdateKanbanTaskRequest{
		Status: strPtr("done"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, cache.invalidates)
	require.Len(t, notifier.failures, 1)
	assert.Contains(t, notifier.failures[0], "Fehler beim Aktualisieren von Aufgabe")
}

func TestDelete_IdInexistenteEsErrNotFound(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	err := svc.Delete(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, cache.invalidates)
	require.Len(t, notifier.failures, 1)
	assert.Contains(t, notifier.failures[0], "Fehler beim Löschen von Aufgabe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Validación: bloquea antes del repositorio, sin notificación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EntradaInvalidaBloqueaSinNotificar(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, notifier := buildService(repo)

	// Status fuera del enum permitido
	_, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Algo",
		Description: "Beschreibung",
		Status:      "paused",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.Empty(t, repo.rows, "el repositorio no debe tocarse con entrada inválida")
	assert.Equal(t, 0, cache.invalidates)
	assert.Empty(t, notifier.successes)
	assert.Empty(t, notifier.failures, "la validación no emite notificación")
}

func TestUpdate_ParcheInvalidoBloquea(t *testing.T) {
	repo := newFakeRepo()
	svc, _, notifier := buildService(repo)

	created, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "OK",
		Description: "Beschreibung",
		Status:      "todo",
	})
	require.NoError(t, err)
	notifier.failures = nil

	_, err = svc.Update(context.Background(), created.ID, dto.UpdateKanbanTaskRequest{
		Status: strPtr("archived"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, notifier.failures)

	current, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "todo", current.Status, "el registro no debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cache read-through
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SegundoListadoSirveDelCache(t *testing.T) {
	repo := newFakeRepo()
	svc, cache, _ := buildService(repo)

	_, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Poka Yoke prüfen",
		Description: "Vorrichtung an Station 7 testen",
		Status:      "todo",
	})
	require.NoError(t, err)

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets, "el primer listado puebla el cache")

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, 1, repo.listCalls, "el segundo listado no vuelve al repositorio")
}

func TestList_MutacionInvalidaElListadoCacheado(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := buildService(repo)

	created, err := svc.Create(context.Background(), dto.CreateKanbanTaskRequest{
		Title:       "Takt messen",
		Description: "Zykluszeiten an der Montagelinie aufnehmen",
		Status:      "todo",
	})
	require.NoError(t, err)

	_, err = svc.List(context.Background())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	after, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, after, "tras la mutación el listado refleja el estado real, no el cache viejo")
	assert.Equal(t, 2, repo.listCalls, "la invalidación fuerza releer del repositorio")
}

func TestList_VacioDevuelveSliceVacioNoNil(t *testing.T) {
	repo := newFakeRepo()
	svc, _, _ := buildService(repo)

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out, "un tablero vacío serializa como [] y no como null")
	assert.Empty(t, out)
}
