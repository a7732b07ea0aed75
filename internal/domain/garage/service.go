package garage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// Servicer - операции над гаражом
type Servicer interface {
	Load(ctx context.Context) []Vehicle
	Save(ctx context.Context, items []Vehicle) error
	Add(ctx context.Context, v Vehicle) error
	RemoveAt(ctx context.Context, index int) error
	Clear(ctx context.Context) error
	SaveCost(ctx context.Context, index int, cost CostBreakdown) error
}

// Store хранит упорядоченный список автомобилей под одним ключом.
// Кеша нет: каждое чтение идет в хранилище, побеждает последняя запись.
// Store не синхронизирован, конкурентные вызовы нужно сериализовать снаружи (см. Locked).
type Store struct {
	kv  KeyValue
	key string
	log *slog.Logger
	now func() time.Time
}

func NewStore(kv KeyValue, key string, log *slog.Logger) *Store {
	return &Store{
		kv:  kv,
		key: key,
		log: log.With("component", "garage_store"),
		now: time.Now,
	}
}

// WithClock подменяет источник времени для отметки updatedAt
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Key возвращает ключ, под которым хранится гараж
func (s *Store) Key() string {
	return s.key
}

// Load never fails: a missing key, broken JSON or a read error all mean an empty garage.
func (s *Store) Load(ctx context.Context) []Vehicle {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.log.Warn("failed to read garage, treating as empty", "key", s.key, "error", err)
		return []Vehicle{}
	}
	if !ok {
		return []Vehicle{}
	}

	var items []Vehicle
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("corrupted garage data, treating as empty", "key", s.key, "error", err)
		return []Vehicle{}
	}
	if items == nil {
		return []Vehicle{}
	}

	return items
}

func (s *Store) Save(ctx context.Context, items []Vehicle) error {
	if items == nil {
		items = []Vehicle{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal garage: %w", err)
	}

	if err := s.kv.Set(ctx, s.key, string(data)); err != nil {
		s.log.Error("failed to save garage", "key", s.key, "error", err)
		return fmt.Errorf("save garage: %w", err)
	}

	return nil
}

// Add prepends v: the newest vehicle is always first.
func (s *Store) Add(ctx context.Context, v Vehicle) error {
	v, err := Normalize(v)
	if err != nil {
		return err
	}

	items := s.Load(ctx)
	updated := make([]Vehicle, 0, len(items)+1)
	updated = append(updated, v)
	updated = append(updated, items...)

	if err := s.Save(ctx, updated); err != nil {
		return err
	}

	s.log.Debug("vehicle added", "make", v.Make, "model", v.Model, "count", len(updated))
	return nil
}

// RemoveAt drops the record at index. An out of range index leaves the garage as is.
func (s *Store) RemoveAt(ctx context.Context, index int) error {
	items := s.Load(ctx)

	updated := make([]Vehicle, 0, len(items))
	for i, v := range items {
		if i != index {
			updated = append(updated, v)
		}
	}

	if err := s.Save(ctx, updated); err != nil {
		return err
	}

	s.log.Debug("vehicle removed", "index", index, "count", len(updated))
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, s.key); err != nil {
		s.log.Error("failed to clear garage", "key", s.key, "error", err)
		return fmt.Errorf("clear garage: %w", err)
	}

	s.log.Debug("garage cleared")
	return nil
}

// SaveCost заменяет разбивку расходов автомобиля index целиком
func (s *Store) SaveCost(ctx context.Context, index int, cost CostBreakdown) error {
	items := s.Load(ctx)
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: index %d", ErrNotFound, index)
	}

	cost.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	items[index].MonthlyCost = &cost

	return s.Save(ctx, items)
}

// Normalize проверяет и очищает запись перед добавлением
func Normalize(v Vehicle) (Vehicle, error) {
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.Year = strings.TrimSpace(v.Year)

	if v.Make == "" {
		return v, fmt.Errorf("%w: make is required", ErrInvalidVehicle)
	}
	if v.Model == "" {
		return v, fmt.Errorf("%w: model is required", ErrInvalidVehicle)
	}

	return v, nil
}

// Locked сериализует вызовы Servicer одним мьютексом.
// Нужен там, где к гаражу обращаются конкурентно (HTTP сервер).
type Locked struct {
	mu   sync.Mutex
	next Servicer
}

func NewLocked(next Servicer) *Locked {
	return &Locked{next: next}
}

func (l *Locked) Load(ctx context.Context) []Vehicle {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Load(ctx)
}

func (l *Locked) Save(ctx context.Context, items []Vehicle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Save(ctx, items)
}

func (l *Locked) Add(ctx context.Context, v Vehicle) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Add(ctx, v)
}

func (l *Locked) RemoveAt(ctx context.Context, index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.RemoveAt(ctx, index)
}

func (l *Locked) Clear(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.Clear(ctx)
}

func (l *Locked) SaveCost(ctx context.Context, index int, cost CostBreakdown) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.next.SaveCost(ctx, index, cost)
}
