package vehicle

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Servicer interface {
	Makes(ctx context.Context) ([]string, error)
	Models(ctx context.Context, makeName string) ([]string, error)
}

// Service оборачивает справочник: чистит и сортирует списки, логирует ошибки
type Service struct {
	catalog Catalog
	log     *slog.Logger
}

func NewService(catalog Catalog, log *slog.Logger) *Service {
	return &Service{
		catalog: catalog,
		log:     log.With("component", "vehicle_service"),
	}
}

func (s *Service) Makes(ctx context.Context) ([]string, error) {
	makes, err := s.catalog.Makes(ctx)
	if err != nil {
		s.log.Error("failed to load makes", "error", err)
		return nil, fmt.Errorf("load makes: %w", err)
	}

	return Normalize(makes), nil
}

func (s *Service) Models(ctx context.Context, makeName string) ([]string, error) {
	makeName = strings.TrimSpace(makeName)
	if makeName == "" {
		return nil, ErrEmptyMake
	}

	models, err := s.catalog.Models(ctx, makeName)
	if err != nil {
		s.log.Error("failed to load models", "make", makeName, "error", err)
		return nil, fmt.Errorf("load models for %q: %w", makeName, err)
	}

	return Normalize(models), nil
}

// Normalize drops empty names and sorts the rest in locale order.
func Normalize(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}

	collate.New(language.English, collate.IgnoreCase).SortStrings(out)
	return out
}

// Token - поколение запроса списка моделей
type Token uint64

// Selector хранит текущую марку и ее модели. Каждый запрос моделей получает
// токен поколения; ответ применяется, только если токен все еще актуален,
// поэтому поздний ответ по старой марке не затрет список новой.
type Selector struct {
	mu       sync.Mutex
	gen      Token
	makeName string
	models   []string
	loading  bool
}

func NewSelector() *Selector {
	return &Selector{}
}

// Begin начинает выбор марки: список моделей сбрасывается до прихода ответа
func (s *Selector) Begin(makeName string) Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.makeName = makeName
	s.models = nil
	s.loading = makeName != ""
	return s.gen
}

// Apply применяет ответ. false - ответ устарел и отброшен.
func (s *Selector) Apply(tok Token, models []string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tok != s.gen {
		return false
	}
	s.models = models
	s.loading = false
	return true
}

// Fail завершает актуальный запрос без списка моделей
func (s *Selector) Fail(tok Token) bool {
	return s.Apply(tok, nil)
}

// Current возвращает выбранную марку, ее модели и признак загрузки
func (s *Selector) Current() (string, []string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	models := make([]string, len(s.models))
	copy(models, s.models)
	return s.makeName, models, s.loading
}

// Select загружает модели для марки через сервис с учетом поколений
func (s *Selector) Select(ctx context.Context, svc Servicer, makeName string) ([]string, error) {
	tok := s.Begin(makeName)
	if makeName == "" {
		return nil, ErrEmptyMake
	}

	models, err := svc.Models(ctx, makeName)
	if err != nil {
		s.Fail(tok)
		return nil, err
	}

	if !s.Apply(tok, models) {
		return nil, ErrStaleResult
	}
	return models, nil
}
