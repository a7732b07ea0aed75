package client

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"carcost/internal/app/client/config"
	shared "carcost/internal/config"
	"carcost/internal/domain/cost"
	"carcost/internal/domain/garage"
	"carcost/internal/domain/vehicle"
	"carcost/internal/infrastructure/storage"
	"carcost/internal/infrastructure/vpic"
)

// App связывает команды CLI с гаражом и справочником автомобилей.
// В локальном режиме гараж лежит в SQLite (или в памяти), в удаленном - на сервере.
type App struct {
	config   *config.Config
	log      *slog.Logger
	garage   garage.Servicer
	vehicles vehicle.Servicer
	selector *vehicle.Selector
	remote   *httpClient
	closer   io.Closer
}

func New(ctx context.Context, cfg *config.Config, log *slog.Logger) (*App, error) {
	app := &App{
		config:   cfg,
		log:      log.With("component", "client_app"),
		selector: vehicle.NewSelector(),
	}

	if cfg.Remote {
		remote := NewHTTPClient(cfg, log)
		app.remote = remote
		app.garage = remote
		app.vehicles = vehicle.NewService(remote, log)
		return app, nil
	}

	kv := storage.NewOrMemory(ctx, localStorageConfig(cfg), log)
	local := NewWithServices(
		garage.NewStore(kv, cfg.StorageKey, log),
		vehicle.NewService(vpic.New(cfg.VPICBaseURL, cfg.VPICTimeout, log), log),
		log,
	)
	local.config = cfg
	local.closer = kv

	return local, nil
}

// NewWithServices собирает локальное App из готовых гаража и справочника
func NewWithServices(store garage.Servicer, vehicles vehicle.Servicer, log *slog.Logger) *App {
	return &App{
		log:      log.With("component", "client_app"),
		garage:   store,
		vehicles: vehicles,
		selector: vehicle.NewSelector(),
	}
}

// localStorageConfig переводит настройки клиента в конфиг хранилища.
// Клиент всегда работает с локальным файлом, DATABASE_URI ему не нужен.
func localStorageConfig(cfg *config.Config) *shared.Config {
	c := &shared.Config{Env: cfg.Env}
	c.DB.DataPath = cfg.DataPath
	c.Garage.StorageKey = cfg.StorageKey
	return c
}

func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func (a *App) IsRemote() bool {
	return a.remote != nil
}

// CheckConnection проверяет сервер; в локальном режиме проверять нечего
func (a *App) CheckConnection(ctx context.Context) error {
	if a.remote == nil {
		return nil
	}
	return a.remote.HealthCheck(ctx)
}

func (a *App) Garage(ctx context.Context) []garage.Vehicle {
	return a.garage.Load(ctx)
}

func (a *App) AddVehicle(ctx context.Context, v garage.Vehicle) error {
	if err := a.garage.Add(ctx, v); err != nil {
		return fmt.Errorf("ошибка добавления автомобиля: %w", err)
	}
	return nil
}

func (a *App) RemoveVehicle(ctx context.Context, index int) error {
	if err := a.garage.RemoveAt(ctx, index); err != nil {
		return fmt.Errorf("ошибка удаления автомобиля: %w", err)
	}
	return nil
}

func (a *App) ClearGarage(ctx context.Context) error {
	if err := a.garage.Clear(ctx); err != nil {
		return fmt.Errorf("ошибка очистки гаража: %w", err)
	}
	return nil
}

// CalculateCost считает расходы автомобиля index и сохраняет их в гараже.
// В удаленном режиме считает и сохраняет сервер одним запросом.
func (a *App) CalculateCost(ctx context.Context, index int, in cost.Input) (garage.CostBreakdown, error) {
	if a.remote != nil {
		saved, err := a.remote.CalculateCost(ctx, index, in)
		if err != nil {
			return garage.CostBreakdown{}, fmt.Errorf("ошибка сохранения расчета: %w", err)
		}
		return saved, nil
	}

	b := cost.ComputeMonthlyCost(in)

	err := a.garage.SaveCost(ctx, index, garage.CostBreakdown{
		Fixed:       b.Fixed,
		Fuel:        b.Fuel,
		Maintenance: b.Maintenance,
		Total:       b.Total,
	})
	if err != nil {
		return garage.CostBreakdown{}, fmt.Errorf("ошибка сохранения расчета: %w", err)
	}

	items := a.garage.Load(ctx)
	if index >= len(items) || items[index].MonthlyCost == nil {
		return garage.CostBreakdown{}, fmt.Errorf("расчет не найден после сохранения: %w", garage.ErrNotFound)
	}

	a.log.Debug("Расходы сохранены", "index", index, "total", b.Total)
	return *items[index].MonthlyCost, nil
}

// Chart строит сводный график по текущему составу гаража.
// В удаленном режиме график считает сервер.
func (a *App) Chart(ctx context.Context) cost.Chart {
	if a.remote != nil {
		chart, err := a.remote.Chart(ctx)
		if err == nil {
			return chart
		}
		a.log.Warn("Не удалось получить график с сервера, считаем локально", "error", err)
	}

	items := a.garage.Load(ctx)

	labels := make([]string, len(items))
	for i, v := range items {
		labels[i] = v.Title()
	}

	return cost.EstimateGarage(labels, cost.DefaultAssumptions)
}

func (a *App) Makes(ctx context.Context) ([]string, error) {
	return a.vehicles.Makes(ctx)
}

// Models загружает модели через Selector: ответ по устаревшей марке отбрасывается
func (a *App) Models(ctx context.Context, makeName string) ([]string, error) {
	return a.selector.Select(ctx, a.vehicles, makeName)
}
