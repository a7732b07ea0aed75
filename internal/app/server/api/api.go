//GET    /api/v1/health                          # Состояние сервиса и хранилища
//GET    /api/v1/garage                          # Список автомобилей
//POST   /api/v1/garage                          # Добавить автомобиль (в начало)
//PUT    /api/v1/garage                          # Заменить гараж целиком
//DELETE /api/v1/garage                          # Очистить гараж
//DELETE /api/v1/garage/{index}                  # Удалить автомобиль по позиции
//PUT    /api/v1/garage/{index}/cost             # Рассчитать и сохранить расходы
//GET    /api/v1/garage/chart                    # Сводный график по гаражу
//POST   /api/v1/cost/estimate                   # Расчет без сохранения
//GET    /api/v1/vehicles/makes                  # Справочник марок
//GET    /api/v1/vehicles/makes/{make}/models    # Справочник моделей

package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	costAPI "carcost/internal/app/server/api/http/cost"
	garageAPI "carcost/internal/app/server/api/http/garage"
	healthAPI "carcost/internal/app/server/api/http/health"
	"carcost/internal/app/server/api/http/middleware"
	"carcost/internal/app/server/api/http/middleware/logger"
	vehicleAPI "carcost/internal/app/server/api/http/vehicle"
	"carcost/internal/domain/cost"
	"carcost/internal/domain/garage"
	"carcost/internal/domain/vehicle"
)

// Deps - зависимости, из которых собираются обработчики
type Deps struct {
	Garage   garage.Servicer
	Vehicles vehicle.Servicer
	// Probe проверяет хранилище для health; может быть nil
	Probe healthAPI.Probe
}

type Handlers struct {
	Health  *healthAPI.Handler
	Garage  *garageAPI.Handler
	Cost    *costAPI.Handler
	Vehicle *vehicleAPI.Handler
}

// New создает *chi.Mux с ВСЕМИ операциями через huma.Register
func New(deps Deps, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Carcost API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(deps, log)
	h.Health.SetupRoutes(API)
	h.Garage.SetupRoutes(API)
	h.Cost.SetupRoutes(API)
	h.Vehicle.SetupRoutes(API)

	return mux
}

func handlers(deps Deps, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer(loggerMW.Middleware())

	healthHandler := healthAPI.NewHandler(log, deps.Probe, middlewares.GetAllAndClear())

	// Store сам по себе не синхронизирован, а запросы идут параллельно
	store := garage.NewLocked(deps.Garage)
	garageHandler := garageAPI.NewHandler(store, cost.DefaultAssumptions, log, middlewares.GetAllAndClear())

	costHandler := costAPI.NewHandler(log, middlewares.GetAllAndClear())
	vehicleHandler := vehicleAPI.NewHandler(deps.Vehicles, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Garage:  garageHandler,
		Cost:    costHandler,
		Vehicle: vehicleHandler,
	}
}

// KeyProbe проверяет хранилище чтением ключа гаража
func KeyProbe(kv garage.KeyValue, key string) healthAPI.Probe {
	return func(ctx context.Context) error {
		_, _, err := kv.Get(ctx, key)
		return err
	}
}
