package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"carcost/internal/app/client/config"
	"carcost/internal/domain/cost"
	"carcost/internal/domain/garage"
)

// httpClient работает с гаражом на сервере. Реализует garage.Servicer и
// vehicle.Servicer, поэтому App не различает локальный и удаленный режим.
type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

type listResponse struct {
	Vehicles []garage.Vehicle `json:"vehicles"`
	Count    int              `json:"count"`
}

type namesResponse struct {
	Items []string `json:"items"`
}

// errorResponse - ответ об ошибке в формате huma (RFC 7807)
type errorResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "http_client"),
		baseURL:   cfg.ServerURL(),
		userAgent: "Carcost-Client/1.0",
	}
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}

	return h.parseResponse(resp, nil)
}

// Load как и локальный Store не возвращает ошибок: при сбое гараж пуст
func (h *httpClient) Load(ctx context.Context) []garage.Vehicle {
	var list listResponse
	if err := h.call(ctx, http.MethodGet, "/api/v1/garage", nil, &list); err != nil {
		h.log.Warn("Не удалось загрузить гараж с сервера", "error", err)
		return []garage.Vehicle{}
	}

	return orEmpty(list.Vehicles)
}

func (h *httpClient) Save(ctx context.Context, items []garage.Vehicle) error {
	if items == nil {
		items = []garage.Vehicle{}
	}

	body := struct {
		Vehicles []garage.Vehicle `json:"vehicles"`
	}{Vehicles: items}

	return h.call(ctx, http.MethodPut, "/api/v1/garage", body, nil)
}

func (h *httpClient) Add(ctx context.Context, v garage.Vehicle) error {
	return h.call(ctx, http.MethodPost, "/api/v1/garage", v, nil)
}

func (h *httpClient) RemoveAt(ctx context.Context, index int) error {
	if index < 0 {
		// Сервер не принимает отрицательные позиции, а удалять все равно нечего
		return nil
	}
	return h.call(ctx, http.MethodDelete, "/api/v1/garage/"+strconv.Itoa(index), nil, nil)
}

func (h *httpClient) Clear(ctx context.Context) error {
	return h.call(ctx, http.MethodDelete, "/api/v1/garage", nil, nil)
}

// SaveCost сохраняет готовую разбивку через маршрут расчета позиции index.
// Сервер пересчитывает ее из эквивалентной формы: fixed идет страховкой,
// fuel - ценой литра при 100 км и расходе 1 л/100 км. Запись и отметку
// времени делает сервер, поэтому гараж не перезаписывается целиком.
func (h *httpClient) SaveCost(ctx context.Context, index int, breakdown garage.CostBreakdown) error {
	_, err := h.CalculateCost(ctx, index, cost.Input{
		Insurance:      breakdown.Fixed,
		Kms:            100,
		LitersPer100Km: 1,
		PricePerLiter:  breakdown.Fuel,
		Maintenance:    breakdown.Maintenance,
	})
	return err
}

// CalculateCost отдает форму расчета серверу и возвращает сохраненную разбивку
func (h *httpClient) CalculateCost(ctx context.Context, index int, in cost.Input) (garage.CostBreakdown, error) {
	if index < 0 {
		return garage.CostBreakdown{}, fmt.Errorf("%w: index %d", garage.ErrNotFound, index)
	}

	var saved garage.CostBreakdown
	path := "/api/v1/garage/" + strconv.Itoa(index) + "/cost"
	if err := h.call(ctx, http.MethodPut, path, in, &saved); err != nil {
		return garage.CostBreakdown{}, err
	}
	return saved, nil
}

// Chart запрашивает сводный график у сервера
func (h *httpClient) Chart(ctx context.Context) (cost.Chart, error) {
	var chart cost.Chart
	err := h.call(ctx, http.MethodGet, "/api/v1/garage/chart", nil, &chart)
	return chart, err
}

func (h *httpClient) Makes(ctx context.Context) ([]string, error) {
	var names namesResponse
	if err := h.call(ctx, http.MethodGet, "/api/v1/vehicles/makes", nil, &names); err != nil {
		return nil, err
	}
	return names.Items, nil
}

func (h *httpClient) Models(ctx context.Context, makeName string) ([]string, error) {
	var names namesResponse
	path := "/api/v1/vehicles/makes/" + url.PathEscape(makeName) + "/models"
	if err := h.call(ctx, http.MethodGet, path, nil, &names); err != nil {
		return nil, err
	}
	return names.Items, nil
}

func (h *httpClient) call(ctx context.Context, method, path string, body, result interface{}) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", h.userAgent)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode >= 400 {
		return statusError(resp.StatusCode, body)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}

// statusError переводит ошибки сервера обратно в доменные
func statusError(status int, body []byte) error {
	msg := fmt.Sprintf("статус %d", status)
	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		switch {
		case errResp.Detail != "":
			msg = errResp.Detail
		case errResp.Title != "":
			msg = errResp.Title
		}
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", garage.ErrNotFound, msg)
	case http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", garage.ErrInvalidVehicle, msg)
	default:
		return fmt.Errorf("ошибка сервера: %s", msg)
	}
}

func orEmpty(items []garage.Vehicle) []garage.Vehicle {
	if items == nil {
		return []garage.Vehicle{}
	}
	return items
}
