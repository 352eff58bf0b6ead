package salonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с SalonService (каталог салонов, мастеров и услуг)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента SalonService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSalon получает салон по ID
func (c *Client) GetSalon(ctx context.Context, salonID int64) (*Salon, error) {
	url := fmt.Sprintf("%s/internal/salons/%d", c.baseURL, salonID)

	var salon Salon
	if err := c.getJSON(ctx, url, &salon, ErrSalonNotFound); err != nil {
		return nil, err
	}
	return &salon, nil
}

// GetMaster получает мастера по ID
func (c *Client) GetMaster(ctx context.Context, masterID int64) (*Master, error) {
	url := fmt.Sprintf("%s/internal/masters/%d", c.baseURL, masterID)

	var master Master
	if err := c.getJSON(ctx, url, &master, ErrMasterNotFound); err != nil {
		return nil, err
	}
	return &master, nil
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/services/%d", c.baseURL, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}
	return &service, nil
}

// ListMasters получает всех мастеров, аффилированных с салоном.
// Используется при проверке конфликтов салона-агрегата: запись на салон
// конфликтует с пересекающейся записью любого его мастера.
func (c *Client) ListMasters(ctx context.Context, salonID int64) ([]Master, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/masters", c.baseURL, salonID)

	var masters []Master
	if err := c.getJSON(ctx, url, &masters, ErrSalonNotFound); err != nil {
		return nil, err
	}
	return masters, nil
}

// ListMastersOfferingService получает мастеров салона, оказывающих услугу.
// При указании branchID фильтрует по филиалу.
func (c *Client) ListMastersOfferingService(ctx context.Context, salonID, serviceID int64, branchID *int64) ([]Master, error) {
	url := fmt.Sprintf("%s/internal/salons/%d/masters?serviceId=%d", c.baseURL, salonID, serviceID)
	if branchID != nil {
		url += "&branchId=" + strconv.FormatInt(*branchID, 10)
	}

	var masters []Master
	if err := c.getJSON(ctx, url, &masters, ErrSalonNotFound); err != nil {
		return nil, err
	}
	return masters, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// 404 транслируется в notFoundErr, остальные неуспешные статусы - в ErrInvalidResponse.
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFoundErr
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
