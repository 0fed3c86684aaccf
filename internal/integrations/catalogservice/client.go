package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jneves25/barber-service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент справочников (услуги, мастера, товары)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочников
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает услугу по ID
func (c *Client) GetService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	var service Service
	if err := c.get(ctx, fmt.Sprintf("/internal/services/%d", serviceID), ErrServiceNotFound, &service); err != nil {
		return nil, err
	}
	return service.ToDomain(), nil
}

// GetProfessional получает мастера по ID
func (c *Client) GetProfessional(ctx context.Context, professionalID int64) (*domain.Professional, error) {
	var professional Professional
	if err := c.get(ctx, fmt.Sprintf("/internal/professionals/%d", professionalID), ErrProfessionalNotFound, &professional); err != nil {
		return nil, err
	}
	return professional.ToDomain(), nil
}

// GetProduct получает товар по ID
func (c *Client) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var product Product
	if err := c.get(ctx, fmt.Sprintf("/internal/products/%d", productID), ErrProductNotFound, &product); err != nil {
		return nil, err
	}
	return product.ToDomain(), nil
}

// get выполняет GET запрос и декодирует JSON ответ в out.
// notFound возвращается как есть при 404
func (c *Client) get(ctx context.Context, path string, notFound error, out interface{}) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CatalogService: request %s failed: %v", path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return notFound
	case http.StatusBadRequest:
		return fmt.Errorf("%w: invalid id format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Warn("CatalogService: unexpected status %d for %s", resp.StatusCode, path)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
