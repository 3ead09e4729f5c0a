package dgii

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"dgiibot/clients"
	"dgiibot/models"
)

// DefaultBaseURL is the public DGII e-CF service-status API
const DefaultBaseURL = "https://statusecf.dgii.gov.do/api/EstatusServicios"

// StatusClient implements the clients.DGIIStatusClient interface
type StatusClient struct {
	baseURL string
	apiKey  string
	client  *resty.Client
}

// NewStatusClient creates a DGII status client. An empty apiKey yields a client
// that reports IsConfigured() == false.
func NewStatusClient(baseURL, apiKey string, timeout time.Duration) clients.DGIIStatusClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "*/*")
	if apiKey != "" {
		client.SetHeader("Authorization", "Apikey "+apiKey)
	}

	return &StatusClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client:  client,
	}
}

func (c *StatusClient) IsConfigured() bool {
	return c.apiKey != ""
}

// GetServicesStatus calls /ObtenerEstatus
func (c *StatusClient) GetServicesStatus(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, models.StatusServiceObtenerEstatus, nil)
}

// GetMaintenanceWindows calls /ObtenerVentanasMantenimiento
func (c *StatusClient) GetMaintenanceWindows(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, models.StatusServiceObtenerVentanasMantenimiento, nil)
}

// CheckEnvironmentStatus calls /VerificarEstado?Ambiente=<environment>
func (c *StatusClient) CheckEnvironmentStatus(
	ctx context.Context,
	environment models.StatusEnvironment,
) (json.RawMessage, error) {
	return c.get(ctx, models.StatusServiceVerificarEstado, map[string]string{
		"Ambiente": environment.String(),
	})
}

func (c *StatusClient) urlFor(service models.StatusService) string {
	return c.baseURL + "/" + string(service)
}

func (c *StatusClient) get(
	ctx context.Context,
	service models.StatusService,
	query map[string]string,
) (json.RawMessage, error) {
	url := c.urlFor(service)

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", service, err)
	}

	if !resp.IsSuccess() {
		return nil, &clients.APIError{
			StatusCode: resp.StatusCode(),
			URL:        url,
			Body:       resp.String(),
		}
	}

	return json.RawMessage(resp.Body()), nil
}
