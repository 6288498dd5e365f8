package forecast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"construfin/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

var ErrForecastNotConfigured = errors.New("forecast service not configured")

// HTTPForecastProvider fetches projected spend from an external forecasting
// service. The recalculation engine treats any failure here as "forecast
// unavailable", so this client fails fast rather than retrying.
type HTTPForecastProvider struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IForecastProvider = (*HTTPForecastProvider)(nil)

func NewHTTPForecastProvider() *HTTPForecastProvider {
	return &HTTPForecastProvider{
		baseURL: os.Getenv("FORECAST_SERVICE_URL"),
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

type forecastResponse struct {
	ProjectedSpend decimal.Decimal `json:"projected_spend"`
}

func (p *HTTPForecastProvider) ProjectedSpend(ctx context.Context, projectID string) (decimal.Decimal, error) {
	if p.baseURL == "" {
		return decimal.Zero, ErrForecastNotConfigured
	}

	url := fmt.Sprintf("%s/v1/projects/%s/forecast", p.baseURL, projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[forecast][infrastructure] request failed project_id=%s err=%v", projectID, err)
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("forecast service returned status %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, err
	}
	return body.ProjectedSpend, nil
}
