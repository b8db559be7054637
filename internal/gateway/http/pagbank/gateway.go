package pagbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"pizzaria/internal/entities"
)

const (
	providerName = "pagbank"

	sandboxBaseURL    = "https://sandbox.api.pagseguro.com"
	productionBaseURL = "https://api.pagseguro.com"

	requestTimeout = 30 * time.Second
)

type Config struct {
	Token       string
	Environment string // sandbox or production
	WebhookURL  string
}

// Gateway talks to the PagBank orders API. One attempt per call: payment
// creation must not be retried blindly, and the provider webhook covers the
// asynchronous outcome.
type Gateway struct {
	client     *resty.Client
	webhookURL string
}

func New(cfg Config) *Gateway {
	baseURL := sandboxBaseURL
	if cfg.Environment == "production" {
		baseURL = productionBaseURL
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetAuthToken(cfg.Token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(requestTimeout).
		SetRetryCount(0)

	return &Gateway{
		client:     client,
		webhookURL: cfg.WebhookURL,
	}
}

func (g *Gateway) CreatePixOrder(ctx context.Context, checkout entities.Checkout) (*entities.PixPayment, error) {
	resp, _, err := g.createOrder(ctx, "CreatePixOrder", fromDomainPix(&checkout, g.webhookURL))
	if err != nil {
		return nil, fmt.Errorf("gateway pagbank, create pix order: %w", err)
	}

	return toPixPayment(resp), nil
}

func (g *Gateway) CreateCardOrder(ctx context.Context, checkout entities.Checkout, details entities.CardDetails) (*entities.CardPayment, error) {
	resp, raw, err := g.createOrder(ctx, "CreateCardOrder", fromDomainCard(&checkout, &details, g.webhookURL))
	if err != nil {
		return nil, fmt.Errorf("gateway pagbank, create card order: %w", err)
	}

	return toCardPayment(resp, raw), nil
}

func (g *Gateway) GetOrder(ctx context.Context, orderID string) (*entities.PaymentStatus, error) {
	start := time.Now()
	httpResp, err := g.client.R().
		SetContext(ctx).
		Get("/orders/" + orderID)
	g.observe("GetOrder", httpResp, start)
	if err != nil {
		return nil, fmt.Errorf("gateway pagbank, get order %s: %w", orderID, err)
	}

	if httpResp.StatusCode() != http.StatusOK {
		return nil, &ProviderError{
			StatusCode: httpResp.StatusCode(),
			Body:       httpResp.Body(),
		}
	}

	var resp orderResponse
	if err := json.Unmarshal(httpResp.Body(), &resp); err != nil {
		return nil, fmt.Errorf("gateway pagbank, decode order %s: %w", orderID, err)
	}

	return toPaymentStatus(&resp), nil
}

func (g *Gateway) createOrder(ctx context.Context, method string, payload *orderRequest) (*orderResponse, []byte, error) {
	start := time.Now()
	httpResp, err := g.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/orders")
	g.observe(method, httpResp, start)
	if err != nil {
		return nil, nil, err
	}

	if httpResp.StatusCode() != http.StatusOK && httpResp.StatusCode() != http.StatusCreated {
		return nil, nil, &ProviderError{
			StatusCode: httpResp.StatusCode(),
			Body:       httpResp.Body(),
		}
	}

	var resp orderResponse
	if err := json.Unmarshal(httpResp.Body(), &resp); err != nil {
		return nil, nil, fmt.Errorf("decode response: %w", err)
	}

	return &resp, httpResp.Body(), nil
}

func (g *Gateway) observe(method string, resp *resty.Response, start time.Time) {
	statusCode := "0"
	if resp != nil {
		statusCode = strconv.Itoa(resp.StatusCode())
	}
	GatewayRequestDuration.WithLabelValues(providerName, method, statusCode).Observe(time.Since(start).Seconds())
}
