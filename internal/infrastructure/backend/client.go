package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"konveksi_checkout/internal/domain/entities"
	"konveksi_checkout/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

const DefaultTimeout = 15 * time.Second

var ErrBackendNotConfigured = errors.New("order backend not configured")

// Client talks to the order REST service on behalf of the shopper whose bearer
// token it forwards.
//
//   - POST   /orders          create order
//   - GET    /orders/{id}     order with transactions
//   - POST   /transactions    gateway session token
//   - DELETE /cart/items      remove purchased lines
type Client struct {
	baseURL string
	http    *http.Client
}

var (
	_ interfaces.IOrderBackend = (*Client)(nil)
	_ interfaces.ICartService  = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBackendNotConfigured
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend url %q: %w", baseURL, err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}, nil
}

type createOrderRequest struct {
	Lines       []entities.OrderLine `json:"lines"`
	Note        string               `json:"note,omitempty"`
	ProductLine string               `json:"product_line,omitempty"`
	DPFraction  decimal.Decimal      `json:"dp_fraction"`
}

type createTransactionRequest struct {
	OrderID string               `json:"order_id"`
	Kind    entities.PaymentKind `json:"kind"`
}

type createTransactionResponse struct {
	SessionToken string `json:"session_token"`
	Amount       int64  `json:"amount"`
}

type removeLinesRequest struct {
	ProductIDs []string `json:"product_ids"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) CreateOrder(ctx context.Context, principal entities.Principal, draft entities.OrderDraft) (entities.Order, error) {
	body := createOrderRequest{
		Lines:       draft.Lines,
		Note:        draft.Note,
		ProductLine: draft.ProductLine,
		DPFraction:  draft.DPFraction,
	}
	var order entities.Order
	if err := c.do(ctx, principal, http.MethodPost, "/orders", body, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *Client) GetOrder(ctx context.Context, principal entities.Principal, orderID string) (entities.Order, error) {
	var order entities.Order
	if err := c.do(ctx, principal, http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &order); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (c *Client) CreateTransaction(ctx context.Context, principal entities.Principal, orderID string, kind entities.PaymentKind) (entities.PaymentSession, error) {
	var resp createTransactionResponse
	if err := c.do(ctx, principal, http.MethodPost, "/transactions", createTransactionRequest{OrderID: orderID, Kind: kind}, &resp); err != nil {
		return entities.PaymentSession{}, err
	}
	return entities.PaymentSession{
		OrderID:      orderID,
		Kind:         kind,
		SessionToken: resp.SessionToken,
		Amount:       resp.Amount,
	}, nil
}

func (c *Client) RemoveLines(ctx context.Context, principal entities.Principal, productIDs []string) error {
	if len(productIDs) == 0 {
		return nil
	}
	return c.do(ctx, principal, http.MethodDelete, "/cart/items", removeLinesRequest{ProductIDs: productIDs}, nil)
}

func (c *Client) do(ctx context.Context, principal entities.Principal, method, path string, in, out any) error {
	if c == nil {
		return ErrBackendNotConfigured
	}
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend request marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("backend request build: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if principal.BearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+principal.BearerToken)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("[checkout][backend] %s %s failed err=%v", method, path, err)
		return fmt.Errorf("backend request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("backend response read: %w", err)
	}
	log.Printf("[checkout][backend] %s %s status=%d duration=%s", method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp.StatusCode, body)
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("backend response unmarshal: %w", err)
	}
	return nil
}

func decodeError(status int, body []byte) error {
	be := &interfaces.BackendError{StatusCode: status}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		be.Code = er.Code
		be.Message = er.Message
		if be.Message == "" {
			be.Message = er.Error
		}
	}
	if be.Message == "" {
		be.Message = strings.TrimSpace(string(body))
	}
	if be.Message == "" {
		be.Message = http.StatusText(status)
	}
	return be
}
