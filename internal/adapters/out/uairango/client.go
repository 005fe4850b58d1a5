// Package uairango implements the marketplace client against the UaiRango
// partner API. Authentication exchanges an establishment's developer token
// for a short-lived bearer token; every other call carries that bearer in
// the Authorization header.
package uairango

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"frangodahora/internal/core/domain/model/marketplace"
	"frangodahora/internal/pkg/errs"
)

// DefaultBaseURL is the production endpoint of the partner API.
const DefaultBaseURL = "https://www.uairango.com/api2"

// defaultTimeout bounds every API call; the sync cycle must never hang on a
// slow marketplace.
const defaultTimeout = 15 * time.Second

// Client is the HTTP implementation of the marketplace client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client for the given API base URL. An empty base URL
// selects the production endpoint.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// loginResponse is the payload of a successful authentication.
type loginResponse struct {
	Type    string `json:"type"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// actionResponse is the payload of mutating calls.
type actionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// infoResponse is the payload of the establishment info endpoint.
type infoResponse struct {
	StoreStatus int `json:"status_estabelecimento"`
}

// Authenticate exchanges a developer token for a bearer token.
func (c *Client) Authenticate(ctx context.Context, developerToken string) (string, error) {
	body, err := json.Marshal(map[string]string{"token": developerToken})
	if err != nil {
		return "", errs.NewRemoteAuthError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", errs.NewRemoteAuthError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.NewRemoteAuthError(err)
	}
	defer resp.Body.Close()

	var login loginResponse
	if err = json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", errs.NewRemoteAuthError(err)
	}

	if resp.StatusCode != http.StatusOK || login.Token == "" {
		return "", errs.NewRemoteAuthError(fmt.Errorf("login rejected: %s", login.Message))
	}

	return login.Type + " " + login.Token, nil
}

// PendingOrders lists the orders awaiting a decision for an establishment.
func (c *Client) PendingOrders(
	ctx context.Context, token string, remoteEstablishmentID int64,
) ([]marketplace.PendingOrder, error) {
	path := fmt.Sprintf("/auth/pedidos/%d?status=0", remoteEstablishmentID)

	var pending []marketplace.PendingOrder
	if err := c.get(ctx, "pending orders", token, path, &pending); err != nil {
		return nil, err
	}
	return pending, nil
}

// OrderDetails fetches the full payload of one order.
func (c *Client) OrderDetails(ctx context.Context, token string, code int64) (marketplace.RemoteOrder, error) {
	path := fmt.Sprintf("/auth/pedido/%d", code)

	var details marketplace.RemoteOrder
	if err := c.get(ctx, "order details", token, path, &details); err != nil {
		return marketplace.RemoteOrder{}, err
	}
	return details, nil
}

// Confirm accepts a pending order on the marketplace.
func (c *Client) Confirm(ctx context.Context, token string, code int64) error {
	path := fmt.Sprintf("/auth/pedido/confirma/%d", code)
	return c.action(ctx, "confirm order", token, http.MethodPost, path, nil)
}

// Cancel rejects a pending order on the marketplace with a customer visible
// reason.
func (c *Client) Cancel(ctx context.Context, token string, code int64, reason string) error {
	path := fmt.Sprintf("/auth/pedido/cancela/%d", code)
	return c.action(ctx, "cancel order", token, http.MethodPost, path, map[string]string{"motivo": reason})
}

// StoreStatus reports whether an establishment's storefront is open.
func (c *Client) StoreStatus(ctx context.Context, token string, remoteEstablishmentID int64) (bool, error) {
	path := fmt.Sprintf("/auth/info/%d", remoteEstablishmentID)

	var info infoResponse
	if err := c.get(ctx, "store status", token, path, &info); err != nil {
		return false, err
	}
	return info.StoreStatus == 1, nil
}

// SetStoreStatus opens or closes an establishment's storefront.
func (c *Client) SetStoreStatus(ctx context.Context, token string, remoteEstablishmentID int64, open bool) error {
	status := 0
	if open {
		status = 1
	}
	path := fmt.Sprintf("/auth/info/%d/status_estabelecimento/%d", remoteEstablishmentID, status)
	return c.action(ctx, "set store status", token, http.MethodPut, path, nil)
}

// SetDeliveryTime pushes the expected preparation time, in minutes, to an
// establishment.
func (c *Client) SetDeliveryTime(ctx context.Context, token string, remoteEstablishmentID int64, minutes int) error {
	path := fmt.Sprintf("/auth/info/%d/prazo_delivery/%d", remoteEstablishmentID, minutes)
	return c.action(ctx, "set delivery time", token, http.MethodPut, path, nil)
}

// get performs an authenticated GET and decodes the response into out.
func (c *Client) get(ctx context.Context, op, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.NewRemoteCallError(op, err)
	}
	req.Header.Set("Authorization", token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteCallError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errs.NewRemoteCallError(op, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readMessage(resp.Body)))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.NewRemoteCallError(op, err)
	}
	return nil
}

// action performs an authenticated mutating call and interprets the
// success/message envelope. A message reporting the order as no longer
// pending is surfaced as ErrOrderNotPending so callers can reconcile.
func (c *Client) action(ctx context.Context, op, token, method, path string, body any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errs.NewRemoteCallError(op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errs.NewRemoteCallError(op, err)
	}
	req.Header.Set("Authorization", token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewRemoteCallError(op, err)
	}
	defer resp.Body.Close()

	var result actionResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return errs.NewRemoteCallError(op, err)
	}

	if resp.StatusCode == http.StatusOK && result.Success {
		return nil
	}

	if isNotPendingMessage(result.Message) {
		return fmt.Errorf("%s: %w", op, errs.ErrOrderNotPending)
	}

	return errs.NewRemoteCallError(op, fmt.Errorf("rejected: %s", result.Message))
}

// isNotPendingMessage detects the marketplace's already-resolved reply, with
// and without accents.
func isNotPendingMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "não está mais pendente") ||
		strings.Contains(lower, "nao esta mais pendente")
}

func readMessage(body io.Reader) string {
	var envelope actionResponse
	if err := json.NewDecoder(body).Decode(&envelope); err != nil || envelope.Message == "" {
		return "no detail"
	}
	return envelope.Message
}
