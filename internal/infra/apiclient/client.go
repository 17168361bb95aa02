package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
	"kidcare-booking/internal/pkg/config"
)

const maxErrorBody = 64 << 10

// Client issues exactly one request per booking operation. It does not retry.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.New("API_BASE_URL must be an absolute URL")
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}, nil
}

// NewClientWithHTTP lets tests inject a transport.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *slog.Logger) (*Client, error) {
	c, err := NewClient(config.APIConfig{BaseURL: baseURL, Timeout: httpClient.Timeout}, logger)
	if err != nil {
		return nil, err
	}
	c.httpClient = httpClient
	return c, nil
}

func (c *Client) GetFranchises(ctx context.Context) ([]booking.Franchise, error) {
	var out []booking.Franchise
	if err := c.do(ctx, "GetFranchises", http.MethodGet, c.endpoint(nil, "franchises"), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []booking.Franchise{}
	}
	return out, nil
}

func (c *Client) CheckAvailability(ctx context.Context, franchiseID, date string) (*booking.AvailabilityResponse, error) {
	var out booking.AvailabilityResponse
	q := url.Values{"date": []string{date}}
	if err := c.do(ctx, "CheckAvailability", http.MethodGet, c.endpoint(q, "availability", franchiseID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBooking(ctx context.Context, req booking.CreateBookingRequest) (*booking.CreateBookingResponse, error) {
	var out booking.CreateBookingResponse
	if err := c.do(ctx, "CreateBooking", http.MethodPost, c.endpoint(nil, "bookings"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBookingDetails(ctx context.Context, bookingID string) (*booking.BookingDetails, error) {
	var out booking.BookingDetails
	if err := c.do(ctx, "GetBookingDetails", http.MethodGet, c.endpoint(nil, "bookings", bookingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ModifyBooking(ctx context.Context, bookingID string, changes booking.ModifyBookingRequest) (*booking.ModifyBookingResponse, error) {
	var out booking.ModifyBookingResponse
	if err := c.do(ctx, "ModifyBooking", http.MethodPut, c.endpoint(nil, "bookings", bookingID), changes, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CancelBooking(ctx context.Context, bookingID string) (*booking.CancelBookingResponse, error) {
	var out booking.CancelBookingResponse
	if err := c.do(ctx, "CancelBooking", http.MethodDelete, c.endpoint(nil, "bookings", bookingID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ProcessPayment(ctx context.Context, req booking.PaymentRequest) (*booking.PaymentResponse, error) {
	var out booking.PaymentResponse
	if err := c.do(ctx, "ProcessPayment", http.MethodPost, c.endpoint(nil, "payments"), req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetBookingQRCode(ctx context.Context, bookingID string) (*booking.QRCodeResponse, error) {
	var out booking.QRCodeResponse
	if err := c.do(ctx, "GetBookingQRCode", http.MethodGet, c.endpoint(nil, "bookings", bookingID, "qr"), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// endpoint joins escaped path segments onto the base URL.
func (c *Client) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = url.PathEscape(s)
	}
	u.Path = c.baseURL.Path + "/" + strings.Join(escaped, "/")
	u.RawPath = c.baseURL.EscapedPath() + "/" + strings.Join(escaped, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) do(ctx context.Context, op, method, target string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindUnknown, 0, infra.CodeUnknownError, "failed to encode request", nil), op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindUnknown, 0, infra.CodeUnknownError, err.Error(), nil), op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindTransport, 0, infra.CodeNetworkError, transportMessage(err), nil), op, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("Booking API call", "op", op, "method", method, "status", resp.StatusCode, "duration", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.normalizeFailure(op, resp)
	}

	if out == nil {
		return nil
	}
	// an empty 2xx body (204 on DELETE) leaves out at its zero value
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindUnknown, resp.StatusCode, infra.CodeUnknownError, "malformed response body", nil), op, err)
	}
	return nil
}

// normalizeFailure pulls error_code/message/details from the backend body
// and falls back to a generic code and the status text.
func (c *Client) normalizeFailure(op string, resp *http.Response) error {
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		ErrorCode string         `json:"error_code"`
		Message   string         `json:"message"`
		Details   map[string]any `json:"details"`
	}
	if readErr == nil && len(raw) > 0 && json.Unmarshal(raw, &body) == nil && (body.ErrorCode != "" || body.Message != "") {
		code := body.ErrorCode
		if code == "" {
			code = infra.CodeUnknownError
		}
		msg := body.Message
		if msg == "" {
			msg = statusMessage(resp.StatusCode)
		}
		return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindBackend, resp.StatusCode, code, msg, body.Details), op, nil)
	}

	return infra.WrapAPIErr(c.logger, infra.NewAPIError(infra.KindUnknown, resp.StatusCode, infra.CodeUnknownError, statusMessage(resp.StatusCode), nil), op, readErr)
}

func statusMessage(status int) string {
	if text := http.StatusText(status); text != "" {
		return "Request failed with status " + http.StatusText(status)
	}
	return "Request failed"
}

func transportMessage(err error) string {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return "request timed out"
		}
		return urlErr.Err.Error()
	}
	return err.Error()
}
