package hubspot

//go:generate go run go.uber.org/mock/mockgen -source=./hubspot.go -destination=./mocks/hubspot_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"intake/config"
	"intake/infras/otel"
	"intake/shared/constant"
	"intake/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	contactsPath = "/crm/v3/objects/contacts"
	ticketsPath  = "/crm/v3/objects/tickets"

	// maxErrorBody caps how much of a failed response is kept for logging.
	maxErrorBody = 4096
)

// ErrNotFound is returned when the CRM answers 404 for a single object.
var ErrNotFound = errors.New("crm object not found")

// Object is the shape shared by contacts and tickets in CRM v3 responses.
type Object struct {
	ID         string            `json:"id"`
	Properties map[string]string `json:"properties"`
}

// AssociationType qualifies the link between two CRM objects.
type AssociationType struct {
	AssociationCategory string `json:"associationCategory"`
	AssociationTypeID   int    `json:"associationTypeId"`
}

// Association links a new object to an existing one at creation time.
type Association struct {
	To struct {
		ID string `json:"id"`
	} `json:"to"`
	Types []AssociationType `json:"types"`
}

// NewAssociation builds a single-typed association to the object with id.
func NewAssociation(id, category string, typeID int) Association {
	var association Association
	association.To.ID = id
	association.Types = []AssociationType{{AssociationCategory: category, AssociationTypeID: typeID}}

	return association
}

// APIError carries a non-success CRM response. Body is for server-side logs only.
type APIError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crm %s %s responded %d", e.Method, e.Path, e.Status)
}

// StatusOf returns the CRM status carried by err, or 0 when the request never got a response.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}

	return 0
}

// BodyOf returns the CRM response body carried by err, if any.
func BodyOf(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Body
	}

	return ""
}

type Client interface {
	GetContactByEmail(ctx context.Context, email string, properties []string) (Object, error)
	CreateContact(ctx context.Context, properties map[string]string) (Object, error)
	UpdateContact(ctx context.Context, contactID string, properties map[string]string) (Object, error)
	CreateTicket(ctx context.Context, properties map[string]string, associations []Association) (Object, error)
}

type hubspotImpl struct {
	baseURL    string
	token      string
	httpClient *http.Client
	otel       otel.Otel
}

// New builds the CRM client for the application and stops the process when the
// access token is missing.
func New(cfg *config.Config, otel otel.Otel) Client {
	client, err := NewClient(cfg, otel, &http.Client{
		Timeout: time.Duration(cfg.CRM.TimeoutSeconds) * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("CRM access token is not configured")
	}

	log.Info().Str("base_url", cfg.CRM.BaseURL).Msg("CRM client initialized")

	return client
}

// NewClient returns failure.NotConfigured when the access token is missing.
func NewClient(cfg *config.Config, otel otel.Otel, httpClient *http.Client) (Client, error) {
	if strings.TrimSpace(cfg.CRM.AccessToken) == "" {
		return nil, failure.NotConfigured
	}

	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &hubspotImpl{
		baseURL:    strings.TrimRight(cfg.CRM.BaseURL, "/"),
		token:      cfg.CRM.AccessToken,
		httpClient: httpClient,
		otel:       otel,
	}, nil
}

// GetContactByEmail reads a contact keyed by its email property. A 404 is ErrNotFound.
func (h *hubspotImpl) GetContactByEmail(ctx context.Context, email string, properties []string) (contact Object, err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".GetContactByEmail")
	defer scope.End()

	params := url.Values{}
	params.Set("idProperty", "email")

	if len(properties) > 0 {
		params.Set("properties", strings.Join(properties, ","))
	}

	path := fmt.Sprintf("%s/%s?%s", contactsPath, url.PathEscape(email), params.Encode())

	err = h.do(ctx, http.MethodGet, path, nil, &contact)
	if !errors.Is(err, ErrNotFound) {
		scope.TraceIfError(err)
	}

	return contact, err
}

func (h *hubspotImpl) CreateContact(ctx context.Context, properties map[string]string) (contact Object, err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = h.do(ctx, http.MethodPost, contactsPath, map[string]any{"properties": properties}, &contact)

	return contact, err
}

func (h *hubspotImpl) UpdateContact(ctx context.Context, contactID string, properties map[string]string) (contact Object, err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".UpdateContact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	path := fmt.Sprintf("%s/%s", contactsPath, url.PathEscape(contactID))
	err = h.do(ctx, http.MethodPatch, path, map[string]any{"properties": properties}, &contact)

	return contact, err
}

func (h *hubspotImpl) CreateTicket(ctx context.Context, properties map[string]string, associations []Association) (ticket Object, err error) {
	ctx, scope := h.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".CreateTicket")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body := map[string]any{
		"properties":   properties,
		"associations": associations,
	}

	err = h.do(ctx, http.MethodPost, ticketsPath, body, &ticket)

	return ticket, err
}

func (h *hubspotImpl) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader

	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode crm request: %w", err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build crm request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+h.token)
	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	if payload != nil {
		req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("crm %s %s: %w", method, stripQuery(path), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && method == http.MethodGet:
		return ErrNotFound
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return &APIError{
			Method: method,
			Path:   stripQuery(path),
			Status: resp.StatusCode,
			Body:   string(raw),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode crm response: %w", err)
	}

	return nil
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}

	return path
}
