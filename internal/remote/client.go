// Package remote is the typed client of the catch service REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/agentstation/catchlog/internal/transport"
	"github.com/agentstation/catchlog/pkg/catches"
	"github.com/agentstation/catchlog/pkg/errors"
	"github.com/agentstation/catchlog/pkg/logging"
)

// Client talks to the catch service. Every authenticated call takes the
// session token explicitly; the client itself holds no session state.
type Client struct {
	t *transport.Client
}

// New creates a client for baseURL (which includes the /api prefix).
func New(baseURL string, auth transport.Authenticator, opts ...transport.Option) *Client {
	if auth == nil {
		auth = &transport.BearerAuth{}
	}
	return &Client{t: transport.New(baseURL, auth, opts...)}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string {
	return c.t.BaseURL()
}

type credentials struct {
	Email    string `json:"courriel"`
	Password string `json:"motPasse"`
}

type tokenRequest struct {
	User credentials `json:"utilisateur"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges credentials for a bearer token.
func (c *Client) IssueToken(ctx context.Context, identifier, secret string) (string, error) {
	body := tokenRequest{User: credentials{Email: identifier, Password: secret}}
	resp, err := c.t.Send(ctx, http.MethodPost, "/generatetoken", "", body)
	if err != nil {
		return "", errors.NewAuthenticationError("password", "token request failed", err)
	}

	var out tokenResponse
	if err := transport.DecodeResponse(resp, &out); err != nil {
		return "", errors.NewAuthenticationError("password", errors.Message(err), err)
	}
	if out.Token == "" {
		return "", errors.NewAuthenticationError("password", "empty token", nil)
	}
	return out.Token, nil
}

// ListCatches fetches the catches matching f. Both {"captures": [...]} and a
// bare array are accepted.
func (c *Client) ListCatches(ctx context.Context, token string, f catches.Filter) ([]catches.Catch, error) {
	ctx = logging.WithFilter(ctx, string(f.Kind), f.Value)
	resp, err := c.t.Get(ctx, f.Path(), token)
	if err != nil {
		return nil, err
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	list, err := decodeCatchList(body)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Int("count", len(list)).Msg("Listed catches")
	return list, nil
}

// GetCatch fetches one catch by identifier.
func (c *Client) GetCatch(ctx context.Context, token, id string) (*catches.Catch, error) {
	resp, err := c.t.Get(ctx, "/captures/"+url.PathEscape(id), token)
	if err != nil {
		return nil, err
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Join(errors.NewNotFoundError("catch", id), err)
		}
		return nil, err
	}
	return decodeCatch(body)
}

// CreateResult is the outcome of a successful creation.
type CreateResult struct {
	// StatusCode is the 2xx status the service answered with.
	StatusCode int
	// Catch is the stored record when the service echoed it back.
	Catch *catches.Catch
}

// Created reports whether the service answered 201 Created.
func (r *CreateResult) Created() bool {
	return r.StatusCode == http.StatusCreated
}

type createRequest struct {
	Capture catches.Catch `json:"capture"`
}

// CreateCatch stores a new catch. The identifier, if any, is not sent.
func (c *Client) CreateCatch(ctx context.Context, token string, in catches.Catch) (*CreateResult, error) {
	in.ID = ""
	resp, err := c.t.Send(ctx, http.MethodPost, "/captures/add", token, createRequest{Capture: in})
	if err != nil {
		return nil, err
	}
	status := resp.StatusCode
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	result := &CreateResult{StatusCode: status}
	if len(bytes.TrimSpace(body)) > 0 {
		if created, err := decodeCatch(body); err == nil && created.ID != "" {
			result.Catch = created
		}
	}
	return result, nil
}

// UpdateCatch replaces the stored record identified by in.ID.
func (c *Client) UpdateCatch(ctx context.Context, token string, in catches.Catch) (*catches.Catch, error) {
	if in.ID == "" {
		return nil, errors.NewValidationError("_id", in.ID, "identifier is required")
	}
	resp, err := c.t.Send(ctx, http.MethodPut, "/captures/"+url.PathEscape(in.ID), token, in)
	if err != nil {
		return nil, err
	}
	body, err := transport.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	if updated, err := decodeCatch(body); err == nil && updated.ID != "" {
		return updated, nil
	}
	return &in, nil
}

// DeleteCatch removes one catch.
func (c *Client) DeleteCatch(ctx context.Context, token, id string) error {
	resp, err := c.t.Send(ctx, http.MethodDelete, "/captures/delete/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	return transport.DecodeResponse(resp, nil)
}

type speciesResponse struct {
	Species []catches.Species `json:"especes"`
}

// ListSpecies fetches the species reference list, sorted by name.
func (c *Client) ListSpecies(ctx context.Context, token string) ([]catches.Species, error) {
	resp, err := c.t.Get(ctx, "/espece-poisson/all", token)
	if err != nil {
		return nil, err
	}
	var out speciesResponse
	if err := transport.DecodeResponse(resp, &out); err != nil {
		return nil, err
	}
	catches.SortSpecies(out.Species)
	return out.Species, nil
}

func decodeCatchList(body []byte) ([]catches.Catch, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []catches.Catch
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, errors.WrapParse("json", "catch list", err)
		}
		return list, nil
	}

	var wrapped struct {
		Captures *[]catches.Catch `json:"captures"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return nil, errors.WrapParse("json", "catch list", err)
	}
	if wrapped.Captures == nil {
		return nil, errors.NewParseError("json", "catch list", "response has no captures field", nil)
	}
	return *wrapped.Captures, nil
}

func decodeCatch(body []byte) (*catches.Catch, error) {
	var wrapped struct {
		Capture *catches.Catch `json:"capture"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, errors.WrapParse("json", "catch", err)
	}
	if wrapped.Capture != nil {
		return wrapped.Capture, nil
	}

	var c catches.Catch
	if err := json.Unmarshal(body, &c); err != nil {
		return nil, errors.WrapParse("json", "catch", err)
	}
	return &c, nil
}
