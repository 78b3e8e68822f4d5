// Package insightly maps the Insightly REST endpoints onto domain types.
package insightly

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bnema/insightly-cli/internal/adapters/httpapi"
	"github.com/bnema/insightly-cli/internal/ports"
)

var (
	_ ports.AuthAPI        = (*API)(nil)
	_ ports.InsightAPI     = (*API)(nil)
	_ ports.IntegrationAPI = (*API)(nil)
)

type API struct {
	client *httpapi.Client
}

func New(client *httpapi.Client) *API {
	return &API{client: client}
}

func get[T any](ctx context.Context, api *API, path string, query url.Values) (T, error) {
	resp, err := api.client.Get(ctx, path, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp, http.MethodGet, path)
}

func post[T any](ctx context.Context, api *API, path string, body any) (T, error) {
	resp, err := api.client.Post(ctx, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp, http.MethodPost, path)
}

func patch[T any](ctx context.Context, api *API, path string, body any) (T, error) {
	resp, err := api.client.Patch(ctx, path, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](resp, http.MethodPatch, path)
}

func decode[T any](resp *httpapi.Response, method, path string) (T, error) {
	data, err := httpapi.Decode[T](resp)
	if err != nil {
		// server messages reach the user verbatim
		var envelopeErr *httpapi.EnvelopeError
		if errors.As(err, &envelopeErr) {
			return data, err
		}
		return data, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return data, nil
}
