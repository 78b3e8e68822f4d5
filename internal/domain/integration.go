package domain

import (
	"fmt"
	"strings"
	"time"
)

type Provider string

const (
	ProviderGoogle  Provider = "google"
	ProviderMeta    Provider = "meta"
	ProviderClarity Provider = "clarity"
)

func ParseProvider(raw string) (Provider, error) {
	provider := Provider(strings.ToLower(strings.TrimSpace(raw)))
	switch provider {
	case ProviderGoogle, ProviderMeta, ProviderClarity:
		return provider, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProvider, raw)
	}
}

type IntegrationAccount struct {
	ID                int64     `json:"id"`
	Provider          Provider  `json:"provider"`
	ExternalAccountID string    `json:"external_account_id"`
	Name              string    `json:"name"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

type GAProperty struct {
	ID                     int64     `json:"id"`
	PropertyID             string    `json:"property_id"`
	Name                   string    `json:"name"`
	WebsiteURL             string    `json:"website_url,omitempty"`
	IntegrationAccount     int64     `json:"integration_account"`
	IntegrationAccountName string    `json:"integration_account_name"`
	CreatedAt              time.Time `json:"created_at"`
}

type MetaAdAccount struct {
	ID                     int64     `json:"id"`
	AdAccountID            string    `json:"ad_account_id"`
	Name                   string    `json:"name"`
	IntegrationAccount     int64     `json:"integration_account"`
	IntegrationAccountName string    `json:"integration_account_name"`
	Currency               string    `json:"currency,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

type AvailableProperty struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Account string `json:"account,omitempty"`
}

type GoogleConnection struct {
	Integration         IntegrationAccount  `json:"integration"`
	AvailableProperties []AvailableProperty `json:"available_properties"`
}

type MetaConnection struct {
	Integration         IntegrationAccount  `json:"integration"`
	AvailableAdAccounts []AvailableProperty `json:"available_ad_accounts"`
}

type ClarityConnection struct {
	Integration IntegrationAccount `json:"integration"`
}
