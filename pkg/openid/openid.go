package openid

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const StateCookieName = "oauth_state"

var ErrDisabled = errors.New("identity provider is not configured")

type Config struct {
	Issuer       string `envconfig:"OIDC_ISSUER"` // e.g. https://accounts.google.com
	ClientID     string `envconfig:"OIDC_CLIENT_ID"`
	ClientSecret string `json:"-" envconfig:"OIDC_CLIENT_SECRET"`
	RedirectURL  string `envconfig:"OIDC_REDIRECT_URL"` // e.g. http://localhost:8080/api/v1/callback
}

func (c Config) Enabled() bool {
	return c.Issuer != ""
}

// Identity is the verified subject of an ID token.
type Identity struct {
	Subject  string
	Email    string
	FullName string
}

type Provider struct {
	verifier     *oidc.IDTokenVerifier
	oauth2Config oauth2.Config
}

func NewProvider(ctx context.Context, cfg Config) (*Provider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, errors.Wrap(err, "oidc.NewProvider")
	}
	return &Provider{
		verifier: provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		oauth2Config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (p *Provider) AuthURL(state string) string {
	return p.oauth2Config.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens and returns the verified ID token subject.
func (p *Provider) Exchange(ctx context.Context, code string) (Identity, error) {
	oauth2Token, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return Identity{}, errors.Wrap(err, "failed to exchange token")
	}
	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		return Identity{}, errors.New("no id_token field in oauth2 token")
	}
	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return Identity{}, errors.Wrap(err, "failed to verify ID Token")
	}

	var claims struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return Identity{}, errors.Wrap(err, "id token claims")
	}
	return Identity{
		Subject:  idToken.Subject,
		Email:    claims.Email,
		FullName: claims.Name,
	}, nil
}

// Disabled stands in when no issuer is configured.
type Disabled struct{}

func (Disabled) AuthURL(string) string { return "" }

func (Disabled) Exchange(context.Context, string) (Identity, error) {
	return Identity{}, ErrDisabled
}
