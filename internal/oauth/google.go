package oauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/Itzsoham/my-piano-diary-sub000/internal/errdefs"
	"github.com/Itzsoham/my-piano-diary-sub000/internal/model"
)

const (
	ProviderGoogle = "google"

	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// GoogleProvider runs the authorization code flow against Google and turns
// the result into an OAuthProfile.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		},
		userInfoURL: googleUserInfoURL,
	}
}

func (p *GoogleProvider) Name() string {
	return ProviderGoogle
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

type googleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// Exchange trades the authorization code for tokens and fetches the user's
// profile with them.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*model.OAuthProfile, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange failed: %v", errdefs.ErrAuthentication, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.config.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch userinfo: unexpected status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Sub == "" {
		return nil, fmt.Errorf("%w: userinfo without subject", errdefs.ErrAuthentication)
	}

	return profileFromToken(info, token), nil
}

func profileFromToken(info googleUserInfo, token *oauth2.Token) *model.OAuthProfile {
	profile := &model.OAuthProfile{
		Provider:          ProviderGoogle,
		ProviderAccountId: info.Sub,
		EmailVerified:     info.EmailVerified,
		Email:             nonEmpty(info.Email),
		Name:              nonEmpty(info.Name),
		Image:             nonEmpty(info.Picture),
		AccessToken:       nonEmpty(token.AccessToken),
		RefreshToken:      nonEmpty(token.RefreshToken),
		TokenType:         nonEmpty(token.TokenType),
	}
	if !token.Expiry.IsZero() {
		expiresAt := token.Expiry.Unix()
		profile.ExpiresAt = &expiresAt
	}
	if scope, ok := token.Extra("scope").(string); ok {
		profile.Scope = nonEmpty(scope)
	}
	if idToken, ok := token.Extra("id_token").(string); ok {
		profile.IdToken = nonEmpty(idToken)
	}
	return profile
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// NewState returns a random value for the CSRF state cookie.
func NewState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
