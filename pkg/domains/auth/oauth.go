package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/folio/pkg/config"
	"github.com/folio/pkg/constant"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// GoogleProvider wraps the OAuth2 code flow against Google. Identity
// verification is delegated entirely to the provider; we only consume the
// resulting profile.
type GoogleProvider struct {
	oauth *oauth2.Config
}

func NewGoogleProvider(cfg config.OAuth) *GoogleProvider {
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

func (p *GoogleProvider) Enabled() bool {
	return p.oauth.ClientID != "" && p.oauth.ClientSecret != ""
}

// AuthURL returns the provider consent page URL for the given state value.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

type GoogleUserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades the callback code for the user's Google profile.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (GoogleUserInfo, error) {
	var info GoogleUserInfo

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return info, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	client := p.oauth.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return info, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	if info.Email == "" {
		return info, fmt.Errorf(constant.SOMETHING_WENT_WRONG)
	}

	return info, nil
}
