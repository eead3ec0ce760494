package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HTTPProvider resolves tokens against a Supabase-compatible userinfo
// endpoint (GET {baseURL}/auth/v1/user with the bearer token). Any non-200
// response is treated as an invalid token; transport failures surface as-is
// so they become 500s, not 401s.
type HTTPProvider struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *HTTPProvider) Resolve(ctx context.Context, token string) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return Identity{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if p.apiKey != "" {
		req.Header.Set("apikey", p.apiKey)
	}

	res, err := p.client.Do(req)
	if err != nil {
		return Identity{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Identity{}, ErrInvalidToken
	}

	var body struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Identity{}, err
	}
	if body.ID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{ID: body.ID, Email: body.Email}, nil
}
