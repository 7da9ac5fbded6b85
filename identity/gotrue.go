// identity/gotrue.go
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// GoTrueClient talks to the Supabase Auth REST API.
type GoTrueClient struct {
	baseURL        string
	anonKey        string
	serviceRoleKey string
	httpClient     *http.Client
}

func NewGoTrueClient(baseURL, anonKey, serviceRoleKey string) *GoTrueClient {
	return &GoTrueClient{
		baseURL:        strings.TrimRight(baseURL, "/"),
		anonKey:        anonKey,
		serviceRoleKey: serviceRoleKey,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

type goTrueUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// GetUser resolves the caller's token against /auth/v1/user.
func (c *GoTrueClient) GetUser(ctx context.Context, token string) (*model.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth provider request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, bc_errors.ErrInvalidToken
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("auth provider returned %d: %s", resp.StatusCode, readSnippet(resp.Body))
	}

	var user goTrueUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode auth provider user: %w", err)
	}
	if user.ID == "" {
		return nil, bc_errors.ErrInvalidToken
	}
	return &model.Identity{ID: user.ID, Email: user.Email}, nil
}

// DeleteUser removes the identity using the service-role key.
func (c *GoTrueClient) DeleteUser(ctx context.Context, userID string) error {
	if c.serviceRoleKey == "" {
		return fmt.Errorf("%w: service role key is not configured", bc_errors.ErrIdentityDeleteFailed)
	}
	endpoint := c.baseURL + "/auth/v1/admin/users/" + url.PathEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)
	req.Header.Set("apikey", c.serviceRoleKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", bc_errors.ErrIdentityDeleteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := readSnippet(resp.Body)
		logger.Error("Auth provider refused user deletion",
			zap.String("userID", userID),
			zap.Int("statusCode", resp.StatusCode),
			zap.String("body", msg))
		return fmt.Errorf("%w: %s", bc_errors.ErrIdentityDeleteFailed, msg)
	}
	return nil
}

func (c *GoTrueClient) apiKey() string {
	if c.anonKey != "" {
		return c.anonKey
	}
	return c.serviceRoleKey
}

// readSnippet pulls the provider's error message out of a JSON body when it
// has one.
func readSnippet(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var body struct {
		Msg         string `json:"msg"`
		Message     string `json:"message"`
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}
	if json.Unmarshal(raw, &body) == nil {
		for _, s := range []string{body.Msg, body.Message, body.Description, body.Error} {
			if s != "" {
				return s
			}
		}
	}
	return strings.TrimSpace(string(raw))
}
