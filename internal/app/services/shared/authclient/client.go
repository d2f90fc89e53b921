// Package authclient drives the wallet login flow against the auth
// endpoints and keeps the resulting session state for a single user.
package authclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"therapyconnect-service/internal/app/models"
	"therapyconnect-service/internal/pkg/constvars"
	"therapyconnect-service/internal/pkg/dto/requests"
	"therapyconnect-service/internal/pkg/dto/responses"
	"therapyconnect-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type State int

const (
	Anonymous State = iota
	Authenticating
	AuthenticatedUnverified
	AuthenticatedVerified
)

func (s State) String() string {
	switch s {
	case Anonymous:
		return "anonymous"
	case Authenticating:
		return "authenticating"
	case AuthenticatedUnverified:
		return "authenticated-unverified"
	case AuthenticatedVerified:
		return "authenticated-verified"
	default:
		return constvars.ResponseUnknown
	}
}

// WalletAuthInput is what the wallet is asked to sign.
type WalletAuthInput struct {
	Nonce          string
	RequestID      string
	ExpirationTime time.Time
	NotBefore      time.Time
	Statement      string
}

type WalletAuthResult struct {
	Payload requests.WalletAuthPayload
	User    models.AuthenticatedUser
}

// WalletSigner is the wallet SDK: it shows the sign-in prompt and returns the
// signed payload together with the wallet's user profile.
type WalletSigner interface {
	WalletAuth(ctx context.Context, input WalletAuthInput) (*WalletAuthResult, error)
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Signer     WalletSigner
	Log        *zap.Logger

	mu       sync.Mutex
	state    State
	user     *models.AuthenticatedUser
	token    string
	now      func() time.Time
	onChange func(State)
}

type Option func(*Client)

// WithStateListener registers fn to be called on every state transition.
func WithStateListener(fn func(State)) Option {
	return func(c *Client) { c.onChange = fn }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.HTTPClient = httpClient }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient builds a client for the API mounted at baseURL, e.g.
// "https://therapy.example/api".
func NewClient(baseURL string, signer WalletSigner, logger *zap.Logger, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	client := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Jar: jar, Timeout: 15 * time.Second},
		Signer:     signer,
		Log:        logger,
		state:      Anonymous,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) User() *models.AuthenticatedUser {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	user := *c.user
	return &user
}

func (c *Client) IsVerified() bool {
	return c.State() == AuthenticatedVerified
}

// DisplayName is empty while no user is known.
func (c *Client) DisplayName() string {
	user := c.User()
	if user == nil {
		return ""
	}
	return user.DisplayName()
}

// Restore checks for an existing session once. A live session moves the
// client straight to authenticated-verified; anything else leaves it as is.
func (c *Client) Restore(ctx context.Context) error {
	var me responses.Me
	statusCode, err := c.do(ctx, http.MethodGet, constvars.PathAuthMe, nil, &me)
	if err != nil {
		c.Log.Error("authclient.Restore error fetching session", zap.Error(err))
		return err
	}
	if statusCode != constvars.StatusOK {
		return nil
	}

	user := models.AuthenticatedUser{
		WalletAddress:     me.User.WalletAddress,
		Username:          me.User.Username,
		ProfilePictureURL: me.User.ProfilePictureURL,
	}
	c.transition(AuthenticatedVerified, &user)
	return nil
}

// Login runs nonce, wallet signature and verification. It is a no-op while a
// user is present or another login is in flight. Any failure returns the
// client to anonymous.
func (c *Client) Login(ctx context.Context) error {
	c.mu.Lock()
	if c.user != nil || c.state == Authenticating {
		c.mu.Unlock()
		return nil
	}
	c.state = Authenticating
	listener := c.onChange
	c.mu.Unlock()
	if listener != nil {
		listener(Authenticating)
	}

	err := c.login(ctx)
	if err != nil {
		c.Log.Error("authclient.Login failed", zap.Error(err))
		c.reset()
		return err
	}
	return nil
}

func (c *Client) login(ctx context.Context) error {
	var nonce responses.Nonce
	statusCode, err := c.do(ctx, http.MethodGet, constvars.PathNonce, nil, &nonce)
	if err != nil {
		return err
	}
	if statusCode != constvars.StatusOK {
		return exceptions.ErrUnexpectedHTTPStatus(nil, statusCode, constvars.PathNonce)
	}

	now := c.now()
	result, err := c.Signer.WalletAuth(ctx, WalletAuthInput{
		Nonce:          nonce.Nonce,
		RequestID:      constvars.WalletAuthRequestID,
		ExpirationTime: now.Add(constvars.WalletAuthValidDays * 24 * time.Hour),
		NotBefore:      now.Add(-constvars.WalletAuthNotBeforeDays * 24 * time.Hour),
		Statement:      constvars.WalletAuthStatement,
	})
	if err != nil {
		return exceptions.ErrWalletSigner(err)
	}
	if result == nil {
		return exceptions.ErrWalletSigner(errors.New(constvars.ErrDevWalletSignerNoResult))
	}
	if result.Payload.Status != constvars.WalletAuthStatusSuccess {
		return exceptions.ErrWalletAuthStatus(nil, result.Payload.Status)
	}

	walletUser := result.User
	if walletUser.WalletAddress == "" {
		walletUser.WalletAddress = result.Payload.Address
	}
	c.transition(AuthenticatedUnverified, &walletUser)

	var login responses.Login
	statusCode, err = c.do(ctx, http.MethodPost, constvars.PathAuthLogin, requests.Login{
		Payload:           result.Payload,
		Nonce:             nonce.Nonce,
		Username:          walletUser.Username,
		ProfilePictureURL: walletUser.ProfilePictureURL,
	}, &login)
	if err != nil {
		return err
	}
	if statusCode != constvars.StatusOK {
		return exceptions.ErrUnexpectedHTTPStatus(nil, statusCode, constvars.PathAuthLogin)
	}

	verified := models.AuthenticatedUser{
		WalletAddress:     login.User.WalletAddress,
		Username:          login.User.Username,
		ProfilePictureURL: login.User.ProfilePictureURL,
	}
	c.mu.Lock()
	c.token = login.Token
	c.mu.Unlock()
	c.transition(AuthenticatedVerified, &verified)
	return nil
}

// Logout clears local state first and then tells the server. Server errors
// are logged only.
func (c *Client) Logout(ctx context.Context) {
	c.reset()

	if _, err := c.do(ctx, http.MethodPost, constvars.PathAuthLogout, nil, nil); err != nil {
		c.Log.Error("authclient.Logout error calling logout endpoint", zap.Error(err))
	}

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) reset() {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
	c.transition(Anonymous, nil)
}

func (c *Client) transition(state State, user *models.AuthenticatedUser) {
	c.mu.Lock()
	c.state = state
	if user != nil {
		c.user = user
	}
	listener := c.onChange
	c.mu.Unlock()

	if listener != nil {
		listener(state)
	}
}

// do sends the request and decodes the data field of the envelope into out
// when the call succeeded.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (int, error) {
	var payload *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewReader(encoded)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		return 0, exceptions.ErrCreateHTTPRequest(err)
	}
	if body != nil {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	c.mu.Lock()
	if c.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.HeaderBearerPrefix+c.token)
	}
	c.mu.Unlock()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK || out == nil {
		return resp.StatusCode, nil
	}

	envelope := struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return resp.StatusCode, exceptions.ErrCannotParseJSON(err)
	}
	if len(envelope.Data) == 0 {
		return resp.StatusCode, fmt.Errorf("empty response data from %s", path)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return resp.StatusCode, exceptions.ErrCannotParseJSON(err)
	}
	return resp.StatusCode, nil
}
