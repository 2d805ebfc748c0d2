// Package client calls the login and forecast endpoints of a running server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"aggregat4/jwttoken/internal/domain"

	"github.com/hashicorp/go-cleanhttp"
)

var (
	ErrInvalidRequest = errors.New("client: invalid client request")
	ErrUnauthorized   = errors.New("client: unauthorized")
)

type Client struct {
	BaseUrl    string
	HttpClient *http.Client
}

func New(baseUrl string) *Client {
	return &Client{
		BaseUrl:    strings.TrimSuffix(baseUrl, "/"),
		HttpClient: cleanhttp.DefaultPooledClient(),
	}
}

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, username, password string) (domain.LoginResponse, error) {
	body, err := json.Marshal(domain.LoginRequest{UserName: username, Password: password})
	if err != nil {
		return domain.LoginResponse{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/WeatherForecast/Login", bytes.NewReader(body))
	if err != nil {
		return domain.LoginResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	var response domain.LoginResponse
	if err := c.do(req, &response); err != nil {
		return domain.LoginResponse{}, fmt.Errorf("login: %w", err)
	}
	return response, nil
}

// Forecasts fetches the protected forecast list using a token obtained from Login.
func (c *Client) Forecasts(ctx context.Context, token string) ([]domain.WeatherForecast, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+"/WeatherForecast", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var forecasts []domain.WeatherForecast
	if err := c.do(req, &forecasts); err != nil {
		return nil, fmt.Errorf("forecasts: %w", err)
	}
	return forecasts, nil
}

func (c *Client) do(req *http.Request, target any) error {
	res, err := c.HttpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(res.Body).Decode(target)
	case http.StatusBadRequest:
		return ErrInvalidRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		message, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(message)))
	}
}
