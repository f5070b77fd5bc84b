// Package client implements the HTTP client and interactive menu used by the
// weatherctl command.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"weathertrack/internal/model"
)

// ErrNotFound is returned for 404 responses: unknown locations, locations
// owned by someone else, or a location with no stored current weather.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized is returned when the server rejects the session.
var ErrUnauthorized = errors.New("authentication required")

const sessionHeader = "X-Session-Token"

// APIClient talks to the weathertrack server, echoing the session token
// obtained at login on every subsequent request.
type APIClient struct {
	baseURL string
	http    *http.Client
	token   string
}

// NewAPIClient creates a client for the given server base URL.
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// LoggedIn reports whether a session token is held.
func (c *APIClient) LoggedIn() bool { return c.token != "" }

func (c *APIClient) do(method, path string, body interface{}, out interface{}) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(sessionHeader, c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("call server: %w", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}
	return resp.StatusCode, nil
}

func statusErr(status int) error {
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("server returned status %d", status)
	}
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. A taken username is reported as an error.
func (c *APIClient) Register(username, password string) error {
	status, err := c.do(http.MethodPost, "/register", credentials{username, password}, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		if status == http.StatusConflict {
			return errors.New("username already exists")
		}
		return statusErr(status)
	}
	return nil
}

// Login authenticates and stores the issued session token.
func (c *APIClient) Login(username, password string) error {
	var resp struct {
		SessionToken string `json:"session_token"`
	}
	status, err := c.do(http.MethodPost, "/login", credentials{username, password}, &resp)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return statusErr(status)
	}
	c.token = resp.SessionToken
	return nil
}

// Logout invalidates the session server-side and drops the local token.
func (c *APIClient) Logout() error {
	status, err := c.do(http.MethodPost, "/logout", nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return statusErr(status)
	}
	c.token = ""
	return nil
}

// Favorites lists the user's favorite locations.
func (c *APIClient) Favorites() ([]model.FavoriteLocation, error) {
	var locations []model.FavoriteLocation
	status, err := c.do(http.MethodGet, "/favorites", nil, &locations)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	return locations, nil
}

// AddFavorite creates a favorite location.
func (c *APIClient) AddFavorite(name string, latitude, longitude float64) error {
	body := map[string]interface{}{
		"location_name": name,
		"latitude":      latitude,
		"longitude":     longitude,
	}
	status, err := c.do(http.MethodPost, "/favorites", body, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return statusErr(status)
	}
	return nil
}

// RemoveFavorite deletes a favorite location by id.
func (c *APIClient) RemoveFavorite(id uint) error {
	status, err := c.do(http.MethodDelete, fmt.Sprintf("/favorites/%d", id), nil, nil)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return statusErr(status)
	}
	return nil
}

// CurrentWeather returns the stored current snapshot, or ErrNotFound when
// nothing is stored yet.
func (c *APIClient) CurrentWeather(locationID uint) (*model.CurrentWeather, error) {
	var snapshot model.CurrentWeather
	status, err := c.do(http.MethodGet, fmt.Sprintf("/weather/current/%d", locationID), nil, &snapshot)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	return &snapshot, nil
}

// StoreCurrent submits a fresh current reading for storage.
func (c *APIClient) StoreCurrent(locationID uint, reading model.Reading) error {
	status, err := c.do(http.MethodPost, fmt.Sprintf("/weather/current/%d", locationID), reading, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return statusErr(status)
	}
	return nil
}

// Forecast returns stored forecast snapshots in ascending timestamp order.
func (c *APIClient) Forecast(locationID uint) ([]model.ForecastWeather, error) {
	var snapshots []model.ForecastWeather
	status, err := c.do(http.MethodGet, fmt.Sprintf("/weather/forecast/%d", locationID), nil, &snapshots)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	return snapshots, nil
}

// StoreForecast submits forecast readings for storage.
func (c *APIClient) StoreForecast(locationID uint, readings []model.Reading) error {
	status, err := c.do(http.MethodPost, fmt.Sprintf("/weather/forecast/%d", locationID), readings, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return statusErr(status)
	}
	return nil
}

// History returns stored historical snapshots, newest first.
func (c *APIClient) History(locationID uint) ([]model.HistoricalWeather, error) {
	var snapshots []model.HistoricalWeather
	status, err := c.do(http.MethodGet, fmt.Sprintf("/weather/history/%d", locationID), nil, &snapshots)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, statusErr(status)
	}
	return snapshots, nil
}

// StoreHistory submits historical readings for storage.
func (c *APIClient) StoreHistory(locationID uint, readings []model.Reading) error {
	status, err := c.do(http.MethodPost, fmt.Sprintf("/weather/history/%d", locationID), readings, nil)
	if err != nil {
		return err
	}
	if status != http.StatusCreated && status != http.StatusOK {
		return statusErr(status)
	}
	return nil
}
