// Package weather fetches readings from the OpenWeatherMap One Call 3.0 API.
// It is used by the CLI client; the server only stores what clients submit.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weathertrack/internal/logutil"
	"weathertrack/internal/model"
)

const defaultBaseURL = "https://api.openweathermap.org/data/3.0"

// Client calls the OpenWeatherMap One Call API. All requests carry the
// configured timeout; the upstream has no SLA and must not stall callers
// indefinitely.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a One Call client with a 10 second request timeout.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a stub server.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type weatherDesc struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type observation struct {
	Dt        int64         `json:"dt"`
	Temp      float64       `json:"temp"`
	FeelsLike float64       `json:"feels_like"`
	Pressure  float64       `json:"pressure"`
	Humidity  float64       `json:"humidity"`
	WindSpeed float64       `json:"wind_speed"`
	WindDeg   int           `json:"wind_deg"`
	Weather   []weatherDesc `json:"weather"`
}

type dailyForecast struct {
	Dt        int64              `json:"dt"`
	Temp      map[string]float64 `json:"temp"`
	FeelsLike map[string]float64 `json:"feels_like"`
	Pressure  float64            `json:"pressure"`
	Humidity  float64            `json:"humidity"`
	WindSpeed float64            `json:"wind_speed"`
	WindDeg   int                `json:"wind_deg"`
	Weather   []weatherDesc      `json:"weather"`
}

type oneCallResponse struct {
	Current *observation    `json:"current"`
	Daily   []dailyForecast `json:"daily"`
	Data    []observation   `json:"data"`
}

func (o observation) reading() model.Reading {
	r := model.Reading{
		Timestamp:   o.Dt,
		Temperature: o.Temp,
		FeelsLike:   o.FeelsLike,
		Pressure:    o.Pressure,
		Humidity:    o.Humidity,
		WindSpeed:   o.WindSpeed,
		WindDeg:     o.WindDeg,
	}
	if len(o.Weather) > 0 {
		r.Description = o.Weather[0].Description
		r.Icon = o.Weather[0].Icon
	}
	return r
}

func (d dailyForecast) reading() model.Reading {
	r := model.Reading{
		Timestamp:   d.Dt,
		Temperature: d.Temp["day"],
		FeelsLike:   d.FeelsLike["day"],
		Pressure:    d.Pressure,
		Humidity:    d.Humidity,
		WindSpeed:   d.WindSpeed,
		WindDeg:     d.WindDeg,
	}
	if len(d.Weather) > 0 {
		r.Description = d.Weather[0].Description
		r.Icon = d.Weather[0].Icon
	}
	return r
}

func (c *Client) fetch(ctx context.Context, path string, params url.Values) (*oneCallResponse, error) {
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	reqURL := c.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	log := logutil.GetOrDefault(ctx)
	log.Debug().Str("path", path).Msg("calling openweathermap")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call openweathermap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openweathermap returned status %d", resp.StatusCode)
	}

	var parsed oneCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}

// Current fetches the present conditions for the coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (model.Reading, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("exclude", "minutely,hourly,daily,alerts")

	resp, err := c.fetch(ctx, "/onecall", params)
	if err != nil {
		return model.Reading{}, err
	}
	if resp.Current == nil {
		return model.Reading{}, fmt.Errorf("openweathermap response missing current block")
	}
	return resp.Current.reading(), nil
}

// Forecast fetches the daily forecast for the coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) ([]model.Reading, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("exclude", "current,minutely,hourly,alerts")

	resp, err := c.fetch(ctx, "/onecall", params)
	if err != nil {
		return nil, err
	}
	readings := make([]model.Reading, 0, len(resp.Daily))
	for _, d := range resp.Daily {
		readings = append(readings, d.reading())
	}
	return readings, nil
}

// History fetches hourly observations for the past 24 hours.
func (c *Client) History(ctx context.Context, lat, lon float64) ([]model.Reading, error) {
	params := url.Values{}
	params.Set("lat", formatCoord(lat))
	params.Set("lon", formatCoord(lon))
	params.Set("dt", strconv.FormatInt(time.Now().Unix()-86400, 10))

	resp, err := c.fetch(ctx, "/onecall/timemachine", params)
	if err != nil {
		return nil, err
	}
	readings := make([]model.Reading, 0, len(resp.Data))
	for _, o := range resp.Data {
		readings = append(readings, o.reading())
	}
	return readings, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
