package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	arcclock "github.com/robegamesios/ArcReactorClock-sub000"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoAPIKey     = errors.New("openweather api key is not configured")
	errEmptyPayload = errors.New("response carries no weather entries")
)

// Client fetches current conditions for one city from OpenWeatherMap.
// A circuit breaker sits in front of the API so a dead network or a bad key
// does not hammer the endpoint from a device that polls forever.
type Client struct {
	apiKey  string
	cityID  int
	units   string // "imperial" or "metric"
	baseURL string

	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker

	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
}

// NewClient builds a Client for the given city. units follows the
// OpenWeatherMap convention ("imperial" gives Fahrenheit).
func NewClient(httpClient *http.Client, apiKey string, cityID int, units string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 3,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
	return &Client{
		apiKey:          apiKey,
		cityID:          cityID,
		units:           units,
		baseURL:         defaultBaseURL,
		httpClient:      httpClient,
		circuit:         cb,
		maxRetries:      2,
		initialInterval: 500 * time.Millisecond,
		maxInterval:     5 * time.Second,
	}
}

// Fetch retrieves the current conditions and maps them to a snapshot with
// Valid=true. Any failure returns the zero snapshot and an error.
func (c *Client) Fetch(ctx context.Context) (arcclock.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return arcclock.WeatherSnapshot{}, errNoAPIKey
	}

	resp, err := c.doWithResilience(ctx)
	if err != nil {
		return arcclock.WeatherSnapshot{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return arcclock.WeatherSnapshot{}, fmt.Errorf("decode weather response: %w", err)
	}
	if len(payload.Weather) == 0 {
		return arcclock.WeatherSnapshot{}, errEmptyPayload
	}

	return arcclock.WeatherSnapshot{
		ConditionCode: payload.Weather[0].Icon,
		Description:   payload.Weather[0].Description,
		Temperature:   int(math.Round(payload.Main.Temp)),
		FeelsLike:     int(math.Round(payload.Main.FeelsLike)),
		TempMin:       int(math.Round(payload.Main.TempMin)),
		TempMax:       int(math.Round(payload.Main.TempMax)),
		Humidity:      payload.Main.Humidity,
		WindSpeed:     int(math.Round(payload.Wind.Speed)),
		UpdatedAt:     time.Now().UTC(),
		Valid:         true,
	}, nil
}

func (c *Client) buildRequest(ctx context.Context) (*http.Request, error) {
	values := url.Values{}
	values.Set("id", strconv.Itoa(c.cityID))
	values.Set("units", c.units)
	values.Set("appid", c.apiKey)

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	return http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
}

// doWithResilience runs the request through the circuit breaker with
// exponential backoff between attempts.
func (c *Client) doWithResilience(ctx context.Context) (*http.Response, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		req, err := c.buildRequest(ctx)
		if err != nil {
			return nil, err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}
			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return resp, nil
		})

		if err == nil {
			return result.(*http.Response), nil
		}

		// An open circuit means recent calls already failed; don't retry.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= c.maxRetries {
			return nil, lastErr
		}

		delay := c.initialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > c.maxInterval {
			delay = c.maxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		attempt++
	}
}
