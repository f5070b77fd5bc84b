package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"

	"weathertrack/internal/model"
	"weathertrack/internal/weather"
)

// Provider is the slice of the OpenWeatherMap client the menu needs; tests
// substitute a stub.
type Provider interface {
	Current(ctx context.Context, lat, lon float64) (model.Reading, error)
	Forecast(ctx context.Context, lat, lon float64) ([]model.Reading, error)
	History(ctx context.Context, lat, lon float64) ([]model.Reading, error)
}

var _ Provider = (*weather.Client)(nil)

// Menu drives the interactive session: login/register first, then the
// favorites and weather actions.
type Menu struct {
	api      *APIClient
	provider Provider
	in       *bufio.Scanner
	out      io.Writer

	// readPassword is a test seam; the default reads from the terminal
	// without echo.
	readPassword func() (string, error)
}

// NewMenu creates a menu reading from in and writing to out.
func NewMenu(api *APIClient, provider Provider, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		api:      api,
		provider: provider,
		in:       bufio.NewScanner(in),
		out:      out,
	}
	m.readPassword = func() (string, error) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(m.out)
		return string(raw), err
	}
	return m
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptPassword(label string) (string, bool) {
	m.printf("%s", label)
	pw, err := m.readPassword()
	if err != nil {
		return "", false
	}
	return pw, true
}

// Run executes the menu loop until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) {
	m.printf("\nWelcome to your Weather-Location Manager.\nWould you like to Login or Create an Account?\n\n")

	if !m.authLoop() {
		return
	}
	m.actionLoop(ctx)
}

// authLoop returns true once the user is logged in, false on exit/EOF.
func (m *Menu) authLoop() bool {
	for {
		m.printf("Menu:\n 1. Login\n 2. Create Account\n 3. Exit\n")
		choice, ok := m.prompt("Enter the number of the action you would like to perform: ")
		if !ok {
			return false
		}

		switch choice {
		case "1":
			username, ok := m.prompt("\nUsername: ")
			if !ok {
				return false
			}
			password, ok := m.promptPassword("Password: ")
			if !ok {
				return false
			}
			if err := m.api.Login(username, password); err != nil {
				m.printf("\nUsername or Password incorrect. Please try again.\n\n")
				continue
			}
			m.printf("\nWelcome, %s. What would you like to do?\n\n", username)
			return true

		case "2":
			m.printf("\nEnter a username and password to create an account.\n\n")
			username, ok := m.prompt("Username: ")
			if !ok {
				return false
			}
			password, ok := m.promptPassword("Password: ")
			if !ok {
				return false
			}
			if err := m.api.Register(username, password); err != nil {
				m.printf("\nFailed to create account. Username may already exist.\n\n")
				continue
			}
			if err := m.api.Login(username, password); err != nil {
				m.printf("\nAccount created but login failed: %v\n\n", err)
				continue
			}
			m.printf("\nAccount created. Welcome, %s. What would you like to do?\n\n", username)
			return true

		case "3":
			m.printf("Exiting...\n")
			return false

		default:
			m.printf("Invalid input. Please try again.\n")
		}
	}
}

func (m *Menu) actionLoop(ctx context.Context) {
	for {
		m.printf("Menu:\n")
		m.printf(" 1. Set a New Favorite Location\n")
		m.printf(" 2. View All Favorite Locations\n")
		m.printf(" 3. Get the Current Weather for a Favorite Location\n")
		m.printf(" 4. Get Weather History for a Favorite Location\n")
		m.printf(" 5. Get Weather Forecast for a Favorite Location\n")
		m.printf(" 6. Remove a Favorite Location\n")
		m.printf(" 7. Exit and Logout\n")

		choice, ok := m.prompt("Enter the number of the action you would like to perform: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			m.addFavorite()
		case "2":
			m.printf("\nGetting All Favorite Locations...\n\n")
			m.listFavorites()
		case "3":
			m.withLocation(func(loc model.FavoriteLocation) { m.showCurrent(ctx, loc) })
		case "4":
			m.withLocation(func(loc model.FavoriteLocation) { m.showHistory(ctx, loc) })
		case "5":
			m.withLocation(func(loc model.FavoriteLocation) { m.showForecast(ctx, loc) })
		case "6":
			m.removeFavorite()
		case "7":
			m.printf("\nExiting...\n\n")
			if err := m.api.Logout(); err != nil {
				m.printf("Logout failed: %v\n", err)
			}
			return
		default:
			m.printf("\nInvalid input. Please try again.\n\n")
		}
	}
}

func (m *Menu) addFavorite() {
	name, ok := m.prompt("\nEnter the name of the location you'd like to favorite: ")
	if !ok {
		return
	}
	latStr, ok := m.prompt("Enter the latitude (e.g., 40.7128): ")
	if !ok {
		return
	}
	lonStr, ok := m.prompt("Enter the longitude (e.g., -74.0060): ")
	if !ok {
		return
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		m.printf("\nInvalid coordinates. Please enter valid numbers.\n\n")
		return
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		m.printf("\nInvalid coordinates. Please enter valid numbers.\n\n")
		return
	}

	if err := m.api.AddFavorite(name, lat, lon); err != nil {
		m.printf("\nFailed to add location to favorites.\n\n")
		return
	}
	m.printf("\nLocation added to favorites.\n\n")
}

// listFavorites prints the user's favorites and returns them.
func (m *Menu) listFavorites() []model.FavoriteLocation {
	locations, err := m.api.Favorites()
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			m.printf("Please log in first to view your favorites.\n\n")
		} else {
			m.printf("Error fetching favorites: %v\n\n", err)
		}
		return nil
	}
	if len(locations) == 0 {
		m.printf("You don't have any favorite locations yet.\n\n")
		return locations
	}

	m.printf("=== Your Favorite Locations ===\n\n")
	for _, loc := range locations {
		m.printf("ID: %d\n", loc.ID)
		m.printf("Location: %s\n", loc.LocationName)
		m.printf("Coordinates: (%g, %g)\n", loc.Latitude, loc.Longitude)
		m.printf("-------------------\n\n")
	}
	return locations
}

// withLocation lists favorites, prompts for an id, and runs fn on the match.
func (m *Menu) withLocation(fn func(model.FavoriteLocation)) {
	m.printf("\nHere are your current locations:\n\n")
	locations := m.listFavorites()
	if len(locations) == 0 {
		return
	}

	idStr, ok := m.prompt("\nEnter the ID number of the location: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		m.printf("\nInvalid location ID. Please enter a valid number.\n\n")
		return
	}
	for _, loc := range locations {
		if loc.ID == uint(id) {
			fn(loc)
			return
		}
	}
	m.printf("\nLocation with ID %d not found.\n\n", id)
}

func (m *Menu) printReading(r model.Reading) {
	m.printf("Temperature: %.1f°C\n", r.Temperature)
	m.printf("Feels Like: %.1f°C\n", r.FeelsLike)
	m.printf("Description: %s\n", r.Description)
	m.printf("Humidity: %.0f%%\n", r.Humidity)
	m.printf("Wind Speed: %.1f m/s\n", r.WindSpeed)
}

// showCurrent prints the stored current weather, fetching and storing a fresh
// reading from the provider when nothing is stored yet.
func (m *Menu) showCurrent(ctx context.Context, loc model.FavoriteLocation) {
	snapshot, err := m.api.CurrentWeather(loc.ID)
	if err == nil {
		m.printf("\nCurrent Weather:\n")
		m.printReading(snapshot.Reading)
		return
	}
	if !errors.Is(err, ErrNotFound) {
		m.printf("\nError getting weather: %v\n\n", err)
		return
	}

	reading, err := m.provider.Current(ctx, loc.Latitude, loc.Longitude)
	if err != nil {
		m.printf("\nError getting weather: %v\n\n", err)
		return
	}
	if err := m.api.StoreCurrent(loc.ID, reading); err != nil {
		m.printf("\nFailed to store weather data: %v\n\n", err)
		return
	}
	stored, err := m.api.CurrentWeather(loc.ID)
	if err != nil {
		m.printf("\nFailed to fetch stored weather data: %v\n\n", err)
		return
	}
	m.printf("\nCurrent Weather:\n")
	m.printReading(stored.Reading)
}

func (m *Menu) showForecast(ctx context.Context, loc model.FavoriteLocation) {
	snapshots, err := m.api.Forecast(loc.ID)
	if err != nil {
		m.printf("\nError getting forecast: %v\n\n", err)
		return
	}
	if len(snapshots) == 0 {
		readings, err := m.provider.Forecast(ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			m.printf("\nError getting forecast: %v\n\n", err)
			return
		}
		if err := m.api.StoreForecast(loc.ID, readings); err != nil {
			m.printf("\nFailed to store forecast data: %v\n\n", err)
			return
		}
		if snapshots, err = m.api.Forecast(loc.ID); err != nil {
			m.printf("\nFailed to fetch stored forecast data: %v\n\n", err)
			return
		}
	}

	m.printf("\nWeather Forecast:\n")
	for _, f := range snapshots {
		m.printf("\nDate: %s\n", time.Unix(f.Timestamp, 0).Format("2006-01-02"))
		m.printf("Temperature: %.1f°C\n", f.Temperature)
		m.printf("Description: %s\n", f.Description)
		m.printf("-------------------\n")
	}
}

// showHistory prints the last 3 hours of stored history, newest first.
func (m *Menu) showHistory(ctx context.Context, loc model.FavoriteLocation) {
	snapshots, err := m.api.History(loc.ID)
	if err != nil {
		m.printf("\nError getting history: %v\n\n", err)
		return
	}
	if len(snapshots) == 0 {
		readings, err := m.provider.History(ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			m.printf("\nError getting history: %v\n\n", err)
			return
		}
		if err := m.api.StoreHistory(loc.ID, readings); err != nil {
			m.printf("\nFailed to store history data: %v\n\n", err)
			return
		}
		if snapshots, err = m.api.History(loc.ID); err != nil {
			m.printf("\nFailed to fetch stored history data: %v\n\n", err)
			return
		}
	}

	m.printf("\nWeather History (Last 3 Hours):\n")
	if len(snapshots) > 3 {
		snapshots = snapshots[:3]
	}
	for _, h := range snapshots {
		m.printf("\nTime: %s\n", time.Unix(h.Timestamp, 0).Format("2006-01-02 15:04"))
		m.printf("Temperature: %.1f°C\n", h.Temperature)
		m.printf("Description: %s\n", h.Description)
		m.printf("-------------------\n")
	}
}

func (m *Menu) removeFavorite() {
	m.printf("\nHere are your current locations:\n\n")
	locations := m.listFavorites()
	if len(locations) == 0 {
		return
	}

	idStr, ok := m.prompt("\nEnter the ID number of the location you would like to remove: ")
	if !ok {
		return
	}
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		m.printf("\nFailed to remove location. Please make sure you entered a valid ID number.\n\n")
		return
	}
	if err := m.api.RemoveFavorite(uint(id)); err != nil {
		m.printf("\nFailed to remove location. Please make sure you entered a valid ID number.\n\n")
		return
	}
	m.printf("\nLocation removed from favorites.\n\n")
}
