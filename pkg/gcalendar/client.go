package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// maxResultsPerPage is the Calendar API page size cap.
const maxResultsPerPage = 2500

// pagesPerSecond throttles Events.List pagination so long ranges don't
// burn through the per-user quota.
const pagesPerSecond = 5

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
	limiter *rate.Limiter
}

// NewClientFromCredentialsFile creates a Calendar client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	// Try service account first
	config, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err == nil {
		// Service Account path
		tokenSource := config.TokenSource(ctx)
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return newClient(svc), nil
	}

	// Fallback: try OAuth2 installed app credentials
	var oauthCreds struct {
		Installed struct {
			ClientID     string   `json:"client_id"`
			ClientSecret string   `json:"client_secret"`
			RedirectURIs []string `json:"redirect_uris"`
		} `json:"installed"`
	}
	if jsonErr := json.Unmarshal(credentialsJSON, &oauthCreds); jsonErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	oauthConfig := &oauth2.Config{
		ClientID:     oauthCreds.Installed.ClientID,
		ClientSecret: oauthCreds.Installed.ClientSecret,
		Scopes:       []string{calendar.CalendarReadonlyScope},
		Endpoint:     google.Endpoint,
	}

	// For OAuth2 Desktop app: use a static token if token.json exists
	tokenData, tokenErr := os.ReadFile("token.json")
	if tokenErr != nil {
		return nil, fmt.Errorf("google credentials are OAuth Desktop type but no token.json found: use Service Account instead")
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token.json: %w", jsonErr)
	}

	tokenSource := oauthConfig.TokenSource(ctx, &tok)
	svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(tokenSource))
	if svcErr != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", svcErr)
	}

	return newClient(svc), nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc), nil
}

func newClient(svc *calendar.Service) *Client {
	return &Client{
		service: svc,
		limiter: rate.NewLimiter(rate.Limit(pagesPerSecond), 1),
	}
}

// ListEvents returns every event in [TimeMin, TimeMax), following
// pagination until the API reports no next page. Recurring events are
// expanded into single instances.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	var all []Event
	pageToken := ""
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter interrupted: %w", err)
		}

		call := c.service.Events.List(calendarID).
			TimeMin(req.TimeMin.Format("2006-01-02T15:04:05Z07:00")).
			TimeMax(req.TimeMax.Format("2006-01-02T15:04:05Z07:00")).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(maxResultsPerPage).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		result, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar events: %w", err)
		}

		for _, item := range result.Items {
			all = append(all, fromAPIEvent(item))
		}

		pageToken = result.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return all, nil
}

// Timezone returns the calendar's configured IANA timezone name.
func (c *Client) Timezone(ctx context.Context) (string, error) {
	setting, err := c.service.Settings.Get("timezone").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to get calendar timezone setting: %w", err)
	}
	return setting.Value, nil
}

// Colors returns the provider's event color palette keyed by color ID.
func (c *Client) Colors(ctx context.Context) ([]Color, error) {
	palette, err := c.service.Colors.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar colors: %w", err)
	}

	colors := make([]Color, 0, len(palette.Event))
	for id, def := range palette.Event {
		colors = append(colors, Color{
			ID:         id,
			Background: def.Background,
			Foreground: def.Foreground,
		})
	}
	return colors, nil
}

func fromAPIEvent(item *calendar.Event) Event {
	ev := Event{
		ID:        item.Id,
		Summary:   item.Summary,
		ColorID:   item.ColorId,
		EventType: item.EventType,
	}
	if item.Start != nil {
		ev.Start = EventTime{DateTime: item.Start.DateTime, Date: item.Start.Date}
	}
	if item.End != nil {
		ev.End = EventTime{DateTime: item.End.DateTime, Date: item.End.Date}
	}
	return ev
}
