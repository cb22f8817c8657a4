package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/donaldgifford/avito-client/internal/metrics"
)

const (
	colorBlue   = 0x3498DB // text
	colorGreen  = 0x2ECC71 // image, item, link
	colorOrange = 0xE67E22 // everything else

	// Discord rejects descriptions longer than 4096 characters.
	maxDescription = 4096
	// Discord allows max 10 embeds per message.
	maxEmbeds = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// NotifyMessage sends a single alert as a Discord embed.
func (d *DiscordNotifier) NotifyMessage(ctx context.Context, alert *MessageAlert) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(alert)},
	}
	return d.post(ctx, payload)
}

// NotifyBatch sends multiple alerts as a single Discord message.
func (d *DiscordNotifier) NotifyBatch(
	ctx context.Context,
	alerts []MessageAlert,
	clientID string,
) error {
	if len(alerts) == 0 {
		return nil
	}

	limit := min(len(alerts), maxEmbeds)
	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&alerts[i]))
	}

	if len(alerts) > maxEmbeds {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more messages for %s", len(alerts)-maxEmbeds, clientID),
			Color:       colorOrange,
			Description: "Open the Avito messenger for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(alert *MessageAlert) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("New message in %s", alert.ChatID),
		URL:         alert.ChatURL,
		Color:       typeColor(alert.Type),
		Description: truncate(alert.Text, maxDescription),
		Fields: []discordEmbedField{
			{Name: "Author", Value: strconv.FormatInt(alert.AuthorID, 10), Inline: true},
			{Name: "Type", Value: alert.Type, Inline: true},
		},
	}

	if alert.ItemID != 0 {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Item", Value: strconv.FormatInt(alert.ItemID, 10), Inline: true,
		})
	}
	if alert.ClientID != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Account", Value: alert.ClientID, Inline: true,
		})
	}
	if !alert.Created.IsZero() {
		embed.Timestamp = alert.Created.UTC().Format(time.RFC3339)
	}
	if alert.ImageURL != "" {
		embed.Thumbnail = &discordThumbnail{URL: alert.ImageURL}
	}

	return embed
}

func typeColor(messageType string) int {
	switch messageType {
	case "text":
		return colorBlue
	case "image", "item", "link":
		return colorGreen
	default:
		return colorOrange
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
