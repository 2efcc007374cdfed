// internal/adapters/notify/alerts.go
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shelfwatch/shelfwatch-be/internal/core/ports"
)

// Alert slot key prefix. One key per batch: writing an alert replaces
// whatever was visible for that batch before.
const slotPrefix = "shelfwatch:alert:"

// channelKey marks the one-time notification-surface setup.
const channelKey = "shelfwatch:alert:channel"

// Config holds the dispatcher settings.
type Config struct {
	Environment string
	SlotTTL     time.Duration
	SMTPHost    string
	SMTPPort    string
	SMTPUser    string
	SMTPPass    string
	From        string
	To          string
}

// sendMailFunc matches smtp.SendMail, injectable for tests.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// AlertDispatcher is the user-visible notification surface. Every alert is
// written into a per-batch Redis slot and logged; outside development it is
// additionally relayed over SMTP.
type AlertDispatcher struct {
	client   *redis.Client
	cfg      Config
	logger   *slog.Logger
	sendMail sendMailFunc
}

// Statically assert that *AlertDispatcher implements the Notifier port.
var _ ports.Notifier = (*AlertDispatcher)(nil)

// NewAlertDispatcher creates a new alert dispatcher.
func NewAlertDispatcher(client *redis.Client, cfg Config, logger *slog.Logger) *AlertDispatcher {
	if cfg.SlotTTL <= 0 {
		cfg.SlotTTL = 48 * time.Hour
	}
	return &AlertDispatcher{
		client:   client,
		cfg:      cfg,
		logger:   logger.With(slog.String("component", "alerts")),
		sendMail: smtp.SendMail,
	}
}

// Setup performs the idempotent one-time registration of the alert channel.
func (d *AlertDispatcher) Setup(ctx context.Context) error {
	if err := d.client.SetNX(ctx, channelKey, "expiry", 0).Err(); err != nil {
		return fmt.Errorf("failed to register alert channel: %w", err)
	}
	return nil
}

// Notify shows one dismissible alert. The slot write replaces any alert
// already visible for the same id, collapsing duplicate fires per batch.
func (d *AlertDispatcher) Notify(ctx context.Context, alert ports.Alert) error {
	data, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	key := fmt.Sprintf("%s%d", slotPrefix, alert.ID)
	if err := d.client.Set(ctx, key, data, d.cfg.SlotTTL).Err(); err != nil {
		// The alert should still surface in the log even if the slot write
		// fails.
		d.logger.WarnContext(ctx, "failed to write alert slot",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	d.logger.InfoContext(ctx, "alert shown",
		slog.Int("alert_id", alert.ID),
		slog.String("title", alert.Title),
		slog.String("body", alert.Body))

	if d.cfg.Environment == "development" || d.cfg.SMTPHost == "" {
		return nil
	}
	return d.relay(alert)
}

func (d *AlertDispatcher) relay(alert ports.Alert) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		d.cfg.From, d.cfg.To, alert.Title, alert.Body,
	))

	addr := fmt.Sprintf("%s:%s", d.cfg.SMTPHost, d.cfg.SMTPPort)
	var auth smtp.Auth
	if d.cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", d.cfg.SMTPUser, d.cfg.SMTPPass, d.cfg.SMTPHost)
	}

	if err := d.sendMail(addr, auth, d.cfg.From, []string{d.cfg.To}, msg); err != nil {
		return fmt.Errorf("failed to relay alert: %w", err)
	}
	return nil
}
