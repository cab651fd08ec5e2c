package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/elitepicks/picksbot/internal/digest"
)

// Dispatcher delivers digest bodies with Markdown-rejection fallback and a
// minimum interval between sends (Telegram allows roughly 30 msg/min per
// chat before answering 429).
type Dispatcher struct {
	sender MessageSender
	pause  time.Duration

	mu       sync.Mutex
	lastSend time.Time
}

func NewDispatcher(sender MessageSender, sendInterval time.Duration) *Dispatcher {
	return &Dispatcher{sender: sender, pause: sendInterval}
}

// Deliver posts the rich Markdown body to the channel. When Telegram rejects
// the formatting, the markup is stripped and the plain body is resent once;
// any other error, and any error on the resend, surfaces to the caller.
func (d *Dispatcher) Deliver(ctx context.Context, channel, body string) error {
	if err := d.waitTurn(ctx); err != nil {
		return err
	}
	err := d.sender.Send(channel, body, true)
	if err == nil {
		return nil
	}
	if !IsFormatRejected(err) {
		return fmt.Errorf("rich send: %w", err)
	}

	slog.Warn("Markdown rejected, resending as plain text", "channel", channel, "error", err)
	if err := d.waitTurn(ctx); err != nil {
		return err
	}
	if err := d.sender.Send(channel, digest.StripMarkup(body), false); err != nil {
		return fmt.Errorf("plain resend: %w", err)
	}
	return nil
}

// waitTurn enforces the minimum spacing between consecutive sends.
func (d *Dispatcher) waitTurn(ctx context.Context) error {
	d.mu.Lock()
	elapsed := time.Since(d.lastSend)
	if elapsed < d.pause && !d.lastSend.IsZero() {
		wait := d.pause - elapsed
		d.mu.Unlock()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
		d.mu.Lock()
	}
	d.lastSend = time.Now()
	d.mu.Unlock()
	return nil
}

// IsFormatRejected reports whether the error is Telegram refusing the
// Markdown body, as opposed to a transport or authorization failure.
func IsFormatRejected(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "can't parse entities") {
		return true
	}
	return strings.Contains(msg, "bad request") && strings.Contains(msg, "parse")
}
