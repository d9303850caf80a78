// Package notify posts journey milestones to a Discord channel webhook.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/foundry90/internal/domain"
	"github.com/osse101/foundry90/internal/event"
	"github.com/osse101/foundry90/internal/logger"
)

// WebhookSender is the part of a discordgo session used to post messages
type WebhookSender interface {
	WebhookExecute(webhookID, token string, wait bool, data *discordgo.WebhookParams, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier formats domain events as embeds and posts them to one webhook
type Notifier struct {
	sender    WebhookSender
	webhookID string
	token     string
	printer   *message.Printer
}

// New creates a notifier posting through sender
func New(sender WebhookSender, webhookID, token string) *Notifier {
	return &Notifier{
		sender:    sender,
		webhookID: webhookID,
		token:     token,
		printer:   message.NewPrinter(language.English),
	}
}

// NewDiscord creates a notifier backed by a token-less discordgo session.
// Webhook execution authenticates with the webhook token alone.
func NewDiscord(webhookID, token string) (*Notifier, error) {
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return New(s, webhookID, token), nil
}

// Subscribe registers the notifier for milestone events
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.DayCompleted, n.handleDayCompleted)
	bus.Subscribe(event.AchievementUnlocked, n.handleAchievementUnlocked)
}

func (n *Notifier) handleDayCompleted(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.DayCompletedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "type", e.Type, "error", err)
		return nil
	}
	return n.send(ctx, n.dayCompletedEmbed(p))
}

func (n *Notifier) handleAchievementUnlocked(ctx context.Context, e event.Event) error {
	p, err := event.DecodePayload[domain.AchievementUnlockedPayload](e.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadInvalid, "type", e.Type, "error", err)
		return nil
	}
	return n.send(ctx, &discordgo.MessageEmbed{
		Title:       n.printer.Sprintf(TitleAchievement, p.Name),
		Description: shortID(p.UserID),
		Color:       ColorAchievement,
		Timestamp:   time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
	})
}

// NotifyDayUnlocked posts the reminder that a user's next day is open
func (n *Notifier) NotifyDayUnlocked(ctx context.Context, userID string, day int) error {
	return n.send(ctx, &discordgo.MessageEmbed{
		Title:       n.printer.Sprintf(TitleDayUnlocked, day),
		Description: n.printer.Sprintf(DescDayUnlocked, shortID(userID), day),
		Color:       ColorDayUnlocked,
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
	})
}

func (n *Notifier) dayCompletedEmbed(p domain.DayCompletedPayload) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: FieldStreak, Value: n.printer.Sprintf(FieldDaysValue, p.Streak), Inline: true},
		{Name: FieldBestStreak, Value: n.printer.Sprintf(FieldDaysValue, p.BestStreak), Inline: true},
		{Name: FieldTotalCompleted, Value: n.printer.Sprintf("%d", p.TotalCompletedDays), Inline: true},
	}
	if p.XPAwarded > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: FieldXP, Value: n.printer.Sprintf(FieldXPValue, p.XPAwarded), Inline: true,
		})
	}
	if !p.NextDayUnlocksAt.IsZero() {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  FieldNextUnlock,
			Value: fmt.Sprintf("<t:%d:R>", p.NextDayUnlocksAt.Unix()),
		})
	}
	return &discordgo.MessageEmbed{
		Title:       n.printer.Sprintf(TitleDayCompleted, p.Day),
		Description: n.printer.Sprintf(DescDayCompleted, shortID(p.UserID)),
		Color:       ColorDayCompleted,
		Fields:      fields,
		Timestamp:   time.Unix(p.Timestamp, 0).UTC().Format(time.RFC3339),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
	}
}

func (n *Notifier) send(ctx context.Context, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)
	_, err := n.sender.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Error(LogMsgWebhookFailed, "title", embed.Title, "error", err)
		return fmt.Errorf("discord webhook: %w", err)
	}
	log.Debug(LogMsgWebhookSent, "title", embed.Title)
	return nil
}

// LogNotifier stands in for the webhook when none is configured
type LogNotifier struct{}

// NotifyDayUnlocked logs the reminder
func (LogNotifier) NotifyDayUnlocked(ctx context.Context, userID string, day int) error {
	logger.FromContext(ctx).Info(LogMsgNotifierLogOnly, "user_id", userID, "day", day)
	return nil
}

func shortID(userID string) string {
	if len(userID) > ShortIDLength {
		return userID[:ShortIDLength]
	}
	return userID
}
