package notify

// Embed colors
const (
	ColorDayCompleted = 0x2ecc71 // Green
	ColorAchievement  = 0xf1c40f // Gold
	ColorDayUnlocked  = 0x3498db // Blue
)

// Embed text
const (
	TitleDayCompleted = "Day %d complete"
	TitleAchievement  = "Achievement unlocked: %s"
	TitleDayUnlocked  = "Day %d is open"

	FooterText = "Foundry90"

	DescDayCompleted = "Builder %s laid another brick."
	DescDayUnlocked  = "Builder %s can start day %d."

	FieldStreak         = "Streak"
	FieldBestStreak     = "Best streak"
	FieldTotalCompleted = "Days completed"
	FieldXP             = "XP awarded"
	FieldNextUnlock     = "Next day unlocks"
	FieldDaysValue      = "%d days"
	FieldXPValue        = "+%d"
)

// Log messages
const (
	LogMsgWebhookFailed   = "Discord webhook delivery failed"
	LogMsgWebhookSent     = "Discord webhook delivered"
	LogMsgPayloadInvalid  = "Notification skipped, payload not decodable"
	LogMsgNotifierLogOnly = "Notification (webhook not configured)"
)

// ShortIDLength is how much of a user id appears in messages
const ShortIDLength = 8
