package telemap

// EntityType identifies a normalized text-annotation span kind.
type EntityType string

const (
	// EntityTypeMention is an @username mention.
	EntityTypeMention EntityType = "mention"
	// EntityTypeHashtag is a #hashtag.
	EntityTypeHashtag EntityType = "hashtag"
	// EntityTypeBotCommand is a /command.
	EntityTypeBotCommand EntityType = "bot_command"
	// EntityTypeURL is a bare URL.
	EntityTypeURL EntityType = "url"
	// EntityTypeEmail is an email address.
	EntityTypeEmail EntityType = "email"
	// EntityTypeBold is bold formatting.
	EntityTypeBold EntityType = "bold"
	// EntityTypeItalic is italic formatting.
	EntityTypeItalic EntityType = "italic"
	// EntityTypeCode is inline monospace formatting.
	EntityTypeCode EntityType = "code"
	// EntityTypePre is a preformatted block.
	EntityTypePre EntityType = "pre"
	// EntityTypeTextLink is text hiding a URL.
	EntityTypeTextLink EntityType = "text_link"
	// EntityTypeTextMention mentions a user without a username.
	EntityTypeTextMention EntityType = "text_mention"
)

// MessageEntity is one normalized annotation span. URL is set only for
// text links, User only for text mentions.
type MessageEntity struct {
	Type   EntityType
	Offset int
	Length int
	URL    string
	User   *User
}
