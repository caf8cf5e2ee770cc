package wire

// MessageEntityClass is one inline annotation span over message text.
// EntityUnknown stands in for kinds outside the recognized set; consumers
// drop it without failing the message.
type MessageEntityClass interface {
	sealedMessageEntity()
	// Span returns the annotated UTF-16 offset and length.
	Span() (offset, length int)
}

// EntityMention is an @username mention.
type EntityMention struct{ Offset, Length int }

// EntityHashtag is a #hashtag.
type EntityHashtag struct{ Offset, Length int }

// EntityBotCommand is a /command.
type EntityBotCommand struct{ Offset, Length int }

// EntityURL is a bare URL.
type EntityURL struct{ Offset, Length int }

// EntityEmail is an email address.
type EntityEmail struct{ Offset, Length int }

// EntityBold is bold formatting.
type EntityBold struct{ Offset, Length int }

// EntityItalic is italic formatting.
type EntityItalic struct{ Offset, Length int }

// EntityCode is inline monospace formatting.
type EntityCode struct{ Offset, Length int }

// EntityPre is a preformatted block.
type EntityPre struct {
	Offset, Length int
	Language       string
}

// EntityTextURL is text hiding a URL.
type EntityTextURL struct {
	Offset, Length int
	URL            string
}

// EntityMentionName mentions a user without a username, by id.
type EntityMentionName struct {
	Offset, Length int
	UserID         int64
}

// EntityUnknown is any annotation kind this schema revision does not model.
type EntityUnknown struct{ Offset, Length int }

func (*EntityMention) sealedMessageEntity()     {}
func (*EntityHashtag) sealedMessageEntity()     {}
func (*EntityBotCommand) sealedMessageEntity()  {}
func (*EntityURL) sealedMessageEntity()         {}
func (*EntityEmail) sealedMessageEntity()       {}
func (*EntityBold) sealedMessageEntity()        {}
func (*EntityItalic) sealedMessageEntity()      {}
func (*EntityCode) sealedMessageEntity()        {}
func (*EntityPre) sealedMessageEntity()         {}
func (*EntityTextURL) sealedMessageEntity()     {}
func (*EntityMentionName) sealedMessageEntity() {}
func (*EntityUnknown) sealedMessageEntity()     {}

// Span implements MessageEntityClass.
func (e *EntityMention) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityHashtag) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityBotCommand) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityURL) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityEmail) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityBold) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityItalic) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityCode) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityPre) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityTextURL) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityMentionName) Span() (int, int) { return e.Offset, e.Length }

// Span implements MessageEntityClass.
func (e *EntityUnknown) Span() (int, int) { return e.Offset, e.Length }
