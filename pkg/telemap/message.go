package telemap

import "time"

// Message is the normalized message entity. At most one of Text and Caption
// is set: media messages carry their text as Caption. At most one media
// field (Photo, Location, Contact, Venue, Audio, Voice, Video, VideoNote,
// Sticker, Document) is set; the normalizer enforces both, callers never
// need to re-check.
//
// Service fields (NewChatMembers through PinnedMessage) are mutually
// exclusive too: a service message populates exactly one of them.
type Message struct {
	ID       int
	Date     time.Time
	Chat     *Chat
	FromUser *User

	Text            string
	Caption         string
	Entities        []MessageEntity
	CaptionEntities []MessageEntity
	AuthorSignature string

	ForwardFrom          *User
	ForwardFromChat      *Chat
	ForwardFromMessageID int
	ForwardSignature     string
	ForwardDate          time.Time

	ReplyToMessage *Message
	EditDate       time.Time
	MediaGroupID   int64
	Views          int
	ViaBot         *User

	Photo     Photo
	Location  *Location
	Contact   *Contact
	Venue     *Venue
	Audio     *Audio
	Voice     *Voice
	Video     *Video
	VideoNote *VideoNote
	Sticker   *Sticker
	Document  *Document

	NewChatMembers     []*User
	LeftChatMember     *User
	NewChatTitle       string
	NewChatPhoto       Photo
	DeleteChatPhoto    bool
	MigrateToChatID    int64
	MigrateFromChatID  int64
	GroupChatCreated   bool
	ChannelChatCreated bool
	PinnedMessage      *Message
}

// HasMedia reports whether any media field is set.
func (m *Message) HasMedia() bool {
	return m.Photo != nil ||
		m.Location != nil ||
		m.Contact != nil ||
		m.Venue != nil ||
		m.Audio != nil ||
		m.Voice != nil ||
		m.Video != nil ||
		m.VideoNote != nil ||
		m.Sticker != nil ||
		m.Document != nil
}

// IsService reports whether any chat-management field is set.
func (m *Message) IsService() bool {
	return len(m.NewChatMembers) > 0 ||
		m.LeftChatMember != nil ||
		m.NewChatTitle != "" ||
		m.NewChatPhoto != nil ||
		m.DeleteChatPhoto ||
		m.MigrateToChatID != 0 ||
		m.MigrateFromChatID != 0 ||
		m.GroupChatCreated ||
		m.ChannelChatCreated ||
		m.PinnedMessage != nil
}
