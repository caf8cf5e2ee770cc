package wire

// MessageClass is a raw message record: ordinary content, a chat-management
// service event, or an empty placeholder. Closed set.
type MessageClass interface {
	sealedMessage()
	// MessageID returns the message id within its numbering space.
	MessageID() int
}

// Message is an ordinary content message. Zero-valued optional fields mean
// the corresponding wire flag was unset.
type Message struct {
	ID           int
	Out          bool
	FromID       int64
	PeerID       PeerClass
	FwdFrom      *FwdHeader
	ViaBotID     int64
	ReplyToMsgID int
	Date         int
	Text         string
	Media        MediaClass
	Entities     []MessageEntityClass
	Views        int
	EditDate     int
	PostAuthor   string
	GroupedID    int64
}

// MessageService is a chat-management event message.
type MessageService struct {
	ID           int
	Out          bool
	FromID       int64
	PeerID       PeerClass
	ReplyToMsgID int
	Date         int
	Action       ActionClass
}

// MessageEmpty is a placeholder for a message that no longer exists.
type MessageEmpty struct {
	ID int
}

func (*Message) sealedMessage()        {}
func (*MessageService) sealedMessage() {}
func (*MessageEmpty) sealedMessage()   {}

// MessageID implements MessageClass.
func (m *Message) MessageID() int { return m.ID }

// MessageID implements MessageClass.
func (m *MessageService) MessageID() int { return m.ID }

// MessageID implements MessageClass.
func (m *MessageEmpty) MessageID() int { return m.ID }

// FwdHeader carries forwarded-message provenance: either the original
// sender (FromID set) or the original channel with post id and optional
// author signature, never both.
type FwdHeader struct {
	Date        int
	FromID      int64
	ChannelID   int64
	ChannelPost int
	PostAuthor  string
}
