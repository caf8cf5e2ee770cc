package wire

// ChatClass is a raw group-like record as found in the caller-supplied chat
// table: a basic group or a channel/supergroup. Closed set.
type ChatClass interface {
	sealedChat()
	// ChatID returns the raw (untranslated) id the record is keyed by.
	ChatID() int64
}

// Chat is a raw basic group.
type Chat struct {
	ID            int64
	Title         string
	AdminsEnabled bool
	Photo         *ChatPhoto
}

// Channel is a raw channel or supergroup. Megagroup distinguishes the two.
type Channel struct {
	ID        int64
	Title     string
	Username  string
	Megagroup bool
	Photo     *ChatPhoto
}

func (*Chat) sealedChat()    {}
func (*Channel) sealedChat() {}

// ChatID implements ChatClass.
func (c *Chat) ChatID() int64 { return c.ID }

// ChatID implements ChatClass.
func (c *Channel) ChatID() int64 { return c.ID }

// ChatPhoto carries the small and big chat picture locations.
type ChatPhoto struct {
	PhotoSmall FileLocationClass
	PhotoBig   FileLocationClass
}
