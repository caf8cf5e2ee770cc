package wire

// ActionClass is the chat-management event carried by a service message.
// ActionUnknown stands in for kinds outside the recognized set; consumers
// leave every service field absent for it.
type ActionClass interface {
	sealedAction()
}

// ActionChatAddUser records members added to a group.
type ActionChatAddUser struct {
	Users []int64
}

// ActionChatJoinedByLink records a member joining through an invite link.
type ActionChatJoinedByLink struct {
	InviterID int64
}

// ActionChatDeleteUser records a member removed from a group.
type ActionChatDeleteUser struct {
	UserID int64
}

// ActionChatEditTitle records a chat title change.
type ActionChatEditTitle struct {
	Title string
}

// ActionChatEditPhoto records a chat photo change.
type ActionChatEditPhoto struct {
	Photo *Photo
}

// ActionChatDeletePhoto records a chat photo removal.
type ActionChatDeletePhoto struct{}

// ActionChatMigrateTo records a basic group upgrading to a supergroup.
type ActionChatMigrateTo struct {
	ChannelID int64
}

// ActionChannelMigrateFrom records the supergroup side of an upgrade.
type ActionChannelMigrateFrom struct {
	Title  string
	ChatID int64
}

// ActionChatCreate records a basic group creation.
type ActionChatCreate struct {
	Title string
	Users []int64
}

// ActionChannelCreate records a channel or supergroup creation.
type ActionChannelCreate struct {
	Title string
}

// ActionPinMessage records a message being pinned; the pinned target is the
// service message's reply reference.
type ActionPinMessage struct{}

// ActionUnknown is any event kind this schema revision does not model.
type ActionUnknown struct{}

func (*ActionChatAddUser) sealedAction()        {}
func (*ActionChatJoinedByLink) sealedAction()   {}
func (*ActionChatDeleteUser) sealedAction()     {}
func (*ActionChatEditTitle) sealedAction()      {}
func (*ActionChatEditPhoto) sealedAction()      {}
func (*ActionChatDeletePhoto) sealedAction()    {}
func (*ActionChatMigrateTo) sealedAction()      {}
func (*ActionChannelMigrateFrom) sealedAction() {}
func (*ActionChatCreate) sealedAction()         {}
func (*ActionChannelCreate) sealedAction()      {}
func (*ActionPinMessage) sealedAction()         {}
func (*ActionUnknown) sealedAction()            {}
