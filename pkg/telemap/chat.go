package telemap

import "strconv"

// ChatType tags the normalized chat kind.
type ChatType string

const (
	// ChatTypePrivate is a one-to-one conversation.
	ChatTypePrivate ChatType = "private"
	// ChatTypeGroup is a basic group.
	ChatTypeGroup ChatType = "group"
	// ChatTypeSupergroup is an upgraded (mega)group.
	ChatTypeSupergroup ChatType = "supergroup"
	// ChatTypeChannel is a broadcast channel.
	ChatTypeChannel ChatType = "channel"
)

// channelIDPrefix is the decimal prefix gluing channel ids into the shared
// chat-id numbering space.
const channelIDPrefix = "-100"

// ChannelChatID translates a raw channel/supergroup id into the composite
// chat id: the decimal concatenation of the fixed prefix with the raw id,
// reparsed as a signed integer. Receivers resolving the chat must reproduce
// this exactly, sign included.
func ChannelChatID(channelID int64) int64 {
	id, err := strconv.ParseInt(channelIDPrefix+strconv.FormatInt(channelID, 10), 10, 64)
	if err != nil {
		// Only reachable past raw ids of 13 decimal digits, beyond the
		// server's id space.
		return 0
	}
	return id
}

// GroupChatID translates a raw basic-group id into its chat id.
func GroupChatID(chatID int64) int64 {
	return -chatID
}

// Chat is a normalized conversation entity. Which optional fields are set
// depends on Type: private chats carry user naming fields, groups and
// channels carry a title.
type Chat struct {
	ID    int64
	Type  ChatType
	Title string
	// Username is set for private chats and public channels/supergroups.
	Username  string
	FirstName string
	LastName  string
	// AllMembersAreAdministrators is meaningful for basic groups only.
	AllMembersAreAdministrators bool
	Photo                       *ChatPhoto
}
