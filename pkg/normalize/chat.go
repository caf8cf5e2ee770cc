package normalize

import (
	"fmt"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// Chat resolves the conversation a raw message belongs to, translating the
// raw id into the shared chat-id numbering space.
func (n *Normalizer) Chat(
	msg wire.MessageClass,
	users map[int64]*wire.User,
	chats map[int64]wire.ChatClass,
) (*telemap.Chat, error) {
	switch typed := msg.(type) {
	case *wire.Message:
		return n.chatFromPeer(typed.PeerID, typed.Out, typed.FromID, users, chats)
	case *wire.MessageService:
		return n.chatFromPeer(typed.PeerID, typed.Out, typed.FromID, users, chats)
	case *wire.MessageEmpty:
		return nil, fmt.Errorf("resolve chat of empty message %d: %w", typed.ID, telemap.ErrBadRecord)
	default:
		return nil, fmt.Errorf("resolve chat: unsupported message %T: %w", msg, telemap.ErrBadRecord)
	}
}

func (n *Normalizer) chatFromPeer(
	peer wire.PeerClass,
	out bool,
	fromID int64,
	users map[int64]*wire.User,
	chats map[int64]wire.ChatClass,
) (*telemap.Chat, error) {
	switch typed := peer.(type) {
	case *wire.PeerUser:
		// The counterpart: the recipient for outbound messages, the
		// sender otherwise.
		counterpart := fromID
		if out {
			counterpart = typed.UserID
		}
		user, ok := users[counterpart]
		if !ok {
			return nil, fmt.Errorf("resolve private chat: user %d missing from table: %w", counterpart, telemap.ErrBadRecord)
		}
		return n.userChat(user), nil
	case *wire.PeerChat:
		raw, ok := chats[typed.ChatID]
		if !ok {
			return nil, fmt.Errorf("resolve group chat: chat %d missing from table: %w", typed.ChatID, telemap.ErrBadRecord)
		}
		group, ok := raw.(*wire.Chat)
		if !ok {
			return nil, fmt.Errorf("resolve group chat %d: record is %T, want basic group: %w", typed.ChatID, raw, telemap.ErrBadRecord)
		}
		return n.groupChat(group), nil
	case *wire.PeerChannel:
		raw, ok := chats[typed.ChannelID]
		if !ok {
			return nil, fmt.Errorf("resolve channel chat: channel %d missing from table: %w", typed.ChannelID, telemap.ErrBadRecord)
		}
		channel, ok := raw.(*wire.Channel)
		if !ok {
			return nil, fmt.Errorf("resolve channel chat %d: record is %T, want channel: %w", typed.ChannelID, raw, telemap.ErrBadRecord)
		}
		return n.channelChat(channel), nil
	default:
		return nil, fmt.Errorf("resolve chat: unsupported peer %T: %w", peer, telemap.ErrBadRecord)
	}
}

func (n *Normalizer) userChat(user *wire.User) *telemap.Chat {
	return &telemap.Chat{
		ID:        user.ID,
		Type:      telemap.ChatTypePrivate,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Photo:     n.profilePhoto(user.Photo),
	}
}

func (n *Normalizer) groupChat(chat *wire.Chat) *telemap.Chat {
	return &telemap.Chat{
		ID:    telemap.GroupChatID(chat.ID),
		Type:  telemap.ChatTypeGroup,
		Title: chat.Title,
		// Without the admin restriction every member administrates.
		AllMembersAreAdministrators: !chat.AdminsEnabled,
		Photo:                       n.groupPhoto(chat.Photo),
	}
}

func (n *Normalizer) channelChat(channel *wire.Channel) *telemap.Chat {
	kind := telemap.ChatTypeChannel
	if channel.Megagroup {
		kind = telemap.ChatTypeSupergroup
	}

	return &telemap.Chat{
		ID:       telemap.ChannelChatID(channel.ID),
		Type:     kind,
		Title:    channel.Title,
		Username: channel.Username,
		Photo:    n.groupPhoto(channel.Photo),
	}
}

func (n *Normalizer) groupPhoto(photo *wire.ChatPhoto) *telemap.ChatPhoto {
	if photo == nil {
		return nil
	}
	return n.chatPhoto(photo.PhotoSmall, photo.PhotoBig)
}
