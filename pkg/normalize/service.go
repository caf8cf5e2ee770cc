package normalize

import (
	"context"
	"fmt"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// ServiceMessage normalizes a raw chat-management message. Exactly one
// service field of the result is populated, chosen by the action variant; a
// pin action triggers one collaborator lookup for the pinned target, whose
// failure propagates to the caller.
func (n *Normalizer) ServiceMessage(
	ctx context.Context,
	raw *wire.MessageService,
	users map[int64]*wire.User,
	chats map[int64]wire.ChatClass,
) (*telemap.Message, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalize service message: nil record: %w", telemap.ErrBadRecord)
	}

	chat, err := n.chatFromPeer(raw.PeerID, raw.Out, raw.FromID, users, chats)
	if err != nil {
		return nil, fmt.Errorf("normalize service message %d: %w", raw.ID, err)
	}

	m := &telemap.Message{
		ID:       raw.ID,
		Date:     timeFromUnix(raw.Date),
		Chat:     chat,
		FromUser: n.User(users[raw.FromID]),
	}

	if err := n.applyAction(m, raw, users); err != nil {
		return nil, fmt.Errorf("normalize service message %d: %w", raw.ID, err)
	}

	if _, pinned := raw.Action.(*wire.ActionPinMessage); pinned && raw.ReplyToMsgID != 0 && n.fetcher != nil {
		target, err := n.fetcher.FetchMessage(ctx, chat.ID, raw.ReplyToMsgID)
		if err != nil {
			return nil, fmt.Errorf("normalize service message %d: resolve pinned target %d: %w", raw.ID, raw.ReplyToMsgID, err)
		}
		m.PinnedMessage = target
	}

	return m, nil
}

func (n *Normalizer) applyAction(m *telemap.Message, raw *wire.MessageService, users map[int64]*wire.User) error {
	switch action := raw.Action.(type) {
	case *wire.ActionChatAddUser:
		members := make([]*telemap.User, 0, len(action.Users))
		for _, id := range action.Users {
			user, ok := users[id]
			if !ok {
				return fmt.Errorf("resolve added member: user %d missing from table: %w", id, telemap.ErrBadRecord)
			}
			members = append(members, n.User(user))
		}
		m.NewChatMembers = members
	case *wire.ActionChatJoinedByLink:
		user, ok := users[raw.FromID]
		if !ok {
			return fmt.Errorf("resolve joining member: user %d missing from table: %w", raw.FromID, telemap.ErrBadRecord)
		}
		m.NewChatMembers = []*telemap.User{n.User(user)}
	case *wire.ActionChatDeleteUser:
		user, ok := users[action.UserID]
		if !ok {
			return fmt.Errorf("resolve removed member: user %d missing from table: %w", action.UserID, telemap.ErrBadRecord)
		}
		m.LeftChatMember = n.User(user)
	case *wire.ActionChatEditTitle:
		m.NewChatTitle = action.Title
	case *wire.ActionChatEditPhoto:
		if action.Photo != nil {
			m.NewChatPhoto = n.photo(action.Photo)
		}
	case *wire.ActionChatDeletePhoto:
		m.DeleteChatPhoto = true
	case *wire.ActionChatMigrateTo:
		m.MigrateToChatID = telemap.ChannelChatID(action.ChannelID)
	case *wire.ActionChannelMigrateFrom:
		m.MigrateFromChatID = telemap.GroupChatID(action.ChatID)
	case *wire.ActionChatCreate:
		m.GroupChatCreated = true
	case *wire.ActionChannelCreate:
		m.ChannelChatCreated = true
	case *wire.ActionPinMessage:
		// The pinned target lookup happens in ServiceMessage.
	default:
		n.debug("dropping unrecognized service action", "kind", fmt.Sprintf("%T", raw.Action))
	}

	return nil
}
