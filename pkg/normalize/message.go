package normalize

import (
	"context"
	"fmt"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// Message normalizes a raw content message against the call-scoped user and
// chat tables. Text lands in Caption when the message carries media, in
// Text otherwise; span annotations follow it. A reply reference triggers
// one collaborator lookup whose failure propagates to the caller.
func (n *Normalizer) Message(
	ctx context.Context,
	raw *wire.Message,
	users map[int64]*wire.User,
	chats map[int64]wire.ChatClass,
) (*telemap.Message, error) {
	if raw == nil {
		return nil, fmt.Errorf("normalize message: nil record: %w", telemap.ErrBadRecord)
	}

	chat, err := n.chatFromPeer(raw.PeerID, raw.Out, raw.FromID, users, chats)
	if err != nil {
		return nil, fmt.Errorf("normalize message %d: %w", raw.ID, err)
	}

	parts, err := n.media(ctx, raw.Media)
	if err != nil {
		return nil, fmt.Errorf("normalize message %d: %w", raw.ID, err)
	}

	m := &telemap.Message{
		ID:              raw.ID,
		Date:            timeFromUnix(raw.Date),
		Chat:            chat,
		FromUser:        n.User(users[raw.FromID]),
		AuthorSignature: raw.PostAuthor,
		EditDate:        timeFromUnix(raw.EditDate),
		MediaGroupID:    raw.GroupedID,
		Views:           raw.Views,
		ViaBot:          n.User(users[raw.ViaBotID]),
	}
	parts.apply(m)

	spans := n.entities(raw.Entities, users)
	if m.HasMedia() {
		m.Caption = raw.Text
		m.CaptionEntities = spans
	} else {
		m.Text = raw.Text
		m.Entities = spans
	}

	if err := n.forward(m, raw.FwdFrom, users, chats); err != nil {
		return nil, fmt.Errorf("normalize message %d: %w", raw.ID, err)
	}

	if raw.ReplyToMsgID != 0 && n.fetcher != nil {
		reply, err := n.fetcher.FetchMessage(ctx, chat.ID, raw.ReplyToMsgID)
		if err != nil {
			return nil, fmt.Errorf("normalize message %d: resolve reply target %d: %w", raw.ID, raw.ReplyToMsgID, err)
		}
		m.ReplyToMessage = reply
	}

	return m, nil
}

// forward copies forwarded-message provenance: either the original sender
// or the original channel with post id and signature, never both.
func (n *Normalizer) forward(
	m *telemap.Message,
	header *wire.FwdHeader,
	users map[int64]*wire.User,
	chats map[int64]wire.ChatClass,
) error {
	if header == nil {
		return nil
	}

	m.ForwardDate = timeFromUnix(header.Date)

	if header.FromID != 0 {
		user, ok := users[header.FromID]
		if !ok {
			return fmt.Errorf("resolve forward origin: user %d missing from table: %w", header.FromID, telemap.ErrBadRecord)
		}
		m.ForwardFrom = n.User(user)
		return nil
	}

	raw, ok := chats[header.ChannelID]
	if !ok {
		return fmt.Errorf("resolve forward origin: channel %d missing from table: %w", header.ChannelID, telemap.ErrBadRecord)
	}
	channel, ok := raw.(*wire.Channel)
	if !ok {
		return fmt.Errorf("resolve forward origin %d: record is %T, want channel: %w", header.ChannelID, raw, telemap.ErrBadRecord)
	}

	m.ForwardFromChat = n.channelChat(channel)
	m.ForwardFromMessageID = header.ChannelPost
	m.ForwardSignature = header.PostAuthor

	return nil
}

// EmptyMessage normalizes an empty placeholder: only the id survives, date
// and chat stay absent. Nil in, nil out.
func (n *Normalizer) EmptyMessage(raw *wire.MessageEmpty) *telemap.Message {
	if raw == nil {
		return nil
	}
	return &telemap.Message{ID: raw.ID}
}
