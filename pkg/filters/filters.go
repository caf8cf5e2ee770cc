// Package filters provides side-effect-free message predicates for routing
// normalized messages to handlers. Filters are plain values composed with
// And, Or and Not; nothing here is registered globally or mutated after
// construction.
package filters

import (
	"regexp"
	"strings"

	"telemap/pkg/telemap"
)

// Filter reports whether a normalized message matches.
type Filter func(*telemap.Message) bool

// And matches when both f and other match.
func (f Filter) And(other Filter) Filter {
	return func(m *telemap.Message) bool {
		return f(m) && other(m)
	}
}

// Or matches when f or other matches.
func (f Filter) Or(other Filter) Filter {
	return func(m *telemap.Message) bool {
		return f(m) || other(m)
	}
}

// Not inverts f.
func (f Filter) Not() Filter {
	return func(m *telemap.Message) bool {
		return !f(m)
	}
}

var (
	// Text matches plain text messages that are not commands.
	Text Filter = func(m *telemap.Message) bool {
		return m.Text != "" && !strings.HasPrefix(m.Text, "/")
	}
	// Reply matches replies to other messages.
	Reply Filter = func(m *telemap.Message) bool { return m.ReplyToMessage != nil }
	// Forwarded matches forwarded messages.
	Forwarded Filter = func(m *telemap.Message) bool { return !m.ForwardDate.IsZero() }
	// Caption matches media messages carrying a caption.
	Caption Filter = func(m *telemap.Message) bool { return m.Caption != "" }
	// Edited matches edited messages.
	Edited Filter = func(m *telemap.Message) bool { return !m.EditDate.IsZero() }

	// Audio matches music track messages.
	Audio Filter = func(m *telemap.Message) bool { return m.Audio != nil }
	// Document matches generic document messages.
	Document Filter = func(m *telemap.Message) bool { return m.Document != nil }
	// Photo matches photo messages.
	Photo Filter = func(m *telemap.Message) bool { return m.Photo != nil }
	// Sticker matches sticker messages.
	Sticker Filter = func(m *telemap.Message) bool { return m.Sticker != nil }
	// Video matches video messages.
	Video Filter = func(m *telemap.Message) bool { return m.Video != nil }
	// Voice matches voice note messages.
	Voice Filter = func(m *telemap.Message) bool { return m.Voice != nil }
	// VideoNote matches round video note messages.
	VideoNote Filter = func(m *telemap.Message) bool { return m.VideoNote != nil }
	// Contact matches shared contact messages.
	Contact Filter = func(m *telemap.Message) bool { return m.Contact != nil }
	// Location matches location messages.
	Location Filter = func(m *telemap.Message) bool { return m.Location != nil }
	// Venue matches venue messages.
	Venue Filter = func(m *telemap.Message) bool { return m.Venue != nil }

	// Private matches messages from one-to-one chats.
	Private Filter = func(m *telemap.Message) bool {
		return m.Chat != nil && m.Chat.Type == telemap.ChatTypePrivate
	}
	// Group matches messages from basic groups and supergroups.
	Group Filter = func(m *telemap.Message) bool {
		return m.Chat != nil && (m.Chat.Type == telemap.ChatTypeGroup || m.Chat.Type == telemap.ChatTypeSupergroup)
	}
	// Channel matches messages from broadcast channels.
	Channel Filter = func(m *telemap.Message) bool {
		return m.Chat != nil && m.Chat.Type == telemap.ChatTypeChannel
	}

	// NewChatMembers matches member-added service messages.
	NewChatMembers Filter = func(m *telemap.Message) bool { return len(m.NewChatMembers) > 0 }
	// LeftChatMember matches member-removed service messages.
	LeftChatMember Filter = func(m *telemap.Message) bool { return m.LeftChatMember != nil }
	// NewChatTitle matches title-changed service messages.
	NewChatTitle Filter = func(m *telemap.Message) bool { return m.NewChatTitle != "" }
	// NewChatPhoto matches photo-changed service messages.
	NewChatPhoto Filter = func(m *telemap.Message) bool { return m.NewChatPhoto != nil }
	// DeleteChatPhoto matches photo-removed service messages.
	DeleteChatPhoto Filter = func(m *telemap.Message) bool { return m.DeleteChatPhoto }
	// GroupChatCreated matches group-created service messages.
	GroupChatCreated Filter = func(m *telemap.Message) bool { return m.GroupChatCreated }
	// ChannelChatCreated matches channel-created service messages.
	ChannelChatCreated Filter = func(m *telemap.Message) bool { return m.ChannelChatCreated }
	// MigrateToChatID matches group-upgraded service messages.
	MigrateToChatID Filter = func(m *telemap.Message) bool { return m.MigrateToChatID != 0 }
	// MigrateFromChatID matches the supergroup side of an upgrade.
	MigrateFromChatID Filter = func(m *telemap.Message) bool { return m.MigrateFromChatID != 0 }
	// PinnedMessage matches message-pinned service messages.
	PinnedMessage Filter = func(m *telemap.Message) bool { return m.PinnedMessage != nil }

	// Service matches any chat-management service message.
	Service Filter = func(m *telemap.Message) bool { return m.IsService() }
	// Media matches any message carrying a media field.
	Media Filter = func(m *telemap.Message) bool { return m.HasMedia() }
)

// Command matches text messages invoking one of the given slash commands,
// with or without leading slash in the argument.
func Command(commands ...string) Filter {
	names := make(map[string]struct{}, len(commands))
	for _, command := range commands {
		names[strings.TrimPrefix(command, "/")] = struct{}{}
	}

	return func(m *telemap.Message) bool {
		if m.Text == "" || !strings.HasPrefix(m.Text, "/") {
			return false
		}
		invoked := strings.Fields(m.Text[1:])
		if len(invoked) == 0 {
			return false
		}
		_, ok := names[invoked[0]]
		return ok
	}
}

// Regex matches messages whose text or caption matches the pattern.
func Regex(pattern string) (Filter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return func(m *telemap.Message) bool {
		if m.Text != "" {
			return re.MatchString(m.Text)
		}
		return m.Caption != "" && re.MatchString(m.Caption)
	}, nil
}

// User matches messages sent by one of the given user ids.
func User(ids ...int64) Filter {
	set := idSet(ids)

	return func(m *telemap.Message) bool {
		if m.FromUser == nil {
			return false
		}
		_, ok := set[m.FromUser.ID]
		return ok
	}
}

// Username matches messages sent by one of the given usernames, with or
// without leading @.
func Username(usernames ...string) Filter {
	set := nameSet(usernames)

	return func(m *telemap.Message) bool {
		if m.FromUser == nil || m.FromUser.Username == "" {
			return false
		}
		_, ok := set[strings.ToLower(m.FromUser.Username)]
		return ok
	}
}

// Chat matches messages sent in one of the given chat ids.
func Chat(ids ...int64) Filter {
	set := idSet(ids)

	return func(m *telemap.Message) bool {
		if m.Chat == nil {
			return false
		}
		_, ok := set[m.Chat.ID]
		return ok
	}
}

// ChatUsername matches messages sent in one of the given public chat
// usernames, with or without leading @.
func ChatUsername(usernames ...string) Filter {
	set := nameSet(usernames)

	return func(m *telemap.Message) bool {
		if m.Chat == nil || m.Chat.Username == "" {
			return false
		}
		_, ok := set[strings.ToLower(m.Chat.Username)]
		return ok
	}
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func nameSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(strings.TrimPrefix(name, "@"))] = struct{}{}
	}
	return set
}
