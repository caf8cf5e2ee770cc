package normalize

import "telemap/pkg/wire"

// BuildUserTable indexes raw user records by id for one normalization call.
func BuildUserTable(users ...*wire.User) map[int64]*wire.User {
	if len(users) == 0 {
		return nil
	}

	out := make(map[int64]*wire.User, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		out[user.ID] = user
	}

	return out
}

// BuildChatTable indexes raw group and channel records by their raw id for
// one normalization call.
func BuildChatTable(chats ...wire.ChatClass) map[int64]wire.ChatClass {
	if len(chats) == 0 {
		return nil
	}

	out := make(map[int64]wire.ChatClass, len(chats))
	for _, chat := range chats {
		if chat == nil {
			continue
		}
		out[chat.ChatID()] = chat
	}

	return out
}
