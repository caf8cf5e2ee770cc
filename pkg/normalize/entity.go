package normalize

import (
	"fmt"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// entities maps raw annotation spans onto normalized ones, preserving
// order. Unrecognized kinds are dropped, so the result may be shorter than
// the input.
func (n *Normalizer) entities(raw []wire.MessageEntityClass, users map[int64]*wire.User) []telemap.MessageEntity {
	if len(raw) == 0 {
		return nil
	}

	out := make([]telemap.MessageEntity, 0, len(raw))
	for _, entity := range raw {
		if entity == nil {
			continue
		}
		offset, length := entity.Span()
		span := telemap.MessageEntity{Offset: offset, Length: length}

		switch typed := entity.(type) {
		case *wire.EntityMention:
			span.Type = telemap.EntityTypeMention
		case *wire.EntityHashtag:
			span.Type = telemap.EntityTypeHashtag
		case *wire.EntityBotCommand:
			span.Type = telemap.EntityTypeBotCommand
		case *wire.EntityURL:
			span.Type = telemap.EntityTypeURL
		case *wire.EntityEmail:
			span.Type = telemap.EntityTypeEmail
		case *wire.EntityBold:
			span.Type = telemap.EntityTypeBold
		case *wire.EntityItalic:
			span.Type = telemap.EntityTypeItalic
		case *wire.EntityCode:
			span.Type = telemap.EntityTypeCode
		case *wire.EntityPre:
			span.Type = telemap.EntityTypePre
		case *wire.EntityTextURL:
			span.Type = telemap.EntityTypeTextLink
			span.URL = typed.URL
		case *wire.EntityMentionName:
			span.Type = telemap.EntityTypeTextMention
			span.User = n.User(users[typed.UserID])
		default:
			n.debug("dropping unrecognized text entity", "kind", fmt.Sprintf("%T", entity))
			continue
		}

		out = append(out, span)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
