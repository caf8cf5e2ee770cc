package telemap

import "errors"

var (
	// ErrMessageNotFound indicates a referenced (replied-to or pinned)
	// message could not be retrieved. Surfaced to callers, never masked.
	ErrMessageNotFound = errors.New("telemap: referenced message not found")
	// ErrStickerSetNotFound indicates a sticker-set lookup miss. The
	// normalizer degrades to an absent set name on it.
	ErrStickerSetNotFound = errors.New("telemap: sticker set not found")
	// ErrBadRecord indicates a raw record violating the upstream decoder's
	// contract: a required sub-field is structurally absent for its
	// variant, or a table lookup the variant mandates has no entry.
	ErrBadRecord = errors.New("telemap: malformed raw record")
)
