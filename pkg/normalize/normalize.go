// Package normalize turns raw wire records into the normalized telemap
// entities. All transformation is synchronous and side-effect-free except
// two injected collaborator calls: fetching a referenced (replied-to or
// pinned) message and resolving a sticker-set name. Inputs, including the
// id-keyed user and chat tables, are call-scoped and never mutated.
package normalize

import (
	"context"
	"log/slog"
	"time"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

// MessageFetcher retrieves an already-normalized message by chat and
// message id. A miss is reported as telemap.ErrMessageNotFound.
type MessageFetcher interface {
	FetchMessage(ctx context.Context, chatID int64, messageID int) (*telemap.Message, error)
}

// StickerSetResolver resolves a sticker set's short name from its
// reference. A miss is reported as telemap.ErrStickerSetNotFound.
type StickerSetResolver interface {
	ResolveStickerSet(ctx context.Context, set wire.InputStickerSetID) (string, error)
}

// Normalizer maps raw messages, users and chats onto normalized entities.
// The zero collaborators are valid: without a fetcher, reply and pinned
// targets stay unresolved; without a sticker resolver, set names stay
// absent.
type Normalizer struct {
	fetcher  MessageFetcher
	stickers StickerSetResolver
	logger   *slog.Logger
}

// Option mutates Normalizer construction.
type Option func(*Normalizer)

// WithMessageFetcher installs the reply/pinned target lookup collaborator.
func WithMessageFetcher(fetcher MessageFetcher) Option {
	return func(n *Normalizer) {
		n.fetcher = fetcher
	}
}

// WithStickerSetResolver installs the sticker-set lookup collaborator.
func WithStickerSetResolver(resolver StickerSetResolver) Option {
	return func(n *Normalizer) {
		n.stickers = resolver
	}
}

// WithLogger installs a logger for degradation-path diagnostics. Without
// one the normalizer is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.logger = logger
	}
}

// New creates a Normalizer.
func New(options ...Option) *Normalizer {
	n := &Normalizer{}
	for _, option := range options {
		option(n)
	}

	return n
}

func (n *Normalizer) debug(msg string, args ...any) {
	if n.logger == nil {
		return
	}
	n.logger.Debug(msg, args...)
}

func timeFromUnix(value int) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.Unix(int64(value), 0).UTC()
}
