package normalize

import (
	"context"
	"testing"

	"go.uber.org/goleak"

	"telemap/pkg/telemap"
	"telemap/pkg/wire"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fetchCall struct {
	chatID    int64
	messageID int
}

type stubFetcher struct {
	message *telemap.Message
	err     error
	calls   []fetchCall
}

func (s *stubFetcher) FetchMessage(_ context.Context, chatID int64, messageID int) (*telemap.Message, error) {
	s.calls = append(s.calls, fetchCall{chatID: chatID, messageID: messageID})
	if s.err != nil {
		return nil, s.err
	}
	return s.message, nil
}

type stubStickerResolver struct {
	name  string
	err   error
	calls []wire.InputStickerSetID
}

func (s *stubStickerResolver) ResolveStickerSet(_ context.Context, set wire.InputStickerSetID) (string, error) {
	s.calls = append(s.calls, set)
	if s.err != nil {
		return "", s.err
	}
	return s.name, nil
}

func newWireUser(id int64, username, firstName, lastName string, bot bool) *wire.User {
	return &wire.User{
		ID:        id,
		Bot:       bot,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
	}
}

func newLocation(dc int, volume, secret int64, local int) *wire.FileLocation {
	return &wire.FileLocation{
		DCID:     dc,
		VolumeID: volume,
		Secret:   secret,
		LocalID:  local,
	}
}

func newGroupMessage(id int, chatID, fromID int64) *wire.Message {
	return &wire.Message{
		ID:     id,
		FromID: fromID,
		PeerID: &wire.PeerChat{ChatID: chatID},
		Date:   1_700_000_000,
	}
}
