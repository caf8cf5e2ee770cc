package wire

// PeerClass identifies the addressee of a message: a user, a basic group or
// a channel/supergroup. Closed set.
type PeerClass interface {
	sealedPeer()
}

// PeerUser addresses a user by id.
type PeerUser struct {
	UserID int64
}

// PeerChat addresses a basic group by id.
type PeerChat struct {
	ChatID int64
}

// PeerChannel addresses a channel or supergroup by id.
type PeerChannel struct {
	ChannelID int64
}

func (*PeerUser) sealedPeer()    {}
func (*PeerChat) sealedPeer()    {}
func (*PeerChannel) sealedPeer() {}
