package telemap

import "testing"

func TestChannelChatID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		channelID int64
		want      int64
	}{
		{name: "small id", channelID: 555, want: -100555},
		{name: "realistic id", channelID: 1012345678, want: -1001012345678},
		{name: "single digit", channelID: 1, want: -1001},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if got := ChannelChatID(test.channelID); got != test.want {
				t.Fatalf("ChannelChatID(%d) = %d, want %d", test.channelID, got, test.want)
			}
		})
	}
}

func TestChannelChatIDBelowGroupRange(t *testing.T) {
	t.Parallel()

	// Server-assigned channel ids are at least ten digits, which keeps
	// composite ids below any negated basic-group id.
	const threshold = int64(-1_000_000_000_000)

	if got := ChannelChatID(1_000_000_000); got > threshold {
		t.Fatalf("ChannelChatID(1e9) = %d, want <= %d", got, threshold)
	}
}

func TestGroupChatID(t *testing.T) {
	t.Parallel()

	if got := GroupChatID(12345); got != -12345 {
		t.Fatalf("GroupChatID(12345) = %d, want -12345", got)
	}
}
