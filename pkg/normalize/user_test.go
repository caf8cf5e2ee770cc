package normalize

import (
	"testing"

	"telemap/pkg/fileid"
	"telemap/pkg/wire"
)

func TestNormalizerUser(t *testing.T) {
	t.Parallel()

	n := New()

	t.Run("nil in nil out", func(t *testing.T) {
		t.Parallel()

		if got := n.User(nil); got != nil {
			t.Fatalf("User(nil) = %+v, want nil", got)
		}
	})

	t.Run("full mapping", func(t *testing.T) {
		t.Parallel()

		raw := &wire.User{
			ID:        42,
			Bot:       true,
			FirstName: "Alice",
			LastName:  "Liddell",
			Username:  "alice",
			LangCode:  "en",
			Phone:     "+100200300",
			Photo: &wire.UserProfilePhoto{
				PhotoSmall: newLocation(2, 100, 7, 1),
				PhotoBig:   newLocation(2, 100, 8, 2),
			},
		}

		got := n.User(raw)
		if got == nil {
			t.Fatal("expected user")
		}
		if got.ID != 42 || !got.IsBot {
			t.Fatalf("identity = (%d, bot=%v), want (42, bot=true)", got.ID, got.IsBot)
		}
		if got.FirstName != "Alice" || got.LastName != "Liddell" || got.Username != "alice" {
			t.Fatalf("names = (%q, %q, %q)", got.FirstName, got.LastName, got.Username)
		}
		if got.LanguageCode != "en" || got.PhoneNumber != "+100200300" {
			t.Fatalf("contact fields = (%q, %q)", got.LanguageCode, got.PhoneNumber)
		}
		if got.Photo == nil {
			t.Fatal("expected profile photo")
		}

		small, err := fileid.Decode(got.Photo.SmallFileID)
		if err != nil {
			t.Fatalf("decode small file id: %v", err)
		}
		if small.Type != fileid.TypeProfilePhoto || small.DCID != 2 || small.Secret != 7 {
			t.Fatalf("small id = %+v", small)
		}
		if small.ID != 0 || small.AccessHash != 0 {
			t.Fatalf("profile photo id slots = (%d, %d), want zero", small.ID, small.AccessHash)
		}
	})

	t.Run("photo absent when one location unresolved", func(t *testing.T) {
		t.Parallel()

		raw := &wire.User{
			ID: 43,
			Photo: &wire.UserProfilePhoto{
				PhotoSmall: newLocation(2, 100, 7, 1),
				PhotoBig:   &wire.FileLocationUnavailable{VolumeID: 100, Secret: 8, LocalID: 2},
			},
		}

		got := n.User(raw)
		if got == nil {
			t.Fatal("expected user")
		}
		if got.Photo != nil {
			t.Fatalf("photo = %+v, want nil", got.Photo)
		}
	})

	t.Run("photo absent without record", func(t *testing.T) {
		t.Parallel()

		if got := n.User(&wire.User{ID: 44}); got.Photo != nil {
			t.Fatalf("photo = %+v, want nil", got.Photo)
		}
	})
}
