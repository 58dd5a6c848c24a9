package verify

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"booking-server/entities"
)

func sampleBookingUser() (*entities.Booking, *entities.User) {
	booking := &entities.Booking{
		ID:        "b-123",
		UserID:    "u-1",
		Service:   "Consultation",
		Date:      "2025-12-01",
		TimeSlot:  "10:00 AM",
		Status:    entities.StatusPending,
		CreatedAt: "2025-11-20",
	}
	user := &entities.User{
		ID:    "u-1",
		Email: "demo@user.com",
		Name:  "Demo User",
	}
	return booking, user
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	booking, user := sampleBookingUser()
	token, err := Encode(booking, user)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	snap, err := Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Snapshot{
		BookingID: "b-123",
		Service:   "Consultation",
		Date:      "2025-12-01",
		TimeSlot:  "10:00 AM",
		Status:    entities.StatusPending,
		UserName:  "Demo User",
		UserEmail: "demo@user.com",
		CreatedAt: "2025-11-20",
	}
	if *snap != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *snap, want)
	}
}

func TestDecodeMalformedTokens(t *testing.T) {
	t.Parallel()

	booking, user := sampleBookingUser()
	token, _ := Encode(booking, user)

	cases := map[string]string{
		"empty":        "",
		"not base64":   "!!!not-base64!!!",
		"bad padding":  token[:len(token)-1],
		"truncated":    token[:len(token)/2],
		"non-json":     "aGVsbG8gd29ybGQ=", // "hello world"
		"json scalar":  "Ijoi",
		"corrupt byte": "x" + token[1:],
	}
	for name, tok := range cases {
		if _, err := Decode(tok); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestVerificationURL(t *testing.T) {
	t.Parallel()

	booking, user := sampleBookingUser()
	link, err := URL("https://booking.example.com", booking, user)
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if !strings.HasPrefix(link, "https://booking.example.com/verify/b-123?data=") {
		t.Errorf("unexpected URL shape: %s", link)
	}

	// The embedded token must survive query escaping.
	parsed, err := url.Parse(link)
	if err != nil {
		t.Fatalf("link does not parse: %v", err)
	}
	token, _ := Encode(booking, user)
	if got := parsed.Query().Get("data"); got != token {
		t.Errorf("token mangled in URL:\n got %s\nwant %s", got, token)
	}
}

func TestQRCodePNG(t *testing.T) {
	t.Parallel()

	booking, user := sampleBookingUser()
	png, err := QRCodePNG("https://booking.example.com", booking, user, 300)
	if err != nil {
		t.Fatalf("QRCodePNG: %v", err)
	}
	if len(png) == 0 {
		t.Fatal("empty PNG")
	}
	if string(png[1:4]) != "PNG" {
		t.Errorf("output is not a PNG, header %q", png[:8])
	}
}
