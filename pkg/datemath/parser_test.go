package datemath_test

import (
	"testing"
	"time"

	"ai-notes/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Hong_Kong")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParser_Infer(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Hong_Kong")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	// 20:00 UTC on May 1 is already May 2 in Hong Kong.
	instant := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	fixed := parser.WithClock(func() time.Time { return instant })

	if got := fixed.Now(); got.Day() != 2 || got.Location() != parser.Location() {
		t.Errorf("Now() = %v, want May 2 in %v", got, parser.Location())
	}

	got := fixed.Infer("standup today 9am")
	want := datemath.Result{Date: "2024-05-02", Time: "09:00"}
	if got != want {
		t.Errorf("Infer() = %+v, want %+v", got, want)
	}

	if got := parser.InferAt(instant, "tomorrow"); got.Date != "2024-05-03" {
		t.Errorf("InferAt(tomorrow) = %+v, want 2024-05-03", got)
	}
}
