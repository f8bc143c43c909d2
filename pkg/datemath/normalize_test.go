package datemath_test

import (
	"testing"
	"time"

	"ai-notes/pkg/datemath"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name   string
		value  datemath.Value
		want   string
		wantOK bool
	}{
		{name: "Empty", value: datemath.EmptyValue()},
		{name: "Blank string", value: datemath.RawValue("   ")},
		{name: "Null string", value: datemath.RawValue("null")},
		{name: "Canonical", value: datemath.RawValue("2025-10-17"), want: "2025-10-17", wantOK: true},
		{name: "Unpadded ISO", value: datemath.RawValue("2025-1-5"), want: "2025-01-05", wantOK: true},
		{name: "ISO with time", value: datemath.RawValue("2025-10-17T00:00:00Z"), want: "2025-10-17", wantOK: true},
		{name: "ISO with space time", value: datemath.RawValue("2025-10-17 18:00:00"), want: "2025-10-17", wantOK: true},
		{name: "Day first", value: datemath.RawValue("17/10/2025"), want: "2025-10-17", wantOK: true},
		{name: "Month first", value: datemath.RawValue("10/17/2025"), want: "2025-10-17", wantOK: true},
		{name: "Ambiguous prefers day first", value: datemath.RawValue("05/06/2025"), want: "2025-06-05", wantOK: true},
		{name: "Dashed day first", value: datemath.RawValue("17-10-2025"), want: "2025-10-17", wantOK: true},
		{name: "Slashed ISO", value: datemath.RawValue("2025/10/17"), want: "2025-10-17", wantOK: true},
		{name: "Month name", value: datemath.RawValue("Oct 17, 2025"), want: "2025-10-17", wantOK: true},
		{name: "Day month name", value: datemath.RawValue("17 October 2025"), want: "2025-10-17", wantOK: true},
		{name: "Invalid calendar date", value: datemath.RawValue("31/02/2025")},
		{name: "Garbage", value: datemath.RawValue("next tuesday-ish")},
		{name: "Native date", value: datemath.DateValue(time.Date(2025, 10, 17, 13, 5, 0, 0, time.UTC)), want: "2025-10-17", wantOK: true},
		{name: "Native time has no date", value: datemath.TimeValue(time.Date(0, 1, 1, 13, 5, 0, 0, time.UTC))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datemath.NormalizeDate(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeDate() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	inputs := []string{"17/10/2025", "10/17/2025", "2025-1-5", "Oct 17, 2025", "2024-02-29"}
	for _, in := range inputs {
		first, ok := datemath.NormalizeDate(datemath.RawValue(in))
		if !ok {
			t.Fatalf("NormalizeDate(%q) failed", in)
		}
		second, ok := datemath.NormalizeDate(datemath.RawValue(first))
		if !ok || second != first {
			t.Errorf("NormalizeDate(%q) = %q, %v; want %q", first, second, ok, first)
		}
	}
}

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name   string
		value  datemath.Value
		want   string
		wantOK bool
	}{
		{name: "Empty", value: datemath.EmptyValue()},
		{name: "Blank string", value: datemath.RawValue("")},
		{name: "Null string", value: datemath.RawValue("NULL")},
		{name: "12 hour pm", value: datemath.RawValue("2:43 pm"), want: "14:43:00", wantOK: true},
		{name: "12 hour dotted", value: datemath.RawValue("2:43 p.m."), want: "14:43:00", wantOK: true},
		{name: "12 am", value: datemath.RawValue("12:05 AM"), want: "00:05:00", wantOK: true},
		{name: "12 pm", value: datemath.RawValue("12:05pm"), want: "12:05:00", wantOK: true},
		{name: "24 hour", value: datemath.RawValue("18:00"), want: "18:00:00", wantOK: true},
		{name: "With seconds", value: datemath.RawValue("18:00:30"), want: "18:00:30", wantOK: true},
		{name: "Compact", value: datemath.RawValue("1130"), want: "11:30:00", wantOK: true},
		{name: "Compact with seconds", value: datemath.RawValue("113045"), want: "11:30:45", wantOK: true},
		{name: "Clamped", value: datemath.RawValue("25:75"), want: "23:59:00", wantOK: true},
		{name: "Fractional seconds", value: datemath.RawValue("14:43:00.123456"), want: "14:43:00", wantOK: true},
		{name: "Garbage", value: datemath.RawValue("after lunch")},
		{name: "Native time drops nanoseconds", value: datemath.TimeValue(time.Date(0, 1, 1, 9, 5, 7, 999, time.UTC)), want: "09:05:07", wantOK: true},
		{name: "Native datetime", value: datemath.DateValue(time.Date(2025, 10, 17, 21, 0, 0, 0, time.UTC)), want: "21:00:00", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := datemath.NormalizeTime(tt.value)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("NormalizeTime() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValueOf(t *testing.T) {
	s := "2025-10-17"
	var nilStr *string
	now := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		in   any
		want datemath.ValueKind
	}{
		{"nil", nil, datemath.KindEmpty},
		{"string", s, datemath.KindRaw},
		{"blank string", " ", datemath.KindEmpty},
		{"string pointer", &s, datemath.KindRaw},
		{"nil string pointer", nilStr, datemath.KindEmpty},
		{"time", now, datemath.KindNativeDate},
		{"zero time", time.Time{}, datemath.KindEmpty},
		{"number", 42, datemath.KindEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := datemath.ValueOf(tt.in).Kind(); got != tt.want {
				t.Errorf("ValueOf(%v).Kind() = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
