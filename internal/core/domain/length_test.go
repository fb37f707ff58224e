package domain

import (
	"errors"
	"testing"
)

func TestParseLengthSetting(t *testing.T) {
	cases := []struct {
		raw     string
		want    LengthSetting
		wantErr bool
	}{
		{"short", LengthShort, false},
		{"medium", LengthMedium, false},
		{"long", LengthLong, false},
		{"", LengthMedium, false},
		{"  Short ", LengthShort, false},
		{"LONG", LengthLong, false},
		{"gigantic", "", true},
		{"s", "", true},
	}
	for _, tc := range cases {
		got, err := ParseLengthSetting(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidLength) {
				t.Errorf("ParseLengthSetting(%q) expected ErrInvalidLength, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLengthSetting(%q) error = %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLengthSetting(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestTargetCount(t *testing.T) {
	cases := []struct {
		length LengthSetting
		total  int
		want   int
	}{
		{LengthShort, 10, 3},
		{LengthMedium, 10, 5},
		{LengthLong, 10, 8},
		{LengthShort, 2, 2},
		{LengthLong, 2, 2},
		{LengthMedium, 1, 1},
		{LengthShort, 0, 1},
	}
	for _, tc := range cases {
		if got := tc.length.TargetCount(tc.total); got != tc.want {
			t.Errorf("%s.TargetCount(%d) = %d, want %d", tc.length, tc.total, got, tc.want)
		}
	}
}

func TestParseEngineMode(t *testing.T) {
	cases := []struct {
		raw     string
		want    EngineMode
		wantErr bool
	}{
		{"local", ModeLocal, false},
		{"online", ModeOnline, false},
		{"", ModeLocal, false},
		{" Online ", ModeOnline, false},
		{"hybrid", "", true},
	}
	for _, tc := range cases {
		got, err := ParseEngineMode(tc.raw)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownMode) {
				t.Errorf("ParseEngineMode(%q) expected ErrUnknownMode, got %v", tc.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEngineMode(%q) error = %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseEngineMode(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestWrapErrorKeepsKind(t *testing.T) {
	err := WrapError(ErrEmptyInput, "segment text", errors.New("nothing left"))
	if !IsKind(err, ErrEmptyInput) {
		t.Fatalf("wrapped error lost its kind: %v", err)
	}
	if IsKind(err, ErrInvalidLength) {
		t.Fatalf("wrapped error matches the wrong kind: %v", err)
	}
}

func TestWrapErrorNil(t *testing.T) {
	if err := WrapError(ErrEmptyInput, "noop", nil); err != nil {
		t.Fatalf("expected nil for nil cause, got %v", err)
	}
}
