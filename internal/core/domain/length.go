package domain

import (
	"errors"
	"strings"
)

// LengthSetting is the symbolic summary length requested by the caller.
type LengthSetting string

const (
	LengthShort  LengthSetting = "short"
	LengthMedium LengthSetting = "medium"
	LengthLong   LengthSetting = "long"
)

var lengthTargets = map[LengthSetting]int{
	LengthShort:  3,
	LengthMedium: 5,
	LengthLong:   8,
}

// ParseLengthSetting validates a caller-supplied length value.
// An empty value defaults to medium.
func ParseLengthSetting(raw string) (LengthSetting, error) {
	value := LengthSetting(strings.ToLower(strings.TrimSpace(raw)))
	if value == "" {
		return LengthMedium, nil
	}
	if _, ok := lengthTargets[value]; !ok {
		return "", WrapError(ErrInvalidLength, "parse length", errors.New(raw))
	}
	return value, nil
}

// TargetCount maps the setting to a sentence count, clamped so the
// summary never requests more sentences than the document has and is
// never empty when at least one sentence exists.
func (l LengthSetting) TargetCount(totalSentences int) int {
	target, ok := lengthTargets[l]
	if !ok {
		target = lengthTargets[LengthMedium]
	}
	if totalSentences < target {
		target = totalSentences
	}
	if target < 1 {
		target = 1
	}
	return target
}

// EngineMode selects the summarization strategy.
type EngineMode string

const (
	ModeLocal  EngineMode = "local"
	ModeOnline EngineMode = "online"
)

// ParseEngineMode validates a caller-supplied mode flag.
// An empty value defaults to local.
func ParseEngineMode(raw string) (EngineMode, error) {
	value := EngineMode(strings.ToLower(strings.TrimSpace(raw)))
	switch value {
	case "":
		return ModeLocal, nil
	case ModeLocal, ModeOnline:
		return value, nil
	default:
		return "", WrapError(ErrUnknownMode, "parse mode", errors.New(raw))
	}
}
