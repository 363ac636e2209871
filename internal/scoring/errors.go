package scoring

import "errors"

// Rule-level rejections surfaced when a delivery cannot be applied. The
// match value passed in is never modified on rejection.
var (
	ErrMatchComplete        = errors.New("match is complete")
	ErrInvalidDelivery      = errors.New("invalid delivery")
	ErrUnknownBatter        = errors.New("batter is not on the batting team")
	ErrUnknownBowler        = errors.New("bowler is not on the bowling team")
	ErrBatterDismissed      = errors.New("batter has already been dismissed")
	ErrBatterNotAtCrease    = errors.New("batter is not one of the current pair")
	ErrBowlerRepeated       = errors.New("bowler cannot bowl consecutive overs")
	ErrBowlerChangedMidOver = errors.New("bowler cannot change mid-over")

	// ErrCorruptLog flags a log that violates match invariants (e.g. more
	// wickets than a side has partnerships). Append-time validation should
	// make this unreachable; it is never silently clamped.
	ErrCorruptLog = errors.New("delivery log violates match invariants")
)
