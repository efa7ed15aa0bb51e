package retrieveseq

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which feature endpoints anchor a relative window.
type Mode int

const (
	// ModeStart anchors both window ends at the feature start.
	ModeStart Mode = iota + 1
	// ModeStop anchors both window ends at the feature end.
	ModeStop
	// ModeStartStop anchors the window at the feature start and end.
	ModeStartStop
)

var modeNames = map[Mode]string{
	ModeStart:     "start",
	ModeStop:      "stop",
	ModeStartStop: "startstop",
}

// ErrUnknownMode is returned by ParseMode for anything but start, stop or startstop.
var ErrUnknownMode = errors.New("relative position mode must be -start, -stop or -startstop")

// ErrOffsetOrder is returned when the window does not end after it starts.
var ErrOffsetOrder = errors.New("relative position of first nucleotide has to be smaller than last nucleotide")

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the command line spelling (-start) as well as the bare name.
func ParseMode(s string) (Mode, error) {
	name := strings.TrimPrefix(s, "-")
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: got %q", ErrUnknownMode, s)
}

// RelativeRequest is a window of signed offsets around a feature anchor.
type RelativeRequest struct {
	Mode Mode
	From int
	To   int
}

// Validate - To must be greater than From
func (r RelativeRequest) Validate() error {
	if _, ok := modeNames[r.Mode]; !ok {
		return fmt.Errorf("%w: got %v", ErrUnknownMode, r.Mode)
	}
	if r.To <= r.From {
		return fmt.Errorf("%w (from %d, to %d)", ErrOffsetOrder, r.From, r.To)
	}
	return nil
}

// Remap moves the feature (featureStart, featureEnd) to the window
// described by mode and the offsets. The feature's own orientation decides
// the offset direction: forward features add, reverse features subtract.
// The result is not bounds checked.
func Remap(featureStart, featureEnd int, mode Mode, from, to int) (posA, posB int) {
	strand := Orient(featureStart, featureEnd)

	switch mode {
	case ModeStart:
		posA, posB = featureStart, featureStart
	case ModeStop:
		posA, posB = featureEnd, featureEnd
	default:
		posA, posB = featureStart, featureEnd
	}

	if strand == Forward {
		return posA + from, posB + to
	}
	return posA - from, posB - to
}

// Apply - Remap the feature with r.
func (r RelativeRequest) Apply(featureStart, featureEnd int) (int, int) {
	return Remap(featureStart, featureEnd, r.Mode, r.From, r.To)
}
