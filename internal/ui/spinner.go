package ui

import "time"

// spinnerFrames are the characters used for the loading spinner animation
var spinnerFrames = []string{"·", "✢", "✳", "✶", "✻", "✽", "✻", "✶", "✳", "✢"}

// SpinnerInterval is the delay between spinner frames.
const SpinnerInterval = 120 * time.Millisecond

// Spinner renders the spinner frame followed by the label.
func Spinner(frame int, label string) string {
	ch := spinnerFrames[frame%len(spinnerFrames)]
	return StatusLoadingStyle.Render(ch + " " + label)
}
