// Package keypoint maintains an ordered set of marked buffer indices used
// for quick navigation through a recording.
//
// Every structural change is reported to registered listeners as a Change.
package keypoint
