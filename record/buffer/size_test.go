package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeAfterCrop(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		n          int
		want       int
		ok         bool
	}{
		{name: "linear", start: 3, end: 6, n: 10, want: 4, ok: true},
		{name: "wrapped", start: 7, end: 2, n: 10, want: 6, ok: true},
		{name: "single", start: 5, end: 5, n: 10, want: 1, ok: true},
		{name: "whole buffer", start: 0, end: 9, n: 10, want: 10, ok: true},
		{name: "whole buffer rotated", start: 6, end: 5, n: 10, want: 10, ok: true},
		{name: "negative start", start: -1, end: 5, n: 10, want: 10},
		{name: "start past end of buffer", start: 10, end: 5, n: 10, want: 10},
		{name: "end past end of buffer", start: 0, end: 10, n: 10, want: 10},
		{name: "negative end", start: 0, end: -1, n: 10, want: 10},
		{name: "empty buffer", start: 0, end: 0, n: 0, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SizeAfterCrop(tt.start, tt.end, tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeAfterCut(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		n          int
		want       int
		ok         bool
	}{
		{name: "middle", start: 2, end: 4, n: 10, want: 7, ok: true},
		{name: "head", start: 0, end: 3, n: 10, want: 6, ok: true},
		{name: "tail", start: 7, end: 9, n: 10, want: 7, ok: true},
		{name: "single", start: 5, end: 5, n: 10, want: 9, ok: true},
		{name: "reversed", start: 5, end: 2, n: 10, want: 10},
		{name: "negative start", start: -1, end: 2, n: 10, want: 10},
		{name: "end past end of buffer", start: 0, end: 10, n: 10, want: 10},
		{name: "everything", start: 0, end: 9, n: 10, want: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SizeAfterCut(tt.start, tt.end, tt.n)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeAfterThin(t *testing.T) {
	tests := []struct {
		stride, n int
		want      int
		ok        bool
	}{
		{stride: 1, n: 10, want: 10, ok: true},
		{stride: 3, n: 10, want: 3, ok: true},
		{stride: 5, n: 10, want: 2, ok: true},
		{stride: 10, n: 10, want: 1, ok: true},
		{stride: 11, n: 10, want: 10},
		{stride: 0, n: 10, want: 10},
		{stride: -2, n: 10, want: 10},
	}
	for _, tt := range tests {
		got, ok := SizeAfterThin(tt.stride, tt.n)
		assert.Equal(t, tt.ok, ok, "stride %d", tt.stride)
		assert.Equal(t, tt.want, got, "stride %d", tt.stride)
	}
}
