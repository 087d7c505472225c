package ahocorasick

import "testing"

func TestNewConfigDefaults(t *testing.T) {
	c := newConfig(nil)
	if c.maxPatternLength != DefaultMaxPatternLength {
		t.Fatalf("maxPatternLength = %d, want %d", c.maxPatternLength, DefaultMaxPatternLength)
	}
	if c.bufferSize != DefaultBufferSize {
		t.Fatalf("bufferSize = %d, want %d", c.bufferSize, DefaultBufferSize)
	}
}

func TestNewConfigApplyOptions(t *testing.T) {
	c := newConfig([]Option{WithMaxPatternLength(16), WithBufferSize(64)})
	if c.maxPatternLength != 16 {
		t.Fatalf("maxPatternLength = %d, want 16", c.maxPatternLength)
	}
	if c.bufferSize != 64 {
		t.Fatalf("bufferSize = %d, want 64", c.bufferSize)
	}
}
