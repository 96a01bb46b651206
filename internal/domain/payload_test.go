package domain

import (
	"bytes"
	"testing"
)

func TestDataURLRoundTrip(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}

	data := EncodeDataURL("image/png", content)
	mimeType, got, err := DecodeDataURL(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("expected image/png, got %s", mimeType)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("content mismatch: %v", got)
	}
}

func TestDecodeDataURL_Invalid(t *testing.T) {
	for _, in := range []string{"", "hello", "data:image/png;base64", "data:image/png;base64,@@@"} {
		if _, _, err := DecodeDataURL(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := map[string]MediaKind{
		"image/jpeg":      MediaImage,
		"video/mp4":       MediaVideo,
		"audio/ogg":       MediaAudio,
		"application/pdf": MediaOther,
		"":                MediaOther,
	}
	for mimeType, want := range tests {
		if got := KindOf(mimeType); got != want {
			t.Errorf("KindOf(%q) = %s, want %s", mimeType, got, want)
		}
	}
}
