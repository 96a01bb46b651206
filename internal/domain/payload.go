package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// MediaKind classifies a file for preview and playback
type MediaKind int

const (
	MediaOther MediaKind = iota
	MediaImage
	MediaVideo
	MediaAudio
)

func (k MediaKind) String() string {
	switch k {
	case MediaImage:
		return "image"
	case MediaVideo:
		return "video"
	case MediaAudio:
		return "audio"
	default:
		return "file"
	}
}

// KindOf returns the media kind for a MIME type
func KindOf(mimeType string) MediaKind {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return MediaImage
	case strings.HasPrefix(mimeType, "video/"):
		return MediaVideo
	case strings.HasPrefix(mimeType, "audio/"):
		return MediaAudio
	default:
		return MediaOther
	}
}

// EncodeDataURL inlines content as a self-describing base64 data URL
func EncodeDataURL(mimeType string, content []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// DecodeDataURL splits a data URL produced by EncodeDataURL back into its
// MIME type and raw content
func DecodeDataURL(data string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(data, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URL")
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URL has no payload separator")
	}

	mimeType, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return mimeType, []byte(payload), nil
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("failed to decode payload: %w", err)
	}
	return mimeType, content, nil
}
