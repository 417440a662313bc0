package picture

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"strings"
)

// Service normalizes a user's profile image: fetch, conditional JPEG
// re-encode, public re-upload, and attribute push-back. It never interrupts
// the provisioning router — internal skips return nil with a log line, and
// the router absorbs the remaining failure modes.
type Service interface {
	Normalize(ctx context.Context, email, pictureURL, userPoolID, userName string) error
}

type fetcher interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type attributeWriter interface {
	UpdatePicture(ctx context.Context, userPoolID, userName, url string) error
}

type service struct {
	fetcher       fetcher
	store         objectStore
	attrs         attributeWriter
	quality       int
	defaultMarker string
}

type ServiceDeps struct {
	Fetcher       fetcher
	Store         objectStore
	Attributes    attributeWriter
	Quality       int    // JPEG quality for the re-encode candidate
	DefaultMarker string // sentinel filename fragment for placeholder avatars
}

func NewService(deps ServiceDeps) Service {
	return &service{
		fetcher:       deps.Fetcher,
		store:         deps.Store,
		attrs:         deps.Attributes,
		quality:       deps.Quality,
		defaultMarker: deps.DefaultMarker,
	}
}

func (s *service) Normalize(ctx context.Context, email, pictureURL, userPoolID, userName string) error {
	if pictureURL == "" || strings.Contains(pictureURL, s.defaultMarker) {
		log.Printf("picture: default or empty avatar for %s, skipping", email)
		return nil
	}

	raw, err := s.fetcher.Get(ctx, pictureURL)
	if err != nil {
		// An unreachable picture degrades to a skip: the user keeps the
		// existing reference.
		log.Printf("picture: fetch failed for %s: %v", email, err)
		return nil
	}

	src, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		log.Printf("picture: decode failed for %s: %v", email, err)
		return nil
	}

	baseline := baselineSize(src, format, raw)
	candidate, err := encodeJPEG(src, s.quality)
	if err != nil {
		return fmt.Errorf("encode jpeg: %w", err)
	}

	// Shrink guard: a fixed-quality re-encode can enlarge already-compressed
	// input, and the stored asset must never grow.
	if len(candidate) >= baseline {
		log.Printf("picture: re-encode did not shrink %s (%d >= %d), keeping original", pictureURL, len(candidate), baseline)
		return nil
	}

	filename, ok := deriveFilename(pictureURL)
	if !ok {
		log.Printf("picture: no %q marker in %s, keeping original", picturesMarker, pictureURL)
		return nil
	}
	key := fmt.Sprintf("%s/%s%s", email, picturesMarker, filename)

	url, err := s.store.Upload(ctx, key, bytes.NewReader(candidate), "image/jpeg")
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	if err := s.attrs.UpdatePicture(ctx, userPoolID, userName, url); err != nil {
		return fmt.Errorf("update picture attribute: %w", err)
	}

	log.Printf("picture: normalized %s -> %s (%d -> %d bytes)", pictureURL, key, baseline, len(candidate))
	return nil
}
