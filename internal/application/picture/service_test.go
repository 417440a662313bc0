package picture

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockFetcher struct{ mock.Mock }

func (m *mockFetcher) Get(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if b, _ := args.Get(0).([]byte); b != nil {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

type mockAttrs struct{ mock.Mock }

func (m *mockAttrs) UpdatePicture(ctx context.Context, userPoolID, userName, url string) error {
	return m.Called(ctx, userPoolID, userName, url).Error(0)
}

// --- helpers ---

func newTestService(f *mockFetcher, s *mockStore, a *mockAttrs) Service {
	return NewService(ServiceDeps{
		Fetcher:       f,
		Store:         s,
		Attributes:    a,
		Quality:       25,
		DefaultMarker: "default-profile",
	})
}

// noisePNG renders incompressible noise: the PNG stays near raw size while
// the lossy JPEG candidate shrinks well below it.
func noisePNG(t *testing.T) []byte {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(rng.Intn(256)),
				G: uint8(rng.Intn(256)),
				B: uint8(rng.Intn(256)),
				A: 255,
			})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// flatPNG renders a uniform color: the PNG is tiny and any JPEG candidate
// is larger, so the shrink guard must reject it.
func flatPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 40, G: 90, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// --- tests ---

func TestNormalize_ShrinkUploadsAndUpdatesAttribute(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}
	srcURL := "https://cdn.example.com/pictures/photo1.png"
	f.On("Get", mock.Anything, srcURL).Return(noisePNG(t), nil)
	s.On("Upload", mock.Anything, "a@x.com/pictures/photo1-CompressedTest2.jpg", mock.Anything, "image/jpeg").
		Return("https://bucket.s3.us-east-1.amazonaws.com/a@x.com/pictures/photo1-CompressedTest2.jpg", nil)
	a.On("UpdatePicture", mock.Anything, "pool", "user-abc",
		"https://bucket.s3.us-east-1.amazonaws.com/a@x.com/pictures/photo1-CompressedTest2.jpg").Return(nil)

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com", srcURL, "pool", "user-abc")

	require.NoError(t, err)
	f.AssertExpectations(t)
	s.AssertExpectations(t)
	a.AssertExpectations(t)
}

func TestNormalize_ShrinkGuardRejectsLargerCandidate(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}
	srcURL := "https://cdn.example.com/pictures/flat.png"
	f.On("Get", mock.Anything, srcURL).Return(flatPNG(t), nil)

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com", srcURL, "pool", "user-abc")

	require.NoError(t, err)
	s.AssertNotCalled(t, "Upload")
	a.AssertNotCalled(t, "UpdatePicture")
}

func TestNormalize_DefaultPlaceholderSkipsFetch(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com",
		"https://cdn.example.com/pictures/default-profile.png", "pool", "user-abc")

	require.NoError(t, err)
	f.AssertNotCalled(t, "Get")
	s.AssertNotCalled(t, "Upload")
	a.AssertNotCalled(t, "UpdatePicture")
}

func TestNormalize_EmptyURLSkips(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com", "", "pool", "user-abc")

	require.NoError(t, err)
	f.AssertNotCalled(t, "Get")
}

func TestNormalize_FetchFailureIsASkip(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}
	f.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com",
		"https://cdn.example.com/pictures/photo1.png", "pool", "user-abc")

	require.NoError(t, err)
	s.AssertNotCalled(t, "Upload")
}

func TestNormalize_DecodeFailureIsASkip(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}
	f.On("Get", mock.Anything, mock.Anything).Return([]byte("not an image"), nil)

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com",
		"https://cdn.example.com/pictures/photo1.png", "pool", "user-abc")

	require.NoError(t, err)
	s.AssertNotCalled(t, "Upload")
}

func TestNormalize_UploadFailureReturnsError(t *testing.T) {
	f, s, a := &mockFetcher{}, &mockStore{}, &mockAttrs{}
	f.On("Get", mock.Anything, mock.Anything).Return(noisePNG(t), nil)
	s.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("s3 down"))

	err := newTestService(f, s, a).Normalize(context.Background(), "a@x.com",
		"https://cdn.example.com/pictures/photo1.png", "pool", "user-abc")

	require.Error(t, err)
	a.AssertNotCalled(t, "UpdatePicture")
}

func TestDeriveFilename(t *testing.T) {
	tests := []struct {
		url  string
		want string
		ok   bool
	}{
		{"https://cdn.example.com/pictures/photo1.png", "photo1-CompressedTest2.jpg", true},
		{"https://cdn.example.com/pictures/photo1.png?v=2", "photo1-CompressedTest2.jpg", true},
		{"https://cdn.example.com/u/1/pictures/avatar.jpeg", "avatar-CompressedTest2.jpg", true},
		{"https://cdn.example.com/avatars/photo1.png", "", false}, // no pictures/ marker
		{"https://cdn.example.com/pictures/", "", false},
	}
	for _, tt := range tests {
		got, ok := deriveFilename(tt.url)
		assert.Equal(t, tt.ok, ok, "url %s", tt.url)
		assert.Equal(t, tt.want, got, "url %s", tt.url)
	}
}
