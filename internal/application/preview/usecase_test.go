package preview_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crealab/invoice-studio/internal/application/preview"
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/pkg/logger"
)

type stubFetcher struct {
	html string
	err  error
	got  string
}

func (s *stubFetcher) FetchHTML(_ context.Context, target string) (string, error) {
	s.got = target
	return s.html, s.err
}

func TestExtractMeta(t *testing.T) {
	cases := []struct {
		name string
		html string
		want preview.Meta
	}{
		{
			name: "open graph tags win",
			html: `<head>
				<title>Plain Title</title>
				<meta property="og:title" content="OG Title">
				<meta property="og:description" content="OG Desc">
				<meta property="og:image" content="https://cdn.example/img.png">
			</head>`,
			want: preview.Meta{Title: "OG Title", Description: "OG Desc", Image: "https://cdn.example/img.png"},
		},
		{
			name: "falls back to title and description",
			html: `<head><title> Acme Studio </title><meta name="description" content="We build brands"></head>`,
			want: preview.Meta{Title: "Acme Studio", Description: "We build brands"},
		},
		{
			name: "content-before-property attribute order",
			html: `<meta content="Reversed" property="og:title">`,
			want: preview.Meta{Title: "Reversed"},
		},
		{
			name: "twitter image fallback",
			html: `<title>X</title><meta name="twitter:image" content="https://cdn.example/tw.png">`,
			want: preview.Meta{Title: "X", Image: "https://cdn.example/tw.png"},
		},
		{
			name: "entities unescaped",
			html: `<meta property="og:title" content="Fish &amp; Chips">`,
			want: preview.Meta{Title: "Fish & Chips"},
		},
		{
			name: "nothing extractable",
			html: `<html><body>hi</body></html>`,
			want: preview.Meta{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, preview.ExtractMeta(tc.html))
		})
	}
}

func TestFetch_ValidURL(t *testing.T) {
	fetcher := &stubFetcher{html: `<title>Acme</title>`}
	uc := preview.NewUseCase(fetcher, logger.Nop())

	resp, err := uc.Fetch(context.Background(), " https://acme.example/work ")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/work", resp.URL)
	assert.Equal(t, "https://acme.example/work", fetcher.got)
	assert.Equal(t, "Acme", resp.Title)
}

func TestFetch_InvalidURL(t *testing.T) {
	uc := preview.NewUseCase(&stubFetcher{}, logger.Nop())

	for _, bad := range []string{"", "notaurl", "ftp://files.example", "https://"} {
		_, err := uc.Fetch(context.Background(), bad)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "input: %q", bad)
	}
}

func TestFetch_ExhaustionPropagates(t *testing.T) {
	uc := preview.NewUseCase(&stubFetcher{err: domain.ErrPreviewUnavailable}, logger.Nop())

	_, err := uc.Fetch(context.Background(), "https://acme.example")
	assert.ErrorIs(t, err, domain.ErrPreviewUnavailable)
}
