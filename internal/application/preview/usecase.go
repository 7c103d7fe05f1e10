// Package preview implements the social-preview utility: fetch a public
// page through the proxy chain and extract the metadata a share card needs.
package preview

import (
	"context"
	"html"
	"net/url"
	"regexp"
	"strings"

	"github.com/crealab/invoice-studio/internal/application/dto"
	"github.com/crealab/invoice-studio/internal/domain"
	"github.com/crealab/invoice-studio/pkg/logger"
)

// Fetcher retrieves page HTML; implemented by proxyfetch.Client.
type Fetcher interface {
	FetchHTML(ctx context.Context, target string) (string, error)
}

// UseCase fetches and extracts preview metadata.
type UseCase struct {
	fetcher Fetcher
	log     *logger.Logger
}

// NewUseCase builds the use case.
func NewUseCase(fetcher Fetcher, log *logger.Logger) *UseCase {
	return &UseCase{fetcher: fetcher, log: log}
}

// Fetch validates the target URL, retrieves its HTML and extracts metadata.
// Proxy exhaustion surfaces as domain.ErrPreviewUnavailable so the client can
// show a dismissable notice next to the manually editable fields.
func (uc *UseCase) Fetch(ctx context.Context, target string) (*dto.PreviewResponse, error) {
	u, err := url.Parse(strings.TrimSpace(target))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.ErrInvalidInput
	}

	pageHTML, err := uc.fetcher.FetchHTML(ctx, u.String())
	if err != nil {
		return nil, err
	}

	meta := ExtractMeta(pageHTML)
	uc.log.Debug().Str("url", u.String()).Str("title", meta.Title).Msg("preview extracted")
	return &dto.PreviewResponse{
		URL:         u.String(),
		Title:       meta.Title,
		Description: meta.Description,
		Image:       meta.Image,
	}, nil
}

// Meta is the extracted share-card metadata.
type Meta struct {
	Title       string
	Description string
	Image       string
}

var (
	titleRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	// Both attribute orders appear in the wild: property-then-content and
	// content-then-property.
	metaPropContentRe = regexp.MustCompile(`(?i)<meta[^>]+(?:property|name)=["']([^"']+)["'][^>]+content=["']([^"']*)["']`)
	metaContentPropRe = regexp.MustCompile(`(?i)<meta[^>]+content=["']([^"']*)["'][^>]+(?:property|name)=["']([^"']+)["']`)
)

// ExtractMeta pulls title, description and image out of raw HTML. Open Graph
// tags win over the plain <title>/description fallbacks.
func ExtractMeta(pageHTML string) Meta {
	tags := map[string]string{}
	for _, m := range metaPropContentRe.FindAllStringSubmatch(pageHTML, -1) {
		key := strings.ToLower(m[1])
		if _, seen := tags[key]; !seen {
			tags[key] = html.UnescapeString(m[2])
		}
	}
	for _, m := range metaContentPropRe.FindAllStringSubmatch(pageHTML, -1) {
		key := strings.ToLower(m[2])
		if _, seen := tags[key]; !seen {
			tags[key] = html.UnescapeString(m[1])
		}
	}

	meta := Meta{
		Title:       tags["og:title"],
		Description: tags["og:description"],
		Image:       tags["og:image"],
	}
	if meta.Title == "" {
		if m := titleRe.FindStringSubmatch(pageHTML); m != nil {
			meta.Title = strings.TrimSpace(html.UnescapeString(m[1]))
		}
	}
	if meta.Description == "" {
		meta.Description = tags["description"]
	}
	if meta.Image == "" {
		meta.Image = tags["twitter:image"]
	}
	return meta
}
