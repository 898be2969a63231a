package server

import (
	"bytes"
	"fmt"

	"github.com/nguyentranbao-ct/dream-api/pkg/tmplx"
)

const defaultFrontendURL = "https://example.com"

var sitemapPaths = []string{"/", "/pricing", "/analyze", "/about"}

var sitemapTemplate = tmplx.MustParse("sitemap", `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
{{- $base := default "`+defaultFrontendURL+`" .BaseURL }}
{{- range .Paths }}
  <url><loc>{{ xml (joinURL $base .) }}</loc></url>
{{- end }}
</urlset>`, tmplx.WithValidate(sitemapData(""), tmplx.ValidXML))

type sitemap struct {
	BaseURL string
	Paths   []string
}

func sitemapData(baseURL string) sitemap {
	return sitemap{BaseURL: baseURL, Paths: sitemapPaths}
}

func renderSitemap(baseURL string) (*bytes.Buffer, error) {
	buf, err := sitemapTemplate.Render(sitemapData(baseURL))
	if err != nil {
		return nil, fmt.Errorf("render sitemap: %w", err)
	}
	return buf, nil
}
