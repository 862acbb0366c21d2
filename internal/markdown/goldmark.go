package markdown

import (
	"github.com/Bornholm/amatl/pkg/markdown/renderer/markdown"
	"github.com/Bornholm/amatl/pkg/markdown/renderer/markdown/node"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// New returns a goldmark instance rendering back to markdown.
func New() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithRenderer(markdown.NewRenderer()),
		goldmark.WithRendererOptions(
			markdown.WithNodeRenderers(node.Renderers()),
		),
	)
}

// NewHTML returns a goldmark instance rendering to HTML. Raw HTML found in
// the source is not rendered.
func NewHTML() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			meta.Meta,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)
}
