package markdown

import (
	"bytes"
	"net/url"
	"slices"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

const strippedDestination = "#stripped"

var videoHosts = []string{
	"youtube.com",
	"www.youtube.com",
	"youtu.be",
	"vimeo.com",
	"player.vimeo.com",
	"dailymotion.com",
	"www.dailymotion.com",
}

// lessonInspector collects the title and the first video link of a lesson
// while parsing it. Embedded data URLs are replaced since the learning API
// rejects oversized content.
type lessonInspector struct {
	source []byte
	title  string
	video  string
}

// Transform implements parser.ASTTransformer.
func (i *lessonInspector) Transform(root *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 1 && i.title == "" {
				i.title = nodeText(node, i.source)
			}
		case *ast.Image:
			node.Destination = stripDataURL(node.Destination)
		case *ast.Link:
			node.Destination = stripDataURL(node.Destination)
			i.recordVideo(string(node.Destination))
		case *ast.AutoLink:
			i.recordVideo(string(node.URL(i.source)))
		}

		return ast.WalkContinue, nil
	})
}

func (i *lessonInspector) recordVideo(link string) {
	if i.video != "" {
		return
	}

	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return
	}

	if slices.Contains(videoHosts, strings.ToLower(u.Hostname())) {
		i.video = link
	}
}

var _ parser.ASTTransformer = &lessonInspector{}

func stripDataURL(destination []byte) []byte {
	if bytes.HasPrefix(destination, []byte("data:")) {
		return []byte(strippedDestination)
	}

	return destination
}

func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder

	_ = ast.Walk(n, func(child ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		if t, ok := child.(*ast.Text); ok {
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(sb.String())
}
