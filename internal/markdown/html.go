package markdown

import (
	"bytes"
	"fmt"
	"html"

	"github.com/pkg/errors"
)

// RenderHTML converts markdown to an HTML fragment. Front matter is dropped.
func RenderHTML(source []byte) ([]byte, error) {
	var buff bytes.Buffer

	if err := NewHTML().Convert(source, &buff); err != nil {
		return nil, errors.WithStack(err)
	}

	return buff.Bytes(), nil
}

const htmlPageTemplate = `<!DOCTYPE html>
<html lang="%s">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3em 0.6em; }
</style>
</head>
<body>
%s</body>
</html>
`

// RenderHTMLPage converts markdown to a standalone HTML document.
func RenderHTMLPage(title string, language string, source []byte) ([]byte, error) {
	body, err := RenderHTML(source)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if language == "" {
		language = "en"
	}

	page := fmt.Sprintf(htmlPageTemplate, html.EscapeString(language), html.EscapeString(title), body)

	return []byte(page), nil
}
