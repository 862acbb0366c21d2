package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/abadojack/whatlanggo"
	"github.com/pkg/errors"
	meta "github.com/yuin/goldmark-meta"
	gmParser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const (
	MetaTitle           = "title"
	MetaOrder           = "order"
	MetaDurationMinutes = "durationMinutes"
	MetaVideoURL        = "videoUrl"
	MetaLanguage        = "language"
)

// Lesson is a lesson read from a markdown file with a YAML front matter.
type Lesson struct {
	Title           string
	Order           int
	DurationMinutes int
	VideoURL        string
	Language        string
	// Content is the markdown body, front matter excluded
	Content string
}

// ParseLesson reads the front matter and the body of a lesson file. The
// title falls back to the first level 1 heading, the video to the first
// link to a known video host and the language is detected from the body
// when not declared.
func ParseLesson(data []byte) (*Lesson, error) {
	md := New()

	inspector := &lessonInspector{source: data}

	parser := md.Parser()
	parser.AddOptions(gmParser.WithASTTransformers(
		util.Prioritized(inspector, 999),
	))

	context := gmParser.NewContext()

	root := parser.Parse(
		text.NewReader(data),
		gmParser.WithContext(context),
	)

	metadata, err := meta.TryGet(context)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse front matter")
	}

	var body bytes.Buffer
	if err := md.Renderer().Render(&body, data, root); err != nil {
		return nil, errors.WithStack(err)
	}

	lesson := &Lesson{
		Title:    inspector.title,
		VideoURL: inspector.video,
		Content:  strings.TrimSpace(body.String()),
	}

	if raw, exists := metadata[MetaTitle]; exists {
		lesson.Title = fmt.Sprintf("%v", raw)
	}

	if lesson.Order, err = metaInt(metadata, MetaOrder); err != nil {
		return nil, errors.WithStack(err)
	}

	if lesson.DurationMinutes, err = metaInt(metadata, MetaDurationMinutes); err != nil {
		return nil, errors.WithStack(err)
	}

	if raw, exists := metadata[MetaVideoURL]; exists {
		lesson.VideoURL = fmt.Sprintf("%v", raw)
	}

	if raw, exists := metadata[MetaLanguage]; exists {
		lesson.Language = fmt.Sprintf("%v", raw)
	} else {
		lesson.Language = DetectLanguage(lesson.Content)
	}

	return lesson, nil
}

// DetectLanguage returns the ISO 639-1 code of the language of the given
// text, or an empty string when it cannot be told.
func DetectLanguage(content string) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}

	info := whatlanggo.Detect(content)
	if info.Lang < 0 {
		return ""
	}

	return info.Lang.Iso6391()
}

// PreviewLesson renders a lesson as a standalone HTML page.
func PreviewLesson(lesson *Lesson) ([]byte, error) {
	page, err := RenderHTMLPage(lesson.Title, lesson.Language, []byte(lesson.Content))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return page, nil
}

func metaInt(metadata map[string]any, key string) (int, error) {
	raw, exists := metadata[key]
	if !exists {
		return 0, nil
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, errors.Wrapf(err, "could not parse front matter key '%s'", key)
		}
		return i, nil
	default:
		return 0, errors.Errorf("unexpected type '%T' for front matter key '%s'", raw, key)
	}
}
