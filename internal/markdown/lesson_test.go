package markdown

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

const englishLesson = `---
title: How a bill becomes law
order: 2
durationMinutes: 15
videoUrl: https://videos.example.org/bill
---

# Introduction

A bill is a proposal for a new law. It is debated and amended by members of parliament
before being voted on. Once both chambers have approved the same text, the head of state
signs it and the bill becomes an act which every citizen must follow.

![diagram](data:image/png;base64,iVBORw0KGgo=)
`

const frenchLesson = `# Le rôle du maire

Le maire est élu par le conseil municipal. Il est chargé de l'exécution des décisions
du conseil, de la gestion du budget de la commune et de la police municipale. Il est
aussi officier d'état civil et célèbre les mariages dans la maison commune.
`

func TestParseLesson(t *testing.T) {
	lesson, err := ParseLesson([]byte(englishLesson))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "How a bill becomes law", lesson.Title; e != g {
		t.Errorf("lesson.Title: expected '%s', got '%s'", e, g)
	}

	if e, g := 2, lesson.Order; e != g {
		t.Errorf("lesson.Order: expected %d, got %d", e, g)
	}

	if e, g := 15, lesson.DurationMinutes; e != g {
		t.Errorf("lesson.DurationMinutes: expected %d, got %d", e, g)
	}

	if e, g := "https://videos.example.org/bill", lesson.VideoURL; e != g {
		t.Errorf("lesson.VideoURL: expected '%s', got '%s'", e, g)
	}

	if e, g := "en", lesson.Language; e != g {
		t.Errorf("lesson.Language: expected '%s', got '%s'", e, g)
	}

	if strings.Contains(lesson.Content, "durationMinutes") {
		t.Errorf("lesson.Content: front matter should not be part of the content")
	}

	if strings.Contains(lesson.Content, "data:image") {
		t.Errorf("lesson.Content: data urls should be stripped")
	}

	if !strings.Contains(lesson.Content, "Introduction") {
		t.Errorf("lesson.Content: expected heading to be kept, got '%s'", lesson.Content)
	}
}

func TestParseLessonFallbacks(t *testing.T) {
	lesson, err := ParseLesson([]byte(frenchLesson))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "Le rôle du maire", lesson.Title; e != g {
		t.Errorf("lesson.Title: expected '%s', got '%s'", e, g)
	}

	if e, g := "fr", lesson.Language; e != g {
		t.Errorf("lesson.Language: expected '%s', got '%s'", e, g)
	}

	if e, g := 0, lesson.Order; e != g {
		t.Errorf("lesson.Order: expected %d, got %d", e, g)
	}
}

func TestParseLessonInvalidOrder(t *testing.T) {
	_, err := ParseLesson([]byte("---\norder: first\n---\n\nBody\n"))
	if err == nil {
		t.Fatalf("expected an error, got nil")
	}
}

func TestPreviewLesson(t *testing.T) {
	page, err := PreviewLesson(&Lesson{
		Title:   "Voting <basics>",
		Content: "## Ballots\n\n| Step | Action |\n|---|---|\n| 1 | Register |\n",
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	html := string(page)

	for _, expected := range []string{"<title>Voting &lt;basics&gt;</title>", "<h2", "<table>", `lang="en"`} {
		if !strings.Contains(html, expected) {
			t.Errorf("page: expected to contain '%s', got '%s'", expected, html)
		}
	}
}

func TestParseLessonVideoFallback(t *testing.T) {
	source := "# Voting rights\n\nSee [the archive](https://archive.example.org/vote) then watch [the recap](https://www.youtube.com/watch?v=abc123).\n"

	lesson, err := ParseLesson([]byte(source))
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "https://www.youtube.com/watch?v=abc123", lesson.VideoURL; e != g {
		t.Errorf("lesson.VideoURL: expected '%s', got '%s'", e, g)
	}
}
