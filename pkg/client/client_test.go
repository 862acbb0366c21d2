package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	serverURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return New(
		WithAdminURL(serverURL),
		WithLearningURL(serverURL),
		WithToken("secret"),
		WithHTTPClient(&http.Client{
			Transport: &RateLimitTransport{
				Base:        http.DefaultTransport,
				MaxRetries:  2,
				DefaultWait: 10 * time.Millisecond,
			},
		}),
	)
}

func TestListPoliticiansEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, g := "/api/admin/politicians", r.URL.Path; e != g {
			t.Errorf("r.URL.Path: expected '%s', got '%s'", e, g)
		}

		if e, g := "Bearer secret", r.Header.Get("Authorization"); e != g {
			t.Errorf("Authorization: expected '%s', got '%s'", e, g)
		}

		if r.Header.Get("X-Request-ID") == "" {
			t.Errorf("X-Request-ID header should be set")
		}

		if !strings.HasPrefix(r.Header.Get("User-Agent"), "civicadmin/") {
			t.Errorf("unexpected User-Agent '%s'", r.Header.Get("User-Agent"))
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"data":[{"id":"p1","name":"Amina Okafor","party":"Green Alliance","position":"Senator","termStart":"2023-06-01"}]}`)
	}))

	politicians, err := client.ListPoliticians(context.Background())
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(politicians); e != g {
		t.Fatalf("len(politicians): expected %d, got %d", e, g)
	}

	if e, g := "Amina Okafor", politicians[0].Name; e != g {
		t.Errorf("politicians[0].Name: expected '%s', got '%s'", e, g)
	}

	if e, g := "2023-06-01", politicians[0].TermStart.String(); e != g {
		t.Errorf("politicians[0].TermStart: expected '%s', got '%s'", e, g)
	}
}

func TestGetPoliticianBare(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"id":"p2","name":"Daniel Mensah","isFeatured":true}`)
	}))

	politician, err := client.GetPolitician(context.Background(), "p2")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.PoliticianID("p2"), politician.ID; e != g {
		t.Errorf("politician.ID: expected '%s', got '%s'", e, g)
	}

	if !politician.IsFeatured {
		t.Errorf("politician.IsFeatured: expected true")
	}
}

func TestSetPoliticianPublished(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, g := http.MethodPatch, r.Method; e != g {
			t.Errorf("r.Method: expected '%s', got '%s'", e, g)
		}

		if e, g := "/api/admin/politicians/p1/publish", r.URL.Path; e != g {
			t.Errorf("r.URL.Path: expected '%s', got '%s'", e, g)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}

		if e, g := true, payload["isPublished"]; e != g {
			t.Errorf("payload.isPublished: expected %v, got %v", e, g)
		}

		io.WriteString(w, `{"id":"p1","isPublished":true}`)
	}))

	politician, err := client.SetPoliticianPublished(context.Background(), "p1", true)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if !politician.IsPublished {
		t.Errorf("politician.IsPublished: expected true")
	}
}

func TestAPIErrors(t *testing.T) {
	type testCase struct {
		Status          int
		Body            string
		ExpectedErr     error
		ExpectedMessage string
		ExpectedFields  map[string]string
	}

	testCases := []testCase{
		{
			Status:          http.StatusUnauthorized,
			Body:            `{"success":false,"message":"Token expired"}`,
			ExpectedErr:     port.ErrUnauthorized,
			ExpectedMessage: "Token expired",
		},
		{
			Status:          http.StatusNotFound,
			Body:            `{"error":"Politician not found"}`,
			ExpectedErr:     port.ErrNotFound,
			ExpectedMessage: "Politician not found",
		},
		{
			Status:          http.StatusUnprocessableEntity,
			Body:            `{"message":"Validation failed","errors":[{"field":"email","message":"is invalid"}]}`,
			ExpectedErr:     port.ErrInvalid,
			ExpectedMessage: "Validation failed",
			ExpectedFields:  map[string]string{"email": "is invalid"},
		},
		{
			Status:          http.StatusBadRequest,
			Body:            `{"errors":{"name":["is required"]}}`,
			ExpectedErr:     port.ErrInvalid,
			ExpectedMessage: "400 Bad Request",
			ExpectedFields:  map[string]string{"name": "is required"},
		},
		{
			Status:          http.StatusForbidden,
			Body:            `forbidden`,
			ExpectedErr:     port.ErrForbidden,
			ExpectedMessage: "forbidden",
		},
	}

	for _, tc := range testCases {
		t.Run(http.StatusText(tc.Status), func(t *testing.T) {
			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.Status)
				io.WriteString(w, tc.Body)
			}))

			_, err := client.ListPoliticians(context.Background())
			if err == nil {
				t.Fatal("expected an error, got nil")
			}

			if !errors.Is(err, tc.ExpectedErr) {
				t.Errorf("errors.Is(err, %v): expected true, got false (%v)", tc.ExpectedErr, err)
			}

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected an *APIError, got %T", errors.Cause(err))
			}

			if e, g := tc.Status, apiErr.StatusCode; e != g {
				t.Errorf("apiErr.StatusCode: expected %d, got %d", e, g)
			}

			if e, g := tc.ExpectedMessage, apiErr.Message; e != g {
				t.Errorf("apiErr.Message: expected '%s', got '%s'", e, g)
			}

			for field, message := range tc.ExpectedFields {
				if e, g := message, apiErr.Fields[field]; e != g {
					t.Errorf("apiErr.Fields[%s]: expected '%s', got '%s'", field, e, g)
				}
			}
		})
	}
}

func TestDeleteFailureEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, g := http.MethodDelete, r.Method; e != g {
			t.Errorf("r.Method: expected '%s', got '%s'", e, g)
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":false,"message":"politician is referenced"}`)
	}))

	err := client.DeletePolitician(context.Background(), "p1")
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an *APIError, got %T", errors.Cause(err))
	}

	if e, g := "politician is referenced", apiErr.Message; e != g {
		t.Errorf("apiErr.Message: expected '%s', got '%s'", e, g)
	}
}

func TestDeleteSuccessEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"success":true,"message":"deleted"}`)
	}))

	if err := client.DeleteCommitment(context.Background(), "c1"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}
}

func TestListNestedSetsParent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/politicians/p1/commitments":
			io.WriteString(w, `{"success":true,"data":[{"id":"c1","title":"Build 200 km of roads"}]}`)
		case "/api/admin/learning/modules/m1/lessons":
			io.WriteString(w, `[{"id":"l1","title":"Ballots"}]`)
		default:
			http.NotFound(w, r)
		}
	}))

	commitments, err := client.ListCommitments(context.Background(), "p1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(commitments); e != g {
		t.Fatalf("len(commitments): expected %d, got %d", e, g)
	}

	if e, g := model.PoliticianID("p1"), commitments[0].PoliticianID; e != g {
		t.Errorf("commitments[0].PoliticianID: expected '%s', got '%s'", e, g)
	}

	lessons, err := client.ListLessons(context.Background(), "m1")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 1, len(lessons); e != g {
		t.Fatalf("len(lessons): expected %d, got %d", e, g)
	}

	if e, g := model.ModuleID("m1"), lessons[0].ModuleID; e != g {
		t.Errorf("lessons[0].ModuleID: expected '%s', got '%s'", e, g)
	}
}

func TestRateLimitRetry(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}

		body, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(body), "Build 200 km of roads") {
			t.Errorf("request body was not replayed: '%s'", body)
		}

		io.WriteString(w, `{"id":"c1","politicianId":"p1","title":"Build 200 km of roads","status":"in_progress","progress":20}`)
	}))

	commitment, err := client.CreateCommitment(context.Background(), model.Commitment{
		PoliticianID: "p1",
		Title:        "Build 200 km of roads",
		Status:       model.CommitmentStatusInProgress,
		Progress:     20,
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int32(2), calls.Load(); e != g {
		t.Errorf("calls: expected %d, got %d", e, g)
	}

	if e, g := model.CommitmentID("c1"), commitment.ID; e != g {
		t.Errorf("commitment.ID: expected '%s', got '%s'", e, g)
	}
}

func TestRateLimitExhausted(t *testing.T) {
	var calls atomic.Int32

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"message":"slow down"}`)
	}))

	_, err := client.ListModules(context.Background())
	if err == nil {
		t.Fatal("expected an error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an *APIError, got %T", errors.Cause(err))
	}

	if e, g := "slow down", apiErr.Message; e != g {
		t.Errorf("apiErr.Message: expected '%s', got '%s'", e, g)
	}

	if e, g := int32(3), calls.Load(); e != g {
		t.Errorf("calls: expected %d, got %d", e, g)
	}
}

func TestUploadDocument(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("%+v", errors.WithStack(err))
		}

		if e, g := "2024 manifesto", r.FormValue("title"); e != g {
			t.Errorf("title: expected '%s', got '%s'", e, g)
		}

		if e, g := "manifesto", r.FormValue("type"); e != g {
			t.Errorf("type: expected '%s', got '%s'", e, g)
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("%+v", errors.WithStack(err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()

		if e, g := "manifesto.txt", header.Filename; e != g {
			t.Errorf("header.Filename: expected '%s', got '%s'", e, g)
		}

		io.WriteString(w, `{"data":{"id":"d1","politicianId":"p1","title":"2024 manifesto","type":"manifesto"}}`)
	}))

	document, err := client.UploadDocument(context.Background(), "p1", port.DocumentUpload{
		Title:    "2024 manifesto",
		Type:     model.DocumentTypeManifesto,
		FileName: "manifesto.txt",
		MimeType: "text/plain",
		Content:  strings.NewReader("We will build schools."),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := model.DocumentID("d1"), document.ID; e != g {
		t.Errorf("document.ID: expected '%s', got '%s'", e, g)
	}
}

func TestGetLessonQuizNull(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if e, g := "/api/admin/learning/lessons/l1/quiz", r.URL.Path; e != g {
			t.Errorf("r.URL.Path: expected '%s', got '%s'", e, g)
		}
		io.WriteString(w, `{"success":true,"data":null}`)
	}))

	_, err := client.GetLessonQuiz(context.Background(), "l1")
	if !errors.Is(err, port.ErrNotFound) {
		t.Errorf("errors.Is(err, port.ErrNotFound): expected true, got false (%v)", err)
	}
}

type recordingObserver struct {
	calls atomic.Int32
	last  atomic.Value
}

func (o *recordingObserver) ObserveRequest(api API, method string, statusCode int, duration time.Duration) {
	o.calls.Add(1)
	o.last.Store(string(api) + " " + method + " " + http.StatusText(statusCode))
}

func TestObserver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	serverURL, _ := url.Parse(server.URL)
	observer := &recordingObserver{}

	client := New(WithLearningURL(serverURL), WithObserver(observer))

	if err := client.DeleteChallenge(context.Background(), "ch1"); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := int32(1), observer.calls.Load(); e != g {
		t.Errorf("observer.calls: expected %d, got %d", e, g)
	}

	if e, g := "learning DELETE No Content", observer.last.Load(); e != g {
		t.Errorf("observer.last: expected '%v', got '%v'", e, g)
	}
}
