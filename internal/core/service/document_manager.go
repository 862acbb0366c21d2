package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/listing"
	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/bornholm/civicadmin/internal/core/validate"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

type DocumentUploadOptions struct {
	MaxSize      int64
	AllowedTypes []string
}

type DocumentUploadOptionFunc func(opts *DocumentUploadOptions)

func WithDocumentMaxSize(maxSize int64) DocumentUploadOptionFunc {
	return func(opts *DocumentUploadOptions) {
		opts.MaxSize = maxSize
	}
}

func WithDocumentAllowedTypes(mimeTypes ...string) DocumentUploadOptionFunc {
	return func(opts *DocumentUploadOptions) {
		opts.AllowedTypes = mimeTypes
	}
}

func NewDocumentUploadOptions(funcs ...DocumentUploadOptionFunc) *DocumentUploadOptions {
	opts := &DocumentUploadOptions{
		MaxSize: 10_000_000,
		AllowedTypes: []string{
			"application/pdf",
			"image/png",
			"image/jpeg",
			"image/webp",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"application/vnd.oasis.opendocument.text",
			"text/plain",
		},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

// DocumentFile is a local file to attach to a politician profile.
type DocumentFile struct {
	Title    string
	Type     model.DocumentType
	FileName string
	Content  io.Reader
}

type DocumentManager struct {
	*ResourceManager[model.Document, model.DocumentID]

	politicianID model.PoliticianID
	store        port.DocumentStore
	opts         DocumentUploadOptions
}

// Upload checks the file type and size before sending it.
func (m *DocumentManager) Upload(ctx context.Context, file DocumentFile) (*model.Document, error) {
	const title = "Upload document"

	if file.Title == "" && file.FileName != "" {
		file.Title = strings.TrimSuffix(filepath.Base(file.FileName), filepath.Ext(file.FileName))
	}

	if file.Type == "" {
		file.Type = model.DocumentTypeOther
	}

	errs := validate.DocumentUpload(file.Title, file.Type)

	data, err := io.ReadAll(io.LimitReader(file.Content, m.opts.MaxSize+1))
	if err != nil {
		return nil, m.fail(ctx, title, errors.WithStack(err))
	}

	var mimeType string

	switch {
	case len(data) == 0:
		errs.Add("file", "is empty")
	case int64(len(data)) > m.opts.MaxSize:
		errs.Add("file", fmt.Sprintf("exceeds the maximum size of %s", humanize.Bytes(uint64(m.opts.MaxSize))))
	default:
		detected := mimetype.Detect(data)
		mimeType = detected.String()
		if !isAllowedType(detected, m.opts.AllowedTypes) {
			errs.Add("file", fmt.Sprintf("has an unsupported type (%s)", detected.String()))
		}
	}

	if !errs.Empty() {
		return nil, m.fail(ctx, title, errs)
	}

	var document *model.Document

	err = m.Perform(ctx, title, "Document uploaded successfully.", nil, func(ctx context.Context) error {
		var err error
		document, err = m.store.UploadDocument(ctx, m.politicianID, port.DocumentUpload{
			Title:    file.Title,
			Type:     file.Type,
			FileName: filepath.Base(file.FileName),
			MimeType: mimeType,
			Content:  bytes.NewReader(data),
		})
		return err
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return document, nil
}

// isAllowedType matches the detected type and its aliases only. Parents
// are not considered: text/plain is the parent of html and svg.
func isAllowedType(detected *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if detected.Is(a) {
			return true
		}
	}
	return false
}

func newDocumentManager(store port.DocumentStore, alerter port.Alerter, politicianID model.PoliticianID, opts DocumentUploadOptions) *DocumentManager {
	return &DocumentManager{
		ResourceManager: NewResourceManager(alerter, Resource[model.Document, model.DocumentID]{
			Name: "document",
			List: func(ctx context.Context) ([]model.Document, error) {
				return store.ListDocuments(ctx, politicianID)
			},
			Delete: store.DeleteDocument,
			SortKeys: listing.SortKeys[model.Document]{
				listing.ByString("title", func(d model.Document) string { return d.Title }),
				listing.ByOrdered("type", func(d model.Document) string { return string(d.Type) }),
				listing.ByOrdered("size", func(d model.Document) int64 { return d.Size }),
			},
			SearchFields: []func(model.Document) string{
				func(d model.Document) string { return d.Title },
				func(d model.Document) string { return d.FileName },
			},
			GlobField: func(d model.Document) string { return d.FileName },
		}),
		politicianID: politicianID,
		store:        store,
		opts:         opts,
	}
}
