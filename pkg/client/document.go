package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/bornholm/civicadmin/internal/core/model"
	"github.com/bornholm/civicadmin/internal/core/port"
	"github.com/pkg/errors"
)

// ListDocuments implements port.DocumentStore.
func (c *Client) ListDocuments(ctx context.Context, politicianID model.PoliticianID) ([]model.Document, error) {
	items, err := listResource[model.Document](ctx, c, APIAdmin, politicianPath(politicianID, "documents"))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return setParent(items, func(item *model.Document) { item.PoliticianID = politicianID }), nil
}

// UploadDocument implements port.DocumentStore.
func (c *Client) UploadDocument(ctx context.Context, politicianID model.PoliticianID, upload port.DocumentUpload) (*model.Document, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("title", upload.Title); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := writer.WriteField("type", string(upload.Type)); err != nil {
		return nil, errors.WithStack(err)
	}

	mimeType := upload.MimeType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="`+escapeQuotes(upload.FileName)+`"`)
	partHeader.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(partHeader)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	header := http.Header{
		"Content-Type": []string{writer.FormDataContentType()},
	}

	var document model.Document
	if err := c.doJSON(ctx, APIAdmin, http.MethodPost, politicianPath(politicianID, "documents"), header, bytes.NewReader(body.Bytes()), &document); err != nil {
		return nil, errors.WithStack(err)
	}

	return &document, nil
}

// DeleteDocument implements port.DocumentStore.
func (c *Client) DeleteDocument(ctx context.Context, id model.DocumentID) error {
	path, err := resourcePath("/api/admin/documents", id)
	if err != nil {
		return errors.WithStack(err)
	}
	return deleteResource(ctx, c, APIAdmin, path)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
