package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"strings"

	"sitesnap/internal/errors"
	"sitesnap/internal/infra/api/media"
)

// Submit sends a product submission as JSON or multipart depending on its
// kind and decodes the answer into out.
func (c *Client) Submit(ctx context.Context, method, path string, sub media.Submission, out *json.RawMessage) error {
	switch s := sub.(type) {
	case *media.JSONSubmission:
		return c.doJSON(ctx, method, path, s.Body, out)
	case *media.MultipartSubmission:
		body, contentType, err := c.encodeMultipart(s)
		if err != nil {
			return err
		}

		return c.do(ctx, request{method: method, path: path, body: body, contentType: contentType}, out)
	default:
		return errors.Errorf("unsupported submission type %T", sub)
	}
}

func (c *Client) encodeMultipart(s *media.MultipartSubmission) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range s.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", errors.Wrapf(err, "failed to write field %s", f.Name)
		}
	}

	for _, f := range s.Files {
		if err := c.writeFile(w, f); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to close multipart body")
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

func (c *Client) writeFile(w *multipart.Writer, f media.File) error {
	src, err := c.openFile(f.Path)
	if err != nil {
		return errors.Wrapf(err, "failed to open %s", f.Path)
	}
	defer src.Close()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
	header.Set("Content-Type", f.ContentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return errors.Wrapf(err, "failed to create part for %s", f.Filename)
	}

	if _, err := io.Copy(part, src); err != nil {
		return errors.Wrapf(err, "failed to read %s", f.Path)
	}

	return nil
}

func openLocalFile(path string) (io.ReadCloser, error) {
	return os.Open(strings.TrimPrefix(path, "file://"))
}

