package transport

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
)

// Multipart part names the Dataverse upload endpoints expect.
const (
	filePartName     = "file"
	jsonDataPartName = "jsonData"
)

// FileField is the binary payload of a multipart upload.
type FileField struct {
	// FileName is the file name sent to the server.
	FileName string
	// ContentType is the MIME type. Empty means application/octet-stream.
	ContentType string
	// Data is the file content. Used if Reader is nil.
	Data []byte
	// Reader is an alternative to Data. It is read exactly once while the
	// body is encoded.
	Reader io.Reader
}

// encodeMultipart builds a multipart/form-data body with a "file" part
// and/or a "jsonData" part. Either may be omitted; at least one must be
// present.
//
// The body is fully buffered so the lock-retry policy can replay it, which
// costs one copy of the file in memory. For the archive deposits this
// client is used for that trade-off is acceptable.
func encodeMultipart(file *FileField, jsonData []byte) ([]byte, string, error) {
	if file == nil && jsonData == nil {
		return nil, "", fmt.Errorf("transport: multipart upload needs a file or jsonData part")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if file != nil {
		contentType := file.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			`form-data; name="`+filePartName+`"; filename="`+escapeQuotes(file.FileName)+`"`)
		header.Set("Content-Type", contentType)
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if file.Reader != nil {
			if _, err := io.Copy(part, file.Reader); err != nil {
				return nil, "", err
			}
		} else {
			if _, err := part.Write(file.Data); err != nil {
				return nil, "", err
			}
		}
	}

	if jsonData != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+jsonDataPartName+`"`)
		header.Set("Content-Type", "application/json; charset=utf-8")
		part, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(jsonData); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}

// escapeQuotes replaces special characters in header values.
func escapeQuotes(s string) string {
	var buf bytes.Buffer
	for _, b := range []byte(s) {
		if b == '"' || b == '\\' {
			buf.WriteByte('\\')
		}
		buf.WriteByte(b)
	}
	return buf.String()
}
