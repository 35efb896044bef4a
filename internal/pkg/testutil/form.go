package testutil

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateMultipartBody builds a multipart body carrying a single file under
// fieldName, plus optional plain form values. It returns the body and its
// content type.
func CreateMultipartBody(t *testing.T, fieldName, fileName string, content []byte, values map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body, writer := writeMultipart(t, fieldName, fileName, content, values)
	return body, writer.FormDataContentType()
}

func writeMultipart(t *testing.T, fieldName, fileName string, content []byte, values map[string]string) (*bytes.Buffer, *multipart.Writer) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range values {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile(fieldName, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer
}
