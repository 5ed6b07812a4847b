package apifake_test

import (
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

const multipartBoundary = "roomshare-test-boundary"

var multipartContentType = "multipart/form-data; boundary=" + multipartBoundary

func writeMultipart(t *testing.T, w io.Writer, filename, content string) {
	t.Helper()

	form := multipart.NewWriter(w)
	require.NoError(t, form.SetBoundary(multipartBoundary))
	part, err := form.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, form.Close())
}
