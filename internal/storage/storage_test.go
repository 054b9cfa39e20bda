package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"hirehub/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// buildPDF renders a minimal PDF with the given number of blank pages.
func buildPDF(pages int) []byte {
	var buf bytes.Buffer
	var offsets []int
	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", len(offsets), body)
	}

	buf.WriteString("%PDF-1.4\n")
	obj("<< /Type /Catalog /Pages 2 0 R >>")
	kids := make([]string, pages)
	for i := range kids {
		kids[i] = fmt.Sprintf("%d 0 R", i+3)
	}
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages))
	for i := 0; i < pages; i++ {
		obj("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] >>")
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)
	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		upload  Upload
		message string
	}{
		{"pdf", Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: 10}, ""},
		{"docx", Upload{Filename: "CV.DOCX", ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document", Size: 10}, ""},
		{"doc with params", Upload{Filename: "cv.doc", ContentType: "application/msword; charset=binary", Size: 10}, ""},
		{"wrong extension", Upload{Filename: "cv.exe", ContentType: "application/pdf", Size: 10}, "Only PDF, DOC, DOCX files are allowed"},
		{"wrong content type", Upload{Filename: "cv.pdf", ContentType: "image/png", Size: 10}, "Only PDF, DOC, DOCX files are allowed"},
		{"missing content type", Upload{Filename: "cv.pdf", Size: 10}, "Only PDF, DOC, DOCX files are allowed"},
		{"too large", Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: MaxResumeSize + 1}, "File too large"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.upload)
			if tc.message == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tc.message, apperr.MessageOf(err))
		})
	}
}

func TestStoredName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "1700000000123-my_cv.pdf", StoredName(now, "my cv.pdf"))
	assert.Equal(t, "1700000000123-passwd.pdf", StoredName(now, "../../etc/passwd.pdf"))
	assert.Equal(t, "1700000000123-cv.docx", StoredName(now, `C:\Users\me\cv.docx`))
	assert.Equal(t, "1700000000123-resume", StoredName(now, "..."))
}

func TestInspectPDF(t *testing.T) {
	pages, err := InspectPDF(buildPDF(3))
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	_, err = InspectPDF([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func newResumes(t *testing.T) (*Resumes, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)
	r := NewResumes(store, zap.NewNop())
	r.now = func() time.Time { return time.UnixMilli(42) }
	return r, dir
}

func TestResumes_SaveAndOpen(t *testing.T) {
	r, dir := newResumes(t)
	ctx := context.Background()
	data := buildPDF(1)

	path, err := r.Save(ctx, Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: int64(len(data)), Body: bytes.NewReader(data)})
	require.NoError(t, err)
	assert.Equal(t, "uploads/resumes/42-cv.pdf", path)

	onDisk, err := os.ReadFile(filepath.Join(dir, "42-cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	rc, err := r.Open(ctx, "42-cv.pdf")
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestResumes_SaveAcceptsUnreadablePDF(t *testing.T) {
	r, _ := newResumes(t)
	body := []byte("%PDF-1.4 truncated")
	path, err := r.Save(context.Background(), Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: int64(len(body)), Body: bytes.NewReader(body)})
	require.NoError(t, err)
	assert.Equal(t, "uploads/resumes/42-cv.pdf", path)
}

func TestResumes_SaveRejectsBeforeWriting(t *testing.T) {
	r, dir := newResumes(t)
	ctx := context.Background()

	_, err := r.Save(ctx, Upload{Filename: "cv.txt", ContentType: "text/plain", Body: strings.NewReader("hi")})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// declared size lies; the body is still capped
	big := bytes.Repeat([]byte("a"), MaxResumeSize+10)
	_, err = r.Save(ctx, Upload{Filename: "cv.doc", ContentType: "application/msword", Size: 1, Body: bytes.NewReader(big)})
	assert.Equal(t, "File too large", apperr.MessageOf(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResumes_Remove(t *testing.T) {
	r, dir := newResumes(t)
	ctx := context.Background()
	data := buildPDF(1)

	path, err := r.Save(ctx, Upload{Filename: "cv.pdf", ContentType: "application/pdf", Size: int64(len(data)), Body: bytes.NewReader(data)})
	require.NoError(t, err)
	require.NoError(t, r.Remove(ctx, path))
	_, err = os.Stat(filepath.Join(dir, "42-cv.pdf"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, r.Remove(ctx, path), "removing twice is fine")
	assert.Error(t, r.Remove(ctx, "uploads/resumes/../secret"))
	assert.Error(t, r.Remove(ctx, ""))
}

func TestResumes_OpenRejectsTraversalAndMissing(t *testing.T) {
	r, _ := newResumes(t)
	ctx := context.Background()
	for _, name := range []string{"", "../secret", ".env", "a/b.pdf", "missing.pdf"} {
		_, err := r.Open(ctx, name)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), name)
	}
}

func TestGCSStoreKeys(t *testing.T) {
	ctx := context.Background()
	_, err := NewGCSStore(ctx, "", "resumes")
	assert.Error(t, err)

	store, err := NewGCSStore(ctx, "bucket", "/resumes/", option.WithoutAuthentication())
	require.NoError(t, err)
	defer store.Close()
	assert.Equal(t, "resumes/1-cv.pdf", store.key("1-cv.pdf"))

	bare, err := NewGCSStore(ctx, "bucket", "", option.WithoutAuthentication())
	require.NoError(t, err)
	defer bare.Close()
	assert.Equal(t, "1-cv.pdf", bare.key("1-cv.pdf"))
}
