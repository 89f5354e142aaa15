package upload

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func okUploader() Uploader {
	return UploaderFunc(func(_ context.Context, filename, _ string, content io.Reader) (string, error) {
		if _, err := io.Copy(io.Discard, content); err != nil {
			return "", err
		}
		return "https://cdn.local/uploads/" + filename, nil
	})
}

func failingUploader(err error) Uploader {
	return UploaderFunc(func(_ context.Context, _, _ string, content io.Reader) (string, error) {
		io.Copy(io.Discard, content)
		return "", err
	})
}

func testRules() Rules {
	return Rules{MaxSize: 1024, AllowedExtensions: []string{".pdf", ".png"}}
}

func TestValidUploadReachesUploaded(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()))
	content := bytes.NewReader([]byte("%PDF-1.4 test content"))

	id, err := m.Add(context.Background(), "license.pdf", "license", int64(content.Len()), content)
	require.NoError(t, err)
	m.Wait()

	doc, err := m.Get(id)
	require.NoError(t, err)
	require.Equal(t, StatusUploaded, doc.Status)
	require.Equal(t, 100, doc.Progress)
	require.Equal(t, "https://cdn.local/uploads/license.pdf", doc.URL)
	require.NoError(t, doc.Err)
}

func TestOversizedFileRejectedLocally(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()))
	_, err := m.Add(context.Background(), "big.pdf", "license", 4096, strings.NewReader("x"))
	require.Error(t, err)
	// rejected files are never tracked, so no status ever reaches uploading
	require.Empty(t, m.List())
}

func TestDisallowedExtensionRejectedLocally(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()))
	_, err := m.Add(context.Background(), "malware.exe", "license", 10, strings.NewReader("x"))
	require.Error(t, err)
	require.Empty(t, m.List())
}

func TestUploadFailureResetsProgress(t *testing.T) {
	m := NewManager(failingUploader(errors.New("storage full")), WithRules(testRules()))
	content := strings.NewReader("%PDF-1.4")

	id, err := m.Add(context.Background(), "license.pdf", "license", int64(content.Len()), content)
	require.NoError(t, err)
	m.Wait()

	doc, err := m.Get(id)
	require.NoError(t, err)
	require.Equal(t, StatusError, doc.Status)
	require.Equal(t, 0, doc.Progress)
	require.Empty(t, doc.URL)
	require.EqualError(t, doc.Err, "storage full")
}

func TestProgressAdvancesDuringUpload(t *testing.T) {
	var observed []int
	m := NewManager(okUploader(), WithRules(testRules()))
	m.OnProgress(func(doc *Document) {
		observed = append(observed, doc.GetProgress())
	})
	payload := bytes.Repeat([]byte("a"), 512)

	_, err := m.Add(context.Background(), "license.pdf", "license", int64(len(payload)), bytes.NewReader(payload))
	require.NoError(t, err)
	m.Wait()

	require.NotEmpty(t, observed)
	require.Equal(t, 100, observed[len(observed)-1])
	for _, p := range observed {
		require.LessOrEqual(t, p, 100)
	}
}

func TestSingleCategoryReplacesPriorSelection(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()), WithSingleCategory("license"))

	first := strings.NewReader("one")
	_, err := m.Add(context.Background(), "first.pdf", "license", int64(first.Len()), first)
	require.NoError(t, err)
	m.Wait()

	second := strings.NewReader("two")
	secondID, err := m.Add(context.Background(), "second.pdf", "license", int64(second.Len()), second)
	require.NoError(t, err)
	m.Wait()

	docs := m.ListByCategory("license")
	require.Len(t, docs, 1)
	require.Equal(t, secondID, docs[0].ID)
	require.Equal(t, "second.pdf", docs[0].Name)
}

func TestMultipleCategoriesCoexist(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()), WithSingleCategory("license"))

	a := strings.NewReader("a")
	_, err := m.Add(context.Background(), "menu1.png", "photos", int64(a.Len()), a)
	require.NoError(t, err)
	b := strings.NewReader("b")
	_, err = m.Add(context.Background(), "menu2.png", "photos", int64(b.Len()), b)
	require.NoError(t, err)
	m.Wait()

	require.Len(t, m.ListByCategory("photos"), 2)
}

func TestRemoveIsLocalOnly(t *testing.T) {
	uploads := 0
	uploader := UploaderFunc(func(_ context.Context, filename, _ string, content io.Reader) (string, error) {
		uploads++
		io.Copy(io.Discard, content)
		return "https://cdn.local/" + filename, nil
	})
	m := NewManager(uploader, WithRules(testRules()))
	content := strings.NewReader("x")
	id, err := m.Add(context.Background(), "doc.pdf", "license", int64(content.Len()), content)
	require.NoError(t, err)
	m.Wait()

	require.NoError(t, m.Remove(id))
	require.Empty(t, m.List())
	require.Equal(t, 1, uploads, "removal issues no server call")

	require.ErrorIs(t, m.Remove(id), ErrDocumentNotFound)
}

func TestURLsCollectsUploadedOnly(t *testing.T) {
	m := NewManager(okUploader(), WithRules(testRules()))
	ok := strings.NewReader("good")
	_, err := m.Add(context.Background(), "good.pdf", "license", int64(ok.Len()), ok)
	require.NoError(t, err)
	m.Wait()

	failing := NewManager(failingUploader(errors.New("nope")), WithRules(testRules()))
	bad := strings.NewReader("bad")
	_, err = failing.Add(context.Background(), "bad.pdf", "license", int64(bad.Len()), bad)
	require.NoError(t, err)
	failing.Wait()

	require.Equal(t, []string{"https://cdn.local/uploads/good.pdf"}, m.URLs())
	require.Empty(t, failing.URLs())
}

func TestStatusStrings(t *testing.T) {
	require.Equal(t, "pending", StatusPending.String())
	require.Equal(t, "uploading", StatusUploading.String())
	require.Equal(t, "uploaded", StatusUploaded.String())
	require.Equal(t, "error", StatusError.String())
}
