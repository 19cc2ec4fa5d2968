package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveBase64PlainPayload(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.SaveBase64("requests/u1/file.txt", "aGVsbG8=")
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(store.root, "requests/u1/file.txt"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSaveBase64DataURL(t *testing.T) {
	store := NewStore(t.TempDir())

	err := store.SaveBase64("docs/a.pdf", "data:application/pdf;base64,aGVsbG8=")
	assert.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(store.root, "docs/a.pdf"))
	assert.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestSaveBase64InvalidPayload(t *testing.T) {
	store := NewStore(t.TempDir())
	err := store.SaveBase64("x/y.bin", "!!! not base64 !!!")
	assert.Error(t, err)
}

func TestSaveBase64RejectsEscapingPath(t *testing.T) {
	root := t.TempDir()
	store := NewStore(root)

	for _, relPath := range []string{
		"../evil.txt",
		"requests/../../evil.txt",
		"../../../../../evil.txt",
	} {
		err := store.SaveBase64(relPath, "aGVsbG8=")
		assert.Error(t, err, relPath)
	}

	_, err := os.Stat(filepath.Join(root, "..", "evil.txt"))
	assert.True(t, os.IsNotExist(err), "no file may appear outside the root")
}

func TestRequestFilePathStripsTraversalName(t *testing.T) {
	p := RequestFilePath("user-1", "../../../../../evil.txt")
	assert.True(t, strings.HasPrefix(p, "requests/user-1/"))
	assert.True(t, strings.HasSuffix(p, "_evil.txt"))
	assert.NotContains(t, p, "..")
}

func TestDocumentFilePathStripsTraversalName(t *testing.T) {
	p := DocumentFilePath("emp-1", "identity", "../../evil.sh")
	assert.True(t, strings.HasPrefix(p, "documents/emp-1/identity/identity-"))
	assert.True(t, strings.HasSuffix(p, ".sh"))
	assert.NotContains(t, p, "..")
}

func TestRequestFilePath(t *testing.T) {
	p := RequestFilePath("user-1", "leave.pdf")
	assert.True(t, strings.HasPrefix(p, "requests/user-1/"))
	assert.True(t, strings.HasSuffix(p, "_leave.pdf"))
}

func TestDocumentFilePath(t *testing.T) {
	p := DocumentFilePath("emp-1", "identity", "passport.JPG")
	assert.True(t, strings.HasPrefix(p, "documents/emp-1/identity/identity-"))
	assert.True(t, strings.HasSuffix(p, ".JPG"))
}
