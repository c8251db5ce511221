// internal/profile/upload_test.go

package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectNameKeepsExtension(t *testing.T) {
	name := objectName("selfie.JPG")
	assert.True(t, strings.HasSuffix(name, ".JPG"))

	other := objectName("selfie.JPG")
	assert.NotEqual(t, name, other, "stored names must not collide")
}

func TestObjectNameNoExtension(t *testing.T) {
	name := objectName("selfie")
	assert.NotContains(t, name, ".")
	assert.NotEmpty(t, name)
}

func TestKeyFromURL(t *testing.T) {
	base := "https://lovelink-uploads.s3.us-east-1.amazonaws.com"
	assert.Equal(t, "avatars/abc_1.png", keyFromURL(base+"/avatars/abc_1.png", base))

	// Local URLs carry the folder the same way.
	assert.Equal(t, "avatars/abc_1.png", keyFromURL("http://localhost:8080/uploads/avatars/abc_1.png", "http://localhost:8080/uploads"))
}
