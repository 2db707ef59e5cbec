package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryEmptyRendersNothing(t *testing.T) {
	r, err := NewRenderer(nil)
	require.NoError(t, err)

	for _, attachments := range [][]string{nil, {}} {
		view := AttachmentGallery{Attachments: attachments}.Render()
		assert.Nil(t, view)

		html, err := r.Gallery(view)
		require.NoError(t, err)
		assert.Empty(t, html)
	}
}

func TestGalleryThumbnailsInOrder(t *testing.T) {
	view := AttachmentGallery{Attachments: []string{"a.png", "b.png", "c.png"}}.Render()
	require.NotNil(t, view)

	assert.Equal(t, 3, view.Count)
	assert.Contains(t, view.Header, "3")
	require.Len(t, view.Thumbnails, 3)
	for i, ref := range []string{"a.png", "b.png", "c.png"} {
		assert.Equal(t, ref, view.Thumbnails[i].Alt)
		assert.Equal(t, i, view.Thumbnails[i].Index)
		assert.Equal(t, DefaultPlaceholder, view.Thumbnails[i].Src)
	}
}

func TestGalleryUsesPlaceholderNotReference(t *testing.T) {
	view := AttachmentGallery{
		Attachments: []string{"https://cdn.example.com/real.png"},
		Placeholder: "/img/placeholder.png",
	}.Render()
	require.NotNil(t, view)
	assert.Equal(t, "/img/placeholder.png", view.Thumbnails[0].Src)

	r, err := NewRenderer(nil)
	require.NoError(t, err)
	html, err := r.Gallery(view)
	require.NoError(t, err)
	assert.NotContains(t, string(html), `src="https://cdn.example.com/real.png"`)
	assert.Contains(t, string(html), `alt="https://cdn.example.com/real.png"`)
}

func TestGalleryHTML(t *testing.T) {
	r, err := NewRenderer(nil)
	require.NoError(t, err)

	html, err := r.Gallery(AttachmentGallery{Attachments: []string{"a.png", "b.png", "c.png"}}.Render())
	require.NoError(t, err)
	out := string(html)

	assert.Contains(t, out, "Attachments (3)")
	assert.Equal(t, 3, strings.Count(out, `class="thumbnail"`))
	assert.Equal(t, 3, strings.Count(out, "<span>View</span>"))
	a := strings.Index(out, `alt="a.png"`)
	b := strings.Index(out, `alt="b.png"`)
	c := strings.Index(out, `alt="c.png"`)
	assert.True(t, a < b && b < c, "thumbnails out of order")
}
