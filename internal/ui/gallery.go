package ui

import "strconv"

// DefaultPlaceholder is the image shown for every thumbnail until attachments carry real sources.
const DefaultPlaceholder = "/static/placeholder.svg"

// ThumbnailSize is the edge of each square thumbnail, in pixels.
const ThumbnailSize = 96

type AttachmentGallery struct {
	Attachments []string
	Placeholder string
}

type Thumbnail struct {
	Key   string
	Alt   string
	Src   string
	Index int
}

type GalleryView struct {
	Header      string
	Count       int
	Size        int
	Thumbnails  []Thumbnail
	ActionLabel string
	ActionIcon  Icon
}

// Render returns nil when there is nothing to show.
func (g AttachmentGallery) Render() *GalleryView {
	if len(g.Attachments) == 0 {
		return nil
	}

	src := g.Placeholder
	if src == "" {
		src = DefaultPlaceholder
	}

	view := &GalleryView{
		Header:      "Attachments (" + strconv.Itoa(len(g.Attachments)) + ")",
		Count:       len(g.Attachments),
		Size:        ThumbnailSize,
		Thumbnails:  make([]Thumbnail, 0, len(g.Attachments)),
		ActionLabel: "View",
		ActionIcon:  Icon{Name: "eye"},
	}
	for i, ref := range g.Attachments {
		view.Thumbnails = append(view.Thumbnails, Thumbnail{
			Key:   strconv.Itoa(i) + ":" + ref,
			Alt:   ref,
			Src:   src,
			Index: i,
		})
	}
	return view
}
