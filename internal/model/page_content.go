package model

// Content block types accepted for page content.
const (
	ContentText    = "text"
	ContentHeading = "heading"
	ContentImage   = "image"
	ContentHero    = "hero"
)

// PageContent is a free-form content block in the `page_content` table,
// letting staff override static copy without a deploy. Blocks are keyed
// by (page, section) by convention; uniqueness of the pair is not
// enforced, the storefront simply uses the first match per section.
//
// Fields:
//  ID          – primary key identifier.
//  Page        – page the block belongs to (e.g. "home", "about").
//  Section     – named slot within the page (e.g. "hero", "intro").
//  ContentType – text, heading, image or hero.
//  Content     – the copy itself; empty for pure image blocks.
//  ImageURL    – optional image for image/hero blocks.
//  Order       – sort position within the page.
type PageContent struct {
	ID          uint64 `json:"id,string"`          // page_content.id
	Page        string `json:"page"`               // page_content.page
	Section     string `json:"section"`            // page_content.section
	ContentType string `json:"contentType"`        // page_content.content_type
	Content     string `json:"content"`            // page_content.content
	ImageURL    string `json:"imageUrl,omitempty"` // page_content.image_url
	Order       int    `json:"order"`              // page_content.sort_order
}

// ValidContentType reports whether t is a known content block type.
func ValidContentType(t string) bool {
	switch t {
	case ContentText, ContentHeading, ContentImage, ContentHero:
		return true
	}
	return false
}
