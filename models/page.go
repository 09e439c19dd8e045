package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BlockType identifies which content payload a Block carries.
type BlockType string

const (
	BlockHero    BlockType = "hero"
	BlockHeading BlockType = "heading"
	BlockText    BlockType = "text"
	BlockImage   BlockType = "image"
	BlockVideo   BlockType = "video"
	BlockButton  BlockType = "button"
	BlockHTML    BlockType = "html"
	BlockSpacer  BlockType = "spacer"
	BlockColumns BlockType = "columns"
	BlockGallery BlockType = "gallery"
	BlockCard    BlockType = "card"
	BlockForm    BlockType = "form"
)

// Block is one typed, orderable content unit inside a Page.
// Content is stored as raw JSON (the pages.blocks column is JSONB) and decoded
// into the payload type matching Type on demand.
type Block struct {
	ID       string          `json:"id"`
	Type     BlockType       `json:"type"`
	Content  json.RawMessage `json:"content"`
	Settings *BlockSettings  `json:"settings,omitempty"`
}

// BlockSettings holds optional layout/style overrides for a single block.
// Pointers distinguish "not set, inherit default" from an explicit zero.
type BlockSettings struct {
	MarginTop     *int    `json:"margin_top,omitempty"`
	MarginBottom  *int    `json:"margin_bottom,omitempty"`
	MarginLeft    *int    `json:"margin_left,omitempty"`
	MarginRight   *int    `json:"margin_right,omitempty"`
	PaddingTop    *int    `json:"padding_top,omitempty"`
	PaddingBottom *int    `json:"padding_bottom,omitempty"`
	PaddingLeft   *int    `json:"padding_left,omitempty"`
	PaddingRight  *int    `json:"padding_right,omitempty"`
	Background    *string `json:"background,omitempty"`
	TextColor     *string `json:"text_color,omitempty"`
	FontSize      *int    `json:"font_size,omitempty"`
	TextAlign     *string `json:"text_align,omitempty"`
	Width         *string `json:"width,omitempty"`
	Height        *string `json:"height,omitempty"`
	BorderRadius  *int    `json:"border_radius,omitempty"`
	Shadow        *bool   `json:"shadow,omitempty"`
	Animation     *string `json:"animation,omitempty"`
}

// HeroButton is a call-to-action inside a hero block.
type HeroButton struct {
	Label   string  `json:"label"`
	Href    string  `json:"href"`
	Variant *string `json:"variant,omitempty"`
}

// HeroContent is the payload for hero blocks.
type HeroContent struct {
	Title           string       `json:"title"`
	Subtitle        *string      `json:"subtitle,omitempty"`
	BackgroundImage *string      `json:"background_image,omitempty"`
	Buttons         []HeroButton `json:"buttons,omitempty"`
}

// HeadingContent is the payload for heading blocks.
type HeadingContent struct {
	Text  string `json:"text"`
	Level int    `json:"level"`
}

// TextContent is the payload for text blocks.
type TextContent struct {
	Text string `json:"text"`
}

// ImageContent is the payload for image blocks.
type ImageContent struct {
	Src     string  `json:"src"`
	Alt     *string `json:"alt,omitempty"`
	Caption *string `json:"caption,omitempty"`
}

// VideoContent is the payload for video blocks.
type VideoContent struct {
	URL      string `json:"url"`
	Autoplay *bool  `json:"autoplay,omitempty"`
	Loop     *bool  `json:"loop,omitempty"`
}

// ButtonContent is the payload for standalone button blocks.
type ButtonContent struct {
	Label   string  `json:"label"`
	Href    string  `json:"href"`
	Variant *string `json:"variant,omitempty"`
}

// HTMLContent is the payload for raw html blocks.
type HTMLContent struct {
	HTML string `json:"html"`
}

// SpacerContent is the payload for spacer blocks.
type SpacerContent struct {
	Height int `json:"height"`
}

// Column is one column inside a columns block; columns nest ordinary blocks.
type Column struct {
	Blocks []Block `json:"blocks"`
}

// ColumnsContent is the payload for columns blocks.
type ColumnsContent struct {
	Columns []Column `json:"columns"`
}

// GalleryContent is the payload for gallery blocks.
type GalleryContent struct {
	Images []ImageContent `json:"images"`
}

// CardContent is the payload for card blocks.
type CardContent struct {
	Title    string  `json:"title"`
	Text     *string `json:"text,omitempty"`
	ImageSrc *string `json:"image_src,omitempty"`
	Href     *string `json:"href,omitempty"`
}

// FormField describes one input of a form block.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// FormContent is the payload for form blocks.
type FormContent struct {
	SubmitLabel *string     `json:"submit_label,omitempty"`
	Fields      []FormField `json:"fields"`
}

// DecodeContent unmarshals the raw content into the payload type matching the
// block type. The switch is exhaustive over the block catalog; adding a new
// type without a case here is a compile-visible omission at review time and a
// runtime error for callers.
func (b Block) DecodeContent() (interface{}, error) {
	decode := func(dst interface{}) (interface{}, error) {
		if len(b.Content) == 0 {
			return dst, nil
		}
		if err := json.Unmarshal(b.Content, dst); err != nil {
			return nil, fmt.Errorf("decode %s block %s content: %w", b.Type, b.ID, err)
		}
		return dst, nil
	}

	switch b.Type {
	case BlockHero:
		return decode(&HeroContent{})
	case BlockHeading:
		return decode(&HeadingContent{})
	case BlockText:
		return decode(&TextContent{})
	case BlockImage:
		return decode(&ImageContent{})
	case BlockVideo:
		return decode(&VideoContent{})
	case BlockButton:
		return decode(&ButtonContent{})
	case BlockHTML:
		return decode(&HTMLContent{})
	case BlockSpacer:
		return decode(&SpacerContent{})
	case BlockColumns:
		return decode(&ColumnsContent{})
	case BlockGallery:
		return decode(&GalleryContent{})
	case BlockCard:
		return decode(&CardContent{})
	case BlockForm:
		return decode(&FormContent{})
	default:
		return nil, fmt.Errorf("unknown block type %q", b.Type)
	}
}

// Validate checks the structural invariants of a block: a non-empty id, a type
// from the catalog, and content that decodes into that type's payload.
func (b Block) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("block of type %q is missing an id", b.Type)
	}
	if _, err := b.DecodeContent(); err != nil {
		return err
	}
	return nil
}

// ValidateBlocks validates every block and rejects duplicate ids within the
// page. Block ids only need to be unique per page, not globally; blocks nested
// inside columns count against the same page-level id set.
func ValidateBlocks(blocks []Block) error {
	seen := make(map[string]struct{}, len(blocks))
	return validateBlocks(blocks, seen)
}

func validateBlocks(blocks []Block, seen map[string]struct{}) error {
	for i, b := range blocks {
		if b.ID == "" {
			return fmt.Errorf("block %d: block of type %q is missing an id", i, b.Type)
		}
		payload, err := b.DecodeContent()
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("block %d: duplicate block id %q", i, b.ID)
		}
		seen[b.ID] = struct{}{}
		if cols, ok := payload.(*ColumnsContent); ok {
			for j, col := range cols.Columns {
				if err := validateBlocks(col.Blocks, seen); err != nil {
					return fmt.Errorf("block %d: column %d: %w", i, j, err)
				}
			}
		}
	}
	return nil
}

// Page is a named, ordered collection of blocks built in the page editor.
// Slug is the unique lookup/upsert key; blocks render in slice order.
type Page struct {
	ID        uuid.UUID `json:"id,omitempty"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Blocks    []Block   `json:"blocks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
