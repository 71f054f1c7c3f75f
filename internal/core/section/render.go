// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Heading is one entry of a section's outline.
type Heading struct {
	Level int    `json:"level"`
	ID    string `json:"id"`
	Text  string `json:"text"`
}

// Renderer converts section Markdown into HTML. Raw HTML in the source is
// not passed through.
type Renderer struct {
	markdown goldmark.Markdown
}

// NewRenderer builds a GitHub-flavoured Markdown renderer.
func NewRenderer() *Renderer {
	markdown := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.Strikethrough,
			extension.Table,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Renderer{markdown: markdown}
}

/*
Render parses source once and returns the HTML and the heading outline.

Parameters:
  - source: string (Markdown)

Returns:
  - string: HTML
  - []Heading: Headings in document order
  - error: Rendering failures
*/
func (renderer *Renderer) Render(source string) (string, []Heading, error) {
	src := []byte(source)
	document := renderer.markdown.Parser().Parse(text.NewReader(src), parser.WithContext(parser.NewContext()))

	var outline []Heading
	err := ast.Walk(document, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		heading, ok := node.(*ast.Heading)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}

		entry := Heading{Level: heading.Level, Text: headingText(heading, src)}
		if id, found := heading.AttributeString("id"); found {
			if value, isBytes := id.([]byte); isBytes {
				entry.ID = string(value)
			}
		}
		outline = append(outline, entry)

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return "", nil, fmt.Errorf("render: failed to walk markdown: %w", err)
	}

	var buffer bytes.Buffer
	if err := renderer.markdown.Renderer().Render(&buffer, src, document); err != nil {
		return "", nil, fmt.Errorf("render: failed to render markdown: %w", err)
	}

	return buffer.String(), outline, nil
}

// headingText concatenates the text segments below a heading.
func headingText(heading *ast.Heading, src []byte) string {
	var buffer bytes.Buffer
	_ = ast.Walk(heading, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if segment, ok := node.(*ast.Text); ok && entering {
			buffer.Write(segment.Segment.Value(src))
		}
		return ast.WalkContinue, nil
	})
	return buffer.String()
}

// hydrate fills the derived HTML fields of a section.
func (renderer *Renderer) hydrate(section *Section) error {
	html, outline, err := renderer.Render(section.Content)
	if err != nil {
		return err
	}
	section.ContentHTML = html
	section.Outline = outline
	return nil
}
