package parser

import (
	"strings"
	"testing"
)

func TestParseFrontMatter_Recognized(t *testing.T) {
	source := `---
title: Getting Started
description: A short guide
tags:
  - intro
  - setup
category: guides
author: jane
---
# Body

Text.
`
	fm, body := ParseFrontMatter([]byte(source))

	if fm.Title != "Getting Started" {
		t.Errorf("expected title, got %q", fm.Title)
	}
	if fm.Description != "A short guide" {
		t.Errorf("expected description, got %q", fm.Description)
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "intro" {
		t.Errorf("expected tags [intro setup], got %v", fm.Tags)
	}
	if fm.Category != "guides" {
		t.Errorf("expected category guides, got %q", fm.Category)
	}
	if fm.Extra["author"] != "jane" {
		t.Errorf("expected residual author key, got %v", fm.Extra)
	}
	if strings.Contains(string(body), "title:") {
		t.Errorf("body should not include the header, got %q", string(body))
	}
	if !strings.Contains(string(body), "# Body") {
		t.Errorf("body should keep the markdown, got %q", string(body))
	}
}

func TestParseFrontMatter_None(t *testing.T) {
	source := "# Just Markdown\n\nNo header.\n"
	fm, body := ParseFrontMatter([]byte(source))
	if fm.Title != "" || len(fm.Extra) != 0 {
		t.Errorf("expected empty front-matter, got %+v", fm)
	}
	if string(body) != source {
		t.Errorf("expected body unchanged, got %q", string(body))
	}
}

func TestParseFrontMatter_MalformedDegradesSilently(t *testing.T) {
	source := "---\n[unclosed\n---\n# Body\n"
	fm, body := ParseFrontMatter([]byte(source))
	if fm.Title != "" || fm.Category != "" || len(fm.Tags) != 0 {
		t.Errorf("expected empty front-matter on parse failure, got %+v", fm)
	}
	if string(body) != source {
		t.Errorf("expected full source as body on parse failure, got %q", string(body))
	}
}

func TestFrontMatterMap(t *testing.T) {
	source := "---\ntitle: Foo\nowner: team-docs\n---\nBody\n"
	fm, _ := ParseFrontMatter([]byte(source))

	m := fm.Map()
	if m["title"] != "Foo" {
		t.Errorf("expected title in map, got %v", m)
	}
	if m["owner"] != "team-docs" {
		t.Errorf("expected residual key in map, got %v", m)
	}
}
