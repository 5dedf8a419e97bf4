// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cjkname

import (
	"testing"

	"piiscan/internal/detector"
)

func analyzeNames(t *testing.T, text string) []detector.Candidate {
	t.Helper()
	got, err := NewRecognizer().Analyze(text, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestDetectsSimpleName(t *testing.T) {
	got := analyzeNames(t, "和李四")
	if len(got) != 1 {
		t.Fatalf("expected 1 name, got %d", len(got))
	}
	c := got[0]
	if c.EntityType != detector.EntityPerson {
		t.Errorf("expected PERSON, got %s", c.EntityType)
	}
	// 和 is 3 bytes; 李四 spans bytes 3-9.
	if c.Start != 3 || c.End != 9 {
		t.Errorf("expected span [3, 9), got [%d, %d)", c.Start, c.End)
	}
	if "和李四"[c.Start:c.End] != "李四" {
		t.Errorf("expected span text 李四, got %q", "和李四"[c.Start:c.End])
	}
}

func TestTwoNamesInRunningText(t *testing.T) {
	text := "张三和李四的邮箱"
	got := analyzeNames(t, text)
	if len(got) != 2 {
		t.Fatalf("expected 2 names, got %d: %+v", len(got), got)
	}
	if text[got[0].Start:got[0].End] != "张三" {
		t.Errorf("expected first name 张三, got %q", text[got[0].Start:got[0].End])
	}
	if text[got[1].Start:got[1].End] != "李四" {
		t.Errorf("expected second name 李四, got %q", text[got[1].Start:got[1].End])
	}

	// Results must be sorted and non-overlapping.
	if got[0].Start >= got[1].Start || got[0].End > got[1].Start {
		t.Errorf("names overlap or are unsorted: %+v", got)
	}
}

func TestCompoundSurname(t *testing.T) {
	text := "欧阳锋出现了"
	got := analyzeNames(t, text)
	if len(got) != 1 {
		t.Fatalf("expected 1 name, got %d: %+v", len(got), got)
	}
	if text[got[0].Start:got[0].End] != "欧阳锋" {
		t.Errorf("expected 欧阳锋, got %q", text[got[0].Start:got[0].End])
	}
}

func TestTwoCharGivenNameAtBoundary(t *testing.T) {
	// Given name extends to two characters when followed by non-Han text.
	text := "王小明 is here"
	got := analyzeNames(t, text)
	if len(got) != 1 {
		t.Fatalf("expected 1 name, got %d: %+v", len(got), got)
	}
	if text[got[0].Start:got[0].End] != "王小明" {
		t.Errorf("expected 王小明, got %q", text[got[0].Start:got[0].End])
	}
	if got[0].Score != 0.85 {
		t.Errorf("expected score 0.85, got %v", got[0].Score)
	}
}

func TestDenylistSuppressesCommonWords(t *testing.T) {
	for _, text := range []string{"马上就到", "白天工作", "方法不对"} {
		if got := analyzeNames(t, text); len(got) != 0 {
			t.Errorf("expected no names in %q, got %+v", text, got)
		}
	}
}

func TestNoNamesInLatinText(t *testing.T) {
	if got := analyzeNames(t, "John Smith sent an email"); len(got) != 0 {
		t.Errorf("expected no names in Latin text, got %+v", got)
	}
}

func TestSurnameWithoutGivenName(t *testing.T) {
	// A surname character followed by non-Han text is not a name.
	if got := analyzeNames(t, "王 alone"); len(got) != 0 {
		t.Errorf("expected no names, got %+v", got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := analyzeNames(t, ""); got != nil {
		t.Errorf("expected nil for empty input, got %+v", got)
	}
}
