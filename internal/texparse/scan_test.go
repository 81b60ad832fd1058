// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"reflect"
	"testing"
)

func TestMaskNested(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single nested environment removed",
			in:   `Top level content \begin{equation}\label{nested}\end{equation} more content`,
			want: "Top level content  more content",
		},
		{
			name: "multiple nested environments",
			in:   `\begin{align}\label{a1}\end{align} text \begin{equation}\label{a2}\end{equation}`,
			want: " text ",
		},
		{
			name: "unmatched opener kept verbatim",
			in:   `before \begin{equation} after`,
			want: `before \begin{equation} after`,
		},
		{
			name: "unmatched opener then matched one",
			in:   `\begin{align} x \begin{equation}y\end{equation} z`,
			want: `\begin{align} x  z`,
		},
		{
			name: "same-name nesting closes at matching depth",
			in:   `a \begin{itemize}\begin{itemize}\end{itemize}\end{itemize} b`,
			want: "a  b",
		},
		{
			name: "no environments",
			in:   "plain text",
			want: "plain text",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaskNested(tt.in)
			if got != tt.want {
				t.Errorf("MaskNested(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanEnvironmentsSingleType(t *testing.T) {
	text := "\n\\begin{theorem}\\label{t1}\ncontent\n\\end{theorem}\n"
	blocks := ScanEnvironments(text, []string{"theorem"}, "file.tex")

	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	b := blocks[0]
	if b.Type != "theorem" || b.Path != "file.tex" {
		t.Errorf("block = %+v", b)
	}
	if b.Text != "\\label{t1}\ncontent\n" {
		t.Errorf("inner text = %q", b.Text)
	}
	if b.Lines.Start != 2 || b.Lines.End != 4 {
		t.Errorf("lines = %+v, want 2-4", b.Lines)
	}
}

func TestScanEnvironmentsMergesTypesInOrder(t *testing.T) {
	text := "\\begin{lemma}A\\end{lemma}\n\\begin{theorem}B\\end{theorem}\n\\begin{lemma}C\\end{lemma}\n"
	blocks := ScanEnvironments(text, []string{"theorem", "lemma"}, "f.tex")

	var got []string
	for _, b := range blocks {
		got = append(got, b.Type+":"+b.Text)
	}
	want := []string{"lemma:A", "theorem:B", "lemma:C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestScanEnvironmentsUnclosedIgnored(t *testing.T) {
	text := "\\begin{theorem}never closed"
	blocks := ScanEnvironments(text, []string{"theorem"}, "f.tex")
	if len(blocks) != 0 {
		t.Errorf("got %d blocks, want 0", len(blocks))
	}
}

func TestScanEnvironmentsOffsets(t *testing.T) {
	text := "xx\\begin{lemma}yy\\end{lemma}zz"
	blocks := ScanEnvironments(text, []string{"lemma"}, "f.tex")
	if len(blocks) != 1 {
		t.Fatalf("got %d blocks, want 1", len(blocks))
	}
	if blocks[0].StartOffset != 2 {
		t.Errorf("StartOffset = %d, want 2", blocks[0].StartOffset)
	}
	if text[blocks[0].EndOffset:] != "zz" {
		t.Errorf("EndOffset = %d, rest %q", blocks[0].EndOffset, text[blocks[0].EndOffset:])
	}
}

func TestLineAt(t *testing.T) {
	content := "line1\nline2\nline3"
	for _, tc := range []struct{ pos, want int }{
		{0, 1}, {5, 1}, {6, 2}, {12, 3},
	} {
		if got := lineAt(content, tc.pos); got != tc.want {
			t.Errorf("lineAt(%d) = %d, want %d", tc.pos, got, tc.want)
		}
	}
}
