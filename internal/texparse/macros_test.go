// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package texparse

import (
	"reflect"
	"testing"
)

func TestExtractLabels(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", `\label{foo}`, []string{"foo"}},
		{"multiple in order", `\label{first}\label{second}\label{third}`, []string{"first", "second", "third"}},
		{"none", "no labels here", nil},
		{
			"nested environments ignored",
			"\\label{top_level}\nSome text.\n\\begin{equation}\\label{nested_eq}\nx = y\n\\end{equation}\nMore.\n\\begin{align}\\label{nested_align}\na = b\n\\end{align}",
			[]string{"top_level"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLabels(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractLabels(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractCodeNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single", `\lean{Subgraph.Equation387_implies_Equation43}`, []string{"Subgraph.Equation387_implies_Equation43"}},
		{"comma separated", `\lean{Foo.bar, Foo.baz}`, []string{"Foo.bar", "Foo.baz"}},
		{"empty entries dropped", `\lean{Foo, , Bar}`, []string{"Foo", "Bar"}},
		{"absent", "no lean here", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCodeNames(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractCodeNames(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractDiscussions(t *testing.T) {
	in := `\discussion{123} text \discussion{issue 9} more \discussion{123}`
	want := []string{"123", "issue 9", "123"}
	got := ExtractDiscussions(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractDiscussions = %v, want %v", got, want)
	}
}

func TestParseAnnotationsFlags(t *testing.T) {
	ann := ParseAnnotations(`\leanok \notready some text`)
	if !ann.SpecOK || ann.MathlibOK || !ann.NotReady {
		t.Errorf("flags = %+v", ann)
	}

	ann = ParseAnnotations(`\mathlibok`)
	if ann.SpecOK || !ann.MathlibOK || ann.NotReady {
		t.Errorf("flags = %+v", ann)
	}

	ann = ParseAnnotations("nothing")
	if ann.SpecOK || ann.MathlibOK || ann.NotReady {
		t.Errorf("flags = %+v", ann)
	}
}

func TestParseAnnotationsReferenceLists(t *testing.T) {
	ann := ParseAnnotations(`\uses{eq387,eq43}\proves{r, s, t}`)
	if !reflect.DeepEqual(ann.Uses, []string{"eq387", "eq43"}) {
		t.Errorf("Uses = %v", ann.Uses)
	}
	if !reflect.DeepEqual(ann.Proves, []string{"r", "s", "t"}) {
		t.Errorf("Proves = %v", ann.Proves)
	}

	ann = ParseAnnotations("no refs")
	if ann.Uses != nil || ann.Proves != nil {
		t.Errorf("expected empty lists, got %+v", ann)
	}
}

func TestParseAnnotationsFindsMacrosInsideNestedEnvs(t *testing.T) {
	// Only labels are restricted to top level; flags and references
	// count wherever they appear in the block.
	in := "\\begin{equation}\\label{nested}\\leanok\\uses{dep}\\end{equation}"
	ann := ParseAnnotations(in)
	if ann.Labels != nil {
		t.Errorf("Labels = %v, want none", ann.Labels)
	}
	if !ann.SpecOK {
		t.Error("SpecOK should be found inside nested environment")
	}
	if !reflect.DeepEqual(ann.Uses, []string{"dep"}) {
		t.Errorf("Uses = %v", ann.Uses)
	}
}
