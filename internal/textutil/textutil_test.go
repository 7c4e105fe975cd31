package textutil

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"hello world", []string{"hello", "world"}},
		{"idx:0.5, w=1", []string{"idx", "0", "5", "w", "1"}},
		{"", nil},
		{"  spaced   out  ", []string{"spaced", "out"}},
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTokenNgrams(t *testing.T) {
	tokens := []string{"a", "b", "c"}
	got := TokenNgrams(tokens, 1, 2)
	want := []string{"a", "b", "c", "a b", "b c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TokenNgrams = %v, want %v", got, want)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize("Hello\nBig   World")
	if got != "hello big world" {
		t.Errorf("Normalize = %q", got)
	}
}
