package profile

import (
	"reflect"
	"testing"
)

func TestGet_Default(t *testing.T) {
	s := Get(DefaultSet)
	want := []Spec{
		{"extension/icon128.png", 128, "SAS"},
		{"extension/icon48.png", 48, "SAS"},
		{"extension/icon16.png", 16, "S"},
	}
	if !reflect.DeepEqual(s.Specs, want) {
		t.Errorf("specs: got %+v, want %+v", s.Specs, want)
	}
	if got := s.Sizes(); !reflect.DeepEqual(got, []int{128, 48, 16}) {
		t.Errorf("sizes: got %v", got)
	}
}

func TestGet_UnknownFallsBack(t *testing.T) {
	s := Get("nope")
	if s.Name != "nope" {
		t.Errorf("name: got %q", s.Name)
	}
	if len(s.Specs) != 3 {
		t.Errorf("specs: got %d, want 3", len(s.Specs))
	}
	if Known("nope") {
		t.Error("nope reported as known")
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := Get("mv3-full")
	s.Specs[0].Label = "changed"
	if Get("mv3-full").Specs[0].Label != "SAS" {
		t.Error("mutating a returned set changed the built-in")
	}
}

func TestNames(t *testing.T) {
	if got := Names(); !reflect.DeepEqual(got, []string{"chrome-extension", "mv3-full"}) {
		t.Errorf("names: got %v", got)
	}
}
