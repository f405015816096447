package history

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAdd_MostRecentFirst(t *testing.T) {
	h := New(0)
	h.Add("#000000")
	h.Add("#ffffff")
	h.Add("#804020")

	want := []string{"#804020", "#ffffff", "#000000"}
	if d := cmp.Diff(want, h.Recent()); d != "" {
		t.Errorf("Recent() mismatch (-want +got):\n%s", d)
	}
}

func TestAdd_Dedup(t *testing.T) {
	h := New(0)
	h.Add("#000000")
	h.Add("#ffffff")
	h.Add("#000000")

	want := []string{"#000000", "#ffffff"}
	if d := cmp.Diff(want, h.Recent()); d != "" {
		t.Errorf("Recent() mismatch (-want +got):\n%s", d)
	}
}

func TestAdd_Capacity(t *testing.T) {
	h := New(0)
	if h.Capacity() != DefaultCapacity {
		t.Fatalf("capacity = %d, want %d", h.Capacity(), DefaultCapacity)
	}
	for i := 0; i < 20; i++ {
		h.Add(fmt.Sprintf("#%06x", i))
	}
	if h.Len() != DefaultCapacity {
		t.Fatalf("Len() = %d, want %d", h.Len(), DefaultCapacity)
	}
	got := h.Recent()
	if got[0] != "#000013" || got[len(got)-1] != "#000008" {
		t.Errorf("unexpected window: first %s, last %s", got[0], got[len(got)-1])
	}
}

func TestRecent_Copy(t *testing.T) {
	h := New(2)
	h.Add("#000000")
	got := h.Recent()
	got[0] = "#ffffff"
	if h.Recent()[0] != "#000000" {
		t.Error("Recent() exposed internal storage")
	}
}
