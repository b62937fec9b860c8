package controller

import (
	"testing"
)

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestNormalizeEnvelopeShapes(t *testing.T) {
	keys := []string{"widgets", "items"}

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"bare sequence", `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`, 2},
		{"items wrapper", `{"items":[{"id":1,"name":"a"}]}`, 1},
		{"plural wrapper", `{"widgets":[{"id":1,"name":"a"},{"id":2,"name":"b"},{"id":3,"name":"c"}]}`, 3},
		{"empty bare sequence", `[]`, 0},
		{"malformed: scalar", `42`, 0},
		{"malformed: wrong key", `{"gadgets":[{"id":1}]}`, 0},
		{"malformed: wrapper not a list", `{"widgets":{"id":1}}`, 0},
		{"malformed: not json", `<html>offline</html>`, 0},
		{"malformed: null", `null`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeCollection[widget]([]byte(tt.raw), keys)
			if got == nil {
				t.Fatal("DecodeCollection returned nil, want a sequence")
			}
			if len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestNormalizePrefersFirstMatchingKey(t *testing.T) {
	raw := `{"widgets":[{"id":1}],"items":[{"id":2},{"id":3}]}`

	got := DecodeCollection[widget]([]byte(raw), []string{"widgets", "items"})
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("got %v, want the widgets slot", got)
	}
}

func TestDecodeCollectionDropsBadRows(t *testing.T) {
	raw := `[{"id":1,"name":"ok"},"not-an-object",{"id":2,"name":"also ok"}]`

	got := DecodeCollection[widget]([]byte(raw), nil)
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2 with the bad row dropped", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("rows = %v", got)
	}
}
