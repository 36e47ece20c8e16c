package request

import (
	"encoding/json"
	"errors"
	"testing"

	"contractor_pro/internal/domain/entities"
)

func TestNumberText_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want NumberText
	}{
		{in: `2`, want: "2"},
		{in: `2.5`, want: "2.5"},
		{in: `"3"`, want: "3"},
		{in: `""`, want: ""},
		{in: `"abc"`, want: "abc"},
		{in: `null`, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var n NumberText
			if err := json.Unmarshal([]byte(tc.in), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, n)
			}
		})
	}

	t.Run("bool rejected", func(t *testing.T) {
		var n NumberText
		err := json.Unmarshal([]byte(`true`), &n)
		if !errors.Is(err, ErrInvalidNumberText) {
			t.Fatalf("expected ErrInvalidNumberText, got %v", err)
		}
	})
}

func TestEstimateRequest_ToInput(t *testing.T) {
	var r EstimateRequest
	body := `{"client_id":"c-1","title":"Deck","line_items":[{"description":"Boards","quantity":2,"unit_price":"10"},{"description":"Nails","unit_price":5}]}`
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	in := r.ToInput()
	if in.ClientID != "c-1" || in.Title != "Deck" || len(in.LineItems) != 2 {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.LineItems[0].Quantity != "2" || in.LineItems[0].UnitPrice != "10" {
		t.Fatalf("unexpected first item: %+v", in.LineItems[0])
	}
	if in.LineItems[1].Quantity != "" || in.LineItems[1].UnitPrice != "5" {
		t.Fatalf("unexpected second item: %+v", in.LineItems[1])
	}
}

func TestPhotoUploadRequest(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		var r PhotoUploadRequest
		if err := json.Unmarshal([]byte(`{"uri":"file:///a.jpg","photo_type":"after"}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.IsBatch() {
			t.Fatalf("expected single photo")
		}
		in := r.ToInput()
		if in.URI != "file:///a.jpg" || in.PhotoType != entities.PhotoTypeAfter {
			t.Fatalf("unexpected input: %+v", in)
		}
	})

	t.Run("batch", func(t *testing.T) {
		var r PhotoUploadRequest
		if err := json.Unmarshal([]byte(`{"photos":[{"uri":"a"},{"uri":"b","caption":"x"}]}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsBatch() {
			t.Fatalf("expected batch")
		}
		in := r.ToInputs()
		if len(in) != 2 || in[1].Caption != "x" {
			t.Fatalf("unexpected inputs: %+v", in)
		}
	})

	t.Run("empty batch is still a batch", func(t *testing.T) {
		var r PhotoUploadRequest
		if err := json.Unmarshal([]byte(`{"photos":[]}`), &r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.IsBatch() || len(r.ToInputs()) != 0 {
			t.Fatalf("expected empty batch")
		}
	})
}

func TestClientRequest_ToInput(t *testing.T) {
	in := ClientRequest{Name: "Ann", Email: "a@b.c", Notes: "gate code 12"}.ToInput()
	if in.Name != "Ann" || in.Email != "a@b.c" || in.Notes != "gate code 12" {
		t.Fatalf("unexpected input: %+v", in)
	}
}
