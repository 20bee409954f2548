package ui

import "testing"

func TestLoadingText(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "Loading assets... 0%"},
		{42, "Loading assets... 42%"},
		{-5, "Loading assets... 0%"},
		{100, "Assets ready"},
		{120, "Assets ready"},
	}
	for _, tt := range tests {
		if got := LoadingText(tt.percent); got != tt.want {
			t.Errorf("LoadingText(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestSummaryText(t *testing.T) {
	if got := ScoreText(128); got != "Score: 128" {
		t.Errorf("ScoreText = %q", got)
	}
	if got := PlantsText(2, 4); got != "2 of 4 plants survived" {
		t.Errorf("PlantsText = %q", got)
	}
	if got := PlantsText(1, 1); got != "1 of 1 plant survived" {
		t.Errorf("PlantsText singular = %q", got)
	}
}

func TestLoadFaces(t *testing.T) {
	faces, err := loadFaces()
	if err != nil {
		t.Fatalf("loadFaces: %v", err)
	}
	if faces.Title == nil || faces.Normal == nil || faces.Small == nil {
		t.Fatal("expected every face to be set")
	}
}
