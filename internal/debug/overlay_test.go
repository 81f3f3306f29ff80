package debug

import "testing"

func TestStatsString(t *testing.T) {
	s := Stats{FPS: 59.94, TPS: 60, Screen: "menu", Textures: 4}
	want := "FPS: 59.9\nTPS: 60.0\nSCREEN: menu\nTEXTURES: 4"
	if got := s.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
