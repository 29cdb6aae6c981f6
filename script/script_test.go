package script

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	src := `
; opening
Alice:Good morning;
:The wind was cold; trailing comment
Bob: Hi ;

changeScene:next.txt;
end;
`
	scene, err := Parse("start.txt", "game/scene/start.txt", src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if scene.Name != "start.txt" || scene.URL != "game/scene/start.txt" {
		t.Errorf("scene ids = %q %q", scene.Name, scene.URL)
	}

	want := []Sentence{
		{Kind: Say, Speaker: "Alice", Text: "Good morning", Line: 3},
		{Kind: Say, Speaker: "", Text: "The wind was cold", Line: 4},
		{Kind: Say, Speaker: "Bob", Text: "Hi", Line: 5},
		{Kind: ChangeScene, Text: "next.txt", Line: 7},
		{Kind: End, Line: 8},
	}
	if len(scene.Sentences) != len(want) {
		t.Fatalf("len(Sentences) = %d, want %d", len(scene.Sentences), len(want))
	}
	for i := range want {
		if scene.Sentences[i] != want[i] {
			t.Errorf("sentence %d = %+v, want %+v", i, scene.Sentences[i], want[i])
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"missing terminator", "Alice:hello", 1},
		{"unknown statement", "\nwait;", 2},
		{"empty changeScene", "a:b;\nchangeScene:;", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("x.txt", "x.txt", tt.src)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v, want *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("line = %d, want %d", pe.Line, tt.line)
			}
		})
	}
}

func TestParseVocal(t *testing.T) {
	scene, err := Parse("v.txt", "v.txt", "Alice:Wait for me -vocal=alice_01.ogg;\nBob:a -b;")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got := scene.Sentences[0]; got.Text != "Wait for me" || got.Vocal != "alice_01.ogg" {
		t.Errorf("sentence 0 = %+v", got)
	}
	if got := scene.Sentences[1]; got.Text != "a -b" || got.Vocal != "" {
		t.Errorf("sentence 1 = %+v", got)
	}
}

func TestParseUnlocks(t *testing.T) {
	scene, err := Parse("u.txt", "u.txt", "unlockBgm:bgm/theme.ogg;\nunlockCg: cg/end.png ;")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	want := []Sentence{
		{Kind: UnlockBgm, Text: "bgm/theme.ogg", Line: 1},
		{Kind: UnlockCG, Text: "cg/end.png", Line: 2},
	}
	for i := range want {
		if scene.Sentences[i] != want[i] {
			t.Errorf("sentence %d = %+v, want %+v", i, scene.Sentences[i], want[i])
		}
	}

	if _, err := Parse("u.txt", "u.txt", "unlockCg:;"); err == nil {
		t.Error("empty unlock target should fail")
	}
}
