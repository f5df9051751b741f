package oxford

import (
	"strings"
	"testing"
)

const listingHTML = `<!DOCTYPE html>
<html><body>
<ul class="top-g">
<li data-hw="about" data-ox3000="a2">
  <a href="/definition/english/about_2"><span class="hw">about</span></a>
  <span class="pos">preposition</span>
  <div class="sound audio_play_button pron-uk" data-src-mp3="/media/english/uk_pron/about__gb_1.mp3"></div>
  <div class="sound audio_play_button pron-us" data-src-mp3="/media/english/us_pron/about__us_1.mp3"></div>
</li>
<li data-hw="about" data-ox3000="a1">
  <a href="/definition/english/about_1"><span class="hw">about</span></a>
  <span class="pos">adverb</span>
  <div class="sound audio_play_button pron-uk" data-src-mp3="/media/english/uk_pron/about__gb_2.mp3"></div>
</li>
<li data-hw="abandon" data-ox3000="b2">
  <a href="/definition/english/abandon_1"><span class="hw">abandon</span></a>
  <span class="pos">verb</span>
</li>
<li data-hw=" spaced ">
  <span class="pos">noun</span>
</li>
<li class="plain">no headword attribute here</li>
</ul>
</body></html>`

func TestParseMetadata(t *testing.T) {
	entries, err := ParseMetadata(strings.NewReader(listingHTML))
	if err != nil {
		t.Fatalf("ParseMetadata returned error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}

	about, ok := entries["about"]
	if !ok {
		t.Fatal("expected 'about' in entries")
	}
	// Two list items merge: the lowest level wins.
	if about.Level != "A1" {
		t.Errorf("about Level: got %q, want %q", about.Level, "A1")
	}
	if len(about.POS) != 2 || about.POS[0] != "adverb" || about.POS[1] != "preposition" {
		t.Errorf("about POS: got %v, want sorted [adverb preposition]", about.POS)
	}
	wantURLs := []string{
		"https://www.oxfordlearnersdictionaries.com/definition/english/about_1",
		"https://www.oxfordlearnersdictionaries.com/definition/english/about_2",
	}
	if len(about.URLs) != 2 || about.URLs[0] != wantURLs[0] || about.URLs[1] != wantURLs[1] {
		t.Errorf("about URLs: got %v, want %v", about.URLs, wantURLs)
	}
	// First audio link wins over the one from the second list item.
	if want := "https://www.oxfordlearnersdictionaries.com/media/english/uk_pron/about__gb_1.mp3"; about.AudioUK != want {
		t.Errorf("about AudioUK: got %q, want %q", about.AudioUK, want)
	}
	if want := "https://www.oxfordlearnersdictionaries.com/media/english/us_pron/about__us_1.mp3"; about.AudioUS != want {
		t.Errorf("about AudioUS: got %q, want %q", about.AudioUS, want)
	}

	abandon, ok := entries["abandon"]
	if !ok {
		t.Fatal("expected 'abandon' in entries")
	}
	if abandon.Level != "B2" {
		t.Errorf("abandon Level: got %q, want %q", abandon.Level, "B2")
	}
	if len(abandon.POS) != 1 || abandon.POS[0] != "verb" {
		t.Errorf("abandon POS: got %v, want [verb]", abandon.POS)
	}
	if abandon.AudioUK != "" || abandon.AudioUS != "" {
		t.Errorf("abandon audio: got %q/%q, want empty", abandon.AudioUK, abandon.AudioUS)
	}

	spaced, ok := entries["spaced"]
	if !ok {
		t.Fatal("expected trimmed 'spaced' in entries")
	}
	if spaced.Level != "" {
		t.Errorf("spaced Level: got %q, want empty", spaced.Level)
	}
	if len(spaced.URLs) != 0 {
		t.Errorf("spaced URLs: got %v, want empty", spaced.URLs)
	}
}

func TestParseMetadata_LevelKeepsLowest(t *testing.T) {
	html := `<ul>
<li data-hw="test" data-ox3000="b2"></li>
<li data-hw="test" data-ox3000="a2"></li>
<li data-hw="test" data-ox3000="b1"></li>
</ul>`

	entries, err := ParseMetadata(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseMetadata returned error: %v", err)
	}
	if got := entries["test"].Level; got != "A2" {
		t.Errorf("Level: got %q, want %q", got, "A2")
	}
}

func TestParseMetadata_UnknownLevelNeverReplacesKnown(t *testing.T) {
	html := `<ul>
<li data-hw="test" data-ox3000="b1"></li>
<li data-hw="test" data-ox3000="c1"></li>
</ul>`

	entries, err := ParseMetadata(strings.NewReader(html))
	if err != nil {
		t.Fatalf("ParseMetadata returned error: %v", err)
	}
	if got := entries["test"].Level; got != "B1" {
		t.Errorf("Level: got %q, want %q", got, "B1")
	}
}

func TestParseMetadata_EmptyDocument(t *testing.T) {
	entries, err := ParseMetadata(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("ParseMetadata returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("entries: got %d, want 0", len(entries))
	}
}

func TestLevelRank(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"A1", 0},
		{"A2", 1},
		{"B1", 2},
		{"B2", 3},
		{"C1", 99},
		{"", 99},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := levelRank(tt.level); got != tt.want {
				t.Errorf("levelRank(%q) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}
