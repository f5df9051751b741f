package freedict

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile is a test helper that creates a file with given content.
func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "freedict.dict")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParse(t *testing.T) {
	content := "00-database-info\n" +
		"FreeDict English-Russian\n" +
		"hello /heləu/\n" +
		"привет\n" +
		"\n" +
		"world /wɜːld/ n\n" +
		"мир\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if d.Stats.TotalLines != 7 {
		t.Errorf("TotalLines: got %d, want 7", d.Stats.TotalLines)
	}
	if d.Stats.Entries != 2 {
		t.Errorf("Entries: got %d, want 2", d.Stats.Entries)
	}

	hello, ok := d.Entries["hello"]
	if !ok {
		t.Fatal("expected 'hello' in entries")
	}
	if hello[0].Head != "hello" {
		t.Errorf("hello Head: got %q, want %q", hello[0].Head, "hello")
	}
	if hello[0].Body != "привет" {
		t.Errorf("hello Body: got %q, want %q", hello[0].Body, "привет")
	}

	// Grammar notes after the transcription are discarded with it.
	world, ok := d.Entries["world"]
	if !ok {
		t.Fatal("expected 'world' in entries")
	}
	if world[0].Head != "world" {
		t.Errorf("world Head: got %q, want %q", world[0].Head, "world")
	}
	if world[0].Body != "мир" {
		t.Errorf("world Body: got %q, want %q", world[0].Body, "мир")
	}
}

func TestParse_MetadataBlocksSkipped(t *testing.T) {
	// "00-database-info" would otherwise pair with the line below it.
	content := "00-database-short\n" +
		"eng-rus\n" +
		"cat /kæt/\n" +
		"кошка\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(d.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(d.Entries))
	}
	if _, ok := d.Entries["cat"]; !ok {
		t.Error("expected 'cat' in entries")
	}
}

func TestParse_LabelHeadLinesSkipped(t *testing.T) {
	content := "Abbreviations:\n" +
		"dog /dɒɡ/\n" +
		"собака\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(d.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(d.Entries))
	}
	if d.Entries["dog"][0].Body != "собака" {
		t.Errorf("dog Body: got %q, want %q", d.Entries["dog"][0].Body, "собака")
	}
}

func TestParse_LabelTranslationDropsHeadword(t *testing.T) {
	// When a label line sits where the translation should be, the headword
	// above it is dropped rather than paired with the label.
	content := "run /rʌn/\n" +
		"Phrases:\n" +
		"бежать\n" +
		"walk /wɔːk/\n" +
		"идти\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if _, ok := d.Entries["run"]; ok {
		t.Error("'run' should be dropped when followed by a label line")
	}
	if _, ok := d.Entries["walk"]; !ok {
		t.Error("expected 'walk' in entries")
	}
}

func TestParse_LinesWithoutSlashIgnored(t *testing.T) {
	// A candidate head line with no transcription is not a headword; the
	// scan moves one line forward so the next headword still pairs.
	content := "just a note\n" +
		"cat /kæt/\n" +
		"кошка\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if len(d.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(d.Entries))
	}
	if _, ok := d.Entries["cat"]; !ok {
		t.Error("expected 'cat' in entries")
	}
}

func TestParse_TrailingHeadwordWithoutTranslation(t *testing.T) {
	content := "cat /kæt/\n" +
		"кошка\n" +
		"dog /dɒɡ/\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if _, ok := d.Entries["dog"]; ok {
		t.Error("'dog' has no following line and should be dropped")
	}
	if d.Stats.Entries != 1 {
		t.Errorf("Entries: got %d, want 1", d.Stats.Entries)
	}
}

func TestParse_HeadwordCasePreserved(t *testing.T) {
	content := "Moscow /mɒskəu/\n" +
		"Москва\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	entry, ok := d.Entries["moscow"]
	if !ok {
		t.Fatal("expected lowercase key 'moscow'")
	}
	if entry[0].Head != "Moscow" {
		t.Errorf("Head: got %q, want %q", entry[0].Head, "Moscow")
	}
}

func TestParse_DuplicateHeadwordsKeepFileOrder(t *testing.T) {
	content := "bank /bæŋk/\n" +
		"берег\n" +
		"bank /bæŋk/\n" +
		"банк\n"
	path := writeFile(t, content)

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	articles := d.Entries["bank"]
	if len(articles) != 2 {
		t.Fatalf("bank: expected 2 articles, got %d", len(articles))
	}
	if articles[0].Body != "берег" || articles[1].Body != "банк" {
		t.Errorf("articles out of order: %+v", articles)
	}
}

func TestParse_FileNotFound(t *testing.T) {
	if _, err := Parse("/nonexistent/freedict.dict"); err == nil {
		t.Error("Parse should return error for missing file")
	}
}

func TestParse_EmptyFile(t *testing.T) {
	path := writeFile(t, "")

	d, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse should not error on empty file: %v", err)
	}
	if len(d.Entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(d.Entries))
	}
}
