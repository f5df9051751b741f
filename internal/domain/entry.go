package domain

// DictionaryEntry is a single parsed dictionary article: the headword as it
// appears in the corpus and its raw, uncleaned body text. Headword case is
// preserved so that source tags can cite the corpus spelling verbatim.
type DictionaryEntry struct {
	Head string
	Body string
}

// Resolution is the outcome of a translation lookup: the cleaned translation
// text plus a source tag recording which dictionary or fallback strategy
// produced it. Source tags are stable strings ("manual", "mueller:<headword>",
// "freedict:<headword>", "mueller:line") so downstream consumers can audit
// translation quality per strategy.
type Resolution struct {
	Translation string
	Source      string
}
