package content

import (
	"github.com/lecternapp/lectern/pkg/models"
)

// DefaultCanon returns the built-in 66-book catalogue used whenever the
// per-language index can't be fetched. Chapter counts follow the standard
// Protestant canon.
func DefaultCanon() []*models.BookMetadata {
	books := make([]*models.BookMetadata, 0, len(defaultCanon))
	for i := range defaultCanon {
		b := defaultCanon[i]
		books = append(books, &b)
	}
	return books
}

var defaultCanon = []models.BookMetadata{
	{ID: "gen", Name: "Genesis", File: "Genesis.json", Testament: models.TestamentOld, ChapterCount: 50},
	{ID: "exo", Name: "Exodus", File: "Exodus.json", Testament: models.TestamentOld, ChapterCount: 40},
	{ID: "lev", Name: "Leviticus", File: "Leviticus.json", Testament: models.TestamentOld, ChapterCount: 27},
	{ID: "num", Name: "Numbers", File: "Numbers.json", Testament: models.TestamentOld, ChapterCount: 36},
	{ID: "deu", Name: "Deuteronomy", File: "Deuteronomy.json", Testament: models.TestamentOld, ChapterCount: 34},
	{ID: "jos", Name: "Joshua", File: "Joshua.json", Testament: models.TestamentOld, ChapterCount: 24},
	{ID: "jdg", Name: "Judges", File: "Judges.json", Testament: models.TestamentOld, ChapterCount: 21},
	{ID: "rut", Name: "Ruth", File: "Ruth.json", Testament: models.TestamentOld, ChapterCount: 4},
	{ID: "1sa", Name: "1 Samuel", File: "1Samuel.json", Testament: models.TestamentOld, ChapterCount: 31},
	{ID: "2sa", Name: "2 Samuel", File: "2Samuel.json", Testament: models.TestamentOld, ChapterCount: 24},
	{ID: "1ki", Name: "1 Kings", File: "1Kings.json", Testament: models.TestamentOld, ChapterCount: 22},
	{ID: "2ki", Name: "2 Kings", File: "2Kings.json", Testament: models.TestamentOld, ChapterCount: 25},
	{ID: "1ch", Name: "1 Chronicles", File: "1Chronicles.json", Testament: models.TestamentOld, ChapterCount: 29},
	{ID: "2ch", Name: "2 Chronicles", File: "2Chronicles.json", Testament: models.TestamentOld, ChapterCount: 36},
	{ID: "ezr", Name: "Ezra", File: "Ezra.json", Testament: models.TestamentOld, ChapterCount: 10},
	{ID: "neh", Name: "Nehemiah", File: "Nehemiah.json", Testament: models.TestamentOld, ChapterCount: 13},
	{ID: "est", Name: "Esther", File: "Esther.json", Testament: models.TestamentOld, ChapterCount: 10},
	{ID: "job", Name: "Job", File: "Job.json", Testament: models.TestamentOld, ChapterCount: 42},
	{ID: "psa", Name: "Psalms", File: "Psalms.json", Testament: models.TestamentOld, ChapterCount: 150},
	{ID: "pro", Name: "Proverbs", File: "Proverbs.json", Testament: models.TestamentOld, ChapterCount: 31},
	{ID: "ecc", Name: "Ecclesiastes", File: "Ecclesiastes.json", Testament: models.TestamentOld, ChapterCount: 12},
	{ID: "sng", Name: "Song of Solomon", File: "SongOfSolomon.json", Testament: models.TestamentOld, ChapterCount: 8},
	{ID: "isa", Name: "Isaiah", File: "Isaiah.json", Testament: models.TestamentOld, ChapterCount: 66},
	{ID: "jer", Name: "Jeremiah", File: "Jeremiah.json", Testament: models.TestamentOld, ChapterCount: 52},
	{ID: "lam", Name: "Lamentations", File: "Lamentations.json", Testament: models.TestamentOld, ChapterCount: 5},
	{ID: "ezk", Name: "Ezekiel", File: "Ezekiel.json", Testament: models.TestamentOld, ChapterCount: 48},
	{ID: "dan", Name: "Daniel", File: "Daniel.json", Testament: models.TestamentOld, ChapterCount: 12},
	{ID: "hos", Name: "Hosea", File: "Hosea.json", Testament: models.TestamentOld, ChapterCount: 14},
	{ID: "jol", Name: "Joel", File: "Joel.json", Testament: models.TestamentOld, ChapterCount: 3},
	{ID: "amo", Name: "Amos", File: "Amos.json", Testament: models.TestamentOld, ChapterCount: 9},
	{ID: "oba", Name: "Obadiah", File: "Obadiah.json", Testament: models.TestamentOld, ChapterCount: 1},
	{ID: "jon", Name: "Jonah", File: "Jonah.json", Testament: models.TestamentOld, ChapterCount: 4},
	{ID: "mic", Name: "Micah", File: "Micah.json", Testament: models.TestamentOld, ChapterCount: 7},
	{ID: "nam", Name: "Nahum", File: "Nahum.json", Testament: models.TestamentOld, ChapterCount: 3},
	{ID: "hab", Name: "Habakkuk", File: "Habakkuk.json", Testament: models.TestamentOld, ChapterCount: 3},
	{ID: "zep", Name: "Zephaniah", File: "Zephaniah.json", Testament: models.TestamentOld, ChapterCount: 3},
	{ID: "hag", Name: "Haggai", File: "Haggai.json", Testament: models.TestamentOld, ChapterCount: 2},
	{ID: "zec", Name: "Zechariah", File: "Zechariah.json", Testament: models.TestamentOld, ChapterCount: 14},
	{ID: "mal", Name: "Malachi", File: "Malachi.json", Testament: models.TestamentOld, ChapterCount: 4},
	{ID: "mat", Name: "Matthew", File: "Matthew.json", Testament: models.TestamentNew, ChapterCount: 28},
	{ID: "mrk", Name: "Mark", File: "Mark.json", Testament: models.TestamentNew, ChapterCount: 16},
	{ID: "luk", Name: "Luke", File: "Luke.json", Testament: models.TestamentNew, ChapterCount: 24},
	{ID: "jhn", Name: "John", File: "John.json", Testament: models.TestamentNew, ChapterCount: 21},
	{ID: "act", Name: "Acts", File: "Acts.json", Testament: models.TestamentNew, ChapterCount: 28},
	{ID: "rom", Name: "Romans", File: "Romans.json", Testament: models.TestamentNew, ChapterCount: 16},
	{ID: "1co", Name: "1 Corinthians", File: "1Corinthians.json", Testament: models.TestamentNew, ChapterCount: 16},
	{ID: "2co", Name: "2 Corinthians", File: "2Corinthians.json", Testament: models.TestamentNew, ChapterCount: 13},
	{ID: "gal", Name: "Galatians", File: "Galatians.json", Testament: models.TestamentNew, ChapterCount: 6},
	{ID: "eph", Name: "Ephesians", File: "Ephesians.json", Testament: models.TestamentNew, ChapterCount: 6},
	{ID: "php", Name: "Philippians", File: "Philippians.json", Testament: models.TestamentNew, ChapterCount: 4},
	{ID: "col", Name: "Colossians", File: "Colossians.json", Testament: models.TestamentNew, ChapterCount: 4},
	{ID: "1th", Name: "1 Thessalonians", File: "1Thessalonians.json", Testament: models.TestamentNew, ChapterCount: 5},
	{ID: "2th", Name: "2 Thessalonians", File: "2Thessalonians.json", Testament: models.TestamentNew, ChapterCount: 3},
	{ID: "1ti", Name: "1 Timothy", File: "1Timothy.json", Testament: models.TestamentNew, ChapterCount: 6},
	{ID: "2ti", Name: "2 Timothy", File: "2Timothy.json", Testament: models.TestamentNew, ChapterCount: 4},
	{ID: "tit", Name: "Titus", File: "Titus.json", Testament: models.TestamentNew, ChapterCount: 3},
	{ID: "phm", Name: "Philemon", File: "Philemon.json", Testament: models.TestamentNew, ChapterCount: 1},
	{ID: "heb", Name: "Hebrews", File: "Hebrews.json", Testament: models.TestamentNew, ChapterCount: 13},
	{ID: "jas", Name: "James", File: "James.json", Testament: models.TestamentNew, ChapterCount: 5},
	{ID: "1pe", Name: "1 Peter", File: "1Peter.json", Testament: models.TestamentNew, ChapterCount: 5},
	{ID: "2pe", Name: "2 Peter", File: "2Peter.json", Testament: models.TestamentNew, ChapterCount: 3},
	{ID: "1jn", Name: "1 John", File: "1John.json", Testament: models.TestamentNew, ChapterCount: 5},
	{ID: "2jn", Name: "2 John", File: "2John.json", Testament: models.TestamentNew, ChapterCount: 1},
	{ID: "3jn", Name: "3 John", File: "3John.json", Testament: models.TestamentNew, ChapterCount: 1},
	{ID: "jud", Name: "Jude", File: "Jude.json", Testament: models.TestamentNew, ChapterCount: 1},
	{ID: "rev", Name: "Revelation", File: "Revelation.json", Testament: models.TestamentNew, ChapterCount: 22},
}
