package bib

// Field is a bibliographic field key. Importers may also store values
// under free-text keys (e.g. "database", "call-number") for source
// fields that have no standard mapping.
type Field string

// Standard field keys.
const (
	FieldTitle      Field = "title"
	FieldBooktitle  Field = "booktitle"
	FieldJournal    Field = "journal"
	FieldSeries     Field = "series"
	FieldAuthor     Field = "author"
	FieldEditor     Field = "editor"
	FieldLanguage   Field = "language"
	FieldNumber     Field = "number"
	FieldPages      Field = "pages"
	FieldPublisher  Field = "publisher"
	FieldSchool     Field = "school"
	FieldAddress    Field = "address"
	FieldEdition    Field = "edition"
	FieldISSN       Field = "issn"
	FieldVolume     Field = "volume"
	FieldAbstract   Field = "abstract"
	FieldComment    Field = "comment"
	FieldURL        Field = "url"
	FieldYear       Field = "year"
	FieldKeywords   Field = "keywords"
	FieldDOI        Field = "doi"
	FieldEventTitle Field = "eventtitle"
	FieldNote       Field = "note"
	FieldShortTitle Field = "shorttitle"
	FieldEprint     Field = "eprint"
	FieldEprintType Field = "eprinttype"
	FieldTranslator Field = "translator"
)
