// Package ris decodes RIS-formatted bibliographic data into entries.
//
// RIS is a loosely specified tag-based text format: each logical line
// carries a two-letter tag, the separator "  - ", and a value. Records
// are terminated by an "ER  - " line. Real-world files wrap long values
// across physical lines, repeat tags with varying merge semantics, and
// encode dashes with typographic code points, so the decoder is built to
// tolerate all of that: malformed content degrades to default values and
// never produces an error.
package ris

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"refdex/internal/bib"
	"refdex/internal/doi"
)

// recognizedPattern matches the record-start marker "TY  - ".
var recognizedPattern = regexp.MustCompile(`TY {2}- .*`)

// recordTerminator matches the record-end marker line "ER  - " together
// with any trailing newlines, so splitting on it leaves no blank line at
// the head of the following record.
var recordTerminator = regexp.MustCompile(`(?m)^ER {2}-.*\n*`)

// whitespaceRun collapses runs of whitespace inside merged titles.
var whitespaceRun = regexp.MustCompile(`\s+`)

// dashNormalizer maps typographic dashes to their ASCII equivalents.
// Source documents sometimes encode the hyphens of the terminator line
// or of field values as en dash, em dash or horizontal bar.
var dashNormalizer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "--", // em dash
	"―", "--", // horizontal bar
)

// Recognize reports whether the stream looks like RIS data, i.e. whether
// any line carries the record-start marker. It reads only as far as the
// first match.
func Recognize(r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if recognizedPattern.MatchString(scanner.Text()) {
			return true
		}
	}
	return false
}

// Parse decodes all RIS records from r, in input order. The returned
// error is only ever a stream read failure; malformed record content is
// absorbed per tag and yields best-effort entries. Empty input yields
// zero entries.
func Parse(r io.Reader) ([]*bib.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return parseAll(string(data)), nil
}

func parseAll(text string) []*bib.Entry {
	blocks := recordTerminator.Split(dashNormalizer.Replace(text), -1)

	var entries []*bib.Entry
	for _, block := range blocks {
		// Splitting leaves a blank block after the final terminator
		// (or a single blank block for empty input); skip those.
		if strings.TrimSpace(block) == "" {
			continue
		}
		entries = append(entries, parseRecord(block))
	}
	return entries
}

// parseRecord decodes one record block into an entry.
func parseRecord(block string) *bib.Entry {
	rec := newRecord()

	lines := strings.Split(block, "\n")
	for j := 0; j < len(lines); j++ {
		line := mergeContinuations(lines, &j)
		if len(line) < 6 {
			// Too short to carry a tag and separator.
			continue
		}
		tag := line[:2]
		value := strings.TrimSpace(line[6:])
		rec.dispatch(tag, value)
	}

	return rec.finalize()
}

// mergeContinuations re-joins soft-wrapped physical lines into one
// logical tag line, advancing j past every absorbed line. A following
// line is a continuation iff it is too short to carry a tag signature or
// its columns 3-6 are not the canonical "  - " separator. A single space
// is inserted between fragments unless one side already supplies
// whitespace.
func mergeContinuations(lines []string, j *int) string {
	current := lines[*j]
	for *j < len(lines)-1 {
		next := lines[*j+1]
		if len(next) >= 6 && next[2:6] == "  - " {
			break
		}
		if needsJoiningSpace(current, next) {
			current += " "
		}
		current += next
		*j++
	}
	return current
}

func needsJoiningSpace(current, next string) bool {
	if current == "" || next == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(current)
	first, _ := utf8.DecodeRuneInString(next)
	return !unicode.IsSpace(last) && !unicode.IsSpace(first)
}

// entryTypeFor maps the TY tag value onto an entry type. Unknown
// reference types fall back to Misc.
func entryTypeFor(value string) bib.EntryType {
	switch value {
	case "BOOK":
		return bib.Book
	case "JOUR", "MGZN":
		return bib.Article
	case "THES":
		return bib.PhdThesis
	case "UNPB":
		return bib.Unpublished
	case "RPRT":
		return bib.TechReport
	case "CONF":
		return bib.InProceedings
	case "CHAP":
		return bib.InCollection
	case "PAT":
		return bib.Patent
	default:
		return bib.Misc
	}
}

// record accumulates the state of one in-progress entry while its tag
// lines are dispatched in order.
type record struct {
	entryType bib.EntryType
	fields    map[bib.Field]string

	// Author and editor lists accrue one name per tag line.
	author string
	editor string

	startPage string
	endPage   string

	// Abstract and comment are multi-line joiners.
	abstract []string
	comment  []string

	dates dateResolver
}

func newRecord() *record {
	return &record{
		entryType: bib.Misc,
		fields:    make(map[bib.Field]string),
		dates:     newDateResolver(),
	}
}

// dispatch applies the per-tag merge policy for one logical line. The
// arms are checked in order and the first match wins, so overlapping
// rules (JA/JF, DB) resolve by position.
func (r *record) dispatch(tag, value string) {
	switch {
	case tag == "TY":
		r.entryType = entryTypeFor(value)

	case tag == "T1" || tag == "TI":
		r.appendTitle(value)

	case tag == "BT":
		r.fields[bib.FieldBooktitle] = value

	case (tag == "T2" || tag == "J2" || tag == "JA") && r.fields[bib.FieldJournal] == "":
		// Secondary-title tags only supply the journal as a fallback.
		r.fields[bib.FieldJournal] = value

	case tag == "JO" || tag == "J1" || tag == "JF":
		r.setJournalOrBooktitle(value)

	case tag == "T3":
		r.fields[bib.FieldSeries] = value

	case tag == "AU" || tag == "A1" || tag == "A2" || tag == "A3" || tag == "A4":
		r.author = appendName(r.author, value)

	case tag == "ED":
		r.editor = appendName(r.editor, value)

	case tag == "JA" || tag == "JF":
		// Reached only when a journal is already set (JA) since the
		// unconditional arm above consumes JF.
		r.setJournalOrBooktitle(value)

	case tag == "LA":
		r.fields[bib.FieldLanguage] = value

	case tag == "CA":
		r.fields["caption"] = value

	case tag == "DB":
		r.fields["database"] = value

	case tag == "IS" || tag == "AN" || tag == "C7" || tag == "M1":
		r.fields[bib.FieldNumber] = value

	case tag == "SP":
		r.startPage = value

	case tag == "PB":
		if r.entryType == bib.PhdThesis {
			r.fields[bib.FieldSchool] = value
		} else {
			r.fields[bib.FieldPublisher] = value
		}

	case tag == "AD" || tag == "CY" || tag == "PP":
		r.fields[bib.FieldAddress] = value

	case tag == "EP":
		// Prefix now so pages concatenate into a range at finalization.
		r.endPage = value
		if r.endPage != "" {
			r.endPage = "--" + r.endPage
		}

	case tag == "ET":
		r.fields[bib.FieldEdition] = value

	case tag == "SN":
		r.fields[bib.FieldISSN] = value

	case tag == "VL":
		r.fields[bib.FieldVolume] = value

	case tag == "N2" || tag == "AB":
		// Skip exact resubmissions of the accumulated abstract.
		if strings.Join(r.abstract, "\n") != value {
			r.abstract = append(r.abstract, value)
		}

	case tag == "UR" || tag == "L2" || tag == "LK":
		r.fields[bib.FieldURL] = value

	case isDateTag(tag) && len(value) >= 4:
		r.dates.consider(tag, value)

	case tag == "KW":
		if kw, ok := r.fields[bib.FieldKeywords]; ok {
			r.fields[bib.FieldKeywords] = kw + ", " + value
		} else {
			r.fields[bib.FieldKeywords] = value
		}

	case tag == "U1" || tag == "U2":
		r.comment = append(r.comment, value)

	case tag == "N1":
		// N1 is both a comment line and the note field.
		r.comment = append(r.comment, value)
		r.fields[bib.FieldNote] = value

	case tag == "M3" || tag == "DO":
		if d, ok := doi.Parse(value); ok {
			r.fields[bib.FieldDOI] = d
		}

	case tag == "C3":
		r.fields[bib.FieldEventTitle] = value

	case tag == "RN":
		r.fields[bib.FieldNote] = value

	case tag == "ST":
		r.fields[bib.FieldShortTitle] = value

	case tag == "C2":
		r.fields[bib.FieldEprint] = value
		r.fields[bib.FieldEprintType] = "pubmed"

	case tag == "TA":
		r.fields[bib.FieldTranslator] = value

		// Source fields with no standard mapping, stored under
		// free-text keys.
	case tag == "AV":
		r.fields["archive_location"] = value

	case tag == "CN" || tag == "VO":
		r.fields["call-number"] = value

	case tag == "NV":
		r.fields["number-of-volumes"] = value

	case tag == "OP":
		r.fields["original-title"] = value

	case tag == "RI":
		r.fields["reviewed-title"] = value

	case tag == "RP":
		r.fields["status"] = value

	case tag == "SE":
		r.fields["section"] = value

	case tag == "ID":
		r.fields["refid"] = value

	default:
		// Unknown tags are ignored.
	}
}

// appendTitle merges repeated title tags: values concatenate with ": "
// unless the existing title already ends in sentence punctuation, and
// whitespace runs collapse after every merge.
func (r *record) appendTitle(value string) {
	old, ok := r.fields[bib.FieldTitle]
	switch {
	case !ok:
		r.fields[bib.FieldTitle] = value
	case strings.HasSuffix(old, ":") || strings.HasSuffix(old, ".") || strings.HasSuffix(old, "?"):
		r.fields[bib.FieldTitle] = old + " " + value
	default:
		r.fields[bib.FieldTitle] = old + ": " + value
	}
	r.fields[bib.FieldTitle] = whitespaceRun.ReplaceAllString(r.fields[bib.FieldTitle], " ")
}

// setJournalOrBooktitle routes a journal-title value: proceedings keep
// it as the book title, everything else as the journal.
func (r *record) setJournalOrBooktitle(value string) {
	if r.entryType == bib.InProceedings {
		r.fields[bib.FieldBooktitle] = value
	} else {
		r.fields[bib.FieldJournal] = value
	}
}

func appendName(list, name string) string {
	if list == "" {
		return name
	}
	return list + " and " + name
}

// finalize turns the accumulated state into an entry: name lists are
// normalized to "Last, First" order, the joiners are flushed, pages are
// concatenated into a range, the resolved date is attached, and blank
// fields are dropped.
func (r *record) finalize() *bib.Entry {
	if r.author != "" {
		r.fields[bib.FieldAuthor] = bib.NormalizeAuthorsLastFirst(r.author)
	}
	if r.editor != "" {
		r.fields[bib.FieldEditor] = bib.NormalizeAuthorsLastFirst(r.editor)
	}
	if len(r.abstract) > 0 {
		r.fields[bib.FieldAbstract] = strings.Join(r.abstract, "\n")
	}
	if len(r.comment) > 0 {
		r.fields[bib.FieldComment] = strings.Join(r.comment, "\n")
	}
	r.fields[bib.FieldPages] = r.startPage + r.endPage

	year, month := r.dates.resolve()
	if year != "" {
		r.fields[bib.FieldYear] = year
	}

	entry := bib.New(r.entryType)
	for f, v := range r.fields {
		entry.SetField(f, v) // SetField drops blank values
	}
	if month.Valid() {
		entry.SetMonth(month)
	}
	return entry
}
