package boxname

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	segmentSep  = "_"
	languageSep = " "
	segments    = 3

	fileExt = ".txt"
)

// Codec encodes and decodes box names. Ids for names encoded without an
// explicit id come from its Sequence.
type Codec struct {
	seq *Sequence
}

// New creates a codec drawing default ids from seq. A nil seq gets a fresh
// sequence starting at DefaultStart.
func New(seq *Sequence) *Codec {
	if seq == nil {
		seq = NewSequence(DefaultStart)
	}
	return &Codec{seq: seq}
}

func (c *Codec) Sequence() *Sequence { return c.seq }

// Encode builds a box name using the next id of the codec's sequence.
func (c *Codec) Encode(base string, content Content) string {
	return c.EncodeWithID(base, content, c.seq.Next())
}

// EncodeWithID builds a box name with an explicit id. The base name is
// lower-cased but otherwise not validated.
func (c *Codec) EncodeWithID(base string, content Content, id int) string {
	// Casers keep state, so one is created per call.
	return join(cases.Lower(language.Und).String(base), content, id)
}

// Decode parses a box name. It fails with ErrInvalidName when the name does
// not have three segments, the content segment is unknown or the id is not a
// non-negative integer. An unknown language is not an error.
func (c *Codec) Decode(name string) (Info, error) {
	return Decode(name)
}

// Decode parses a box name without needing a Codec.
func Decode(name string) (Info, error) {
	parts := strings.Split(name, segmentSep)
	if len(parts) != segments {
		return Info{}, invalidName(name)
	}

	tokens := strings.Split(parts[0], languageSep)
	lang := ParseLanguage(tokens[0])

	content, err := ParseContent(parts[1])
	if err != nil {
		return Info{}, invalidName(name)
	}

	id, err := strconv.Atoi(parts[2])
	if err != nil || id < 0 {
		return Info{}, invalidName(name)
	}

	return Info{
		Language: lang,
		IsMain:   lang.CanBeMain() && len(tokens) == 2 && tokens[1] == tokenMain,
		Content:  content,
		ID:       id,
	}, nil
}

// Filename derives the companion file name: the language ("cpp" for C++),
// "_main_" or "_lib_", the id and ".txt".
func Filename(lang Language, isMain bool, id int) string {
	var b strings.Builder
	if lang == CPP {
		b.WriteString("cpp")
	} else {
		b.WriteString(strings.ToLower(lang.String()))
	}
	if isMain {
		b.WriteString("_main_")
	} else {
		b.WriteString("_lib_")
	}
	b.WriteString(strconv.Itoa(id))
	b.WriteString(fileExt)
	return b.String()
}

func join(base string, content Content, id int) string {
	return base + segmentSep + strings.ToLower(content.String()) + segmentSep + strconv.Itoa(id)
}

func invalidName(name string) error {
	return fmt.Errorf("%w: %q", ErrInvalidName, name)
}
