package boxname

import "fmt"

// Language is the programming language of a code box.
type Language int

const (
	Invalid Language = iota
	CPP
	Java
	Python
)

// Language tokens as they appear in box names.
const (
	tokenCPP    = "c++"
	tokenJava   = "java"
	tokenPython = "python"
	tokenMain   = "main"
)

func (l Language) String() string {
	switch l {
	case CPP:
		return "C++"
	case Java:
		return "Java"
	case Python:
		return "Python"
	default:
		return "Invalid"
	}
}

// Token returns the lowercase token used in box names, "invalid" for Invalid.
func (l Language) Token() string {
	switch l {
	case CPP:
		return tokenCPP
	case Java:
		return tokenJava
	case Python:
		return tokenPython
	default:
		return "invalid"
	}
}

// CanBeMain reports whether the language supports the " main" marker.
func (l Language) CanBeMain() bool {
	return l == CPP || l == Java
}

// ParseLanguage maps a box-name token to a Language. Matching is exact and
// unknown tokens yield Invalid.
func ParseLanguage(token string) Language {
	switch token {
	case tokenCPP:
		return CPP
	case tokenJava:
		return Java
	case tokenPython:
		return Python
	default:
		return Invalid
	}
}

// Content is what a text box holds.
type Content int

const (
	Code Content = iota
	Input
	Output
)

func (c Content) String() string {
	switch c {
	case Code:
		return "Code"
	case Input:
		return "Input"
	case Output:
		return "Output"
	default:
		return fmt.Sprintf("Content(%d)", int(c))
	}
}

// ParseContent accepts the lowercase literals "code", "input" and "output".
func ParseContent(s string) (Content, error) {
	switch s {
	case "code":
		return Code, nil
	case "input":
		return Input, nil
	case "output":
		return Output, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidContent, s)
	}
}

// Info is the metadata carried by a box name.
type Info struct {
	Language Language
	IsMain   bool
	Content  Content
	ID       int
}

// BaseName returns the language segment, e.g. "c++ main" or "python".
func (i Info) BaseName() string {
	return BaseName(i.Language, i.IsMain)
}

// Name re-encodes the info as a box name.
func (i Info) Name() string {
	return join(i.BaseName(), i.Content, i.ID)
}

// Filename returns the companion file name, see Filename.
func (i Info) Filename() string {
	return Filename(i.Language, i.IsMain, i.ID)
}

// BaseName builds the language segment fed to Encode. The main marker is
// dropped for languages that cannot carry it.
func BaseName(lang Language, isMain bool) string {
	if isMain && lang.CanBeMain() {
		return lang.Token() + " " + tokenMain
	}
	return lang.Token()
}
