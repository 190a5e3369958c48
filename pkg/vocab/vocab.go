package vocab

import (
	"errors"
	"fmt"
)

// ErrUnknownValue is wrapped by every failed vocabulary lookup.
var ErrUnknownValue = errors.New("unknown vocabulary value")

// UnknownValueError reports a raw token that matches no value in a
// vocabulary. It satisfies errors.Is against ErrUnknownValue.
type UnknownValueError struct {
	Vocabulary string
	Value      string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%s: unknown value %q", e.Vocabulary, e.Value)
}

func (e *UnknownValueError) Unwrap() error { return ErrUnknownValue }

// RelKind is the semantic role of a hyperlink relation.
type RelKind string

// Catalog hypermedia relation kinds.
const (
	RelSelf      RelKind = "self"      // location of the document itself
	RelRoot      RelKind = "root"      // root catalog or collection of the tree
	RelParent    RelKind = "parent"    // parent catalog or collection
	RelChild     RelKind = "child"     // child catalog or collection
	RelItem      RelKind = "item"      // child item
	RelAlternate RelKind = "alternate" // substitute representation, often text/html
	RelCanonical RelKind = "canonical" // canonical version of a copied document
	RelVia       RelKind = "via"       // non-catalog source metadata record
	RelPrev      RelKind = "prev"      // previous document in a series
	RelNext      RelKind = "next"      // next document in a series
	RelPreview   RelKind = "preview"   // lower-resolution preview resource
)

// General web-linking relation kinds accepted alongside the catalog set.
const (
	RelAbout         RelKind = "about"
	RelAuthor        RelKind = "author"
	RelCiteAs        RelKind = "cite-as"
	RelCollection    RelKind = "collection"
	RelCurrent       RelKind = "current"
	RelDescribedBy   RelKind = "describedby"
	RelDescribes     RelKind = "describes"
	RelEnclosure     RelKind = "enclosure"
	RelFirst         RelKind = "first"
	RelHelp          RelKind = "help"
	RelIcon          RelKind = "icon"
	RelIndex         RelKind = "index"
	RelLast          RelKind = "last"
	RelLatestVersion RelKind = "latest-version"
	RelLicense       RelKind = "license"
	RelRelated       RelKind = "related"
	RelSearch        RelKind = "search"
	RelServiceDesc   RelKind = "service-desc"
	RelServiceDoc    RelKind = "service-doc"
	RelStylesheet    RelKind = "stylesheet"
	RelTag           RelKind = "tag"
	RelType          RelKind = "type"
	RelUp            RelKind = "up"
)

// validRelKinds is the set of recognized relation kinds.
var validRelKinds = map[RelKind]bool{
	RelSelf:          true,
	RelRoot:          true,
	RelParent:        true,
	RelChild:         true,
	RelItem:          true,
	RelAlternate:     true,
	RelCanonical:     true,
	RelVia:           true,
	RelPrev:          true,
	RelNext:          true,
	RelPreview:       true,
	RelAbout:         true,
	RelAuthor:        true,
	RelCiteAs:        true,
	RelCollection:    true,
	RelCurrent:       true,
	RelDescribedBy:   true,
	RelDescribes:     true,
	RelEnclosure:     true,
	RelFirst:         true,
	RelHelp:          true,
	RelIcon:          true,
	RelIndex:         true,
	RelLast:          true,
	RelLatestVersion: true,
	RelLicense:       true,
	RelRelated:       true,
	RelSearch:        true,
	RelServiceDesc:   true,
	RelServiceDoc:    true,
	RelStylesheet:    true,
	RelTag:           true,
	RelType:          true,
	RelUp:            true,
}

// LookupRelKind returns the relation kind for a raw token.
func LookupRelKind(token string) (RelKind, error) {
	k := RelKind(token)
	if !validRelKinds[k] {
		return "", &UnknownValueError{Vocabulary: "RelKind", Value: token}
	}
	return k, nil
}
