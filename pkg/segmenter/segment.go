package segmenter

import (
	"github.com/kerem-kaynak/polyglot-tokenizer/pkg/detection"
)

// Dispatcher holds the configuration of a segmentation call. The zero value
// uses DefaultRegistry, the default detector and no allow list.
//
// A Dispatcher is read-only after construction and may be shared by any
// number of goroutines; the iterators it returns may not.
type Dispatcher struct {
	Registry  *Registry
	Detector  detection.Detector
	AllowList detection.AllowList

	// DetectLanguage detects the language of every run, not only when
	// segmenter selection needs it, so tokens always carry one.
	DetectLanguage bool
}

func (d *Dispatcher) registry() *Registry {
	if d.Registry != nil {
		return d.Registry
	}
	return DefaultRegistry()
}

// SegmentStr returns the raw lexical units of text.
func (d *Dispatcher) SegmentStr(text string) *StrIter {
	return newStrIter(text, d)
}

// Segment returns the positioned tokens of text.
func (d *Dispatcher) Segment(text string) *TokenIter {
	return &TokenIter{inner: newStrIter(text, d)}
}

// SegmentStr returns the raw lexical units of text using the default
// registry and detector.
func SegmentStr(text string) *StrIter {
	return SegmentStrWithAllowList(text, nil)
}

// SegmentStrWithAllowList is SegmentStr with the detectable languages
// restricted per script.
func SegmentStrWithAllowList(text string, allow detection.AllowList) *StrIter {
	d := Dispatcher{AllowList: allow}
	return d.SegmentStr(text)
}

// Segment returns the positioned tokens of text using the default registry
// and detector. Tokens are neither normalized nor classified.
func Segment(text string) *TokenIter {
	return SegmentWithAllowList(text, nil)
}

// SegmentWithAllowList is Segment with the detectable languages restricted
// per script.
func SegmentWithAllowList(text string, allow detection.AllowList) *TokenIter {
	d := Dispatcher{AllowList: allow}
	return d.Segment(text)
}
