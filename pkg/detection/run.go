package detection

// Run caches the detection results for one run of text.
// It is not safe for concurrent use and must not outlive the run.
type Run struct {
	text     string
	allow    AllowList
	detector Detector

	script       Script
	scriptDone   bool
	language     Language
	languageDone bool
}

// NewRun creates a Run over text. A nil detector uses Default.
func NewRun(text string, allow AllowList, detector Detector) *Run {
	r := &Run{}
	r.Reset(text, allow, detector)
	return r
}

// Reset clears cached results and points r at a new run.
func (r *Run) Reset(text string, allow AllowList, detector Detector) {
	if detector == nil {
		detector = Default{}
	}
	*r = Run{text: text, allow: allow, detector: detector}
}

// Text returns the run's text.
func (r *Run) Text() string {
	return r.text
}

// Script returns the run's script, detecting it on first use.
func (r *Run) Script() Script {
	if !r.scriptDone {
		r.script = r.detector.Script(r.text)
		r.scriptDone = true
	}
	return r.script
}

// Language returns the run's language, detecting it on first use.
func (r *Run) Language() Language {
	if !r.languageDone {
		r.language = r.detector.Language(r.text, r.allow)
		r.languageDone = true
	}
	return r.language
}

// DetectedLanguage returns the cached language without triggering
// detection. It returns LangUnd when Language was never called.
func (r *Run) DetectedLanguage() Language {
	if !r.languageDone {
		return LangUnd
	}
	return r.language
}
