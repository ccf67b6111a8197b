package module

import (
	"legallens/internal/core/language"
	"legallens/internal/core/matcher"
	"legallens/internal/platform/config"
)

// Options wires the language backend into the resolver
type Options struct {
	Lang           language.Translator // nil answers non-English queries with a 503
	Detector       language.Detector   // nil treats undeclared languages as unknown
	UnknownMessage string
	Matcher        matcher.Matcher // nil is the plain keyword scan
}

// FromConfig reads CORE_LENS_UNKNOWN_MESSAGE and CORE_LENS_MATCHER (indexed|keyword)
// the language backends are wired by the caller
func FromConfig(cfg config.Conf, tr language.Translator, det language.Detector) Options {
	lc := cfg.Prefix("CORE_LENS_")
	o := Options{
		Lang:           tr,
		Detector:       det,
		UnknownMessage: lc.MayString("UNKNOWN_MESSAGE", ""),
	}
	if lc.MayEnum("MATCHER", "indexed", "indexed", "keyword") == "indexed" {
		o.Matcher = matcher.NewIndexed()
	}
	return o
}
