// Package resolver turns a free text question into a step by step answer
//
// Protocol per request:
//  1. translate the query into English unless it already is (or the language is unknown)
//  2. match an intent against one catalog snapshot
//  3. gated intents: extract an age and run the eligibility rule; guidance returns at once, in English
//  4. no match: the fixed unknown message
//  5. otherwise format the procedure into numbered steps
//  6. translate the unknown message or the steps back into the user's language
//
// Translation failures are terminal for the request and no partial answer is returned
package resolver

import (
	"context"
	stderrs "errors"
	"fmt"

	"legallens/internal/core/age"
	"legallens/internal/core/catalog"
	"legallens/internal/core/eligibility"
	"legallens/internal/core/language"
	"legallens/internal/core/matcher"
	"legallens/internal/core/steps"
	perr "legallens/internal/platform/errors"
	"legallens/internal/platform/logger"
)

// DefaultUnknownMessage is returned when no intent matches
const DefaultUnknownMessage = "Sorry, I couldn't understand your query. Please try again."

// Outcome classifies an answer
type Outcome string

const (
	OutcomeProcedure Outcome = "procedure"
	OutcomeGuidance  Outcome = "guidance"
	OutcomeUnknown   Outcome = "unknown"
)

// Answer is the resolved response for one query
type Answer struct {
	Text     string        // final user facing text
	Outcome  Outcome       // what kind of answer Text is
	IntentID string        // matched intent, "unknown" when none
	Language language.Code // language Text is written in
	Asked    language.Code // language the question was taken to be in
	Steps    steps.Sequence
	Age      int
	HasAge   bool
	Reason   eligibility.Reason // set for guidance answers
}

// Catalogs hands out the active catalog snapshot; *catalog.Holder satisfies it
type Catalogs interface {
	Current() *catalog.Catalog
}

// Static serves one fixed catalog
type Static struct{ C *catalog.Catalog }

// Current implements Catalogs
func (s Static) Current() *catalog.Catalog { return s.C }

// Options tune a Resolver; zero values pick the defaults
type Options struct {
	Matcher        matcher.Matcher
	Rules          eligibility.Table
	Detector       language.Detector // used by Ask when the caller gives no language
	UnknownMessage string
	Log            *logger.Logger
}

// Resolver is safe for concurrent use
type Resolver struct {
	cats     Catalogs
	tr       language.Translator
	match    matcher.Matcher
	rules    eligibility.Table
	detector language.Detector
	unknown  string
	log      *logger.Logger
}

// New builds a resolver over cats, translating through tr
func New(cats Catalogs, tr language.Translator, opt Options) *Resolver {
	r := &Resolver{
		cats:     cats,
		tr:       tr,
		match:    opt.Matcher,
		rules:    opt.Rules,
		detector: opt.Detector,
		unknown:  opt.UnknownMessage,
		log:      opt.Log,
	}
	if r.match == nil {
		r.match = matcher.Keyword{}
	}
	if r.rules == nil {
		r.rules = eligibility.Defaults()
	}
	if r.unknown == "" {
		r.unknown = DefaultUnknownMessage
	}
	if r.log == nil {
		r.log = logger.Named("resolver")
	}
	return r
}

// Ask resolves raw, detecting its language first when hint is empty
// A failed detection is not an error: the query is handled as language.Unknown, untranslated
func (r *Resolver) Ask(ctx context.Context, raw string, hint language.Code) (Answer, error) {
	if hint == "" {
		hint = r.Detect(ctx, raw)
	}
	return r.Resolve(ctx, raw, hint)
}

// Detect returns the language of text or language.Unknown when detection is unavailable or fails
func (r *Resolver) Detect(ctx context.Context, text string) language.Code {
	if r.detector == nil {
		return language.Unknown
	}
	code, err := r.detector.Detect(ctx, text)
	if err != nil {
		r.log.Warn().Err(err).Msg("language detection failed, continuing untranslated")
		return language.Unknown
	}
	if code == "" {
		return language.Unknown
	}
	return code
}

// Resolve runs the full protocol for raw in language hint
func (r *Resolver) Resolve(ctx context.Context, raw string, hint language.Code) (Answer, error) {
	if hint == "" {
		hint = language.Unknown
	}
	ans := Answer{Asked: hint, Language: language.English}

	query := raw
	if hint.NeedsTranslation() {
		q, err := r.translate(ctx, raw, hint, language.English)
		if err != nil {
			return Answer{}, err
		}
		query = q
	}

	cat := r.cats.Current()
	if cat == nil {
		return Answer{}, perr.Wrap(catalog.ErrLoad, perr.ErrorCodeUnavailable, "no catalog loaded")
	}

	res := r.match.Match(cat, query)
	ans.IntentID = res.ID()

	if !res.Known {
		ans.Outcome = OutcomeUnknown
		ans.Text = r.unknown
		return r.localize(ctx, ans, hint)
	}

	if rule, gated := r.rules.For(res.Record.ID); gated {
		ans.Age, ans.HasAge = age.Extract(query)
		if v := rule.Evaluate(ans.Age, ans.HasAge); !v.Proceed {
			// guidance stays in English
			ans.Outcome = OutcomeGuidance
			ans.Text = v.Message
			ans.Reason = v.Reason
			r.trace(ans)
			return ans, nil
		}
	}

	ans.Outcome = OutcomeProcedure
	ans.Steps = steps.Format(res.Record.Procedure)
	ans.Text = ans.Steps.String()
	return r.localize(ctx, ans, hint)
}

// localize translates ans.Text back into lang when needed
func (r *Resolver) localize(ctx context.Context, ans Answer, lang language.Code) (Answer, error) {
	if lang.NeedsTranslation() {
		text, err := r.translate(ctx, ans.Text, language.English, lang)
		if err != nil {
			return Answer{}, err
		}
		ans.Text = text
		ans.Language = lang
	}
	r.trace(ans)
	return ans, nil
}

func (r *Resolver) translate(ctx context.Context, text string, from, to language.Code) (string, error) {
	if r.tr == nil {
		return "", language.Translation(nil, fmt.Sprintf("no translator configured for %s->%s", from, to))
	}
	out, err := r.tr.Translate(ctx, text, from, to)
	if err != nil {
		if stderrs.Is(err, language.ErrTranslation) {
			return "", err
		}
		return "", language.Translation(err, fmt.Sprintf("translate %s->%s", from, to))
	}
	return out, nil
}

func (r *Resolver) trace(ans Answer) {
	r.log.Debug().
		Str("intent", ans.IntentID).
		Str("outcome", string(ans.Outcome)).
		Str("asked", ans.Asked.String()).
		Str("lang", ans.Language.String()).
		Int("steps", len(ans.Steps)).
		Msg("query resolved")
}
