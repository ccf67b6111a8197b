// Package service answers questions and audits each resolution
package service

import (
	"context"
	"time"

	"legallens/internal/core/language"
	"legallens/internal/core/resolver"
	"legallens/internal/platform/logger"
	"legallens/internal/services/api/ask/domain"

	"github.com/google/uuid"
)

// auditTimeout bounds the audit write so a slow clickhouse cannot hold the answer
const auditTimeout = 2 * time.Second

// Asker is the resolver surface the service needs
type Asker interface {
	Ask(ctx context.Context, raw string, hint language.Code) (resolver.Answer, error)
}

// Svc implements domain.ServicePort
type Svc struct {
	r     Asker
	audit domain.AuditPort
	log   *logger.Logger
	now   func() time.Time
}

// New builds the service; a nil audit records nothing
func New(r Asker, audit domain.AuditPort, log *logger.Logger) *Svc {
	if log == nil {
		log = logger.Named("ask")
	}
	return &Svc{r: r, audit: audit, log: log, now: time.Now}
}

// Ask resolves in.Query, detecting the language when in.Lang is empty
func (s *Svc) Ask(ctx context.Context, in domain.AskInput) (domain.AnswerView, error) {
	start := s.now()
	ans, err := s.r.Ask(ctx, in.Query, language.Parse(in.Lang))
	s.record(ctx, start, in, ans, err)
	if err != nil {
		return domain.AnswerView{}, err
	}
	return View(ans), nil
}

func (s *Svc) record(ctx context.Context, start time.Time, in domain.AskInput, ans resolver.Answer, err error) {
	if s.audit == nil {
		return
	}
	lang := ans.Asked.String()
	if lang == "" {
		lang = language.Parse(in.Lang).String()
	}
	rec := domain.Resolution{
		ID:       uuid.New(),
		At:       start,
		Lang:     lang,
		IntentID: ans.IntentID,
		Outcome:  string(ans.Outcome),
		Latency:  s.now().Sub(start),
		Failed:   err != nil,
	}

	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditTimeout)
	defer cancel()
	if aerr := s.audit.Record(actx, rec); aerr != nil {
		s.log.Warn().Err(aerr).Str("id", rec.ID.String()).Msg("audit write failed")
	}
}

// View maps a resolver answer onto the wire shape
func View(a resolver.Answer) domain.AnswerView {
	v := domain.AnswerView{
		Answer:   a.Text,
		Outcome:  string(a.Outcome),
		IntentID: a.IntentID,
		Lang:     a.Language.String(),
	}
	if len(a.Steps) > 0 {
		v.Steps = append([]string(nil), a.Steps...)
	}
	if a.HasAge {
		age := a.Age
		v.Age = &age
	}
	return v
}
