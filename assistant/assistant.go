package assistant

import (
	"context"
	"fmt"

	"otter-agent/config"
	apperrors "otter-agent/errors"
	"otter-agent/sources"

	"go.uber.org/zap"
)

// Assistant answers single-turn otter questions: domain check, rule table,
// then a timed race across external knowledge sources with relevance
// filtering. It holds no per-request state; one value serves all requests.
type Assistant struct {
	cfg      *config.Config
	rules    *RuleTable
	resolver *Resolver
	logger   *zap.Logger
}

// New validates the configured tables up front. An empty rule table, keyword
// set or refusal pool is a deployment defect, not a runtime condition, so it
// fails construction rather than degrading silently.
func New(cfg *config.Config, rules *RuleTable, srcs []sources.Source, logger *zap.Logger) (*Assistant, error) {
	if rules == nil || rules.Len() == 0 {
		return nil, apperrors.WrapError(apperrors.ErrMisconfigured, "rule table is empty")
	}
	if len(cfg.DomainKeywords) == 0 || cfg.PrimaryKeyword == "" {
		return nil, apperrors.WrapError(apperrors.ErrMisconfigured, "domain keywords are not set")
	}
	if len(cfg.RefusalMessages) == 0 || cfg.FallbackMessage == "" {
		return nil, apperrors.WrapError(apperrors.ErrMisconfigured, "refusal/fallback messages are not set")
	}
	if len(srcs) == 0 {
		return nil, apperrors.WrapError(apperrors.ErrMisconfigured, "no knowledge sources registered")
	}

	return &Assistant{
		cfg:      cfg,
		rules:    rules,
		resolver: NewResolver(srcs, cfg.RaceDeadline, logger),
		logger:   logger,
	}, nil
}

// AnswerQuestion is the sole entry point. It never panics and always returns
// a non-empty reply no longer than the configured character cap.
//
// The step order is deliberate: the domain check and rule table cost nothing,
// so the network race only runs for unknown in-domain questions.
func (a *Assistant) AnswerQuestion(ctx context.Context, question string) string {
	cleaned := Clean(question)

	if !a.InDomain(cleaned) {
		a.logger.Debug("question out of domain", zap.String("question", cleaned))
		return a.refusal()
	}

	if canned := a.rules.Answer(cleaned); canned != "" {
		return canned
	}

	query := a.RewriteForTopic(cleaned)
	answer, label := a.resolver.Resolve(ctx, query)
	if answer == "" || !a.SeemsRelevant(answer, cleaned) {
		a.logger.Debug("no usable answer, falling back",
			zap.String("question", cleaned),
			zap.String("query", query),
			zap.Bool("raced_empty", answer == ""))
		return a.cfg.FallbackMessage
	}

	return a.formatAnswer(answer, label)
}

// formatAnswer truncates the answer and appends the source citation, keeping
// the whole reply within the configured character cap.
func (a *Assistant) formatAnswer(answer, label string) string {
	suffix := fmt.Sprintf(" (Source: %s)", label)
	budget := a.cfg.ReplyCharLimit - len([]rune(suffix))
	if budget < 2 {
		// Degenerate cap; keep at least a sliver of answer text.
		budget = 2
	}
	return Truncate(answer, budget) + suffix
}
