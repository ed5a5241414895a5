// Package service contains the parse workflow
package service

import (
	"context"

	"batakh/internal/core/temporal"
	perr "batakh/internal/platform/errors"
	"batakh/internal/platform/logger"
	"batakh/internal/services/api/parse/domain"

	"github.com/google/uuid"
)

// Service defines the parse service contract
type Service interface {
	Parse(ctx context.Context, in domain.ParseRequest) ([]temporal.Entity, error)
}

// Svc implements the parse service over a compiled temporal parser
type Svc struct {
	parser *temporal.Parser
}

// New constructs a parse service
func New(parser *temporal.Parser) *Svc {
	if parser == nil {
		panic("parse.Service requires a non nil temporal.Parser")
	}
	return &Svc{parser: parser}
}

// Parse resolves the request text against the reference clock. An empty text
// or an unresolvable utterance yields an empty slice; only a malformed
// reftime override is an error.
func (s *Svc) Parse(ctx context.Context, in domain.ParseRequest) ([]temporal.Entity, error) {
	ref, err := temporal.ResolveReference(in.RefTime, s.parser.Location())
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeValidation, "reftime %q", in.RefTime)
	}

	parseID := uuid.NewString()
	entities := s.parser.Parse(in.Text, ref)

	logger.C(ctx).Debug().
		Str("parse_id", parseID).
		Str("locale", in.Locale).
		Int("entities", len(entities)).
		Msg("parse done")

	return entities, nil
}
