package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"

	"github.com/agentpay/setupcheck/internal/core/domain"
	"github.com/agentpay/setupcheck/internal/logger"
)

// SetupService validates an environment file against the checklist.
type SetupService struct {
	envFile      string
	loader       domain.EnvLoader
	checks       []domain.Check
	placeholders Placeholders
	printer      domain.ReportPrinter
	log          *logger.Logger
}

func NewSetupService(
	envFile string,
	loader domain.EnvLoader,
	checks []domain.Check,
	placeholders Placeholders,
	printer domain.ReportPrinter,
	log *logger.Logger,
) *SetupService {
	if log == nil {
		log = logger.Nop()
	}
	return &SetupService{
		envFile:      envFile,
		loader:       loader,
		checks:       checks,
		placeholders: placeholders,
		printer:      printer,
		log:          log,
	}
}

// Run prints the full readiness report to w and returns whether every
// required key passed. A missing environment file ends the run before
// any check executes.
func (s *SetupService) Run(ctx context.Context, w io.Writer) bool {
	s.printer.Header(w)

	rec, err := s.loader.Load(s.envFile)
	if err != nil {
		name := filepath.Base(s.envFile)
		if errors.Is(err, domain.ErrEnvFileNotFound) {
			s.log.Warn().Str("file", s.envFile).Msg("env file not found")
			s.printer.FileNotFound(w, name)
			return false
		}
		s.log.Error().Err(err).Str("file", s.envFile).Msg("env file unreadable")
		s.printer.FileUnreadable(w, name, err)
		return false
	}

	report := s.Validate(ctx, rec)
	s.printer.Report(w, report)

	ready := report.Ready()
	s.log.Info().
		Bool("ready", ready).
		Int("required", len(report.Required)).
		Int("optional", len(report.Optional)).
		Msg("validation finished")
	return ready
}

// Validate runs every check against rec in checklist order.
func (s *SetupService) Validate(ctx context.Context, rec domain.EnvRecord) *domain.Report {
	report := &domain.Report{}

	for _, c := range s.checks {
		raw, _ := rec.Get(c.Key)

		if c.Group == domain.GroupRequired {
			value, configured := s.placeholders.FilterRequired(raw)
			if !configured {
				s.log.Debug().Str("key", c.Key).Msg("required key not configured")
				report.Add(domain.Result{Key: c.Key, Group: c.Group, OK: false, Message: domain.NotConfiguredMessage})
				continue
			}
			report.Add(s.run(ctx, c, value))
			continue
		}

		value, configured := s.placeholders.FilterOptional(raw)
		if !configured {
			s.log.Debug().Str("key", c.Key).Msg("optional key skipped")
			continue
		}
		report.Add(s.run(ctx, c, value))
	}

	return report
}

func (s *SetupService) run(ctx context.Context, c domain.Check, value string) domain.Result {
	v := c.Validate.Validate(ctx, value)
	s.log.Debug().Str("key", c.Key).Bool("ok", v.OK).Msg(v.Message)
	return domain.Result{Key: c.Key, Group: c.Group, OK: v.OK, Message: v.Message}
}
