package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/madhawa1206/expense-tracker-frontend/internal/core"
	applog "github.com/madhawa1206/expense-tracker-frontend/internal/log"
	"github.com/madhawa1206/expense-tracker-frontend/internal/report"
)

// ErrStaleResponse marks a month-summary resolution that was
// superseded by a later request. Callers drop the result silently;
// without this guard a rapid month change could render last-resolved
// data instead of last-requested.
var ErrStaleResponse = errors.New("stale month summary response discarded")

// DashboardService produces the month-scoped summary. Identical
// in-flight month fetches are collapsed, and every request carries a
// monotonically increasing token so only the newest resolution wins.
type DashboardService struct {
	gw    Gateway
	log   *applog.Logger
	group singleflight.Group
	seq   atomic.Uint64
}

func NewDashboardService(gw Gateway, logger *applog.Logger) *DashboardService {
	if logger == nil {
		logger = applog.New(applog.Config{Component: "dashboard"})
	}
	return &DashboardService{gw: gw, log: logger.WithComponent("dashboard")}
}

// MonthSummary fetches the expenses of the given month and aggregates
// them. Returns ErrStaleResponse when a newer request was issued
// before this one resolved.
func (s *DashboardService) MonthSummary(ctx context.Context, year, month int) (report.Summary, error) {
	seq := s.seq.Add(1)
	from, to := report.MonthRange(year, month)

	key := fmt.Sprintf("%04d-%02d", year, month)
	v, err, shared := s.group.Do(key, func() (any, error) {
		return s.gw.ListExpensesBetween(ctx, from, to)
	})
	if err != nil {
		return report.Summary{}, fmt.Errorf("month summary %s: %w", key, err)
	}
	if s.seq.Load() != seq {
		s.log.Debug("dropping stale month summary", "month", key, "seq", seq)
		return report.Summary{}, ErrStaleResponse
	}
	if shared {
		s.log.Debug("month fetch shared with concurrent request", "month", key)
	}
	return report.Summarize(v.([]core.Expense)), nil
}
