package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	vo "norte/internal/domain/ticket/valueobjects"
	"norte/internal/shared/biztime"
	"norte/internal/shared/logger"
)

const workloadLimit = 7

type GetTicketAnalyticsUseCase struct {
	statsRepo TicketStatsRepository
	clock     biztime.Clock
	logger    logger.Interface
}

func NewGetTicketAnalyticsUseCase(
	statsRepo TicketStatsRepository,
	clock biztime.Clock,
	logger logger.Interface,
) *GetTicketAnalyticsUseCase {
	return &GetTicketAnalyticsUseCase{
		statsRepo: statsRepo,
		clock:     clock,
		logger:    logger,
	}
}

func (uc *GetTicketAnalyticsUseCase) Execute(ctx context.Context, query AnalyticsQuery) (*TicketAnalyticsDTO, error) {
	from, to, err := resolveRange(query, uc.clock)
	if err != nil {
		return nil, err
	}

	uc.logger.Debugw("fetching ticket analytics", "from", from, "to", to)

	now := uc.clock.Now().UTC()
	monthly := to.Sub(from) > monthlyChartThreshold

	var (
		totalTickets     int64
		completedTickets int64
		overdueTickets   int64
		backlog          int64
		pendingTasks     int64
		timeline         []PeriodCount
		workload         []AssigneeCount
		priorities       []PriorityCount
		busyAssignees    []AssigneeCount
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalTickets, err = uc.statsRepo.CountTicketsScheduledBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		completedTickets, err = uc.statsRepo.CountTicketsScheduledBetweenWithStatus(gctx, from, to, string(vo.StatusCompleted))
		return err
	})
	g.Go(func() error {
		var err error
		overdueTickets, err = uc.statsRepo.CountOverdueTickets(gctx, from, to, now, string(vo.StatusCompleted))
		return err
	})
	g.Go(func() error {
		var err error
		if monthly {
			timeline, err = uc.statsRepo.TicketCountsByMonth(gctx, from, to)
		} else {
			timeline, err = uc.statsRepo.TicketCountsByDay(gctx, from, to)
		}
		return err
	})
	g.Go(func() error {
		var err error
		workload, err = uc.statsRepo.WorkloadByAssignee(gctx, from, to, workloadLimit)
		return err
	})
	g.Go(func() error {
		var err error
		priorities, err = uc.statsRepo.PriorityDistribution(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		backlog, err = uc.statsRepo.CountTicketsExcludingStatuses(gctx, []string{
			string(vo.StatusCompleted), string(vo.StatusCancelled),
		})
		return err
	})
	g.Go(func() error {
		var err error
		pendingTasks, err = uc.statsRepo.CountTasksExcludingStatus(gctx, string(vo.TaskStatusCompleted))
		return err
	})
	g.Go(func() error {
		var err error
		busyAssignees, err = uc.statsRepo.AssigneesWithPendingTasks(gctx, topListLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to build ticket analytics", "error", err)
		return nil, err
	}

	completionRate := 0.0
	if totalTickets > 0 {
		completionRate = roundRate(float64(completedTickets) / float64(totalTickets) * 100)
	}

	dto := &TicketAnalyticsDTO{
		TotalTickets:         totalTickets,
		CompletedTickets:     completedTickets,
		CompletionRate:       completionRate,
		OverdueTickets:       overdueTickets,
		Timeline:             buildCountSeries(timeline, from, to, monthly),
		WorkloadByAssignee:   make([]AssigneeCountDTO, 0, len(workload)),
		PriorityDistribution: make([]PriorityCountDTO, 0, len(priorities)),
		Backlog:              backlog,
		PendingTasks:         pendingTasks,
		BusyAssignees:        make([]AssigneeCountDTO, 0, len(busyAssignees)),
		From:                 from,
		To:                   to,
	}

	for _, w := range workload {
		dto.WorkloadByAssignee = append(dto.WorkloadByAssignee, AssigneeCountDTO{UserID: w.UserID, Name: w.Name, Total: w.Total})
	}
	for _, p := range priorities {
		dto.PriorityDistribution = append(dto.PriorityDistribution, PriorityCountDTO{Priority: p.Priority, Total: p.Total})
	}
	for _, b := range busyAssignees {
		dto.BusyAssignees = append(dto.BusyAssignees, AssigneeCountDTO{UserID: b.UserID, Name: b.Name, Total: b.Total})
	}

	return dto, nil
}

func buildCountSeries(points []PeriodCount, from, to time.Time, monthly bool) CountSeries {
	byKey := make(map[string]int64, len(points))
	for _, p := range points {
		byKey[periodKey(p.Period, monthly)] = p.Total
	}

	series := CountSeries{}
	for cursor := from; !cursor.After(to); {
		series.Labels = append(series.Labels, periodLabel(cursor, monthly))
		series.Data = append(series.Data, byKey[periodKey(cursor, monthly)])

		if monthly {
			cursor = cursor.AddDate(0, 1, 0)
		} else {
			cursor = cursor.AddDate(0, 0, 1)
		}
	}
	return series
}
