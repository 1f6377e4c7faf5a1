package usecase

import (
	"context"
	"fmt"

	"github.com/routing-gateway/internal/domain"
	"github.com/routing-gateway/internal/infrastructure/tomtom"
)

// RunJob выполняет задание из очереди и формирует событие результата.
// Ошибки не возвращаются, они попадают в поле Error события.
func (uc *RoutingUseCase) RunJob(ctx context.Context, job domain.RoutingJobEvent) domain.RoutingDoneEvent {
	done := domain.RoutingDoneEvent{
		JobID: job.JobID,
		Mode:  job.Mode,
	}

	if !job.Mode.IsValid() {
		done.Error = fmt.Sprintf("unknown job mode %q", job.Mode)
		return done
	}

	result, err := uc.dispatch(ctx, job)
	if err != nil {
		done.Error = err.Error()
		return done
	}

	done.StatusCode = result.StatusCode
	done.Result = result.Data
	done.DecodeFailure = result.Failure
	return done
}

func (uc *RoutingUseCase) dispatch(ctx context.Context, job domain.RoutingJobEvent) (*domain.APIResult, error) {
	switch job.Mode {
	case domain.ModeRoute:
		if job.Route == nil {
			return nil, fmt.Errorf("route job %s has no route params", job.JobID)
		}
		return uc.CalculateRoute(ctx, domain.RouteRequest{
			Origin:      job.Route.Origin,
			Destination: job.Route.Destination,
			Options:     jobOptions(job.Route.Options),
			Key:         job.Key,
		})

	case domain.ModeRange:
		if job.Range == nil {
			return nil, fmt.Errorf("range job %s has no range params", job.JobID)
		}
		return uc.CalculateReachableRange(ctx, domain.RangeRequest{
			Origin: job.Range.Origin,
			Budget: job.Range.Budget,
			Key:    job.Key,
		})

	case domain.ModeBatch:
		if job.Batch == nil {
			return nil, fmt.Errorf("batch job %s has no batch params", job.JobID)
		}
		return uc.CalculateBatch(ctx, domain.BatchRequest{
			Pairs:   job.Batch.Pairs,
			Options: jobOptions(job.Batch.Options),
			Key:     job.Key,
		})

	case domain.ModeMatrix:
		if job.Matrix == nil {
			return nil, fmt.Errorf("matrix job %s has no matrix params", job.JobID)
		}
		return uc.CalculateMatrix(ctx, domain.MatrixRequest{
			Origins:      job.Matrix.Origins,
			Destinations: job.Matrix.Destinations,
			Options:      jobOptions(job.Matrix.Options),
			Key:          job.Key,
		})
	}

	return nil, fmt.Errorf("unknown job mode %q", job.Mode)
}

func jobOptions(in *domain.RouteOptionsInput) domain.RouteOptions {
	if in == nil {
		return domain.DefaultRouteOptions()
	}
	return tomtom.NormalizeOptions(*in)
}
