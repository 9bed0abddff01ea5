package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/youthopia-api/internal/domain"
)

const SpinPrizeReason = "Spin Wheel Prize"

// PrizeSegments are the wheel's slices in clockwise order.
var PrizeSegments = []int{5, 10, 2, 20, 5, 15, 2, 25}

// Spin consumes one spin and credits a random wheel prize in a single
// mutation. Without spins, or without a current user, nothing happens and the
// result reports Spun == false.
func (s *LedgerService) Spin(ctx context.Context) (domain.SpinResult, error) {
	var result domain.SpinResult

	err := s.mutateCurrent(ctx, "spin", func(u *domain.User) (bool, *domain.Notification) {
		result.SpinsRemaining = u.SpinsAvailable
		result.VisaPoints = u.VisaPoints
		if u.SpinsAvailable <= 0 {
			return false, nil
		}

		prize := PrizeSegments[s.conf.Intn(len(PrizeSegments))]
		u.SpinsAvailable--
		u.Credit(prize, SpinPrizeReason, s.now())

		result = domain.SpinResult{
			Spun:           true,
			Prize:          prize,
			SpinsRemaining: u.SpinsAvailable,
		}

		return true, &domain.Notification{
			Message: fmt.Sprintf("You won %d Points!", prize),
			Type:    domain.NotificationSuccess,
		}
	})
	if err != nil {
		return domain.SpinResult{}, err
	}

	if result.Spun {
		if u, ok := s.CurrentUser(); ok {
			result.VisaPoints = u.VisaPoints
		}
	}

	return result, nil
}
