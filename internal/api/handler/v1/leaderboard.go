package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/youthopia-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/youthopia-api/internal/domain"
)

type LeaderboardService interface {
	OverallLeaderboard() []domain.LeaderboardEntry
	TeamLeaderboard() []domain.TeamLeaderboardEntry
	LeaderboardForEvent(eventID string) []domain.LeaderboardEntry
	CurrentUserRank() *int
}

type LeaderboardHandler struct {
	svc LeaderboardService
}

func NewLeaderboardHandler(svc LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{
		svc: svc,
	}
}

// HandleGetLeaderboard godoc
// @Summary      Overall leaderboard
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   domain.LeaderboardEntry
// @Router       /leaderboard [get]
// @Security BearerAuth
func (h *LeaderboardHandler) HandleGetLeaderboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.OverallLeaderboard())
}

// HandleGetTeamLeaderboard godoc
// @Summary      Team leaderboard
// @Tags         leaderboard
// @Produce      json
// @Success      200  {array}   domain.TeamLeaderboardEntry
// @Router       /leaderboard/teams [get]
// @Security BearerAuth
func (h *LeaderboardHandler) HandleGetTeamLeaderboard(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.svc.TeamLeaderboard())
}

// HandleGetEventLeaderboard godoc
// @Summary      Completion order for one event
// @Tags         leaderboard
// @Produce      json
// @Param        eventID  path      string  true  "Event ID"
// @Success      200      {array}   domain.LeaderboardEntry
// @Failure      404      {object}  response.Err
// @Router       /leaderboard/events/{eventID} [get]
// @Security BearerAuth
func (h *LeaderboardHandler) HandleGetEventLeaderboard(ctx *gin.Context) {
	event, ok := eventFromPath(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, h.svc.LeaderboardForEvent(event.ID))
}

// HandleGetMyRank godoc
// @Summary      Rank of the logged in participant
// @Tags         leaderboard
// @Produce      json
// @Success      200  {object}  response.RankResponse
// @Router       /leaderboard/me [get]
// @Security BearerAuth
func (h *LeaderboardHandler) HandleGetMyRank(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.RankResponse{Rank: h.svc.CurrentUserRank()})
}
