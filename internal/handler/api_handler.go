package handler

import (
	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"

	"github.com/sirupsen/logrus"
)

type APIHandler struct {
	*TeamHandler
	*MemberHandler
	*UnavailabilityHandler
	*PlanHandler
	*StatsHandler
}

func NewAPIHandler(
	teamUseCase domain.TeamUseCase,
	memberUseCase domain.MemberUseCase,
	unavailabilityUseCase domain.UnavailabilityUseCase,
	planUseCase domain.PlanUseCase,
	statsUseCase domain.StatsUseCase,
	logger *logrus.Logger,
) api.ServerInterface {

	return &APIHandler{
		TeamHandler:           NewTeamHandler(teamUseCase, logger),
		MemberHandler:         NewMemberHandler(memberUseCase, logger),
		UnavailabilityHandler: NewUnavailabilityHandler(unavailabilityUseCase, logger),
		PlanHandler:           NewPlanHandler(planUseCase, logger),
		StatsHandler:          NewStatsHandler(statsUseCase, logger),
	}
}
