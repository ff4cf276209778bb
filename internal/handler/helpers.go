package handler

import (
	"net/http"

	"oncall-roster-service/api"
	"oncall-roster-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

func toAPITeam(team *domain.Team) api.Team {
	return api.Team{
		TeamId:        team.ID,
		TeamName:      team.Name,
		MaxSavedCount: team.MaxSavedCount,
		CreatedAt:     team.CreatedAt,
	}
}

func toAPIMember(member *domain.Member) api.Member {
	return api.Member{
		MemberId:           member.ID,
		TeamId:             member.TeamID,
		DisplayName:        member.DisplayName,
		InitialOnCallCount: member.InitialOnCallCount,
		IsActive:           member.IsActive,
		CreatedAt:          member.CreatedAt,
		UpdatedAt:          member.UpdatedAt,
	}
}

func toAPIMemberListItems(members []*domain.MemberWithSavedCount) []api.MemberListItem {
	items := make([]api.MemberListItem, len(members))
	for i, member := range members {
		items[i] = api.MemberListItem{
			Member:     toAPIMember(&member.Member),
			SavedCount: member.SavedCount,
		}
	}
	return items
}

func toAPIUnavailability(mark *domain.Unavailability) api.Unavailability {
	return api.Unavailability{
		UnavailabilityId: mark.ID,
		TeamId:           mark.TeamID,
		MemberId:         mark.MemberID,
		Day:              mark.Day,
		CreatedAt:        mark.CreatedAt,
	}
}

func toAPIDayAssignments(assignments []domain.DayAssignment) []api.DayAssignment {
	result := make([]api.DayAssignment, len(assignments))
	for i, assignment := range assignments {
		result[i] = api.DayAssignment{
			Day:      assignment.Day,
			MemberId: assignment.MemberID,
		}
	}
	return result
}

func toDomainDayAssignments(assignments []api.DayAssignment) []domain.DayAssignment {
	result := make([]domain.DayAssignment, len(assignments))
	for i, assignment := range assignments {
		result[i] = domain.DayAssignment{
			Day:      assignment.Day,
			MemberID: assignment.MemberId,
		}
	}
	return result
}

func toAPIPlanPreview(preview *domain.PlanPreview) api.PlanPreview {
	counters := make([]api.PreviewCounter, len(preview.Counters))
	for i, counter := range preview.Counters {
		counters[i] = api.PreviewCounter{
			MemberId:       counter.MemberID,
			DisplayName:    counter.DisplayName,
			InitialCount:   counter.InitialCount,
			SavedCount:     counter.SavedCount,
			PreviewCount:   counter.PreviewCount,
			EffectiveCount: counter.EffectiveCount,
		}
	}

	return api.PlanPreview{
		StartDate:      preview.StartDate,
		EndDate:        preview.EndDate,
		RangeDays:      preview.RangeDays,
		Assignments:    toAPIDayAssignments(preview.Assignments),
		Counters:       counters,
		Inequality:     api.PreviewInequality(preview.Inequality),
		UnassignedDays: preview.UnassignedDays,
	}
}

func toAPIPlan(plan *domain.Plan) api.Plan {
	return api.Plan{
		PlanId:    plan.ID,
		TeamId:    plan.TeamID,
		CreatedBy: plan.CreatedBy,
		StartDate: plan.StartDate,
		EndDate:   plan.EndDate,
		CreatedAt: plan.CreatedAt,
	}
}

func toAPIPlanAssignments(assignments []*domain.PlanAssignment) []api.PlanAssignment {
	result := make([]api.PlanAssignment, len(assignments))
	for i, assignment := range assignments {
		result[i] = api.PlanAssignment{
			PlanId:    assignment.PlanID,
			Day:       assignment.Day,
			MemberId:  assignment.MemberID,
			CreatedAt: assignment.CreatedAt,
		}
	}
	return result
}

func toAPIStats(stats *domain.Stats) api.Stats {
	byMember := make([]api.StatsByMember, len(stats.ByMember))
	for i, row := range stats.ByMember {
		byMember[i] = api.StatsByMember{
			MemberId:     row.MemberID,
			DisplayName:  row.DisplayName,
			AssignedDays: row.AssignedDays,
		}
	}

	return api.Stats{
		Days:     api.StatsDays(stats.Days),
		ByMember: byMember,
		Members:  api.StatsMembers(stats.Members),
	}
}

func toErrorResponse(code, message string) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorBody{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) api.ErrorResponse {
	return api.ErrorResponse{
		Error: api.ErrorBody{
			Code:    httpErr.Code,
			Message: httpErr.Message,
		},
	}
}

func getHTTPStatusCode(err error) int {
	switch err {
	// Conflict errors (409)
	case domain.ErrTeamAlreadyExists, domain.ErrUnavailabilityExists,
		domain.ErrMemberAlreadyRemoved, domain.ErrPlanOverlap:
		return http.StatusConflict

	// Not Found errors (404)
	case domain.ErrTeamNotFound, domain.ErrMemberNotFound,
		domain.ErrPlanNotFound, domain.ErrUnavailabilityNotFound:
		return http.StatusNotFound

	// Unprocessable Entity (422) - диапазон и ростер
	case domain.ErrInvalidDateRange, domain.ErrRosterCoverage,
		domain.ErrRosterDuplicateDay, domain.ErrRosterDayOutOfRange,
		domain.ErrRosterUnknownMember:
		return http.StatusUnprocessableEntity

	// Bad Request errors (400) - валидация идентификаторов
	case domain.ErrInvalidTeamID, domain.ErrInvalidTeamName,
		domain.ErrInvalidMemberID, domain.ErrInvalidDisplayName,
		domain.ErrInvalidPlanID:
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
