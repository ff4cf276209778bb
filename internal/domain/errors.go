package domain

import "errors"

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidTeamID      = errors.New("invalid team id")
	ErrInvalidTeamName    = errors.New("invalid team name")
	ErrInvalidMemberID    = errors.New("invalid member id")
	ErrInvalidDisplayName = errors.New("invalid member display name")
	ErrInvalidPlanID      = errors.New("invalid plan id")
	ErrInvalidDateRange   = errors.New("invalid date range")

	// Roster validation errors
	ErrRosterCoverage      = errors.New("assignments do not cover the full date range")
	ErrRosterDuplicateDay  = errors.New("assignments contain duplicate days")
	ErrRosterDayOutOfRange = errors.New("assignments contain day outside of date range")
	ErrRosterUnknownMember = errors.New("assignments reference unknown or removed member")

	// Team errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")

	// Member errors
	ErrMemberNotFound       = errors.New("member not found")
	ErrMemberAlreadyRemoved = errors.New("member already removed")

	// Unavailability errors
	ErrUnavailabilityNotFound = errors.New("unavailability not found")
	ErrUnavailabilityExists   = errors.New("unavailability already exists for member and day")

	// Plan errors
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanOverlap  = errors.New("plan overlaps an already saved plan")
)

// HTTPError для соответствия OpenAPI
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidTeamID:      {Code: "INVALID_TEAM_ID", Message: "team id is missing or malformed"},
	ErrInvalidTeamName:    {Code: "INVALID_TEAM_NAME", Message: "team name must not be empty"},
	ErrInvalidMemberID:    {Code: "INVALID_MEMBER_ID", Message: "member id is missing or malformed"},
	ErrInvalidDisplayName: {Code: "INVALID_DISPLAY_NAME", Message: "member display name must not be empty"},
	ErrInvalidPlanID:      {Code: "INVALID_PLAN_ID", Message: "plan id is missing or malformed"},
	ErrInvalidDateRange:   {Code: "INVALID_RANGE", Message: "date range is malformed or exceeds 365 days"},

	ErrRosterCoverage:      {Code: "ROSTER_COVERAGE", Message: "assignments do not cover the full date range"},
	ErrRosterDuplicateDay:  {Code: "ROSTER_DUPLICATE_DAY", Message: "assignments contain duplicate days"},
	ErrRosterDayOutOfRange: {Code: "ROSTER_DAY_OUT_OF_RANGE", Message: "assignments contain day outside of date range"},
	ErrRosterUnknownMember: {Code: "ROSTER_UNKNOWN_MEMBER", Message: "assignments reference unknown or removed member"},

	ErrTeamNotFound:      {Code: "NOT_FOUND", Message: "team not found"},
	ErrTeamAlreadyExists: {Code: "TEAM_EXISTS", Message: "team name already exists"},

	ErrMemberNotFound:       {Code: "NOT_FOUND", Message: "member not found"},
	ErrMemberAlreadyRemoved: {Code: "MEMBER_REMOVED", Message: "member already removed"},

	ErrUnavailabilityNotFound: {Code: "NOT_FOUND", Message: "unavailability not found"},
	ErrUnavailabilityExists:   {Code: "UNAVAILABILITY_EXISTS", Message: "unavailability already exists for member and day"},

	ErrPlanNotFound: {Code: "NOT_FOUND", Message: "plan not found"},
	ErrPlanOverlap:  {Code: "PLAN_OVERLAP", Message: "date range overlaps an already saved plan"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку
func ToHTTPError(err error) (HTTPError, bool) {
	httpErr, exists := ErrorMapping[err]
	return httpErr, exists
}
