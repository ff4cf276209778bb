package database

import (
	"context"
	"database/sql"
)

// Teams

const createTeam = `
INSERT INTO teams (team_id, team_name)
VALUES ($1, $2)
RETURNING team_id, team_name, max_saved_count, created_at
`

type CreateTeamParams struct {
	TeamID   string
	TeamName string
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam, arg.TeamID, arg.TeamName)
	var t Team
	err := row.Scan(&t.TeamID, &t.TeamName, &t.MaxSavedCount, &t.CreatedAt)
	return t, err
}

const getTeamByID = `
SELECT team_id, team_name, max_saved_count, created_at
FROM teams
WHERE team_id = $1
`

func (q *Queries) GetTeamByID(ctx context.Context, teamID string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByID, teamID)
	var t Team
	err := row.Scan(&t.TeamID, &t.TeamName, &t.MaxSavedCount, &t.CreatedAt)
	return t, err
}

const teamExistsByName = `
SELECT count(*) FROM teams WHERE team_name = $1
`

func (q *Queries) TeamExistsByName(ctx context.Context, teamName string) (int64, error) {
	row := q.db.QueryRowContext(ctx, teamExistsByName, teamName)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const teamExists = `
SELECT count(*) FROM teams WHERE team_id = $1
`

func (q *Queries) TeamExists(ctx context.Context, teamID string) (int64, error) {
	row := q.db.QueryRowContext(ctx, teamExists, teamID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const updateTeamMaxSavedCount = `
UPDATE teams SET max_saved_count = $2 WHERE team_id = $1
`

type UpdateTeamMaxSavedCountParams struct {
	TeamID        string
	MaxSavedCount int
}

func (q *Queries) UpdateTeamMaxSavedCount(ctx context.Context, arg UpdateTeamMaxSavedCountParams) error {
	_, err := q.db.ExecContext(ctx, updateTeamMaxSavedCount, arg.TeamID, arg.MaxSavedCount)
	return err
}

// Members

const createMember = `
INSERT INTO members (member_id, team_id, display_name, initial_on_call_count)
VALUES ($1, $2, $3, $4)
RETURNING member_id, team_id, display_name, initial_on_call_count, is_active, created_at, updated_at
`

type CreateMemberParams struct {
	MemberID           string
	TeamID             string
	DisplayName        string
	InitialOnCallCount int
}

func (q *Queries) CreateMember(ctx context.Context, arg CreateMemberParams) (Member, error) {
	row := q.db.QueryRowContext(ctx, createMember,
		arg.MemberID, arg.TeamID, arg.DisplayName, arg.InitialOnCallCount)
	var m Member
	err := row.Scan(&m.MemberID, &m.TeamID, &m.DisplayName,
		&m.InitialOnCallCount, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const getMemberByID = `
SELECT member_id, team_id, display_name, initial_on_call_count, is_active, created_at, updated_at
FROM members
WHERE team_id = $1 AND member_id = $2
`

type GetMemberByIDParams struct {
	TeamID   string
	MemberID string
}

func (q *Queries) GetMemberByID(ctx context.Context, arg GetMemberByIDParams) (Member, error) {
	row := q.db.QueryRowContext(ctx, getMemberByID, arg.TeamID, arg.MemberID)
	var m Member
	err := row.Scan(&m.MemberID, &m.TeamID, &m.DisplayName,
		&m.InitialOnCallCount, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const listMembersByTeam = `
SELECT member_id, team_id, display_name, initial_on_call_count, is_active, created_at, updated_at
FROM members
WHERE team_id = $1
ORDER BY member_id
`

func (q *Queries) ListMembersByTeam(ctx context.Context, teamID string) ([]Member, error) {
	rows, err := q.db.QueryContext(ctx, listMembersByTeam, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

const listActiveMembersByTeam = `
SELECT member_id, team_id, display_name, initial_on_call_count, is_active, created_at, updated_at
FROM members
WHERE team_id = $1 AND is_active = true
ORDER BY member_id
`

func (q *Queries) ListActiveMembersByTeam(ctx context.Context, teamID string) ([]Member, error) {
	rows, err := q.db.QueryContext(ctx, listActiveMembersByTeam, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanMembers(rows)
}

func scanMembers(rows *sql.Rows) ([]Member, error) {
	var items []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.MemberID, &m.TeamID, &m.DisplayName,
			&m.InitialOnCallCount, &m.IsActive, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

const updateMemberDisplayName = `
UPDATE members
SET display_name = $3, updated_at = now()
WHERE team_id = $1 AND member_id = $2 AND is_active = true
RETURNING member_id, team_id, display_name, initial_on_call_count, is_active, created_at, updated_at
`

type UpdateMemberDisplayNameParams struct {
	TeamID      string
	MemberID    string
	DisplayName string
}

func (q *Queries) UpdateMemberDisplayName(ctx context.Context, arg UpdateMemberDisplayNameParams) (Member, error) {
	row := q.db.QueryRowContext(ctx, updateMemberDisplayName, arg.TeamID, arg.MemberID, arg.DisplayName)
	var m Member
	err := row.Scan(&m.MemberID, &m.TeamID, &m.DisplayName,
		&m.InitialOnCallCount, &m.IsActive, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

const deactivateMember = `
UPDATE members
SET is_active = false, updated_at = now()
WHERE team_id = $1 AND member_id = $2 AND is_active = true
RETURNING member_id
`

type DeactivateMemberParams struct {
	TeamID   string
	MemberID string
}

func (q *Queries) DeactivateMember(ctx context.Context, arg DeactivateMemberParams) (string, error) {
	row := q.db.QueryRowContext(ctx, deactivateMember, arg.TeamID, arg.MemberID)
	var memberID string
	err := row.Scan(&memberID)
	return memberID, err
}

// Unavailabilities

const createUnavailability = `
INSERT INTO unavailabilities (unavailability_id, team_id, member_id, day)
VALUES ($1, $2, $3, $4::date)
RETURNING unavailability_id, team_id, member_id, day, created_at
`

type CreateUnavailabilityParams struct {
	UnavailabilityID string
	TeamID           string
	MemberID         string
	Day              string
}

func (q *Queries) CreateUnavailability(ctx context.Context, arg CreateUnavailabilityParams) (Unavailability, error) {
	row := q.db.QueryRowContext(ctx, createUnavailability,
		arg.UnavailabilityID, arg.TeamID, arg.MemberID, arg.Day)
	var u Unavailability
	err := row.Scan(&u.UnavailabilityID, &u.TeamID, &u.MemberID, &u.Day, &u.CreatedAt)
	return u, err
}

const listUnavailabilitiesInRange = `
SELECT unavailability_id, team_id, member_id, day, created_at
FROM unavailabilities
WHERE team_id = $1 AND day >= $2::date AND day <= $3::date
ORDER BY day, member_id
`

type ListUnavailabilitiesInRangeParams struct {
	TeamID    string
	StartDate string
	EndDate   string
}

func (q *Queries) ListUnavailabilitiesInRange(ctx context.Context, arg ListUnavailabilitiesInRangeParams) ([]Unavailability, error) {
	rows, err := q.db.QueryContext(ctx, listUnavailabilitiesInRange, arg.TeamID, arg.StartDate, arg.EndDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Unavailability
	for rows.Next() {
		var u Unavailability
		if err := rows.Scan(&u.UnavailabilityID, &u.TeamID, &u.MemberID, &u.Day, &u.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, u)
	}
	return items, rows.Err()
}

const deleteUnavailability = `
DELETE FROM unavailabilities
WHERE team_id = $1 AND unavailability_id = $2
RETURNING unavailability_id
`

type DeleteUnavailabilityParams struct {
	TeamID           string
	UnavailabilityID string
}

func (q *Queries) DeleteUnavailability(ctx context.Context, arg DeleteUnavailabilityParams) (string, error) {
	row := q.db.QueryRowContext(ctx, deleteUnavailability, arg.TeamID, arg.UnavailabilityID)
	var id string
	err := row.Scan(&id)
	return id, err
}

// Plans

const createPlan = `
INSERT INTO plans (plan_id, team_id, created_by, start_date, end_date)
VALUES ($1, $2, $3, $4::date, $5::date)
RETURNING plan_id, team_id, created_by, start_date, end_date, created_at
`

type CreatePlanParams struct {
	PlanID    string
	TeamID    string
	CreatedBy string
	StartDate string
	EndDate   string
}

func (q *Queries) CreatePlan(ctx context.Context, arg CreatePlanParams) (Plan, error) {
	row := q.db.QueryRowContext(ctx, createPlan,
		arg.PlanID, arg.TeamID, arg.CreatedBy, arg.StartDate, arg.EndDate)
	var p Plan
	err := row.Scan(&p.PlanID, &p.TeamID, &p.CreatedBy, &p.StartDate, &p.EndDate, &p.CreatedAt)
	return p, err
}

const getPlanByID = `
SELECT plan_id, team_id, created_by, start_date, end_date, created_at
FROM plans
WHERE team_id = $1 AND plan_id = $2
`

type GetPlanByIDParams struct {
	TeamID string
	PlanID string
}

func (q *Queries) GetPlanByID(ctx context.Context, arg GetPlanByIDParams) (Plan, error) {
	row := q.db.QueryRowContext(ctx, getPlanByID, arg.TeamID, arg.PlanID)
	var p Plan
	err := row.Scan(&p.PlanID, &p.TeamID, &p.CreatedBy, &p.StartDate, &p.EndDate, &p.CreatedAt)
	return p, err
}

const createPlanAssignment = `
INSERT INTO plan_assignments (plan_id, team_id, day, member_id)
VALUES ($1, $2, $3::date, $4)
`

type CreatePlanAssignmentParams struct {
	PlanID   string
	TeamID   string
	Day      string
	MemberID sql.NullString
}

func (q *Queries) CreatePlanAssignment(ctx context.Context, arg CreatePlanAssignmentParams) error {
	_, err := q.db.ExecContext(ctx, createPlanAssignment, arg.PlanID, arg.TeamID, arg.Day, arg.MemberID)
	return err
}

const getSavedCountsByMember = `
SELECT member_id, count(*) AS saved_count
FROM plan_assignments
WHERE team_id = $1 AND member_id IS NOT NULL
GROUP BY member_id
`

func (q *Queries) GetSavedCountsByMember(ctx context.Context, teamID string) ([]MemberSavedCount, error) {
	rows, err := q.db.QueryContext(ctx, getSavedCountsByMember, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MemberSavedCount
	for rows.Next() {
		var c MemberSavedCount
		if err := rows.Scan(&c.MemberID, &c.SavedCount); err != nil {
			return nil, err
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// Stats

const listAssignmentStats = `
SELECT day, member_id
FROM plan_assignments
WHERE team_id = $1
ORDER BY day
`

func (q *Queries) ListAssignmentStats(ctx context.Context, teamID string) ([]AssignmentStat, error) {
	rows, err := q.db.QueryContext(ctx, listAssignmentStats, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssignmentStats(rows)
}

const listPlanAssignmentStats = `
SELECT day, member_id
FROM plan_assignments
WHERE team_id = $1 AND plan_id = $2
ORDER BY day
`

type ListPlanAssignmentStatsParams struct {
	TeamID string
	PlanID string
}

func (q *Queries) ListPlanAssignmentStats(ctx context.Context, arg ListPlanAssignmentStatsParams) ([]AssignmentStat, error) {
	rows, err := q.db.QueryContext(ctx, listPlanAssignmentStats, arg.TeamID, arg.PlanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAssignmentStats(rows)
}

func scanAssignmentStats(rows *sql.Rows) ([]AssignmentStat, error) {
	var items []AssignmentStat
	for rows.Next() {
		var s AssignmentStat
		if err := rows.Scan(&s.Day, &s.MemberID); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// Events

const insertEvent = `
INSERT INTO events (team_id, event_type, start_date, end_date, range_days, members_count, unassigned_count, inequality)
VALUES ($1, $2, $3::date, $4::date, $5, $6, $7, $8)
`

type InsertEventParams struct {
	TeamID          string
	EventType       string
	StartDate       string
	EndDate         string
	RangeDays       int
	MembersCount    sql.NullInt32
	UnassignedCount int
	Inequality      sql.NullInt32
}

func (q *Queries) InsertEvent(ctx context.Context, arg InsertEventParams) error {
	_, err := q.db.ExecContext(ctx, insertEvent,
		arg.TeamID, arg.EventType, arg.StartDate, arg.EndDate,
		arg.RangeDays, arg.MembersCount, arg.UnassignedCount, arg.Inequality)
	return err
}
