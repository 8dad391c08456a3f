package usecase

import (
	"context"
	"testing"

	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/repository"
	"edoc-portal/pkg/listquery"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTeamUsecase(env *testEnv) *teamUsecase {
	u := NewTeamUsecase(env.log, repository.NewTeamMemberRepository(env.store), env.activity).(*teamUsecase)
	u.now = clockAt(fixedNow)
	u.ids = newIDClock(clockAt(fixedNow))
	return u
}

func TestTeamUsecase_Stats(t *testing.T) {
	u := newTestTeamUsecase(newTestEnv())

	stats, err := u.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalMembers)
	assert.Equal(t, 6, stats.ActiveMembers)
	assert.Equal(t, 236, stats.TotalPatients)
	assert.True(t, stats.AverageRating.Equal(decimal.RequireFromString("4.8")), stats.AverageRating.String())
}

func TestTeamUsecase_CreateDefaults(t *testing.T) {
	ctx := context.Background()
	u := newTestTeamUsecase(newTestEnv())

	member, err := u.Create(ctx, &dto.CreateTeamMemberRequest{
		Name: "Ada Byron", Role: "Nurse", Email: "ada@edoc.com", Department: "Cardiology",
	})
	require.NoError(t, err)
	assert.Equal(t, "AB", member.Avatar)
	assert.Equal(t, 5.0, member.Rating)
	assert.Equal(t, entity.TeamStatusActive, member.Status)

	found, err := u.List(ctx, listquery.Query{Text: "byron"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func TestTeamUsecase_DepartmentPerformance(t *testing.T) {
	ctx := context.Background()
	u := newTestTeamUsecase(newTestEnv())

	patients := 10
	rating := 4.0
	_, err := u.Create(ctx, &dto.CreateTeamMemberRequest{
		Name: "Ada Byron", Role: "Nurse", Email: "ada@edoc.com", Department: "Cardiology",
		Patients: &patients, Rating: &rating,
	})
	require.NoError(t, err)

	depts, err := u.DepartmentPerformance(ctx)
	require.NoError(t, err)
	require.Len(t, depts, 6)
	assert.Equal(t, "Cardiology", depts[0].Department)
	assert.Equal(t, 2, depts[0].Members)
	assert.Equal(t, 55, depts[0].TotalPatients)
	assert.True(t, depts[0].AverageRating.Equal(decimal.RequireFromString("4.5")), depts[0].AverageRating.String())
	assert.Equal(t, "Pediatrics", depts[5].Department)
}

func TestTeamUsecase_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	u := newTestTeamUsecase(newTestEnv())

	name := "Dr. Lisa Wang-Chen"
	updated, err := u.Update(ctx, 5, &dto.UpdateTeamMemberRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "DLW", updated.Avatar)

	require.NoError(t, u.Delete(ctx, 5))
	assert.ErrorIs(t, u.Delete(ctx, 5), ErrTeamMemberNotFound)

	_, err = u.Get(ctx, 5)
	assert.ErrorIs(t, err, ErrTeamMemberNotFound)
}
