package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"edoc-portal/internal/converter"
	"edoc-portal/internal/delivery/dto"
	"edoc-portal/internal/domain/entity"
	"edoc-portal/internal/domain/repository"
	"edoc-portal/internal/service"
	"edoc-portal/pkg/listquery"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrTeamMemberNotFound = errors.New("team member not found")

type TeamUsecase interface {
	List(ctx context.Context, q listquery.Query) ([]dto.TeamMemberResponse, error)
	Get(ctx context.Context, id int64) (*dto.TeamMemberResponse, error)
	Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Delete(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*dto.TeamStatsResponse, error)
	DepartmentPerformance(ctx context.Context) ([]dto.DepartmentPerformance, error)
	Export(ctx context.Context) (*dto.TeamExport, error)
	Import(ctx context.Context, req *dto.TeamImportRequest) (int, error)
}

type teamUsecase struct {
	log      *logrus.Logger
	teamRepo repository.TeamMemberRepository
	activity service.ActivityService
	ids      *idClock
	now      func() time.Time
}

func NewTeamUsecase(log *logrus.Logger, teamRepo repository.TeamMemberRepository, activity service.ActivityService) TeamUsecase {
	return &teamUsecase{
		log:      log,
		teamRepo: teamRepo,
		activity: activity,
		ids:      newIDClock(time.Now),
		now:      time.Now,
	}
}

func (u *teamUsecase) List(ctx context.Context, q listquery.Query) ([]dto.TeamMemberResponse, error) {
	members, err := u.teamRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load team members: %+v", err)
		return nil, err
	}

	filtered := listquery.Apply(members, q,
		func(m entity.TeamMember) string { return m.Status },
		entity.TeamMember.SearchFields)
	return converter.TeamMembersToResponse(filtered), nil
}

func (u *teamUsecase) Get(ctx context.Context, id int64) (*dto.TeamMemberResponse, error) {
	member, err := u.teamRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find team member: %+v", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}
	return converter.TeamMemberToResponse(member), nil
}

func (u *teamUsecase) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member := converter.CreateTeamMemberRequestToEntity(req)
	member.ID = u.ids.Next()

	if err := u.teamRepo.Create(ctx, member); err != nil {
		u.log.Warnf("Failed to create team member: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityTeamCreate, "team", strconv.FormatInt(member.ID, 10),
		member.Name+" joined "+member.Department)
	return converter.TeamMemberToResponse(member), nil
}

func (u *teamUsecase) Update(ctx context.Context, id int64, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := u.teamRepo.Update(ctx, id, func(m *entity.TeamMember) error {
		converter.ApplyTeamMemberUpdate(m, req)
		return nil
	})
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil, ErrTeamMemberNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to update team member: %+v", err)
		return nil, err
	}

	u.activity.Record(ctx, entity.ActivityTeamUpdate, "team", strconv.FormatInt(id, 10),
		"Team member updated: "+member.Name)
	return converter.TeamMemberToResponse(member), nil
}

func (u *teamUsecase) Delete(ctx context.Context, id int64) error {
	member, err := u.teamRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrTeamMemberNotFound
	}
	if err != nil {
		u.log.Warnf("Failed to delete team member: %+v", err)
		return err
	}

	u.activity.Record(ctx, entity.ActivityTeamDelete, "team", strconv.FormatInt(id, 10),
		"Team member removed: "+member.Name)
	return nil
}

func (u *teamUsecase) Stats(ctx context.Context) (*dto.TeamStatsResponse, error) {
	members, err := u.teamRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load team members: %+v", err)
		return nil, err
	}

	stats := &dto.TeamStatsResponse{TotalMembers: len(members)}
	ratings := make([]float64, 0, len(members))
	for _, m := range members {
		if m.Status == entity.TeamStatusActive {
			stats.ActiveMembers++
		}
		stats.TotalPatients += m.Patients
		ratings = append(ratings, m.Rating)
	}
	stats.AverageRating = averageRating(ratings)
	return stats, nil
}

// DepartmentPerformance aggregates members per department, sorted by name.
func (u *teamUsecase) DepartmentPerformance(ctx context.Context) ([]dto.DepartmentPerformance, error) {
	members, err := u.teamRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load team members: %+v", err)
		return nil, err
	}

	type bucket struct {
		members  int
		patients int
		ratings  []float64
	}
	buckets := make(map[string]*bucket)
	for _, m := range members {
		b, ok := buckets[m.Department]
		if !ok {
			b = &bucket{}
			buckets[m.Department] = b
		}
		b.members++
		b.patients += m.Patients
		b.ratings = append(b.ratings, m.Rating)
	}

	out := make([]dto.DepartmentPerformance, 0, len(buckets))
	for dept, b := range buckets {
		out = append(out, dto.DepartmentPerformance{
			Department:    dept,
			Members:       b.members,
			TotalPatients: b.patients,
			AverageRating: averageRating(b.ratings),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Department < out[j].Department })
	return out, nil
}

func (u *teamUsecase) Export(ctx context.Context) (*dto.TeamExport, error) {
	members, err := u.teamRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load team members: %+v", err)
		return nil, err
	}
	return &dto.TeamExport{
		ExportDate:  u.now().UTC(),
		TeamMembers: converter.TeamMembersToResponse(members),
	}, nil
}

func (u *teamUsecase) Import(ctx context.Context, req *dto.TeamImportRequest) (int, error) {
	if req == nil || req.TeamMembers == nil {
		return 0, ErrInvalidImport
	}

	members := converter.TeamMemberResponsesToEntities(*req.TeamMembers)
	if err := u.teamRepo.ReplaceAll(ctx, members); err != nil {
		u.log.Warnf("Failed to import team members: %+v", err)
		return 0, err
	}

	u.activity.Record(ctx, entity.ActivityTeamImport, "team", "",
		"Imported "+strconv.Itoa(len(members))+" team members")
	return len(members), nil
}

// averageRating is the mean rounded to one decimal, zero for no ratings.
func averageRating(ratings []float64) decimal.Decimal {
	if len(ratings) == 0 {
		return decimal.Zero.Round(1)
	}
	sum := decimal.Zero
	for _, r := range ratings {
		sum = sum.Add(decimal.NewFromFloat(r))
	}
	return sum.Div(decimal.NewFromInt(int64(len(ratings)))).Round(1)
}
