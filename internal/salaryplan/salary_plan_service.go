package salaryplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	salaryplanerrors "go-salon/internal/salaryplan/errors"
	"go-salon/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	SalaryPlanOptionsKeyPrefix = "salary_plans:options:"
	optionsTTL                 = 1 * time.Hour
)

func GetSalaryPlanOptionsKey(companyID string) string {
	return SalaryPlanOptionsKeyPrefix + companyID
}

//go:generate mockgen -source=salary_plan_service.go -destination=mock/salary_plan_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateSalaryPlanRequest) (SalaryPlanResponse, error)
	GetAll(ctx context.Context, companyID string) ([]SalaryPlanResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]SalaryPlanOptionResponse, error)
	GetByID(ctx context.Context, companyID, id string) (SalaryPlanResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateSalaryPlanRequest) (SalaryPlanResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Preview(ctx context.Context, companyID, id string, req PreviewRequest) (PreviewResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("salaryplan.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salaryplan.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, companyID string, req CreateSalaryPlanRequest) (SalaryPlanResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	planType, err := ParsePlanType(req.Type)
	if err != nil {
		return SalaryPlanResponse{}, err
	}
	if _, err := BuildRules(planType, req.Config); err != nil {
		return SalaryPlanResponse{}, err
	}
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return SalaryPlanResponse{}, salaryplanerrors.ErrInvalidPlanConfig
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create salary plan begin tx failed", zap.Error(err))
		return SalaryPlanResponse{}, err
	}
	defer tx.Rollback()

	plan := &SalaryPlan{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		Name:      strings.TrimSpace(req.Name),
		Type:      planType,
		Config:    req.Config,
	}

	if err := s.repo.WithTx(tx).Create(ctx, plan); err != nil {
		log.Error("create salary plan persist failed", zap.Error(err))
		return SalaryPlanResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryPlanResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("salary plan created", zap.String("salary_plan_id", plan.ID.String()), zap.String("type", string(planType)))

	return mapToResponse(*plan), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]SalaryPlanResponse, error) {
	plans, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := make([]SalaryPlanResponse, len(plans))
	for i, p := range plans {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]SalaryPlanOptionResponse, error) {
	cacheKey := GetSalaryPlanOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []SalaryPlanOptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		plans, err := s.repo.FindAllByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]SalaryPlanOptionResponse, len(plans))
		for i, p := range plans {
			resp[i] = SalaryPlanOptionResponse{ID: p.ID.String(), Name: p.Name, Type: string(p.Type)}
		}

		if s.rdb != nil {
			if payload, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, payload, optionsTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]SalaryPlanOptionResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (SalaryPlanResponse, error) {
	plan, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryPlanResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*plan), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateSalaryPlanRequest) (SalaryPlanResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	planType, err := ParsePlanType(req.Type)
	if err != nil {
		return SalaryPlanResponse{}, err
	}
	if _, err := BuildRules(planType, req.Config); err != nil {
		return SalaryPlanResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryPlanResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	plan, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return SalaryPlanResponse{}, mapRepositoryError(err)
	}

	plan.Name = strings.TrimSpace(req.Name)
	plan.Type = planType
	plan.Config = req.Config

	if err := qtx.Update(ctx, plan); err != nil {
		log.Error("update salary plan persist failed", zap.Error(err))
		return SalaryPlanResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryPlanResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)
	log.Info("salary plan updated", zap.String("salary_plan_id", id))

	return mapToResponse(*plan), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	assigned, err := qtx.CountAssignedEmployees(ctx, companyID, id)
	if err != nil {
		return err
	}
	if assigned > 0 {
		return salaryplanerrors.ErrSalaryPlanInUse
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx, companyID)
	return nil
}

// Preview evaluates a stored plan for a hypothetical sales figure.
func (s *service) Preview(ctx context.Context, companyID, id string, req PreviewRequest) (PreviewResponse, error) {
	plan, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PreviewResponse{}, mapRepositoryError(err)
	}

	return PreviewResponse{
		PlanID:   plan.ID.String(),
		PlanName: plan.Name,
		Sales:    req.Sales,
		Result:   CalculateSalary(req.Sales, nil, nil, plan.Rules()),
	}, nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetSalaryPlanOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate salary plan options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(p SalaryPlan) SalaryPlanResponse {
	return SalaryPlanResponse{
		ID:        p.ID.String(),
		CompanyID: p.CompanyID.String(),
		Name:      p.Name,
		Type:      string(p.Type),
		Config:    p.Config,
	}
}
