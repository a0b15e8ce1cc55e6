package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

// --- DTOs ---

type UnitSpecificationInput struct {
	UnitTypeID   uint            `json:"unit_type_id" binding:"required"`
	LocationID   uint            `json:"location_id" binding:"required"`
	Address      string          `json:"address"`
	TotalArea    decimal.Decimal `json:"total_area"`
	Floor        *int            `json:"floor"`
	RoomNo       *int            `json:"room_no"`
	BathRoomNo   *int            `json:"bath_room_no"`
	LivingRoomNo *int            `json:"living_room_no"`
	BalconyNo    *int            `json:"balcony_no"`
	IsFurnished  *int            `json:"is_furnished"`
}

type CreateUnitRequest struct {
	UnitNumber        string                 `json:"unit_number" binding:"required"`
	ProjectID         uint                   `json:"project_id"`
	Specification     UnitSpecificationInput `json:"specification" binding:"required"`
	Notes             string                 `json:"notes"`
	IsBroker          *int                   `json:"is_broker"`
	IsEligibleForRent *int                   `json:"is_eligible_for_rent"`
	DeliveryDate      *time.Time             `json:"delivery_date"`
	ContractingDate   *time.Time             `json:"contracting_date"`
	CustomerID        string                 `json:"customer_id" binding:"omitempty,uuid"`
}

type ListUnitsQuery struct {
	UnitNumber string
	UnitTypeID uint
	LocationID uint
	IsActive   *int
}

type UnitListResponse struct {
	TotalCount int64        `json:"totalCount"`
	TotalPages int          `json:"totalPages"`
	Units      []model.Unit `json:"units"`
}

type LockUnitRequest struct {
	Locked *int `json:"locked" binding:"required"`
}

// ProjectCodes is the public shape of a tenant's code pair.
type ProjectCodes struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CompanyCode string `json:"company_code"`
	ProjectCode string `json:"project_code"`
}

// --- Service ---

// UnitService manages property units. A unit and its specification are
// created together; locking is audited with who and when.
type UnitService interface {
	CreateUnit(ctx context.Context, claims *middleware.Claims, req CreateUnitRequest) (*model.Unit, error)
	ListUnits(ctx context.Context, claims *middleware.Claims, query ListUnitsQuery, pag pagination.Params) (*UnitListResponse, error)
	SetUnitLock(ctx context.Context, claims *middleware.Claims, id string, locked int) (*model.Unit, error)
	ListProjects(ctx context.Context, lang language.Language) ([]DropdownItem, error)
	GetProjectCodes(ctx context.Context, lang language.Language, projectID uint) ([]ProjectCodes, error)
	GetPublicUnit(ctx context.Context, projectID uint, unitNumber string) ([]model.Unit, error)
}

type unitService struct {
	units repository.UnitRepository
}

// NewUnitService returns a new instance of UnitService
func NewUnitService(units repository.UnitRepository) UnitService {
	return &unitService{units: units}
}

// CreateUnit inserts the specification and the unit in one transaction so a
// rejected unit never leaves an orphaned specification.
func (s *unitService) CreateUnit(ctx context.Context, claims *middleware.Claims, req CreateUnitRequest) (*model.Unit, error) {
	projectID := req.ProjectID
	if projectID == 0 {
		projectID = claims.CompanyProjectID
	}

	spec := model.UnitSpecification{
		UnitTypeID:   req.Specification.UnitTypeID,
		LocationID:   req.Specification.LocationID,
		Address:      req.Specification.Address,
		TotalArea:    req.Specification.TotalArea,
		Floor:        req.Specification.Floor,
		RoomNo:       req.Specification.RoomNo,
		BathRoomNo:   req.Specification.BathRoomNo,
		LivingRoomNo: req.Specification.LivingRoomNo,
		BalconyNo:    req.Specification.BalconyNo,
	}
	if req.Specification.IsFurnished != nil {
		spec.IsFurnished = *req.Specification.IsFurnished
	}
	spec.CreatedBy = claims.UserName

	unit := model.Unit{
		UnitNumber:      req.UnitNumber,
		ProjectID:       projectID,
		Notes:           req.Notes,
		IsActive:        model.StatusActive,
		DeliveryDate:    req.DeliveryDate,
		ContractingDate: req.ContractingDate,
	}
	if req.IsBroker != nil {
		unit.IsBroker = *req.IsBroker
	}
	if req.IsEligibleForRent != nil {
		unit.IsEligibleForRent = *req.IsEligibleForRent
	}
	if req.CustomerID != "" {
		customerID, err := uuid.Parse(req.CustomerID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid customer id", err)
		}
		unit.CustomerID = &customerID
	}
	unit.CreatedBy = claims.UserName

	if err := s.units.CreateWithSpecification(ctx, &unit, &spec); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference for unit_type_id, location_id or customer_id", err)
		}
		return nil, apperr.FromDB(err, "unit not found")
	}

	unit.Specification = spec
	return &unit, nil
}

func (s *unitService) ListUnits(ctx context.Context, claims *middleware.Claims, query ListUnitsQuery, pag pagination.Params) (*UnitListResponse, error) {
	units, total, err := s.units.List(ctx, claims, repository.UnitFilter{
		UnitNumber: query.UnitNumber,
		UnitTypeID: query.UnitTypeID,
		LocationID: query.LocationID,
		IsActive:   query.IsActive,
	}, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "units not found")
	}
	return &UnitListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Units:      units,
	}, nil
}

// SetUnitLock locks or unlocks a unit and stamps the acting user and time on
// the matching audit pair.
func (s *unitService) SetUnitLock(ctx context.Context, claims *middleware.Claims, id string, locked int) (*model.Unit, error) {
	unitID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid unit id", err)
	}

	unit, err := s.units.GetByID(ctx, unitID)
	if err != nil {
		return nil, apperr.FromDB(err, "unit not found")
	}

	now := time.Now()
	unit.IsLocked = locked
	if locked == model.Locked {
		unit.LockDate = &now
		unit.LockedBy = claims.UserName
	} else {
		unit.UnlockDate = &now
		unit.UnlockedBy = claims.UserName
	}
	unit.UpdatedBy = claims.UserName

	if err := s.units.Update(ctx, unit); err != nil {
		return nil, apperr.FromDB(err, "unit not found")
	}
	return unit, nil
}

func (s *unitService) ListProjects(ctx context.Context, lang language.Language) ([]DropdownItem, error) {
	projects, err := s.units.ListProjects(ctx)
	if err != nil {
		return nil, apperr.FromDB(err, "projects not found")
	}
	return toDropdownItems(projects, lang, func(p model.CompanyProject) uint { return p.ID }), nil
}

// checkProjectPublic guards the unauthenticated reads: the project must
// exist, must not be the all-projects sentinel, and must be flagged public.
// All three failures answer identically so the check leaks nothing.
func (s *unitService) checkProjectPublic(ctx context.Context, projectID uint) error {
	if projectID == model.AllProjectsID {
		return apperr.New(apperr.KindValidation, "Invalid project ID")
	}
	project, err := s.units.GetProject(ctx, projectID)
	if err != nil {
		return apperr.New(apperr.KindValidation, "Invalid project ID")
	}
	if project.IsPublic != model.Public {
		return apperr.New(apperr.KindValidation, "Invalid project ID")
	}
	return nil
}

func (s *unitService) GetProjectCodes(ctx context.Context, lang language.Language, projectID uint) ([]ProjectCodes, error) {
	if err := s.checkProjectPublic(ctx, projectID); err != nil {
		return nil, err
	}

	projects, err := s.units.ListProjectCodes(ctx, projectID)
	if err != nil {
		return nil, apperr.FromDB(err, "company codes not found")
	}
	if len(projects) == 0 {
		return nil, apperr.New(apperr.KindValidation, "No company projects found")
	}

	codes := make([]ProjectCodes, 0, len(projects))
	for _, p := range projects {
		codes = append(codes, ProjectCodes{
			ID:          p.ID,
			Name:        p.Name(lang),
			CompanyCode: p.CompanyCode,
			ProjectCode: p.ProjectCode,
		})
	}
	return codes, nil
}

func (s *unitService) GetPublicUnit(ctx context.Context, projectID uint, unitNumber string) ([]model.Unit, error) {
	if err := s.checkProjectPublic(ctx, projectID); err != nil {
		return nil, err
	}

	units, err := s.units.ListByNumber(ctx, projectID, unitNumber)
	if err != nil {
		return nil, apperr.FromDB(err, "unit not found")
	}
	return units, nil
}
