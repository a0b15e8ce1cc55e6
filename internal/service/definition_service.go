package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

// --- DTOs ---

// LookupInput is the shared shape for creating tenant-scoped reference rows.
// ProjectID defaults to the caller's tenant; super admins have no tenant of
// their own and must name one explicitly.
type LookupInput struct {
	EnName    string `json:"en_name" binding:"required"`
	ArName    string `json:"ar_name" binding:"required"`
	ProjectID uint   `json:"project_id"`
}

type CreateLookupsRequest struct {
	Items []LookupInput `json:"items" binding:"required,min=1,dive"`
}

// ProjectInput creates a tenant. IsPublic opts the project into the
// unauthenticated unit lookup endpoints.
type ProjectInput struct {
	EnName      string `json:"en_name" binding:"required"`
	ArName      string `json:"ar_name" binding:"required"`
	CompanyCode string `json:"company_code" binding:"required"`
	ProjectCode string `json:"project_code" binding:"required"`
	IsPublic    *int   `json:"is_public"`
}

type CreateProjectsRequest struct {
	Projects []ProjectInput `json:"projects" binding:"required,min=1,dive"`
}

type LocationInput struct {
	EnName           string `json:"en_name" binding:"required"`
	ArName           string `json:"ar_name" binding:"required"`
	ProjectID        uint   `json:"project_id"`
	LocationTypeID   *uint  `json:"location_type_id"`
	ParentLocationID *uint  `json:"parent_location_id"`
}

type CreateLocationsRequest struct {
	Locations []LocationInput `json:"locations" binding:"required,min=1,dive"`
}

type ServiceConfigInput struct {
	EnName    string          `json:"en_name" binding:"required"`
	ArName    string          `json:"ar_name" binding:"required"`
	ProjectID uint            `json:"project_id"`
	Amount    decimal.Decimal `json:"amount"`
}

type CreateServiceConfigsRequest struct {
	Configs []ServiceConfigInput `json:"configs" binding:"required,min=1,dive"`
}

type ServiceInput struct {
	EnName          string          `json:"en_name" binding:"required"`
	ArName          string          `json:"ar_name" binding:"required"`
	DepartmentID    uint            `json:"department_id" binding:"required"`
	ServiceConfigID uint            `json:"service_config_id" binding:"required"`
	Price           decimal.Decimal `json:"price"`
	StartDate       time.Time       `json:"start_date"`
}

type CreateServicesRequest struct {
	Services []ServiceInput `json:"services" binding:"required,min=1,dive"`
}

// DropdownItem is the minimal id/name pair every dropdown returns.
type DropdownItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// LocationNode is a location with its children nested beneath it.
type LocationNode struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Locations []LocationNode `json:"locations"`
}

// DropdownsResponse aggregates every reference list a form needs, fetched in
// one round trip.
type DropdownsResponse struct {
	Departments     []DropdownItem `json:"departments"`
	Positions       []DropdownItem `json:"positions"`
	Safes           []DropdownItem `json:"safes"`
	UserTypes       []DropdownItem `json:"user_types"`
	EmployeeTypes   []DropdownItem `json:"employee_types"`
	LocationTypes   []DropdownItem `json:"location_types"`
	Locations       []LocationNode `json:"locations"`
	RentalCompanies []DropdownItem `json:"rental_companies"`
	UnitTypes       []DropdownItem `json:"unit_types"`
	Countries       []DropdownItem `json:"countries"`
	IDTypes         []DropdownItem `json:"id_types"`
	Religions       []DropdownItem `json:"religions"`
	MaritalStatuses []DropdownItem `json:"marital_statuses"`
	CustomerTypes   []DropdownItem `json:"customer_types"`
	OwnershipTypes  []DropdownItem `json:"ownership_types"`
}

type ServiceConfigResponse struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	ProjectName string          `json:"project_name"`
	Amount      decimal.Decimal `json:"amount"`
}

type ServiceConfigListResponse struct {
	TotalCount int64                   `json:"totalCount"`
	TotalPages int                     `json:"totalPages"`
	Configs    []ServiceConfigResponse `json:"configs"`
}

type ServiceResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	DepartmentName string          `json:"department_name"`
	ConfigName     string          `json:"config_name"`
	Price          decimal.Decimal `json:"price"`
	StartDate      time.Time       `json:"start_date"`
}

type ServiceListResponse struct {
	TotalCount int64             `json:"totalCount"`
	TotalPages int               `json:"totalPages"`
	Services   []ServiceResponse `json:"services"`
}

// --- Service ---

// DefinitionService manages the reference tables: batch creation of lookup
// rows and the aggregated dropdown read.
type DefinitionService interface {
	CreateProjects(ctx context.Context, claims *middleware.Claims, req CreateProjectsRequest) error
	CreateDepartments(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreatePositions(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateSafes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateUserTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateEmployeeTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateLocationTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateLocations(ctx context.Context, claims *middleware.Claims, req CreateLocationsRequest) error
	CreateRentalCompanies(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateUnitTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateCountries(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateIDTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateReligions(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateMaritalStatuses(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateCustomerTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateOwnershipTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error
	CreateServiceConfigs(ctx context.Context, claims *middleware.Claims, req CreateServiceConfigsRequest) error
	CreateServices(ctx context.Context, claims *middleware.Claims, req CreateServicesRequest) error

	GetAllDropdowns(ctx context.Context, claims *middleware.Claims, lang language.Language) (*DropdownsResponse, error)
	GetServiceConfigs(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*ServiceConfigListResponse, error)
	GetServices(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*ServiceListResponse, error)
}

type definitionService struct {
	lookups repository.LookupRepository
}

// NewDefinitionService returns a new instance of DefinitionService
func NewDefinitionService(lookups repository.LookupRepository) DefinitionService {
	return &definitionService{lookups: lookups}
}

// resolveProject picks the tenant a new lookup row belongs to. Super admins
// carry no usable tenant in their claims, so they must name the project.
func resolveProject(claims *middleware.Claims, requested uint) (uint, error) {
	if requested != 0 {
		return requested, nil
	}
	if claims.IsSuperAdmin() {
		return 0, apperr.New(apperr.KindValidation, "project_id is required")
	}
	return claims.CompanyProjectID, nil
}

// scopedName is a lookup input with its tenant resolved.
type scopedName struct {
	model.Localized
	ProjectID uint
	CreatedBy string
}

func (s *definitionService) scopedRows(claims *middleware.Claims, items []LookupInput) ([]scopedName, error) {
	rows := make([]scopedName, 0, len(items))
	for _, in := range items {
		projectID, err := resolveProject(claims, in.ProjectID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, scopedName{
			Localized: model.Localized{EnName: in.EnName, ArName: in.ArName},
			ProjectID: projectID,
			CreatedBy: claims.UserName,
		})
	}
	return rows, nil
}

func classifyCreateErr(err error, entity string) error {
	mapped := apperr.FromDB(err, entity+" not found")
	switch apperr.KindOf(mapped) {
	case apperr.KindConflict:
		return apperr.Wrap(apperr.KindConflict, entity+" already exists", err)
	case apperr.KindInvalidReference:
		return apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference", err)
	}
	return mapped
}

func (s *definitionService) CreateProjects(ctx context.Context, claims *middleware.Claims, req CreateProjectsRequest) error {
	rows := make([]model.CompanyProject, 0, len(req.Projects))
	for _, in := range req.Projects {
		p := model.CompanyProject{
			Localized:   model.Localized{EnName: in.EnName, ArName: in.ArName},
			CompanyCode: in.CompanyCode,
			ProjectCode: in.ProjectCode,
		}
		if in.IsPublic != nil {
			p.IsPublic = *in.IsPublic
		}
		p.CreatedBy = claims.UserName
		rows = append(rows, p)
	}
	if err := s.lookups.CreateProjects(ctx, rows); err != nil {
		return classifyCreateErr(err, "project")
	}
	return nil
}

func (s *definitionService) CreateDepartments(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.Department, 0, len(scoped))
	for _, row := range scoped {
		d := model.Department{Localized: row.Localized, ProjectID: row.ProjectID, Status: model.StatusActive}
		d.CreatedBy = row.CreatedBy
		rows = append(rows, d)
	}
	if err := s.lookups.CreateDepartments(ctx, rows); err != nil {
		return classifyCreateErr(err, "department")
	}
	return nil
}

func (s *definitionService) CreatePositions(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.Position, 0, len(scoped))
	for _, row := range scoped {
		p := model.Position{Localized: row.Localized, ProjectID: row.ProjectID, Status: model.StatusActive}
		p.CreatedBy = row.CreatedBy
		rows = append(rows, p)
	}
	if err := s.lookups.CreatePositions(ctx, rows); err != nil {
		return classifyCreateErr(err, "position")
	}
	return nil
}

func (s *definitionService) CreateSafes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.Safe, 0, len(scoped))
	for _, row := range scoped {
		safe := model.Safe{EnName: row.EnName, ArName: row.ArName, ProjectID: row.ProjectID}
		safe.CreatedBy = row.CreatedBy
		rows = append(rows, safe)
	}
	if err := s.lookups.CreateSafes(ctx, rows); err != nil {
		return classifyCreateErr(err, "safe")
	}
	return nil
}

func (s *definitionService) CreateUserTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.UserType, 0, len(scoped))
	for _, row := range scoped {
		t := model.UserType{Localized: row.Localized, ProjectID: row.ProjectID}
		t.CreatedBy = row.CreatedBy
		rows = append(rows, t)
	}
	if err := s.lookups.CreateUserTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "user type")
	}
	return nil
}

func (s *definitionService) CreateEmployeeTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.EmployeeType, 0, len(scoped))
	for _, row := range scoped {
		t := model.EmployeeType{Localized: row.Localized, ProjectID: row.ProjectID}
		t.CreatedBy = row.CreatedBy
		rows = append(rows, t)
	}
	if err := s.lookups.CreateEmployeeTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "employee type")
	}
	return nil
}

func (s *definitionService) CreateLocationTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.LocationType, 0, len(scoped))
	for _, row := range scoped {
		t := model.LocationType{Localized: row.Localized, ProjectID: row.ProjectID}
		t.CreatedBy = row.CreatedBy
		rows = append(rows, t)
	}
	if err := s.lookups.CreateLocationTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "location type")
	}
	return nil
}

func (s *definitionService) CreateLocations(ctx context.Context, claims *middleware.Claims, req CreateLocationsRequest) error {
	rows := make([]model.Location, 0, len(req.Locations))
	for _, in := range req.Locations {
		projectID, err := resolveProject(claims, in.ProjectID)
		if err != nil {
			return err
		}
		loc := model.Location{
			Localized:        model.Localized{EnName: in.EnName, ArName: in.ArName},
			ProjectID:        projectID,
			LocationTypeID:   in.LocationTypeID,
			ParentLocationID: in.ParentLocationID,
		}
		loc.CreatedBy = claims.UserName
		rows = append(rows, loc)
	}
	if err := s.lookups.CreateLocations(ctx, rows); err != nil {
		return classifyCreateErr(err, "location")
	}
	return nil
}

func (s *definitionService) CreateRentalCompanies(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.RentalCompany, 0, len(scoped))
	for _, row := range scoped {
		c := model.RentalCompany{Localized: row.Localized, ProjectID: row.ProjectID}
		c.CreatedBy = row.CreatedBy
		rows = append(rows, c)
	}
	if err := s.lookups.CreateRentalCompanies(ctx, rows); err != nil {
		return classifyCreateErr(err, "rental company")
	}
	return nil
}

func (s *definitionService) CreateUnitTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	scoped, err := s.scopedRows(claims, req.Items)
	if err != nil {
		return err
	}
	rows := make([]model.UnitType, 0, len(scoped))
	for _, row := range scoped {
		t := model.UnitType{Localized: row.Localized, ProjectID: row.ProjectID}
		t.CreatedBy = row.CreatedBy
		rows = append(rows, t)
	}
	if err := s.lookups.CreateUnitTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "unit type")
	}
	return nil
}

func (s *definitionService) CreateCountries(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.Country, 0, len(req.Items))
	for _, in := range req.Items {
		c := model.Country{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		c.CreatedBy = claims.UserName
		rows = append(rows, c)
	}
	if err := s.lookups.CreateCountries(ctx, rows); err != nil {
		return classifyCreateErr(err, "country")
	}
	return nil
}

func (s *definitionService) CreateIDTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.IDType, 0, len(req.Items))
	for _, in := range req.Items {
		t := model.IDType{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		t.CreatedBy = claims.UserName
		rows = append(rows, t)
	}
	if err := s.lookups.CreateIDTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "id type")
	}
	return nil
}

func (s *definitionService) CreateReligions(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.Religion, 0, len(req.Items))
	for _, in := range req.Items {
		r := model.Religion{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		r.CreatedBy = claims.UserName
		rows = append(rows, r)
	}
	if err := s.lookups.CreateReligions(ctx, rows); err != nil {
		return classifyCreateErr(err, "religion")
	}
	return nil
}

func (s *definitionService) CreateMaritalStatuses(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.MaritalStatus, 0, len(req.Items))
	for _, in := range req.Items {
		m := model.MaritalStatus{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		m.CreatedBy = claims.UserName
		rows = append(rows, m)
	}
	if err := s.lookups.CreateMaritalStatuses(ctx, rows); err != nil {
		return classifyCreateErr(err, "marital status")
	}
	return nil
}

func (s *definitionService) CreateCustomerTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.CustomerType, 0, len(req.Items))
	for _, in := range req.Items {
		t := model.CustomerType{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		t.CreatedBy = claims.UserName
		rows = append(rows, t)
	}
	if err := s.lookups.CreateCustomerTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "customer type")
	}
	return nil
}

func (s *definitionService) CreateOwnershipTypes(ctx context.Context, claims *middleware.Claims, req CreateLookupsRequest) error {
	rows := make([]model.OwnershipType, 0, len(req.Items))
	for _, in := range req.Items {
		t := model.OwnershipType{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		t.CreatedBy = claims.UserName
		rows = append(rows, t)
	}
	if err := s.lookups.CreateOwnershipTypes(ctx, rows); err != nil {
		return classifyCreateErr(err, "ownership type")
	}
	return nil
}

func (s *definitionService) CreateServiceConfigs(ctx context.Context, claims *middleware.Claims, req CreateServiceConfigsRequest) error {
	rows := make([]model.ServiceConfig, 0, len(req.Configs))
	for _, in := range req.Configs {
		projectID, err := resolveProject(claims, in.ProjectID)
		if err != nil {
			return err
		}
		cfg := model.ServiceConfig{
			Localized: model.Localized{EnName: in.EnName, ArName: in.ArName},
			ProjectID: projectID,
			Amount:    in.Amount,
		}
		if claims.EmployeeID != uuid.Nil {
			id := claims.EmployeeID
			cfg.CreatedByID = &id
		}
		cfg.CreatedBy = claims.UserName
		rows = append(rows, cfg)
	}
	if err := s.lookups.CreateServiceConfigs(ctx, rows); err != nil {
		return classifyCreateErr(err, "service config")
	}
	return nil
}

func (s *definitionService) CreateServices(ctx context.Context, claims *middleware.Claims, req CreateServicesRequest) error {
	rows := make([]model.Service, 0, len(req.Services))
	for _, in := range req.Services {
		svc := model.Service{
			Localized:       model.Localized{EnName: in.EnName, ArName: in.ArName},
			DepartmentID:    in.DepartmentID,
			ServiceConfigID: in.ServiceConfigID,
			Price:           in.Price,
			StartDate:       in.StartDate,
		}
		if claims.EmployeeID != uuid.Nil {
			id := claims.EmployeeID
			svc.CreatedByID = &id
		}
		svc.CreatedBy = claims.UserName
		rows = append(rows, svc)
	}
	if err := s.lookups.CreateServices(ctx, rows); err != nil {
		return classifyCreateErr(err, "service")
	}
	return nil
}

func toDropdownItems[T interface{ Name(language.Language) string }](rows []T, lang language.Language, id func(T) uint) []DropdownItem {
	items := make([]DropdownItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, DropdownItem{ID: id(row), Name: row.Name(lang)})
	}
	return items
}

// BuildLocationTree nests locations under their parents; roots are locations
// with no parent or with a parent outside the visible set. Sibling order
// follows the input order.
func BuildLocationTree(locations []model.Location, lang language.Language) []LocationNode {
	visible := make(map[uint]bool, len(locations))
	for _, loc := range locations {
		visible[loc.ID] = true
	}

	children := make(map[uint][]model.Location)
	var roots []model.Location
	for _, loc := range locations {
		if loc.ParentLocationID != nil && visible[*loc.ParentLocationID] {
			children[*loc.ParentLocationID] = append(children[*loc.ParentLocationID], loc)
		} else {
			roots = append(roots, loc)
		}
	}

	var build func(loc model.Location) LocationNode
	build = func(loc model.Location) LocationNode {
		node := LocationNode{ID: loc.ID, Name: loc.Name(lang), Locations: []LocationNode{}}
		for _, child := range children[loc.ID] {
			node.Locations = append(node.Locations, build(child))
		}
		return node
	}

	nodes := make([]LocationNode, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, build(root))
	}
	return nodes
}

// GetAllDropdowns fetches every reference list concurrently and localizes
// the names once.
func (s *definitionService) GetAllDropdowns(ctx context.Context, claims *middleware.Claims, lang language.Language) (*DropdownsResponse, error) {
	var (
		departments     []model.Department
		positions       []model.Position
		safes           []model.Safe
		userTypes       []model.UserType
		employeeTypes   []model.EmployeeType
		locationTypes   []model.LocationType
		locations       []model.Location
		rentalCompanies []model.RentalCompany
		unitTypes       []model.UnitType
		countries       []model.Country
		idTypes         []model.IDType
		religions       []model.Religion
		maritalStatuses []model.MaritalStatus
		customerTypes   []model.CustomerType
		ownershipTypes  []model.OwnershipType
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { departments, err = s.lookups.ListDepartments(gctx, claims); return })
	g.Go(func() (err error) { positions, err = s.lookups.ListPositions(gctx, claims); return })
	g.Go(func() (err error) { safes, err = s.lookups.ListSafes(gctx, claims); return })
	g.Go(func() (err error) { userTypes, err = s.lookups.ListUserTypes(gctx, claims); return })
	g.Go(func() (err error) { employeeTypes, err = s.lookups.ListEmployeeTypes(gctx, claims); return })
	g.Go(func() (err error) { locationTypes, err = s.lookups.ListLocationTypes(gctx, claims); return })
	g.Go(func() (err error) { locations, err = s.lookups.ListLocations(gctx, claims); return })
	g.Go(func() (err error) { rentalCompanies, err = s.lookups.ListRentalCompanies(gctx, claims); return })
	g.Go(func() (err error) { unitTypes, err = s.lookups.ListUnitTypes(gctx, claims); return })
	g.Go(func() (err error) { countries, err = s.lookups.ListCountries(gctx); return })
	g.Go(func() (err error) { idTypes, err = s.lookups.ListIDTypes(gctx); return })
	g.Go(func() (err error) { religions, err = s.lookups.ListReligions(gctx); return })
	g.Go(func() (err error) { maritalStatuses, err = s.lookups.ListMaritalStatuses(gctx); return })
	g.Go(func() (err error) { customerTypes, err = s.lookups.ListCustomerTypes(gctx); return })
	g.Go(func() (err error) { ownershipTypes, err = s.lookups.ListOwnershipTypes(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, apperr.FromDB(err, "dropdowns not found")
	}

	return &DropdownsResponse{
		Departments:     toDropdownItems(departments, lang, func(d model.Department) uint { return d.ID }),
		Positions:       toDropdownItems(positions, lang, func(p model.Position) uint { return p.ID }),
		Safes:           toDropdownItems(safes, lang, func(sf model.Safe) uint { return sf.ID }),
		UserTypes:       toDropdownItems(userTypes, lang, func(t model.UserType) uint { return t.ID }),
		EmployeeTypes:   toDropdownItems(employeeTypes, lang, func(t model.EmployeeType) uint { return t.ID }),
		LocationTypes:   toDropdownItems(locationTypes, lang, func(t model.LocationType) uint { return t.ID }),
		Locations:       BuildLocationTree(locations, lang),
		RentalCompanies: toDropdownItems(rentalCompanies, lang, func(c model.RentalCompany) uint { return c.ID }),
		UnitTypes:       toDropdownItems(unitTypes, lang, func(t model.UnitType) uint { return t.ID }),
		Countries:       toDropdownItems(countries, lang, func(c model.Country) uint { return c.ID }),
		IDTypes:         toDropdownItems(idTypes, lang, func(t model.IDType) uint { return t.ID }),
		Religions:       toDropdownItems(religions, lang, func(r model.Religion) uint { return r.ID }),
		MaritalStatuses: toDropdownItems(maritalStatuses, lang, func(m model.MaritalStatus) uint { return m.ID }),
		CustomerTypes:   toDropdownItems(customerTypes, lang, func(t model.CustomerType) uint { return t.ID }),
		OwnershipTypes:  toDropdownItems(ownershipTypes, lang, func(t model.OwnershipType) uint { return t.ID }),
	}, nil
}

func (s *definitionService) GetServiceConfigs(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*ServiceConfigListResponse, error) {
	configs, total, err := s.lookups.ListServiceConfigs(ctx, claims, lang, filter, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "service configs not found")
	}

	responses := make([]ServiceConfigResponse, 0, len(configs))
	for _, cfg := range configs {
		responses = append(responses, ServiceConfigResponse{
			ID:          cfg.ID,
			Name:        cfg.Name(lang),
			ProjectName: cfg.CompanyProject.Name(lang),
			Amount:      cfg.Amount,
		})
	}

	return &ServiceConfigListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Configs:    responses,
	}, nil
}

func (s *definitionService) GetServices(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*ServiceListResponse, error) {
	services, total, err := s.lookups.ListServices(ctx, claims, lang, filter, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "services not found")
	}

	responses := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		responses = append(responses, ServiceResponse{
			ID:             svc.ID,
			Name:           svc.Name(lang),
			DepartmentName: svc.Department.Name(lang),
			ConfigName:     svc.ServiceConfig.Name(lang),
			Price:          svc.Price,
			StartDate:      svc.StartDate,
		})
	}

	return &ServiceListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Services:   responses,
	}, nil
}
