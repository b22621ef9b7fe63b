package impl

import (
	"context"

	"dealerdesk/internal/domain/entity"
	"dealerdesk/internal/domain/service"
	"dealerdesk/internal/usecase"
)

const (
	staffPath       = "/dealers/staff/"
	attendancesPath = "/hr/attendances/"
	contractsPath   = "/hr/contracts/"
)

type hrStore struct {
	state storeState
	api   service.MarketplaceAPI

	staff       collection[entity.Employee]
	attendances collection[entity.Attendance]
	contracts   collection[entity.Contract]
}

// NewHRStore creates the resource store for staff, attendances and contracts.
func NewHRStore(api service.MarketplaceAPI) usecase.HRUsecase {
	return &hrStore{api: api}
}

func employeeID(e *entity.Employee) int64 { return e.ID }

func attendanceID(a *entity.Attendance) int64 { return a.ID }

func contractID(c *entity.Contract) int64 { return c.ID }

func (s *hrStore) FetchStaff(ctx context.Context) ([]entity.Employee, error) {
	return fetchAll(ctx, s.api, &s.state, &s.staff, staffPath, nil)
}

func (s *hrStore) CreateStaff(ctx context.Context, input *usecase.CreateStaffInput) (*entity.Employee, error) {
	return createOne(ctx, s.api, &s.state, &s.staff, staffPath, input)
}

func (s *hrStore) UpdateStaff(ctx context.Context, id int64, input *usecase.UpdateStaffInput) (*entity.Employee, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.staff, detailPath(staffPath, id), id, input, employeeID)
}

func (s *hrStore) DeleteStaff(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.staff, detailPath(staffPath, id), id, employeeID)
}

func (s *hrStore) FetchAttendances(ctx context.Context) ([]entity.Attendance, error) {
	return fetchAll(ctx, s.api, &s.state, &s.attendances, attendancesPath, nil)
}

func (s *hrStore) CreateAttendance(ctx context.Context, input *usecase.CreateAttendanceInput) (*entity.Attendance, error) {
	return createOne(ctx, s.api, &s.state, &s.attendances, attendancesPath, input)
}

func (s *hrStore) UpdateAttendance(ctx context.Context, id int64, input *usecase.UpdateAttendanceInput) (*entity.Attendance, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.attendances, detailPath(attendancesPath, id), id, input, attendanceID)
}

func (s *hrStore) DeleteAttendance(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.attendances, detailPath(attendancesPath, id), id, attendanceID)
}

func (s *hrStore) FetchContracts(ctx context.Context) ([]entity.Contract, error) {
	return fetchAll(ctx, s.api, &s.state, &s.contracts, contractsPath, nil)
}

func (s *hrStore) CreateContract(ctx context.Context, input *usecase.CreateContractInput) (*entity.Contract, error) {
	return createOne(ctx, s.api, &s.state, &s.contracts, contractsPath, input)
}

func (s *hrStore) UpdateContract(ctx context.Context, id int64, input *usecase.UpdateContractInput) (*entity.Contract, error) {
	return updateOne(ctx, s.api.Patch, &s.state, &s.contracts, detailPath(contractsPath, id), id, input, contractID)
}

func (s *hrStore) DeleteContract(ctx context.Context, id int64) error {
	return deleteOne(ctx, s.api, &s.state, &s.contracts, detailPath(contractsPath, id), id, contractID)
}

func (s *hrStore) Staff() []entity.Employee {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.staff.items)
}

func (s *hrStore) Attendances() []entity.Attendance {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.attendances.items)
}

func (s *hrStore) Contracts() []entity.Contract {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()

	return snapshot(s.contracts.items)
}

func (s *hrStore) Loading() bool {
	return s.state.Loading()
}

func (s *hrStore) LastError() string {
	return s.state.LastError()
}
