package booking

import (
	"context"
	"time"

	"rms/internal/domain/interval"
)

type StoreAPI interface {
	ListTypes(ctx context.Context) ([]LeaveType, error)
	TypeExists(ctx context.Context, leaveTypeID string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	InsertRequest(ctx context.Context, req Request) (string, error)
	GetRequest(ctx context.Context, requestID string) (Request, error)
	ListRequests(ctx context.Context, employeeID string, limit, offset int) ([]Request, int, error)
	ListRequestsForEmployee(ctx context.Context, employeeID string) ([]Request, error)
	UpdateRequestRange(ctx context.Context, requestID string, start, end time.Time, workingDays int) error
	UpdateRequestStatus(ctx context.Context, requestID string, status interval.Status) error
	ListActiveRequests(ctx context.Context) ([]Request, error)
}
