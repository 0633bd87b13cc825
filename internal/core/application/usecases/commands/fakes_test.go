package commands_test

import (
	"context"
	"sync"
	"time"

	"netondemand/internal/core/application/usecases/commands"
	"netondemand/internal/core/domain/model/bandwidthchange"
	"netondemand/internal/core/domain/model/catalog"
	"netondemand/internal/core/domain/model/instance"
	"netondemand/internal/core/domain/model/kernel"
	"netondemand/internal/core/domain/model/order"
	"netondemand/internal/core/ports"
	"netondemand/internal/pkg/errs"
)

// fakeUoW is an in-memory unit of work backing the command handler tests.
// It satisfies every UoW facade in the commands package, like the real
// Postgres unit of work does.
type fakeUoW struct {
	catalog   *fakeCatalog
	orders    *fakeOrderRepo
	instances *fakeInstanceRepo
	changes   *fakeChangeRepo

	mu         sync.Mutex
	begun      int
	committed  int
	rolledBack int
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		catalog:   &fakeCatalog{services: map[kernel.UUID]*catalog.Service{}},
		orders:    &fakeOrderRepo{orders: map[kernel.UUID]*order.Order{}},
		instances: &fakeInstanceRepo{instances: map[kernel.UUID]*instance.ServiceInstance{}},
		changes:   &fakeChangeRepo{changes: map[kernel.UUID]*bandwidthchange.BandwidthChange{}},
	}
}

func (f *fakeUoW) Begin(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.begun++
	return nil
}

func (f *fakeUoW) Commit(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.committed++
	return nil
}

func (f *fakeUoW) Rollback(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rolledBack++
	return nil
}

func (f *fakeUoW) ServiceCatalog() ports.ServiceCatalog { return f.catalog }

func (f *fakeUoW) OrderRepository() ports.OrderRepository { return f.orders }

func (f *fakeUoW) ServiceInstanceRepository() ports.ServiceInstanceRepository { return f.instances }

func (f *fakeUoW) BandwidthChangeRepository() ports.BandwidthChangeRepository { return f.changes }

type orderUoWFactory struct{ uow *fakeUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type instanceUoWFactory struct{ uow *fakeUoW }

func (f instanceUoWFactory) Create() commands.InstanceUoW { return f.uow }

type changeUoWFactory struct{ uow *fakeUoW }

func (f changeUoWFactory) Create() commands.ChangeUoW { return f.uow }

type fulfilmentUoWFactory struct{ uow *fakeUoW }

func (f fulfilmentUoWFactory) Create() commands.FulfilmentUoW { return f.uow }

type fakeCatalog struct {
	mu       sync.Mutex
	services map[kernel.UUID]*catalog.Service
}

func (f *fakeCatalog) put(svc *catalog.Service) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.services[svc.ID()] = svc
}

func (f *fakeCatalog) GetService(_ context.Context, id kernel.UUID) (*catalog.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	svc, ok := f.services[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("service", id)
	}
	return svc, nil
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[kernel.UUID]*order.Order
	seq    int64
}

func (f *fakeOrderRepo) Add(_ context.Context, o *order.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[o.ID()] = o
	return nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *order.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders[o.ID()] = o
	return nil
}

func (f *fakeOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return o, nil
}

func (f *fakeOrderRepo) GetByNumber(_ context.Context, orderNumber string) (*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, o := range f.orders {
		if o.OrderNumber() == orderNumber {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("order", orderNumber)
}

func (f *fakeOrderRepo) GetAllInStatus(_ context.Context, status order.Status) ([]*order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*order.Order
	for _, o := range f.orders {
		if o.Status() == status {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) NextOrderSequence(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	return f.seq, nil
}

type fakeInstanceRepo struct {
	mu        sync.Mutex
	instances map[kernel.UUID]*instance.ServiceInstance
}

func (f *fakeInstanceRepo) Add(_ context.Context, inst *instance.ServiceInstance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instances[inst.ID()] = inst
	return nil
}

func (f *fakeInstanceRepo) Update(_ context.Context, inst *instance.ServiceInstance) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.instances[inst.ID()] = inst
	return nil
}

func (f *fakeInstanceRepo) Get(_ context.Context, id kernel.UUID) (*instance.ServiceInstance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	inst, ok := f.instances[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("service instance", id)
	}
	return inst, nil
}

type fakeChangeRepo struct {
	mu      sync.Mutex
	changes map[kernel.UUID]*bandwidthchange.BandwidthChange
}

func (f *fakeChangeRepo) Add(_ context.Context, c *bandwidthchange.BandwidthChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes[c.ID()] = c
	return nil
}

func (f *fakeChangeRepo) Update(_ context.Context, c *bandwidthchange.BandwidthChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes[c.ID()] = c
	return nil
}

func (f *fakeChangeRepo) Get(_ context.Context, id kernel.UUID) (*bandwidthchange.BandwidthChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.changes[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("bandwidth change", id)
	}
	return c, nil
}

func (f *fakeChangeRepo) GetAllScheduledBefore(
	_ context.Context, at time.Time,
) ([]*bandwidthchange.BandwidthChange, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []*bandwidthchange.BandwidthChange
	for _, c := range f.changes {
		if c.Status() == bandwidthchange.Scheduled &&
			c.ScheduledAt() != nil && !c.ScheduledAt().After(at) {
			result = append(result, c)
		}
	}
	return result, nil
}
