package service_test

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"servicelog-backend/internal/domain"
	"servicelog-backend/internal/repository"
)

// memStore is an in-memory repository.Transactor. Transactions are
// serialized and roll back to a snapshot taken when they began.
type memStore struct {
	mu        sync.Mutex
	vehicles  map[int32]domain.Vehicle
	records   map[int32]domain.ServiceRecord
	reminders map[int32]domain.Reminder
	nextID    int32
	failOn    map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		vehicles:  map[int32]domain.Vehicle{},
		records:   map[int32]domain.ServiceRecord{},
		reminders: map[int32]domain.Reminder{},
		failOn:    map[string]error{},
	}
}

func (s *memStore) id() int32 {
	s.nextID++
	return s.nextID
}

func (s *memStore) guard(inTx bool) func() {
	if inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *memStore) repos(inTx bool) repository.Repositories {
	return repository.Repositories{
		Vehicles:       &memVehicles{s: s, inTx: inTx},
		ServiceRecords: &memRecords{s: s, inTx: inTx},
		Reminders:      &memReminders{s: s, inTx: inTx},
	}
}

func (s *memStore) WithinTx(ctx context.Context, fn func(ctx context.Context, repos repository.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles, records, reminders, nextID := maps.Clone(s.vehicles), maps.Clone(s.records), maps.Clone(s.reminders), s.nextID
	if err := fn(ctx, s.repos(true)); err != nil {
		s.vehicles, s.records, s.reminders, s.nextID = vehicles, records, reminders, nextID
		return err
	}
	return nil
}

func (s *memStore) addVehicle(ownerID int32, mileage int) domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.Vehicle{ID: s.id(), OwnerID: ownerID, Make: "Toyota", Model: "Corolla", Year: 2019, LicensePlate: "AB-123", CurrentMileage: mileage}
	s.vehicles[v.ID] = v
	return v
}

func (s *memStore) addReminder(r domain.Reminder) domain.Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.reminders[r.ID] = r
	return r
}

func (s *memStore) addRecord(rec domain.ServiceRecord) domain.ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.id()
	s.records[rec.ID] = rec
	return rec
}

func (s *memStore) vehicle(id int32) domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vehicles[id]
}

func (s *memStore) allRecords() []domain.ServiceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ServiceRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec)
	}
	return out
}

func (s *memStore) remindersOf(vehicleID int32, kind domain.ReminderKind) (open, completed []domain.Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.reminders {
		if r.VehicleID != vehicleID || r.Kind != kind {
			continue
		}
		if r.IsCompleted {
			completed = append(completed, r)
		} else {
			open = append(open, r)
		}
	}
	return open, completed
}

func (s *memStore) reminderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.reminders)
}

type memVehicles struct {
	s    *memStore
	inTx bool
}

func (r *memVehicles) Create(ctx context.Context, v *domain.Vehicle) error {
	defer r.s.guard(r.inTx)()
	v.ID = r.s.id()
	v.CreatedOn = time.Now()
	r.s.vehicles[v.ID] = *v
	return nil
}

func (r *memVehicles) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Vehicle, error) {
	defer r.s.guard(r.inTx)()
	v, ok := r.s.vehicles[id]
	if !ok || v.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *memVehicles) GetForUpdate(ctx context.Context, id int32) (*domain.Vehicle, error) {
	if err := r.s.failOn["vehicles.GetForUpdate"]; err != nil {
		return nil, err
	}
	defer r.s.guard(r.inTx)()
	v, ok := r.s.vehicles[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *memVehicles) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Vehicle, error) {
	defer r.s.guard(r.inTx)()
	var out []domain.Vehicle
	for _, v := range r.s.vehicles {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	slices.SortFunc(out, func(a, b domain.Vehicle) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *memVehicles) CountByOwner(ctx context.Context, ownerID int32) (int32, error) {
	vs, _ := r.ListByOwner(ctx, ownerID)
	return int32(len(vs)), nil
}

func (r *memVehicles) Update(ctx context.Context, v *domain.Vehicle) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.vehicles[v.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.vehicles[v.ID] = *v
	return nil
}

func (r *memVehicles) UpdateMileage(ctx context.Context, id int32, mileage int) error {
	if err := r.s.failOn["vehicles.UpdateMileage"]; err != nil {
		return err
	}
	defer r.s.guard(r.inTx)()
	v, ok := r.s.vehicles[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.CurrentMileage = mileage
	r.s.vehicles[id] = v
	return nil
}

func (r *memVehicles) Delete(ctx context.Context, id, ownerID int32) error {
	defer r.s.guard(r.inTx)()
	v, ok := r.s.vehicles[id]
	if !ok || v.OwnerID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.s.vehicles, id)
	maps.DeleteFunc(r.s.records, func(_ int32, rec domain.ServiceRecord) bool { return rec.VehicleID == id })
	maps.DeleteFunc(r.s.reminders, func(_ int32, rem domain.Reminder) bool { return rem.VehicleID == id })
	return nil
}

type memRecords struct {
	s    *memStore
	inTx bool
}

func (r *memRecords) Create(ctx context.Context, rec *domain.ServiceRecord) error {
	if err := r.s.failOn["records.Create"]; err != nil {
		return err
	}
	defer r.s.guard(r.inTx)()
	rec.ID = r.s.id()
	r.s.records[rec.ID] = *rec
	return nil
}

func (r *memRecords) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.ServiceRecord, error) {
	defer r.s.guard(r.inTx)()
	rec, ok := r.s.records[id]
	if !ok || r.s.vehicles[rec.VehicleID].OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *memRecords) ListByVehicle(ctx context.Context, vehicleID int32) ([]domain.ServiceRecord, error) {
	defer r.s.guard(r.inTx)()
	var out []domain.ServiceRecord
	for _, rec := range r.s.records {
		if rec.VehicleID == vehicleID {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b domain.ServiceRecord) int { return b.ServiceDate.Compare(a.ServiceDate) })
	return out, nil
}

func (r *memRecords) ListByOwner(ctx context.Context, ownerID int32) ([]domain.ServiceRecord, error) {
	defer r.s.guard(r.inTx)()
	var out []domain.ServiceRecord
	for _, rec := range r.s.records {
		if r.s.vehicles[rec.VehicleID].OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	slices.SortFunc(out, func(a, b domain.ServiceRecord) int {
		if c := b.ServiceDate.Compare(a.ServiceDate); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	return out, nil
}

func (r *memRecords) Update(ctx context.Context, rec *domain.ServiceRecord) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.records[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.records[rec.ID] = *rec
	return nil
}

func (r *memRecords) Delete(ctx context.Context, id int32) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.records, id)
	return nil
}

func (r *memRecords) InvoiceKeyInUse(ctx context.Context, key string) (bool, error) {
	defer r.s.guard(r.inTx)()
	for _, rec := range r.s.records {
		if rec.InvoiceKey == key {
			return true, nil
		}
	}
	return false, nil
}

type memReminders struct {
	s    *memStore
	inTx bool
}

// Create enforces the one-open-reminder-per-kind index.
func (r *memReminders) Create(ctx context.Context, rem *domain.Reminder) error {
	if err := r.s.failOn["reminders.Create"]; err != nil {
		return err
	}
	defer r.s.guard(r.inTx)()
	if !rem.IsCompleted {
		for _, existing := range r.s.reminders {
			if existing.VehicleID == rem.VehicleID && existing.Kind == rem.Kind && !existing.IsCompleted {
				return domain.ErrReminderConflict
			}
		}
	}
	rem.ID = r.s.id()
	rem.CreatedOn = time.Now()
	r.s.reminders[rem.ID] = *rem
	return nil
}

func (r *memReminders) CompleteOpen(ctx context.Context, vehicleID int32, kind domain.ReminderKind) (int64, error) {
	if err := r.s.failOn["reminders.CompleteOpen"]; err != nil {
		return 0, err
	}
	defer r.s.guard(r.inTx)()
	var n int64
	for id, rem := range r.s.reminders {
		if rem.VehicleID == vehicleID && rem.Kind == kind && !rem.IsCompleted {
			rem.IsCompleted = true
			r.s.reminders[id] = rem
			n++
		}
	}
	return n, nil
}

func (r *memReminders) GetByOwner(ctx context.Context, id, ownerID int32) (*domain.Reminder, error) {
	defer r.s.guard(r.inTx)()
	rem, ok := r.s.reminders[id]
	if !ok || r.s.vehicles[rem.VehicleID].OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &rem, nil
}

func (r *memReminders) listOpen(match func(domain.Vehicle) bool) []domain.OpenReminder {
	var out []domain.OpenReminder
	for _, rem := range r.s.reminders {
		v := r.s.vehicles[rem.VehicleID]
		if rem.IsCompleted || !match(v) {
			continue
		}
		out = append(out, domain.OpenReminder{Reminder: rem, Vehicle: v.Summary()})
	}
	slices.SortFunc(out, func(a, b domain.OpenReminder) int { return int(a.ID - b.ID) })
	return out
}

func (r *memReminders) ListOpenByOwner(ctx context.Context, ownerID int32) ([]domain.OpenReminder, error) {
	defer r.s.guard(r.inTx)()
	return r.listOpen(func(v domain.Vehicle) bool { return v.OwnerID == ownerID }), nil
}

func (r *memReminders) ListOpenByVehicle(ctx context.Context, vehicleID int32) ([]domain.OpenReminder, error) {
	defer r.s.guard(r.inTx)()
	return r.listOpen(func(v domain.Vehicle) bool { return v.ID == vehicleID }), nil
}

func (r *memReminders) MarkCompleted(ctx context.Context, id int32) error {
	defer r.s.guard(r.inTx)()
	rem, ok := r.s.reminders[id]
	if !ok {
		return domain.ErrNotFound
	}
	rem.IsCompleted = true
	r.s.reminders[id] = rem
	return nil
}

func (r *memReminders) Delete(ctx context.Context, id int32) error {
	defer r.s.guard(r.inTx)()
	if _, ok := r.s.reminders[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.reminders, id)
	return nil
}
