package booking

import (
	"context"
	"time"

	bookingRepo "salonix/database/repository/booking"
	salonRepo "salonix/database/repository/salon"
	voucherRepo "salonix/database/repository/voucher"
	workerRepo "salonix/database/repository/worker"
	"salonix/models"
	"salonix/utils"
)

type fakeWorkerRepo struct {
	workers map[string]*models.Worker
}

func newFakeWorkerRepo(workers ...*models.Worker) *fakeWorkerRepo {
	r := &fakeWorkerRepo{workers: make(map[string]*models.Worker)}
	for _, w := range workers {
		r.workers[w.ID] = w
	}
	return r
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return nil, workerRepo.ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (r *fakeWorkerRepo) GetAll(ctx context.Context) ([]models.Worker, error) {
	var out []models.Worker
	for _, w := range r.workers {
		out = append(out, *w)
	}
	return out, nil
}

func (r *fakeWorkerRepo) AppendBooking(ctx context.Context, workerID string, entry models.WorkerBooking) error {
	w, ok := r.workers[workerID]
	if !ok {
		return workerRepo.ErrNotFound
	}
	w.Bookings = append(w.Bookings, entry)
	return nil
}

func (r *fakeWorkerRepo) RemoveBooking(ctx context.Context, workerID string, day time.Time, timeSlot string) error {
	w, ok := r.workers[workerID]
	if !ok {
		return workerRepo.ErrNotFound
	}
	kept := w.Bookings[:0]
	for _, b := range w.Bookings {
		if utils.SameDay(b.Date, day) && b.TimeSlot == timeSlot {
			continue
		}
		kept = append(kept, b)
	}
	w.Bookings = kept
	return nil
}

func (r *fakeWorkerRepo) ReplaceBookings(ctx context.Context, workerID string, entries []models.WorkerBooking) error {
	w, ok := r.workers[workerID]
	if !ok {
		return workerRepo.ErrNotFound
	}
	w.Bookings = entries
	return nil
}

func (r *fakeWorkerRepo) ReplaceServices(ctx context.Context, workerID string, services []models.ServiceEntry) error {
	w, ok := r.workers[workerID]
	if !ok {
		return workerRepo.ErrNotFound
	}
	w.Services = services
	return nil
}

type fakeSalonRepo struct {
	salons map[string]*models.Salon
}

func newFakeSalonRepo(salons ...*models.Salon) *fakeSalonRepo {
	r := &fakeSalonRepo{salons: make(map[string]*models.Salon)}
	for _, s := range salons {
		r.salons[s.ID] = s
	}
	return r
}

func (r *fakeSalonRepo) GetByID(ctx context.Context, id string) (*models.Salon, error) {
	s, ok := r.salons[id]
	if !ok {
		return nil, salonRepo.ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSalonRepo) GetAll(ctx context.Context) ([]models.Salon, error) {
	var out []models.Salon
	for _, s := range r.salons {
		out = append(out, *s)
	}
	return out, nil
}

func (r *fakeSalonRepo) ReplaceServices(ctx context.Context, salonID string, services []models.ServiceEntry) error {
	s, ok := r.salons[salonID]
	if !ok {
		return salonRepo.ErrNotFound
	}
	s.Services = services
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	for _, b := range r.bookings {
		if b.Active && b.WorkerID == booking.WorkerID && b.TimeSlot == booking.TimeSlot && utils.SameDay(b.Date, booking.Date) {
			return bookingRepo.ErrSlotTaken
		}
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) FindActiveSlot(ctx context.Context, workerID string, day time.Time, timeSlot string) (*models.Booking, error) {
	for _, b := range r.bookings {
		if b.Active && b.WorkerID == workerID && b.TimeSlot == timeSlot && utils.SameDay(b.Date, day) {
			copied := *b
			return &copied, nil
		}
	}
	return nil, bookingRepo.ErrNotFound
}

func (r *fakeBookingRepo) FindActiveByWorkerAndDay(ctx context.Context, workerID string, day time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Active && b.WorkerID == workerID && utils.SameDay(b.Date, day) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindActiveByWorker(ctx context.Context, workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Active && b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListBySalon(ctx context.Context, salonID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.SalonID == salonID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByWorker(ctx context.Context, workerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.WorkerID == workerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) SetVoucherPayment(ctx context.Context, bookingID, voucherID string, paidAmount float64) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.VoucherUsed = voucherID
	b.PaidAmount = paidAmount
	b.PaymentMethod = models.PaymentMethodVoucher
	return nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, bookingID string) error {
	b, ok := r.bookings[bookingID]
	if !ok {
		return bookingRepo.ErrNotFound
	}
	b.Status = models.BookingStatusCancelled
	b.Active = false
	return nil
}

type fakeVoucherRepo struct {
	vouchers map[string]*models.Voucher
}

func newFakeVoucherRepo(vouchers ...*models.Voucher) *fakeVoucherRepo {
	r := &fakeVoucherRepo{vouchers: make(map[string]*models.Voucher)}
	for _, v := range vouchers {
		r.vouchers[v.ID] = v
	}
	return r
}

func (r *fakeVoucherRepo) matchRef(v *models.Voucher, ref voucherRepo.VoucherRef) bool {
	if ref.ID != "" {
		return v.ID == ref.ID
	}
	return ref.Code != "" && v.Code == ref.Code
}

func (r *fakeVoucherRepo) Create(ctx context.Context, voucher *models.Voucher) error {
	for _, v := range r.vouchers {
		if v.Code == voucher.Code || v.PaymentIntentID == voucher.PaymentIntentID {
			return voucherRepo.ErrDuplicate
		}
	}
	copied := *voucher
	r.vouchers[voucher.ID] = &copied
	return nil
}

func (r *fakeVoucherRepo) GetByID(ctx context.Context, id string) (*models.Voucher, error) {
	v, ok := r.vouchers[id]
	if !ok {
		return nil, voucherRepo.ErrNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVoucherRepo) FindUnused(ctx context.Context, ref voucherRepo.VoucherRef) (*models.Voucher, error) {
	for _, v := range r.vouchers {
		if !v.Used && r.matchRef(v, ref) {
			copied := *v
			return &copied, nil
		}
	}
	return nil, voucherRepo.ErrNotFound
}

func (r *fakeVoucherRepo) Consume(ctx context.Context, ref voucherRepo.VoucherRef, bookingID string, at time.Time) (*models.Voucher, error) {
	for _, v := range r.vouchers {
		if !v.Used && r.matchRef(v, ref) {
			v.Used = true
			v.UsedAt = at
			v.UsedForBooking = bookingID
			copied := *v
			return &copied, nil
		}
	}
	return nil, voucherRepo.ErrNotFound
}

func (r *fakeVoucherRepo) ListByUser(ctx context.Context, userID string) ([]models.Voucher, error) {
	var out []models.Voucher
	for _, v := range r.vouchers {
		if v.UserID == userID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *fakeVoucherRepo) ExistsForPaymentIntent(ctx context.Context, paymentIntentID string) (bool, error) {
	for _, v := range r.vouchers {
		if v.PaymentIntentID == paymentIntentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeVoucherRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	for _, v := range r.vouchers {
		if v.Code == code {
			return true, nil
		}
	}
	return false, nil
}

type fakeNotifier struct {
	created   []models.Booking
	cancelled []models.Booking
}

func (n *fakeNotifier) BookingCreated(b models.Booking)   { n.created = append(n.created, b) }
func (n *fakeNotifier) BookingCancelled(b models.Booking) { n.cancelled = append(n.cancelled, b) }
