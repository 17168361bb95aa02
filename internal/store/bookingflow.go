package store

import (
	"sync"

	"kidcare-booking/internal/domain/booking"
)

// TotalSteps is the number of wizard steps. Step TotalSteps means complete.
const TotalSteps = 5

// FlowSnapshot is a copy of the wizard state safe to hand to a view.
type FlowSnapshot struct {
	CurrentStep       int
	SelectedFranchise *booking.Franchise
	SelectedDateTime  *booking.DateTimeRange
	CustomerInfo      *booking.CustomerInfo
	ChildInfo         *booking.ChildInfo
	BookingID         *string
	PaymentStatus     *string
}

func (s FlowSnapshot) IsComplete() bool {
	return s.CurrentStep >= TotalSteps
}

// BookingFlow is the linear five-step booking wizard. Mutators overwrite
// unconditionally; which mutator runs at which step is up to the caller.
type BookingFlow struct {
	mu    sync.Mutex
	state FlowSnapshot
}

func NewBookingFlow() *BookingFlow {
	return &BookingFlow{}
}

// Next advances one step and is a no-op once complete.
func (f *BookingFlow) Next() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.CurrentStep < TotalSteps {
		f.state.CurrentStep++
	}
	return f.state.CurrentStep
}

// Prev goes back one step and is a no-op at step 0.
func (f *BookingFlow) Prev() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state.CurrentStep > 0 {
		f.state.CurrentStep--
	}
	return f.state.CurrentStep
}

func (f *BookingFlow) CurrentStep() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.CurrentStep
}

func (f *BookingFlow) IsComplete() bool {
	return f.CurrentStep() >= TotalSteps
}

func (f *BookingFlow) SetFranchise(franchise booking.Franchise) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedFranchise = cloneFranchise(&franchise)
}

func (f *BookingFlow) SetDateTime(dt booking.DateTimeRange) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.SelectedDateTime = &dt
}

func (f *BookingFlow) SetCustomerInfo(info booking.CustomerInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.CustomerInfo = &info
}

func (f *BookingFlow) SetChildInfo(info booking.ChildInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.ChildInfo = cloneChild(&info)
}

func (f *BookingFlow) SetBookingID(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.BookingID = &id
}

func (f *BookingFlow) SetPaymentStatus(status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.PaymentStatus = &status
}

// Reset discards the draft and returns to step 0.
func (f *BookingFlow) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = FlowSnapshot{}
}

func (f *BookingFlow) Snapshot() FlowSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := FlowSnapshot{
		CurrentStep:       f.state.CurrentStep,
		SelectedFranchise: cloneFranchise(f.state.SelectedFranchise),
		ChildInfo:         cloneChild(f.state.ChildInfo),
	}
	if v := f.state.SelectedDateTime; v != nil {
		dt := *v
		out.SelectedDateTime = &dt
	}
	if v := f.state.CustomerInfo; v != nil {
		info := *v
		out.CustomerInfo = &info
	}
	if v := f.state.BookingID; v != nil {
		id := *v
		out.BookingID = &id
	}
	if v := f.state.PaymentStatus; v != nil {
		status := *v
		out.PaymentStatus = &status
	}
	return out
}

func cloneFranchise(f *booking.Franchise) *booking.Franchise {
	if f == nil {
		return nil
	}
	out := *f
	out.OperatingHours.OperatingDays = append([]int(nil), f.OperatingHours.OperatingDays...)
	return &out
}

func cloneChild(c *booking.ChildInfo) *booking.ChildInfo {
	if c == nil {
		return nil
	}
	out := *c
	out.SpecialNeeds = cloneString(c.SpecialNeeds)
	out.Allergies = cloneString(c.Allergies)
	out.SpecialInstructions = cloneString(c.SpecialInstructions)
	return &out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
