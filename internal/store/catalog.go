package store

import (
	"context"
	"sync"

	"kidcare-booking/internal/domain/booking"
	"kidcare-booking/internal/infra"
)

type FranchiseSource interface {
	GetFranchises(ctx context.Context) ([]booking.Franchise, error)
	CheckAvailability(ctx context.Context, franchiseID, date string) (*booking.AvailabilityResponse, error)
}

// ErrorReporter receives every failure the catalog swallows.
type ErrorReporter interface {
	AddError(err infra.APIError)
}

type CatalogSnapshot struct {
	Franchises   []booking.Franchise
	Availability *booking.AvailabilityResponse
	Loading      bool
	Error        *string
}

// fetchTicket tracks the latest issued request of one fetch kind. Only the
// completion holding the latest sequence may touch state.
type fetchTicket struct {
	issued  uint64
	pending bool
}

func (t *fetchTicket) issue() uint64 {
	t.issued++
	t.pending = true
	return t.issued
}

func (t *fetchTicket) settle(seq uint64) bool {
	if seq != t.issued {
		return false
	}
	t.pending = false
	return true
}

// Catalog caches the franchise list and the latest availability snapshot.
type Catalog struct {
	mu       sync.Mutex
	source   FranchiseSource
	reporter ErrorReporter

	franchises   []booking.Franchise
	availability *booking.AvailabilityResponse
	err          *string

	franchiseTicket    fetchTicket
	availabilityTicket fetchTicket
}

func NewCatalog(source FranchiseSource, reporter ErrorReporter) *Catalog {
	return &Catalog{
		source:     source,
		reporter:   reporter,
		franchises: []booking.Franchise{},
	}
}

// FetchFranchises replaces the franchise list wholesale. Failures are kept
// in the error field and never returned.
func (c *Catalog) FetchFranchises(ctx context.Context) {
	seq := c.begin(&c.franchiseTicket)

	list, err := c.source.GetFranchises(context.WithoutCancel(ctx))

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.franchiseTicket.settle(seq) {
		return
	}
	if err != nil {
		c.fail(err)
		return
	}
	if list == nil {
		list = []booking.Franchise{}
	}
	c.franchises = list
}

// FetchAvailability replaces the held snapshot; results never accumulate
// across franchises or dates.
func (c *Catalog) FetchAvailability(ctx context.Context, franchiseID, date string) {
	seq := c.begin(&c.availabilityTicket)

	resp, err := c.source.CheckAvailability(context.WithoutCancel(ctx), franchiseID, date)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.availabilityTicket.settle(seq) {
		return
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.availability = resp
}

func (c *Catalog) begin(t *fetchTicket) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = nil
	return t.issue()
}

// fail must be called with c.mu held.
func (c *Catalog) fail(err error) {
	apiErr := infra.AsAPIError(err)
	msg := apiErr.Message
	c.err = &msg
	if c.reporter != nil {
		c.reporter.AddError(*apiErr)
	}
}

func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.franchiseTicket.pending || c.availabilityTicket.pending
}

func (c *Catalog) Error() *string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneString(c.err)
}

func (c *Catalog) Franchises() []booking.Franchise {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneFranchises(c.franchises)
}

// FindFranchise looks up a franchise in the last fetched list.
func (c *Catalog) FindFranchise(id string) (booking.Franchise, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.franchises {
		if f.ID == id {
			return *cloneFranchise(&f), true
		}
	}
	return booking.Franchise{}, false
}

func (c *Catalog) Availability() *booking.AvailabilityResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneAvailability(c.availability)
}

func (c *Catalog) Snapshot() CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CatalogSnapshot{
		Franchises:   cloneFranchises(c.franchises),
		Availability: cloneAvailability(c.availability),
		Loading:      c.franchiseTicket.pending || c.availabilityTicket.pending,
		Error:        cloneString(c.err),
	}
}

func cloneFranchises(in []booking.Franchise) []booking.Franchise {
	out := make([]booking.Franchise, len(in))
	for i := range in {
		out[i] = *cloneFranchise(&in[i])
	}
	return out
}

func cloneAvailability(a *booking.AvailabilityResponse) *booking.AvailabilityResponse {
	if a == nil {
		return nil
	}
	out := *a
	out.AvailableSlots = append([]booking.AvailabilitySlot(nil), a.AvailableSlots...)
	return &out
}
