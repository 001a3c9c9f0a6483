package transport

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
)

// MoleculeQueueLength is the number of transport records held by one page.
const MoleculeQueueLength = 128

const noPage = -1

// Record is one molecule in flight towards another subvolume.
type Record struct {
	Molecule      *domain.Molecule
	Target        *domain.Subvolume
	Disp          domain.Vector3 // displacement left to travel
	TimeRemaining float64
}

// DelayedRelease is a reaction-triggered release waiting for the end of the
// step. Event is a private snapshot; Site and Triggers are not owned.
type DelayedRelease struct {
	ID       uuid.UUID
	Event    domain.ReleaseEvent
	Site     *domain.ReleaseSite
	Triggers []domain.Trigger
}

type page struct {
	records [MoleculeQueueLength]Record
	fill    int
	next    int // older page
}

// Queue holds outbound molecule transfers and delayed releases for one
// partition. Pages live in an arena and are recycled through a free list.
// A Queue is not safe for concurrent use.
type Queue struct {
	pages     []page
	free      []int
	head      int
	live      int
	pageLimit int

	releases []*DelayedRelease
	events   ports.Allocator[DelayedRelease]
}

// QueueOption configures a Queue.
type QueueOption func(*Queue)

// WithPageLimit bounds the number of pages the queue may hold at once.
// Zero means unbounded.
func WithPageLimit(n int) QueueOption {
	return func(q *Queue) {
		q.pageLimit = n
	}
}

// WithEventAllocator draws delayed release events from a pool instead of
// the heap.
func WithEventAllocator(a ports.Allocator[DelayedRelease]) QueueOption {
	return func(q *Queue) {
		q.events = a
	}
}

// NewQueue creates an empty queue.
func NewQueue(opts ...QueueOption) *Queue {
	q := &Queue{head: noPage}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// EnqueueTransport appends a transfer of mol to target. A new page is
// allocated when the head page is absent or full.
func (q *Queue) EnqueueTransport(mol *domain.Molecule, target *domain.Subvolume, disp domain.Vector3, tRemain float64) error {
	if q.head == noPage || q.pages[q.head].fill == MoleculeQueueLength {
		idx, err := q.allocPage()
		if err != nil {
			return err
		}
		q.pages[idx].next = q.head
		q.head = idx
	}

	pg := &q.pages[q.head]
	pg.records[pg.fill] = Record{
		Molecule:      mol,
		Target:        target,
		Disp:          disp,
		TimeRemaining: tRemain,
	}
	pg.fill++
	return nil
}

// EnqueueDelayedRelease pushes a release request. The event is copied.
// With no release-tagged triggers, playback fires site itself.
func (q *Queue) EnqueueDelayedRelease(event *domain.ReleaseEvent, site *domain.ReleaseSite, triggers ...domain.Trigger) error {
	var rel *DelayedRelease
	if q.events != nil {
		var err error
		if rel, err = q.events.Acquire(); err != nil {
			return fmt.Errorf("delayed release for site '%s': %w", siteName(site), err)
		}
	} else {
		rel = &DelayedRelease{}
	}

	rel.ID = uuid.New()
	if event != nil {
		rel.Event = *event
	}
	rel.Site = site
	rel.Triggers = triggers
	q.releases = append(q.releases, rel)
	return nil
}

// Len returns the number of queued transport records.
func (q *Queue) Len() int {
	n := 0
	for idx := q.head; idx != noPage; idx = q.pages[idx].next {
		n += q.pages[idx].fill
	}
	return n
}

// Pages returns the number of pages currently allocated.
func (q *Queue) Pages() int {
	return q.live
}

// PendingReleases returns the number of delayed releases not yet played.
func (q *Queue) PendingReleases() int {
	return len(q.releases)
}

func (q *Queue) allocPage() (int, error) {
	if q.pageLimit > 0 && q.live >= q.pageLimit {
		return noPage, fmt.Errorf("transport queue page limit %d reached: %w", q.pageLimit, domain.ErrAllocation)
	}
	q.live++
	if n := len(q.free); n > 0 {
		idx := q.free[n-1]
		q.free = q.free[:n-1]
		return idx, nil
	}
	q.pages = append(q.pages, page{next: noPage})
	return len(q.pages) - 1, nil
}

func (q *Queue) freePage(idx int) {
	q.pages[idx] = page{next: noPage}
	q.free = append(q.free, idx)
	q.live--
}

// detach unlinks every page from the queue and returns the newest one.
// Transfers enqueued afterwards start a fresh chain.
func (q *Queue) detach() int {
	head := q.head
	q.head = noPage
	return head
}

// requeue puts back the unplayed tail of a detached chain: rest becomes the
// content of page idx, which keeps its link to older pages. Transfers
// enqueued since the chain was detached stay newest.
func (q *Queue) requeue(idx int, rest []Record, older int) {
	pg := &q.pages[idx]
	n := copy(pg.records[:], rest)
	clear(pg.records[n:])
	pg.fill = n
	pg.next = older

	if q.head == noPage {
		q.head = idx
		return
	}
	tail := q.head
	for q.pages[tail].next != noPage {
		tail = q.pages[tail].next
	}
	q.pages[tail].next = idx
}

// popRelease removes the most recently enqueued delayed release.
func (q *Queue) popRelease() (*DelayedRelease, bool) {
	n := len(q.releases)
	if n == 0 {
		return nil, false
	}
	rel := q.releases[n-1]
	q.releases[n-1] = nil
	q.releases = q.releases[:n-1]
	return rel, true
}

func (q *Queue) recycle(rel *DelayedRelease) {
	if q.events != nil {
		q.events.Release(rel)
	}
}

func siteName(site *domain.ReleaseSite) string {
	if site == nil {
		return "<nil>"
	}
	return site.Name
}
