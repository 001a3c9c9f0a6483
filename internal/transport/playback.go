package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/plin1112/mcell/pkg/domain"
)

var errNoMechanism = errors.New("no release mechanism configured")

// Playback drains q at the end of a step. Delayed releases are performed
// first, most recent first. Transfers follow, newest page first: every
// molecule is copied into its destination partition's pool, the original is
// returned to the pool it came from, and the copy is queued on the
// destination's inbound queue.
//
// A failed release is fatal and returned as *domain.ReleaseFailureError.
// When a transfer fails, it and every transfer not yet played stay queued,
// so the queue still accounts for all of its pages.
// Playback never blocks and is not cancelled by ctx.
func (s *Space) Playback(ctx context.Context, q *Queue) error {
	return s.playback(ctx, "", q)
}

// PlaybackPartition drains the outbound queue of partition i.
func (s *Space) PlaybackPartition(ctx context.Context, i int) error {
	p, ok := s.Partition(i)
	if !ok {
		return fmt.Errorf("partition %d: %w", i, domain.ErrUnknownPartition)
	}
	return s.playback(ctx, p.Name, p.Outbound)
}

func (s *Space) playback(ctx context.Context, name string, q *Queue) error {
	start := time.Now()
	stats := domain.PlaybackEvent{Partition: name}

	for {
		rel, ok := q.popRelease()
		if !ok {
			break
		}
		n, err := s.performDelayed(ctx, rel)
		q.recycle(rel)
		stats.Releases += n
		if err != nil {
			return err
		}
	}

	for idx := q.detach(); idx != noPage; {
		stats.Pages++
		pg := q.pages[idx] // copy; materialise may grow the arena
		for i := 0; i < pg.fill; i++ {
			if err := s.materialise(ctx, pg.records[i]); err != nil {
				q.requeue(idx, pg.records[i:pg.fill], pg.next)
				return err
			}
			stats.Transported++
		}
		next := pg.next
		q.freePage(idx)
		idx = next
	}

	stats.Duration = time.Since(start)
	if stats.Releases > 0 || stats.Pages > 0 {
		s.logger.DebugContext(ctx, "transport queue played back",
			"partition", name,
			"releases", stats.Releases,
			"transported", stats.Transported,
			"pages", stats.Pages)
	}
	if s.hooks.OnPlayback != nil {
		s.hooks.OnPlayback(ctx, &stats)
	}
	return nil
}

// performDelayed fires every release-tagged trigger of rel, or rel.Site when
// the chain names none.
func (s *Space) performDelayed(ctx context.Context, rel *DelayedRelease) (int, error) {
	sites := make([]*domain.ReleaseSite, 0, len(rel.Triggers))
	for _, t := range rel.Triggers {
		if t.Kind == domain.TriggerRelease {
			sites = append(sites, t.Site)
		}
	}
	if len(rel.Triggers) == 0 {
		sites = append(sites, rel.Site)
	}

	for i, site := range sites {
		event := rel.Event
		event.Site = site

		err := errNoMechanism
		if s.mechanism != nil {
			err = s.mechanism.PerformRelease(ctx, &event)
		}
		if err != nil {
			failure := &domain.ReleaseFailureError{Site: siteName(site), Err: err}
			s.logger.ErrorContext(ctx, "reaction-triggered release failed",
				"site", failure.Site, "event_id", rel.ID.String(), "error", err)
			if s.hooks.OnReleaseFailure != nil {
				s.hooks.OnReleaseFailure(ctx, &event, failure)
			}
			return i, failure
		}
		if s.hooks.OnRelease != nil {
			s.hooks.OnRelease(ctx, &event)
		}
	}
	return len(sites), nil
}

func (s *Space) materialise(ctx context.Context, rec Record) error {
	if rec.Target == nil || rec.Molecule == nil {
		return fmt.Errorf("transport record without molecule or target: %w", domain.ErrUnknownPartition)
	}
	dst, ok := s.Partition(rec.Target.Partition)
	if !ok {
		return fmt.Errorf("subvolume %d: partition %d: %w", rec.Target.Index, rec.Target.Partition, domain.ErrUnknownPartition)
	}
	from := rec.Molecule.Birthplace
	src, ok := s.Partition(from)
	if !ok {
		return fmt.Errorf("molecule %d: birthplace %d: %w", rec.Molecule.ID, rec.Molecule.Birthplace, domain.ErrUnknownPartition)
	}

	dup, err := dst.Pool.Acquire()
	if err != nil {
		return fmt.Errorf("transport into partition '%s': %w", dst.Name, err)
	}
	*dup = *rec.Molecule
	dup.Unlink()
	dup.Subvol = rec.Target
	dup.Birthplace = rec.Target.Partition

	if err := dst.Inbound.EnqueueTransport(dup, rec.Target, rec.Disp, rec.TimeRemaining); err != nil {
		dst.Pool.Release(dup)
		return fmt.Errorf("inbound queue of partition '%s': %w", dst.Name, err)
	}
	src.Pool.Release(rec.Molecule)
	rec.Target.MolCount++

	if s.hooks.OnTransport != nil {
		s.hooks.OnTransport(ctx, &domain.TransportEvent{
			Molecule: dup,
			Target:   rec.Target,
			From:     from,
			To:       rec.Target.Partition,
		})
	}
	return nil
}
