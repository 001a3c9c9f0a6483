package transport

// Cursor is the position of a Next walk over a queue. The zero value starts
// at the newest record page.
type Cursor struct {
	pos  int
	done bool
}

// Done reports whether the cursor has run off the end of its queue.
func (c *Cursor) Done() bool {
	return c.done
}

// Next returns the next queued transport record, newest page first and
// records in insertion order within a page. Fully consumed pages are freed.
// Once it returns false the cursor stays exhausted.
func Next(q *Queue, c *Cursor) (Record, bool) {
	for !c.done {
		if q.head == noPage {
			c.done = true
			break
		}
		pg := &q.pages[q.head]
		if c.pos < pg.fill {
			rec := pg.records[c.pos]
			c.pos++
			return rec, true
		}
		idx := q.head
		q.head = pg.next
		q.freePage(idx)
		c.pos = 0
	}
	return Record{}, false
}
