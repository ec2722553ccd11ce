package model

// historyDepth is the longest cycle period a run can fast-forward through
const historyDepth = 5

// history holds the most recent generations of a run, newest first. With
// detection on it recognises a board that has settled into a cycle so the run
// can jump straight to the final generation; without it, it only keeps the
// current generation so the previous one can go back to the pool.
type history struct {
	input  *Grid
	pool   *GridPool
	detect bool
	grids  []*Grid
	hashes []string
}

func newHistory(input *Grid, pool *GridPool, detect bool) *history {
	h := &history{input: input, pool: pool, detect: detect}
	h.push(input, h.hash(input))
	return h
}

func (h *history) hash(g *Grid) string {
	if !h.detect {
		return ""
	}
	return g.GetGridHash()
}

func (h *history) depth() int {
	if h.detect {
		return historyDepth
	}
	return 1
}

// push adds g as the newest generation and recycles whatever falls off the end
func (h *history) push(g *Grid, hash string) {
	h.grids = append([]*Grid{g}, h.grids...)
	h.hashes = append([]string{hash}, h.hashes...)
	for len(h.grids) > h.depth() {
		last := len(h.grids) - 1
		h.release(h.grids[last])
		h.grids, h.hashes = h.grids[:last], h.hashes[:last]
	}
}

// record adds the newest generation, with remaining generations still to run.
// It returns the final grid of the run once a cycle pins it down, nil otherwise.
func (h *history) record(next *Grid, remaining int) *Grid {
	hash := h.hash(next)
	if h.detect && remaining > 0 {
		for i, prev := range h.grids {
			if h.hashes[i] != hash || !prev.Equal(next) {
				continue
			}
			// next repeats the generation i+1 steps back, so the board cycles
			// with that period and grids[i-j] is j steps ahead of next
			period := i + 1
			ahead := remaining % period
			if ahead == 0 {
				return h.keep(next)
			}
			h.release(next)
			return h.keep(h.grids[period-1-ahead])
		}
	}
	h.push(next, hash)
	return nil
}

// finish returns the last generation and recycles the rest
func (h *history) finish(last *Grid) *Grid {
	return h.keep(last)
}

// keep recycles every held generation except g and returns g as a grid the
// caller owns
func (h *history) keep(g *Grid) *Grid {
	for _, held := range h.grids {
		if held != g {
			h.release(held)
		}
	}
	h.grids, h.hashes = nil, nil

	if g == h.input {
		return g.Clone()
	}
	return g
}

func (h *history) releaseAll() {
	for _, held := range h.grids {
		h.release(held)
	}
	h.grids, h.hashes = nil, nil
}

func (h *history) release(g *Grid) {
	if g == h.input {
		return
	}
	GridToPool(g, h.pool)
}
