package cpu

import "github.com/mpiresgro/cpu-6502-emu/memory"

// Execute runs instructions from mem, starting at PC, until the cycle
// budget is exhausted. It returns the number of cycles actually consumed,
// which can exceed budget if the final instruction overran a too-small
// request - the loop always finishes the instruction it started.
//
// Execute is synchronous and single-threaded: it borrows c and mem for
// its duration and the caller must not alias them concurrently. On
// UnknownOpcode the partially consumed cycle count is still returned
// alongside the error.
func (c *Chip) Execute(budget int, mem memory.Memory) (int, error) {
	requested := budget
	c.budget = budget
	for c.budget > 0 {
		op := c.fetchByte(mem)
		if err := c.dispatch(op, mem); err != nil {
			return requested - c.budget, err
		}
	}
	return requested - c.budget, nil
}
