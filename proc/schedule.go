package proc

// schedule performs one context switch: it picks the next ready PCB, hands
// it the token, and — unless the caller is self-deleting — parks the
// caller until its own turn comes back around.
//
// The caller is identified implicitly by runningProc as it stood on entry.
// A caller that has already cleared runningProc (Delete on itself) passes
// through the self-delete branch and never returns; every other caller
// returns once it is rescheduled.
func schedule() {
	self := runningProc
	next := dequeueReady()

	if next == nil {
		// Nothing else runnable. If the caller is still running, it just
		// keeps running; if it self-deleted, there is nothing left to
		// hand the token to and this goroutine parks forever.
		if self == nil {
			select {}
		}
		return
	}

	if self != nil {
		self.state = Ready
		enqueueReadyTail(self)
	}

	runningProc = next
	next.state = Running

	next.turn <- struct{}{}

	if self == nil {
		// self-delete: this goroutine handed off the token and has no
		// PCB of its own left to be resumed on. It leaks here forever,
		// matching the original design's documented self-delete
		// behavior.
		select {}
	}

	<-self.turn
}
