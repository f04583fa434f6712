package proc

// Yield voluntarily surrenders the scheduling token, moving the calling
// process to the tail of the ready queue. If the ready queue is empty, the
// calling process simply keeps running. Yield is a no-op before Init.
func Yield() {
	if !initialized {
		return
	}
	schedule()
	assertInvariants()
}
