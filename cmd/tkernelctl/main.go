// Command tkernelctl drives the toy kernel's allocator and process manager
// outside of a test binary.
package main

func main() {
	execute()
}
