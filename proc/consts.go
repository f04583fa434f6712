package proc

// StackSize is the fixed size, in bytes, reserved from mem for every
// process's stack.
const StackSize = 128 * 1024

// pcbBackingSize is the number of bytes reserved from mem per PCB, standing
// in for sizeof(pcb_t) in the original design. The Go pcb struct itself
// lives on the Go heap (it holds a channel and a pointer to the next PCB,
// neither of which can live in a raw byte buffer without breaking the garbage
// collector), but every PCB still consumes real, accounted-for allocator
// space so a region that cannot fit N PCBs legitimately fails Create.
const pcbBackingSize = 64

const magicPCB uint32 = 0x50524F43 // 'PROC'

// BootPID is the PID assigned to the bootstrap process installed by Init.
const BootPID = 0
