// Package cpu implements the CHIP-8 virtual machine.
//
// The machine consists of 4KiB of memory with the hexadecimal font at its
// base, sixteen 8-bit registers (V0-VF, VF doubling as the flag register),
// the 16-bit I register, a program counter, a sixteen entry return stack,
// a 64x32 monochrome display, a sixteen key keypad, and the delay and sound
// countdown timers.
//
// The host drives the machine with Step, which fetches, decodes and executes
// a single instruction, and with TickTimers at a fixed cadence of its choice.
package cpu
