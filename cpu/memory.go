package cpu

const (
	MEMORY_SIZE     = 4096                            // Addressable bytes.
	PROGRAM_START   = 0x200                           // Load address of program images.
	PROGRAM_LIMIT   = MEMORY_SIZE - PROGRAM_START     // Largest loadable program image.
	FONT_START      = 0x000                           // Address of the font glyph for digit 0.
	FONT_GLYPH_SIZE = 5                               // Bytes per font glyph.
	FONT_END        = FONT_START + 16*FONT_GLYPH_SIZE // First address past the font.
)

// fontset holds the sixteen hexadecimal digit glyphs, four pixels wide.
var fontset = [16 * FONT_GLYPH_SIZE]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Font returns a copy of the built-in hexadecimal font.
func Font() (font [len(fontset)]byte) {
	return fontset
}

// Memory is the flat CHIP-8 address space.
type Memory [MEMORY_SIZE]byte

// Reset zeros memory and installs the font.
func (mem *Memory) Reset() {
	clear(mem[:])
	copy(mem[FONT_START:FONT_END], fontset[:])
}

// Fetch reads the big-endian instruction word at pc.
// Fetching past the end of memory yields the neutral Code(0x0000).
func (mem *Memory) Fetch(pc uint16) Code {
	if int(pc)+1 >= len(mem) {
		return 0
	}

	return Code(uint16(mem[pc])<<8 | uint16(mem[pc+1]))
}

// Read returns the byte at addr, modulo the memory size.
func (mem *Memory) Read(addr uint16) byte {
	return mem[int(addr)%len(mem)]
}

// Write stores value at addr, modulo the memory size.
// Writes to the font, [FONT_START, FONT_END), are ignored.
func (mem *Memory) Write(addr uint16, value byte) {
	n := int(addr) % len(mem)
	if n >= FONT_START && n < FONT_END {
		return
	}
	mem[n] = value
}
