package config

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(700, cfg.CpuHz)
	assert.Equal(60, cfg.TimerHz)
	assert.Equal(10, cfg.Scale)
	assert.Equal(uint64(0), cfg.Seed)
	assert.Equal(cpu.Quirks{}, cfg.Quirks)
	assert.Equal(io.DefaultKeymap(), cfg.Keymap)
	assert.Equal(uint32(0xffffff), cfg.Foreground)
	assert.Equal(uint32(0x000000), cfg.Background)
	assert.Equal(11, cfg.CyclesPerFrame())
}

func TestCyclesPerFrame(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		cpu_hz   int
		timer_hz int
		cycles   int
	}){
		{700, 60, 11},
		{600, 60, 10},
		{30, 60, 1},
		{500, 0, 1},
		{1000, 1000, 1},
	}

	for _, entry := range table {
		cfg := &Config{CpuHz: entry.cpu_hz, TimerHz: entry.timer_hz}
		assert.Equal(entry.cycles, cfg.CyclesPerFrame(), "%+v", entry)
	}
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	script := `
cpu_hz = 1000
timer_hz = 50
scale = 2 * 4
seed = PROGRAM_START
quirks = {"shift_vy": True, "load_store_keep_i": True}
keymap = {"Up": 0x5, "down": KEYPAD_SIZE - 8}
foreground = 0x33ff66
`
	defines := maps.All(map[string]int{
		"PROGRAM_START": cpu.PROGRAM_START,
		"KEYPAD_SIZE":   cpu.KEYPAD_SIZE,
	})

	cfg, err := Load("test.star", script, defines)
	if !assert.NoError(err) {
		return
	}

	assert.Equal(1000, cfg.CpuHz)
	assert.Equal(50, cfg.TimerHz)
	assert.Equal(8, cfg.Scale)
	assert.Equal(uint64(0x200), cfg.Seed)
	assert.Equal(cpu.Quirks{ShiftVy: true, LoadStoreKeepI: true}, cfg.Quirks)
	assert.Equal(io.Keymap{"up": 0x5, "down": 0x8}, cfg.Keymap)
	assert.Equal(uint32(0x33ff66), cfg.Foreground)
	assert.Equal(uint32(0), cfg.Background)
	assert.Equal(20, cfg.CyclesPerFrame())
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("empty.star", "", nil)
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		script string
		name   string
		err    error
	}){
		{`cpu_hz = "fast"`, "cpu_hz", ErrConfigType},
		{`timer_hz = 0`, "timer_hz", nil},
		{`scale = -1`, "scale", nil},
		{`seed = -1`, "seed", nil},
		{`seed = "x"`, "seed", ErrConfigType},
		{`foreground = 0x1000000`, "foreground", nil},
		{`background = True`, "background", ErrConfigType},
		{`quirks = ["shift_vy"]`, "quirks", ErrConfigType},
		{`quirks = {"shift_vy": 1}`, "quirks.shift_vy", ErrConfigType},
		{`quirks = {"vblank": True}`, "quirks.vblank", nil},
		{`keymap = {"up": 16}`, "keymap.up", io.ErrKeyRange},
		{`keymap = {"up": "five"}`, "keymap.up", ErrConfigType},
		{`keymap = 5`, "keymap", ErrConfigType},
	}

	for _, entry := range table {
		cfg, err := Load("bad.star", entry.script, nil)
		assert.Nil(cfg, entry.script)

		var value_err *ErrConfigValue
		if !assert.True(errors.As(err, &value_err), entry.script) {
			continue
		}
		assert.Equal(entry.name, value_err.Name, entry.script)
		if entry.err != nil {
			assert.ErrorIs(err, entry.err, entry.script)
		}
	}
}

func TestLoad_Syntax(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("syntax.star", "cpu_hz = (", nil)
	assert.Nil(cfg)
	assert.Error(err)

	cfg, err = Load("undefined.star", "cpu_hz = CPU_HZ", nil)
	assert.Nil(cfg)
	assert.Error(err)
}
