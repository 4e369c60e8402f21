// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads machine and host settings from Starlark scripts.
//
// A configuration script assigns globals:
//
//	cpu_hz = 700
//	timer_hz = 60
//	scale = 10
//	seed = 0
//	quirks = {"shift_vy": True}
//	keymap = {"up": 0x5, "down": 0x8}
//	foreground = 0x33ff66
//	background = 0x000000
//
// Unassigned globals keep their defaults. Integer constants of the machine
// (PROGRAM_START, KEYPAD_SIZE, ...) are predeclared.
package config

import (
	"errors"
	"iter"
	"log"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrConfigType = errors.New(f("wrong type"))
)

// ErrConfigValue identifies the global with a bad value.
type ErrConfigValue struct {
	Name string
	Err  error
}

func (err *ErrConfigValue) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrConfigValue) Unwrap() error {
	return err.Err
}

// Config is the machine and host configuration.
type Config struct {
	CpuHz      int        // Instructions per second.
	TimerHz    int        // Timer decrements per second, and frame rate.
	Scale      int        // Host pixels per CHIP-8 pixel.
	Seed       uint64     // Random seed, 0 for the wall clock.
	Quirks     cpu.Quirks // Dialect behaviour.
	Keymap     io.Keymap  // Host key name to keypad key.
	Foreground uint32     // 0xRRGGBB of lit pixels.
	Background uint32     // 0xRRGGBB of unlit pixels.
}

// Default returns the configuration used without a script.
func Default() *Config {
	return &Config{
		CpuHz:      700,
		TimerHz:    60,
		Scale:      10,
		Keymap:     io.DefaultKeymap(),
		Foreground: 0xffffff,
		Background: 0x000000,
	}
}

// CyclesPerFrame is the number of instructions run per timer tick.
func (cfg *Config) CyclesPerFrame() int {
	if cfg.TimerHz <= 0 {
		return 1
	}
	return max(1, cfg.CpuHz/cfg.TimerHz)
}

// Load executes a configuration script, with the defines predeclared as
// integers. src is passed to Starlark; if nil the file is read by name.
func Load(filename string, src any, defines iter.Seq2[string, int]) (cfg *Config, err error) {
	thread := &starlark.Thread{
		Name:  filename,
		Print: func(_ *starlark.Thread, msg string) { log.Printf("%v: %v", filename, msg) },
	}
	opts := &syntax.FileOptions{}

	pred := starlark.StringDict{}
	if defines != nil {
		for key, value := range defines {
			pred[key] = starlark.MakeInt(value)
		}
	}

	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, pred)
	if err != nil {
		return
	}

	cfg = Default()
	err = cfg.apply(globals)
	if err != nil {
		cfg = nil
	}

	return
}

// apply copies recognised globals into the configuration.
func (cfg *Config) apply(globals starlark.StringDict) (err error) {
	positive := func(name string, dst *int) (err error) {
		value, ok := globals[name]
		if !ok {
			return
		}
		n, err := asInt(name, value)
		if err != nil {
			return
		}
		if n <= 0 {
			err = &ErrConfigValue{Name: name, Err: errors.New(f("must be positive"))}
			return
		}
		*dst = n
		return
	}

	for name, dst := range map[string]*int{
		"cpu_hz":   &cfg.CpuHz,
		"timer_hz": &cfg.TimerHz,
		"scale":    &cfg.Scale,
	} {
		err = positive(name, dst)
		if err != nil {
			return
		}
	}

	if value, ok := globals["seed"]; ok {
		var n int
		n, err = asInt("seed", value)
		if err != nil {
			return
		}
		if n < 0 {
			err = &ErrConfigValue{Name: "seed", Err: errors.New(f("must not be negative"))}
			return
		}
		cfg.Seed = uint64(n)
	}

	for name, dst := range map[string]*uint32{
		"foreground": &cfg.Foreground,
		"background": &cfg.Background,
	} {
		value, ok := globals[name]
		if !ok {
			continue
		}
		var n int
		n, err = asInt(name, value)
		if err != nil {
			return
		}
		if n < 0 || n > 0xffffff {
			err = &ErrConfigValue{Name: name, Err: errors.New(f("not a 0xRRGGBB color"))}
			return
		}
		*dst = uint32(n)
	}

	if value, ok := globals["quirks"]; ok {
		err = cfg.applyQuirks(value)
		if err != nil {
			return
		}
	}

	if value, ok := globals["keymap"]; ok {
		err = cfg.applyKeymap(value)
		if err != nil {
			return
		}
	}

	return
}

func (cfg *Config) applyQuirks(value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrConfigValue{Name: "quirks", Err: ErrConfigType}
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrConfigValue{Name: "quirks", Err: ErrConfigType}
			return
		}
		on, ok := item[1].(starlark.Bool)
		if !ok {
			err = &ErrConfigValue{Name: "quirks." + name, Err: ErrConfigType}
			return
		}
		if !cfg.Quirks.Set(name, bool(on)) {
			err = &ErrConfigValue{Name: "quirks." + name, Err: errors.New(f("unknown quirk"))}
			return
		}
	}

	return
}

// applyKeymap replaces the default keymap.
func (cfg *Config) applyKeymap(value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = &ErrConfigValue{Name: "keymap", Err: ErrConfigType}
		return
	}

	keymap := io.Keymap{}
	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = &ErrConfigValue{Name: "keymap", Err: ErrConfigType}
			return
		}
		var key int
		key, err = asInt("keymap."+name, item[1])
		if err != nil {
			return
		}
		err = keymap.Bind(name, key)
		if err != nil {
			err = &ErrConfigValue{Name: "keymap." + name, Err: err}
			return
		}
	}

	cfg.Keymap = keymap
	return
}

// asInt converts a Starlark integer.
func asInt(name string, value starlark.Value) (n int, err error) {
	i, ok := value.(starlark.Int)
	if !ok {
		err = &ErrConfigValue{Name: name, Err: ErrConfigType}
		return
	}

	n64, ok := i.Int64()
	if !ok {
		err = &ErrConfigValue{Name: name, Err: ErrConfigType}
		return
	}

	n = int(n64)
	return
}
