// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/chip8/config"
	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/translate"
)

// parseQuirks applies a comma separated list of quirk names, each
// optionally followed by =true or =false.
func parseQuirks(quirks *cpu.Quirks, text string) (err error) {
	if len(text) == 0 {
		return
	}

	for _, item := range strings.Split(text, ",") {
		name, value, found := strings.Cut(strings.TrimSpace(item), "=")
		on := true
		if found {
			on, err = strconv.ParseBool(value)
			if err != nil {
				err = fmt.Errorf("quirk %v: %w", name, err)
				return
			}
		}
		if !quirks.Set(name, on) {
			known := slices.Collect(cpu.QuirkNames())
			err = fmt.Errorf("unknown quirk %q, expected one of: %v", name, strings.Join(known, ", "))
			return
		}
	}

	return
}

// writeImage saves the current display, scaled, to a .png or .bmp file.
func writeImage(emu *emulator.Emulator, name string) (err error) {
	ouf, err := os.Create(name)
	if err != nil {
		return
	}

	palette := io.Palette{Foreground: emu.Config.Foreground, Background: emu.Config.Background}
	err = palette.WriteImage(ouf, name, emu.Snapshot(), emu.Config.Scale)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()
	return
}

func main() {
	var script string
	var quirks string
	var frames int
	var output string
	var lang string
	var verbose bool

	flag.StringVar(&script, "c", "", ".star configuration file")
	flag.StringVar(&quirks, "q", "", "Quirk overrides, as name[=bool],...")
	flag.IntVar(&frames, "n", 0, "Run headless for this many frames, then print the display")
	flag.StringVar(&output, "o", "", "Save the final display to a .png or .bmp file")
	flag.StringVar(&lang, "lang", "", "Language of run time error messages, instead of the host locale")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one ROM file, got: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		err := translate.Use(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	cfg := config.Default()
	if len(script) != 0 {
		var err error
		cfg, err = config.Load(script, nil, emulator.Defines())
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
	}

	err := parseQuirks(&cfg.Quirks, quirks)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	romfile := flag.Arg(0)
	rom, err := io.OpenRom(os.DirFS(filepath.Dir(romfile)), filepath.Base(romfile))
	if err != nil {
		log.Fatalf("%v: %v", romfile, err)
	}

	emu := emulator.NewEmulator(cfg)
	emu.Verbose = verbose

	err = emu.Load(rom)
	if err != nil {
		log.Fatalf("%v: %v", romfile, err)
	}

	if verbose {
		log.Printf("chip8: %v: %d bytes, %d cycles per frame, quirks %+v",
			rom.Name, len(rom.Data), emu.CyclesPerFrame(), cfg.Quirks)
	}

	if frames > 0 {
		err = runHeadless(emu, frames, os.Stdout)
	} else {
		err = runWindow(emu, rom.Name)
	}
	if err != nil {
		log.Fatalf("%v: %v\n%v", romfile, err, emu.Cpu.String())
	}

	if len(output) != 0 {
		err = writeImage(emu, output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}
}
