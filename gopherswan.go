// This file is part of Gopherswan.
//
// Gopherswan is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherswan is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherswan.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/jetsetilly/gopherswan/cartridgeloader"
	"github.com/jetsetilly/gopherswan/environment"
	"github.com/jetsetilly/gopherswan/govern"
	"github.com/jetsetilly/gopherswan/hardware"
	"github.com/jetsetilly/gopherswan/hardware/clocks"
	"github.com/jetsetilly/gopherswan/hardware/memory/addresses"
	"github.com/jetsetilly/gopherswan/logger"
	"github.com/jetsetilly/gopherswan/modalflag"
	"github.com/jetsetilly/gopherswan/prefs"
	"github.com/jetsetilly/gopherswan/statsview"
	"github.com/jetsetilly/gopherswan/version"
	"github.com/jetsetilly/gopherswan/wavwriter"
)

// maximum number of entries kept by the log
const logSize = 1000

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value to
// use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "INFO")
	showVersion := md.AddBool("version", false, "print version information and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return 0
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "INFO":
		err = info(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// echoWriter returns the writer to use for echoing the log. Output to a
// terminal is coloured.
func echoWriter(output io.Writer) io.Writer {
	if f, ok := output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return logger.NewColorizer(output)
	}
	return output
}

// loadCartridge creates the emulation and loads the cartridge named by the
// first remaining argument.
func loadCartridge(md *modalflag.Modes, log *logger.Logger) (*hardware.Swan, cartridgeloader.Loader, error) {
	var cl cartridgeloader.Loader

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, cl, fmt.Errorf("cartridge required for %s mode", md)
	case 1:
	default:
		return nil, cl, fmt.Errorf("too many arguments for %s mode", md)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil, log)
	if err != nil {
		return nil, cl, err
	}

	sw, err := hardware.NewSwan(env)
	if err != nil {
		return nil, cl, err
	}

	cl = cartridgeloader.NewLoader(md.GetArg(0))
	if err := cl.Load(); err != nil {
		return nil, cl, err
	}

	if err := sw.LoadRom(cl.Data, cl.Filename, cl.Hash); err != nil {
		return nil, cl, err
	}

	return sw, cl, nil
}

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sw, cl, err := loadCartridge(md, nil)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n", cl.ShortName())
	fmt.Fprintf(output, "sha1: %s\n", cl.Hash)
	fmt.Fprintf(output, "md5: %s\n", cl.HashMD5)
	fmt.Fprintf(output, "%s\n", sw.Mem.Cart.Metadata.String())

	return nil
}

func run(md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	cycles := md.AddInt64("cycles", 0, "number of CPU cycles to run for. zero runs until interrupted")
	save := md.AddBool("save", true, "load and save cartridge SRAM or EEPROM to a .sav file")
	trace := md.AddString("trace", "", "write an instruction trace to file")
	wav := md.AddString("wav", "", "record hypervoice output to wav file")
	echo := md.AddBool("log", false, "echo log to stdout")
	profile := md.AddString("prefs", "", "preferences to apply. eg. \"serial.tickcycles::40; rtc.hostclock::true\"")
	viz := md.AddString("memviz", "", "write graphviz dump of the peripheral state to file when the emulation ends")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	md.AdditionalHelp(fmt.Sprintf("the CPU runs at %.3fMHz", clocks.CPU))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *profile != "" {
		prefs.PushCommandLineStack(*profile)
		defer prefs.PopCommandLineStack()
	}

	log := logger.NewLogger(logSize)
	if *echo {
		log.SetEcho(echoWriter(output))
	}

	sw, cl, err := loadCartridge(md, log)
	if err != nil {
		return err
	}

	cart := sw.Mem.Cart

	if *save && (cart.HasSram() || cart.HasEeprom()) {
		d, err := cl.LoadSave()
		if err != nil {
			if !errors.Is(err, cartridgeloader.ErrNoSave) {
				return err
			}
		} else if cart.HasSram() {
			if len(d) != len(cart.GetSram()) {
				return fmt.Errorf("save file is %d bytes, expected %d", len(d), len(cart.GetSram()))
			}
			cart.LoadSram(d)
		} else {
			if len(d) != len(cart.GetEeprom()) {
				return fmt.Errorf("save file is %d bytes, expected %d", len(d), len(cart.GetEeprom()))
			}
			cart.LoadEeprom(d)
		}
	}

	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := sw.SetTracer(f); err != nil {
			return err
		}
	} else if sw.Env.Prefs.CPUTrace.Get().(bool) {
		if err := sw.SetTracer(output); err != nil {
			return err
		}
	}

	if *wav != "" {
		aw, err := wavwriter.NewWavWriter(sw.Env, *wav)
		if err != nil {
			return err
		}
		sw.AttachPorts(addresses.SoundHyperVoice, addresses.SoundHyperVoice, aw)

		defer func() {
			if err := aw.Close(); err != nil && rerr == nil {
				rerr = err
			}
		}()
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	err = sw.Run(func() (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		if *cycles > 0 && sw.Cycles >= *cycles {
			return govern.Ending, nil
		}
		return govern.Running, nil
	})
	if err != nil {
		return err
	}

	if err := sw.Shutdown(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%d cycles (%.3f seconds)\n", sw.Cycles, clocks.Seconds(sw.Cycles))

	if *save {
		var d []uint8
		if cart.HasSram() {
			d = cart.GetSram()
		} else if cart.HasEeprom() {
			d = cart.GetEeprom()
		}
		if d != nil {
			if err := cl.WriteSave(d); err != nil {
				return err
			}
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, sw.State())
	}

	return nil
}
