// main.go - x87 coprocessor core demo entry point
//
// (c) 2024-2026 Zayn Otley - GPLv3 or later

package main

import (
	"flag"
	"fmt"
	"os"
)

// flatBus is a minimal X86Bus backed by a flat byte slice, enough to load
// a short instruction stream and step the CPU over it.
type flatBus struct {
	mem   []byte
	ports [65536]byte
}

func newFlatBus(size int) *flatBus {
	return &flatBus{mem: make([]byte, size)}
}

func (b *flatBus) Read(addr uint32) byte {
	if int(addr) < len(b.mem) {
		return b.mem[addr]
	}
	return 0
}

func (b *flatBus) Write(addr uint32, value byte) {
	if int(addr) < len(b.mem) {
		b.mem[addr] = value
	}
}

func (b *flatBus) In(port uint16) byte         { return b.ports[port] }
func (b *flatBus) Out(port uint16, value byte) { b.ports[port] = value }
func (b *flatBus) Tick(cycles int)             {}

func main() {
	codeFile := flag.String("code", "", "path to a raw x86 instruction stream to execute (defaults to a built-in FLD1/FADDP demo)")
	steps := flag.Int("steps", 16, "maximum number of CPU steps to run")
	flag.Parse()

	bus := newFlatBus(1 << 16)

	var code []byte
	if *codeFile != "" {
		data, err := os.ReadFile(*codeFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "reading %s: %v\n", *codeFile, err)
			os.Exit(1)
		}
		code = data
	} else {
		code = []byte{
			0xD9, 0xE8, // FLD1           ; ST0=1.0
			0xD9, 0xE8, // FLD1           ; ST0=1.0, ST1=1.0
			0xDE, 0xC1, // FADDP ST(1),ST ; ST0=2.0
			0xF4, // HLT
		}
	}
	for i, b := range code {
		bus.Write(uint32(i), b)
	}

	cpu := NewCPU_X86(bus)
	cpu.EIP = 0

	for i := 0; i < *steps && !cpu.Halted; i++ {
		cpu.Step()
	}

	fmt.Print(cpu.FPU.DumpState())
}
