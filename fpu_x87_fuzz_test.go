package main

import (
	"math/rand"
	"testing"

	"golang.org/x/sync/errgroup"
)

// TestX87_FuzzOpcodes drives many independent pseudo-random D8-DF byte
// streams concurrently, checking only the invariants that must hold after
// every handler returns (§8 invariant 1): TOP stays in range and agrees
// with SW, and FSW never gains C-bits outside 0..3 garbage. Concurrency is
// safe because each goroutine owns an independent CPU_X86/bus pair.
func TestX87_FuzzOpcodes(t *testing.T) {
	const cases = 64
	const stepsPerCase = 200

	var g errgroup.Group
	for c := 0; c < cases; c++ {
		seed := int64(c)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			bus := NewTestX86Bus()
			cpu := NewCPU_X86(bus)

			code := make([]byte, stepsPerCase*2)
			for i := range code {
				if i%2 == 0 {
					code[i] = byte(0xD8 + rng.Intn(8))
				} else {
					code[i] = byte(rng.Intn(256))
				}
			}
			writeCode(bus, 0, code...)
			cpu.EIP = 0

			for i := 0; i < stepsPerCase; i++ {
				if cpu.Halted {
					break
				}
				cpu.Step()
				top := cpu.FPU.top()
				if top < 0 || top > 7 {
					t.Errorf("case %d: TOP out of range: %d", c, top)
					return nil
				}
				if top != int((cpu.FPU.FSW>>11)&7) {
					t.Errorf("case %d: TOP/SW mismatch: top=%d sw.top=%d", c, top, (cpu.FPU.FSW>>11)&7)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
