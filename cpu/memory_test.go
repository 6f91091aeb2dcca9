package cpu_test

import (
	"errors"
	"testing"

	"github.com/beevik/sim6502/cpu"
	"github.com/go-test/deep"
)

func TestFlatMemoryInit(t *testing.T) {
	mem := cpu.NewFlatMemory()
	if v := mem.ResetVector(); v != cpu.DefaultResetVector {
		t.Errorf("reset vector exp $%04X, got $%04X", cpu.DefaultResetVector, v)
	}
	if lo, hi := mem.LoadByte(0xfffc), mem.LoadByte(0xfffd); lo != 0x00 || hi != 0x80 {
		t.Errorf("reset vector bytes exp 00 80, got %02X %02X", lo, hi)
	}

	mem.StoreByte(0x1234, 0x56)
	mem.SetResetVector(0xc000)
	mem.Init()
	if v := mem.LoadByte(0x1234); v != 0 {
		t.Errorf("Init left $%02X at $1234", v)
	}
	if v := mem.ResetVector(); v != cpu.DefaultResetVector {
		t.Errorf("Init reset vector $%04X", v)
	}
}

func TestFlatMemoryLoad(t *testing.T) {
	mem := cpu.NewFlatMemory()

	if err := mem.Load(0xfffe, []byte{0x01, 0x02}); err != nil {
		t.Errorf("load at end of memory: %v", err)
	}
	if v := mem.LoadAddress(0xfffe); v != 0x0201 {
		t.Errorf("LoadAddress exp $0201, got $%04X", v)
	}

	err := mem.Load(0xffff, []byte{0xaa, 0xbb})
	if !errors.Is(err, cpu.ErrMemoryOutOfBounds) {
		t.Errorf("exp ErrMemoryOutOfBounds, got %v", err)
	}
	if v := mem.LoadByte(0xffff); v != 0x02 {
		t.Errorf("failed load modified memory: $%02X", v)
	}
}

func TestFlatMemoryAddressWrap(t *testing.T) {
	mem := cpu.NewFlatMemory()
	mem.StoreByte(0xffff, 0x34)
	mem.StoreByte(0x0000, 0x12)
	if v := mem.LoadAddress(0xffff); v != 0x1234 {
		t.Errorf("LoadAddress($FFFF) exp $1234, got $%04X", v)
	}
}

func TestFlatMemoryDump(t *testing.T) {
	mem := cpu.NewFlatMemory()
	code := []byte{0xa9, 0x2a, 0x85, 0x10}
	if err := mem.Load(0x8000, code); err != nil {
		t.Fatal(err)
	}

	img := mem.Dump()
	if len(img) != cpu.MemorySize {
		t.Fatalf("dump size exp %d, got %d", cpu.MemorySize, len(img))
	}
	if diff := deep.Equal(img[0x8000:0x8004], code); diff != nil {
		t.Error(diff)
	}

	img[0x8000] = 0xff
	if v := mem.LoadByte(0x8000); v != 0xa9 {
		t.Errorf("Dump shares storage with memory")
	}

	other := cpu.NewFlatMemory()
	if err := other.Load(0, mem.Dump()); err != nil {
		t.Fatal(err)
	}
	if diff := deep.Equal(other.Dump(), mem.Dump()); diff != nil {
		t.Error(diff)
	}
}
