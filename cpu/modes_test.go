package cpu

import "testing"

func newTestCPU() *CPU {
	c := NewCPU(NewFlatMemory())
	c.SetPC(0x0200)
	return c
}

func TestIndexedModes(t *testing.T) {
	modes := []struct {
		name string
		fn   modeFunc
		set  func(c *CPU, base uint16, index byte)
	}{
		{"ABX", (*CPU).abx, func(c *CPU, base uint16, index byte) {
			c.Mem.StoreByte(0x0200, byte(base))
			c.Mem.StoreByte(0x0201, byte(base>>8))
			c.Reg.X = index
		}},
		{"ABY", (*CPU).aby, func(c *CPU, base uint16, index byte) {
			c.Mem.StoreByte(0x0200, byte(base))
			c.Mem.StoreByte(0x0201, byte(base>>8))
			c.Reg.Y = index
		}},
		{"IDY", (*CPU).idy, func(c *CPU, base uint16, index byte) {
			c.Mem.StoreByte(0x0200, 0x80)
			c.Mem.StoreByte(0x0080, byte(base))
			c.Mem.StoreByte(0x0081, byte(base>>8))
			c.Reg.Y = index
		}},
	}

	indexes := []byte{0x00, 0x01, 0x7f, 0x80, 0xff}
	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			c := newTestCPU()
			for b := 0; b < 0x10000; b += 0x37 {
				base := uint16(b)
				for _, index := range indexes {
					c.SetPC(0x0200)
					m.set(c, base, index)
					o, extra := m.fn(c)

					exp := uint16((b + int(index)) % 0x10000)
					if o.Addr != exp {
						t.Fatalf("base $%04X index $%02X: addr exp $%04X, got $%04X", base, index, exp, o.Addr)
					}
					crossed := exp&0xff00 != base&0xff00
					if (extra == 1) != crossed || o.PageCrossed != crossed {
						t.Fatalf("base $%04X index $%02X: extra %d, crossed %v", base, index, extra, o.PageCrossed)
					}
				}
			}
		})
	}
}

func TestIndirectPageWrap(t *testing.T) {
	for page := 0; page < 0x100; page++ {
		ptr := uint16(page)<<8 | 0xff
		pc := ptr&0xff00 | 0x80
		c := newTestCPU()
		c.SetPC(pc)
		c.Mem.StoreByte(pc, byte(ptr))
		c.Mem.StoreByte(pc+1, byte(ptr>>8))
		c.Mem.StoreByte(ptr, 0x34)
		c.Mem.StoreByte(ptr&0xff00, 0x12)
		if ptr != 0xffff {
			c.Mem.StoreByte(ptr+1, 0x99)
		}

		o, _ := c.ind()
		if o.Addr != 0x1234 {
			t.Errorf("JMP ($%04X): exp $1234, got $%04X", ptr, o.Addr)
		}
	}
}

func TestModeLengths(t *testing.T) {
	for m := IMP; m <= REL; m++ {
		c := newTestCPU()
		modeFuncs[m](c)
		if got := c.Reg.PC - 0x0200; got != uint16(m.Length()-1) {
			t.Errorf("mode %v consumed %d bytes, exp %d", m, got, m.Length()-1)
		}
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		pc      uint16
		offset  byte
		target  uint16
		crossed bool
	}{
		{0x0200, 0x10, 0x0211, false},
		{0x0200, 0xfe, 0x01ff, true},
		{0x02f0, 0x0e, 0x02ff, false},
		{0x02f0, 0x0f, 0x0300, true},
		{0x0280, 0x80, 0x0201, false},
	}
	for _, tt := range tests {
		c := newTestCPU()
		c.SetPC(tt.pc)
		c.Mem.StoreByte(tt.pc, tt.offset)
		o, extra := c.rel()
		if o.Addr != tt.target || o.Offset != int8(tt.offset) || o.PageCrossed != tt.crossed || extra != 0 {
			t.Errorf("rel $%02X at $%04X: got addr $%04X crossed %v extra %d",
				tt.offset, tt.pc, o.Addr, o.PageCrossed, extra)
		}
	}
}

func TestPushPop(t *testing.T) {
	c := newTestCPU()
	for i := 0; i < 256; i++ {
		v := byte(i)
		sp := c.Reg.SP
		c.push(v)
		if c.Reg.SP != sp-1 {
			t.Fatalf("push: SP exp $%02X, got $%02X", sp-1, c.Reg.SP)
		}
		if got := c.pop(); got != v {
			t.Fatalf("pop: exp $%02X, got $%02X", v, got)
		}
		if c.Reg.SP != sp {
			t.Fatalf("pop: SP exp $%02X, got $%02X", sp, c.Reg.SP)
		}
		c.Reg.SP = sp + 0x11
	}

	c.Reg.SP = 0x00
	c.pushAddress(0xbeef)
	if c.Reg.SP != 0xfe {
		t.Errorf("pushAddress wrap: SP exp $FE, got $%02X", c.Reg.SP)
	}
	if got := c.popAddress(); got != 0xbeef {
		t.Errorf("popAddress: exp $BEEF, got $%04X", got)
	}
}

func TestFlags(t *testing.T) {
	var r Registers
	r.Init()

	r.SetFlag(Reserved, false)
	if !r.GetFlag(Reserved) {
		t.Error("reserved flag cleared")
	}

	r.SetFlag(Carry, true)
	r.SetFlag(Negative, true)
	if r.PS != 0xa1 {
		t.Errorf("PS exp $A1, got $%02X", r.PS)
	}
	if got := r.SavePS(true); got != 0xb1 {
		t.Errorf("SavePS(true) exp $B1, got $%02X", got)
	}
	if got := r.SavePS(false); got != 0xa1 {
		t.Errorf("SavePS(false) exp $A1, got $%02X", got)
	}

	r.RestorePS(0x10)
	if r.PS != 0x20 {
		t.Errorf("RestorePS exp $20, got $%02X", r.PS)
	}

	if s := Overflow.String(); s != "V" {
		t.Errorf("Overflow.String() exp V, got %s", s)
	}
}

func TestInstructionTable(t *testing.T) {
	documented := 0
	for i := 0; i < 256; i++ {
		inst := Lookup(byte(i))
		if inst.Opcode != byte(i) {
			t.Errorf("opcode $%02X stored as $%02X", i, inst.Opcode)
		}
		if inst.fn == nil {
			t.Errorf("opcode $%02X has no operation", i)
		}
		if inst.Length != inst.Mode.Length() {
			t.Errorf("opcode $%02X length %d", i, inst.Length)
		}
		if !inst.Unused() {
			documented++
		}
	}
	if documented != 151 {
		t.Errorf("documented opcodes exp 151, got %d", documented)
	}

	if n := len(GetInstructions("lda")); n != 8 {
		t.Errorf("LDA variants exp 8, got %d", n)
	}

	inst := Lookup(0x6c)
	if inst.Name != "JMP" || inst.Mode != IND || inst.Cycles != 5 || inst.Length != 3 {
		t.Errorf("unexpected $6C entry: %+v", *inst)
	}
}
