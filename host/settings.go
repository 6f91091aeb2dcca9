// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/beevik/prefixtree/v2"
)

var errInvalidSettingType = errors.New("invalid type")

type settings struct {
	CompactMode     bool   `doc:"compact register output when tracing"`
	MemDumpBytes    int    `doc:"default number of memory bytes to dump"`
	DisasmLines     int    `doc:"default number of lines to disassemble"`
	MaxStepLines    int    `doc:"max lines to disassemble when stepping"`
	NextDisasmAddr  uint16 `doc:"address of next disassembly"`
	NextMemDumpAddr uint16 `doc:"address of next memory dump"`
	Trace           bool   `doc:"display every executed instruction"`
	FollowPC        bool   `doc:"monitor page 3 follows the program counter"`
	Page1           uint16 `doc:"first monitor page"`
	Page2           uint16 `doc:"second monitor page"`
	Page3           uint16 `doc:"third monitor page"`
	Page4           uint16 `doc:"fourth monitor page"`
	DumpFile        string `doc:"default memory dump filename"`
}

func newSettings() *settings {
	return &settings{
		CompactMode:     false,
		MemDumpBytes:    64,
		DisasmLines:     10,
		MaxStepLines:    20,
		NextDisasmAddr:  0,
		NextMemDumpAddr: 0,
		Page1:           0x0000,
		Page2:           0x0100,
		Page3:           0x8000,
		Page4:           0xff00,
		DumpFile:        "dump.bin",
	}
}

// Return the four pages shown by the monitor. When following the program
// counter, the third page is the one containing 'pc'.
func (s *settings) monitorPages(pc uint16) [4]uint16 {
	pages := [4]uint16{s.Page1, s.Page2, s.Page3, s.Page4}
	if s.FollowPC {
		pages[2] = pc
	}
	for i := range pages {
		pages[i] &= 0xff00
	}
	return pages
}

type settingsField struct {
	name  string
	index int
	kind  reflect.Kind
	typ   reflect.Type
	doc   string
}

var (
	settingsTree   = prefixtree.New[*settingsField]()
	settingsFields []settingsField
)

func init() {
	settingsType := reflect.TypeOf(settings{})
	settingsFields = make([]settingsField, settingsType.NumField())
	for i := 0; i < len(settingsFields); i++ {
		f := settingsType.Field(i)
		doc, _ := f.Tag.Lookup("doc")
		settingsFields[i] = settingsField{
			name:  f.Name,
			index: i,
			kind:  f.Type.Kind(),
			typ:   f.Type,
			doc:   doc,
		}
		settingsTree.Add(strings.ToLower(f.Name), &settingsFields[i])
	}
}

func (s *settings) Display(w io.Writer) {
	value := reflect.ValueOf(s).Elem()
	for i, f := range settingsFields {
		v := value.Field(i)
		var s string
		switch f.kind {
		case reflect.String:
			s = fmt.Sprintf("    %-16s \"%s\"", f.name, v.String())
		case reflect.Uint8:
			s = fmt.Sprintf("    %-16s $%02X", f.name, uint8(v.Uint()))
		case reflect.Uint16:
			s = fmt.Sprintf("    %-16s $%04X", f.name, uint16(v.Uint()))
		default:
			s = fmt.Sprintf("    %-16s %v", f.name, v)
		}
		fmt.Fprintf(w, "%-28s (%s)\n", s, f.doc)
	}
}

func (s *settings) Kind(key string) reflect.Kind {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return reflect.Invalid
	}
	return f.kind
}

func (s *settings) Set(key string, value any) error {
	f, err := settingsTree.FindValue(strings.ToLower(key))
	if err != nil {
		return err
	}

	vIn := reflect.ValueOf(value)
	if (f.kind == reflect.String) != (vIn.Kind() == reflect.String) ||
		!vIn.Type().ConvertibleTo(f.typ) {
		return errInvalidSettingType
	}

	reflect.ValueOf(s).Elem().Field(f.index).Set(vIn.Convert(f.typ))
	return nil
}
