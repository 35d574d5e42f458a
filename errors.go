/*
 * errors.go, part of fftrim.
 *
 * Copyright 2026 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package fftrim

import "fmt"

// Error is the interface implemented by the errors of this library.
// The Decorate method allows the caller to add information to the error
// as it is passed up the stack, without wrapping it in another type.
// Passing an empty string just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TError is the concrete error used throughout the library.
type TError struct {
	msg  string
	deco []string
}

func (err *TError) Error() string { return err.msg }

// Decorate adds deco to the information carried by the error, and returns
// the accumulated decorations. The decorations are meant to contain the
// names of the functions in the calling stack, plus, for each, any
// relevant extra information.
func (err *TError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// errDecorate decorates err if it implements Error, and otherwise wraps
// it in a TError carrying the decoration.
func errDecorate(err error, deco string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.Decorate(deco)
		return e
	}
	return &TError{msg: err.Error(), deco: []string{deco}}
}

// BadStructureError signals that the value given as a typed structure is
// not a *Structure. It is returned before any matching takes place.
type BadStructureError struct {
	got  string //the type that was actually given
	deco []string
}

func (err *BadStructureError) Error() string {
	return fmt.Sprintf("fftrim: expected a *fftrim.Structure, got %s", err.got)
}

func (err *BadStructureError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// SchemaError signals a candidate parameter record that defines neither a
// class nor a type constraint for one of its atom positions, so no schema
// can be inferred for it.
type SchemaError struct {
	Kind     Kind
	Position int    //1-based atom position missing both constraints
	Tag      string //the record's tag, for identification in the source
	deco     []string
}

func (err *SchemaError) Error() string {
	return fmt.Sprintf("fftrim: %s record %q defines neither class%d nor type%d", err.Kind, err.Tag, err.Position, err.Position)
}

func (err *SchemaError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
