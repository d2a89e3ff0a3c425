// Package testcase encodes, validates and merges the delimited test-case text format.
//
// Clients submit a batch as a count plus input/output blobs whose cases are separated
// by a comma followed by a line break. Internally every case is separated by a single
// newline.
package testcase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chandraguptgosavi/codemore-backend/internal/common"
	"github.com/chandraguptgosavi/codemore-backend/internal/domain/model"
)

// Separator joins individual cases inside a canonical blob.
const Separator = "\n"

var clientSeparators = strings.NewReplacer(",\r\n", Separator, ",\n", Separator)

// Batch is an incoming set of cases for an update. A nil side is left untouched by Merge.
type Batch struct {
	Count  int     `json:"count"`
	Input  *string `json:"input,omitempty"`
	Output *string `json:"output,omitempty"`
}

// EncodeText rewrites every client separator into the canonical one.
func EncodeText(s string) string {
	return clientSeparators.Replace(s)
}

// Encode returns the canonical form of set.
func Encode(set model.TestCaseSet) model.TestCaseSet {
	return model.TestCaseSet{
		Count:  set.Count,
		Input:  EncodeText(set.Input),
		Output: EncodeText(set.Output),
	}
}

// EncodeBatch returns the canonical form of b.
func EncodeBatch(b Batch) Batch {
	out := Batch{Count: b.Count}
	if b.Input != nil {
		in := EncodeText(*b.Input)
		out.Input = &in
	}
	if b.Output != nil {
		o := EncodeText(*b.Output)
		out.Output = &o
	}
	return out
}

// Segments returns the number of cases in a canonical blob.
func Segments(s string) int {
	return strings.Count(s, Separator) + 1
}

// Validate checks that both blobs of an encoded set hold exactly Count cases.
func Validate(set model.TestCaseSet) error {
	if set.Count <= 0 {
		return fmt.Errorf("count must be a positive integer: %w", common.ErrInvalidTestCaseFormat)
	}
	if err := validateSide("input", set.Input, set.Count); err != nil {
		return err
	}
	return validateSide("output", set.Output, set.Count)
}

// ValidateBatch checks the sides an encoded batch supplies. At least one side is required.
func ValidateBatch(b Batch) error {
	if b.Count <= 0 {
		return fmt.Errorf("count must be a positive integer: %w", common.ErrInvalidTestCaseFormat)
	}
	if b.Input == nil && b.Output == nil {
		return fmt.Errorf("test case batch has neither input nor output: %w", common.ErrInvalidTestCaseFormat)
	}
	if b.Input != nil {
		if err := validateSide("input", *b.Input, b.Count); err != nil {
			return err
		}
	}
	if b.Output != nil {
		if err := validateSide("output", *b.Output, b.Count); err != nil {
			return err
		}
	}
	return nil
}

func validateSide(name, text string, count int) error {
	if text == "" {
		return fmt.Errorf("%s is empty: %w", name, common.ErrInvalidTestCaseFormat)
	}
	if n := Segments(text); n != count {
		return fmt.Errorf("%s has %d cases, count is %d: %w", name, n, count, common.ErrInvalidTestCaseFormat)
	}
	return nil
}

// Merge appends incoming to existing and returns the new set. existing is not modified.
// A nil incoming batch returns existing unchanged.
func Merge(existing model.TestCaseSet, incoming *Batch) model.TestCaseSet {
	if incoming == nil {
		return existing
	}
	merged := model.TestCaseSet{
		Count:  existing.Count + incoming.Count,
		Input:  existing.Input,
		Output: existing.Output,
	}
	if incoming.Input != nil {
		merged.Input = existing.Input + Separator + EncodeText(*incoming.Input)
	}
	if incoming.Output != nil {
		merged.Output = existing.Output + Separator + EncodeText(*incoming.Output)
	}
	return merged
}

// Stdin builds the grading input: the case count on its own line followed by the inputs.
func Stdin(set model.TestCaseSet) string {
	return strconv.Itoa(set.Count) + Separator + set.Input
}
